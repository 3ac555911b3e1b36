package commands

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"photomarket/cmd/photomarket/output"
	"photomarket/internal/db"
	"photomarket/internal/repository"
	"photomarket/internal/services"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

var (
	// resolve-id flags
	ensure bool
)

var backfillCmd = &cobra.Command{
	Use:   "backfill-ids",
	Short: "Map legacy integer photographer ids to UUIDs",
	Long: `Create an id_map row with a fresh UUID for every legacy "Photographers" row
that does not have one yet. Existing mappings are never changed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withIDs(cmd.Context(), func(ctx context.Context, ids *services.IDMapService) error {
			created, err := ids.Backfill(ctx)
			if err != nil {
				output.Error("backfill stopped after %d mappings: %v", created, err)
				return err
			}
			if created == 0 {
				output.Muted("Nothing to backfill")
				return nil
			}
			output.Success("Created %d mappings", created)
			return nil
		})
	},
}

var resolveCmd = &cobra.Command{
	Use:   "resolve-id <legacy_id>",
	Short: "Look up the UUID of a legacy photographer id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		legacyID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil || legacyID <= 0 {
			return fmt.Errorf("invalid legacy id %q", args[0])
		}

		return withIDs(cmd.Context(), func(ctx context.Context, ids *services.IDMapService) error {
			resolve := ids.ResolveUUID
			if ensure {
				resolve = ids.EnsureUUID
			}
			id, err := resolve(ctx, legacyID)
			if err != nil {
				return err
			}

			output.Section("Legacy id")
			output.KeyValue("legacy_id", legacyID)
			if id == nil {
				output.Warning("no mapping")
				return nil
			}
			output.KeyValue("uuid", *id)
			return nil
		})
	},
}

func withIDs(parent context.Context, fn func(ctx context.Context, ids *services.IDMapService) error) error {
	ctx, cancel := context.WithTimeout(parent, 5*time.Minute)
	defer cancel()

	pool, err := db.Connect(ctx, cfg.Database)
	if err != nil {
		output.Error("connect: %v", err)
		return err
	}
	defer pool.Close()

	return fn(ctx, newIDMapService(pool))
}

func newIDMapService(pool *pgxpool.Pool) *services.IDMapService {
	return services.NewIDMapService(
		repository.NewIDMapRepository(pool),
		repository.NewPhotographerRepository(pool),
	)
}

func init() {
	resolveCmd.Flags().BoolVar(&ensure, "ensure", false, "Create the mapping if the legacy row exists")
	rootCmd.AddCommand(backfillCmd, resolveCmd)
}
