package commands

import (
	"context"
	"time"

	"photomarket/cmd/photomarket/output"
	"photomarket/internal/db"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Long: `Apply the embedded schema. Statements are idempotent, so running it twice is safe.
The legacy "Photographers" table is never touched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
		defer cancel()

		pool, err := db.Connect(ctx, cfg.Database)
		if err != nil {
			output.Error("connect: %v", err)
			return err
		}
		defer pool.Close()

		if err := db.Migrate(ctx, pool); err != nil {
			output.Error("%v", err)
			return err
		}
		output.Success("Schema up to date")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
