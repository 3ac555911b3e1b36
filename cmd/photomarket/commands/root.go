package commands

import (
	"fmt"
	"os"

	"photomarket/internal/config"
	"photomarket/internal/utils"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	envFile    string

	cfg *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "photomarket",
	Short: "Photographer marketplace API",
	Long: `photomarket serves the photographer marketplace API: listings, portfolios,
booking requests and photographer self-management.

Commands:
  serve         - Run the HTTP and websocket server
  migrate       - Create or update the database schema
  backfill-ids  - Map legacy integer photographer ids to UUIDs
  resolve-id    - Look up one legacy id`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		utils.LoadEnv(envFile)
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", utils.GetEnv("CONFIG_PATH", "config.yaml"), "Path to the YAML config file")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Path to the .env file")
}
