package commands

import (
	"photomarket/internal/app"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP and websocket server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Run(cfg)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
