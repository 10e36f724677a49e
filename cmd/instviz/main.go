package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sse-mib/instviz/cmd/instviz/commands"
	"github.com/sse-mib/instviz/config"
	"github.com/sse-mib/instviz/logger"
	"github.com/sse-mib/instviz/version"
)

var rootCmd = &cobra.Command{
	Use:   "instviz",
	Short: "instviz - Interactive 3D explorer for institutional-economics readings",
	Long: `instviz - Interactive 3D explorer for institutional-economics readings.

Serves a 3D bubble chart of course readings scored across cultural and
economic dimensions. Axes, filters and camera presets are explored live in
the browser; the dataset is two JSON documents loaded at startup.

Available commands:
  serve  - Start the visualization server
  data   - Inspect and validate the reading dataset
  config - Show and validate configuration

Examples:
  instviz serve                # Start the server on the configured port
  instviz serve --watch        # Reload datasets on file change
  instviz data ls              # List readings in a table
  instviz data check           # Validate the dataset without serving
  instviz config show          # Show the active configuration`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonLogs := false
		if cfg, err := config.Load(); err == nil {
			jsonLogs = cfg.Log.JSON
		}
		if err := logger.InitializeWithLevel(jsonLogs, logger.VerbosityToLevel(verbosity)); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	Version: version.Get().String(),
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")

	rootCmd.AddCommand(commands.ServeCmd)
	rootCmd.AddCommand(commands.DataCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
}

func main() {
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
