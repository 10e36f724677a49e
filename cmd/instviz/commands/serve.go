package commands

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/sse-mib/instviz/config"
	"github.com/sse-mib/instviz/errors"
	"github.com/sse-mib/instviz/server"
)

// ServeCmd starts the instviz web server
var ServeCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"server"},
	Short:   "Start the reading visualization server",
	Long: `Launch the instviz server with the interactive 3D bubble chart.
Open the printed address in a browser to pick axes, filter by section or
author, switch camera presets, and click points for reading details.`,
	RunE: runServe,
}

var (
	serveHost     string
	servePort     int
	serveWatch    bool
	serveAxes     string
	serveReadings string
)

func init() {
	ServeCmd.Flags().StringVar(&serveHost, "host", "", "Listen host (overrides config)")
	ServeCmd.Flags().IntVar(&servePort, "port", 0, "Listen port (overrides config)")
	ServeCmd.Flags().BoolVar(&serveWatch, "watch", false, "Reload datasets when the JSON files change")
	ServeCmd.Flags().StringVar(&serveAxes, "axes", "", "Path to the axis definitions file (overrides config)")
	ServeCmd.Flags().StringVar(&serveReadings, "readings", "", "Path to the readings file (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	// Flag overrides
	if serveHost != "" {
		cfg.Server.Host = serveHost
	}
	if servePort != 0 {
		cfg.Server.Port = servePort
	}
	if serveWatch {
		cfg.Data.Watch = true
	}
	if serveAxes != "" {
		cfg.Data.AxesPath = serveAxes
	}
	if serveReadings != "" {
		cfg.Data.ReadingsPath = serveReadings
	}

	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	ds, err := server.LoadDataset(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to load dataset")
	}

	printStartupBanner(cfg, ds)

	srv := server.New(cfg, ds)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Serve(ctx); err != nil {
		return errors.Wrap(err, "server failed")
	}
	pterm.Success.Println("Server stopped cleanly")
	return nil
}
