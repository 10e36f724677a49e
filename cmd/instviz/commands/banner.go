package commands

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/sse-mib/instviz/config"
	"github.com/sse-mib/instviz/server"
	"github.com/sse-mib/instviz/version"
)

// printStartupBanner prints the user-friendly startup message
func printStartupBanner(cfg *config.Config, ds *server.Dataset) {
	info := version.Get()

	pterm.DefaultHeader.WithFullWidth().Println("instviz - Institutional Economics in 3D")

	pterm.Info.Printf("Version:  %s (commit %s)\n", info.Version, info.Short())
	pterm.Info.Printf("Readings: %d across %d sections\n", ds.Catalog.Len(), len(ds.Catalog.Sections()))
	pterm.Info.Printf("Axes:     %d\n", ds.Registry.Len())
	if cfg.Data.Watch {
		pterm.Info.Printf("Watching: %s, %s\n", cfg.Data.AxesPath, cfg.Data.ReadingsPath)
	}

	fmt.Println()
	pterm.Success.Printf("Open http://%s in a browser\n", cfg.Addr())
	pterm.Info.Println("Press Ctrl+C to stop")
	fmt.Println()
}
