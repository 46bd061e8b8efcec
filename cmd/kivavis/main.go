// Command kivavis animates multi-agent paths on a Kiva-style warehouse map.
// The level of detail adapts to the number of agents.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/elektrokombinacija/kivavis/internal/config"
	"github.com/elektrokombinacija/kivavis/internal/export"
	"github.com/elektrokombinacija/kivavis/internal/loader"
	"github.com/elektrokombinacija/kivavis/internal/vis"
	"github.com/elektrokombinacija/kivavis/internal/vis/engine"
	"github.com/elektrokombinacija/kivavis/internal/vis/live"
	"github.com/elektrokombinacija/kivavis/internal/vis/term"
)

func main() {
	log.SetFlags(log.Ltime)
	if err := newRootCmd().Execute(); err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
}

// flagKeys maps command line flags to configuration keys.
var flagKeys = map[string]string{
	"map":      "map",
	"results":  "results",
	"renderer": "renderer",
	"interval": "interval",
	"agents":   "demo.agents",
	"dpi":      "window.dpi",
	"out":      "export.dir",
	"format":   "export.format",
	"loops":    "export.loops",
	"chart":    "export.chart",
	"addr":     "live.addr",
	"announce": "live.announce",
}

func newRootCmd() *cobra.Command {
	v := config.New()
	var configPath string

	cmd := &cobra.Command{
		Use:           "kivavis",
		Short:         "Animate warehouse robot paths",
		Long:          "kivavis loads a Kiva warehouse map and a path results file and animates them in a window, a terminal, a browser or a set of image files.",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, configPath)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "YAML config file (default ./kivavis.yaml if present)")
	flags.String("map", v.GetString("map"), "warehouse map file")
	flags.String("results", v.GetString("results"), "agent path results file")
	flags.String("renderer", v.GetString("renderer"), "output: window, terminal, export or live")
	flags.Duration("interval", v.GetDuration("interval"), "frame interval (0 picks one from the agent count)")
	flags.Int("agents", v.GetInt("demo.agents"), "demo agent count when no results file is available")
	flags.Float64("dpi", v.GetFloat64("window.dpi"), "window resolution in dots per inch")
	flags.String("out", v.GetString("export.dir"), "export directory")
	flags.String("format", v.GetString("export.format"), "export format: png or mjpeg")
	flags.Int("loops", v.GetInt("export.loops"), "animation loops to export")
	flags.Bool("chart", v.GetBool("export.chart"), "write a status chart with the export")
	flags.String("addr", v.GetString("live.addr"), "live view listen address")
	flags.Bool("announce", v.GetBool("live.announce"), "announce the live view over mDNS")

	for name, key := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", name, err))
		}
	}
	return cmd
}

func run(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	grid := loader.MapOrDefault(cfg.Map)
	sol := loader.SolutionOrDemo(cfg.Results, grid, cfg.Demo.Agents)

	dpi := cfg.Window.DPI
	switch cfg.Renderer {
	case config.RendererExport:
		dpi = cfg.Export.DPI
	case config.RendererLive:
		dpi = cfg.Live.DPI
	}
	eng := engine.New(grid, sol, engine.WithDPI(dpi), engine.WithInterval(cfg.Interval))

	p := eng.Profile
	log.Printf("[INFO] %d agents on %dx%d grid, %d steps", sol.AgentCount(), grid.Width, grid.Height, eng.Playback.MaxStep)
	log.Printf("[INFO] mode %s, interval %v: %s", p.Mode, p.Interval, p.Mode.Description())
	printBanner(os.Stderr, cfg, eng)

	switch cfg.Renderer {
	case config.RendererTerminal:
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("terminal: %w", err)
		}
		return term.Run(ctx, eng, screen)

	case config.RendererExport:
		m, err := export.Run(eng, exportOptions(cfg))
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}
		log.Printf("[INFO] export %s: %d frames in %s", m.RunID, m.Frames, cfg.Export.Dir)
		return nil

	case config.RendererLive:
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()
		return live.Serve(ctx, eng, liveOptions(cfg))
	}

	vis.Show(eng, windowTitle(eng))
	return nil
}

func exportOptions(cfg *config.Config) export.Options {
	return export.Options{
		Dir:    cfg.Export.Dir,
		Format: cfg.Export.Format,
		Loops:  cfg.Export.Loops,
		Chart:  cfg.Export.Chart,
		DPI:    cfg.Export.DPI,
	}
}

func liveOptions(cfg *config.Config) live.Options {
	return live.Options{
		Addr:     cfg.Live.Addr,
		Announce: cfg.Live.Announce,
		DPI:      cfg.Live.DPI,
	}
}

func windowTitle(eng *engine.Engine) string {
	return fmt.Sprintf("Kiva Warehouse - %s mode", eng.Profile.Mode)
}
