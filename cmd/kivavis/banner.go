package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/elektrokombinacija/kivavis/internal/config"
	"github.com/elektrokombinacija/kivavis/internal/vis/engine"
)

var (
	bannerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#FF8C00")).
			Padding(0, 1)
	bannerTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFA500"))
	bannerKey   = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080")).Width(10)
)

func printBanner(w io.Writer, cfg *config.Config, eng *engine.Engine) {
	fmt.Fprintln(w, banner(cfg, eng))
}

func banner(cfg *config.Config, eng *engine.Engine) string {
	rows := [][2]string{
		{"map", fmt.Sprintf("%s (%dx%d)", cfg.Map, eng.Grid.Width, eng.Grid.Height)},
		{"agents", fmt.Sprintf("%d", eng.Solution.AgentCount())},
		{"mode", eng.Profile.Mode.String()},
		{"interval", eng.Profile.Interval.String()},
		{"output", output(cfg)},
	}
	var b strings.Builder
	b.WriteString(bannerTitle.Render("kivavis"))
	for _, r := range rows {
		b.WriteString("\n")
		b.WriteString(bannerKey.Render(r[0]))
		b.WriteString(r[1])
	}
	return bannerStyle.Render(b.String())
}

func output(cfg *config.Config) string {
	switch cfg.Renderer {
	case config.RendererExport:
		return fmt.Sprintf("export %s x%d -> %s", cfg.Export.Format, cfg.Export.Loops, cfg.Export.Dir)
	case config.RendererLive:
		return "live " + cfg.Live.Addr
	}
	return cfg.Renderer
}
