package draw

import (
	"fmt"
	"strings"

	"github.com/elektrokombinacija/kivavis/internal/core"
	"github.com/elektrokombinacija/kivavis/internal/vis/mode"
	"github.com/elektrokombinacija/kivavis/internal/vis/scene"
	"github.com/elektrokombinacija/kivavis/internal/vis/state"
)

// InfoBounds is the coordinate space of the info pane.
var InfoBounds = scene.Bounds{MaxX: 10, MaxY: 10}

// InfoPanel rewrites the side panel every frame.
type InfoPanel struct {
	Mode       mode.Mode
	Grid       *core.Grid
	AgentCount int
}

// Draw clears the panel and writes the summary of f.
func (p *InfoPanel) Draw(a *scene.Arena, f *state.Frame) {
	a.Drain()
	size := 8.0
	if p.Mode == mode.Detailed {
		size = 9
	}
	a.Add(scene.Text{
		At:     scene.Point{X: 0.1, Y: 9.8},
		Text:   p.Text(f),
		Size:   size,
		Color:  opaque(Black),
		Mono:   true,
		Anchor: scene.AnchorTopLeft,
		Box:    rgba(LightCyan, 0.8),
	})
}

// Text renders the panel contents for f.
func (p *InfoPanel) Text(f *state.Frame) string {
	if p.Mode == mode.Detailed {
		return p.detailed(f)
	}
	return p.summary(f)
}

func (p *InfoPanel) detailed(f *state.Frame) string {
	st := p.Grid.Stats()
	var b strings.Builder
	fmt.Fprintf(&b, "KIVA WAREHOUSE - DETAILED VIEW\n")
	fmt.Fprintf(&b, "================================\n")
	fmt.Fprintf(&b, "Grid: %dx%d\n", p.Grid.Width, p.Grid.Height)
	fmt.Fprintf(&b, "Robots: %d (Mode: %s)\n\n", p.AgentCount, p.Mode)
	fmt.Fprintf(&b, "Warehouse:\n")
	fmt.Fprintf(&b, "• Shelves: %d\n", st.Shelves)
	fmt.Fprintf(&b, "• Endpoints: %d\n", st.Endpoints)
	fmt.Fprintf(&b, "• Robot Zones: %d\n\n", st.RobotZones)
	fmt.Fprintf(&b, "Status Summary:\n")
	fmt.Fprintf(&b, "• Active: %d\n", f.Counts.Active)
	fmt.Fprintf(&b, "• Picking: %d\n", f.Counts.Picking)
	fmt.Fprintf(&b, "• Completed: %d\n\n", f.Counts.Completed)
	fmt.Fprintf(&b, "Timestep: %d/%d\n", f.Step, f.MaxTimestep-1)
	fmt.Fprintf(&b, "Progress: %.1f%%\n\n", f.Progress()*100)
	fmt.Fprintf(&b, "Individual Robots:\n")
	writeLines(&b, f.StatusLines, 15)
	return strings.TrimRight(b.String(), "\n")
}

func (p *InfoPanel) summary(f *state.Frame) string {
	st := p.Grid.Stats()
	var b strings.Builder
	fmt.Fprintf(&b, "KIVA WAREHOUSE - SUMMARY VIEW\n")
	fmt.Fprintf(&b, "=============================\n")
	fmt.Fprintf(&b, "%d Robots (Mode: %s)\n", p.AgentCount, p.Mode)
	fmt.Fprintf(&b, "Grid: %dx%d\n\n", p.Grid.Width, p.Grid.Height)
	fmt.Fprintf(&b, "ROBOT STATUS:\n")
	fmt.Fprintf(&b, "Active: %d\n", f.Counts.Active)
	fmt.Fprintf(&b, "Picking: %d\n", f.Counts.Picking)
	fmt.Fprintf(&b, "Completed: %d\n\n", f.Counts.Completed)
	fmt.Fprintf(&b, "PROGRESS:\n")
	fmt.Fprintf(&b, "Timestep: %d/%d\n", f.Step, f.MaxTimestep-1)
	fmt.Fprintf(&b, "Progress: %.1f%%\n\n", f.Progress()*100)
	fmt.Fprintf(&b, "WAREHOUSE:\n")
	fmt.Fprintf(&b, "Shelves: %d\n", st.Shelves)
	fmt.Fprintf(&b, "Endpoints: %d\n\n", st.Endpoints)
	fmt.Fprintf(&b, "Top 8 Robots:\n")
	writeLines(&b, f.StatusLines, 8)
	return strings.TrimRight(b.String(), "\n")
}

func writeLines(b *strings.Builder, lines []string, limit int) {
	shown := lines
	if len(shown) > limit {
		shown = shown[:limit]
	}
	for _, l := range shown {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	if n := len(lines) - limit; n > 0 {
		fmt.Fprintf(b, "... and %d more\n", n)
	}
}
