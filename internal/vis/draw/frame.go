package draw

import (
	"fmt"
	"image/color"

	"github.com/elektrokombinacija/kivavis/internal/core"
	"github.com/elektrokombinacija/kivavis/internal/vis/mode"
	"github.com/elektrokombinacija/kivavis/internal/vis/palette"
	"github.com/elektrokombinacija/kivavis/internal/vis/scene"
	"github.com/elektrokombinacija/kivavis/internal/vis/state"
)

const heatmapAlpha = 0.7

// FrameRenderer draws the dynamic part of each frame into an arena.
type FrameRenderer struct {
	Profile    mode.Profile
	Colors     palette.Table
	AgentCount int
}

// Draw drains the previous frame and draws f.
func (r *FrameRenderer) Draw(a *scene.Arena, g *core.Grid, f *state.Frame) {
	a.Drain()
	if f.Density != nil {
		r.drawHeatmap(a, g, f)
		return
	}
	star := r.starSize()
	for _, ag := range f.Agents {
		if ag.Status == state.Completed {
			continue
		}
		col := r.Colors.At(ag.ID)
		at := scene.P(ag.Pos)

		a.Add(scene.Circle{
			Center:    at,
			Radius:    r.Profile.RobotSize,
			Fill:      opaque(col),
			Edge:      opaque(Black),
			EdgeWidth: 1,
		})
		if r.Profile.ShowRobotIDs && r.Profile.FontSize > 0 {
			a.Add(scene.Text{
				At:    at,
				Text:  fmt.Sprint(ag.ID),
				Size:  r.Profile.FontSize,
				Color: opaque(White),
				Bold:  true,
			})
		}
		if len(ag.Trail) > 1 {
			a.Add(scene.Polyline{Points: points(ag.Trail), Color: rgba(col, r.Profile.TrailAlpha), Width: 1})
		}
		if ag.Status == state.Picking {
			a.Add(scene.Scatter{
				Points: []scene.Point{at},
				Shape:  scene.MarkerStar,
				Size:   star,
				Fill:   opaque(Yellow),
				Edge:   opaque(Black),
			})
		}
	}
	a.SetTitle(Title(r.AgentCount, f))
}

// starSize is the picking highlight in points, shrinking with team size.
func (r *FrameRenderer) starSize() float64 {
	s := 12 - r.AgentCount/10
	if s < 6 {
		s = 6
	}
	return float64(s)
}

func (r *FrameRenderer) drawHeatmap(a *scene.Arena, g *core.Grid, f *state.Frame) {
	d := f.Density
	if d.Max() > 0 {
		pix := make([]color.NRGBA, d.Width*d.Height)
		for y := 0; y < d.Height; y++ {
			for x := 0; x < d.Width; x++ {
				pix[y*d.Width+x] = opaque(palette.Hot.At(d.Normalized(x, y)))
			}
		}
		a.Add(scene.Image{
			Bounds: scene.GridBounds(g.Width, g.Height),
			W:      d.Width,
			H:      d.Height,
			Pix:    pix,
			Alpha:  heatmapAlpha,
		})
	}
	a.SetTitle(Title(r.AgentCount, f))
}

// Title summarizes a frame for the main pane.
func Title(agentCount int, f *state.Frame) string {
	if f.Density != nil {
		return fmt.Sprintf("Kiva Warehouse Heatmap - %d Active Robots - Step: %d", f.Counts.Active, f.Step)
	}
	return fmt.Sprintf("Kiva Warehouse (%d robots) - Active: %d | Picking: %d | Completed: %d - Step: %d",
		agentCount, f.Counts.Active, f.Counts.Picking, f.Counts.Completed, f.Step)
}
