package draw

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/elektrokombinacija/kivavis/internal/core"
	"github.com/elektrokombinacija/kivavis/internal/vis/mode"
	"github.com/elektrokombinacija/kivavis/internal/vis/scene"
)

// StaticRenderer draws the non-animated warehouse once.
type StaticRenderer interface {
	Render(c scene.Canvas, g *core.Grid)
}

// StaticRendererFor picks the warehouse renderer for a detail level.
func StaticRendererFor(d mode.GridDetail) StaticRenderer {
	switch d {
	case mode.DetailHigh:
		return highDetail{}
	case mode.DetailMedium:
		return mediumDetail{}
	case mode.DetailLow:
		return lowDetail{}
	case mode.DetailMinimal:
		return minimalDetail{}
	default:
		return backgroundOnly{}
	}
}

// highDetail outlines every tagged cell and labels endpoints and zones.
type highDetail struct{}

func (highDetail) Render(c scene.Canvas, g *core.Grid) {
	black := rgba(Black, 0.9)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			switch g.At(x, y) {
			case core.Obstacle:
				c.Add(cellRect(x, y, rgba(SaddleBrown, 0.9), black))
			case core.Endpoint:
				c.Add(cellRect(x, y, rgba(Orange, 0.8), rgba(DarkOrange, 0.8)))
				c.Add(glyph(x, y, "E", opaque(White)))
			case core.RobotZone:
				c.Add(cellRect(x, y, rgba(LightBlue, 0.6), rgba(Blue, 0.6)))
				c.Add(glyph(x, y, "R", opaque(DarkBlue)))
			}
		}
	}
	gridLines(c, g, 5)
}

// mediumDetail drops glyphs and edges and thins the gridlines.
type mediumDetail struct{}

func (mediumDetail) Render(c scene.Canvas, g *core.Grid) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			switch g.At(x, y) {
			case core.Obstacle:
				c.Add(cellRect(x, y, rgba(Brown, 0.8), color.NRGBA{}))
			case core.Endpoint:
				c.Add(cellRect(x, y, rgba(Orange, 0.7), color.NRGBA{}))
			case core.RobotZone:
				c.Add(cellRect(x, y, rgba(LightBlue, 0.5), color.NRGBA{}))
			}
		}
	}
	gridLines(c, g, 10)
}

// lowDetail batches shelves and endpoints into one primitive each.
// Robot zones are left out at this tier.
type lowDetail struct{}

func (lowDetail) Render(c scene.Canvas, g *core.Grid) {
	if cells := g.CellsWithTag(core.Obstacle); len(cells) > 0 {
		c.Add(scene.Cells{Cells: cells, Fill: rgba(Brown, 0.6)})
	}
	if cells := g.CellsWithTag(core.Endpoint); len(cells) > 0 {
		c.Add(scene.Cells{Cells: cells, Fill: rgba(Orange, 0.5)})
	}
}

// minimalDetail draws fixed-size square markers.
type minimalDetail struct{}

// minimalMarkerSize is the side of a marker in points.
const minimalMarkerSize = 2

func (minimalDetail) Render(c scene.Canvas, g *core.Grid) {
	if pts := points(g.CellsWithTag(core.Obstacle)); len(pts) > 0 {
		c.Add(scene.Scatter{Points: pts, Shape: scene.MarkerSquare, Size: minimalMarkerSize, Fill: rgba(Brown, 0.5)})
	}
	if pts := points(g.CellsWithTag(core.Endpoint)); len(pts) > 0 {
		c.Add(scene.Scatter{Points: pts, Shape: scene.MarkerSquare, Size: minimalMarkerSize, Fill: rgba(Orange, 0.5)})
	}
}

// backgroundOnly rasterizes the grid into a single image.
type backgroundOnly struct{}

func (backgroundOnly) Render(c scene.Canvas, g *core.Grid) {
	pix := make([]color.NRGBA, g.Width*g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			pix[y*g.Width+x] = opaque(TagTone(g.At(x, y)))
		}
	}
	c.Add(scene.Image{
		Bounds: scene.GridBounds(g.Width, g.Height),
		W:      g.Width,
		H:      g.Height,
		Pix:    pix,
		Alpha:  0.5,
	})
}

// TagTone is the flat color of a tag in the background image.
func TagTone(t core.CellTag) colorful.Color {
	switch t {
	case core.Obstacle:
		return ShelfTone
	case core.Endpoint:
		return EndpointTone
	case core.RobotZone:
		return RobotZoneTone
	default:
		return White
	}
}

func cellRect(x, y int, fill, edge color.NRGBA) scene.Rect {
	r := scene.Rect{X: float64(x) - 0.5, Y: float64(y) - 0.5, W: 1, H: 1, Fill: fill, Edge: edge}
	if edge.A > 0 {
		r.EdgeWidth = 1
	}
	return r
}

func glyph(x, y int, s string, col color.NRGBA) scene.Text {
	return scene.Text{At: scene.Point{X: float64(x), Y: float64(y)}, Text: s, Size: 6, Color: col, Bold: true}
}

func gridLines(c scene.Canvas, g *core.Grid, spacing int) {
	col := rgba(LightGray, 0.5)
	for x := 0; x < g.Width; x += spacing {
		c.Add(scene.GridLine{Vertical: true, At: float64(x) - 0.5, Color: col, Width: 0.2})
	}
	for y := 0; y < g.Height; y += spacing {
		c.Add(scene.GridLine{At: float64(y) - 0.5, Color: col, Width: 0.2})
	}
}

func points(cells []core.Pos) []scene.Point {
	out := make([]scene.Point, len(cells))
	for i, p := range cells {
		out[i] = scene.P(p)
	}
	return out
}
