// Package layout sizes the figure and its panes for a visualization mode.
package layout

import (
	"image"

	"github.com/elektrokombinacija/kivavis/internal/vis/mode"
)

// DefaultDPI matches the window backend's logical resolution.
const DefaultDPI = 80

// Inches is a figure size in inches.
type Inches struct {
	W, H float64
}

// Layout is the figure arrangement, fixed for the run.
type Layout struct {
	Figure Inches
	DPI    float64
	Size   image.Point     // figure in pixels
	Main   image.Rectangle // warehouse pane
	Info   image.Rectangle // empty unless HasInfo
}

// HasInfo reports whether the layout carries an info pane.
func (l Layout) HasInfo() bool {
	return !l.Info.Empty()
}

// Build lays out the panes for m. Non-positive dpi falls back to DefaultDPI.
func Build(m mode.Mode, dpi float64) Layout {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	l := Layout{DPI: dpi}
	switch m {
	case mode.Detailed, mode.Medium:
		l.Figure = Inches{20, 12}
	case mode.Heatmap:
		l.Figure = Inches{18, 14}
	default:
		l.Figure = Inches{16, 12}
	}
	l.Size = image.Pt(int(l.Figure.W*dpi+0.5), int(l.Figure.H*dpi+0.5))

	full := image.Rectangle{Max: l.Size}
	if m == mode.Detailed || m == mode.Medium {
		half := l.Size.X / 2
		l.Main = image.Rect(0, 0, half, l.Size.Y)
		l.Info = image.Rect(half, 0, l.Size.X, l.Size.Y)
		return l
	}
	l.Main = full
	return l
}

// Scaled returns a copy with every pixel rectangle rescaled to dpi.
func (l Layout) Scaled(dpi float64) Layout {
	if dpi <= 0 || dpi == l.DPI {
		return l
	}
	f := dpi / l.DPI
	scale := func(r image.Rectangle) image.Rectangle {
		return image.Rect(
			int(float64(r.Min.X)*f+0.5), int(float64(r.Min.Y)*f+0.5),
			int(float64(r.Max.X)*f+0.5), int(float64(r.Max.Y)*f+0.5),
		)
	}
	out := l
	out.DPI = dpi
	out.Size = image.Pt(int(l.Figure.W*dpi+0.5), int(l.Figure.H*dpi+0.5))
	out.Main = scale(l.Main)
	out.Info = scale(l.Info)
	return out
}
