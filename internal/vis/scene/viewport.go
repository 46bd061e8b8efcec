package scene

import (
	"image"
	"math"
)

// Viewport maps a display list's data bounds into a pixel rectangle with
// equal aspect, centered, y pointing up.
type Viewport struct {
	Bounds Bounds
	Rect   image.Rectangle
	DPI    float64

	scale      float64
	offX, offY float64
}

// NewViewport fits b into r.
func NewViewport(b Bounds, r image.Rectangle, dpi float64) Viewport {
	v := Viewport{Bounds: b, Rect: r, DPI: dpi}
	if b.Width() <= 0 || b.Height() <= 0 || r.Empty() {
		v.scale = 1
		return v
	}
	sx := float64(r.Dx()) / b.Width()
	sy := float64(r.Dy()) / b.Height()
	v.scale = math.Min(sx, sy)
	v.offX = float64(r.Min.X) + (float64(r.Dx())-b.Width()*v.scale)/2
	v.offY = float64(r.Min.Y) + (float64(r.Dy())-b.Height()*v.scale)/2
	return v
}

// Scale is pixels per data unit.
func (v Viewport) Scale() float64 { return v.scale }

// ToPixel converts a data point to pixel coordinates.
func (v Viewport) ToPixel(p Point) (x, y float64) {
	x = v.offX + (p.X-v.Bounds.MinX)*v.scale
	y = v.offY + (v.Bounds.MaxY-p.Y)*v.scale
	return x, y
}

// ToData converts pixel coordinates back to data.
func (v Viewport) ToData(x, y float64) Point {
	return Point{
		X: v.Bounds.MinX + (x-v.offX)/v.scale,
		Y: v.Bounds.MaxY - (y-v.offY)/v.scale,
	}
}

// Points converts a length in points to pixels.
func (v Viewport) Points(pt float64) float64 {
	dpi := v.DPI
	if dpi <= 0 {
		dpi = 72
	}
	return pt * dpi / 72
}
