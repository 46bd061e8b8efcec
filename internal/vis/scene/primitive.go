// Package scene is the drawing boundary between the visualization engine and
// its output backends: a retained display list of a small closed set of
// primitives in data coordinates.
package scene

import (
	"image/color"

	"github.com/elektrokombinacija/kivavis/internal/core"
)

// Point is a position in data coordinates (cells, y pointing up).
type Point struct {
	X, Y float64
}

// P converts a grid cell to the point at its center.
func P(p core.Pos) Point {
	return Point{X: float64(p.X), Y: float64(p.Y)}
}

// Layer orders primitives for drawing; lower layers are painted first.
type Layer int

const (
	LayerImage Layer = iota
	LayerPatch
	LayerLine
	LayerText
)

// Primitive is one drawable item.
type Primitive interface {
	Layer() Layer
}

// Rect is an axis aligned rectangle anchored at its lower-left corner.
type Rect struct {
	X, Y, W, H float64
	Fill       color.NRGBA
	Edge       color.NRGBA // zero alpha draws no edge
	EdgeWidth  float64     // points
}

// Cells fills every listed unit cell with one color.
type Cells struct {
	Cells []core.Pos
	Fill  color.NRGBA
}

// Circle is a filled disc with an optional outline.
type Circle struct {
	Center    Point
	Radius    float64 // data units
	Fill      color.NRGBA
	Edge      color.NRGBA
	EdgeWidth float64
}

// Polyline is an open line strip.
type Polyline struct {
	Points []Point
	Color  color.NRGBA
	Width  float64 // points
}

// Marker is the shape of a scatter point.
type Marker int

const (
	MarkerSquare Marker = iota
	MarkerStar
)

// Scatter draws markers whose on-screen size is fixed in points.
type Scatter struct {
	Points []Point
	Shape  Marker
	Size   float64 // points across, independent of zoom
	Fill   color.NRGBA
	Edge   color.NRGBA
}

// Anchor says which point of a text block sits at Text.At.
type Anchor int

const (
	AnchorCenter Anchor = iota
	AnchorTopLeft
)

// Text is one or more lines of text.
type Text struct {
	At     Point
	Text   string
	Size   float64 // points
	Color  color.NRGBA
	Bold   bool
	Mono   bool
	Anchor Anchor
	Box    color.NRGBA // background box, zero alpha for none
}

// Image is a raster stretched over Bounds. Row y of Pix covers data row y,
// counting up from the bottom of Bounds.
type Image struct {
	Bounds Bounds
	W, H   int
	Pix    []color.NRGBA
	Alpha  float64
}

// GridLine is a full-span vertical or horizontal line at a data coordinate.
type GridLine struct {
	Vertical bool
	At       float64
	Color    color.NRGBA
	Width    float64
}

func (Rect) Layer() Layer     { return LayerPatch }
func (Cells) Layer() Layer    { return LayerPatch }
func (Circle) Layer() Layer   { return LayerPatch }
func (Polyline) Layer() Layer { return LayerLine }
func (Scatter) Layer() Layer  { return LayerLine }
func (GridLine) Layer() Layer { return LayerLine }
func (Text) Layer() Layer     { return LayerText }
func (Image) Layer() Layer    { return LayerImage }

// Bounds is the visible data range of a display list.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// GridBounds covers a width×height grid with cell centers on integers.
func GridBounds(width, height int) Bounds {
	return Bounds{MinX: -0.5, MinY: -0.5, MaxX: float64(width) - 0.5, MaxY: float64(height) - 0.5}
}

func (b Bounds) Width() float64  { return b.MaxX - b.MinX }
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }
