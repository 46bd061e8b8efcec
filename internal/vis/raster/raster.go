// Package raster paints display lists into RGBA images without a window, for
// file export and the browser view.
package raster

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"

	"github.com/elektrokombinacija/kivavis/internal/vis/layout"
	"github.com/elektrokombinacija/kivavis/internal/vis/scene"
)

const (
	titleHeight = 22
	paneMargin  = 6
)

var (
	background = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	titleColor = color.NRGBA{A: 255}
)

// Renderer rasterizes whole figures. The returned image is reused by the
// next call.
type Renderer struct {
	Layout layout.Layout

	img *image.RGBA
	z   vector.Rasterizer
}

// NewRenderer creates a renderer for l.
func NewRenderer(l layout.Layout) *Renderer {
	return &Renderer{Layout: l, img: image.NewRGBA(image.Rectangle{Max: l.Size})}
}

// Render paints main, with its title above it, and info when the layout has
// an info pane.
func (r *Renderer) Render(main, info *scene.DisplayList) *image.RGBA {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	pane := r.Layout.Main
	if title := main.Title(); title != "" {
		c := r.canvas(scene.Viewport{DPI: r.Layout.DPI})
		c.label(pane.Min.X+pane.Dx()/2, pane.Min.Y+titleHeight/2, title, titleColor, true)
		pane.Min.Y += titleHeight
	}
	r.Pane(pane.Inset(paneMargin), main)

	if info != nil && r.Layout.HasInfo() {
		r.Pane(r.Layout.Info, info)
	}
	return r.img
}

// Pane paints d fitted into rect of the current image.
func (r *Renderer) Pane(rect image.Rectangle, d *scene.DisplayList) {
	c := r.canvas(scene.NewViewport(d.Bounds, rect, r.Layout.DPI))
	for _, p := range d.Items() {
		c.primitive(d.Bounds, p)
	}
}

// Image returns the last rendered figure.
func (r *Renderer) Image() *image.RGBA {
	return r.img
}

func (r *Renderer) canvas(vp scene.Viewport) *canvas {
	return &canvas{dst: r.img, vp: vp, z: &r.z}
}

// canvas paints primitives through one viewport.
type canvas struct {
	dst *image.RGBA
	vp  scene.Viewport
	z   *vector.Rasterizer
}

func (c *canvas) primitive(b scene.Bounds, p scene.Primitive) {
	switch it := p.(type) {
	case scene.Image:
		c.image(it)
	case scene.Rect:
		c.rect(it)
	case scene.Cells:
		for _, cell := range it.Cells {
			c.rect(scene.Rect{X: float64(cell.X) - 0.5, Y: float64(cell.Y) - 0.5, W: 1, H: 1, Fill: it.Fill})
		}
	case scene.Circle:
		c.circle(it)
	case scene.Polyline:
		c.polyline(it)
	case scene.Scatter:
		c.scatter(it)
	case scene.GridLine:
		c.gridLine(b, it)
	case scene.Text:
		c.text(it)
	}
}

// px converts points to pixels, at least one.
func (c *canvas) px(pt float64) float64 {
	v := c.vp.Points(pt)
	if v < 1 {
		v = 1
	}
	return v
}

// box converts a data rectangle to pixels.
func (c *canvas) box(x0, y0, x1, y1 float64) image.Rectangle {
	px0, py0 := c.vp.ToPixel(scene.Point{X: x0, Y: y1})
	px1, py1 := c.vp.ToPixel(scene.Point{X: x1, Y: y0})
	return image.Rect(round(px0), round(py0), round(px1), round(py1))
}

func (c *canvas) fill(r image.Rectangle, col color.NRGBA) {
	if col.A == 0 {
		return
	}
	draw.Draw(c.dst, r, image.NewUniform(col), image.Point{}, draw.Over)
}

func (c *canvas) rect(r scene.Rect) {
	pr := c.box(r.X, r.Y, r.X+r.W, r.Y+r.H)
	c.fill(pr, r.Fill)
	if r.Edge.A == 0 || r.EdgeWidth <= 0 {
		return
	}
	w := round(c.px(r.EdgeWidth))
	c.fill(image.Rect(pr.Min.X, pr.Min.Y, pr.Max.X, pr.Min.Y+w), r.Edge)
	c.fill(image.Rect(pr.Min.X, pr.Max.Y-w, pr.Max.X, pr.Max.Y), r.Edge)
	c.fill(image.Rect(pr.Min.X, pr.Min.Y+w, pr.Min.X+w, pr.Max.Y-w), r.Edge)
	c.fill(image.Rect(pr.Max.X-w, pr.Min.Y+w, pr.Max.X, pr.Max.Y-w), r.Edge)
}

func (c *canvas) gridLine(b scene.Bounds, g scene.GridLine) {
	w := c.px(g.Width)
	if g.Vertical {
		x, y0 := c.vp.ToPixel(scene.Point{X: g.At, Y: b.MaxY})
		_, y1 := c.vp.ToPixel(scene.Point{X: g.At, Y: b.MinY})
		c.fill(image.Rect(round(x-w/2), round(y0), round(x+w/2), round(y1)), g.Color)
		return
	}
	x0, y := c.vp.ToPixel(scene.Point{X: b.MinX, Y: g.At})
	x1, _ := c.vp.ToPixel(scene.Point{X: b.MaxX, Y: g.At})
	c.fill(image.Rect(round(x0), round(y-w/2), round(x1), round(y+w/2)), g.Color)
}

// image stretches im over its bounds with nearest sampling.
func (c *canvas) image(im scene.Image) {
	if im.W == 0 || im.H == 0 {
		return
	}
	alpha := im.Alpha
	if alpha <= 0 {
		alpha = 1
	}
	pr := c.box(im.Bounds.MinX, im.Bounds.MinY, im.Bounds.MaxX, im.Bounds.MaxY)
	if pr.Empty() {
		return
	}
	clipped := pr.Intersect(c.dst.Bounds())
	for py := clipped.Min.Y; py < clipped.Max.Y; py++ {
		row := im.H - 1 - (py-pr.Min.Y)*im.H/pr.Dy()
		for px := clipped.Min.X; px < clipped.Max.X; px++ {
			col := (px - pr.Min.X) * im.W / pr.Dx()
			src := im.Pix[row*im.W+col]
			src.A = uint8(float64(src.A)*alpha + 0.5)
			blend(c.dst, px, py, src)
		}
	}
}

// blend composites src over the pixel at (x, y).
func blend(dst *image.RGBA, x, y int, src color.NRGBA) {
	i := dst.PixOffset(x, y)
	a := uint32(src.A)
	inv := 255 - a
	p := dst.Pix[i : i+4 : i+4]
	p[0] = uint8((uint32(src.R)*a + uint32(p[0])*inv) / 255)
	p[1] = uint8((uint32(src.G)*a + uint32(p[1])*inv) / 255)
	p[2] = uint8((uint32(src.B)*a + uint32(p[2])*inv) / 255)
	p[3] = uint8(a + uint32(p[3])*inv/255)
}

func round(v float64) int {
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}
