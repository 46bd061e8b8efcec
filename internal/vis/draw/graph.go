// Package draw turns grid, frame and panel state into scene primitives, and
// paints scene display lists with Gio.
package draw

import (
	"image"
	"image/color"
	"strings"

	"gioui.org/f32"
	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/elektrokombinacija/kivavis/internal/vis/interact"
	"github.com/elektrokombinacija/kivavis/internal/vis/scene"
)

// Painter paints display lists through a camera.
type Painter struct {
	Theme  *material.Theme
	Camera *interact.Camera
}

// Paint draws every primitive of d in paint order.
func (p *Painter) Paint(gtx layout.Context, d *scene.DisplayList) {
	bounds := gtx.Constraints.Max
	for _, item := range d.Items() {
		switch it := item.(type) {
		case scene.Image:
			p.image(gtx, it)
		case scene.Rect:
			p.rect(gtx, it)
		case scene.Cells:
			for _, c := range it.Cells {
				p.rect(gtx, scene.Rect{X: float64(c.X) - 0.5, Y: float64(c.Y) - 0.5, W: 1, H: 1, Fill: it.Fill})
			}
		case scene.Circle:
			x, y := p.Camera.WorldToScreen(it.Center.X, it.Center.Y)
			r := float32(it.Radius) * p.Camera.Zoom
			drawFilledCircle(gtx, x, y, r, it.Fill)
			if it.Edge.A > 0 {
				drawCircleOutline(gtx, x, y, r, p.px(gtx, it.EdgeWidth), it.Edge)
			}
		case scene.Polyline:
			pts := make([]f32.Point, len(it.Points))
			for i, pt := range it.Points {
				pts[i] = f32.Pt(p.Camera.WorldToScreen(pt.X, pt.Y))
			}
			drawPolyline(gtx, pts, p.px(gtx, it.Width), it.Color)
		case scene.Scatter:
			size := p.px(gtx, it.Size)
			for _, pt := range it.Points {
				x, y := p.Camera.WorldToScreen(pt.X, pt.Y)
				if it.Shape == scene.MarkerStar {
					drawStar(gtx, x, y, size, it.Fill, it.Edge)
				} else {
					drawSquare(gtx, x, y, size, it.Fill)
				}
			}
		case scene.GridLine:
			p.gridLine(gtx, d.Bounds, it, bounds)
		case scene.Text:
			p.text(gtx, it)
		}
	}
}

// px converts points to pixels.
func (p *Painter) px(gtx layout.Context, pt float64) float32 {
	v := float32(pt) * gtx.Metric.PxPerDp
	if v < 1 {
		v = 1
	}
	return v
}

func (p *Painter) rect(gtx layout.Context, r scene.Rect) {
	x0, y0 := p.Camera.WorldToScreen(r.X, r.Y+r.H)
	x1, y1 := p.Camera.WorldToScreen(r.X+r.W, r.Y)
	drawRect(gtx, x0, y0, x1, y1, r.Fill)
	if r.Edge.A > 0 && r.EdgeWidth > 0 {
		drawRectOutline(gtx, x0, y0, x1, y1, p.px(gtx, r.EdgeWidth), r.Edge)
	}
}

func (p *Painter) gridLine(gtx layout.Context, b scene.Bounds, g scene.GridLine, screen image.Point) {
	w := p.px(gtx, g.Width)
	if g.Vertical {
		x, y0 := p.Camera.WorldToScreen(g.At, b.MaxY)
		_, y1 := p.Camera.WorldToScreen(g.At, b.MinY)
		if x < 0 || x > float32(screen.X) {
			return
		}
		drawRect(gtx, x-w/2, y0, x+w/2, y1, g.Color)
		return
	}
	x0, y := p.Camera.WorldToScreen(b.MinX, g.At)
	x1, _ := p.Camera.WorldToScreen(b.MaxX, g.At)
	if y < 0 || y > float32(screen.Y) {
		return
	}
	drawRect(gtx, x0, y-w/2, x1, y+w/2, g.Color)
}

func (p *Painter) image(gtx layout.Context, im scene.Image) {
	if im.W == 0 || im.H == 0 {
		return
	}
	img := image.NewNRGBA(image.Rect(0, 0, im.W, im.H))
	alpha := im.Alpha
	if alpha <= 0 {
		alpha = 1
	}
	for y := 0; y < im.H; y++ {
		for x := 0; x < im.W; x++ {
			c := im.Pix[y*im.W+x]
			c.A = uint8(float64(c.A)*alpha + 0.5)
			// image rows run top-down
			img.SetNRGBA(x, im.H-1-y, c)
		}
	}
	x0, y0 := p.Camera.WorldToScreen(im.Bounds.MinX, im.Bounds.MaxY)
	x1, y1 := p.Camera.WorldToScreen(im.Bounds.MaxX, im.Bounds.MinY)
	sx := (x1 - x0) / float32(im.W)
	sy := (y1 - y0) / float32(im.H)

	tr := op.Affine(f32.Affine2D{}.Scale(f32.Pt(0, 0), f32.Pt(sx, sy)).Offset(f32.Pt(x0, y0))).Push(gtx.Ops)
	cl := clip.Rect(image.Rect(0, 0, im.W, im.H)).Push(gtx.Ops)
	paint.NewImageOp(img).Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
	cl.Pop()
	tr.Pop()
}

func (p *Painter) text(gtx layout.Context, t scene.Text) {
	if p.Theme == nil || t.Size <= 0 {
		return
	}
	x, y := p.Camera.WorldToScreen(t.At.X, t.At.Y)
	gtx.Constraints.Min = image.Point{}
	gtx.Constraints.Max = image.Pt(1<<14, 1<<14)

	lbl := material.Label(p.Theme, unit.Sp(float32(t.Size)), strings.TrimRight(t.Text, "\n"))
	lbl.Color = t.Color
	if t.Bold {
		lbl.Font.Weight = font.Bold
	}
	if t.Mono {
		lbl.Font.Typeface = "monospace"
	}

	macro := op.Record(gtx.Ops)
	dims := lbl.Layout(gtx)
	call := macro.Stop()

	origin := image.Pt(int(x), int(y))
	if t.Anchor == scene.AnchorCenter {
		origin = origin.Sub(dims.Size.Div(2))
	}
	if t.Box.A > 0 {
		pad := gtx.Dp(4)
		box := image.Rectangle{Min: origin, Max: origin.Add(dims.Size)}.Inset(-pad)
		paint.FillShape(gtx.Ops, t.Box, clip.UniformRRect(box, pad).Op(gtx.Ops))
	}
	stack := op.Offset(origin).Push(gtx.Ops)
	call.Add(gtx.Ops)
	stack.Pop()
}

// Fill paints the whole constraint area.
func Fill(gtx layout.Context, col color.NRGBA) {
	paint.FillShape(gtx.Ops, col, clip.Rect(image.Rectangle{Max: gtx.Constraints.Max}).Op())
}
