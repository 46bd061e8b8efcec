package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/elektrokombinacija/kivavis/internal/vis/scene"
)

// pt is a pixel position.
type pt struct{ x, y float64 }

const (
	minCircleSegments = 12
	maxCircleSegments = 64
	starInner         = 0.382
)

// fillPolys fills the union of closed polygons. Opposite windings cut holes.
// Only the bounding box of the polygons is rasterized.
func (c *canvas) fillPolys(col color.NRGBA, polys ...[]pt) {
	if col.A == 0 {
		return
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, poly := range polys {
		for _, p := range poly {
			minX, minY = math.Min(minX, p.x), math.Min(minY, p.y)
			maxX, maxY = math.Max(maxX, p.x), math.Max(maxY, p.y)
		}
	}
	r := image.Rect(int(math.Floor(minX)), int(math.Floor(minY)), int(math.Ceil(maxX)), int(math.Ceil(maxY)))
	r = r.Intersect(c.dst.Bounds())
	if r.Empty() {
		return
	}

	w, h := float64(r.Dx()), float64(r.Dy())
	local := func(p pt) (float32, float32) {
		x := math.Max(0, math.Min(w, p.x-float64(r.Min.X)))
		y := math.Max(0, math.Min(h, p.y-float64(r.Min.Y)))
		return float32(x), float32(y)
	}
	c.z.Reset(r.Dx(), r.Dy())
	for _, poly := range polys {
		if len(poly) < 3 {
			continue
		}
		c.z.MoveTo(local(poly[0]))
		for _, p := range poly[1:] {
			c.z.LineTo(local(p))
		}
		c.z.ClosePath()
	}
	c.z.Draw(c.dst, r, image.NewUniform(col), image.Point{})
}

// ring returns n points around (cx, cy), counter-clockwise on screen when
// reverse is set.
func ring(cx, cy, radius float64, reverse bool) []pt {
	n := int(radius * 2)
	if n < minCircleSegments {
		n = minCircleSegments
	}
	if n > maxCircleSegments {
		n = maxCircleSegments
	}
	out := make([]pt, n)
	for i := range out {
		a := 2 * math.Pi * float64(i) / float64(n)
		if reverse {
			a = -a
		}
		out[i] = pt{cx + radius*math.Cos(a), cy + radius*math.Sin(a)}
	}
	return out
}

func (c *canvas) circle(ci scene.Circle) {
	x, y := c.vp.ToPixel(ci.Center)
	r := ci.Radius * c.vp.Scale()
	if r < 0.5 {
		r = 0.5
	}
	c.fillPolys(ci.Fill, ring(x, y, r, false))
	if ci.Edge.A == 0 || ci.EdgeWidth <= 0 {
		return
	}
	w := c.px(ci.EdgeWidth)
	inner := r - w/2
	if inner < 0 {
		inner = 0
	}
	c.fillPolys(ci.Edge, ring(x, y, r+w/2, false), ring(x, y, inner, true))
}

func (c *canvas) polyline(l scene.Polyline) {
	if len(l.Points) < 2 {
		return
	}
	half := c.px(l.Width) / 2
	quads := make([][]pt, 0, len(l.Points)-1)
	for i := 1; i < len(l.Points); i++ {
		x0, y0 := c.vp.ToPixel(l.Points[i-1])
		x1, y1 := c.vp.ToPixel(l.Points[i])
		dx, dy := x1-x0, y1-y0
		length := math.Hypot(dx, dy)
		if length == 0 {
			continue
		}
		nx, ny := -dy/length*half, dx/length*half
		quads = append(quads, []pt{
			{x0 + nx, y0 + ny},
			{x1 + nx, y1 + ny},
			{x1 - nx, y1 - ny},
			{x0 - nx, y0 - ny},
		})
	}
	// one pass keeps joints from doubling the alpha
	c.fillPolys(l.Color, quads...)
}

func (c *canvas) scatter(s scene.Scatter) {
	size := c.px(s.Size)
	for _, p := range s.Points {
		x, y := c.vp.ToPixel(p)
		if s.Shape == scene.MarkerStar {
			c.star(x, y, size/2, s.Fill, s.Edge)
			continue
		}
		h := size / 2
		c.fill(image.Rect(round(x-h), round(y-h), round(x+h), round(y+h)), s.Fill)
	}
}

func starPoints(cx, cy, radius float64) []pt {
	out := make([]pt, 10)
	for i := range out {
		r := radius
		if i%2 == 1 {
			r = radius * starInner
		}
		a := -math.Pi/2 + float64(i)*math.Pi/5
		out[i] = pt{cx + r*math.Cos(a), cy + r*math.Sin(a)}
	}
	return out
}

func (c *canvas) star(cx, cy, radius float64, fill, edge color.NRGBA) {
	if edge.A > 0 {
		c.fillPolys(edge, starPoints(cx, cy, radius+1))
	}
	c.fillPolys(fill, starPoints(cx, cy, radius))
}
