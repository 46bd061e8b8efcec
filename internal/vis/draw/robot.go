package draw

import (
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
)

const circleSegments = 24

func drawSquare(gtx layout.Context, cx, cy, size float32, col color.NRGBA) {
	halfSize := size / 2
	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(f32.Pt(cx-halfSize, cy-halfSize))
	path.LineTo(f32.Pt(cx+halfSize, cy-halfSize))
	path.LineTo(f32.Pt(cx+halfSize, cy+halfSize))
	path.LineTo(f32.Pt(cx-halfSize, cy+halfSize))
	path.Close()

	paint.FillShape(gtx.Ops, col, clip.Outline{Path: path.End()}.Op())
}

func drawRect(gtx layout.Context, x0, y0, x1, y1 float32, col color.NRGBA) {
	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(f32.Pt(x0, y0))
	path.LineTo(f32.Pt(x1, y0))
	path.LineTo(f32.Pt(x1, y1))
	path.LineTo(f32.Pt(x0, y1))
	path.Close()

	paint.FillShape(gtx.Ops, col, clip.Outline{Path: path.End()}.Op())
}

func drawRectOutline(gtx layout.Context, x0, y0, x1, y1, width float32, col color.NRGBA) {
	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(f32.Pt(x0, y0))
	path.LineTo(f32.Pt(x1, y0))
	path.LineTo(f32.Pt(x1, y1))
	path.LineTo(f32.Pt(x0, y1))
	path.Close()

	paint.FillShape(gtx.Ops, col, clip.Stroke{Path: path.End(), Width: width}.Op())
}

func circlePath(gtx layout.Context, cx, cy, radius float32) clip.PathSpec {
	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(f32.Pt(cx+radius, cy))
	for i := 1; i <= circleSegments; i++ {
		angle := float64(i) * 2 * math.Pi / circleSegments
		path.LineTo(f32.Pt(cx+radius*float32(math.Cos(angle)), cy+radius*float32(math.Sin(angle))))
	}
	path.Close()
	return path.End()
}

func drawFilledCircle(gtx layout.Context, cx, cy, radius float32, col color.NRGBA) {
	paint.FillShape(gtx.Ops, col, clip.Outline{Path: circlePath(gtx, cx, cy, radius)}.Op())
}

func drawCircleOutline(gtx layout.Context, cx, cy, radius, width float32, col color.NRGBA) {
	paint.FillShape(gtx.Ops, col, clip.Stroke{Path: circlePath(gtx, cx, cy, radius), Width: width}.Op())
}

// starPoints returns the ten vertices of a five-pointed star of the given
// outer radius, first point up.
func starPoints(cx, cy, radius float32) []f32.Point {
	inner := radius * 0.382
	pts := make([]f32.Point, 10)
	for i := range pts {
		r := radius
		if i%2 == 1 {
			r = inner
		}
		angle := -math.Pi/2 + float64(i)*math.Pi/5
		pts[i] = f32.Pt(cx+r*float32(math.Cos(angle)), cy+r*float32(math.Sin(angle)))
	}
	return pts
}

func drawStar(gtx layout.Context, cx, cy, size float32, fill, edge color.NRGBA) {
	pts := starPoints(cx, cy, size/2)
	build := func() clip.PathSpec {
		var path clip.Path
		path.Begin(gtx.Ops)
		path.MoveTo(pts[0])
		for _, p := range pts[1:] {
			path.LineTo(p)
		}
		path.Close()
		return path.End()
	}
	paint.FillShape(gtx.Ops, fill, clip.Outline{Path: build()}.Op())
	if edge.A > 0 {
		paint.FillShape(gtx.Ops, edge, clip.Stroke{Path: build(), Width: 1}.Op())
	}
}
