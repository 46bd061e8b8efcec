package raster

import (
	"image"
	"image/color"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/elektrokombinacija/kivavis/internal/core"
	"github.com/elektrokombinacija/kivavis/internal/vis/layout"
	"github.com/elektrokombinacija/kivavis/internal/vis/mode"
	"github.com/elektrokombinacija/kivavis/internal/vis/scene"
)

var (
	red  = color.NRGBA{R: 255, A: 255}
	blue = color.NRGBA{B: 255, A: 255}
)

func rgba(img *image.RGBA, x, y int) color.RGBA {
	return img.RGBAAt(x, y)
}

func TestPaneCells(t *testing.T) {
	r := NewRenderer(layout.Build(mode.Compact, 20))
	d := scene.NewDisplayList(scene.GridBounds(4, 4))
	d.Add(scene.Cells{Cells: []core.Pos{{X: 0, Y: 0}}, Fill: red})
	d.Add(scene.Circle{Center: scene.Point{X: 2, Y: 2}, Radius: 0.3, Fill: blue})

	r.Pane(image.Rect(0, 0, 40, 40), d)
	img := r.Image()

	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"cell (0,0) is bottom left", 5, 35, color.RGBA{R: 255, A: 255}},
		{"circle center", 25, 15, color.RGBA{B: 255, A: 255}},
		{"untouched", 35, 5, color.RGBA{}},
	}
	for _, tt := range tests {
		if got := rgba(img, tt.x, tt.y); got != tt.want {
			t.Errorf("%s: pixel(%d,%d) = %v, want %v", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
}

func TestPaneImageRowsCountUp(t *testing.T) {
	r := NewRenderer(layout.Build(mode.Heatmap, 20))
	d := scene.NewDisplayList(scene.GridBounds(2, 2))
	d.Add(scene.Image{
		Bounds: scene.GridBounds(2, 2),
		W:      2,
		H:      2,
		Pix:    []color.NRGBA{red, blue, blue, blue},
		Alpha:  1,
	})
	r.Pane(image.Rect(0, 0, 20, 20), d)

	if got := rgba(r.Image(), 2, 18); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("bottom-left pixel = %v, want red", got)
	}
	if got := rgba(r.Image(), 2, 2); got != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("top-left pixel = %v, want blue", got)
	}
}

func TestBlend(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	blend(img, 0, 0, color.NRGBA{A: 0})
	if got := img.RGBAAt(0, 0); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("transparent blend = %v, want white", got)
	}
	blend(img, 0, 0, color.NRGBA{R: 0, G: 0, B: 0, A: 255})
	if got := img.RGBAAt(0, 0); got != (color.RGBA{A: 255}) {
		t.Errorf("opaque blend = %v, want black", got)
	}
}

func TestASCII(t *testing.T) {
	tests := []struct{ in, want string }{
		{"R1: (2,3) ACTIVE", "R1: (2,3) ACTIVE"},
		{"• Shelves: 4", "* Shelves: 4"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ascii(tt.in); got != tt.want {
			t.Errorf("ascii(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRender(t *testing.T) {
	Convey("Given a figure with an info pane", t, func() {
		l := layout.Build(mode.Detailed, 20)
		r := NewRenderer(l)

		main := scene.NewDisplayList(scene.GridBounds(8, 6))
		main.SetTitle("Kiva Warehouse")
		main.Add(scene.Rect{X: -0.5, Y: -0.5, W: 8, H: 6, Fill: color.NRGBA{G: 200, A: 255}})

		info := scene.NewDisplayList(scene.Bounds{MaxX: 10, MaxY: 10})
		info.Add(scene.Text{
			At:     scene.Point{X: 0.1, Y: 9.8},
			Text:   "Robots: 3\nSteps: 40",
			Size:   9,
			Color:  color.NRGBA{A: 255},
			Anchor: scene.AnchorTopLeft,
			Box:    color.NRGBA{R: 224, G: 255, B: 255, A: 204},
		})

		img := r.Render(main, info)

		Convey("the image has the layout size", func() {
			So(img.Bounds().Size(), ShouldResemble, l.Size)
		})

		Convey("the main pane center carries the rect fill", func() {
			c := l.Main.Min.Add(l.Main.Size().Div(2))
			So(img.RGBAAt(c.X, c.Y+titleHeight/2), ShouldResemble, color.RGBA{G: 200, A: 255})
		})

		Convey("the title strip holds dark text pixels", func() {
			dark := 0
			for y := l.Main.Min.Y; y < l.Main.Min.Y+titleHeight; y++ {
				for x := l.Main.Min.X; x < l.Main.Max.X; x++ {
					if img.RGBAAt(x, y).R < 128 {
						dark++
					}
				}
			}
			So(dark, ShouldBeGreaterThan, 0)
		})

		Convey("the info pane is painted", func() {
			painted := false
			for y := l.Info.Min.Y; y < l.Info.Min.Y+40 && !painted; y++ {
				for x := l.Info.Min.X; x < l.Info.Min.X+80; x++ {
					if img.RGBAAt(x, y) != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
						painted = true
						break
					}
				}
			}
			So(painted, ShouldBeTrue)
		})
	})
}
