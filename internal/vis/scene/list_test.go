package scene

import (
	"image"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestItemsOrder(t *testing.T) {
	d := NewDisplayList(GridBounds(4, 4))
	d.Add(Text{Text: "a"})
	d.Add(Circle{Radius: 1})
	d.Add(Image{W: 1, H: 1})
	d.Add(Polyline{})
	d.Add(Rect{W: 1})

	items := d.Items()
	want := []Layer{LayerImage, LayerPatch, LayerPatch, LayerLine, LayerText}
	if len(items) != len(want) {
		t.Fatalf("Items() returned %d primitives, want %d", len(items), len(want))
	}
	for i, p := range items {
		if p.Layer() != want[i] {
			t.Errorf("item %d layer = %v, want %v", i, p.Layer(), want[i])
		}
	}
	// within a layer insertion order holds
	if _, ok := items[1].(Circle); !ok {
		t.Errorf("item 1 = %T, want Circle", items[1])
	}
	if _, ok := items[2].(Rect); !ok {
		t.Errorf("item 2 = %T, want Rect", items[2])
	}
}

func TestGridBounds(t *testing.T) {
	b := GridBounds(46, 33)
	if b != (Bounds{-0.5, -0.5, 45.5, 32.5}) {
		t.Errorf("GridBounds(46, 33) = %+v", b)
	}
	if b.Width() != 46 || b.Height() != 33 {
		t.Errorf("size = %vx%v, want 46x33", b.Width(), b.Height())
	}
}

func TestArenaDrain(t *testing.T) {
	Convey("Given a display list holding static primitives", t, func() {
		d := NewDisplayList(GridBounds(3, 3))
		d.Add(Rect{W: 1, H: 1})
		d.Add(Rect{X: 1, W: 1, H: 1})
		a := NewArena(d)

		Convey("a drained frame leaves only the static primitives", func() {
			a.Add(Circle{Radius: 0.4})
			a.Add(Text{Text: "0"})
			So(d.Len(), ShouldEqual, 4)

			a.Drain()
			So(d.Len(), ShouldEqual, 2)
			So(a.Len(), ShouldEqual, 0)
		})

		Convey("repeated frames never accumulate", func() {
			for frame := 0; frame < 10; frame++ {
				a.Drain()
				a.Add(Circle{Radius: 0.4})
				a.Add(Polyline{})
			}
			So(d.Len(), ShouldEqual, 4)
		})

		Convey("removing through the arena forgets the handle", func() {
			h := a.Add(Circle{})
			a.Remove(h)
			So(a.Len(), ShouldEqual, 0)
			So(d.Len(), ShouldEqual, 2)
		})

		Convey("titles pass through", func() {
			a.SetTitle("Step: 3")
			So(d.Title(), ShouldEqual, "Step: 3")
		})
	})
}

func TestViewport(t *testing.T) {
	// a 4x2 grid in a 400x400 pane: 100 px per cell, centered vertically
	v := NewViewport(GridBounds(4, 2), image.Rect(0, 0, 400, 400), 72)

	if v.Scale() != 100 {
		t.Fatalf("Scale() = %v, want 100", v.Scale())
	}

	tests := []struct {
		p      Point
		wx, wy float64
	}{
		{Point{-0.5, -0.5}, 0, 300},
		{Point{3.5, 1.5}, 400, 100},
		{Point{0, 0}, 50, 250},
	}
	for _, tt := range tests {
		x, y := v.ToPixel(tt.p)
		if x != tt.wx || y != tt.wy {
			t.Errorf("ToPixel(%v) = (%v, %v), want (%v, %v)", tt.p, x, y, tt.wx, tt.wy)
		}
		if back := v.ToData(x, y); back != tt.p {
			t.Errorf("ToData(ToPixel(%v)) = %v", tt.p, back)
		}
	}

	if got := v.Points(10); got != 10 {
		t.Errorf("Points(10) at 72 dpi = %v", got)
	}
}
