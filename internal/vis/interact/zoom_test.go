package interact

import (
	"math"
	"testing"

	"github.com/elektrokombinacija/kivavis/internal/vis/scene"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-3
}

func TestFitBounds(t *testing.T) {
	c := NewCamera()
	c.FitBounds(scene.GridBounds(10, 5), 400, 400, 0)

	if !near(c.Zoom, 40) {
		t.Fatalf("Zoom = %v, want 40", c.Zoom)
	}

	tests := []struct {
		wx, wy float64
		sx, sy float32
	}{
		{-0.5, -0.5, 0, 300},
		{9.5, 4.5, 400, 100},
	}
	for _, tt := range tests {
		sx, sy := c.WorldToScreen(tt.wx, tt.wy)
		if !near(sx, tt.sx) || !near(sy, tt.sy) {
			t.Errorf("WorldToScreen(%v, %v) = (%v, %v), want (%v, %v)", tt.wx, tt.wy, sx, sy, tt.sx, tt.sy)
		}
	}
}

func TestScreenToWorldInverts(t *testing.T) {
	c := NewCamera()
	c.FitBounds(scene.GridBounds(46, 33), 800, 600, 10)
	c.Pan(13, -7)
	c.ZoomBy(1.3, 200, 150)

	for _, p := range [][2]float64{{0, 0}, {45, 32}, {12.5, 3.25}} {
		sx, sy := c.WorldToScreen(p[0], p[1])
		wx, wy := c.ScreenToWorld(sx, sy)
		if math.Abs(wx-p[0]) > 1e-3 || math.Abs(wy-p[1]) > 1e-3 {
			t.Errorf("round trip of %v = (%v, %v)", p, wx, wy)
		}
	}
}

func TestZoomKeepsPointUnderCursor(t *testing.T) {
	c := NewCamera()
	c.FitBounds(scene.GridBounds(20, 20), 500, 500, 0)
	wx, wy := c.ScreenToWorld(120, 340)

	c.ZoomBy(2, 120, 340)

	sx, sy := c.WorldToScreen(wx, wy)
	if !near(sx, 120) || !near(sy, 340) {
		t.Errorf("point moved to (%v, %v)", sx, sy)
	}
	if !c.Touched() {
		t.Error("zoom should mark the camera touched")
	}
}

func TestReset(t *testing.T) {
	c := NewCamera()
	c.FitBounds(scene.GridBounds(8, 8), 320, 320, 0)
	want := *c

	c.Pan(50, 50)
	c.ZoomBy(3, 0, 0)
	c.Reset()

	if !near(c.Zoom, want.Zoom) || !near(c.OffsetX, want.OffsetX) || !near(c.OffsetY, want.OffsetY) {
		t.Errorf("Reset() left zoom %v offset (%v, %v), want %v (%v, %v)",
			c.Zoom, c.OffsetX, c.OffsetY, want.Zoom, want.OffsetX, want.OffsetY)
	}
	if c.Touched() {
		t.Error("Reset should clear the touched flag")
	}
}
