package palette

import (
	"math"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
	. "github.com/smartystreets/goconvey/convey"
)

func TestAssignSize(t *testing.T) {
	for _, n := range []int{0, 1, 2, 12, 13, 37, 50, 51, 600, 1500} {
		if got := Assign(n).Len(); got != n {
			t.Errorf("Assign(%d).Len() = %d, want %d", n, got, n)
		}
	}
}

func TestAssignDeterministic(t *testing.T) {
	for _, n := range []int{5, 40, 300} {
		a, b := Assign(n), Assign(n)
		for id := 0; id < n; id++ {
			if a.At(id) != b.At(id) {
				t.Fatalf("Assign(%d): color of %d differs between calls", n, id)
			}
		}
	}
}

func TestSmallTeamsUseSet3(t *testing.T) {
	tests := []struct {
		n    int
		id   int
		want colorful.Color
	}{
		{1, 0, Set3[0]},
		{2, 0, Set3[0]},
		{2, 1, Set3[11]},
		{12, 5, Set3[5]},
		{12, 11, Set3[11]},
		// linspace(0,1,5)[2] = 0.5 -> index 6
		{5, 2, Set3[6]},
	}

	for _, tt := range tests {
		if got := Assign(tt.n).At(tt.id); got != tt.want {
			t.Errorf("Assign(%d).At(%d) = %v, want %v", tt.n, tt.id, got.Hex(), tt.want.Hex())
		}
	}
}

func TestMediumTeamsUseFourPalettes(t *testing.T) {
	Convey("Given 20 agents", t, func() {
		table := Assign(20)

		Convey("blocks of five agents cycle through the four palettes", func() {
			So(table.At(0), ShouldResemble, Set3[0])
			So(table.At(5), ShouldResemble, Dark2[0])
			So(table.At(10), ShouldResemble, Paired[0])
			So(table.At(15), ShouldResemble, Accent[0])
		})

		Convey("agent j of a block samples j/blockSize", func() {
			// Dark2 has 8 entries: 2/5*8 = 3.2 -> index 3
			So(table.At(7), ShouldResemble, Dark2[3])
			// Set3 has 12 entries: 4/5*12 = 9.6 -> index 9
			So(table.At(4), ShouldResemble, Set3[9])
		})
	})

	Convey("Given 13 agents the last block is short", t, func() {
		table := Assign(13)
		So(table.Len(), ShouldEqual, 13)
		// block size 4; agent 12 opens the Accent block
		So(table.At(12), ShouldResemble, Accent[0])
	})
}

func TestLargeTeamsUseRainbow(t *testing.T) {
	table := Assign(100)
	rb := NewRainbow()

	if table.At(0) != rb.At(0) {
		t.Errorf("first agent should take the start of the rainbow")
	}
	if table.At(99) != rb.At(1) {
		t.Errorf("last agent should take the end of the rainbow")
	}

	start := rb.At(0)
	if math.Abs(start.R-0.5) > 0.01 || start.G > 0.01 || math.Abs(start.B-1) > 0.01 {
		t.Errorf("rainbow start = %v, want violet (0.5, 0, 1)", start)
	}
	end := rb.At(1)
	if math.Abs(end.R-1) > 0.01 || end.G > 0.02 || end.B > 0.01 {
		t.Errorf("rainbow end = %v, want red", end)
	}
}

func TestTableAtWraps(t *testing.T) {
	table := Assign(3)
	if table.At(3) != table.At(0) || table.At(-1) != table.At(2) {
		t.Errorf("At should wrap modulo the table size")
	}
	if (Table{}).At(7) != Grey {
		t.Errorf("empty table should answer Grey")
	}
}

func TestHot(t *testing.T) {
	tests := []struct {
		x    float64
		want colorful.Color
	}{
		{-1, colorful.Color{R: 0.0416}},
		{0, colorful.Color{R: 0.0416}},
		{0.365079, colorful.Color{R: 1}},
		{0.746032, colorful.Color{R: 1, G: 1}},
		{1, colorful.Color{R: 1, G: 1, B: 1}},
		{2, colorful.Color{R: 1, G: 1, B: 1}},
	}

	for _, tt := range tests {
		got := Hot.At(tt.x)
		if !got.AlmostEqualRgb(tt.want) {
			t.Errorf("Hot.At(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}

	mid := Hot.At((0.365079 + 0.746032) / 2)
	if mid.R != 1 || math.Abs(mid.G-0.5) > 1e-6 || mid.B != 0 {
		t.Errorf("Hot between red and yellow = %v, want orange", mid)
	}
}

func TestNRGBA(t *testing.T) {
	c := NRGBA(RGB(255, 165, 0), 0.5)
	if c.R != 255 || c.G != 165 || c.B != 0 || c.A != 128 {
		t.Errorf("NRGBA(orange, 0.5) = %+v", c)
	}
}
