package main

import (
	"bytes"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/elektrokombinacija/kivavis/internal/core"
	"github.com/elektrokombinacija/kivavis/internal/loader"
)

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestWarehouse(t *testing.T) {
	Convey("Given the default warehouse", t, func() {
		g := Warehouse(loader.DefaultWidth, loader.DefaultHeight)
		stats := g.Stats()

		Convey("It has every cell kind", func() {
			So(stats.Shelves, ShouldBeGreaterThan, 0)
			So(stats.Endpoints, ShouldBeGreaterThan, 0)
			So(stats.RobotZones, ShouldEqual, 2*(loader.DefaultHeight-2))
		})

		Convey("It survives a write and parse", func() {
			var buf bytes.Buffer
			So(loader.WriteMap(&buf, g, 100), ShouldBeNil)
			back, err := loader.ParseMap(&buf)
			So(err, ShouldBeNil)
			So(back.Width, ShouldEqual, g.Width)
			So(back.Height, ShouldEqual, g.Height)
			So(back.Stats(), ShouldResemble, stats)
			for y := 0; y < g.Height; y++ {
				for x := 0; x < g.Width; x++ {
					if back.At(x, y) != g.At(x, y) {
						t.Fatalf("cell (%d,%d) = %v, want %v", x, y, back.At(x, y), g.At(x, y))
					}
				}
			}
		})
	})
}

func TestPaths(t *testing.T) {
	Convey("Given generated paths", t, func() {
		g := Warehouse(loader.DefaultWidth, loader.DefaultHeight)
		p := Params{Seed: 7, Agents: 40, Width: g.Width, Height: g.Height, Steps: 200}
		sol := Paths(g, p)

		So(sol.AgentCount(), ShouldEqual, 40)

		Convey("Every move is to a neighbor and never onto a shelf", func() {
			for id, path := range sol.Paths {
				So(g.At(path[0].X, path[0].Y), ShouldEqual, core.RobotZone)
				So(g.At(path[len(path)-1].X, path[len(path)-1].Y), ShouldEqual, core.Endpoint)
				for i := 1; i < len(path); i++ {
					d := abs(path[i].X-path[i-1].X) + abs(path[i].Y-path[i-1].Y)
					if d > 1 {
						t.Fatalf("agent %d jumps at step %d", id, i)
					}
					if g.At(path[i].X, path[i].Y) == core.Obstacle {
						t.Fatalf("agent %d on a shelf at step %d", id, i)
					}
				}
			}
		})

		Convey("The same seed gives the same paths", func() {
			So(Paths(g, p).Paths, ShouldResemble, sol.Paths)
		})

		Convey("Results survive a write and parse", func() {
			var buf bytes.Buffer
			So(loader.WriteResults(&buf, g, sol), ShouldBeNil)
			back, err := loader.ParseResults(&buf, g)
			So(err, ShouldBeNil)
			So(back.Paths, ShouldResemble, sol.Paths)
		})
	})
}
