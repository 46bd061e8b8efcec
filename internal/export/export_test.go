package export

import (
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/elektrokombinacija/kivavis/internal/core"
	"github.com/elektrokombinacija/kivavis/internal/vis/engine"
	"github.com/elektrokombinacija/kivavis/internal/vis/state"
)

func testEngine() *engine.Engine {
	g := core.NewGridFunc(6, 4, func(x, y int) core.CellTag {
		if x == 3 && y == 0 {
			return core.Endpoint
		}
		return core.Free
	})
	sol := core.NewSolution([]core.AgentPath{
		{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}},
		{{X: 5, Y: 3}, {X: 5, Y: 2}},
	})
	return engine.New(g, sol)
}

func TestRun(t *testing.T) {
	Convey("Given a short two agent run", t, func() {
		eng := testEngine()
		dir := t.TempDir()

		Convey("A PNG export writes every frame of every loop", func() {
			m, err := Run(eng, Options{Dir: dir, Format: FormatPNG, Loops: 2, Chart: true, DPI: 8})
			So(err, ShouldBeNil)
			So(m.Frames, ShouldEqual, 8)
			So(len(m.Files), ShouldEqual, 8)
			So(m.Files[0], ShouldEqual, "frame_00000.png")
			So(m.Agents, ShouldEqual, 2)
			So(m.MaxTimestep, ShouldEqual, 4)
			So(m.Mode, ShouldEqual, eng.Profile.Mode.String())
			So(m.Chart, ShouldEqual, ChartFile)
			So(m.Final.Picking, ShouldEqual, 1)

			f, err := os.Open(filepath.Join(dir, m.Files[7]))
			So(err, ShouldBeNil)
			img, err := png.Decode(f)
			f.Close()
			So(err, ShouldBeNil)
			So(img.Bounds().Dx(), ShouldEqual, m.Width)
			So(m.Width, ShouldEqual, eng.Layout.Scaled(8).Size.X)

			_, err = os.Stat(filepath.Join(dir, ChartFile))
			So(err, ShouldBeNil)

			Convey("and a manifest that reads back", func() {
				back, err := ReadManifest(filepath.Join(dir, ManifestFile))
				So(err, ShouldBeNil)
				So(back.RunID, ShouldEqual, m.RunID)
				So(back.Files, ShouldResemble, m.Files)
				So(back.Grid, ShouldResemble, GridSize{6, 4})
				So(back.Interval, ShouldEqual, "300ms")
			})
		})

		Convey("An MJPEG export writes one video", func() {
			m, err := Run(eng, Options{Dir: dir, Format: FormatMJPEG, Loops: 1, DPI: 8})
			So(err, ShouldBeNil)
			So(m.Files, ShouldResemble, []string{VideoFile})
			So(m.Chart, ShouldBeEmpty)
			st, err := os.Stat(filepath.Join(dir, VideoFile))
			So(err, ShouldBeNil)
			So(st.Size(), ShouldBeGreaterThan, 0)
		})

		Convey("An unknown format is rejected", func() {
			_, err := Run(eng, Options{Dir: dir, Format: "gif"})
			So(errors.Is(err, ErrFormat), ShouldBeTrue)
		})
	})
}

func TestStatusChart(t *testing.T) {
	Convey("A single step cannot be charted", t, func() {
		_, err := StatusChart([]state.Counts{{Active: 1}}, 1)
		So(errors.Is(err, ErrTooFewSteps), ShouldBeTrue)
	})

	Convey("The chart has one series per status", t, func() {
		graph, err := StatusChart([]state.Counts{{Active: 2}, {Active: 1, Picking: 1}}, 2)
		So(err, ShouldBeNil)
		So(len(graph.Series), ShouldEqual, 3)
		So(graph.YAxis.Range.GetMax(), ShouldEqual, 2)
	})
}

func TestFPS(t *testing.T) {
	cases := []struct {
		interval time.Duration
		want     int
	}{
		{300 * time.Millisecond, 3},
		{400 * time.Millisecond, 3},
		{500 * time.Millisecond, 2},
		{600 * time.Millisecond, 2},
		{5 * time.Second, 1},
		{0, 1},
	}
	for _, c := range cases {
		if got := FPS(c.interval); got != c.want {
			t.Errorf("FPS(%v) = %d, want %d", c.interval, got, c.want)
		}
	}
}
