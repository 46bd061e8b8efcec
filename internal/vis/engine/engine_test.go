package engine

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/elektrokombinacija/kivavis/internal/core"
	"github.com/elektrokombinacija/kivavis/internal/vis/mode"
	"github.com/elektrokombinacija/kivavis/internal/vis/scene"
	. "github.com/smartystreets/goconvey/convey"
)

func warehouse(w, h int) *core.Grid {
	return core.NewGridFunc(w, h, func(x, y int) core.CellTag {
		switch {
		case x == 5 && y == 5:
			return core.Endpoint
		case x%4 == 3 && y%3 == 1:
			return core.Obstacle
		case y == 0:
			return core.RobotZone
		}
		return core.Free
	})
}

func crowd(n, length int) *core.Solution {
	paths := make([]core.AgentPath, n)
	for i := range paths {
		p := make(core.AgentPath, length-i%3)
		for t := range p {
			p[t] = core.Pos{X: (i + t) % 10, Y: (i / 10) % 10}
		}
		paths[i] = p
	}
	return core.NewSolution(paths)
}

func countText(items []scene.Primitive) int {
	n := 0
	for _, p := range items {
		if _, ok := p.(scene.Text); ok {
			n++
		}
	}
	return n
}

func TestEngineModes(t *testing.T) {
	tests := []struct {
		agents   int
		want     mode.Mode
		wantInfo bool
	}{
		{1, mode.Detailed, true},
		{20, mode.Medium, true},
		{60, mode.Compact, false},
		{200, mode.Dense, false},
		{600, mode.Heatmap, false},
	}

	for _, tt := range tests {
		e := New(warehouse(12, 12), crowd(tt.agents, 8))
		if e.Profile.Mode != tt.want {
			t.Errorf("%d agents: mode %v, want %v", tt.agents, e.Profile.Mode, tt.want)
		}
		s := e.Render(0)
		if (s.Info != nil) != tt.wantInfo {
			t.Errorf("%d agents: info pane present = %v, want %v", tt.agents, s.Info != nil, tt.wantInfo)
		}
		if e.Layout.HasInfo() != tt.wantInfo {
			t.Errorf("%d agents: layout info = %v, want %v", tt.agents, e.Layout.HasInfo(), tt.wantInfo)
		}
		if e.Colors.Len() != tt.agents {
			t.Errorf("%d agents: %d colors", tt.agents, e.Colors.Len())
		}
	}
}

func TestFramesDoNotAccumulate(t *testing.T) {
	Convey("Given a detailed run", t, func() {
		e := New(warehouse(10, 10), crowd(5, 12))
		first := e.Render(3).Main.Len()
		firstInfo := e.Render(3).Info.Len()

		Convey("rendering every step of several loops leaves the same list for the same step", func() {
			for i := 0; i < 3*e.Playback.MaxStep; i++ {
				e.Step()
			}
			s := e.Render(3)
			So(s.Main.Len(), ShouldEqual, first)
			So(s.Info.Len(), ShouldEqual, firstInfo)
			So(s.Info.Len(), ShouldEqual, 1)
		})
	})
}

func TestHeatmapHasNoLabels(t *testing.T) {
	e := New(warehouse(12, 12), crowd(600, 6))
	for step := 0; step < e.Playback.MaxStep; step++ {
		s := e.Render(step)
		if n := countText(s.Main.Items()); n != 0 {
			t.Fatalf("step %d: heatmap drew %d text primitives", step, n)
		}
		if !strings.HasPrefix(s.Title(), "Kiva Warehouse Heatmap - ") {
			t.Fatalf("step %d: title %q", step, s.Title())
		}
	}
}

func TestPickingTitle(t *testing.T) {
	g := core.NewGridFunc(10, 10, func(x, y int) core.CellTag {
		if x == 5 && y == 5 {
			return core.Endpoint
		}
		return core.Free
	})
	path := make(core.AgentPath, 6)
	for i := range path {
		path[i] = core.Pos{X: i, Y: i}
	}
	e := New(g, core.NewSolution([]core.AgentPath{path}))

	s := e.Render(5)
	want := "Kiva Warehouse (1 robots) - Active: 0 | Picking: 1 | Completed: 0 - Step: 5"
	if s.Title() != want {
		t.Errorf("Title() = %q, want %q", s.Title(), want)
	}
}

func TestStepWraps(t *testing.T) {
	e := New(warehouse(10, 10), crowd(2, 4))
	var steps []int
	for i := 0; i < 9; i++ {
		steps = append(steps, e.Step().Step)
	}
	want := []int{0, 1, 2, 3, 0, 1, 2, 3, 0}
	for i := range want {
		if steps[i] != want[i] {
			t.Fatalf("steps = %v, want %v", steps, want)
		}
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	e := New(warehouse(10, 10), crowd(3, 4), WithInterval(time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var steps []int
	err := e.Run(ctx, SinkFunc(func(s *Snapshot) error {
		steps = append(steps, s.Step)
		if len(steps) == 6 {
			cancel()
		}
		return nil
	}))
	if err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if len(steps) < 6 {
		t.Fatalf("presented %d frames, want at least 6", len(steps))
	}
	for i, s := range steps[:6] {
		if s != i%4 {
			t.Errorf("frame %d showed step %d, want %d", i, s, i%4)
		}
	}
}

func TestRunReturnsSinkError(t *testing.T) {
	e := New(warehouse(10, 10), crowd(3, 4), WithInterval(time.Millisecond))
	boom := errors.New("boom")
	n := 0
	err := e.Run(context.Background(), SinkFunc(func(*Snapshot) error {
		n++
		if n == 3 {
			return boom
		}
		return nil
	}))
	if !errors.Is(err, boom) {
		t.Errorf("Run() = %v, want %v", err, boom)
	}
}

func TestRunLoops(t *testing.T) {
	e := New(warehouse(10, 10), crowd(3, 5))
	e.Playback.Seek(2)
	n := 0
	if err := e.RunLoops(SinkFunc(func(s *Snapshot) error {
		if s.Step != n%5 {
			t.Errorf("frame %d showed step %d", n, s.Step)
		}
		n++
		return nil
	}), 2); err != nil {
		t.Fatal(err)
	}
	if n != 10 {
		t.Errorf("presented %d frames, want 10", n)
	}
}
