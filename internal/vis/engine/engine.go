// Package engine wires the adaptive visualization together and drives the
// animation loop.
package engine

import (
	"context"
	"time"

	"github.com/elektrokombinacija/kivavis/internal/core"
	"github.com/elektrokombinacija/kivavis/internal/vis/draw"
	"github.com/elektrokombinacija/kivavis/internal/vis/layout"
	"github.com/elektrokombinacija/kivavis/internal/vis/mode"
	"github.com/elektrokombinacija/kivavis/internal/vis/palette"
	"github.com/elektrokombinacija/kivavis/internal/vis/scene"
	"github.com/elektrokombinacija/kivavis/internal/vis/state"
)

// Snapshot is one rendered frame. The display lists are owned by the engine
// and stay valid only until the next frame is rendered.
type Snapshot struct {
	Step    int
	Frame   *state.Frame
	Main    *scene.DisplayList
	Info    *scene.DisplayList // nil without an info pane
	Layout  layout.Layout
	Profile mode.Profile
}

// Title is the main pane title of the frame.
func (s *Snapshot) Title() string {
	return s.Main.Title()
}

// Sink consumes rendered frames.
type Sink interface {
	Present(s *Snapshot) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(s *Snapshot) error

func (f SinkFunc) Present(s *Snapshot) error { return f(s) }

// Option configures an Engine.
type Option func(*Engine)

// WithDPI sets the layout resolution.
func WithDPI(dpi float64) Option {
	return func(e *Engine) { e.dpi = dpi }
}

// WithInterval overrides the frame interval chosen from the agent count.
func WithInterval(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.interval = d
		}
	}
}

// Engine owns the grid, the solution and every per-run derivation of them.
type Engine struct {
	Grid     *core.Grid
	Solution *core.Solution
	Profile  mode.Profile
	Colors   palette.Table
	Layout   layout.Layout
	Playback *state.Playback

	dpi      float64
	interval time.Duration

	main, info           *scene.DisplayList
	mainArena, infoArena *scene.Arena
	frames               *draw.FrameRenderer
	panel                *draw.InfoPanel
}

// New derives the mode, colors and layout for the run and renders the
// static warehouse once.
func New(g *core.Grid, sol *core.Solution, opts ...Option) *Engine {
	n := sol.AgentCount()
	e := &Engine{
		Grid:     g,
		Solution: sol,
		Profile:  mode.Select(n),
		Colors:   palette.Assign(n),
		dpi:      layout.DefaultDPI,
	}
	e.interval = e.Profile.Interval
	for _, opt := range opts {
		opt(e)
	}
	e.Profile.Interval = e.interval
	e.Layout = layout.Build(e.Profile.Mode, e.dpi)
	e.Playback = state.NewPlayback(sol.MaxTimestep(), e.Profile.Interval)

	e.main = scene.NewDisplayList(scene.GridBounds(g.Width, g.Height))
	draw.StaticRendererFor(e.Profile.GridDetail).Render(e.main, g)
	e.mainArena = scene.NewArena(e.main)
	e.frames = &draw.FrameRenderer{Profile: e.Profile, Colors: e.Colors, AgentCount: n}

	if e.Profile.UsesInfoPanel {
		e.info = scene.NewDisplayList(draw.InfoBounds)
		e.infoArena = scene.NewArena(e.info)
		e.panel = &draw.InfoPanel{Mode: e.Profile.Mode, Grid: g, AgentCount: n}
	}
	return e
}

// Render computes and draws step t. Playback only records it as shown.
func (e *Engine) Render(t int) *Snapshot {
	e.Playback.Shown = t
	f := state.Compute(e.Grid, e.Solution, e.Profile, t)
	e.frames.Draw(e.mainArena, e.Grid, f)
	if e.panel != nil {
		e.panel.Draw(e.infoArena, f)
	}
	return &Snapshot{
		Step:    t,
		Frame:   f,
		Main:    e.main,
		Info:    e.info,
		Layout:  e.Layout,
		Profile: e.Profile,
	}
}

// Step renders the current playback step and advances, wrapping at the end.
func (e *Engine) Step() *Snapshot {
	s := e.Render(e.Playback.Step)
	if e.Playback.Playing {
		e.Playback.Advance()
	}
	return s
}

// Run presents frames to sink at the profile interval until ctx is done or
// the sink fails. Paused playback skips ticks unless it was moved to another
// step.
func (e *Engine) Run(ctx context.Context, sink Sink) error {
	ticker := time.NewTicker(e.Profile.Interval)
	defer ticker.Stop()

	if err := sink.Present(e.Step()); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			var s *Snapshot
			switch {
			case e.Playback.Playing:
				s = e.Step()
			case e.Playback.Pending():
				s = e.Render(e.Playback.Step)
			default:
				continue
			}
			if err := sink.Present(s); err != nil {
				return err
			}
		}
	}
}

// RunLoops presents loops full passes over the solution without delay.
func (e *Engine) RunLoops(sink Sink, loops int) error {
	e.Playback.Reset()
	e.Playback.Play()
	total := loops * e.Playback.MaxStep
	for i := 0; i < total; i++ {
		if err := sink.Present(e.Step()); err != nil {
			return err
		}
	}
	return nil
}
