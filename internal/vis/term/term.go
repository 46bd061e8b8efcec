// Package term animates the warehouse in a terminal with tcell.
package term

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/elektrokombinacija/kivavis/internal/core"
	"github.com/elektrokombinacija/kivavis/internal/vis/draw"
	"github.com/elektrokombinacija/kivavis/internal/vis/engine"
	"github.com/elektrokombinacija/kivavis/internal/vis/palette"
	"github.com/elektrokombinacija/kivavis/internal/vis/state"
)

const (
	cellWidth  = 2 // terminal columns per grid cell
	gridTop    = 1 // first row below the title
	infoMargin = 2
	heatBlend  = 0.7
)

const (
	agentRune   = '●'
	pickingRune = '★'
	trailRune   = '·'
)

// View draws snapshots onto a tcell screen.
type View struct {
	Screen tcell.Screen

	grid    *core.Grid
	colors  palette.Table
	panel   *draw.InfoPanel
	profile string
	last    *engine.Snapshot
}

// NewView creates a view of eng on s.
func NewView(s tcell.Screen, eng *engine.Engine) *View {
	v := &View{
		Screen:  s,
		grid:    eng.Grid,
		colors:  eng.Colors,
		profile: fmt.Sprintf("Mode: %s | %s", eng.Profile.Mode, eng.Profile.Mode.Description()),
	}
	if eng.Profile.UsesInfoPanel {
		v.panel = &draw.InfoPanel{Mode: eng.Profile.Mode, Grid: eng.Grid, AgentCount: eng.Solution.AgentCount()}
	}
	return v
}

// Present draws s and flushes the screen.
func (v *View) Present(s *engine.Snapshot) error {
	v.last = s
	v.Screen.Clear()
	v.text(0, 0, s.Title(), tcell.StyleDefault.Bold(true))

	heat := s.Frame.Density
	for y := 0; y < v.grid.Height; y++ {
		for x := 0; x < v.grid.Width; x++ {
			tone := draw.TagTone(v.grid.At(x, y))
			if heat != nil && heat.Max() > 0 {
				tone = tone.BlendRgb(palette.Hot.At(heat.Normalized(x, y)), heatBlend)
			}
			v.cell(core.Pos{X: x, Y: y}, ' ', tcell.StyleDefault.Background(tc(tone)))
		}
	}

	for _, ag := range s.Frame.Agents {
		if ag.Status == state.Completed {
			continue
		}
		fg := tc(v.colors.At(ag.ID))
		for _, p := range ag.Trail {
			v.overlay(p, trailRune, fg)
		}
	}
	for _, ag := range s.Frame.Agents {
		switch ag.Status {
		case state.Active:
			v.overlay(ag.Pos, agentRune, tc(v.colors.At(ag.ID)))
		case state.Picking:
			v.overlay(ag.Pos, pickingRune, tc(draw.Yellow))
		}
	}

	col := v.grid.Width*cellWidth + infoMargin
	for i, line := range v.info(s.Frame) {
		v.text(col, gridTop+i, line, tcell.StyleDefault)
	}
	v.Screen.Show()
	return nil
}

// Redraw repeats the last snapshot, after a resize.
func (v *View) Redraw() {
	if v.last != nil {
		v.Screen.Sync()
		v.Present(v.last)
	}
}

func (v *View) info(f *state.Frame) []string {
	if v.panel != nil {
		return strings.Split(strings.TrimRight(v.panel.Text(f), "\n"), "\n")
	}
	lines := []string{
		v.profile,
		fmt.Sprintf("Step: %d/%d", f.Step, f.MaxTimestep-1),
		fmt.Sprintf("Active: %d", f.Counts.Active),
		fmt.Sprintf("Picking: %d", f.Counts.Picking),
		fmt.Sprintf("Completed: %d", f.Counts.Completed),
	}
	if f.Density != nil {
		lines = append(lines, fmt.Sprintf("Peak cell: %d robots", f.Density.Max()))
	}
	return append(lines, "", "space pause  <- -> step  +/- speed  q quit")
}

// screenRow flips grid y so that row 0 is at the bottom.
func (v *View) screenRow(y int) int {
	return gridTop + v.grid.Height - 1 - y
}

func (v *View) cell(p core.Pos, r rune, st tcell.Style) {
	x, y := p.X*cellWidth, v.screenRow(p.Y)
	v.Screen.SetContent(x, y, r, nil, st)
	v.Screen.SetContent(x+1, y, ' ', nil, st)
}

// overlay draws r over the cell background.
func (v *View) overlay(p core.Pos, r rune, fg tcell.Color) {
	x, y := p.X*cellWidth, v.screenRow(p.Y)
	_, _, st, _ := v.Screen.GetContent(x, y)
	v.Screen.SetContent(x, y, r, nil, st.Foreground(fg))
}

func (v *View) text(x, y int, s string, st tcell.Style) {
	for _, r := range s {
		v.Screen.SetContent(x, y, r, nil, st)
		x++
	}
}

func tc(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Run animates eng on screen until ctx is done or the user quits.
func Run(ctx context.Context, eng *engine.Engine, screen tcell.Screen) error {
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	v := NewView(screen, eng)
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	pb := eng.Playback
	ticker := time.NewTicker(pb.FrameInterval())
	defer ticker.Stop()

	if err := v.Present(eng.Step()); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				v.Redraw()
			case *tcell.EventKey:
				if !handleKey(pb, ev) {
					return nil
				}
				ticker.Reset(pb.FrameInterval())
				if pb.Pending() {
					v.Present(eng.Render(pb.Step))
				}
			}
		case <-ticker.C:
			if pb.Playing {
				v.Present(eng.Step())
			}
		}
	}
}

// handleKey applies a key press to pb and reports whether to keep running.
func handleKey(pb *state.Playback, ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		pb.StepBack()
	case tcell.KeyRight:
		pb.StepForward()
	case tcell.KeyHome:
		pb.Reset()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			pb.TogglePlay()
		case '+', '=':
			pb.SetSpeed(pb.Speed * 1.5)
		case '-':
			pb.SetSpeed(pb.Speed / 1.5)
		}
	}
	return true
}
