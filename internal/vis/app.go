// Package vis implements the interactive Gio window for the warehouse
// visualizer.
package vis

import (
	"image/color"
	"log"
	"os"
	"time"

	"gioui.org/app"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/elektrokombinacija/kivavis/internal/vis/engine"
	"github.com/elektrokombinacija/kivavis/internal/vis/interact"
	"github.com/elektrokombinacija/kivavis/internal/vis/widgets"
)

// App is the main visualization application.
type App struct {
	engine    *engine.Engine
	snapshot  *engine.Snapshot
	theme     *material.Theme
	workspace *widgets.Workspace
	info      *widgets.InfoPane
	timeline  *widgets.Timeline
	toolbar   *widgets.Toolbar
	camera    *interact.Camera
}

// NewApp creates the application around a prepared engine.
func NewApp(eng *engine.Engine) *App {
	th := material.NewTheme()
	camera := interact.NewCamera()

	return &App{
		engine:    eng,
		theme:     th,
		workspace: widgets.NewWorkspace(camera),
		info:      widgets.NewInfoPane(),
		timeline:  widgets.NewTimeline(eng.Playback),
		toolbar:   widgets.NewToolbar(eng.Playback, camera),
		camera:    camera,
	}
}

// Show opens a window sized to the engine layout and blocks in the Gio main
// loop. The process exits when the window is closed.
func Show(eng *engine.Engine, title string) {
	go func() {
		size := eng.Layout.Size
		window := new(app.Window)
		window.Option(
			app.Title(title),
			app.Size(unit.Dp(float32(size.X)), unit.Dp(float32(size.Y))),
		)

		if err := NewApp(eng).Run(window); err != nil {
			log.Fatalf("[ERROR] window: %v", err)
		}
		os.Exit(0)
	}()
	app.Main()
}

// Run starts the application event loop.
func (a *App) Run(w *app.Window) error {
	var ops op.Ops

	tag := new(int)

	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err

		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)

			for {
				ev, ok := gtx.Event(key.Filter{Focus: tag, Optional: key.ModShift})
				if !ok {
					break
				}
				if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
					a.handleKeyEvent(ke)
				}
			}
			event.Op(gtx.Ops, tag)

			a.advance(gtx.Now)
			a.layout(gtx)

			if pb := a.engine.Playback; pb.Playing {
				gtx.Execute(op.InvalidateCmd{At: pb.Next()})
			}
			e.Frame(gtx.Ops)
		}
	}
}

// advance renders a new snapshot when playback is due or was moved while
// paused.
func (a *App) advance(now time.Time) {
	pb := a.engine.Playback
	switch {
	case a.snapshot == nil:
		a.snapshot = a.engine.Step()
		pb.Due(now)
	case pb.Due(now):
		a.snapshot = a.engine.Step()
	case pb.Pending():
		a.snapshot = a.engine.Render(pb.Step)
	}
	a.toolbar.Title = a.snapshot.Title()
	a.toolbar.Mode = a.snapshot.Profile.Mode.String()
}

func (a *App) handleKeyEvent(e key.Event) {
	pb := a.engine.Playback
	switch e.Name {
	case key.NameSpace:
		pb.TogglePlay()
	case key.NameLeftArrow:
		pb.StepBack()
	case key.NameRightArrow:
		pb.StepForward()
	case key.NameHome:
		pb.Reset()
	case "+", "=":
		pb.SetSpeed(pb.Speed * 1.5)
	case "-":
		pb.SetSpeed(pb.Speed / 1.5)
	case "R":
		a.camera.Reset()
	}
}

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	paint.Fill(gtx.Ops, color.NRGBA{R: 30, G: 30, B: 35, A: 255})

	lay := a.engine.Layout
	infoWeight := float32(0)
	if lay.HasInfo() && lay.Size.X > 0 {
		infoWeight = float32(lay.Info.Dx()) / float32(lay.Size.X)
	}

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return a.toolbar.Layout(gtx, a.theme)
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			if infoWeight == 0 {
				return a.workspace.Layout(gtx, a.theme, a.snapshot.Main)
			}
			return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
				layout.Flexed(1-infoWeight, func(gtx layout.Context) layout.Dimensions {
					return a.workspace.Layout(gtx, a.theme, a.snapshot.Main)
				}),
				layout.Flexed(infoWeight, func(gtx layout.Context) layout.Dimensions {
					return a.info.Layout(gtx, a.theme, a.snapshot.Info)
				}),
			)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return a.timeline.Layout(gtx, a.theme)
		}),
	)
}
