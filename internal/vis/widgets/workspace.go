// Package widgets provides Gio UI widgets for the visualizer.
package widgets

import (
	"image"
	"image/color"

	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/widget/material"

	"github.com/elektrokombinacija/kivavis/internal/vis/draw"
	"github.com/elektrokombinacija/kivavis/internal/vis/interact"
	"github.com/elektrokombinacija/kivavis/internal/vis/scene"
)

// Workspace is the warehouse pane.
type Workspace struct {
	camera *interact.Camera
	size   image.Point
}

// NewWorkspace creates a new workspace widget.
func NewWorkspace(camera *interact.Camera) *Workspace {
	return &Workspace{camera: camera}
}

// Layout paints the main display list.
func (w *Workspace) Layout(gtx layout.Context, th *material.Theme, list *scene.DisplayList) layout.Dimensions {
	bounds := gtx.Constraints.Max
	defer clip.Rect(image.Rect(0, 0, bounds.X, bounds.Y)).Push(gtx.Ops).Pop()

	paint.Fill(gtx.Ops, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	if bounds != w.size || !w.camera.Touched() {
		w.size = bounds
		w.camera.FitBounds(list.Bounds, float32(bounds.X), float32(bounds.Y), 8)
	}

	w.handlePointerEvents(gtx)

	p := draw.Painter{Theme: th, Camera: w.camera}
	p.Paint(gtx, list)

	return layout.Dimensions{Size: bounds}
}

func (w *Workspace) handlePointerEvents(gtx layout.Context) {
	area := clip.Rect(image.Rect(0, 0, gtx.Constraints.Max.X, gtx.Constraints.Max.Y)).Push(gtx.Ops)
	event.Op(gtx.Ops, w)
	area.Pop()

	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target:  w,
			Kinds:   pointer.Press | pointer.Drag | pointer.Release | pointer.Scroll,
			ScrollY: pointer.ScrollRange{Min: -100, Max: 100},
		})
		if !ok {
			break
		}
		if pe, ok := ev.(pointer.Event); ok {
			w.camera.HandleEvent(gtx, pe)
		}
	}
}

// InfoPane paints the side panel list scaled to fit, without interaction.
type InfoPane struct {
	camera *interact.Camera
}

// NewInfoPane creates an info pane widget.
func NewInfoPane() *InfoPane {
	return &InfoPane{camera: interact.NewCamera()}
}

// Layout paints the info display list.
func (p *InfoPane) Layout(gtx layout.Context, th *material.Theme, list *scene.DisplayList) layout.Dimensions {
	bounds := gtx.Constraints.Max
	defer clip.Rect(image.Rect(0, 0, bounds.X, bounds.Y)).Push(gtx.Ops).Pop()
	paint.Fill(gtx.Ops, color.NRGBA{R: 245, G: 247, B: 250, A: 255})

	if list == nil {
		return layout.Dimensions{Size: bounds}
	}
	p.camera.FitBounds(list.Bounds, float32(bounds.X), float32(bounds.Y), 0)
	painter := draw.Painter{Theme: th, Camera: p.camera}
	painter.Paint(gtx, list)
	return layout.Dimensions{Size: bounds}
}
