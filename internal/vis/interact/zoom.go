// Package interact handles pan and zoom of the warehouse view.
package interact

import (
	"gioui.org/io/pointer"
	"gioui.org/layout"

	"github.com/elektrokombinacija/kivavis/internal/vis/scene"
)

const (
	minZoom = 0.5
	maxZoom = 400
)

// Camera maps warehouse cells to screen pixels. World y points up, screen y
// points down.
type Camera struct {
	// View transform
	OffsetX float32 // screen x of world x=0
	OffsetY float32 // screen y of world y=0
	Zoom    float32 // pixels per cell

	// Fit target restored by Reset
	fit     scene.Bounds
	fitW    float32
	fitH    float32
	hasFit  bool
	touched bool

	// Interaction state
	dragging bool
	lastX    float32
	lastY    float32
}

// NewCamera creates a camera at 10 pixels per cell.
func NewCamera() *Camera {
	return &Camera{Zoom: 10}
}

// Reset refits the last fitted bounds on the next layout.
func (c *Camera) Reset() {
	c.touched = false
	if c.hasFit {
		c.FitBounds(c.fit, c.fitW, c.fitH, 0)
	}
}

// Touched reports whether the user has panned or zoomed since the last fit.
func (c *Camera) Touched() bool {
	return c.touched
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(worldX, worldY float64) (screenX, screenY float32) {
	screenX = float32(worldX)*c.Zoom + c.OffsetX
	screenY = c.OffsetY - float32(worldY)*c.Zoom
	return
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(screenX, screenY float32) (worldX, worldY float64) {
	worldX = float64((screenX - c.OffsetX) / c.Zoom)
	worldY = float64((c.OffsetY - screenY) / c.Zoom)
	return
}

// HandleEvent processes pointer events for pan and zoom.
func (c *Camera) HandleEvent(gtx layout.Context, ev pointer.Event) {
	switch ev.Kind {
	case pointer.Press:
		if ev.Buttons.Contain(pointer.ButtonSecondary) || ev.Buttons.Contain(pointer.ButtonTertiary) {
			c.dragging = true
		}
		c.lastX = ev.Position.X
		c.lastY = ev.Position.Y

	case pointer.Drag:
		if c.dragging {
			c.Pan(ev.Position.X-c.lastX, ev.Position.Y-c.lastY)
		}
		c.lastX = ev.Position.X
		c.lastY = ev.Position.Y

	case pointer.Release:
		c.dragging = false

	case pointer.Scroll:
		if ev.Scroll.Y > 0 {
			c.ZoomBy(1/1.1, ev.Position.X, ev.Position.Y)
		} else if ev.Scroll.Y < 0 {
			c.ZoomBy(1.1, ev.Position.X, ev.Position.Y)
		}
	}
}

// Pan pans the camera by the given screen delta.
func (c *Camera) Pan(dx, dy float32) {
	c.OffsetX += dx
	c.OffsetY += dy
	c.touched = true
}

// ZoomBy zooms by a factor, centered on screen point.
func (c *Camera) ZoomBy(factor float32, centerX, centerY float32) {
	worldX, worldY := c.ScreenToWorld(centerX, centerY)

	c.Zoom = clampZoom(c.Zoom * factor)

	newScreenX, newScreenY := c.WorldToScreen(worldX, worldY)
	c.OffsetX += centerX - newScreenX
	c.OffsetY += centerY - newScreenY
	c.touched = true
}

// CenterOn centers the camera on a world position.
func (c *Camera) CenterOn(worldX, worldY float64, screenWidth, screenHeight float32) {
	c.OffsetX = screenWidth/2 - float32(worldX)*c.Zoom
	c.OffsetY = screenHeight/2 + float32(worldY)*c.Zoom
}

// FitBounds zooms and centers so b fills the screen minus margin.
func (c *Camera) FitBounds(b scene.Bounds, screenWidth, screenHeight float32, margin float32) {
	c.fit, c.fitW, c.fitH, c.hasFit = b, screenWidth, screenHeight, true
	if b.Width() <= 0 || b.Height() <= 0 {
		return
	}

	availW := screenWidth - 2*margin
	availH := screenHeight - 2*margin

	zoomX := availW / float32(b.Width())
	zoomY := availH / float32(b.Height())

	c.Zoom = zoomX
	if zoomY < zoomX {
		c.Zoom = zoomY
	}
	c.Zoom = clampZoom(c.Zoom)

	c.CenterOn((b.MinX+b.MaxX)/2, (b.MinY+b.MaxY)/2, screenWidth, screenHeight)
}

func clampZoom(z float32) float32 {
	if z < minZoom {
		return minZoom
	}
	if z > maxZoom {
		return maxZoom
	}
	return z
}
