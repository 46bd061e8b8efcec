package live

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/elektrokombinacija/kivavis/internal/vis/engine"
	"github.com/elektrokombinacija/kivavis/internal/vis/layout"
	"github.com/elektrokombinacija/kivavis/internal/vis/raster"
)

// Sink rasterizes snapshots and publishes them to a hub.
type Sink struct {
	hub      *Hub
	renderer *raster.Renderer
	encoder  png.Encoder
}

// NewSink renders at dpi, or at the layout resolution when dpi is not
// positive.
func NewSink(hub *Hub, l layout.Layout, dpi float64) *Sink {
	return &Sink{
		hub:      hub,
		renderer: raster.NewRenderer(l.Scaled(dpi)),
		encoder:  png.Encoder{CompressionLevel: png.BestSpeed},
	}
}

// Present encodes s and publishes it.
func (s *Sink) Present(snap *engine.Snapshot) error {
	img := s.renderer.Render(snap.Main, snap.Info)
	var buf bytes.Buffer
	if err := s.encoder.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode frame %d: %w", snap.Step, err)
	}
	c := snap.Frame.Counts
	s.hub.Publish(&Update{
		Step:      snap.Step,
		Title:     snap.Title(),
		Mode:      snap.Profile.Mode.String(),
		Active:    c.Active,
		Picking:   c.Picking,
		Completed: c.Completed,
		Progress:  snap.Frame.Progress(),
		PNG:       buf.Bytes(),
	})
	return nil
}
