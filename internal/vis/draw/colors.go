package draw

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/elektrokombinacija/kivavis/internal/vis/palette"
)

// Named colors used by the warehouse scene.
var (
	SaddleBrown = palette.RGB(139, 69, 19)
	Brown       = palette.RGB(165, 42, 42)
	Orange      = palette.RGB(255, 165, 0)
	DarkOrange  = palette.RGB(255, 140, 0)
	LightBlue   = palette.RGB(173, 216, 230)
	Blue        = palette.RGB(0, 0, 255)
	DarkBlue    = palette.RGB(0, 0, 139)
	LightGray   = palette.RGB(211, 211, 211)
	LightCyan   = palette.RGB(224, 255, 255)
	Yellow      = palette.RGB(255, 255, 0)
	Black       = palette.RGB(0, 0, 0)
	White       = palette.RGB(255, 255, 255)
)

// Background image tag colors.
var (
	ShelfTone     = colorful.Color{R: 0.6, G: 0.4, B: 0.2}
	EndpointTone  = colorful.Color{R: 1.0, G: 0.6, B: 0.0}
	RobotZoneTone = colorful.Color{R: 0.7, G: 0.8, B: 1.0}
)

func rgba(c colorful.Color, alpha float64) color.NRGBA {
	return palette.NRGBA(c, alpha)
}

func opaque(c colorful.Color) color.NRGBA {
	return palette.NRGBA(c, 1)
}
