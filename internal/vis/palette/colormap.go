// Package palette builds per-agent color tables and the colormaps used by the
// heatmap overlay.
package palette

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Colormap maps x in [0, 1] to a color. Values outside are clipped.
type Colormap interface {
	At(x float64) colorful.Color
}

// Listed is a qualitative colormap with N discrete entries.
type Listed []colorful.Color

// At picks entry ⌊x·N⌋, clipped into the table.
func (l Listed) At(x float64) colorful.Color {
	if len(l) == 0 {
		return Grey
	}
	i := int(clip01(x) * float64(len(l)))
	if i >= len(l) {
		i = len(l) - 1
	}
	return l[i]
}

const lutSize = 256

// Rainbow is the continuous rainbow map stored as a 256 entry lookup table.
type Rainbow struct {
	lut [lutSize]colorful.Color
}

// NewRainbow fills the lookup table.
func NewRainbow() *Rainbow {
	r := &Rainbow{}
	for i := range r.lut {
		x := float64(i) / (lutSize - 1)
		r.lut[i] = colorful.Color{
			R: clip01(math.Abs(2*x - 0.5)),
			G: clip01(math.Sin(math.Pi * x)),
			B: clip01(math.Cos(math.Pi * x / 2)),
		}
	}
	return r
}

func (r *Rainbow) At(x float64) colorful.Color {
	i := int(clip01(x) * lutSize)
	if i >= lutSize {
		i = lutSize - 1
	}
	return r.lut[i]
}

type anchor struct {
	x float64
	c colorful.Color
}

// Segmented interpolates linearly in RGB between anchors sorted by x.
type Segmented []anchor

func (s Segmented) At(x float64) colorful.Color {
	x = clip01(x)
	if len(s) == 0 {
		return Grey
	}
	if x <= s[0].x {
		return s[0].c
	}
	for i := 1; i < len(s); i++ {
		if x <= s[i].x {
			lo, hi := s[i-1], s[i]
			t := (x - lo.x) / (hi.x - lo.x)
			return lo.c.BlendRgb(hi.c, t)
		}
	}
	return s[len(s)-1].c
}

// Hot runs black through red and yellow to white.
var Hot = Segmented{
	{0, colorful.Color{R: 0.0416}},
	{0.365079, colorful.Color{R: 1}},
	{0.746032, colorful.Color{R: 1, G: 1}},
	{1, colorful.Color{R: 1, G: 1, B: 1}},
}

// Grey is used where no table entry exists.
var Grey = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// NRGBA converts c to a non-premultiplied color with the given opacity.
func NRGBA(c colorful.Color, alpha float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(clip01(alpha)*255 + 0.5)}
}

// RGB builds a color from 8-bit channels.
func RGB(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func listed(hex ...string) Listed {
	l := make(Listed, len(hex))
	for i, h := range hex {
		l[i] = mustHex(h)
	}
	return l
}

func clip01(x float64) float64 {
	if math.IsNaN(x) || x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
