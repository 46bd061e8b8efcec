package raster

import (
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/elektrokombinacija/kivavis/internal/vis/scene"
)

const (
	glyphWidth  = 7
	glyphHeight = 13
	lineGap     = 2
	boxPad      = 4
)

// ascii replaces runes the bitmap face cannot draw.
func ascii(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r > 0x7e {
			return '*'
		}
		return r
	}, s)
}

func (c *canvas) text(t scene.Text) {
	if t.Size <= 0 || t.Text == "" {
		return
	}
	x, y := c.vp.ToPixel(t.At)
	lines := strings.Split(strings.TrimRight(t.Text, "\n"), "\n")
	width := 0
	for i, l := range lines {
		lines[i] = ascii(l)
		if n := len(lines[i]) * glyphWidth; n > width {
			width = n
		}
	}
	height := len(lines)*(glyphHeight+lineGap) - lineGap

	origin := image.Pt(round(x), round(y))
	if t.Anchor == scene.AnchorCenter {
		origin = origin.Sub(image.Pt(width/2, height/2))
	}
	if t.Box.A > 0 {
		c.fill(image.Rect(origin.X-boxPad, origin.Y-boxPad, origin.X+width+boxPad, origin.Y+height+boxPad), t.Box)
	}
	for i, l := range lines {
		c.drawString(origin.X, origin.Y+i*(glyphHeight+lineGap), l, t.Color, t.Bold)
	}
}

// label draws one line centered on (x, y).
func (c *canvas) label(x, y int, s string, col color.NRGBA, bold bool) {
	s = ascii(s)
	c.drawString(x-len(s)*glyphWidth/2, y-glyphHeight/2, s, col, bold)
}

// drawString draws s with its top-left corner at (x, y). Bold is faked by a
// second pass one pixel to the right.
func (c *canvas) drawString(x, y int, s string, col color.NRGBA, bold bool) {
	d := &font.Drawer{
		Dst:  c.dst,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y + basicfont.Face7x13.Ascent)},
	}
	d.DrawString(s)
	if bold {
		d.Dot = fixed.Point26_6{X: fixed.I(x + 1), Y: fixed.I(y + basicfont.Face7x13.Ascent)}
		d.DrawString(s)
	}
}
