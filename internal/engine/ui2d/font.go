package ui2d

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	firstGlyph  = ' '
	lastGlyph   = '~'
	atlasCols   = 16
	missingRune = '?'
)

// Font is a fixed-width bitmap font rasterized into a single alpha atlas.
type Font struct {
	atlas  *image.Alpha
	glyphW int
	glyphH int
}

// NewFont rasterizes the printable ASCII range of basicfont.Face7x13.
func NewFont() *Font {
	face := basicfont.Face7x13
	gw, gh := face.Advance, face.Height
	count := int(lastGlyph-firstGlyph) + 1
	rows := (count + atlasCols - 1) / atlasCols

	atlas := image.NewAlpha(image.Rect(0, 0, atlasCols*gw, rows*gh))
	d := &font.Drawer{Dst: atlas, Src: image.Opaque, Face: face}
	for r := firstGlyph; r <= lastGlyph; r++ {
		i := int(r - firstGlyph)
		x, y := (i%atlasCols)*gw, (i/atlasCols)*gh
		d.Dot = fixed.P(x, y+face.Ascent)
		d.DrawString(string(r))
	}

	return &Font{atlas: atlas, glyphW: gw, glyphH: gh}
}

// Atlas returns the glyph atlas.
func (f *Font) Atlas() *image.Alpha {
	return f.atlas
}

// GlyphSize returns the cell size of one glyph in pixels.
func (f *Font) GlyphSize() (int, int) {
	return f.glyphW, f.glyphH
}

// GlyphUV returns the atlas texture coordinates of r. Runes outside the
// atlas map to '?'.
func (f *Font) GlyphUV(r rune) (u0, v0, u1, v1 float32) {
	if r < firstGlyph || r > lastGlyph {
		r = missingRune
	}
	i := int(r - firstGlyph)
	b := f.atlas.Bounds()
	x, y := (i%atlasCols)*f.glyphW, (i/atlasCols)*f.glyphH
	u0 = float32(x) / float32(b.Dx())
	v0 = float32(y) / float32(b.Dy())
	u1 = float32(x+f.glyphW) / float32(b.Dx())
	v1 = float32(y+f.glyphH) / float32(b.Dy())
	return u0, v0, u1, v1
}

// MeasureText returns the size of text at scale. Lines split on '\n'.
func (f *Font) MeasureText(text string, scale float32) (float32, float32) {
	if text == "" {
		return 0, 0
	}
	lines, cols, longest := 1, 0, 0
	for _, r := range text {
		if r == '\n' {
			lines++
			cols = 0
			continue
		}
		cols++
		if cols > longest {
			longest = cols
		}
	}
	return float32(longest*f.glyphW) * scale, float32(lines*f.glyphH) * scale
}
