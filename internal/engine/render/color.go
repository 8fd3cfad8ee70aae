// Package render defines the drawing surface the mesh engine talks to.
package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color represents an RGBA color with float components (0.0 to 1.0).
type Color struct {
	R, G, B, A float32
}

// Predefined colors.
var (
	White = Color{1, 1, 1, 1}
	Black = Color{0, 0, 0, 1}
	Red   = Color{1, 0, 0, 1}
	Green = Color{0, 1, 0, 1}
	Blue  = Color{0, 0, 1, 1}
)

// FromRGBA32 unpacks a 0xRRGGBBAA color.
func FromRGBA32(c uint32) Color {
	return Color{
		R: float32((c>>24)&0xFF) / 255.0,
		G: float32((c>>16)&0xFF) / 255.0,
		B: float32((c>>8)&0xFF) / 255.0,
		A: float32(c&0xFF) / 255.0,
	}
}

// RGBA32 packs the color as 0xRRGGBBAA.
func (c Color) RGBA32() uint32 {
	return uint32(to8(c.R))<<24 | uint32(to8(c.G))<<16 | uint32(to8(c.B))<<8 | uint32(to8(c.A))
}

// NRGBA converts the color to a non-premultiplied image/color value.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}
}

// String formats the color as 0xRRGGBBAA.
func (c Color) String() string {
	return fmt.Sprintf("0x%08X", c.RGBA32())
}

// ParseColor parses "0xRRGGBBAA", "#RRGGBBAA" or "RRGGBBAA". Six-digit
// values get full alpha.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimSpace(s)
	hex = strings.TrimPrefix(hex, "#")
	hex = strings.TrimPrefix(strings.TrimPrefix(hex, "0x"), "0X")

	switch len(hex) {
	case 6:
		hex += "FF"
	case 8:
	default:
		return Color{}, fmt.Errorf("color %q: expected 6 or 8 hex digits", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return FromRGBA32(uint32(v)), nil
}

func to8(f float32) uint8 {
	if f <= 0 {
		return 0
	}
	if f >= 1 {
		return 255
	}
	return uint8(f*255 + 0.5)
}
