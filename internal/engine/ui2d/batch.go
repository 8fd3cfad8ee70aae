// Package ui2d draws 2D geometry, text and a small set of immediate-mode
// widgets with OpenGL.
//
// Geometry is accumulated in a Batch, which has no GL dependency, and
// flushed by a Renderer once per frame.
package ui2d

import (
	"github.com/Faultbox/rocketsim/internal/engine/render"
	"github.com/Faultbox/rocketsim/pkg/math"
)

const (
	solidStride = 7 // x, y, z, r, g, b, a
	textStride  = 9 // x, y, z, u, v, r, g, b, a
)

// DefaultOutlineWidth is the thickness of StrokeRect outlines in pixels.
const DefaultOutlineWidth = 1

// Batch collects solid and textured triangles for one frame. It implements
// render.Surface.
type Batch struct {
	font   *Font
	width  int
	height int

	solid []float32
	text  []float32

	outlineWidth float32
}

// NewBatch creates a batch for a screen of the given size. font may be nil,
// in which case text is skipped.
func NewBatch(width, height int, font *Font) *Batch {
	return &Batch{
		font:         font,
		width:        width,
		height:       height,
		solid:        make([]float32, 0, 4096),
		text:         make([]float32, 0, 4096),
		outlineWidth: DefaultOutlineWidth,
	}
}

// Reset drops all queued geometry.
func (b *Batch) Reset() {
	b.solid = b.solid[:0]
	b.text = b.text[:0]
}

// Resize updates the screen dimensions.
func (b *Batch) Resize(width, height int) {
	b.width = width
	b.height = height
}

// ScreenSize returns the screen dimensions.
func (b *Batch) ScreenSize() (int, int) {
	return b.width, b.height
}

// SetOutlineWidth sets the StrokeRect thickness.
func (b *Batch) SetOutlineWidth(w float32) {
	b.outlineWidth = w
}

// SolidVertices returns the queued solid vertex data.
func (b *Batch) SolidVertices() []float32 {
	return b.solid
}

// TextVertices returns the queued text vertex data.
func (b *Batch) TextVertices() []float32 {
	return b.text
}

// SolidVertexCount returns the number of queued solid vertices.
func (b *Batch) SolidVertexCount() int {
	return len(b.solid) / solidStride
}

// TextVertexCount returns the number of queued text vertices.
func (b *Batch) TextVertexCount() int {
	return len(b.text) / textStride
}

// FillTriangle queues a filled triangle.
func (b *Batch) FillTriangle(p1, p2, p3 math.Vec2, c render.Color) {
	b.solid = append(b.solid,
		p1.X, p1.Y, 0, c.R, c.G, c.B, c.A,
		p2.X, p2.Y, 0, c.R, c.G, c.B, c.A,
		p3.X, p3.Y, 0, c.R, c.G, c.B, c.A,
	)
}

// StrokeRect queues the outline of [min, max].
func (b *Batch) StrokeRect(min, max math.Vec2, c render.Color) {
	x0, x1 := min.X, max.X
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	y0, y1 := min.Y, max.Y
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	b.DrawRectOutline(x0, y0, x1-x0, y1-y0, b.outlineWidth, c)
}

// DrawRect queues a filled rectangle.
func (b *Batch) DrawRect(x, y, w, h float32, c render.Color) {
	b.FillTriangle(math.Vec2{X: x, Y: y}, math.Vec2{X: x + w, Y: y}, math.Vec2{X: x + w, Y: y + h}, c)
	b.FillTriangle(math.Vec2{X: x, Y: y}, math.Vec2{X: x + w, Y: y + h}, math.Vec2{X: x, Y: y + h}, c)
}

// DrawRectOutline queues a rectangle border of the given thickness.
func (b *Batch) DrawRectOutline(x, y, w, h, thickness float32, c render.Color) {
	b.DrawRect(x, y, w, thickness, c)
	b.DrawRect(x, y+h-thickness, w, thickness, c)
	b.DrawRect(x, y+thickness, thickness, h-thickness*2, c)
	b.DrawRect(x+w-thickness, y+thickness, thickness, h-thickness*2, c)
}

// DrawPanel queues a bordered panel.
func (b *Batch) DrawPanel(x, y, w, h float32, bg, border render.Color) {
	b.DrawRect(x, y, w, h, bg)
	b.DrawRectOutline(x, y, w, h, 1, border)
}

// DrawText queues text with its top-left corner at (x, y).
func (b *Batch) DrawText(x, y float32, text string, scale float32, c render.Color) {
	if b.font == nil {
		return
	}

	gw, gh := b.font.GlyphSize()
	cw, ch := float32(gw)*scale, float32(gh)*scale

	cx := x
	for _, r := range text {
		if r == '\n' {
			cx = x
			y += ch
			continue
		}
		u0, v0, u1, v1 := b.font.GlyphUV(r)
		b.text = append(b.text,
			cx, y, 0, u0, v0, c.R, c.G, c.B, c.A,
			cx+cw, y, 0, u1, v0, c.R, c.G, c.B, c.A,
			cx+cw, y+ch, 0, u1, v1, c.R, c.G, c.B, c.A,
			cx, y, 0, u0, v0, c.R, c.G, c.B, c.A,
			cx+cw, y+ch, 0, u1, v1, c.R, c.G, c.B, c.A,
			cx, y+ch, 0, u0, v1, c.R, c.G, c.B, c.A,
		)
		cx += cw
	}
}

// MeasureText returns the size of text at scale.
func (b *Batch) MeasureText(text string, scale float32) (float32, float32) {
	if b.font == nil {
		return 0, 0
	}
	return b.font.MeasureText(text, scale)
}

// Ortho returns a column-major orthographic projection.
func Ortho(left, right, bottom, top, near, far float32) [16]float32 {
	return [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}
