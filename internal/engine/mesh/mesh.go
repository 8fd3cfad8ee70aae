package mesh

import (
	"github.com/Faultbox/rocketsim/internal/engine/render"
	"github.com/Faultbox/rocketsim/pkg/math"
)

// Outline colors for the debug boundaries drawn with every mesh.
var (
	// BoundsColor marks [pos, pos+size].
	BoundsColor = render.Red
	// AnchoredBoundsColor marks the anchor-adjusted placement.
	AnchoredBoundsColor = render.Green
)

// Mesh is a group of triangles sharing one placement.
type Mesh struct {
	triangles  []Triangle
	size       math.Vec2 // pixels
	pos        math.Vec2 // pixels, before anchor adjustment
	anchor     math.Vec2 // mesh space, conventionally [0,1]
	rotation   float32   // degrees
	angleMode  AngleMode
	hideBounds bool
}

// New creates a mesh owning a copy of triangles. The anchor starts at the
// top-left corner (0,0).
func New(triangles []Triangle, size, pos math.Vec2) *Mesh {
	tris := make([]Triangle, len(triangles))
	copy(tris, triangles)
	return &Mesh{
		triangles: tris,
		size:      size,
		pos:       pos,
	}
}

// Draw emits every triangle in insertion order followed by the two
// boundary outlines. Triangles are placed from pos and anchor directly;
// the anchor-adjusted origin only drives the second outline.
func (m *Mesh) Draw(s render.Surface) {
	drawPos := m.DrawPos()
	for i := range m.triangles {
		m.triangles[i].Draw(s, m.pos, m.size, m.anchor)
	}

	if m.hideBounds {
		return
	}
	s.StrokeRect(m.pos, m.pos.Add(m.size), BoundsColor)
	s.StrokeRect(drawPos, drawPos.Add(m.size), AnchoredBoundsColor)
}

// DrawPos returns the top-left corner after anchor adjustment.
func (m *Mesh) DrawPos() math.Vec2 {
	return m.pos.Sub(m.anchor.Mul(m.size))
}

// Size returns the pixel size.
func (m *Mesh) Size() math.Vec2 { return m.size }

// SetSize replaces the pixel size.
func (m *Mesh) SetSize(v math.Vec2) { m.size = v }

// Pos returns the pixel position.
func (m *Mesh) Pos() math.Vec2 { return m.pos }

// SetPos replaces the pixel position.
func (m *Mesh) SetPos(v math.Vec2) { m.pos = v }

// Anchor returns the anchor in mesh space.
func (m *Mesh) Anchor() math.Vec2 { return m.anchor }

// SetAnchor replaces the anchor. Values outside [0,1] are accepted.
func (m *Mesh) SetAnchor(v math.Vec2) { m.anchor = v }

// Rotation returns the mesh rotation in degrees.
func (m *Mesh) Rotation() float32 { return m.rotation }

// SetRotation stores the rotation and pushes it to every triangle,
// overwriting any rotation set on them individually.
func (m *Mesh) SetRotation(deg float32) {
	m.rotation = deg
	for i := range m.triangles {
		m.triangles[i].Rotate(deg)
	}
}

// AngleMode returns the polar angle mode shared by the triangles.
func (m *Mesh) AngleMode() AngleMode { return m.angleMode }

// SetAngleMode switches every triangle to mode.
func (m *Mesh) SetAngleMode(mode AngleMode) {
	m.angleMode = mode
	for i := range m.triangles {
		m.triangles[i].SetAngleMode(mode)
	}
}

// ShowBounds reports whether Draw emits the boundary outlines.
func (m *Mesh) ShowBounds() bool { return !m.hideBounds }

// SetShowBounds toggles the boundary outlines.
func (m *Mesh) SetShowBounds(show bool) { m.hideBounds = !show }

// Len returns the number of triangles.
func (m *Mesh) Len() int { return len(m.triangles) }

// Triangle returns a copy of the i-th triangle.
func (m *Mesh) Triangle(i int) Triangle { return m.triangles[i] }

// Triangles returns a copy of all triangles in draw order.
func (m *Mesh) Triangles() []Triangle {
	out := make([]Triangle, len(m.triangles))
	copy(out, m.triangles)
	return out
}
