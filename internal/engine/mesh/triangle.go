// Package mesh implements the 2D triangle meshes drawn by the visualizer.
//
// Triangle vertices live in normalized mesh space ([0,1] on both axes). A
// Mesh places that space on screen with a pixel size, a pixel position and
// an anchor, and rotates every vertex around the mesh-space origin before
// placement. All angles in this package are in degrees.
package mesh

import (
	gomath "math"

	"github.com/Faultbox/rocketsim/internal/engine/render"
	"github.com/Faultbox/rocketsim/pkg/math"
)

// AngleMode selects how a vertex's polar angle is recovered.
type AngleMode int

const (
	// AngleSingleArg uses atan(y/x). Vertices with a negative x lose their
	// quadrant and come out mirrored. This is the historical behavior the
	// sliders were tuned against and stays the default.
	AngleSingleArg AngleMode = iota
	// AngleQuadrantAware uses atan2(y, x) and rotates every quadrant correctly.
	AngleQuadrantAware
)

func (m AngleMode) String() string {
	if m == AngleQuadrantAware {
		return "quadrant_aware"
	}
	return "single_arg"
}

// Triangle is one filled triangle in mesh coordinates.
type Triangle struct {
	p1, p2, p3 math.Vec2
	color      render.Color
	rotation   float32 // degrees
	angleMode  AngleMode
}

// NewTriangle creates a triangle from three mesh-space points.
func NewTriangle(p1, p2, p3 math.Vec2, col render.Color) Triangle {
	return Triangle{p1: p1, p2: p2, p3: p3, color: col}
}

// P1 returns the first vertex.
func (t Triangle) P1() math.Vec2 { return t.p1 }

// SetP1 replaces the first vertex.
func (t *Triangle) SetP1(p math.Vec2) { t.p1 = p }

// P2 returns the second vertex.
func (t Triangle) P2() math.Vec2 { return t.p2 }

// SetP2 replaces the second vertex.
func (t *Triangle) SetP2(p math.Vec2) { t.p2 = p }

// P3 returns the third vertex.
func (t Triangle) P3() math.Vec2 { return t.p3 }

// SetP3 replaces the third vertex.
func (t *Triangle) SetP3(p math.Vec2) { t.p3 = p }

// Color returns the fill color.
func (t Triangle) Color() render.Color { return t.color }

// SetColor replaces the fill color.
func (t *Triangle) SetColor(c render.Color) { t.color = c }

// Rotation returns the rotation in degrees applied at draw time.
func (t Triangle) Rotation() float32 { return t.rotation }

// Rotate sets the rotation in degrees. The previous value is replaced, not
// accumulated, and no normalization is done.
func (t *Triangle) Rotate(deg float32) {
	t.rotation = deg
}

// AngleMode returns the polar angle mode.
func (t Triangle) AngleMode() AngleMode { return t.angleMode }

// SetAngleMode selects the polar angle mode used by Draw.
func (t *Triangle) SetAngleMode(m AngleMode) { t.angleMode = m }

// Points returns the absolute pixel position of the three vertices for a
// mesh at screenPos with the given pixel size and anchor.
func (t Triangle) Points(screenPos, meshSize, anchor math.Vec2) [3]math.Vec2 {
	offset := anchor.Mul(meshSize)
	place := func(p math.Vec2) math.Vec2 {
		p = RotatePoint(p, t.rotation, t.angleMode)
		return p.Mul(meshSize).Add(screenPos).Sub(offset)
	}
	return [3]math.Vec2{place(t.p1), place(t.p2), place(t.p3)}
}

// Draw emits the triangle to s.
func (t Triangle) Draw(s render.Surface, screenPos, meshSize, anchor math.Vec2) {
	p := t.Points(screenPos, meshSize, anchor)
	s.FillTriangle(p[0], p[1], p[2], t.color)
}

// RotatePoint rotates p around the origin by deg degrees through a polar
// round trip. The origin itself is returned unchanged.
func RotatePoint(p math.Vec2, deg float32, mode AngleMode) math.Vec2 {
	if p.IsZero() {
		return p
	}

	x, y := float64(p.X), float64(p.Y)
	r := gomath.Sqrt(x*x + y*y)

	var theta float64
	if mode == AngleQuadrantAware {
		theta = gomath.Atan2(y, x)
	} else {
		// x == 0 yields ±Inf, and atan maps that to ±90°.
		theta = gomath.Atan(y / x)
	}

	return math.FromPolar(r, math.RadToDeg(theta)+float64(deg))
}
