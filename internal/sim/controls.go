// Package sim ties the scene, the control panel and the frontends together.
package sim

import (
	"github.com/Faultbox/rocketsim/internal/config"
	"github.com/Faultbox/rocketsim/internal/engine/mesh"
	"github.com/Faultbox/rocketsim/pkg/math"
)

// Change is a set of controls that moved this frame.
type Change uint8

const (
	ChangedSize Change = 1 << iota
	ChangedPosition
	ChangedAnchor
	ChangedRotation

	ChangedNone Change = 0
	ChangedAll         = ChangedSize | ChangedPosition | ChangedAnchor | ChangedRotation
)

// Controls are the slider values driving one mesh.
type Controls struct {
	Size     [2]float32 // pixels
	Position [2]float32 // pixels
	Anchor   [2]float32 // mesh space
	Rotation float32    // degrees
}

// Ranges are the upper slider bounds. Every slider starts at 0 and the
// anchor slider always ends at 1.
type Ranges struct {
	Size     float32
	Position float32
	Rotation float32
}

// AnchorMax is the upper bound of the anchor slider.
const AnchorMax = 1

// ControlsFromConfig returns the initial slider values.
func ControlsFromConfig(cfg *config.Config) Controls {
	cc := cfg.Controls
	return Controls{
		Size:     cc.Size,
		Position: cfg.InitialPosition(),
		Anchor:   cc.Anchor,
		Rotation: cc.Rotation,
	}
}

// RangesFromConfig returns the slider bounds.
func RangesFromConfig(cfg *config.Config) Ranges {
	return Ranges{
		Size:     cfg.Controls.SizeMax,
		Position: cfg.PositionMax(),
		Rotation: cfg.Controls.RotationMax,
	}
}

// Apply pushes the changed controls into m. Untouched attributes keep
// whatever the mesh already had.
func (c Controls) Apply(m *mesh.Mesh, changed Change) {
	if changed&ChangedSize != 0 {
		m.SetSize(vec(c.Size))
	}
	if changed&ChangedPosition != 0 {
		m.SetPos(vec(c.Position))
	}
	if changed&ChangedAnchor != 0 {
		m.SetAnchor(vec(c.Anchor))
	}
	if changed&ChangedRotation != 0 {
		m.SetRotation(c.Rotation)
	}
}

// ApplyAll pushes every control into m.
func (c Controls) ApplyAll(m *mesh.Mesh) {
	c.Apply(m, ChangedAll)
}

// Store writes the controls back into cfg so they persist on save.
func (c Controls) Store(cfg *config.Config) {
	cfg.Controls.Size = c.Size
	cfg.Controls.Position = &c.Position
	cfg.Controls.Anchor = c.Anchor
	cfg.Controls.Rotation = c.Rotation
}

func vec(a [2]float32) math.Vec2 {
	return math.Vec2{X: a[0], Y: a[1]}
}
