// Package scene holds the meshes drawn each frame.
//
// A Scene replaces process-wide mesh state: the application owns one and
// passes it, together with a render.Surface, to the render step.
package scene

import (
	"fmt"

	"github.com/Faultbox/rocketsim/internal/engine/mesh"
	"github.com/Faultbox/rocketsim/internal/engine/render"
)

// Renderable is anything that can draw itself onto a surface.
type Renderable interface {
	Draw(s render.Surface)
}

var (
	_ Renderable = (*mesh.Mesh)(nil)
	_ Renderable = (*Scene)(nil)
)

// Entry is a named mesh.
type Entry struct {
	Name string
	Mesh *mesh.Mesh
}

// Scene is an ordered set of named meshes. Insertion order is draw order.
type Scene struct {
	entries []Entry
	index   map[string]int
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{index: make(map[string]int)}
}

// Add appends a mesh. Names must be unique.
func (s *Scene) Add(name string, m *mesh.Mesh) error {
	if name == "" {
		return fmt.Errorf("mesh name is empty")
	}
	if _, ok := s.index[name]; ok {
		return fmt.Errorf("duplicate mesh %q", name)
	}
	s.index[name] = len(s.entries)
	s.entries = append(s.entries, Entry{Name: name, Mesh: m})
	return nil
}

// Mesh looks up a mesh by name.
func (s *Scene) Mesh(name string) (*mesh.Mesh, bool) {
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return s.entries[i].Mesh, true
}

// Names returns the mesh names in draw order.
func (s *Scene) Names() []string {
	names := make([]string, len(s.entries))
	for i, e := range s.entries {
		names[i] = e.Name
	}
	return names
}

// Len returns the number of meshes.
func (s *Scene) Len() int {
	return len(s.entries)
}

// Draw draws every mesh in order.
func (s *Scene) Draw(surf render.Surface) {
	for _, e := range s.entries {
		e.Mesh.Draw(surf)
	}
}

// SetAngleMode switches every mesh to mode.
func (s *Scene) SetAngleMode(mode mesh.AngleMode) {
	for _, e := range s.entries {
		e.Mesh.SetAngleMode(mode)
	}
}

// SetShowBounds toggles the boundary outlines of every mesh.
func (s *Scene) SetShowBounds(show bool) {
	for _, e := range s.entries {
		e.Mesh.SetShowBounds(show)
	}
}
