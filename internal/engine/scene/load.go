package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/rocketsim/internal/assets"
	"github.com/Faultbox/rocketsim/internal/engine/mesh"
	"github.com/Faultbox/rocketsim/internal/engine/render"
	"github.com/Faultbox/rocketsim/pkg/math"
)

// File is the YAML layout of a scene file.
type File struct {
	Meshes []MeshSpec `yaml:"meshes"`
}

// MeshSpec describes one mesh. Size and position are pixels, anchor is
// mesh space and rotation is degrees.
type MeshSpec struct {
	Name      string         `yaml:"name"`
	Size      [2]float32     `yaml:"size"`
	Position  [2]float32     `yaml:"position"`
	Anchor    [2]float32     `yaml:"anchor"`
	Rotation  float32        `yaml:"rotation"`
	Triangles []TriangleSpec `yaml:"triangles"`
}

// TriangleSpec describes one triangle in mesh space. Color is 0xRRGGBBAA.
type TriangleSpec struct {
	P1    [2]float32 `yaml:"p1"`
	P2    [2]float32 `yaml:"p2"`
	P3    [2]float32 `yaml:"p3"`
	Color string     `yaml:"color"`
}

// Parse builds a scene from YAML.
func Parse(data []byte) (*Scene, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding scene: %w", err)
	}

	s := New()
	for i, ms := range f.Meshes {
		m, err := ms.build()
		if err != nil {
			return nil, fmt.Errorf("mesh %d (%s): %w", i, ms.Name, err)
		}
		if err := s.Add(ms.Name, m); err != nil {
			return nil, fmt.Errorf("mesh %d: %w", i, err)
		}
	}
	return s, nil
}

func (ms MeshSpec) build() (*mesh.Mesh, error) {
	if len(ms.Triangles) == 0 {
		return nil, fmt.Errorf("no triangles")
	}

	tris := make([]mesh.Triangle, 0, len(ms.Triangles))
	for j, ts := range ms.Triangles {
		col := render.White
		if ts.Color != "" {
			c, err := render.ParseColor(ts.Color)
			if err != nil {
				return nil, fmt.Errorf("triangle %d: %w", j, err)
			}
			col = c
		}
		tris = append(tris, mesh.NewTriangle(vec(ts.P1), vec(ts.P2), vec(ts.P3), col))
	}

	m := mesh.New(tris, vec(ms.Size), vec(ms.Position))
	m.SetAnchor(vec(ms.Anchor))
	m.SetRotation(ms.Rotation)
	return m, nil
}

// Load resolves name through the asset manager and parses it.
func Load(am *assets.Manager, name string) (*Scene, error) {
	data, err := am.Load(name)
	if err != nil {
		return nil, fmt.Errorf("loading scene: %w", err)
	}
	return Parse(data)
}

// LoadFile parses a scene file from disk.
func LoadFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading scene: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Default returns the built-in scene.
func Default() *Scene {
	s, err := Load(assets.NewManager(), assets.DefaultScene)
	if err != nil {
		// The built-in scene is embedded and covered by tests.
		panic(err)
	}
	return s
}

// Encode serializes the current state of the scene.
func (s *Scene) Encode() ([]byte, error) {
	var f File
	for _, e := range s.entries {
		m := e.Mesh
		ms := MeshSpec{
			Name:     e.Name,
			Size:     arr(m.Size()),
			Position: arr(m.Pos()),
			Anchor:   arr(m.Anchor()),
			Rotation: m.Rotation(),
		}
		for _, t := range m.Triangles() {
			ms.Triangles = append(ms.Triangles, TriangleSpec{
				P1:    arr(t.P1()),
				P2:    arr(t.P2()),
				P3:    arr(t.P3()),
				Color: t.Color().String(),
			})
		}
		f.Meshes = append(f.Meshes, ms)
	}
	return yaml.Marshal(&f)
}

func vec(a [2]float32) math.Vec2 {
	return math.Vec2{X: a[0], Y: a[1]}
}

func arr(v math.Vec2) [2]float32 {
	return [2]float32{v.X, v.Y}
}
