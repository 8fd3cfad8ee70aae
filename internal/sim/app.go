package sim

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/rocketsim/internal/assets"
	"github.com/Faultbox/rocketsim/internal/config"
	"github.com/Faultbox/rocketsim/internal/engine/debug"
	"github.com/Faultbox/rocketsim/internal/engine/mesh"
	"github.com/Faultbox/rocketsim/internal/engine/render"
	"github.com/Faultbox/rocketsim/internal/engine/scene"
	"github.com/Faultbox/rocketsim/internal/logger"
)

// App is the visualizer state shared by every frontend. It owns the scene;
// frontends only draw it and feed control changes back.
type App struct {
	cfg *config.Config
	log *zap.Logger

	scene  *scene.Scene
	target *mesh.Mesh

	controls Controls
	ranges   Ranges

	quadrantAware bool
	showBounds    bool
	bg            render.Color

	widgets []func()
}

// NewApp loads the configured scene and applies the initial controls.
func NewApp(cfg *config.Config) (*App, error) {
	bg, err := cfg.ClearColor()
	if err != nil {
		return nil, fmt.Errorf("render.clear_color: %w", err)
	}

	a := &App{
		cfg:           cfg,
		log:           logger.App(),
		controls:      ControlsFromConfig(cfg),
		ranges:        RangesFromConfig(cfg),
		quadrantAware: cfg.Render.QuadrantAwareRotation,
		showBounds:    cfg.Render.ShowBounds,
		bg:            bg,
	}

	if err := a.LoadScene(cfg.Scene.Path); err != nil {
		return nil, err
	}
	return a, nil
}

// LoadScene replaces the scene. An empty path loads the built-in scene.
// The controlled mesh is re-resolved and the current controls are applied.
func (a *App) LoadScene(path string) error {
	s, err := loadScene(path)
	if err != nil {
		return err
	}

	name := a.cfg.Scene.Mesh
	target, ok := s.Mesh(name)
	if !ok {
		return fmt.Errorf("scene has no mesh %q (have %v)", name, s.Names())
	}

	a.scene = s
	a.target = target
	a.cfg.Scene.Path = path
	a.applyRenderOptions()
	a.controls.ApplyAll(a.target)

	a.log.Info("scene loaded",
		zap.String("path", path),
		zap.Strings("meshes", s.Names()),
		zap.String("controlled", name))
	return nil
}

// loadScene reads an explicit path from disk only. An empty path resolves
// the default scene, where a copy in the user config dir shadows the
// built-in one.
func loadScene(path string) (*scene.Scene, error) {
	if path != "" {
		return scene.LoadFile(path)
	}

	am := assets.NewManager()
	defer am.Close()

	dir := config.ConfigDir()
	if _, err := os.Stat(dir); err == nil {
		if err := am.AddDir(dir); err != nil {
			return nil, fmt.Errorf("loading scene: %w", err)
		}
	}

	s, err := scene.Load(am, assets.DefaultScene)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", assets.DefaultScene, err)
	}
	return s, nil
}

func (a *App) applyRenderOptions() {
	mode := mesh.AngleSingleArg
	if a.quadrantAware {
		mode = mesh.AngleQuadrantAware
	}
	a.scene.SetAngleMode(mode)
	a.scene.SetShowBounds(a.showBounds)
}

// Scene returns the current scene.
func (a *App) Scene() *scene.Scene {
	return a.scene
}

// Target returns the mesh driven by the controls.
func (a *App) Target() *mesh.Mesh {
	return a.target
}

// Config returns the live configuration.
func (a *App) Config() *config.Config {
	return a.cfg
}

// Controls returns the current slider values.
func (a *App) Controls() Controls {
	return a.controls
}

// Ranges returns the slider bounds.
func (a *App) Ranges() Ranges {
	return a.ranges
}

// ClearColor returns the background color.
func (a *App) ClearColor() render.Color {
	return a.bg
}

// SetControls stores c and applies the changed attributes to the target.
func (a *App) SetControls(c Controls, changed Change) {
	a.controls = c
	if changed != ChangedNone {
		c.Apply(a.target, changed)
	}
}

// ResetControls restores the configured initial values.
func (a *App) ResetControls() {
	a.controls = ControlsFromConfig(a.cfg)
	a.controls.ApplyAll(a.target)
}

// QuadrantAware reports whether rotation uses atan2.
func (a *App) QuadrantAware() bool {
	return a.quadrantAware
}

// SetQuadrantAware switches every mesh between atan(y/x) and atan2(y, x).
func (a *App) SetQuadrantAware(on bool) {
	a.quadrantAware = on
	a.cfg.Render.QuadrantAwareRotation = on
	a.applyRenderOptions()
}

// ShowBounds reports whether boundary outlines are drawn.
func (a *App) ShowBounds() bool {
	return a.showBounds
}

// SetShowBounds toggles the boundary outlines.
func (a *App) SetShowBounds(on bool) {
	a.showBounds = on
	a.cfg.Render.ShowBounds = on
	a.applyRenderOptions()
}

// AddWidget registers an extra UI callback run every frame inside the
// main window.
func (a *App) AddWidget(w func()) {
	a.widgets = append(a.widgets, w)
}

// RunWidgets runs the registered widget callbacks in order.
func (a *App) RunWidgets() {
	for _, w := range a.widgets {
		w()
	}
}

// Describe returns one status line per mesh in draw order. The mesh driven
// by the controls is marked.
func (a *App) Describe() []string {
	names := a.scene.Names()
	lines := make([]string, 0, len(names))
	for _, name := range names {
		m, _ := a.scene.Mesh(name)
		line := fmt.Sprintf("%s: %d triangles, pos %v, size %v, rot %g",
			name, m.Len(), m.Pos(), m.Size(), m.Rotation())
		if m == a.target {
			line += " *"
		}
		lines = append(lines, line)
	}
	return lines
}

// Render draws the scene onto s.
func (a *App) Render(s render.Surface) {
	a.scene.Draw(s)
}

// DumpFrame records one frame and logs its draw commands at debug level.
func (a *App) DumpFrame() *render.Recorder {
	rec := render.NewRecorder()
	a.Render(rec)
	debug.DumpCommands(logger.Core(), rec)
	return rec
}

// SaveConfig writes the current controls and render options to the user
// config file.
func (a *App) SaveConfig() (string, error) {
	a.controls.Store(a.cfg)
	path, err := a.cfg.Save()
	if err != nil {
		return "", fmt.Errorf("saving config: %w", err)
	}
	a.log.Info("config saved", zap.String("path", path))
	return path, nil
}
