// Package config handles visualizer configuration loading and management.
package config

import (
	"fmt"

	"github.com/Faultbox/rocketsim/internal/engine/render"
)

// Frontend names accepted by graphics.frontend.
const (
	FrontendImGui  = "imgui"
	FrontendNative = "native"
)

// Config holds all visualizer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Render   RenderConfig   `yaml:"render"`
	Controls ControlsConfig `yaml:"controls"`
	Scene    SceneConfig    `yaml:"scene"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	Fullscreen  bool   `yaml:"fullscreen"`
	VSync       bool   `yaml:"vsync"`
	Frontend    string `yaml:"frontend"`     // imgui or native
	ShowMetrics bool   `yaml:"show_metrics"` // ImGui metrics window
}

// RenderConfig holds mesh drawing settings.
type RenderConfig struct {
	// QuadrantAwareRotation switches vertex rotation from atan(y/x) to
	// atan2(y, x). Off by default to keep the historical behavior.
	QuadrantAwareRotation bool   `yaml:"quadrant_aware_rotation"`
	ShowBounds            bool   `yaml:"show_bounds"`
	ClearColor            string `yaml:"clear_color"` // 0xRRGGBBAA
}

// ControlsConfig holds the initial slider values and their ranges.
type ControlsConfig struct {
	Size        [2]float32  `yaml:"size"`               // pixels
	Position    *[2]float32 `yaml:"position,omitempty"` // pixels, nil centers in the window
	Anchor      [2]float32  `yaml:"anchor"`             // mesh space
	Rotation    float32     `yaml:"rotation"`           // degrees
	SizeMax     float32     `yaml:"size_max"`
	RotationMax float32     `yaml:"rotation_max"`
}

// SceneConfig selects the scene file and the mesh driven by the controls.
type SceneConfig struct {
	Path string `yaml:"path"` // empty means the built-in scene
	Mesh string `yaml:"mesh"`
}

// SnapshotConfig holds headless output settings.
type SnapshotConfig struct {
	OutputDir string `yaml:"output_dir"`
	Prefix    string `yaml:"prefix"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			Frontend:   FrontendImGui,
		},
		Render: RenderConfig{
			QuadrantAwareRotation: false,
			ShowBounds:            true,
			ClearColor:            "0x000000FF",
		},
		Controls: ControlsConfig{
			Size:        [2]float32{100, 100},
			Anchor:      [2]float32{0.5, 0.5},
			Rotation:    0,
			SizeMax:     1000,
			RotationMax: 360,
		},
		Scene: SceneConfig{
			Mesh: "rocket",
		},
		Snapshot: SnapshotConfig{
			OutputDir: "snapshots",
			Prefix:    "rocketsim",
			Width:     1280,
			Height:    720,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports settings that cannot be used.
func (c *Config) Validate() error {
	switch c.Graphics.Frontend {
	case FrontendImGui, FrontendNative:
	default:
		return fmt.Errorf("graphics.frontend: unknown frontend %q", c.Graphics.Frontend)
	}
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("graphics: window size %dx%d must be positive", c.Graphics.Width, c.Graphics.Height)
	}
	if c.Snapshot.Width <= 0 || c.Snapshot.Height <= 0 {
		return fmt.Errorf("snapshot: size %dx%d must be positive", c.Snapshot.Width, c.Snapshot.Height)
	}
	if _, err := c.ClearColor(); err != nil {
		return fmt.Errorf("render.clear_color: %w", err)
	}
	return nil
}

// ClearColor returns the parsed background color.
func (c *Config) ClearColor() (render.Color, error) {
	if c.Render.ClearColor == "" {
		return render.Black, nil
	}
	return render.ParseColor(c.Render.ClearColor)
}

// PositionMax returns the upper bound of the position slider. Both axes
// share the window width.
func (c *Config) PositionMax() float32 {
	return float32(c.Graphics.Width)
}

// InitialPosition returns the configured start position, or the window
// center when none is set.
func (c *Config) InitialPosition() [2]float32 {
	if p := c.Controls.Position; p != nil {
		return *p
	}
	return [2]float32{float32(c.Graphics.Width) / 2, float32(c.Graphics.Height) / 2}
}
