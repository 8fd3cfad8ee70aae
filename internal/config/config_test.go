package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/rocketsim/internal/engine/render"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Graphics defaults
	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if cfg.Graphics.Frontend != FrontendImGui {
		t.Errorf("expected imgui frontend, got %s", cfg.Graphics.Frontend)
	}

	// Render defaults keep the historical rotation
	if cfg.Render.QuadrantAwareRotation {
		t.Error("expected quadrant-aware rotation to be off by default")
	}
	if !cfg.Render.ShowBounds {
		t.Error("expected bounds to be shown by default")
	}

	// Control defaults
	if cfg.Controls.Size != [2]float32{100, 100} {
		t.Errorf("expected size 100x100, got %v", cfg.Controls.Size)
	}
	if cfg.Controls.Anchor != [2]float32{0.5, 0.5} {
		t.Errorf("expected anchor (0.5, 0.5), got %v", cfg.Controls.Anchor)
	}
	if cfg.Controls.SizeMax != 1000 || cfg.Controls.RotationMax != 360 {
		t.Errorf("unexpected slider ranges: size %v rotation %v", cfg.Controls.SizeMax, cfg.Controls.RotationMax)
	}
	if cfg.Controls.Position != nil {
		t.Errorf("expected no fixed position, got %v", *cfg.Controls.Position)
	}
	if got := cfg.InitialPosition(); got != [2]float32{640, 360} {
		t.Errorf("expected window center (640, 360), got %v", got)
	}
	if cfg.PositionMax() != 1280 {
		t.Errorf("expected position max 1280, got %v", cfg.PositionMax())
	}

	// Logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false
  frontend: native

render:
  quadrant_aware_rotation: true
  show_bounds: false
  clear_color: "0x101020FF"

controls:
  size: [250, 120]
  position: [960, 540]
  anchor: [0, 1]
  rotation: 45

scene:
  path: "scenes/rocket.yaml"
  mesh: "booster"

logging:
  level: "debug"
  log_file: "rocketsim.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 || cfg.Graphics.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.VSync {
		t.Error("expected vsync to be false")
	}
	if cfg.Graphics.Frontend != FrontendNative {
		t.Errorf("expected native frontend, got %s", cfg.Graphics.Frontend)
	}

	if !cfg.Render.QuadrantAwareRotation {
		t.Error("expected quadrant-aware rotation to be true")
	}
	if cfg.Render.ShowBounds {
		t.Error("expected show_bounds to be false")
	}
	clear, err := cfg.ClearColor()
	if err != nil {
		t.Fatalf("ClearColor() error: %v", err)
	}
	if clear.RGBA32() != 0x101020FF {
		t.Errorf("expected clear color 0x101020FF, got %v", clear)
	}

	if cfg.Controls.Size != [2]float32{250, 120} {
		t.Errorf("expected size [250 120], got %v", cfg.Controls.Size)
	}
	if cfg.Controls.Position == nil || *cfg.Controls.Position != [2]float32{960, 540} {
		t.Errorf("expected position [960 540], got %v", cfg.Controls.Position)
	}
	if got := cfg.InitialPosition(); got != [2]float32{960, 540} {
		t.Errorf("file position should win over the window center, got %v", got)
	}
	if cfg.Controls.Anchor != [2]float32{0, 1} {
		t.Errorf("expected anchor [0 1], got %v", cfg.Controls.Anchor)
	}
	if cfg.Controls.Rotation != 45 {
		t.Errorf("expected rotation 45, got %v", cfg.Controls.Rotation)
	}
	// Unset keys keep their defaults
	if cfg.Controls.SizeMax != 1000 {
		t.Errorf("expected size_max default 1000, got %v", cfg.Controls.SizeMax)
	}

	if cfg.Scene.Path != "scenes/rocket.yaml" || cfg.Scene.Mesh != "booster" {
		t.Errorf("unexpected scene config: %+v", cfg.Scene)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "rocketsim.log" {
		t.Errorf("expected log file 'rocketsim.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"native frontend", func(c *Config) { c.Graphics.Frontend = FrontendNative }, false},
		{"unknown frontend", func(c *Config) { c.Graphics.Frontend = "vulkan" }, true},
		{"zero window", func(c *Config) { c.Graphics.Width = 0 }, true},
		{"negative snapshot", func(c *Config) { c.Snapshot.Height = -1 }, true},
		{"bad clear color", func(c *Config) { c.Render.ClearColor = "blue" }, true},
		{"empty clear color", func(c *Config) { c.Render.ClearColor = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestClearColorEmptyIsBlack(t *testing.T) {
	cfg := Default()
	cfg.Render.ClearColor = ""
	c, err := cfg.ClearColor()
	if err != nil || c != render.Black {
		t.Errorf("ClearColor() = %v, %v; want black", c, err)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Controls.Rotation = 90
	cfg.Render.QuadrantAwareRotation = true
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile() error: %v", err)
	}
	if loaded.Controls.Rotation != 90 || !loaded.Render.QuadrantAwareRotation {
		t.Errorf("saved values not restored: %+v %+v", loaded.Controls, loaded.Render)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
				if !cfg.Graphics.ShowMetrics {
					t.Error("expected metrics window with debug flag")
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "frontend flag",
			setup: func() { *flagFrontend = FrontendNative },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Frontend != FrontendNative {
					t.Errorf("expected native frontend, got %s", cfg.Graphics.Frontend)
				}
			},
			teardown: func() { *flagFrontend = "" },
		},
		{
			name:  "windowed flag",
			setup: func() { *flagWindowed = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() { *flagWindowed = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Width != 2560 || cfg.Graphics.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name:  "scene flag",
			setup: func() { *flagScene = "my_scene.yaml" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Scene.Path != "my_scene.yaml" {
					t.Errorf("expected scene path my_scene.yaml, got %s", cfg.Scene.Path)
				}
			},
			teardown: func() { *flagScene = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width comes from the flag, height from the file
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
	// The mesh starts centered in the final window size
	if got := cfg.InitialPosition(); got != [2]float32{960, 450} {
		t.Errorf("expected initial position (960, 450), got %v", got)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("graphics:\n  frontend: directx\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected Load() to reject unknown frontend")
	}
}
