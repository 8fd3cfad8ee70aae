package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging and the metrics window")
	flagFrontend   = flag.String("frontend", "", "UI frontend: imgui or native")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagScene      = flag.String("scene", "", "Path to a scene file")
	flagSnapshot   = flag.String("snapshot", "", "Render one frame to this PNG file and exit")
	flagPDF        = flag.String("pdf", "", "Export one frame to this PDF file and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// SnapshotPath returns the PNG path requested with --snapshot.
func SnapshotPath() string {
	return *flagSnapshot
}

// PDFPath returns the PDF path requested with --pdf.
func PDFPath() string {
	return *flagPDF
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Graphics.ShowMetrics = true
	}
	if *flagFrontend != "" {
		cfg.Graphics.Frontend = *flagFrontend
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagScene != "" {
		cfg.Scene.Path = *flagScene
	}
}
