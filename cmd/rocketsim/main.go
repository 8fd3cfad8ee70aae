// Package main is the entry point for the Rocket Simulator visualizer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/rocketsim/internal/config"
	"github.com/Faultbox/rocketsim/internal/frontend"
	"github.com/Faultbox/rocketsim/internal/logger"
	"github.com/Faultbox/rocketsim/internal/sim"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	code := 0
	if err := run(cfg); err != nil {
		logger.Error("rocketsim failed", zap.Error(err))
		code = 1
	}
	logger.Sync()
	os.Exit(code)
}

func run(cfg *config.Config) error {
	logger.Info("=== Rocket Simulator ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	app, err := sim.NewApp(cfg)
	if err != nil {
		return fmt.Errorf("creating app: %w", err)
	}

	// Headless exports skip the window entirely.
	png, pdf := config.SnapshotPath(), config.PDFPath()
	if png != "" || pdf != "" {
		if png != "" {
			if err := app.Snapshot(png); err != nil {
				return err
			}
		}
		if pdf != "" {
			if err := app.ExportPDF(pdf); err != nil {
				return err
			}
		}
		return nil
	}

	switch cfg.Graphics.Frontend {
	case config.FrontendNative:
		err = frontend.RunNative(app)
	default:
		err = frontend.RunImGui(app)
	}
	if err != nil {
		return err
	}

	logger.Info("window closed normally")
	return nil
}
