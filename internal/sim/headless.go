package sim

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/rocketsim/internal/engine/raster"
	"github.com/Faultbox/rocketsim/internal/export"
)

// Snapshot rasterizes one frame at the configured snapshot size and writes
// it as PNG.
func (a *App) Snapshot(path string) error {
	sc := a.cfg.Snapshot
	canvas := raster.NewCanvas(sc.Width, sc.Height)
	defer canvas.Close()

	canvas.Clear(a.bg)
	a.Render(canvas)

	if err := ensureDir(path); err != nil {
		return err
	}
	if err := canvas.SavePNG(path); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}

	a.log.Info("snapshot written",
		zap.String("path", path),
		zap.Int("width", sc.Width),
		zap.Int("height", sc.Height))
	return nil
}

// ExportPDF writes one frame as a single-page PDF, one point per pixel.
func (a *App) ExportPDF(path string) error {
	sc := a.cfg.Snapshot
	doc := export.NewPDF(float64(sc.Width), float64(sc.Height), a.bg)
	a.Render(doc)

	if err := ensureDir(path); err != nil {
		return err
	}
	if err := doc.Save(path); err != nil {
		return fmt.Errorf("pdf export: %w", err)
	}

	a.log.Info("pdf written", zap.String("path", path), zap.Int("shapes", doc.Shapes()))
	return nil
}

// SnapshotName returns a default output path inside the snapshot directory.
func (a *App) SnapshotName(ext string) string {
	sc := a.cfg.Snapshot
	return filepath.Join(sc.OutputDir, sc.Prefix+ext)
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	return nil
}
