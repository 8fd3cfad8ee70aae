// Package frontend runs the interactive visualizer windows.
package frontend

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/rocketsim/internal/engine/debug"
	"github.com/Faultbox/rocketsim/internal/engine/ui"
	"github.com/Faultbox/rocketsim/internal/logger"
	"github.com/Faultbox/rocketsim/internal/sim"
)

// Title is the window title of both frontends.
const Title = "Rocket Simulator"

const statusTimeout = 4 * time.Second

type imguiFrontend struct {
	app     *sim.App
	backend *ui.Backend
	capture *debug.ScreenshotCapture
	log     *zap.Logger

	// Paths picked in the file dialog goroutine, consumed on the main thread.
	pendingScene chan string

	screenshotRequested bool
	status              string
	statusTime          time.Time
}

// RunImGui opens the Dear ImGui window and blocks until it is closed.
func RunImGui(app *sim.App) error {
	cfg := app.Config()
	b, err := ui.NewBackend(Title, cfg.Graphics.Width, cfg.Graphics.Height, app.ClearColor())
	if err != nil {
		return fmt.Errorf("imgui frontend: %w", err)
	}

	f := &imguiFrontend{
		app:          app,
		backend:      b,
		capture:      debug.NewScreenshotCapture(cfg.Snapshot.OutputDir, cfg.Snapshot.Prefix),
		log:          logger.App(),
		pendingScene: make(chan string, 1),
	}

	app.AddWidget(f.sceneWidget)

	f.log.Info("imgui frontend started")
	b.Run(f.frame)
	f.log.Info("imgui frontend stopped")
	return nil
}

func (f *imguiFrontend) frame() {
	// Capture before drawing so the front buffer still holds the last frame.
	if f.screenshotRequested {
		f.screenshotRequested = false
		f.captureScreenshot()
	}

	select {
	case path := <-f.pendingScene:
		if err := f.app.LoadScene(path); err != nil {
			f.log.Error("failed to open scene", zap.String("path", path), zap.Error(err))
			f.setStatus(fmt.Sprintf("Open failed: %v", err))
		} else {
			f.setStatus("Opened " + path)
		}
	default:
	}

	f.handleShortcuts()

	x, y, w, h := ui.Viewport()
	imgui.SetNextWindowPos(imgui.NewVec2(x, y))
	imgui.SetNextWindowSize(imgui.NewVec2(w, h))

	flags := imgui.WindowFlagsMenuBar | imgui.WindowFlagsNoDecoration |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsNoBringToFrontOnFocus

	imgui.PushStyleVarFloat(imgui.StyleVarWindowRounding, 0)
	visible := imgui.BeginV("Main Menu", nil, flags)
	imgui.PopStyleVar()

	if visible {
		f.menuBar()
		if f.app.Config().Graphics.ShowMetrics {
			imgui.ShowMetricsWindow()
		}
		f.controls()
		f.app.Render(ui.NewDrawList(imgui.WindowDrawList()))
		f.app.RunWidgets()
		f.statusLine()
	}
	imgui.End()
}

func (f *imguiFrontend) handleShortcuts() {
	if ui.IsKeyPressed(imgui.KeyF12) {
		f.screenshotRequested = true
	}
	ctrlD := imgui.KeyChord(imgui.ModCtrl) | imgui.KeyChord(imgui.KeyD)
	if imgui.IsKeyChordPressed(ctrlD) {
		rec := f.app.DumpFrame()
		f.setStatus(fmt.Sprintf("Dumped %d draw commands", len(rec.Commands())))
	}
}

func (f *imguiFrontend) menuBar() {
	if !imgui.BeginMenuBar() {
		return
	}
	if imgui.BeginMenu("File") {
		if imgui.MenuItemBool("Open scene...") {
			f.openSceneDialog()
		}
		if imgui.MenuItemBool("Save config") {
			f.saveConfig()
		}
		imgui.Separator()
		if imgui.MenuItemBool("Export PNG") {
			f.export(".png", f.app.Snapshot)
		}
		if imgui.MenuItemBool("Export PDF") {
			f.export(".pdf", f.app.ExportPDF)
		}
		imgui.Separator()
		if imgui.MenuItemBool("Quit") {
			f.backend.Close()
		}
		imgui.EndMenu()
	}
	if imgui.BeginMenu("View") {
		if imgui.MenuItemBool("Reset controls") {
			f.app.ResetControls()
		}
		if imgui.MenuItemBool("Screenshot (F12)") {
			f.screenshotRequested = true
		}
		imgui.EndMenu()
	}
	imgui.EndMenuBar()
}

func (f *imguiFrontend) controls() {
	c := f.app.Controls()
	r := f.app.Ranges()

	changed := sim.ChangedNone
	if imgui.SliderFloat2("Size", &c.Size, 0, r.Size) {
		changed |= sim.ChangedSize
	}
	if imgui.SliderFloat2("Position", &c.Position, 0, r.Position) {
		changed |= sim.ChangedPosition
	}
	if imgui.SliderFloat2("Anchor", &c.Anchor, 0, sim.AnchorMax) {
		changed |= sim.ChangedAnchor
	}
	if imgui.SliderFloat("Rotation", &c.Rotation, 0, r.Rotation) {
		changed |= sim.ChangedRotation
	}
	f.app.SetControls(c, changed)

	quadrant := f.app.QuadrantAware()
	if imgui.Checkbox("Quadrant-aware rotation", &quadrant) {
		f.app.SetQuadrantAware(quadrant)
	}
	bounds := f.app.ShowBounds()
	if imgui.Checkbox("Show bounds", &bounds) {
		f.app.SetShowBounds(bounds)
	}
}

func (f *imguiFrontend) sceneWidget() {
	label := fmt.Sprintf("Scene (%d meshes)", f.app.Scene().Len())
	if imgui.TreeNodeExStrV(label, imgui.TreeNodeFlagsNone) {
		for _, line := range f.app.Describe() {
			imgui.TextDisabled(line)
		}
		imgui.TreePop()
	}
}

func (f *imguiFrontend) statusLine() {
	if f.status == "" || time.Since(f.statusTime) > statusTimeout {
		return
	}
	imgui.Separator()
	imgui.Text(f.status)
}

func (f *imguiFrontend) setStatus(msg string) {
	f.status = msg
	f.statusTime = time.Now()
}

// openSceneDialog shows the native file dialog without blocking the frame
// loop. The chosen path is picked up by the next frame.
func (f *imguiFrontend) openSceneDialog() {
	go func() {
		path, err := dialog.File().
			Filter("Scene files", "yaml", "yml").
			Filter("All Files", "*").
			Title("Open Scene").
			Load()
		if err != nil {
			if err != dialog.ErrCancelled {
				f.log.Warn("file dialog failed", zap.Error(err))
			}
			return
		}
		select {
		case f.pendingScene <- path:
		default:
		}
	}()
}

func (f *imguiFrontend) saveConfig() {
	path, err := f.app.SaveConfig()
	if err != nil {
		f.log.Error("failed to save config", zap.Error(err))
		f.setStatus(fmt.Sprintf("Save failed: %v", err))
		return
	}
	f.setStatus("Saved " + path)
}

func (f *imguiFrontend) export(ext string, write func(string) error) {
	path := f.app.SnapshotName(ext)
	if err := write(path); err != nil {
		f.log.Error("export failed", zap.String("path", path), zap.Error(err))
		f.setStatus(fmt.Sprintf("Export failed: %v", err))
		return
	}
	f.setStatus("Exported " + path)
}

func (f *imguiFrontend) captureScreenshot() {
	pixels, w, h, err := f.backend.ReadFramebuffer()
	if err == nil {
		var path string
		path, err = f.capture.CaptureFromPixels(pixels, w, h)
		if err == nil {
			f.log.Info("screenshot saved", zap.String("path", path))
			f.setStatus("Screenshot " + path)
			return
		}
	}
	f.log.Error("screenshot failed", zap.Error(err))
	f.setStatus(fmt.Sprintf("Screenshot failed: %v", err))
}
