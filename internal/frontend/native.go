package frontend

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/rocketsim/internal/engine/debug"
	"github.com/Faultbox/rocketsim/internal/engine/input"
	"github.com/Faultbox/rocketsim/internal/engine/ui2d"
	"github.com/Faultbox/rocketsim/internal/engine/window"
	"github.com/Faultbox/rocketsim/internal/logger"
	"github.com/Faultbox/rocketsim/internal/sim"
)

const (
	panelX = 10
	panelY = 10
	panelW = 460
	panelH = 300
)

type nativeFrontend struct {
	app      *sim.App
	win      *window.Window
	renderer *ui2d.Renderer
	ctx      *ui2d.Context
	input    *input.Input
	capture  *debug.ScreenshotCapture
	log      *zap.Logger

	// Drawable pixels per window coordinate.
	scaleX, scaleY float32
	quit           bool
}

// RunNative opens an SDL window drawn with the built-in GL widgets and
// blocks until it is closed.
func RunNative(app *sim.App) error {
	cfg := app.Config()
	win, err := window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return fmt.Errorf("native frontend: %w", err)
	}
	defer win.Close()

	w, h := win.DrawableSize()
	r, err := ui2d.New(w, h)
	if err != nil {
		return fmt.Errorf("native frontend: %w", err)
	}
	defer r.Close()

	f := &nativeFrontend{
		app:      app,
		win:      win,
		renderer: r,
		ctx:      ui2d.NewContext(r.Batch),
		input:    input.New(),
		capture:  debug.NewScreenshotCapture(cfg.Snapshot.OutputDir, cfg.Snapshot.Prefix),
		log:      logger.App(),
	}
	f.resize()

	f.log.Info("native frontend started", zap.Int("width", w), zap.Int("height", h))
	for !f.quit {
		f.frame()
	}
	f.log.Info("native frontend stopped")
	return nil
}

func (f *nativeFrontend) resize() {
	ww, wh := f.win.Size()
	dw, dh := f.win.DrawableSize()
	f.renderer.Resize(dw, dh)
	f.scaleX, f.scaleY = 1, 1
	if ww > 0 && wh > 0 {
		f.scaleX = float32(dw) / float32(ww)
		f.scaleY = float32(dh) / float32(wh)
	}
}

func (f *nativeFrontend) frame() {
	if f.input.Update() || f.input.IsKeyPressed(sdl.SCANCODE_ESCAPE) {
		f.quit = true
		return
	}
	for _, e := range f.input.Events() {
		if e.Type == input.EventWindowResize {
			f.resize()
		}
	}
	FeedInput(f.ctx.Input(), f.input.Events(), f.scaleX, f.scaleY)

	if f.input.IsKeyPressed(sdl.SCANCODE_F1) {
		f.app.DumpFrame()
	}

	f.renderer.Clear(f.app.ClearColor())
	f.renderer.Begin()
	f.ctx.Begin()

	f.app.Render(f.renderer)
	f.panel()

	f.ctx.End()
	f.renderer.End()

	// The back buffer still holds the finished frame until the swap.
	if f.input.IsKeyPressed(sdl.SCANCODE_F12) {
		f.captureScreenshot()
	}
	f.win.SwapBuffers()
}

func (f *nativeFrontend) panel() {
	ctx := f.ctx
	if !ctx.BeginWindow("main", panelX, panelY, panelW, panelH, "Main Menu") {
		return
	}
	defer ctx.EndWindow()

	c := f.app.Controls()
	r := f.app.Ranges()
	changed := sim.ChangedNone

	ctx.Row(0)
	if ctx.SliderFloat2("size", "Size", &c.Size, 0, r.Size) {
		changed |= sim.ChangedSize
	}
	ctx.Row(0)
	if ctx.SliderFloat2("position", "Position", &c.Position, 0, r.Position) {
		changed |= sim.ChangedPosition
	}
	ctx.Row(0)
	if ctx.SliderFloat2("anchor", "Anchor", &c.Anchor, 0, sim.AnchorMax) {
		changed |= sim.ChangedAnchor
	}
	ctx.Row(0)
	if ctx.SliderFloat("rotation", "Rotation", &c.Rotation, 0, r.Rotation) {
		changed |= sim.ChangedRotation
	}
	f.app.SetControls(c, changed)

	ctx.Separator()
	ctx.Row(0)
	quadrant := f.app.QuadrantAware()
	if ctx.Checkbox("quadrant", "Quadrant-aware rotation", &quadrant) {
		f.app.SetQuadrantAware(quadrant)
	}
	ctx.Row(0)
	bounds := f.app.ShowBounds()
	if ctx.Checkbox("bounds", "Show bounds", &bounds) {
		f.app.SetShowBounds(bounds)
	}

	ctx.Separator()
	ctx.Row(24)
	if ctx.Button("reset", "Reset", 80) {
		f.app.ResetControls()
	}
	if ctx.Button("save", "Save config", 110) {
		if _, err := f.app.SaveConfig(); err != nil {
			f.log.Error("failed to save config", zap.Error(err))
		}
	}
	if ctx.Button("png", "PNG", 60) {
		f.export(".png", f.app.Snapshot)
	}
	if ctx.Button("pdf", "PDF", 60) {
		f.export(".pdf", f.app.ExportPDF)
	}

	ctx.Row(0)
	ctx.LabelColored("F12 screenshot  F1 dump  Esc quit", ui2d.ColorTextDim)
}

func (f *nativeFrontend) export(ext string, write func(string) error) {
	path := f.app.SnapshotName(ext)
	if err := write(path); err != nil {
		f.log.Error("export failed", zap.String("path", path), zap.Error(err))
	}
}

func (f *nativeFrontend) captureScreenshot() {
	pixels, w, h := f.renderer.ReadPixels()
	path, err := f.capture.CaptureFromPixels(pixels, w, h)
	if err != nil {
		f.log.Error("screenshot failed", zap.Error(err))
		return
	}
	f.log.Info("screenshot saved", zap.String("path", path))
}

// FeedInput folds one frame of events into the widget input state. Mouse
// coordinates are scaled from window to drawable pixels.
func FeedInput(st *ui2d.InputState, events []input.Event, scaleX, scaleY float32) {
	for _, e := range events {
		switch e.Type {
		case input.EventMouseMove:
			st.MouseX = float32(e.MouseX) * scaleX
			st.MouseY = float32(e.MouseY) * scaleY
		case input.EventMouseDown, input.EventMouseUp:
			st.MouseX = float32(e.MouseX) * scaleX
			st.MouseY = float32(e.MouseY) * scaleY
			if e.Button == input.ButtonLeft {
				st.MouseLeftDown = e.Type == input.EventMouseDown
			}
		case input.EventMouseWheel:
			st.ScrollY += e.WheelY
		}
	}
}
