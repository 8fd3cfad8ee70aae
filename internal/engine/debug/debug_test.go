package debug

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Faultbox/rocketsim/internal/engine/render"
	"github.com/Faultbox/rocketsim/pkg/math"
)

func TestFlipPixels(t *testing.T) {
	// 1x2 image: bottom row red, top row blue in GL order.
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	img, err := FlipPixels(pixels, 1, 2)
	if err != nil {
		t.Fatalf("FlipPixels() error: %v", err)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("top pixel = %v, want blue", got)
	}
	if got := img.RGBAAt(0, 1); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("bottom pixel = %v, want red", got)
	}
}

func TestFlipPixelsSizeMismatch(t *testing.T) {
	if _, err := FlipPixels(make([]byte, 3), 1, 1); err == nil {
		t.Error("expected size mismatch error")
	}
}

func TestCapture(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	sc := NewScreenshotCapture(dir, "frame")
	sc.now = func() time.Time { return time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC) }

	want := filepath.Join(dir, "frame_2024-05-01_12-30-00.png")
	if got := sc.GenerateFilename(); got != want {
		t.Errorf("GenerateFilename() = %s, want %s", got, want)
	}

	name, err := sc.CaptureFromPixels(make([]byte, 4*4*4), 4, 4)
	if err != nil {
		t.Fatalf("CaptureFromPixels() error: %v", err)
	}
	if name != want {
		t.Errorf("capture written to %s, want %s", name, want)
	}
	if _, err := os.Stat(name); err != nil {
		t.Errorf("capture missing: %v", err)
	}
}

func TestCaptureFromImage(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "img")
	name, err := sc.CaptureFromImage(image.NewRGBA(image.Rect(0, 0, 2, 2)))
	if err != nil {
		t.Fatalf("CaptureFromImage() error: %v", err)
	}
	if !strings.HasSuffix(name, ".png") {
		t.Errorf("unexpected filename %s", name)
	}
}

func TestBounds(t *testing.T) {
	rec := render.NewRecorder()
	rec.FillTriangle(math.Vec2{10, 20}, math.Vec2{30, 5}, math.Vec2{-4, 8}, render.White)
	rec.StrokeRect(math.Vec2{0, 0}, math.Vec2{50, 40}, render.Red)

	min, max := Bounds(rec.Commands())
	if min != (math.Vec2{-4, 0}) {
		t.Errorf("min = %v, want (-4, 0)", min)
	}
	if max != (math.Vec2{50, 40}) {
		t.Errorf("max = %v, want (50, 40)", max)
	}
}

func TestDumpCommands(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := zap.New(core)

	rec := render.NewRecorder()
	rec.FillTriangle(math.Vec2{0, 0}, math.Vec2{1, 0}, math.Vec2{0, 1}, render.White)
	rec.StrokeRect(math.Vec2{0, 0}, math.Vec2{1, 1}, render.Red)
	DumpCommands(log, rec)

	if logs.Len() != 3 {
		t.Fatalf("expected 3 log entries, got %d", logs.Len())
	}
	if logs.FilterMessage("draw").Len() != 2 {
		t.Error("expected one draw entry per command")
	}
	summary := logs.FilterMessage("frame").All()
	if len(summary) != 1 || summary[0].ContextMap()["triangles"] != int64(1) {
		t.Fatalf("unexpected frame summary: %+v", summary)
	}
	diag, ok := summary[0].ContextMap()["diagonal"].(float32)
	if !ok || math.Abs(diag-1.4142135) > 1e-5 {
		t.Errorf("diagonal = %v, want sqrt(2)", summary[0].ContextMap()["diagonal"])
	}
}

func TestDumpEmpty(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	DumpCommands(zap.New(core), render.NewRecorder())
	if logs.FilterMessage("frame is empty").Len() != 1 {
		t.Error("empty frame not reported")
	}
}
