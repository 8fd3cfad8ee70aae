package ui2d

import (
	"testing"

	"github.com/Faultbox/rocketsim/internal/engine/mesh"
	"github.com/Faultbox/rocketsim/internal/engine/render"
	"github.com/Faultbox/rocketsim/pkg/math"
)

func TestBatchFillTriangle(t *testing.T) {
	b := NewBatch(100, 100, nil)
	b.FillTriangle(math.Vec2{1, 2}, math.Vec2{3, 4}, math.Vec2{5, 6}, render.Red)

	if b.SolidVertexCount() != 3 {
		t.Fatalf("SolidVertexCount() = %d, want 3", b.SolidVertexCount())
	}
	v := b.SolidVertices()
	if v[0] != 1 || v[1] != 2 || v[3] != 1 || v[4] != 0 || v[6] != 1 {
		t.Errorf("first vertex = %v, want position (1, 2) colored red", v[:7])
	}
	if v[14] != 5 || v[15] != 6 {
		t.Errorf("third vertex position = (%v, %v), want (5, 6)", v[14], v[15])
	}
}

func TestBatchStrokeRect(t *testing.T) {
	b := NewBatch(100, 100, nil)
	b.StrokeRect(math.Vec2{50, 50}, math.Vec2{10, 10}, render.Green)

	// Four edges, two triangles each.
	if got := b.SolidVertexCount(); got != 24 {
		t.Fatalf("SolidVertexCount() = %d, want 24", got)
	}

	minX, minY := float32(1e9), float32(1e9)
	for i := 0; i < len(b.SolidVertices()); i += solidStride {
		v := b.SolidVertices()[i:]
		if v[0] < minX {
			minX = v[0]
		}
		if v[1] < minY {
			minY = v[1]
		}
	}
	if minX != 10 || minY != 10 {
		t.Errorf("outline starts at (%v, %v), want (10, 10)", minX, minY)
	}
}

func TestBatchDrawMesh(t *testing.T) {
	tri := mesh.NewTriangle(math.Vec2{0, 0}, math.Vec2{1, 0}, math.Vec2{0, 1}, render.White)
	m := mesh.New([]mesh.Triangle{tri}, math.Vec2{100, 100}, math.Vec2{480, 270})

	b := NewBatch(1280, 720, nil)
	m.Draw(b)

	// One triangle plus two outlines of 24 vertices each.
	if got := b.SolidVertexCount(); got != 3+24+24 {
		t.Errorf("SolidVertexCount() = %d, want 51", got)
	}

	b.Reset()
	if b.SolidVertexCount() != 0 {
		t.Error("Reset() left vertices behind")
	}
}

func TestDrawText(t *testing.T) {
	b := NewBatch(100, 100, NewFont())
	b.DrawText(0, 0, "ab\nc", 1, render.White)

	if got := b.TextVertexCount(); got != 18 {
		t.Errorf("TextVertexCount() = %d, want 18", got)
	}

	w, h := b.MeasureText("ab\nc", 2)
	gw, gh := NewFont().GlyphSize()
	if w != float32(2*gw*2) || h != float32(2*gh*2) {
		t.Errorf("MeasureText = %vx%v, want %vx%v", w, h, 2*gw*2, 2*gh*2)
	}
}

func TestFontAtlas(t *testing.T) {
	f := NewFont()
	gw, gh := f.GlyphSize()
	if gw != 7 || gh != 13 {
		t.Fatalf("GlyphSize() = %dx%d, want 7x13", gw, gh)
	}

	// 'A' is the 34th glyph: column 1, row 2.
	u0, v0, u1, v1 := f.GlyphUV('A')
	b := f.Atlas().Bounds()
	x0, y0 := int(u0*float32(b.Dx())+0.5), int(v0*float32(b.Dy())+0.5)
	x1, y1 := int(u1*float32(b.Dx())+0.5), int(v1*float32(b.Dy())+0.5)
	if x0 != 7 || y0 != 26 || x1-x0 != 7 || y1-y0 != 13 {
		t.Errorf("'A' cell = (%d,%d)-(%d,%d), want (7,26) size 7x13", x0, y0, x1, y1)
	}

	ink := 0
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if f.Atlas().AlphaAt(x, y).A > 0 {
				ink++
			}
		}
	}
	if ink == 0 {
		t.Error("'A' glyph has no ink in the atlas")
	}

	qu0, qv0, _, _ := f.GlyphUV('?')
	mu0, mv0, _, _ := f.GlyphUV('é')
	if qu0 != mu0 || qv0 != mv0 {
		t.Error("runes outside the atlas should map to '?'")
	}
}

func TestSliderValue(t *testing.T) {
	tests := []struct {
		mouseX float32
		want   float32
	}{
		{0, 10},
		{10, 10},
		{60, 15},
		{110, 20},
		{500, 20},
	}
	for _, tt := range tests {
		if got := SliderValue(tt.mouseX, 10, 100, 10, 20); got != tt.want {
			t.Errorf("SliderValue(%v) = %v, want %v", tt.mouseX, got, tt.want)
		}
	}

	if got := SliderFraction(15, 10, 20); got != 0.5 {
		t.Errorf("SliderFraction(15) = %v, want 0.5", got)
	}
	if got := SliderFraction(5, 5, 5); got != 0 {
		t.Errorf("SliderFraction on an empty range = %v, want 0", got)
	}
}

func newTestContext() *Context {
	return NewContext(NewBatch(800, 600, NewFont()))
}

func TestContextSliderDrag(t *testing.T) {
	ctx := newTestContext()
	in := ctx.Input()
	in.MouseX, in.MouseY, in.MouseLeftDown = 105, 40, true

	value := float32(0)
	ctx.Begin()
	ctx.BeginWindow("controls", 0, 0, 300, 200, "Controls")
	ctx.Row(0)
	changed := ctx.SliderFloat("rotation", "Rotation", &value, 0, 100)
	ctx.EndWindow()
	ctx.End()

	if !changed {
		t.Fatal("slider did not report a change")
	}
	if value != 50 {
		t.Errorf("value = %v, want 50", value)
	}

	// Dragging continues after the mouse leaves the track.
	in.MouseX = 1000
	ctx.Begin()
	ctx.BeginWindow("controls", 0, 0, 300, 200, "Controls")
	ctx.Row(0)
	ctx.SliderFloat("rotation", "Rotation", &value, 0, 100)
	ctx.EndWindow()
	ctx.End()

	if value != 100 {
		t.Errorf("value after drag = %v, want 100", value)
	}
}

func TestContextSliderIgnoresHover(t *testing.T) {
	ctx := newTestContext()
	in := ctx.Input()
	in.MouseX, in.MouseY = 105, 40

	value := float32(3)
	ctx.Begin()
	ctx.BeginWindow("controls", 0, 0, 300, 200, "Controls")
	ctx.Row(0)
	if ctx.SliderFloat("rotation", "Rotation", &value, 0, 100) {
		t.Error("hovering should not change the slider")
	}
	ctx.EndWindow()
	ctx.End()
}

func TestContextCheckbox(t *testing.T) {
	ctx := newTestContext()
	in := ctx.Input()
	in.MouseX, in.MouseY = 12, 40

	value := false
	frame := func() bool {
		ctx.Begin()
		ctx.BeginWindow("controls", 0, 0, 300, 200, "Controls")
		ctx.Row(0)
		changed := ctx.Checkbox("bounds", "Show bounds", &value)
		ctx.EndWindow()
		ctx.End()
		return changed
	}

	in.MouseLeftDown = true
	if frame() {
		t.Error("checkbox should toggle on release, not press")
	}
	in.MouseLeftDown = false
	if !frame() || !value {
		t.Errorf("checkbox not toggled on release: value=%v", value)
	}
}

func TestWidgetsOutsideWindow(t *testing.T) {
	ctx := newTestContext()
	v := float32(1)
	if ctx.SliderFloat("s", "S", &v, 0, 2) || ctx.Button("b", "B", 0) {
		t.Error("widgets outside a window must be inert")
	}
}

func TestOrtho(t *testing.T) {
	m := Ortho(0, 200, 100, 0, -1, 1)
	// (200, 0) maps to the top-right corner of clip space.
	x := m[0]*200 + m[12]
	y := m[5]*0 + m[13]
	if math.Abs(x-1) > 1e-6 || math.Abs(y-1) > 1e-6 {
		t.Errorf("(200, 0) -> (%v, %v), want (1, 1)", x, y)
	}
}
