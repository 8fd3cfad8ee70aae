package render

import (
	"testing"

	"github.com/Faultbox/rocketsim/pkg/math"
)

func TestFromRGBA32(t *testing.T) {
	tests := []struct {
		packed uint32
		want   Color
	}{
		{0xFFFFFFFF, White},
		{0xFF0000FF, Red},
		{0x00FF00FF, Green},
		{0x000000FF, Black},
		{0x00000000, Color{}},
	}

	for _, tt := range tests {
		got := FromRGBA32(tt.packed)
		if got != tt.want {
			t.Errorf("FromRGBA32(0x%08X) = %v, want %v", tt.packed, got, tt.want)
		}
		if back := got.RGBA32(); back != tt.packed {
			t.Errorf("RGBA32() = 0x%08X, want 0x%08X", back, tt.packed)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    uint32
		wantErr bool
	}{
		{"0xFF0000FF", 0xFF0000FF, false},
		{"#00FF00", 0x00FF00FF, false},
		{"12345678", 0x12345678, false},
		{"0xABC", 0, true},
		{"zzzzzzzz", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseColor(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.RGBA32() != tt.want {
				t.Errorf("ParseColor(%q) = %v, want 0x%08X", tt.in, c, tt.want)
			}
		})
	}
}

func TestNRGBAClamps(t *testing.T) {
	c := Color{R: 2, G: -1, B: 0.5, A: 1}.NRGBA()
	if c.R != 255 || c.G != 0 || c.B != 128 || c.A != 255 {
		t.Errorf("NRGBA() = %+v", c)
	}
}

func TestRecorderReplay(t *testing.T) {
	src := NewRecorder()
	src.FillTriangle(math.Vec2{0, 0}, math.Vec2{1, 0}, math.Vec2{0, 1}, White)
	src.StrokeRect(math.Vec2{0, 0}, math.Vec2{10, 10}, Red)

	dst := NewRecorder()
	src.Replay(dst)

	if len(dst.Commands()) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(dst.Commands()))
	}
	if got := dst.Filter(CmdStrokeRect); len(got) != 1 || got[0].Points[1] != (math.Vec2{10, 10}) {
		t.Errorf("unexpected rect commands: %+v", got)
	}

	src.Reset()
	if len(src.Commands()) != 0 {
		t.Error("Reset() did not clear commands")
	}
}
