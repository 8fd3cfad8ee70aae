package ui

import (
	"testing"

	"github.com/Faultbox/rocketsim/internal/engine/render"
)

func TestPackColor(t *testing.T) {
	tests := []struct {
		name string
		in   render.Color
		want uint32
	}{
		{"red", render.Red, 0xFF0000FF},
		{"green", render.Green, 0xFF00FF00},
		{"white", render.White, 0xFFFFFFFF},
		{"translucent blue", render.FromRGBA32(0x0000FF80), 0x80FF0000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PackColor(tt.in); got != tt.want {
				t.Errorf("PackColor() = %#08x, want %#08x", got, tt.want)
			}
		})
	}
}
