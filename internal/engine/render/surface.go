package render

import "github.com/Faultbox/rocketsim/pkg/math"

// Surface receives abstract draw commands in absolute pixel coordinates.
// Implementations exist for ImGui draw lists, the GL ui2d renderer, a
// software rasterizer and PDF export.
type Surface interface {
	// FillTriangle draws a filled triangle.
	FillTriangle(a, b, c math.Vec2, col Color)
	// StrokeRect draws the outline of the axis-aligned rectangle [min, max].
	StrokeRect(min, max math.Vec2, col Color)
}
