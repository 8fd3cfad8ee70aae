package ui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/rocketsim/internal/engine/render"
	"github.com/Faultbox/rocketsim/pkg/math"
)

// OutlineThickness is the StrokeRect line width in pixels.
const OutlineThickness = 1

// DrawList is a render.Surface that appends to an ImGui draw list.
type DrawList struct {
	list *imgui.DrawList
}

// NewDrawList wraps list, typically imgui.WindowDrawList() or
// imgui.BackgroundDrawList().
func NewDrawList(list *imgui.DrawList) *DrawList {
	return &DrawList{list: list}
}

// FillTriangle adds a filled triangle.
func (d *DrawList) FillTriangle(a, b, c math.Vec2, col render.Color) {
	d.list.AddTriangleFilled(vec(a), vec(b), vec(c), PackColor(col))
}

// StrokeRect adds a rectangle outline.
func (d *DrawList) StrokeRect(min, max math.Vec2, col render.Color) {
	d.list.AddRectV(vec(min), vec(max), PackColor(col), 0, imgui.DrawFlagsNone, OutlineThickness)
}

// PackColor converts col to ImGui's packed 0xAABBGGRR layout.
func PackColor(col render.Color) uint32 {
	c := col.NRGBA()
	return uint32(c.A)<<24 | uint32(c.B)<<16 | uint32(c.G)<<8 | uint32(c.R)
}

func vec(v math.Vec2) imgui.Vec2 {
	return imgui.NewVec2(v.X, v.Y)
}
