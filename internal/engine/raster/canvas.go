// Package raster draws frames in software with gogpu/gg.
package raster

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"

	"github.com/Faultbox/rocketsim/internal/engine/render"
	"github.com/Faultbox/rocketsim/pkg/math"
)

// OutlineWidth is the stroke width of rectangle outlines, in pixels.
const OutlineWidth = 1.0

// Canvas is a render.Surface backed by a gg software context.
type Canvas struct {
	dc  *gg.Context
	err error
}

// NewCanvas creates a canvas of the given pixel size.
func NewCanvas(width, height int) *Canvas {
	dc := gg.NewContext(width, height)
	dc.SetLineWidth(OutlineWidth)
	return &Canvas{dc: dc}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.dc.Width() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.dc.Height() }

// Clear fills the canvas with col.
func (c *Canvas) Clear(col render.Color) {
	c.dc.ClearWithColor(toRGBA(col))
}

// FillTriangle fills the triangle abc.
func (c *Canvas) FillTriangle(a, b, p math.Vec2, col render.Color) {
	c.setColor(col)
	c.dc.MoveTo(float64(a.X), float64(a.Y))
	c.dc.LineTo(float64(b.X), float64(b.Y))
	c.dc.LineTo(float64(p.X), float64(p.Y))
	c.dc.ClosePath()
	c.keep(c.dc.Fill())
}

// StrokeRect outlines the axis-aligned rectangle [min, max].
func (c *Canvas) StrokeRect(min, max math.Vec2, col render.Color) {
	c.setColor(col)
	size := max.Sub(min)
	c.dc.DrawRectangle(float64(min.X), float64(min.Y), float64(size.X), float64(size.Y))
	c.keep(c.dc.Stroke())
}

// Err returns the first rendering error, if any.
func (c *Canvas) Err() error {
	return c.err
}

// Image returns the rendered frame.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// SavePNG writes the frame to path.
func (c *Canvas) SavePNG(path string) error {
	if c.err != nil {
		return fmt.Errorf("rendering frame: %w", c.err)
	}
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

// Close releases the gg context.
func (c *Canvas) Close() error {
	return c.dc.Close()
}

func (c *Canvas) setColor(col render.Color) {
	c.dc.SetRGBA(float64(col.R), float64(col.G), float64(col.B), float64(col.A))
}

func (c *Canvas) keep(err error) {
	if err != nil && c.err == nil {
		c.err = err
	}
}

func toRGBA(col render.Color) gg.RGBA {
	return gg.RGBA{R: float64(col.R), G: float64(col.G), B: float64(col.B), A: float64(col.A)}
}
