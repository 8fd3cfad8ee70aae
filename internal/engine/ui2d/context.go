package ui2d

import (
	"fmt"

	"github.com/Faultbox/rocketsim/internal/engine/render"
)

const (
	textScale   = 1
	titleBarH   = 22
	padding     = 8
	spacing     = 4
	defaultRowH = 20
	labelWidth  = 90
	checkSize   = 14
	grabWidth   = 8
)

// Context lays out and draws immediate-mode widgets into a Batch.
type Context struct {
	batch *Batch
	input *InputState

	activeWidget string

	windows       map[string]*WindowState
	currentWindow *WindowState

	cursorX float32
	cursorY float32
	rowH    float32
}

// WindowState holds state for a UI window.
type WindowState struct {
	ID     string
	X, Y   float32
	W, H   float32
	Open   bool
	Moving bool
}

// NewContext creates a widget context drawing into b.
func NewContext(b *Batch) *Context {
	return &Context{
		batch:   b,
		input:   &InputState{},
		windows: make(map[string]*WindowState),
	}
}

// Input returns the input state for modification.
func (c *Context) Input() *InputState {
	return c.input
}

// Begin starts a new UI frame.
func (c *Context) Begin() {
	c.input.Update()
}

// End finishes the UI frame.
func (c *Context) End() {
	if c.input.MouseLeftReleased {
		c.activeWidget = ""
	}
	c.input.EndFrame()
}

// BeginWindow starts a window. It returns false if the window is closed.
// The title bar can be dragged to move the window.
func (c *Context) BeginWindow(id string, x, y, w, h float32, title string) bool {
	ws, ok := c.windows[id]
	if !ok {
		ws = &WindowState{ID: id, X: x, Y: y, W: w, H: h, Open: true}
		c.windows[id] = ws
	}
	if !ws.Open {
		return false
	}
	c.currentWindow = ws

	dragID := id + "_titlebar"
	if c.input.MouseLeftPressed && c.input.IsMouseInRect(ws.X, ws.Y, ws.W, titleBarH) {
		ws.Moving = true
		c.activeWidget = dragID
	}
	if ws.Moving && c.input.MouseLeftDown {
		ws.X += c.input.MouseDeltaX
		ws.Y += c.input.MouseDeltaY
	}
	if c.input.MouseLeftReleased {
		ws.Moving = false
	}

	c.batch.DrawPanel(ws.X, ws.Y, ws.W, ws.H, ColorPanelBg, ColorPanelBorder)
	c.batch.DrawRect(ws.X+1, ws.Y+1, ws.W-2, titleBarH-1, ColorButtonNormal)
	_, th := c.batch.MeasureText(title, textScale)
	c.batch.DrawText(ws.X+padding, ws.Y+(titleBarH-th)/2, title, textScale, ColorText)

	c.cursorX = ws.X + padding
	c.cursorY = ws.Y + titleBarH + padding
	c.rowH = 0
	return true
}

// EndWindow ends the current window.
func (c *Context) EndWindow() {
	c.currentWindow = nil
}

// Window returns the state of a window created by BeginWindow.
func (c *Context) Window(id string) (*WindowState, bool) {
	ws, ok := c.windows[id]
	return ws, ok
}

// Row starts a new row of the given height.
func (c *Context) Row(height float32) {
	if c.currentWindow == nil {
		return
	}
	if height == 0 {
		height = defaultRowH
	}
	c.cursorX = c.currentWindow.X + padding
	c.cursorY += c.rowH + spacing
	c.rowH = height
}

// Label draws text on the current row.
func (c *Context) Label(text string) {
	c.LabelColored(text, ColorText)
}

// LabelColored draws text in a specific color.
func (c *Context) LabelColored(text string, col render.Color) {
	if c.currentWindow == nil {
		return
	}
	w, h := c.batch.MeasureText(text, textScale)
	c.batch.DrawText(c.cursorX, c.cursorY+(c.rowHeight()-h)/2, text, textScale, col)
	c.cursorX += w + spacing
}

// Button draws a button and reports whether it was pressed this frame.
// width 0 fills the rest of the row.
func (c *Context) Button(id, label string, width float32) bool {
	if c.currentWindow == nil {
		return false
	}

	x, y, h := c.cursorX, c.cursorY, c.rowHeight()
	if width == 0 {
		width = c.remaining()
	}
	fullID := c.widgetID(id)
	hovered := c.input.IsMouseInRect(x, y, width, h)

	clicked := false
	if hovered && c.input.MouseLeftPressed {
		c.activeWidget = fullID
		clicked = true
	}

	bg := ColorButtonNormal
	switch {
	case c.activeWidget == fullID:
		bg = ColorButtonActive
	case hovered:
		bg = ColorButtonHover
	}
	c.batch.DrawRect(x, y, width, h, bg)
	c.batch.DrawRectOutline(x, y, width, h, 1, ColorPanelBorder)

	tw, th := c.batch.MeasureText(label, textScale)
	c.batch.DrawText(x+(width-tw)/2, y+(h-th)/2, label, textScale, ColorText)

	c.cursorX += width + spacing
	return clicked
}

// Checkbox toggles *value on click and reports whether it changed.
func (c *Context) Checkbox(id, label string, value *bool) bool {
	if c.currentWindow == nil {
		return false
	}

	x := c.cursorX
	y := c.cursorY + (c.rowHeight()-checkSize)/2
	fullID := c.widgetID(id)
	hovered := c.input.IsMouseInRect(x, y, checkSize, checkSize)

	if hovered && c.input.MouseLeftPressed {
		c.activeWidget = fullID
	}

	changed := false
	if c.activeWidget == fullID && c.input.MouseLeftReleased {
		if hovered {
			*value = !*value
			changed = true
		}
		c.activeWidget = ""
	}

	bg := ColorTrack
	if hovered {
		bg = ColorButtonHover
	}
	c.batch.DrawRect(x, y, checkSize, checkSize, bg)
	c.batch.DrawRectOutline(x, y, checkSize, checkSize, 1, ColorPanelBorder)
	if *value {
		const inset = 3
		c.batch.DrawRect(x+inset, y+inset, checkSize-inset*2, checkSize-inset*2, ColorHighlight)
	}

	c.cursorX += checkSize + spacing
	c.Label(label)
	return changed
}

// SliderFloat draws a horizontal slider for *value in [min, max] followed by
// label, and reports whether the value changed.
func (c *Context) SliderFloat(id, label string, value *float32, min, max float32) bool {
	if c.currentWindow == nil {
		return false
	}
	w := c.remaining() - labelWidth
	changed := c.slider(c.widgetID(id), value, min, max, w)
	c.Label(label)
	return changed
}

// SliderFloat2 draws two sliders side by side sharing one label.
func (c *Context) SliderFloat2(id, label string, value *[2]float32, min, max float32) bool {
	if c.currentWindow == nil {
		return false
	}
	w := (c.remaining() - labelWidth - spacing) / 2
	changed := c.slider(c.widgetID(id+"_x"), &value[0], min, max, w)
	if c.slider(c.widgetID(id+"_y"), &value[1], min, max, w) {
		changed = true
	}
	c.Label(label)
	return changed
}

func (c *Context) slider(fullID string, value *float32, min, max, width float32) bool {
	x, y, h := c.cursorX, c.cursorY, c.rowHeight()
	hovered := c.input.IsMouseInRect(x, y, width, h)

	if hovered && c.input.MouseLeftPressed {
		c.activeWidget = fullID
	}

	changed := false
	if c.activeWidget == fullID && c.input.MouseLeftDown {
		v := SliderValue(c.input.MouseX, x+grabWidth/2, width-grabWidth, min, max)
		if v != *value {
			*value = v
			changed = true
		}
	}

	bg := ColorTrack
	if hovered || c.activeWidget == fullID {
		bg = ColorButtonNormal
	}
	c.batch.DrawRect(x, y, width, h, bg)
	c.batch.DrawRectOutline(x, y, width, h, 1, ColorPanelBorder)

	gx := x + SliderFraction(*value, min, max)*(width-grabWidth)
	grab := ColorButtonHover
	if c.activeWidget == fullID {
		grab = ColorHighlight
	}
	c.batch.DrawRect(gx, y+1, grabWidth, h-2, grab)

	text := fmt.Sprintf("%.3f", *value)
	tw, th := c.batch.MeasureText(text, textScale)
	c.batch.DrawText(x+(width-tw)/2, y+(h-th)/2, text, textScale, ColorText)

	c.cursorX += width + spacing
	return changed
}

// Separator draws a horizontal line and moves to a fresh row.
func (c *Context) Separator() {
	if c.currentWindow == nil {
		return
	}
	c.cursorY += c.rowH + spacing
	c.rowH = 0
	x := c.currentWindow.X + padding
	c.batch.DrawRect(x, c.cursorY, c.currentWindow.W-padding*2, 1, ColorPanelBorder)
	c.cursorY += spacing
	c.cursorX = x
}

// Spacer adds vertical space.
func (c *Context) Spacer(height float32) {
	c.cursorY += height
}

// ScreenSize returns the screen dimensions.
func (c *Context) ScreenSize() (float32, float32) {
	w, h := c.batch.ScreenSize()
	return float32(w), float32(h)
}

func (c *Context) widgetID(id string) string {
	return c.currentWindow.ID + "_" + id
}

func (c *Context) rowHeight() float32 {
	if c.rowH == 0 {
		return defaultRowH
	}
	return c.rowH
}

func (c *Context) remaining() float32 {
	return c.currentWindow.X + c.currentWindow.W - padding - c.cursorX
}

// SliderValue maps a mouse x position over a track starting at x with the
// given width onto [min, max], clamped.
func SliderValue(mouseX, x, width, min, max float32) float32 {
	if width <= 0 {
		return min
	}
	t := (mouseX - x) / width
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return min + t*(max-min)
}

// SliderFraction is the inverse of SliderValue: the position of v within
// [min, max] in [0, 1].
func SliderFraction(v, min, max float32) float32 {
	if max == min {
		return 0
	}
	t := (v - min) / (max - min)
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
