// Package ui wraps the Dear ImGui SDL backend and adapts ImGui draw lists
// to render.Surface.
package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/rocketsim/internal/engine/render"
	"github.com/Faultbox/rocketsim/internal/logger"
)

// Backend owns the SDL window and the ImGui context.
type Backend struct {
	backend backend.Backend[sdlbackend.SDLWindowFlags]
	glReady bool
}

// NewBackend creates the window and ImGui context. bg is the clear color.
func NewBackend(title string, width, height int, bg render.Color) (*Backend, error) {
	b := &Backend{}

	var err error
	b.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}

	b.backend.SetAfterCreateContextHook(func() {
		logger.Core().Debug("imgui context created")
	})
	b.backend.SetBgColor(imgui.NewVec4(bg.R, bg.G, bg.B, bg.A))
	b.backend.CreateWindow(title, width, height)

	// Function pointers are only needed for framebuffer reads.
	if err := gl.Init(); err != nil {
		logger.Core().Warn("opengl init failed, screenshots disabled")
	} else {
		b.glReady = true
	}

	return b, nil
}

// Run starts the render loop and blocks until the window closes.
func (b *Backend) Run(frame func()) {
	b.backend.Run(frame)
}

// SetTargetFPS caps the frame rate.
func (b *Backend) SetTargetFPS(fps uint) {
	b.backend.SetTargetFPS(fps)
}

// Close asks the render loop to stop after the current frame.
func (b *Backend) Close() {
	b.backend.SetShouldClose(true)
}

// SetWindowTitle updates the window title.
func (b *Backend) SetWindowTitle(title string) {
	b.backend.SetWindowTitle(title)
}

// Viewport returns the main viewport work area.
func Viewport() (posX, posY, width, height float32) {
	viewport := imgui.MainViewport()
	workPos := viewport.WorkPos()
	workSize := viewport.WorkSize()
	return workPos.X, workPos.Y, workSize.X, workSize.Y
}

// ReadFramebuffer reads the displayed frame as bottom-up RGBA rows. It
// must be called at the start of a frame, before anything is drawn.
func (b *Backend) ReadFramebuffer() ([]byte, int, int, error) {
	if !b.glReady {
		return nil, 0, 0, fmt.Errorf("opengl not initialized")
	}

	io := imgui.CurrentIO()
	size := io.DisplaySize()
	scale := io.DisplayFramebufferScale()
	width := int(size.X * scale.X)
	height := int(size.Y * scale.Y)
	if width <= 0 || height <= 0 {
		return nil, 0, 0, fmt.Errorf("invalid framebuffer size %dx%d", width, height)
	}

	pixels := make([]byte, width*height*4)
	gl.ReadBuffer(gl.FRONT)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	gl.ReadBuffer(gl.BACK)
	return pixels, width, height, nil
}

// IsKeyPressed checks if a key was pressed this frame.
func IsKeyPressed(key imgui.Key) bool {
	return imgui.IsKeyChordPressed(imgui.KeyChord(key))
}
