package render

import "github.com/Faultbox/rocketsim/pkg/math"

// CommandKind identifies a recorded draw call.
type CommandKind int

const (
	CmdFillTriangle CommandKind = iota
	CmdStrokeRect
)

func (k CommandKind) String() string {
	switch k {
	case CmdFillTriangle:
		return "fill_triangle"
	case CmdStrokeRect:
		return "stroke_rect"
	default:
		return "unknown"
	}
}

// Command is one recorded draw call. Triangles use all three points,
// rectangles use Points[0] (min) and Points[1] (max).
type Command struct {
	Kind   CommandKind
	Points [3]math.Vec2
	Color  Color
}

// Recorder is a Surface that keeps every draw call in order.
type Recorder struct {
	commands []Command
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{commands: make([]Command, 0, 16)}
}

// FillTriangle records a filled triangle.
func (r *Recorder) FillTriangle(a, b, c math.Vec2, col Color) {
	r.commands = append(r.commands, Command{
		Kind:   CmdFillTriangle,
		Points: [3]math.Vec2{a, b, c},
		Color:  col,
	})
}

// StrokeRect records a rectangle outline.
func (r *Recorder) StrokeRect(min, max math.Vec2, col Color) {
	r.commands = append(r.commands, Command{
		Kind:   CmdStrokeRect,
		Points: [3]math.Vec2{min, max},
		Color:  col,
	})
}

// Commands returns the recorded commands.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Filter returns the recorded commands of one kind, in order.
func (r *Recorder) Filter(kind CommandKind) []Command {
	var out []Command
	for _, c := range r.commands {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// Reset drops all recorded commands.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
}

// Replay sends the recorded commands to another surface.
func (r *Recorder) Replay(s Surface) {
	for _, c := range r.commands {
		switch c.Kind {
		case CmdFillTriangle:
			s.FillTriangle(c.Points[0], c.Points[1], c.Points[2], c.Color)
		case CmdStrokeRect:
			s.StrokeRect(c.Points[0], c.Points[1], c.Color)
		}
	}
}
