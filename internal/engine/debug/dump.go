package debug

import (
	"go.uber.org/zap"

	"github.com/Faultbox/rocketsim/internal/engine/render"
	"github.com/Faultbox/rocketsim/pkg/math"
)

// DumpCommands logs every recorded draw command at debug level.
func DumpCommands(log *zap.Logger, rec *render.Recorder) {
	cmds := rec.Commands()
	if len(cmds) == 0 {
		log.Debug("frame is empty")
		return
	}

	min, max := Bounds(cmds)
	log.Debug("frame",
		zap.Int("commands", len(cmds)),
		zap.Int("triangles", len(rec.Filter(render.CmdFillTriangle))),
		zap.Stringer("min", min),
		zap.Stringer("max", max),
		zap.Float32("diagonal", min.Distance(max)))

	for i, cmd := range cmds {
		fields := []zap.Field{
			zap.Int("index", i),
			zap.Stringer("kind", cmd.Kind),
			zap.Stringer("color", cmd.Color),
			zap.Stringer("a", cmd.Points[0]),
			zap.Stringer("b", cmd.Points[1]),
		}
		if cmd.Kind == render.CmdFillTriangle {
			fields = append(fields, zap.Stringer("c", cmd.Points[2]))
		}
		log.Debug("draw", fields...)
	}
}

// Bounds returns the axis-aligned box covering every point the commands use.
func Bounds(cmds []render.Command) (min, max math.Vec2) {
	first := true
	for _, cmd := range cmds {
		n := 3
		if cmd.Kind == render.CmdStrokeRect {
			n = 2
		}
		for _, p := range cmd.Points[:n] {
			if first {
				min, max = p, p
				first = false
				continue
			}
			min.X, min.Y = min32(min.X, p.X), min32(min.Y, p.Y)
			max.X, max.Y = max32(max.X, p.X), max32(max.Y, p.Y)
		}
	}
	return min, max
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
