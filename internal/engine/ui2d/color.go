package ui2d

import "github.com/Faultbox/rocketsim/internal/engine/render"

// Widget theme.
var (
	ColorPanelBg      = render.Color{R: 0.08, G: 0.08, B: 0.12, A: 0.95}
	ColorPanelBorder  = render.Color{R: 0.3, G: 0.3, B: 0.4, A: 1}
	ColorButtonNormal = render.Color{R: 0.15, G: 0.15, B: 0.2, A: 1}
	ColorButtonHover  = render.Color{R: 0.25, G: 0.25, B: 0.35, A: 1}
	ColorButtonActive = render.Color{R: 0.1, G: 0.3, B: 0.5, A: 1}
	ColorTrack        = render.Color{R: 0.05, G: 0.05, B: 0.08, A: 1}
	ColorText         = render.Color{R: 0.9, G: 0.9, B: 0.9, A: 1}
	ColorTextDim      = render.Color{R: 0.5, G: 0.5, B: 0.6, A: 1}
	ColorHighlight    = render.Color{R: 0.2, G: 0.6, B: 0.9, A: 1}
)
