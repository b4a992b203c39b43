package hud

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/architmishra-15/manimation/internal/geometry"
	"github.com/architmishra-15/manimation/internal/palette"
)

const (
	padding    = 16
	titleSize  = 22
	infoSize   = 16
	hintSize   = 14
	hintOffset = 28
)

const controlsHint = "1-0 Q TAB E R T G  modes | +/-  mass | F1-F4  fps | F5-F8  quality | B  background | V  vsync | M  mouse | H  hud | K  reset | ESC  quit"

// Draw renders the status overlay: the mode name in its accent color, a
// status line underneath, and the controls hint along the bottom edge.
// Central mass only shows for the curvature mode, the only one that reads it.
func Draw(mode geometry.Mode, mass float32, level geometry.Level, vertices int) {
	rl.DrawText(mode.String(), padding, padding, titleSize, palette.Accent(mode))

	info := fmt.Sprintf("quality %s | %d vertices", level, vertices)
	if mode == geometry.SpacetimeCurvature {
		info = fmt.Sprintf("mass %.1f | %s", mass, info)
	}
	rl.DrawText(info, padding, padding+titleSize+6, infoSize, rl.LightGray)

	hintY := int32(rl.GetScreenHeight()) - hintOffset
	rl.DrawText(controlsHint, padding, hintY, hintSize, rl.Gray)
}
