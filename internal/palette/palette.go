package palette

import (
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/architmishra-15/manimation/internal/geometry"
)

// Path is the optional palette override file: a YAML list of backgrounds,
// one r/g/b entry per item.
const Path = "assets/palette.yaml"

// Background is one clear color, channels in [0, 1].
type Background struct {
	R float32 `yaml:"r"`
	G float32 `yaml:"g"`
	B float32 `yaml:"b"`
}

// defaults are the built-in dark backgrounds, cycled with the B key.
var defaults = []Background{
	{0.05, 0.05, 0.2},  // deep blue
	{0, 0, 0},          // black
	{0.15, 0.05, 0.2},  // dark purple
	{0.05, 0.2, 0.05},  // dark green
	{0.1, 0.1, 0.15},   // gray-blue
	{0.05, 0.1, 0.1},   // dark teal
	{0.15, 0.05, 0.05}, // dark red
}

// Load returns the backgrounds from assets/palette.yaml when present and
// valid, otherwise the built-in list. A broken palette file is not an
// error; the app just keeps its defaults.
func Load() []Background {
	data, err := os.ReadFile(Path)
	if err != nil {
		return defaults
	}
	return parse(data)
}

func parse(data []byte) []Background {
	var list []Background
	if err := yaml.Unmarshal(data, &list); err != nil || len(list) == 0 {
		return defaults
	}
	return list
}

// Color converts the background to a raylib clear color.
func (b Background) Color() rl.Color {
	return rl.NewColor(to255(b.R), to255(b.G), to255(b.B), 255)
}

func to255(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}

// Accent returns the HUD highlight color for a mode: sixteen evenly spaced
// hues, desaturated enough to read against the dark backgrounds.
func Accent(mode geometry.Mode) rl.Color {
	h := float64(mode) / float64(geometry.ModeCount) * 360
	c := colorful.Hsv(h, 0.55, 0.95)
	r, g, b := c.RGB255()
	return rl.NewColor(r, g, b, 255)
}
