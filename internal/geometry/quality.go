package geometry

import "github.com/chewxy/math32"

// Level is the render quality setting. It only affects how densely the
// generators sample their objects.
type Level int

const (
	Low Level = iota
	Medium
	High
	Ultra
)

var levelNames = [...]string{"Low", "Medium", "High", "Ultra"}

func (l Level) String() string {
	if l < Low || l > Ultra {
		l = High
	}
	return levelNames[l]
}

// Multiplier returns the sampling density factor for the level:
// 1, 2, 4, 8 for Low through Ultra. Out-of-range levels fall back to the
// High multiplier.
func (l Level) Multiplier() int {
	switch l {
	case Low:
		return 1
	case Medium:
		return 2
	case High:
		return 4
	case Ultra:
		return 8
	default:
		return 4
	}
}

// gridSide scales a square-grid resolution by the square root of the
// multiplier, so the vertex count of grid modes grows linearly with the
// multiplier rather than quadratically.
func gridSide(base, mult int) int {
	return int(float32(base) * math32.Sqrt(float32(mult)))
}
