package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh the overlay text every N frames to
	// reduce allocations.
	updateInterval = 30
)

// Debug holds runtime debugging overlays (FPS, heap use). All overlays are
// off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool

	frameCount  uint32
	lastFpsText string
	lastMemText string
	memStats    runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// Draw renders any enabled overlays at the top-right in green. Call last in
// the draw loop so they sit above the HUD. Text is only recomputed every
// updateInterval frames.
func (d *Debug) Draw() {
	d.frameCount++
	update := (d.frameCount % updateInterval) == 0
	if d.ShowFPS && d.lastFpsText == "" {
		update = true
	}
	if d.ShowMemAlloc && d.lastMemText == "" {
		update = true
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)

	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		drawRight(d.lastFpsText, screenW, y)
		y += lineHeight
	}

	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.memStats)
			mb := float64(d.memStats.Alloc) / (1024 * 1024)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
		drawRight(d.lastMemText, screenW, y)
	}
}

func drawRight(text string, screenW, y int32) {
	if text == "" {
		return
	}
	w := rl.MeasureText(text, fontSize)
	rl.DrawText(text, screenW-w-padding, y, fontSize, rl.Green)
}
