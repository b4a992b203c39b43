package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/architmishra-15/manimation/internal/camera"
	"github.com/architmishra-15/manimation/internal/debug"
	"github.com/architmishra-15/manimation/internal/geometry"
	"github.com/architmishra-15/manimation/internal/hud"
	"github.com/architmishra-15/manimation/internal/logger"
	"github.com/architmishra-15/manimation/internal/palette"
	"github.com/architmishra-15/manimation/internal/prefs"
	"github.com/architmishra-15/manimation/internal/render"
)

const (
	windowWidth  = 1200
	windowHeight = 900
	windowTitle  = "Mathematical Functions Animation"
)

// App owns all per-run state: the mode selector, camera, clock, backgrounds,
// and overlay toggles. Everything is explicit and passed by pointer; nothing
// lives in package globals.
type App struct {
	selector *geometry.Selector
	camera   *camera.Camera
	clock    Clock
	log      *logger.Logger
	debug    *debug.Debug

	quality     geometry.Level
	targetFPS   int
	backgrounds []palette.Background
	background  int
	showHUD     bool
	mouseFree   bool
	vsync       bool
}

// New builds the application from saved preferences.
func New(p prefs.Prefs, log *logger.Logger) *App {
	sel := geometry.NewSelector(log)
	sel.WellGrid = p.WellGrid

	d := debug.New()
	d.ShowFPS = p.ShowFPS
	d.ShowMemAlloc = p.ShowMemAlloc

	a := &App{
		selector:    sel,
		camera:      camera.New(),
		log:         log,
		debug:       d,
		quality:     geometry.Level(p.Quality),
		targetFPS:   p.TargetFPS,
		backgrounds: palette.Load(),
		background:  p.Background,
		showHUD:     p.ShowHUD,
	}
	if a.background < 0 || a.background >= len(a.backgrounds) {
		a.background = 0
	}
	if a.targetFPS <= 0 {
		a.targetFPS = 60
	}
	return a
}

// Run opens the window and drives the frame loop until the window closes.
// Each frame, strictly in order: clock tick, input and camera movement,
// geometry generation, submission. The stream lives only for its frame.
// Preferences are saved on the way out.
func (a *App) Run() {
	rl.InitWindow(windowWidth, windowHeight, windowTitle)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(a.targetFPS))
	a.setVSync(a.targetFPS == 60)
	rl.DisableCursor()

	a.log.Logf("quality %s, target %d FPS", a.quality, a.targetFPS)
	defer func() {
		if err := prefs.Save(a.snapshot()); err != nil {
			a.log.Logf("saving preferences: %v", err)
		}
	}()

	for !rl.WindowShouldClose() {
		t, elapsed := a.clock.Tick(rl.GetTime())
		a.handleInput(elapsed)

		stream, topo := a.selector.Generate(t, a.quality)

		rl.BeginDrawing()
		rl.ClearBackground(a.backgrounds[a.background].Color())
		render.Draw(a.camera.Raylib(), stream, topo, t)
		if a.showHUD {
			hud.Draw(a.selector.Mode(), a.selector.Mass(), a.quality, stream.Count())
		}
		a.debug.Draw()
		rl.EndDrawing()
	}
}

func (a *App) snapshot() prefs.Prefs {
	return prefs.Prefs{
		Quality:      int(a.quality),
		TargetFPS:    a.targetFPS,
		Background:   a.background,
		ShowHUD:      a.showHUD,
		ShowFPS:      a.debug.ShowFPS,
		ShowMemAlloc: a.debug.ShowMemAlloc,
		WellGrid:     a.selector.WellGrid,
	}
}

// modeKeys is the original key layout: the number row selects the first ten
// modes, then Q, TAB, E, R, T, G. TAB stands in for W, which movement owns.
var modeKeys = [...]struct {
	key  int32
	mode geometry.Mode
}{
	{rl.KeyOne, geometry.ParametricSpiral},
	{rl.KeyTwo, geometry.Lissajous},
	{rl.KeyThree, geometry.Helix},
	{rl.KeyFour, geometry.SineWaveSurface},
	{rl.KeyFive, geometry.Torus},
	{rl.KeySix, geometry.Hypotrochoid},
	{rl.KeySeven, geometry.Superformula},
	{rl.KeyEight, geometry.LorenzAttractor},
	{rl.KeyNine, geometry.KleinBottle},
	{rl.KeyZero, geometry.Gyroid},
	{rl.KeyQ, geometry.SphericalHarmonic},
	{rl.KeyTab, geometry.FractalZoom},
	{rl.KeyE, geometry.Phyllotaxis},
	{rl.KeyR, geometry.Tesseract},
	{rl.KeyT, geometry.WaveInterference},
	{rl.KeyG, geometry.SpacetimeCurvature},
}

func (a *App) handleInput(elapsed float32) {
	for _, mk := range modeKeys {
		if rl.IsKeyPressed(mk.key) {
			a.selector.SetMode(mk.mode)
		}
	}

	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		a.selector.IncreaseMass()
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		a.selector.DecreaseMass()
	}
	if rl.IsKeyPressed(rl.KeyK) {
		a.camera.Reset()
		a.selector.ResetMass()
	}

	if rl.IsKeyPressed(rl.KeyF1) {
		a.setTargetFPS(30)
	}
	if rl.IsKeyPressed(rl.KeyF2) {
		a.setTargetFPS(60)
	}
	if rl.IsKeyPressed(rl.KeyF3) {
		a.setTargetFPS(120)
	}
	if rl.IsKeyPressed(rl.KeyF4) {
		a.setTargetFPS(144)
	}

	if rl.IsKeyPressed(rl.KeyF5) {
		a.setQuality(geometry.Low)
	}
	if rl.IsKeyPressed(rl.KeyF6) {
		a.setQuality(geometry.Medium)
	}
	if rl.IsKeyPressed(rl.KeyF7) {
		a.setQuality(geometry.High)
	}
	if rl.IsKeyPressed(rl.KeyF8) {
		a.setQuality(geometry.Ultra)
	}

	if rl.IsKeyPressed(rl.KeyB) {
		a.background = (a.background + 1) % len(a.backgrounds)
	}
	if rl.IsKeyPressed(rl.KeyV) {
		a.setVSync(!a.vsync)
	}
	if rl.IsKeyPressed(rl.KeyM) {
		a.toggleMouse()
	}
	if rl.IsKeyPressed(rl.KeyH) {
		a.showHUD = !a.showHUD
	}

	a.moveCamera(elapsed)
}

func (a *App) moveCamera(elapsed float32) {
	cam := a.camera
	if rl.IsKeyDown(rl.KeyW) {
		cam.Move(cam.Front, elapsed)
	}
	if rl.IsKeyDown(rl.KeyS) {
		cam.Move(rl.Vector3Negate(cam.Front), elapsed)
	}
	if rl.IsKeyDown(rl.KeyA) {
		cam.Move(rl.Vector3Negate(cam.Right), elapsed)
	}
	if rl.IsKeyDown(rl.KeyD) {
		cam.Move(cam.Right, elapsed)
	}
	if rl.IsKeyDown(rl.KeySpace) {
		cam.Move(cam.Up, elapsed)
	}
	if rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyC) {
		cam.Move(rl.Vector3Negate(cam.Up), elapsed)
	}

	if !a.mouseFree {
		d := rl.GetMouseDelta()
		if d.X != 0 || d.Y != 0 {
			// Raylib's +Y is down-screen; looking up means a negative delta.
			cam.Look(d.X, -d.Y)
		}
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		speed := cam.AdjustSpeed(wheel * 0.5)
		a.log.Logf("Camera speed: %.1f", speed)
	}
}

func (a *App) setTargetFPS(fps int) {
	a.targetFPS = fps
	rl.SetTargetFPS(int32(fps))
	a.setVSync(fps == 60)
	a.log.Logf("Target FPS set to: %d", fps)
}

func (a *App) setQuality(l geometry.Level) {
	a.quality = l
	a.log.Logf("Quality set to: %s", l)
}

func (a *App) setVSync(on bool) {
	a.vsync = on
	if on {
		rl.SetWindowState(rl.FlagVsyncHint)
	} else {
		rl.ClearWindowState(rl.FlagVsyncHint)
	}
}

func (a *App) toggleMouse() {
	a.mouseFree = !a.mouseFree
	if a.mouseFree {
		rl.EnableCursor()
		a.log.Log("Mouse cursor enabled (camera control disabled)")
	} else {
		rl.DisableCursor()
		a.log.Log("Mouse cursor disabled (camera control enabled)")
	}
}
