package camera

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	defaultYaw   = -90
	defaultPitch = 0
	pitchLimit   = 89
	minSpeed     = 0.5
	maxSpeed     = 10
)

var (
	startPosition = rl.NewVector3(0, 0, 5)
	worldUp       = rl.NewVector3(0, 1, 0)
)

// Camera is a first-person free-look camera. Orientation is held as yaw and
// pitch in degrees; Front/Right/Up are derived from them and kept
// normalized. Movement is integrated along those basis vectors by the
// caller each frame.
type Camera struct {
	Position rl.Vector3
	Front    rl.Vector3
	Up       rl.Vector3
	Right    rl.Vector3

	Yaw         float32
	Pitch       float32
	Sensitivity float32
	Speed       float32
}

// New returns a camera at (0, 0, 5) looking down -Z.
func New() *Camera {
	c := &Camera{
		Position:    startPosition,
		Yaw:         defaultYaw,
		Pitch:       defaultPitch,
		Sensitivity: 0.1,
		Speed:       2.5,
	}
	c.updateVectors()
	return c
}

// Reset moves the camera back to its starting pose without touching speed
// or sensitivity.
func (c *Camera) Reset() {
	c.Position = startPosition
	c.Yaw, c.Pitch = defaultYaw, defaultPitch
	c.updateVectors()
}

func radians(deg float32) float32 { return deg * math32.Pi / 180 }

func (c *Camera) updateVectors() {
	front := rl.NewVector3(
		math32.Cos(radians(c.Yaw))*math32.Cos(radians(c.Pitch)),
		math32.Sin(radians(c.Pitch)),
		math32.Sin(radians(c.Yaw))*math32.Cos(radians(c.Pitch)),
	)
	c.Front = rl.Vector3Normalize(front)
	c.Right = rl.Vector3Normalize(rl.Vector3CrossProduct(c.Front, worldUp))
	c.Up = rl.Vector3Normalize(rl.Vector3CrossProduct(c.Right, c.Front))
}

// Look applies a mouse delta, in pixels with +dy meaning look up. Pitch is
// clamped to ±89° so the basis never flips over the pole.
func (c *Camera) Look(dx, dy float32) {
	c.Yaw += dx * c.Sensitivity
	c.Pitch += dy * c.Sensitivity
	if c.Pitch > pitchLimit {
		c.Pitch = pitchLimit
	}
	if c.Pitch < -pitchLimit {
		c.Pitch = -pitchLimit
	}
	c.updateVectors()
}

// Move offsets the position along dir (normally one of the camera's own
// basis vectors) by speed*elapsed.
func (c *Camera) Move(dir rl.Vector3, elapsed float32) {
	c.Position = rl.Vector3Add(c.Position, rl.Vector3Scale(dir, c.Speed*elapsed))
}

// AdjustSpeed changes the movement speed by delta, clamped to [0.5, 10],
// and returns the new value.
func (c *Camera) AdjustSpeed(delta float32) float32 {
	c.Speed += delta
	if c.Speed < minSpeed {
		c.Speed = minSpeed
	}
	if c.Speed > maxSpeed {
		c.Speed = maxSpeed
	}
	return c.Speed
}

// Raylib converts to raylib's perspective camera (fovy 45°), targeting one
// unit ahead along Front.
func (c *Camera) Raylib() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position,
		Target:     rl.Vector3Add(c.Position, c.Front),
		Up:         c.Up,
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
}
