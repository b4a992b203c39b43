package camera

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestNewLooksDownNegativeZ(t *testing.T) {
	c := New()
	if math32.Abs(c.Front.X) > 1e-6 || math32.Abs(c.Front.Y) > 1e-6 || math32.Abs(c.Front.Z+1) > 1e-6 {
		t.Fatalf("front = %+v, want (0, 0, -1) at yaw -90 pitch 0", c.Front)
	}
	if math32.Abs(c.Right.X-1) > 1e-6 {
		t.Fatalf("right = %+v, want +X", c.Right)
	}
	if math32.Abs(c.Up.Y-1) > 1e-6 {
		t.Fatalf("up = %+v, want +Y", c.Up)
	}
}

func TestLookClampsPitch(t *testing.T) {
	c := New()
	c.Look(0, 1e6)
	if c.Pitch != 89 {
		t.Errorf("pitch = %v after looking far up, want 89", c.Pitch)
	}
	c.Look(0, -1e6)
	if c.Pitch != -89 {
		t.Errorf("pitch = %v after looking far down, want -89", c.Pitch)
	}
}

func TestAdjustSpeedClamps(t *testing.T) {
	c := New()
	if got := c.AdjustSpeed(100); got != 10 {
		t.Errorf("speed = %v after large increase, want 10", got)
	}
	if got := c.AdjustSpeed(-100); got != 0.5 {
		t.Errorf("speed = %v after large decrease, want 0.5", got)
	}
}

func TestMoveIntegratesSpeedAndElapsed(t *testing.T) {
	c := New()
	c.Speed = 2
	c.Move(c.Front, 0.5)
	// 2 units/s for half a second along (0,0,-1).
	if math32.Abs(c.Position.Z-4) > 1e-5 {
		t.Errorf("position.Z = %v, want 4", c.Position.Z)
	}
}

func TestResetRestoresPose(t *testing.T) {
	c := New()
	c.Look(400, 200)
	c.Move(c.Front, 3)
	c.Reset()
	if c.Position != startPosition || c.Yaw != defaultYaw || c.Pitch != defaultPitch {
		t.Errorf("camera not restored: pos %+v yaw %v pitch %v", c.Position, c.Yaw, c.Pitch)
	}
}
