package app

import "testing"

func TestClockFirstTickHasZeroElapsed(t *testing.T) {
	var c Clock
	tm, elapsed := c.Tick(12.5)
	if tm != 12.5 {
		t.Errorf("time = %v, want 12.5", tm)
	}
	if elapsed != 0 {
		t.Errorf("first elapsed = %v, want 0", elapsed)
	}
}

func TestClockElapsedBetweenTicks(t *testing.T) {
	var c Clock
	c.Tick(1.0)
	tm, elapsed := c.Tick(1.25)
	if tm != 1.25 {
		t.Errorf("time = %v, want 1.25", tm)
	}
	if elapsed != 0.25 {
		t.Errorf("elapsed = %v, want 0.25", elapsed)
	}
	_, elapsed = c.Tick(1.25)
	if elapsed != 0 {
		t.Errorf("elapsed with no clock advance = %v, want 0", elapsed)
	}
}
