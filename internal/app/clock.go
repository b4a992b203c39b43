package app

// Clock is the frame driver's time state. Tick turns raw platform clock
// readings into the animation time and the elapsed seconds used for camera
// integration; it holds no rendering logic.
type Clock struct {
	last    float64
	started bool
}

// Tick ingests the current monotonic clock reading (seconds) and returns
// the animation time together with the time elapsed since the previous
// tick. The first tick reports zero elapsed.
func (c *Clock) Tick(now float64) (t, elapsed float32) {
	if !c.started {
		c.started = true
		c.last = now
		return float32(now), 0
	}
	elapsed = float32(now - c.last)
	c.last = now
	return float32(now), elapsed
}
