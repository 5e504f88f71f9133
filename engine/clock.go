package engine

import "time"

// Clock is simulated time: the sum of every dt passed to Tick
// A paused driver simply stops ticking, so pauses never count
type Clock struct {
	now   time.Duration
	ticks int64
}

// Advance moves the clock forward by dt and counts one tick
func (c *Clock) Advance(dt time.Duration) time.Duration {
	c.now += dt
	c.ticks++
	return c.now
}

// Now returns the elapsed simulated time
func (c *Clock) Now() time.Duration {
	return c.now
}

// Ticks returns the number of ticks taken
func (c *Clock) Ticks() int64 {
	return c.ticks
}

func (c *Clock) Reset() {
	c.now = 0
	c.ticks = 0
}
