package engine

import "time"

// Clock converts elapsed wall time into a whole number of fixed simulation
// ticks, so the per-tick displacement stays constant whatever the display
// refresh rate is.
type Clock struct {
	step     time.Duration
	maxTicks int
	acc      time.Duration
}

// NewClock creates a clock for tickRate ticks per second.
// At most maxTicks ticks are reported per Advance; the excess is dropped.
func NewClock(tickRate, maxTicks int) *Clock {
	if tickRate <= 0 {
		tickRate = 60
	}
	if maxTicks <= 0 {
		maxTicks = 5
	}
	return &Clock{
		step:     time.Second / time.Duration(tickRate),
		maxTicks: maxTicks,
	}
}

// Step returns the fixed tick duration.
func (c *Clock) Step() time.Duration {
	return c.step
}

// Advance adds dt to the accumulator and returns how many ticks to run.
func (c *Clock) Advance(dt time.Duration) int {
	if dt < 0 {
		dt = 0
	}
	c.acc += dt

	n := int(c.acc / c.step)
	c.acc -= time.Duration(n) * c.step
	if n > c.maxTicks {
		n = c.maxTicks
		c.acc = 0
	}
	return n
}

// Alpha returns the fraction of a tick left in the accumulator, in [0, 1).
func (c *Clock) Alpha() float64 {
	return float64(c.acc) / float64(c.step)
}

// Reset drops any accumulated time.
func (c *Clock) Reset() {
	c.acc = 0
}
