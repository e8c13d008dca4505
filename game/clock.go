package game

import "time"

// TickClock gates the simulation to a fixed rate while the render loop runs at
// whatever frame rate the host manages. Advance accumulates frame deltas and
// reports at most one due tick per call, dropping any surplus elapsed time on
// fire: a long frame stall produces a single late tick, not a catch-up burst.
type TickClock struct {
	interval time.Duration
	accum    time.Duration
}

func NewTickClock(ticksPerSecond int) *TickClock {
	if ticksPerSecond <= 0 {
		panic("game: ticks per second must be positive")
	}
	return &TickClock{interval: time.Second / time.Duration(ticksPerSecond)}
}

// Advance adds dt to the accumulator and reports whether a tick is due.
func (c *TickClock) Advance(dt time.Duration) bool {
	c.accum += dt
	if c.accum < c.interval {
		return false
	}
	c.accum = 0
	return true
}

// Interval returns the fixed tick period.
func (c *TickClock) Interval() time.Duration {
	return c.interval
}
