package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTickClockFiresOncePerInterval(t *testing.T) {
	c := NewTickClock(10) // 100ms interval

	assert.False(t, c.Advance(50*time.Millisecond))
	assert.True(t, c.Advance(50*time.Millisecond))
	assert.False(t, c.Advance(50*time.Millisecond), "accumulator resets after firing")
	assert.True(t, c.Advance(50*time.Millisecond))
}

func TestTickClockDropsSurplus(t *testing.T) {
	c := NewTickClock(10)

	// A long stall yields one tick, not a catch-up burst.
	assert.True(t, c.Advance(time.Second))
	assert.False(t, c.Advance(99*time.Millisecond), "surplus from the stall is dropped")
	assert.True(t, c.Advance(time.Millisecond))
}

func TestTickClockInterval(t *testing.T) {
	assert.Equal(t, 125*time.Millisecond, NewTickClock(8).Interval())
}

func TestTickClockRejectsZeroRate(t *testing.T) {
	assert.Panics(t, func() { NewTickClock(0) })
}
