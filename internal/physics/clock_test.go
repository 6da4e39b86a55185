package physics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClockRunning(t *testing.T) {
	c := NewClock()
	assert.Equal(t, 16*time.Millisecond, c.Tick(16*time.Millisecond))
	assert.Equal(t, 17*time.Millisecond, c.Tick(17*time.Millisecond))
	assert.Equal(t, 33*time.Millisecond, c.Elapsed())
	assert.Equal(t, 17*time.Millisecond, c.Delta())
}

func TestClockPausedIgnoresRealTime(t *testing.T) {
	c := NewClock()
	c.Tick(10 * time.Millisecond)
	c.Pause()
	assert.True(t, c.IsPaused())

	for i := 0; i < 10; i++ {
		assert.Zero(t, c.Tick(16*time.Millisecond))
	}
	assert.Equal(t, 10*time.Millisecond, c.Elapsed())

	c.Unpause()
	c.Tick(5 * time.Millisecond)
	assert.Equal(t, 15*time.Millisecond, c.Elapsed())
}

func TestClockAdvanceWhilePaused(t *testing.T) {
	step := time.Second / 60
	c := NewClock()
	c.Pause()

	for n := 1; n <= 3; n++ {
		c.AdvanceBy(step)
		assert.Equal(t, step, c.Tick(time.Second))
	}
	assert.Equal(t, 3*step, c.Elapsed())
	assert.InDelta(t, 3.0/60, c.Elapsed().Seconds(), 1e-6)

	// Queued advances add up within one tick.
	c.AdvanceBy(step)
	c.AdvanceBy(step)
	assert.Equal(t, 2*step, c.Tick(0))

	c.AdvanceBy(-time.Second)
	assert.Zero(t, c.Tick(0))
}
