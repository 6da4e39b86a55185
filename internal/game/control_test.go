package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	paused   bool
	advanced time.Duration
}

func (c *fakeClock) Pause()                    { c.paused = true }
func (c *fakeClock) Unpause()                  { c.paused = false }
func (c *fakeClock) AdvanceBy(d time.Duration) { c.advanced += d }

func TestBindClockFollowsPauseState(t *testing.T) {
	states := NewStates()
	clock := &fakeClock{}
	BindClock(states, clock)

	states.Set(StatePaused)
	states.Apply()
	assert.True(t, clock.paused)

	states.Set(StateRunning)
	states.Apply()
	assert.False(t, clock.paused)
}

func TestStepButtonOnlyWhilePaused(t *testing.T) {
	states := NewStates()
	clock := &fakeClock{}
	BindClock(states, clock)
	in := NewButtonInput()

	in.Press(Enter)
	assert.False(t, StepButton(states, clock, in), "running ignores Enter")
	assert.Zero(t, clock.advanced)
	in.Release(Enter)
	in.Clear()

	states.Set(StatePaused)
	states.Apply()

	for i := 0; i < 4; i++ {
		in.Press(Enter)
		assert.True(t, StepButton(states, clock, in))
		in.Release(Enter)
		in.Clear()
	}
	assert.Equal(t, 4*StepDuration, clock.advanced)

	// Held Enter is a single step.
	in.Press(Enter)
	StepButton(states, clock, in)
	in.Clear()
	StepButton(states, clock, in)
	assert.Equal(t, 5*StepDuration, clock.advanced)
	assert.InDelta(t, 5.0/60, clock.advanced.Seconds(), 1e-6)
}
