package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// tapPause runs one tick with P tapped.
func tapPause(states *States, in *ButtonInput) {
	in.Press(KeyP)
	PauseButton(states, in)
	states.Apply()
	in.Release(KeyP)
	in.Clear()
}

func TestPauseToggleParity(t *testing.T) {
	for presses := 0; presses <= 7; presses++ {
		states := NewStates()
		in := NewButtonInput()
		for i := 0; i < presses; i++ {
			tapPause(states, in)
		}

		want := StateRunning
		if presses%2 == 1 {
			want = StatePaused
		}
		assert.Equal(t, want, states.Get(), "after %d presses", presses)
	}
}

func TestHoldingPauseDoesNotRepeat(t *testing.T) {
	states := NewStates()
	in := NewButtonInput()

	in.Press(KeyP)
	for i := 0; i < 5; i++ {
		PauseButton(states, in)
		states.Apply()
		in.Clear()
	}
	assert.Equal(t, StatePaused, states.Get())
}

func TestStatesHooksRunInOrder(t *testing.T) {
	states := NewStates()
	var calls []string
	states.OnExit(StateRunning, func() { calls = append(calls, "exit running") })
	states.OnEnter(StatePaused, func() { calls = append(calls, "enter paused") })
	states.OnExit(StatePaused, func() { calls = append(calls, "exit paused") })
	states.OnEnter(StateRunning, func() { calls = append(calls, "enter running") })

	assert.False(t, states.Apply(), "nothing queued")

	states.Set(StatePaused)
	assert.Equal(t, StateRunning, states.Get(), "Set only queues")
	assert.True(t, states.Apply())

	states.Set(StatePaused)
	assert.False(t, states.Apply(), "same state is a no-op")

	states.Set(StateRunning)
	assert.True(t, states.Apply())

	assert.Equal(t, []string{"exit running", "enter paused", "exit paused", "enter running"}, calls)
}
