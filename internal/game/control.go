package game

import "time"

// PhysicsClock is the part of the physics time the control systems drive.
type PhysicsClock interface {
	Pause()
	Unpause()
	AdvanceBy(d time.Duration)
}

// ControlKind names a control event emitted by the simulation control.
type ControlKind string

const (
	ControlPause  ControlKind = "PAUSE"
	ControlResume ControlKind = "RESUME"
	ControlStep   ControlKind = "STEP"
)

// ControlEvent reports a pause, resume or single step.
type ControlEvent struct {
	Kind    ControlKind   `json:"kind"`
	Frame   uint64        `json:"frame"`
	Elapsed time.Duration `json:"elapsed"` // physics time after the event
}

// BindClock hooks the physics clock to the Paused state: entering Paused
// freezes physics time, leaving it resumes.
func BindClock(states *States, clock PhysicsClock) {
	states.OnEnter(StatePaused, clock.Pause)
	states.OnExit(StatePaused, clock.Unpause)
}

// PauseButton toggles between Running and Paused on the push edge of P.
// Returns true if a toggle was queued.
func PauseButton(states *States, keys *ButtonInput) bool {
	if !keys.JustPressed(KeyP) {
		return false
	}
	switch states.Get() {
	case StatePaused:
		states.Set(StateRunning)
	default:
		states.Set(StatePaused)
	}
	return true
}

// StepButton advances the physics clock by one StepDuration on the push edge
// of Enter. It only acts while Paused. Returns true if the clock advanced.
func StepButton(states *States, clock PhysicsClock, keys *ButtonInput) bool {
	if states.Get() != StatePaused || !keys.JustPressed(Enter) {
		return false
	}
	clock.AdvanceBy(StepDuration)
	return true
}
