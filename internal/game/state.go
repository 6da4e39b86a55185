package game

// AppState is the simulation run state.
type AppState string

const (
	StateRunning AppState = "RUNNING"
	StatePaused  AppState = "PAUSED"
)

// States holds the current AppState, a queued next state and the enter/exit
// hooks run when a queued transition is applied.
type States struct {
	current AppState
	next    *AppState
	onEnter map[AppState][]func()
	onExit  map[AppState][]func()
}

// NewStates starts in StateRunning.
func NewStates() *States {
	return &States{
		current: StateRunning,
		onEnter: make(map[AppState][]func()),
		onExit:  make(map[AppState][]func()),
	}
}

func (s *States) Get() AppState {
	return s.current
}

// Set queues a transition. It takes effect on the next Apply.
func (s *States) Set(next AppState) {
	s.next = &next
}

// OnEnter registers a hook run when the state is entered.
func (s *States) OnEnter(state AppState, fn func()) {
	s.onEnter[state] = append(s.onEnter[state], fn)
}

// OnExit registers a hook run when the state is left.
func (s *States) OnExit(state AppState, fn func()) {
	s.onExit[state] = append(s.onExit[state], fn)
}

// Apply performs the queued transition, running exit hooks of the old state
// then enter hooks of the new one. Queuing the current state is a no-op.
// Returns true if the state changed.
func (s *States) Apply() bool {
	if s.next == nil {
		return false
	}
	next := *s.next
	s.next = nil
	if next == s.current {
		return false
	}

	prev := s.current
	for _, fn := range s.onExit[prev] {
		fn()
	}
	s.current = next
	for _, fn := range s.onEnter[next] {
		fn()
	}
	return true
}
