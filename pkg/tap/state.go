package tap

// State represents the delivery state of a controller.
type State int

const (
	StateStopped State = iota
	StateRunning
	StatePaused
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateStopped:
		return "Stopped"
	case StateRunning:
		return "Running"
	case StatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// Action names one of the four control operations for Command dispatch.
type Action string

const (
	ActionStart  Action = "start"
	ActionStop   Action = "stop"
	ActionPause  Action = "pause"
	ActionResume Action = "resume"
)

// StateHandler is called synchronously after every real state transition.
// No-op operations do not trigger it.
type StateHandler func(previous, current State, action Action)
