package supervisor

// State is a supervisor lifecycle state.
type State int32

const (
	StateIdle State = iota
	StateValidating
	StateInvalid
	StateLaunching
	StateLaunchFailed
	StateRunning
	StateSignalReceived
	StateStopping
	StateCompleted
	StateTerminated
)

var stateNames = [...]string{
	StateIdle:           "idle",
	StateValidating:     "validating",
	StateInvalid:        "invalid",
	StateLaunching:      "launching",
	StateLaunchFailed:   "launch_failed",
	StateRunning:        "running",
	StateSignalReceived: "signal_received",
	StateStopping:       "stopping",
	StateCompleted:      "completed",
	StateTerminated:     "terminated",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Final reports whether no further transition can happen from s.
func (s State) Final() bool {
	return s == StateInvalid || s == StateLaunchFailed || s == StateTerminated
}

// Status is a point-in-time view of a supervisor run.
type Status struct {
	Mode  string `json:"mode"`
	State string `json:"state"`
	RunID string `json:"run_id,omitempty"`
}
