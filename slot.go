package routine

import "strconv"

// State is the lifecycle state of a slot in the pool.
type State int

const (
	// Idle means the slot is vacant and may be claimed by a future spawn.
	Idle State = iota
	// Running means the slot's routine owns the thread of control.
	Running
	// Ready means the slot's routine is parked at a yield point, waiting to
	// be dispatched.
	Ready
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Ready:
		return "ready"
	default:
		return "state(" + strconv.Itoa(int(s)) + ")"
	}
}

// slot is one entry of the runtime's arena. The index is the slot's identity
// for its whole lifetime; index 0 is the base context. Only the runtime
// mutates state, and only from the currently switched-in code path.
type slot struct {
	index int
	state State
	ctx   ExecutionContext
}
