package routine

// ExecutionContext holds the saved control state of one thread of cooperative
// execution: a goroutine parked on an unbuffered resume channel. Signalling
// the channel is the moral equivalent of restoring a register set; the parked
// goroutine's own stack plays the role of the owned stack buffer. A context
// is exclusively owned by one slot and its channel is remade on every spawn,
// so state from a previous occupant is never observable.
type ExecutionContext struct {
	resume chan struct{}
}

// prepare primes the context for a fresh routine. It replaces the resume
// channel and launches a goroutine that stays parked until the first
// switch-in, then runs entry. The entry function is the trampoline built by
// the runtime; it must end in a handoff, never in an ordinary return into
// scheduler code.
func (c *ExecutionContext) prepare(entry func()) {
	c.resume = make(chan struct{})
	resume := c.resume
	go func() {
		<-resume
		entry()
	}()
}

// switchContext transfers the live thread of control from one context to
// another. It signals to, then parks on from; the call returns only when a
// later switch targets from again. Between the signal and the park the caller
// touches no shared state, so every runtime mutation made before the signal
// is visible to the switched-in goroutine through the channel handoff.
//
// Preconditions mirror a raw register swap: from and to are distinct and
// to has been prepared (or is the primed base context). Switching into an
// unprepared context blocks forever; there is no runtime check.
func switchContext(from, to *ExecutionContext) {
	to.resume <- struct{}{}
	<-from.resume
}

// handoff is the terminal half of a switch, used when the calling context is
// being retired: it signals to and does not park. The caller's goroutine then
// falls off the end of its trampoline and exits, so a finished routine never
// resumes by ordinary function return.
func handoff(to *ExecutionContext) {
	to.resume <- struct{}{}
}
