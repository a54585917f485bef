package routine

import "github.com/greenlab/routine/internal/gls"

// Yield parks the calling routine and passes control to the next Ready slot,
// or back to the base context when nothing else is Ready. It is a no-op when
// the calling goroutine is not executing a routine body, so library code may
// call it unconditionally.
func Yield() {
	if r, ok := gls.Current().Load().(*Runtime); ok {
		r.park()
	}
}

// Go spawns f onto the Runtime whose routine body is executing on the calling
// goroutine. The new routine becomes eligible when the round-robin scan
// reaches its slot. Outside a routine body there is no ambient Runtime and Go
// returns ErrNotRunning; spawn onto an explicit Runtime instead.
func Go(f func()) error {
	r, ok := gls.Current().Load().(*Runtime)
	if !ok {
		return ErrNotRunning
	}
	return r.Go(f)
}
