// Package routine implements a fixed-capacity pool of cooperatively scheduled
// routines ("green threads"). Control moves between routines only at explicit
// yield points; dispatch is round-robin over slot index. The pool is driven
// from the caller's own thread of control (the base context) by Run, which
// returns once every spawned routine has run to completion.
package routine

import (
	"errors"
	"runtime/debug"

	"github.com/greenlab/routine/internal/gls"
)

const (
	// MaxRoutines is the number of user slots in the pool. The base context
	// occupies slot 0 in addition to these.
	MaxRoutines = 4

	// StackSize is the per-routine stack budget in bytes. It is applied as
	// the goroutine stack limit at Init; a routine that grows past it is
	// fatal, as with a fixed stack buffer.
	StackSize = 2 << 20
)

// base is the slot index of the caller's original thread of control.
const base = 0

var (
	// ErrCapacity is returned by Go when every user slot is occupied.
	ErrCapacity = errors.New("routine: no idle slot in the pool")

	// ErrNotRunning is returned by the freestanding Go when the calling
	// goroutine is not executing a routine body.
	ErrNotRunning = errors.New("routine: not called from a routine body")
)

// Runtime is a fixed-capacity pool of routine slots plus the base context.
// It is not safe for concurrent use: every method must be called from the
// single thread of control that owns the pool, which is guaranteed by
// construction once Run is driving it. Distinct Runtimes are independent and
// may be driven from distinct goroutines.
type Runtime struct {
	slots   []slot
	current int
	tracer  Tracer
	primed  bool
}

// New allocates a pool with MaxRoutines idle user slots and the base slot
// marked running. Init must be called before Go or Run.
func New() *Runtime {
	r := &Runtime{slots: make([]slot, MaxRoutines+1)}
	for i := range r.slots {
		r.slots[i].index = i
	}
	r.slots[base].state = Running
	return r
}

// Init primes the base context and applies the stack budget. The budget is
// set with debug.SetMaxStack, which is process-global: every goroutine in the
// host program becomes subject to the StackSize limit, not just pool
// routines. Calling Init twice panics.
func (r *Runtime) Init() {
	if r.primed {
		panic("routine: Runtime already initialized")
	}
	r.slots[base].ctx.resume = make(chan struct{})
	debug.SetMaxStack(StackSize)
	r.primed = true
}

// Go spawns f as a routine in the first idle slot. The slot becomes Ready and
// is dispatched when the round-robin scan reaches its index; spawn order, not
// priority, decides its place relative to already-Ready slots. Go returns
// ErrCapacity when no slot is idle, leaving the pool untouched.
func (r *Runtime) Go(f func()) error {
	if !r.primed {
		panic("routine: Runtime used before Init")
	}
	var s *slot
	for i := base + 1; i < len(r.slots); i++ {
		if r.slots[i].state == Idle {
			s = &r.slots[i]
			break
		}
	}
	if s == nil {
		return ErrCapacity
	}
	s.ctx.prepare(r.trampoline(s, f))
	s.state = Ready
	return nil
}

// Run drives the pool from the base context until no slot is Ready. Every
// switch chain started here leads back to the base context, either through a
// yield that finds nothing else Ready or through the guard of the last
// finishing routine. On return only the base context is active and the
// Runtime is reusable for another round of Go and Run.
func (r *Runtime) Run() {
	if !r.primed {
		panic("routine: Runtime used before Init")
	}
	if r.current != base {
		panic("routine: Run called from inside a routine body")
	}
	for r.park() {
	}
	r.emit(Event{Kind: KindDone, From: base, To: base})
}

// State returns the lifecycle state of a slot; index 0 is the base context.
func (r *Runtime) State(index int) State {
	return r.slots[index].state
}

// trampoline builds the entry point for a spawned routine: it publishes the
// runtime handle for the duration of f, then unconditionally enters the
// guard. f never returns into scheduler code on its own.
func (r *Runtime) trampoline(s *slot, f func()) func() {
	return func() {
		g := gls.Current()
		g.Store(r)
		defer g.Clear()
		f()
		r.guard(s)
	}
}

// guard retires a routine whose body returned: the slot becomes Idle (and so
// reusable by a future Go), and control is handed to the next Ready slot. The
// base context is Ready whenever it is parked, so the scan always finds a
// target while the pool is being driven.
func (r *Runtime) guard(s *slot) {
	s.state = Idle
	pos := r.scan(s.index)
	if pos < 0 {
		panic("routine: finished routine has no context to return to")
	}
	r.slots[pos].state = Running
	r.current = pos
	r.emit(Event{Kind: KindReturn, From: s.index, To: pos})
	handoff(&r.slots[pos].ctx)
}

// park is one scheduling step: it demotes the current slot to Ready, promotes
// the next Ready slot in round-robin order and switches into it. It reports
// false, without switching, when the scan wraps around with nothing Ready.
// park is the body of Yield and of Run's dispatch loop; it is the only
// suspension point in the system.
func (r *Runtime) park() bool {
	pos := r.scan(r.current)
	if pos < 0 {
		return false
	}
	old := r.current
	r.slots[old].state = Ready
	r.slots[pos].state = Running
	r.current = pos

	kind := KindYield
	if old == base {
		kind = KindDispatch
	}
	r.emit(Event{Kind: kind, From: old, To: pos})

	switchContext(&r.slots[old].ctx, &r.slots[pos].ctx)
	return true
}

// scan returns the index of the next Ready slot strictly after from, wrapping
// around, or -1 when the scan comes back to from without a hit. The base slot
// takes part like any other: it sits at index 0, so it is considered right
// after the highest user slot.
func (r *Runtime) scan(from int) int {
	pos := from
	for {
		pos++
		if pos == len(r.slots) {
			pos = 0
		}
		if pos == from {
			return -1
		}
		if r.slots[pos].state == Ready {
			return pos
		}
	}
}
