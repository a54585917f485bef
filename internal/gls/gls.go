// Package gls implements a small goroutine local storage keyed by the
// runtime's g pointer. The routine package uses it to publish the active
// scheduler for the duration of a routine body, which is how a freestanding
// Yield finds its way back without a process-wide singleton.
package gls

import "sync"

// G is the identity of a goroutine.
type G uintptr

// Current returns the identity of the calling goroutine.
func Current() G { return G(getg()) }

var (
	mu     sync.RWMutex
	active map[G]any
)

// Load returns the value stored for g, or nil.
func (g G) Load() any {
	mu.RLock()
	v := active[g]
	mu.RUnlock()
	return v
}

// Store associates v with g until Clear.
func (g G) Store(v any) {
	mu.Lock()
	if active == nil {
		active = make(map[G]any)
	}
	active[g] = v
	mu.Unlock()
}

// Clear removes the value stored for g.
func (g G) Clear() {
	mu.Lock()
	delete(active, g)
	mu.Unlock()
}
