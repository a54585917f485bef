//go:build amd64 || arm64

package gls

// getg returns the current goroutine's g pointer, like the runtime.getg
// compiler intrinsic. Implemented in assembly per architecture; this is the
// only architecture-gated code in the module, and the package does not build
// on targets without an implementation.
//
// https://github.com/golang/go/blob/master/src/runtime/HACKING.md
func getg() uintptr
