// Package reduce implements the beta, delta, and special reducers and the
// combined normalizer and conversion check that drive them.
package reduce

import "github.com/pcc-lang/kernel/term"

// recoverFault is deferred at every exported entry point except Contract,
// which panics its *term.Fault directly. Internal
// recursive helpers panic a *term.Fault instead of threading an error
// return through every structural recursion step; recoverFault turns
// exactly one such panic into a normal Go error and lets any other panic
// propagate. A non-Fault panic is a real bug in this package, not a
// malformed-input failure.
func recoverFault(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	if f, ok := r.(*term.Fault); ok {
		*errp = f
		return
	}
	panic(r)
}
