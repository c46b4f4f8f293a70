package occluder

import "fmt"

// Hooks are the injectable primitives of a run: an assertion handler
// for internal invariant violations and a pair of profiling callbacks
// bracketing each pipeline stage. The zero value panics on violated
// invariants and skips profiling.
type Hooks struct {
	// Assert is called with ok=false when an internal invariant is
	// violated (programming-error class, e.g. double-clipping a cell).
	Assert func(ok bool, msg string)

	// ProfileBegin/ProfileEnd bracket named pipeline stages.
	ProfileBegin func(name string)
	ProfileEnd   func(name string)
}

// normalized fills nil callbacks with the defaults.
func (h Hooks) normalized() Hooks {
	if h.Assert == nil {
		h.Assert = func(ok bool, msg string) {
			if !ok {
				panic(fmt.Sprintf("occluder: invariant violated: %s", msg))
			}
		}
	}
	if h.ProfileBegin == nil {
		h.ProfileBegin = func(string) {}
	}
	if h.ProfileEnd == nil {
		h.ProfileEnd = func(string) {}
	}
	return h
}
