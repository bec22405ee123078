package splash

import "sync/atomic"

// VisibilityFlag signals that the host's main window has appeared.
// It starts false and can only ever move to true.
type VisibilityFlag struct {
	v atomic.Bool
}

// Set raises the flag. It reports true only for the call that performed the
// false to true transition.
func (f *VisibilityFlag) Set() bool {
	return f.v.CompareAndSwap(false, true)
}

// IsSet reports whether the flag has been raised.
func (f *VisibilityFlag) IsSet() bool {
	return f.v.Load()
}
