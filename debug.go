package thicket

import (
	"fmt"
	"os"
)

// logf writes a prefixed line to stderr.
func logf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[thicket] "+format+"\n", args...)
}

// SetDebugMode enables or disables debug logging. When enabled, every
// dispatched binding is logged to stderr, and so are state transitions if
// the window's stack is a *StateManager.
func (w *Window) SetDebugMode(enabled bool) {
	w.debug = enabled
	if m, ok := w.states.(*StateManager); ok {
		m.SetDebugMode(enabled)
	}
}

// debugDispatch logs a binding about to be dispatched.
func (w *Window) debugDispatch(sym Symbol, a Action, target any) {
	if !w.debug {
		return
	}
	logf("input %q -> %v on %T", sym, a, target)
}
