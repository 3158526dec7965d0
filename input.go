package thicket

// Symbol names an input such as "escape", "space", "p" or "mouse_left".
// See Keyboard for the symbols the ebiten backend recognizes.
type Symbol string

// InputConfig binds input symbols to actions. A nil config binds nothing.
type InputConfig map[Symbol]Action

// InputQuery reports whether an input symbol is currently held.
type InputQuery interface {
	IsActive(sym Symbol) bool
}

// InputQueryFunc adapts a function to InputQuery.
type InputQueryFunc func(sym Symbol) bool

// IsActive calls f(sym).
func (f InputQueryFunc) IsActive(sym Symbol) bool { return f(sym) }

// DispatchInput dispatches, against target, the action of every symbol in
// cfg that q reports active. Each binding is checked once per call, in no
// particular order. The first dispatch error stops the walk and is returned.
func (w *Window) DispatchInput(cfg InputConfig, target any, q InputQuery) error {
	if len(cfg) == 0 || q == nil {
		return nil
	}
	for sym, action := range cfg {
		if !q.IsActive(sym) {
			continue
		}
		w.debugDispatch(sym, action, target)
		if err := w.DispatchAction(target, action); err != nil {
			return err
		}
	}
	return nil
}
