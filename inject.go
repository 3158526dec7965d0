package thicket

// Press holds sym down synthetically until Release or ReleaseAll. Any
// symbol may be pressed, including ones with no physical key, which lets
// tests and scripts drive bindings the hardware can't produce.
func (k *Keyboard) Press(sym Symbol) {
	if k.held == nil {
		k.held = make(map[Symbol]bool)
	}
	k.held[sym] = true
}

// Release ends a synthetic hold of sym. Physical input is unaffected.
func (k *Keyboard) Release(sym Symbol) {
	delete(k.held, sym)
}

// ReleaseAll ends every synthetic hold.
func (k *Keyboard) ReleaseAll() {
	clear(k.held)
}

// Held returns the number of symbols held synthetically.
func (k *Keyboard) Held() int {
	return len(k.held)
}
