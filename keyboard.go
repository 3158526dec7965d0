package thicket

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Keyboard is the ebiten-backed InputQuery. A symbol is active while its key
// or mouse button is held, or while it is held synthetically via Press.
type Keyboard struct {
	held map[Symbol]bool

	// Overridable for tests; default to the ebiten input state.
	keyDown   func(ebiten.Key) bool
	mouseDown func(ebiten.MouseButton) bool
}

// NewKeyboard returns a Keyboard reading ebiten's input state.
func NewKeyboard() *Keyboard {
	return &Keyboard{
		held:      make(map[Symbol]bool),
		keyDown:   ebiten.IsKeyPressed,
		mouseDown: ebiten.IsMouseButtonPressed,
	}
}

// IsActive reports whether sym is held. Unknown symbols are never active.
func (k *Keyboard) IsActive(sym Symbol) bool {
	if k.held[sym] {
		return true
	}
	if key, ok := symbolKeys[sym]; ok {
		return k.keyDown != nil && k.keyDown(key)
	}
	if btn, ok := symbolButtons[sym]; ok {
		return k.mouseDown != nil && k.mouseDown(btn)
	}
	return false
}

// KnownSymbol reports whether the keyboard can map sym to a key or button.
func KnownSymbol(sym Symbol) bool {
	if _, ok := symbolKeys[sym]; ok {
		return true
	}
	_, ok := symbolButtons[sym]
	return ok
}

var symbolButtons = map[Symbol]ebiten.MouseButton{
	"mouse_left":   ebiten.MouseButtonLeft,
	"mouse_right":  ebiten.MouseButtonRight,
	"mouse_middle": ebiten.MouseButtonMiddle,
}

var symbolKeys = map[Symbol]ebiten.Key{
	"a": ebiten.KeyA, "b": ebiten.KeyB, "c": ebiten.KeyC, "d": ebiten.KeyD,
	"e": ebiten.KeyE, "f": ebiten.KeyF, "g": ebiten.KeyG, "h": ebiten.KeyH,
	"i": ebiten.KeyI, "j": ebiten.KeyJ, "k": ebiten.KeyK, "l": ebiten.KeyL,
	"m": ebiten.KeyM, "n": ebiten.KeyN, "o": ebiten.KeyO, "p": ebiten.KeyP,
	"q": ebiten.KeyQ, "r": ebiten.KeyR, "s": ebiten.KeyS, "t": ebiten.KeyT,
	"u": ebiten.KeyU, "v": ebiten.KeyV, "w": ebiten.KeyW, "x": ebiten.KeyX,
	"y": ebiten.KeyY, "z": ebiten.KeyZ,

	"0": ebiten.KeyDigit0, "1": ebiten.KeyDigit1, "2": ebiten.KeyDigit2,
	"3": ebiten.KeyDigit3, "4": ebiten.KeyDigit4, "5": ebiten.KeyDigit5,
	"6": ebiten.KeyDigit6, "7": ebiten.KeyDigit7, "8": ebiten.KeyDigit8,
	"9": ebiten.KeyDigit9,

	"f1": ebiten.KeyF1, "f2": ebiten.KeyF2, "f3": ebiten.KeyF3, "f4": ebiten.KeyF4,
	"f5": ebiten.KeyF5, "f6": ebiten.KeyF6, "f7": ebiten.KeyF7, "f8": ebiten.KeyF8,
	"f9": ebiten.KeyF9, "f10": ebiten.KeyF10, "f11": ebiten.KeyF11, "f12": ebiten.KeyF12,

	"left":        ebiten.KeyArrowLeft,
	"right":       ebiten.KeyArrowRight,
	"up":          ebiten.KeyArrowUp,
	"down":        ebiten.KeyArrowDown,
	"left_arrow":  ebiten.KeyArrowLeft,
	"right_arrow": ebiten.KeyArrowRight,
	"up_arrow":    ebiten.KeyArrowUp,
	"down_arrow":  ebiten.KeyArrowDown,

	"space":     ebiten.KeySpace,
	"return":    ebiten.KeyEnter,
	"enter":     ebiten.KeyEnter,
	"escape":    ebiten.KeyEscape,
	"esc":       ebiten.KeyEscape,
	"tab":       ebiten.KeyTab,
	"backspace": ebiten.KeyBackspace,
	"delete":    ebiten.KeyDelete,
	"insert":    ebiten.KeyInsert,
	"home":      ebiten.KeyHome,
	"end":       ebiten.KeyEnd,
	"page_up":   ebiten.KeyPageUp,
	"page_down": ebiten.KeyPageDown,

	"left_shift":  ebiten.KeyShiftLeft,
	"right_shift": ebiten.KeyShiftRight,
	"left_ctrl":   ebiten.KeyControlLeft,
	"right_ctrl":  ebiten.KeyControlRight,
	"left_alt":    ebiten.KeyAltLeft,
	"right_alt":   ebiten.KeyAltRight,
}
