package term

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/thicket"
)

// Input is a thicket.InputQuery fed by tcell events. Terminals report key
// presses but not releases, so a key counts as active only during the tick
// in which its event arrived. Mouse buttons stay active until a mouse event
// reports them released.
type Input struct {
	keys  map[thicket.Symbol]bool
	mouse tcell.ButtonMask
}

// NewInput returns an Input with nothing active.
func NewInput() *Input {
	return &Input{keys: make(map[thicket.Symbol]bool)}
}

// HandleEvent records key and mouse events. Other events are ignored.
func (in *Input) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if sym, ok := keySymbol(ev); ok {
			in.keys[sym] = true
		}
	case *tcell.EventMouse:
		in.mouse = ev.Buttons()
	}
}

// EndTick forgets the keys pressed during the tick just finished.
func (in *Input) EndTick() {
	clear(in.keys)
}

// IsActive implements thicket.InputQuery.
func (in *Input) IsActive(sym thicket.Symbol) bool {
	if alias, ok := symbolAliases[sym]; ok {
		sym = alias
	}
	switch sym {
	case "mouse_left":
		return in.mouse&tcell.Button1 != 0
	case "mouse_right":
		return in.mouse&tcell.Button2 != 0
	case "mouse_middle":
		return in.mouse&tcell.Button3 != 0
	}
	return in.keys[sym]
}

// symbolAliases maps alternate symbol spellings to the ones keySymbol emits.
var symbolAliases = map[thicket.Symbol]thicket.Symbol{
	"left_arrow":  "left",
	"right_arrow": "right",
	"up_arrow":    "up",
	"down_arrow":  "down",
	"enter":       "return",
	"esc":         "escape",
}

var keySymbols = map[tcell.Key]thicket.Symbol{
	tcell.KeyEscape:     "escape",
	tcell.KeyEnter:      "return",
	tcell.KeyTab:        "tab",
	tcell.KeyBackspace:  "backspace",
	tcell.KeyBackspace2: "backspace",
	tcell.KeyDelete:     "delete",
	tcell.KeyInsert:     "insert",
	tcell.KeyHome:       "home",
	tcell.KeyEnd:        "end",
	tcell.KeyPgUp:       "page_up",
	tcell.KeyPgDn:       "page_down",
	tcell.KeyLeft:       "left",
	tcell.KeyRight:      "right",
	tcell.KeyUp:         "up",
	tcell.KeyDown:       "down",
	tcell.KeyF1:         "f1",
	tcell.KeyF2:         "f2",
	tcell.KeyF3:         "f3",
	tcell.KeyF4:         "f4",
	tcell.KeyF5:         "f5",
	tcell.KeyF6:         "f6",
	tcell.KeyF7:         "f7",
	tcell.KeyF8:         "f8",
	tcell.KeyF9:         "f9",
	tcell.KeyF10:        "f10",
	tcell.KeyF11:        "f11",
	tcell.KeyF12:        "f12",
}

func keySymbol(ev *tcell.EventKey) (thicket.Symbol, bool) {
	if ev.Key() != tcell.KeyRune {
		sym, ok := keySymbols[ev.Key()]
		return sym, ok
	}
	r := ev.Rune()
	if r == ' ' {
		return "space", true
	}
	if r > unicode.MaxASCII || !unicode.IsPrint(r) {
		return "", false
	}
	return thicket.Symbol(string(unicode.ToLower(r))), true
}
