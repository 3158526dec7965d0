package thicket

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrQuit ends the game loop cleanly when returned from a state's Update or
// from a dispatched method. Run returns nil in that case.
var ErrQuit = ebiten.Termination

// Window is the context handle that game states and helpers operate on. It
// owns the state stack, the input query and the current drawing surface.
// Window implements ebiten.Game.
type Window struct {
	// ClearColor fills the screen before the active state draws when Clear
	// is set.
	ClearColor Color

	// Clear enables filling the screen with ClearColor each frame.
	// Otherwise the screen is left untouched.
	Clear bool

	// ShowFPS draws an FPS/TPS overlay on top of each frame.
	ShowFPS bool

	// ScreenshotDir is where Screenshot writes PNGs. Empty means
	// DefaultScreenshotDir.
	ScreenshotDir string

	width, height int

	states   StateStack
	input    InputQuery
	keyboard *Keyboard
	script   *InputScript
	surface  Surface
	screen   ImageSurface
	fps      fpsOverlay
	shots    []string
	debug    bool
}

// NewWindow creates a window with the given logical size, a fresh
// StateManager and ebiten keyboard input.
func NewWindow(width, height int) *Window {
	kb := NewKeyboard()
	return &Window{
		width:    width,
		height:   height,
		states:   NewStateManager(),
		input:    kb,
		keyboard: kb,
	}
}

// Size returns the window's logical size.
func (w *Window) Size() (int, int) {
	return w.width, w.height
}

// States returns the window's state stack.
func (w *Window) States() StateStack {
	return w.states
}

// SetStates replaces the window's state stack.
func (w *Window) SetStates(s StateStack) {
	w.states = s
}

// Input returns the query used to dispatch the active state's input.
func (w *Window) Input() InputQuery {
	return w.input
}

// SetInput replaces the input query. Input scripts only drive a *Keyboard.
func (w *Window) SetInput(q InputQuery) {
	w.input = q
	w.keyboard, _ = q.(*Keyboard)
}

// SetInputScript attaches a script that presses and releases keyboard
// symbols, one step per Update. Pass nil to detach.
func (w *Window) SetInputScript(s *InputScript) {
	w.script = s
}

// Surface returns the surface Fill and FillRect draw to, or nil.
func (w *Window) Surface() Surface {
	return w.surface
}

// SetSurface attaches a drawing surface. Draw replaces it with the ebiten
// screen each frame.
func (w *Window) SetSurface(s Surface) {
	w.surface = s
}

// --- Game-state facade ---

// PushGameState pushes s onto the state stack.
func (w *Window) PushGameState(s GameState, opts StateOptions) error {
	return w.states.PushState(s, opts)
}

// PushGameStateType pushes the cached instance of t onto the state stack.
func (w *Window) PushGameStateType(t StateType, opts StateOptions) error {
	return w.states.PushStateType(t, opts)
}

// PopGameState removes the active state.
func (w *Window) PopGameState(opts StateOptions) error {
	return w.states.PopState(opts)
}

// CurrentGameState returns the active state, or nil.
func (w *Window) CurrentGameState() GameState {
	return w.states.CurrentState()
}

// PreviousGameState returns the state below the active one, or nil.
func (w *Window) PreviousGameState() GameState {
	return w.states.PreviousState()
}

// ClearGameStates empties the state stack.
func (w *Window) ClearGameStates() {
	w.states.ClearStates()
}

// --- ebiten.Game ---

// Update advances the input script, dispatches the active state's input
// config and then updates whichever state is active afterwards.
func (w *Window) Update() error {
	if w.script != nil {
		w.script.Step(w)
	}

	cur := w.CurrentGameState()
	if cur == nil {
		return nil
	}
	if ip, ok := cur.(InputProvider); ok {
		if err := w.DispatchInput(ip.Input(), cur, w.input); err != nil {
			return err
		}
		// Dispatch may have pushed or popped.
		if cur = w.CurrentGameState(); cur == nil {
			return nil
		}
	}
	return cur.Update(w)
}

// Draw attaches screen as the window surface and draws the active state.
func (w *Window) Draw(screen *ebiten.Image) {
	w.screen.img = screen
	w.clearScreen(screen)
	w.DrawTo(&w.screen)
	if w.ShowFPS {
		w.fps.draw(screen)
	}
	w.flushScreenshots(screen)
}

// filler is the part of *ebiten.Image that clearScreen needs.
type filler interface {
	Fill(clr color.Color)
}

func (w *Window) clearScreen(screen filler) {
	if w.Clear {
		screen.Fill(w.ClearColor.RGBA())
	}
}

// DrawTo attaches s as the window surface and draws the active state on it.
func (w *Window) DrawTo(s Surface) {
	w.surface = s
	if cur := w.CurrentGameState(); cur != nil {
		cur.Draw(w)
	}
}

// Layout returns the window's fixed logical size.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.width, w.height
}
