// Package thicket provides game-state and input helpers for [Ebitengine].
//
// A [Window] is the handle everything hangs off: it owns a stack of
// [GameState] values, the [InputQuery] used to read the keyboard and mouse,
// and the [Surface] the active state draws to. Window implements
// [ebiten.Game], so the simplest program is:
//
//	w := thicket.NewWindow(640, 480)
//	w.PushGameStateType(thicket.TypeOf[Menu](), thicket.StateOptions{})
//	thicket.Run(w, thicket.RunConfig{Title: "My Game"})
//
// # Input
//
// A state that implements [InputProvider] binds input symbols to actions.
// Each tick the window dispatches the bindings whose symbols are held:
//
//	func (p *Play) Input() thicket.InputConfig {
//		return thicket.InputConfig{
//			"escape": thicket.Method("Quit"),
//			"p":      thicket.StateOf(thicket.TypeOf[Pause]()),
//			"space":  thicket.Func(p.fire),
//		}
//	}
//
// [Method] calls a method on the state by name, [Func] calls a closure,
// [State] pushes a specific state value and [StateOf] pushes the single
// cached instance of a state type. Bindings can also be loaded from YAML
// with [LoadKeymap].
//
// # Game states
//
// [StateManager] keeps the stack and creates one instance per [StateType]
// on first push. States may implement [Setupper] and [Finalizer] to hear
// about becoming, and ceasing to be, the active state.
//
// # Drawing
//
// [Window.Fill] and [Window.FillRect] draw flat-colored quads on the
// window's surface. On the ebiten screen this is an [ImageSurface]; the
// term subpackage provides a tcell-backed surface.
//
// [Ebitengine]: https://ebitengine.org
package thicket
