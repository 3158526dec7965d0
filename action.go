package thicket

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNoMethod is returned when a Method action names a method the target
// does not have, or one that cannot be called without arguments.
var ErrNoMethod = errors.New("thicket: no such method")

// ActionKind identifies which variant an Action holds.
type ActionKind uint8

const (
	ActionNone      ActionKind = iota // zero value; dispatch ignores it
	ActionMethod                      // call a named method on the target
	ActionFunc                        // call a closure
	ActionState                       // push a constructed game state
	ActionStateType                   // push a cached instance of a state type
)

// Action describes what happens when an input symbol fires. Build one with
// Method, Func, State or StateOf. The zero Action does nothing.
type Action struct {
	kind      ActionKind
	method    string
	fn        func()
	state     GameState
	stateType StateType
}

// Method returns an action that calls the exported, argument-less method
// name on the dispatch target. The method may return nothing or an error.
func Method(name string) Action {
	return Action{kind: ActionMethod, method: name}
}

// Func returns an action that calls fn. The dispatch target is not passed.
func Func(fn func()) Action {
	if fn == nil {
		return Action{}
	}
	return Action{kind: ActionFunc, fn: fn}
}

// State returns an action that pushes s. Every dispatch pushes the same value.
func State(s GameState) Action {
	if s == nil {
		return Action{}
	}
	return Action{kind: ActionState, state: s}
}

// StateOf returns an action that pushes the state manager's cached instance
// of t, constructing it on first use.
func StateOf(t StateType) Action {
	if t.typ == nil {
		return Action{}
	}
	return Action{kind: ActionStateType, stateType: t}
}

// Kind reports the action's variant.
func (a Action) Kind() ActionKind { return a.kind }

// String describes the action for debug output.
func (a Action) String() string {
	switch a.kind {
	case ActionMethod:
		return "method " + a.method
	case ActionFunc:
		return "func"
	case ActionState:
		return fmt.Sprintf("state %T", a.state)
	case ActionStateType:
		return "state type " + a.stateType.String()
	default:
		return "none"
	}
}

// DispatchAction performs a against target. Exactly one of a method call, a
// callback, or a state push happens; an Action of unknown kind is ignored.
// Errors from the method or the state stack are returned unmodified.
func (w *Window) DispatchAction(target any, a Action) error {
	switch a.kind {
	case ActionMethod:
		return callMethod(target, a.method)
	case ActionFunc:
		a.fn()
		return nil
	case ActionState:
		return w.PushGameState(a.state, StateOptions{})
	case ActionStateType:
		return w.PushGameStateType(a.stateType, StateOptions{})
	}
	return nil
}

var errorType = reflect.TypeFor[error]()

// callMethod invokes target.name(). The method must take no arguments and
// return either nothing or a single error.
func callMethod(target any, name string) error {
	if target == nil {
		return fmt.Errorf("%w: %q on nil target", ErrNoMethod, name)
	}
	m := reflect.ValueOf(target).MethodByName(name)
	if !m.IsValid() {
		return fmt.Errorf("%w: %T has no method %q", ErrNoMethod, target, name)
	}
	mt := m.Type()
	if mt.NumIn() != 0 || mt.IsVariadic() {
		return fmt.Errorf("%w: %T.%s takes arguments", ErrNoMethod, target, name)
	}
	switch {
	case mt.NumOut() == 0:
		m.Call(nil)
		return nil
	case mt.NumOut() == 1 && mt.Out(0) == errorType:
		out := m.Call(nil)
		if err, _ := out[0].Interface().(error); err != nil {
			return err
		}
		return nil
	}
	return fmt.Errorf("%w: %T.%s must return nothing or an error", ErrNoMethod, target, name)
}
