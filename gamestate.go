package thicket

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNoState is returned by PopState when the stack is empty.
var ErrNoState = errors.New("thicket: no game state to pop")

// GameState is one mode of the game (menu, level, pause screen). The
// active state is the top of the window's state stack.
type GameState interface {
	Update(w *Window) error
	Draw(w *Window)
}

// Setupper is implemented by states that want a callback when they become
// the active state.
type Setupper interface {
	Setup()
}

// Finalizer is implemented by states that want a callback when they stop
// being the active state.
type Finalizer interface {
	Finalize()
}

// InputProvider is implemented by states that bind input symbols to actions.
// The window dispatches the active state's config once per tick.
type InputProvider interface {
	Input() InputConfig
}

// StateOptions adjust a single push or pop. The zero value runs all
// lifecycle hooks.
type StateOptions struct {
	NoSetup    bool // don't call Setup on the state becoming active
	NoFinalize bool // don't call Finalize on the state being left
}

// StateType identifies a game state type. Pushing a StateType pushes the
// manager's single cached instance of it.
type StateType struct {
	typ    reflect.Type
	create func() GameState
}

// TypeOf returns the StateType for *T. Instances are created with new(T).
func TypeOf[T any, P interface {
	*T
	GameState
}]() StateType {
	return StateType{
		typ:    reflect.TypeFor[T](),
		create: func() GameState { return P(new(T)) },
	}
}

// NewStateType returns the StateType for *T, using create to build the
// cached instance.
func NewStateType[T any, P interface {
	*T
	GameState
}](create func() P) StateType {
	return StateType{
		typ:    reflect.TypeFor[T](),
		create: func() GameState { return create() },
	}
}

// String returns the type's name.
func (t StateType) String() string {
	if t.typ == nil {
		return "<nil>"
	}
	return t.typ.String()
}

// StateStack is the game-state manager contract used by Window.
type StateStack interface {
	PushState(s GameState, opts StateOptions) error
	PushStateType(t StateType, opts StateOptions) error
	PopState(opts StateOptions) error
	CurrentState() GameState
	PreviousState() GameState
	ClearStates()
}

// StateManager is a stack of game states with a per-type instance cache.
type StateManager struct {
	stack []GameState
	cache map[reflect.Type]GameState
	debug bool
}

// NewStateManager creates an empty manager.
func NewStateManager() *StateManager {
	return &StateManager{cache: make(map[reflect.Type]GameState)}
}

// SetDebugMode enables or disables transition logging to stderr.
func (m *StateManager) SetDebugMode(enabled bool) {
	m.debug = enabled
}

// PushState finalizes the current state, then sets up and pushes s.
func (m *StateManager) PushState(s GameState, opts StateOptions) error {
	if s == nil {
		return errors.New("thicket: push nil game state")
	}
	if cur := m.CurrentState(); cur != nil && !opts.NoFinalize {
		if f, ok := cur.(Finalizer); ok {
			f.Finalize()
		}
	}
	if !opts.NoSetup {
		if su, ok := s.(Setupper); ok {
			su.Setup()
		}
	}
	m.stack = append(m.stack, s)
	m.debugf("push %T (depth %d)", s, len(m.stack))
	return nil
}

// PushStateType pushes the cached instance of t, creating it on first use.
func (m *StateManager) PushStateType(t StateType, opts StateOptions) error {
	s, err := m.instance(t)
	if err != nil {
		return err
	}
	return m.PushState(s, opts)
}

// Instance returns the cached instance of t without pushing it.
func (m *StateManager) Instance(t StateType) (GameState, error) {
	return m.instance(t)
}

func (m *StateManager) instance(t StateType) (GameState, error) {
	if t.typ == nil || t.create == nil {
		return nil, errors.New("thicket: push zero StateType")
	}
	if m.cache == nil {
		m.cache = make(map[reflect.Type]GameState)
	}
	if s, ok := m.cache[t.typ]; ok {
		return s, nil
	}
	s := t.create()
	if s == nil {
		return nil, fmt.Errorf("thicket: %s constructor returned nil", t)
	}
	m.cache[t.typ] = s
	m.debugf("created %s", t)
	return s, nil
}

// PopState finalizes and removes the current state, then sets up the one
// beneath it.
func (m *StateManager) PopState(opts StateOptions) error {
	n := len(m.stack)
	if n == 0 {
		return ErrNoState
	}
	top := m.stack[n-1]
	if !opts.NoFinalize {
		if f, ok := top.(Finalizer); ok {
			f.Finalize()
		}
	}
	m.stack[n-1] = nil
	m.stack = m.stack[:n-1]
	m.debugf("pop %T (depth %d)", top, len(m.stack))

	if cur := m.CurrentState(); cur != nil && !opts.NoSetup {
		if su, ok := cur.(Setupper); ok {
			su.Setup()
		}
	}
	return nil
}

// CurrentState returns the top of the stack, or nil.
func (m *StateManager) CurrentState() GameState {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}

// PreviousState returns the state directly below the top, or nil.
func (m *StateManager) PreviousState() GameState {
	if len(m.stack) < 2 {
		return nil
	}
	return m.stack[len(m.stack)-2]
}

// ClearStates empties the stack without running lifecycle hooks. Cached
// instances are kept.
func (m *StateManager) ClearStates() {
	clear(m.stack)
	m.stack = m.stack[:0]
	m.debugf("clear")
}

// Len returns the stack depth.
func (m *StateManager) Len() int {
	return len(m.stack)
}

// ResetCache drops every cached state instance. The next push of a
// StateType constructs a fresh one.
func (m *StateManager) ResetCache() {
	clear(m.cache)
}

// Close clears the stack and the instance cache.
func (m *StateManager) Close() {
	m.ClearStates()
	m.ResetCache()
}

func (m *StateManager) debugf(format string, args ...any) {
	if !m.debug {
		return
	}
	logf(format, args...)
}
