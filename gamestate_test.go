package thicket

import (
	"errors"
	"testing"
)

func TestStateManagerPushPop(t *testing.T) {
	m := NewStateManager()
	a, b := &menuState{}, &menuState{}

	if m.CurrentState() != nil || m.PreviousState() != nil {
		t.Fatal("empty manager should have no current or previous state")
	}

	if err := m.PushState(a, StateOptions{}); err != nil {
		t.Fatal(err)
	}
	if err := m.PushState(b, StateOptions{}); err != nil {
		t.Fatal(err)
	}
	if m.CurrentState() != b {
		t.Error("current should be b")
	}
	if m.PreviousState() != a {
		t.Error("previous should be a")
	}
	if a.setups != 1 || a.finalizes != 1 {
		t.Errorf("a setups/finalizes = %d/%d, want 1/1", a.setups, a.finalizes)
	}
	if b.setups != 1 || b.finalizes != 0 {
		t.Errorf("b setups/finalizes = %d/%d, want 1/0", b.setups, b.finalizes)
	}

	if err := m.PopState(StateOptions{}); err != nil {
		t.Fatal(err)
	}
	if m.CurrentState() != a {
		t.Error("current should be a after pop")
	}
	if b.finalizes != 1 {
		t.Errorf("b finalizes = %d, want 1", b.finalizes)
	}
	if a.setups != 2 {
		t.Errorf("a setups = %d, want 2 (revealed by pop)", a.setups)
	}
}

func TestStateManagerOptionsSkipHooks(t *testing.T) {
	m := NewStateManager()
	a, b := &menuState{}, &menuState{}

	_ = m.PushState(a, StateOptions{NoSetup: true})
	_ = m.PushState(b, StateOptions{NoSetup: true, NoFinalize: true})
	_ = m.PopState(StateOptions{NoSetup: true, NoFinalize: true})

	if a.setups != 0 || a.finalizes != 0 || b.setups != 0 || b.finalizes != 0 {
		t.Errorf("hooks ran: a=%d/%d b=%d/%d", a.setups, a.finalizes, b.setups, b.finalizes)
	}
}

func TestStateManagerPopEmpty(t *testing.T) {
	m := NewStateManager()
	if err := m.PopState(StateOptions{}); !errors.Is(err, ErrNoState) {
		t.Errorf("err = %v, want ErrNoState", err)
	}
}

func TestStateManagerPushNil(t *testing.T) {
	m := NewStateManager()
	if err := m.PushState(nil, StateOptions{}); err == nil {
		t.Error("expected error pushing nil state")
	}
	if err := m.PushStateType(StateType{}, StateOptions{}); err == nil {
		t.Error("expected error pushing zero StateType")
	}
	if m.Len() != 0 {
		t.Errorf("Len = %d, want 0", m.Len())
	}
}

func TestStateManagerTypeCache(t *testing.T) {
	m := NewStateManager()
	menuCreated = 0
	menu := NewStateType(newMenuState)

	for i := 0; i < 3; i++ {
		if err := m.PushStateType(menu, StateOptions{}); err != nil {
			t.Fatal(err)
		}
	}
	if menuCreated != 1 {
		t.Errorf("constructions = %d, want 1", menuCreated)
	}
	if m.Len() != 3 {
		t.Errorf("Len = %d, want 3", m.Len())
	}

	cached, err := m.Instance(menu)
	if err != nil {
		t.Fatal(err)
	}
	if cached != m.CurrentState() {
		t.Error("Instance should return the cached state")
	}

	m.ResetCache()
	if err := m.PushStateType(menu, StateOptions{}); err != nil {
		t.Fatal(err)
	}
	if menuCreated != 2 {
		t.Errorf("constructions after ResetCache = %d, want 2", menuCreated)
	}
	if m.CurrentState() == cached {
		t.Error("ResetCache should force a fresh instance")
	}
}

func TestStateManagerDistinctTypes(t *testing.T) {
	m := NewStateManager()
	_ = m.PushStateType(TypeOf[plainState](), StateOptions{})
	_ = m.PushStateType(TypeOf[menuState](), StateOptions{})

	if _, ok := m.CurrentState().(*menuState); !ok {
		t.Errorf("current = %T, want *menuState", m.CurrentState())
	}
	if _, ok := m.PreviousState().(*plainState); !ok {
		t.Errorf("previous = %T, want *plainState", m.PreviousState())
	}
}

func TestStateManagerClearAndClose(t *testing.T) {
	m := NewStateManager()
	a := &menuState{}
	_ = m.PushState(a, StateOptions{})
	_ = m.PushStateType(TypeOf[plainState](), StateOptions{})

	m.ClearStates()
	if m.Len() != 0 || m.CurrentState() != nil {
		t.Error("ClearStates should empty the stack")
	}
	if a.finalizes != 1 {
		t.Errorf("finalizes = %d, want 1 (only from the push over it)", a.finalizes)
	}
	if len(m.cache) != 1 {
		t.Errorf("cache size = %d, want 1 (ClearStates keeps the cache)", len(m.cache))
	}

	m.Close()
	if len(m.cache) != 0 {
		t.Errorf("cache size after Close = %d, want 0", len(m.cache))
	}
}

func TestStateManagerSetDebugMode(t *testing.T) {
	m := NewStateManager()
	m.SetDebugMode(true)
	if !m.debug {
		t.Error("debug should be true")
	}
	m.SetDebugMode(false)
	if m.debug {
		t.Error("debug should be false")
	}
}

// --- Window facade ---

// stackSpy records the calls a Window forwards to its StateStack.
type stackSpy struct {
	calls   []string
	opts    []StateOptions
	current GameState
	popErr  error
}

func (s *stackSpy) PushState(g GameState, o StateOptions) error {
	s.calls = append(s.calls, "push")
	s.opts = append(s.opts, o)
	return nil
}

func (s *stackSpy) PushStateType(t StateType, o StateOptions) error {
	s.calls = append(s.calls, "pushType "+t.String())
	s.opts = append(s.opts, o)
	return nil
}

func (s *stackSpy) PopState(o StateOptions) error {
	s.calls = append(s.calls, "pop")
	s.opts = append(s.opts, o)
	return s.popErr
}

func (s *stackSpy) CurrentState() GameState {
	s.calls = append(s.calls, "current")
	return s.current
}

func (s *stackSpy) PreviousState() GameState {
	s.calls = append(s.calls, "previous")
	return nil
}

func (s *stackSpy) ClearStates() {
	s.calls = append(s.calls, "clear")
}

func TestWindowFacadeForwards(t *testing.T) {
	w := newTestWindow()
	spy := &stackSpy{current: &plainState{}, popErr: errBoom}
	w.SetStates(spy)

	opts := StateOptions{NoFinalize: true}
	_ = w.PushGameState(&plainState{}, opts)
	_ = w.PushGameStateType(TypeOf[plainState](), opts)
	popErr := w.PopGameState(opts)
	cur := w.CurrentGameState()
	_ = w.PreviousGameState()
	w.ClearGameStates()

	want := []string{"push", "pushType thicket.plainState", "pop", "current", "previous", "clear"}
	if len(spy.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", spy.calls, want)
	}
	for i := range want {
		if spy.calls[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, spy.calls[i], want[i])
		}
	}
	for i, o := range spy.opts {
		if o != opts {
			t.Errorf("opts %d = %+v, want %+v", i, o, opts)
		}
	}
	if popErr != errBoom {
		t.Errorf("pop err = %v, want errBoom unmodified", popErr)
	}
	if cur != spy.current {
		t.Error("CurrentGameState should return the stack's value")
	}
}
