package thicket

import "errors"

// --- Shared fakes ---

// quad records one DrawQuad call.
type quad struct {
	xs, ys [4]float64
	cs     [4]Color
	z      float64
	mode   BlendMode
}

type recordingSurface struct {
	w, h  int
	quads []quad
}

func (s *recordingSurface) Width() int  { return s.w }
func (s *recordingSurface) Height() int { return s.h }

func (s *recordingSurface) DrawQuad(x1, y1 float64, c1 Color,
	x2, y2 float64, c2 Color,
	x3, y3 float64, c3 Color,
	x4, y4 float64, c4 Color,
	z float64, mode BlendMode) {
	s.quads = append(s.quads, quad{
		xs:   [4]float64{x1, x2, x3, x4},
		ys:   [4]float64{y1, y2, y3, y4},
		cs:   [4]Color{c1, c2, c3, c4},
		z:    z,
		mode: mode,
	})
}

// activeSet is an InputQuery over a fixed set of symbols that counts queries.
type activeSet struct {
	active  map[Symbol]bool
	queries map[Symbol]int
}

func newActiveSet(syms ...Symbol) *activeSet {
	a := &activeSet{active: make(map[Symbol]bool), queries: make(map[Symbol]int)}
	for _, s := range syms {
		a.active[s] = true
	}
	return a
}

func (a *activeSet) IsActive(sym Symbol) bool {
	a.queries[sym]++
	return a.active[sym]
}

// player is a dispatch target with a few method shapes.
type player struct {
	paused  int
	jumped  int
	failErr error
}

func (p *player) Pause()               { p.paused++ }
func (p *player) Jump() error          { p.jumped++; return nil }
func (p *player) Fail() error          { return p.failErr }
func (p *player) Move(dx int)          {}
func (p *player) Score() int           { return 0 }
func (p *player) Update(*Window) error { return nil }
func (p *player) Draw(*Window)         {}

var errBoom = errors.New("boom")

// menuState counts constructions and lifecycle calls.
type menuState struct {
	setups, finalizes int
	updates           int
	bindings          InputConfig
}

var menuCreated int

func newMenuState() *menuState {
	menuCreated++
	return &menuState{}
}

func (m *menuState) Update(*Window) error { m.updates++; return nil }
func (m *menuState) Draw(*Window)         {}
func (m *menuState) Setup()               { m.setups++ }
func (m *menuState) Finalize()            { m.finalizes++ }
func (m *menuState) Input() InputConfig   { return m.bindings }

// plainState has no lifecycle hooks.
type plainState struct {
	drawn int
}

func (p *plainState) Update(*Window) error { return nil }
func (p *plainState) Draw(*Window)         { p.drawn++ }

// newTestWindow returns a window with a synthetic-only keyboard.
func newTestWindow() *Window {
	w := NewWindow(320, 240)
	w.keyboard.keyDown = nil
	w.keyboard.mouseDown = nil
	return w
}
