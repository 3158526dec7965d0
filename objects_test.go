package thicket

import "testing"

type enemy interface {
	GameObject
	Hit()
}

type bat struct{ hits int }

func (b *bat) Update(*Window) error { return nil }
func (b *bat) Draw(*Window)         {}
func (b *bat) Hit()                 { b.hits++ }

// bossBat is a bat with extra behavior; it satisfies enemy through the
// embedded *bat.
type bossBat struct {
	*bat
	phase int
}

type coin struct{}

func (c *coin) Update(*Window) error { return nil }
func (c *coin) Draw(*Window)         {}

func TestObjectsOfType_Interface(t *testing.T) {
	b1, boss, b2 := &bat{}, &bossBat{bat: &bat{}}, &bat{}
	objs := []GameObject{b1, &coin{}, boss, &coin{}, b2}

	got := ObjectsOfType[enemy](objs)
	want := []enemy{b1, boss, b2}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %T, want %T", i, got[i], want[i])
		}
	}
}

func TestObjectsOfType_Concrete(t *testing.T) {
	b1, b2 := &bat{}, &bat{}
	objs := []GameObject{&coin{}, b1, &bossBat{bat: &bat{}}, b2}

	got := ObjectsOfType[*bat](objs)
	if len(got) != 2 || got[0] != b1 || got[1] != b2 {
		t.Errorf("got %v, want [b1 b2]", got)
	}
}

func TestObjectsOfType_NoMatch(t *testing.T) {
	objs := []GameObject{&bat{}, &bat{}}
	if got := ObjectsOfType[*coin](objs); len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
	if got := ObjectsOfType[*coin](nil); len(got) != 0 {
		t.Errorf("len = %d, want 0 for nil input", len(got))
	}
}

func TestObjectsOfType_DoesNotMutate(t *testing.T) {
	c, b := &coin{}, &bat{}
	objs := []GameObject{c, b}
	_ = ObjectsOfType[*bat](objs)
	if objs[0] != c || objs[1] != b || len(objs) != 2 {
		t.Error("input slice was modified")
	}
}

func TestBaseState(t *testing.T) {
	var s BaseState
	b, c := &bat{}, &coin{}
	s.Add(b, c)

	if len(s.GameObjects()) != 2 {
		t.Fatalf("objects = %d, want 2", len(s.GameObjects()))
	}
	if got := ObjectsOfType[enemy](s.GameObjects()); len(got) != 1 || got[0] != b {
		t.Errorf("enemies = %v, want [b]", got)
	}

	if !s.Remove(b) {
		t.Error("Remove should find b")
	}
	if s.Remove(b) {
		t.Error("second Remove should report false")
	}
	if len(s.GameObjects()) != 1 || s.GameObjects()[0] != c {
		t.Error("only c should remain")
	}
	if err := s.Update(nil); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

// trail is a value object with a slice field, so it is not comparable.
type trail struct {
	points []float64
}

func (t trail) Update(*Window) error { return nil }
func (t trail) Draw(*Window)         {}

func TestBaseStateRemove_NotComparable(t *testing.T) {
	var s BaseState
	tr := trail{points: []float64{1, 2}}
	s.Add(tr, &coin{})

	if s.Remove(trail{points: []float64{1, 2}}) {
		t.Error("Remove should report false for a non-comparable object")
	}
	if len(s.GameObjects()) != 2 {
		t.Errorf("objects = %d, want 2", len(s.GameObjects()))
	}
}
