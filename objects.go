package thicket

import "reflect"

// GameObject is anything a game state updates and draws each frame.
type GameObject interface {
	Update(w *Window) error
	Draw(w *Window)
}

// ObjectsOfType returns the objects whose dynamic type is T, or that
// implement T when T is an interface, in their original order. objs is not
// modified. The result is nil when nothing matches.
func ObjectsOfType[T any](objs []GameObject) []T {
	var out []T
	for _, o := range objs {
		if v, ok := o.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

// BaseState is an embeddable GameState that owns a list of game objects.
// Update and Draw visit the objects in insertion order.
type BaseState struct {
	objects []GameObject
}

// Add appends objects to the state.
func (s *BaseState) Add(objs ...GameObject) {
	s.objects = append(s.objects, objs...)
}

// Remove deletes the first occurrence of o and reports whether it was found.
// Objects whose dynamic type is not comparable, such as struct values holding
// a slice, can never be found; add them as pointers to make them removable.
func (s *BaseState) Remove(o GameObject) bool {
	if t := reflect.TypeOf(o); t != nil && !t.Comparable() {
		return false
	}
	for i, cur := range s.objects {
		if cur == o {
			copy(s.objects[i:], s.objects[i+1:])
			s.objects[len(s.objects)-1] = nil
			s.objects = s.objects[:len(s.objects)-1]
			return true
		}
	}
	return false
}

// GameObjects returns the state's objects. The returned slice MUST NOT be mutated.
func (s *BaseState) GameObjects() []GameObject {
	return s.objects
}

// Update updates every object, stopping at the first error.
func (s *BaseState) Update(w *Window) error {
	for _, o := range s.objects {
		if err := o.Update(w); err != nil {
			return err
		}
	}
	return nil
}

// Draw draws every object.
func (s *BaseState) Draw(w *Window) {
	for _, o := range s.objects {
		o.Draw(w)
	}
}
