package list

import (
	"reflect"

	"github.com/geofduf/hetseq/shape"
	"github.com/pkg/errors"
)

// A List represents a heterogeneous sequence of heap-allocated values. The
// zero value is not usable; create lists with New or Of.
type List struct {
	s *state
}

// state is the storage shared by a list and its cursors. It moves from list
// to list on every Push, so at most one List refers to it at a time.
type state struct {
	arena    arena
	forward  *node // insertion order, never releases
	backward *node // reverse order, owns the teardown
	shape    shape.Shape
	version  int
	released bool
}

// New creates an empty List.
func New() *List {
	return &List{s: new(state)}
}

// Of creates a List holding values, in order. It is equivalent to calling
// Push on an empty list once per value.
func Of(values ...any) *List {
	l := New()
	for _, v := range values {
		l = l.Push(v)
	}
	return l
}

// Push adds a copy of v at the end of the list and returns the list holding
// it. The receiver is consumed and must not be used again.
//
// Push panics if v is an untyped nil or the shape.Empty marker.
func (l *List) Push(v any) *List {
	t := reflect.TypeOf(v)
	if t == nil {
		panic(ErrUntypedNil)
	}
	if shape.IsEmpty(v) {
		panic(ErrEmptyMarker)
	}
	s := l.take()
	slot := s.arena.alloc(v)
	s.forward = s.forward.append(slot)
	s.backward = s.backward.prepend(slot)
	s.shape = s.shape.Append(t)
	s.version++
	return &List{s: s}
}

// Len returns the number of values in the list.
func (l *List) Len() int {
	return l.live().shape.Len()
}

// IsEmpty reports whether the list holds no value.
func (l *List) IsEmpty() bool {
	return l.live().shape.IsEmpty()
}

// Shape returns the element types of the list in insertion order.
func (l *List) Shape() shape.Shape {
	return l.live().shape
}

// Values returns a copy of every value in insertion order.
func (l *List) Values() []any {
	s := l.live()
	values := make([]any, 0, s.shape.Len())
	for n := s.forward; n != nil; n = n.next {
		v, _ := s.arena.load(n.slot)
		values = append(values, v)
	}
	return values
}

// Forward returns a cursor on the first value, walking in insertion order.
func (l *List) Forward() Cursor {
	s := l.live()
	return Cursor{s: s, version: s.version, ahead: s.forward}
}

// Backward returns a cursor on the last value, walking in reverse order.
func (l *List) Backward() Cursor {
	s := l.live()
	return Cursor{s: s, version: s.version, ahead: s.backward, reverse: true}
}

// Index returns a copy of the value at position k, counted from 0 in
// insertion order. It returns shape.Empty{} if there is no such position.
func (l *List) Index(k int) any {
	s := l.live()
	if k < 0 {
		return shape.Empty{}
	}
	n := s.forward.index(k)
	if n == nil {
		return shape.Empty{}
	}
	v, _ := s.arena.load(n.slot)
	return v
}

// At returns a pointer to the value at position k, which must be of type V.
// The pointer stays valid until the list is closed.
func At[V any](l *List, k int) (*V, error) {
	s := l.live()
	if k < 0 || k >= s.shape.Len() {
		return nil, errors.Wrapf(ErrOutOfRange, "index %d, length %d", k, s.shape.Len())
	}
	return pointer[V](s, s.forward.index(k).slot)
}

// Close releases every value of the list, most recent first, and consumes
// the list. It returns the combined errors of the values' Close methods.
// Calling Close on a consumed list returns ErrMoved.
func (l *List) Close() error {
	if l == nil || l.s == nil {
		return ErrMoved
	}
	s := l.take()
	root := s.backward
	s.backward = nil
	s.released = true
	return root.release(&s.arena)
}

// take consumes l and returns its state.
func (l *List) take() *state {
	s := l.live()
	l.s = nil
	return s
}

// live returns the state of l, panicking if l was consumed.
func (l *List) live() *state {
	if l == nil || l.s == nil {
		panic(ErrMoved)
	}
	return l.s
}

// pointer returns the pointer held in slot as a *V.
func pointer[V any](s *state, slot int) (*V, error) {
	e, _ := s.shape.At(slot)
	if want := reflect.TypeOf((*V)(nil)).Elem(); e.Type != want {
		return nil, errors.Wrapf(ErrTypeMismatch, "element %d is %s, not %s", slot, e.Type, want)
	}
	p, ok := s.arena.ptr(slot)
	if !ok {
		return nil, ErrReleased
	}
	return p.Interface().(*V), nil
}
