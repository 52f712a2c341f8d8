package shape

import (
	"reflect"
	"strings"
)

// An Elem describes one position of a Shape.
type Elem struct {
	Type   reflect.Type
	Size   uintptr
	Offset uintptr // from the start of the packed layout
}

// Slot returns the byte range occupied by the element.
func (e Elem) Slot() Slot {
	return Slot{Start: e.Offset, End: e.Offset + e.Size}
}

// A Shape represents the ordered element types of a sequence. The zero value
// is the empty shape.
type Shape struct {
	elems []Elem
	size  uintptr
}

// Of returns the Shape made of types, in order.
func Of(types ...reflect.Type) Shape {
	var s Shape
	for _, t := range types {
		s = s.Append(t)
	}
	return s
}

// Append returns a new Shape with t added at the end. The new element's
// offset is the packed size of s.
func (s Shape) Append(t reflect.Type) Shape {
	e := Elem{Type: t, Size: t.Size(), Offset: s.size}
	// The full slice expression forces a copy, so s is never aliased.
	return Shape{
		elems: append(s.elems[:len(s.elems):len(s.elems)], e),
		size:  s.size + e.Size,
	}
}

// Len returns the number of elements.
func (s Shape) Len() int {
	return len(s.elems)
}

// IsEmpty reports whether the shape has no elements.
func (s Shape) IsEmpty() bool {
	return len(s.elems) == 0
}

// Size returns the total packed size in bytes.
func (s Shape) Size() uintptr {
	return s.size
}

// At returns the element at position k. The second return value is false if
// k is out of range.
func (s Shape) At(k int) (Elem, bool) {
	if k < 0 || k >= len(s.elems) {
		return Elem{}, false
	}
	return s.elems[k], true
}

// Offset returns the number of bytes packed before the element at position k.
func (s Shape) Offset(k int) (uintptr, bool) {
	e, ok := s.At(k)
	return e.Offset, ok
}

// BackOffset returns the number of bytes packed after the element at
// position k, that is its offset counted from the back of the layout.
func (s Shape) BackOffset(k int) (uintptr, bool) {
	e, ok := s.At(k)
	if !ok {
		return 0, false
	}
	return s.size - e.Offset - e.Size, true
}

// Reverse returns the shape of the same elements in reverse order.
func (s Shape) Reverse() Shape {
	var r Shape
	for i := len(s.elems) - 1; i >= 0; i-- {
		r = r.Append(s.elems[i].Type)
	}
	return r
}

// Slice returns the shape of the elements in [i, j), with offsets counted
// from element i. Out of range bounds are clamped.
func (s Shape) Slice(i, j int) Shape {
	if i < 0 {
		i = 0
	}
	if j > len(s.elems) {
		j = len(s.elems)
	}
	var r Shape
	for ; i < j; i++ {
		r = r.Append(s.elems[i].Type)
	}
	return r
}

// Types returns the element types in order.
func (s Shape) Types() []reflect.Type {
	types := make([]reflect.Type, len(s.elems))
	for i, e := range s.elems {
		types[i] = e.Type
	}
	return types
}

// Equal reports whether s and x describe the same element types.
func (s Shape) Equal(x Shape) bool {
	if len(s.elems) != len(x.elems) {
		return false
	}
	for i := range s.elems {
		if s.elems[i].Type != x.elems[i].Type {
			return false
		}
	}
	return true
}

// String returns the element types between brackets, e.g. "[uint8 string]".
func (s Shape) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range s.elems {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(e.Type.String())
	}
	b.WriteByte(']')
	return b.String()
}
