package array

import (
	"reflect"
	"unsafe"

	"github.com/geofduf/hetseq/shape"
	"github.com/pkg/errors"
)

// An Array represents a heterogeneous sequence of plain-data values packed in
// a fixed-size byte buffer. Create arrays with New or Of.
type Array struct {
	b *buffer
}

// buffer is the storage shared by an array and its cursors.
type buffer struct {
	data    []byte
	shape   shape.Shape
	version int
}

// New creates an empty Array able to hold capacity bytes of values. A
// negative capacity is treated as 0.
func New(capacity int) *Array {
	if capacity < 0 {
		capacity = 0
	}
	return &Array{b: &buffer{data: make([]byte, capacity)}}
}

// Of creates an Array holding values, in order, whose capacity is exactly the
// sum of their sizes.
func Of(values ...any) (*Array, error) {
	var capacity uintptr
	for _, v := range values {
		if t := reflect.TypeOf(v); t != nil {
			capacity += t.Size()
		}
	}
	a := New(int(capacity))
	for i, v := range values {
		next, err := a.Push(v)
		if err != nil {
			return nil, errors.Wrapf(err, "value %d", i)
		}
		a = next
	}
	return a, nil
}

// Push copies the bytes of v at the end of the packed values and returns the
// array holding it. On success the receiver is consumed and must not be used
// again. On error the receiver is left untouched.
func (a *Array) Push(v any) (*Array, error) {
	b := a.live()
	t := reflect.TypeOf(v)
	switch {
	case t == nil:
		return nil, errors.Wrap(ErrNotPlainData, "untyped nil")
	case shape.IsEmpty(v):
		return nil, ErrEmptyMarker
	case !isPlain(t):
		return nil, errors.Wrapf(ErrNotPlainData, "%s", t)
	}
	free := b.free()
	want := shape.Slot{Start: free.Start, End: free.Start + t.Size()}
	if got, _ := free.Intersect(want); got.Len() < want.Len() {
		return nil, errors.Wrapf(ErrCapacity, "%s needs %d bytes, %d left", t, want.Len(), free.Len())
	}
	copy(b.data[want.Start:want.End], encode(v))
	b.shape = b.shape.Append(t)
	b.version++
	a.b = nil
	return &Array{b: b}, nil
}

// MustPush is like Push but panics if v cannot be pushed.
func (a *Array) MustPush(v any) *Array {
	next, err := a.Push(v)
	if err != nil {
		panic(err)
	}
	return next
}

// Len returns the number of values in the array.
func (a *Array) Len() int {
	return a.live().shape.Len()
}

// IsEmpty reports whether the array holds no value.
func (a *Array) IsEmpty() bool {
	return a.live().shape.IsEmpty()
}

// Cap returns the capacity of the array in bytes.
func (a *Array) Cap() int {
	return len(a.live().data)
}

// Size returns the number of bytes used by the packed values.
func (a *Array) Size() int {
	return int(a.live().shape.Size())
}

// Shape returns the element types of the array in insertion order.
func (a *Array) Shape() shape.Shape {
	return a.live().shape
}

// Bytes returns a copy of the packed values.
func (a *Array) Bytes() []byte {
	b := a.live()
	x := make([]byte, b.shape.Size())
	copy(x, b.data)
	return x
}

// Values returns a copy of every value in insertion order.
func (a *Array) Values() []any {
	b := a.live()
	values := make([]any, b.shape.Len())
	for k := range values {
		values[k] = b.load(k)
	}
	return values
}

// Forward returns a cursor on the first value, walking in insertion order.
func (a *Array) Forward() Cursor {
	b := a.live()
	return Cursor{b: b, version: b.version}
}

// Backward returns a cursor on the last value, walking in reverse order.
func (a *Array) Backward() Cursor {
	b := a.live()
	return Cursor{b: b, version: b.version, reverse: true}
}

// Index returns a copy of the value at position k, counted from 0 in
// insertion order. It returns shape.Empty{} if there is no such position.
func (a *Array) Index(k int) any {
	b := a.live()
	if k < 0 || k >= b.shape.Len() {
		return shape.Empty{}
	}
	return b.load(k)
}

// At returns a copy of the value at position k, which must be of type V.
// Values are packed without alignment, so At never returns pointers into
// the buffer.
func At[V any](a *Array, k int) (V, error) {
	b := a.live()
	if k < 0 || k >= b.shape.Len() {
		var zero V
		return zero, errors.Wrapf(ErrOutOfRange, "index %d, length %d", k, b.shape.Len())
	}
	return load[V](b, k)
}

// live returns the buffer of a, panicking if a was consumed.
func (a *Array) live() *buffer {
	if a == nil || a.b == nil {
		panic(ErrMoved)
	}
	return a.b
}

// load returns a copy of the value at position k.
func (b *buffer) load(k int) any {
	e, _ := b.shape.At(k)
	s := e.Slot()
	return decode(e.Type, b.data[s.Start:s.End])
}

// free returns the unused tail of the buffer.
func (b *buffer) free() shape.Slot {
	return shape.Slot{Start: b.shape.Size(), End: uintptr(len(b.data))}
}

// load returns a copy of the value at position k as a V.
func load[V any](b *buffer, k int) (V, error) {
	var v V
	e, _ := b.shape.At(k)
	if want := reflect.TypeOf(&v).Elem(); e.Type != want {
		return v, errors.Wrapf(ErrTypeMismatch, "element %d is %s, not %s", k, e.Type, want)
	}
	s := e.Slot()
	copy(bytesOf(unsafe.Pointer(&v), e.Size), b.data[s.Start:s.End])
	return v, nil
}
