package list

import (
	"io"
	"reflect"

	"github.com/pkg/errors"
)

// Releaser is implemented by values that hold resources which must be given
// back when the list is closed.
type Releaser interface {
	Release()
}

// arena owns every value pushed onto a list. Cells are indexed by insertion
// order and each holds a pointer to a separate heap allocation.
type arena struct {
	cells []reflect.Value // *V, or the zero Value once freed
}

// alloc copies v into a new heap allocation and returns its slot.
func (a *arena) alloc(v any) int {
	p := reflect.New(reflect.TypeOf(v))
	p.Elem().Set(reflect.ValueOf(v))
	a.cells = append(a.cells, p)
	return len(a.cells) - 1
}

// ptr returns the pointer held in slot, or false if it was freed.
func (a *arena) ptr(slot int) (reflect.Value, bool) {
	p := a.cells[slot]
	return p, p.IsValid()
}

// load returns a copy of the value held in slot.
func (a *arena) load(slot int) (any, bool) {
	p, ok := a.ptr(slot)
	if !ok {
		return nil, false
	}
	return p.Elem().Interface(), true
}

// free releases the value held in slot and drops the arena's reference to
// it. Freeing a slot twice is an error.
func (a *arena) free(slot int) error {
	p, ok := a.ptr(slot)
	if !ok {
		return errors.Wrapf(ErrReleased, "slot %d freed twice", slot)
	}
	a.cells[slot] = reflect.Value{}
	return release(p)
}

// release invokes the release hook of the value pointed to by p, trying the
// value's own method set before the pointer's. Nil values have nothing to
// release.
func release(p reflect.Value) error {
	if v := p.Elem(); isNil(v) {
		return nil
	}
	for _, x := range []any{p.Elem().Interface(), p.Interface()} {
		switch r := x.(type) {
		case Releaser:
			r.Release()
			return nil
		case io.Closer:
			return r.Close()
		}
	}
	return nil
}

func isNil(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
