package array

import (
	"github.com/geofduf/hetseq/shape"
)

// A Cursor is a position in an Array together with the direction of travel.
// Cursors are values: Next and Prev return new cursors. A cursor is only
// valid until the next Push on the array it was created from.
type Cursor struct {
	b       *buffer
	version int
	reverse bool
	pos     int // ordinal position in the direction of travel
}

// Value returns a copy of the value at the cursor.
func (c Cursor) Value() (any, error) {
	k, err := c.check()
	if err != nil {
		return nil, err
	}
	return c.b.load(k), nil
}

// ValueOf returns a copy of the value at the cursor, which must be of type V.
func ValueOf[V any](c Cursor) (V, error) {
	k, err := c.check()
	if err != nil {
		var zero V
		return zero, err
	}
	return load[V](c.b, k)
}

// Next returns the cursor moved one position in the direction of travel.
// Moving past the last value yields a cursor for which Done is true; moving
// a done cursor returns it unchanged.
func (c Cursor) Next() Cursor {
	if !c.Done() {
		c.pos++
	}
	return c
}

// Prev returns the cursor moved one position against the direction of
// travel. A cursor on the first position in its direction is returned
// unchanged: Backward().Prev() stays on the last value and never wraps to
// the front of the buffer.
func (c Cursor) Prev() Cursor {
	if c.pos > 0 {
		c.pos--
	}
	return c
}

// Done reports whether the cursor is past the last value.
func (c Cursor) Done() bool {
	return c.b == nil || c.pos >= c.b.shape.Len()
}

// Reverse reports whether the cursor walks in reverse insertion order.
func (c Cursor) Reverse() bool {
	return c.reverse
}

// Index returns the byte offset of the cursor counted in the direction of
// travel: from the start of the buffer for forward cursors, from the end of
// the packed values for backward cursors. A done cursor reports the packed
// size. Use Offset for the position of the value in the buffer regardless of
// direction.
func (c Cursor) Index() int {
	if c.b == nil {
		return 0
	}
	k := c.position()
	var offset uintptr
	var ok bool
	if c.reverse {
		offset, ok = c.b.shape.BackOffset(k)
	} else {
		offset, ok = c.b.shape.Offset(k)
	}
	if !ok {
		return int(c.b.shape.Size())
	}
	return int(offset)
}

// Offset returns the offset in bytes of the value at the cursor from the
// start of the buffer, whatever the direction of travel. A done cursor
// reports the packed size.
func (c Cursor) Offset() int {
	if c.b == nil {
		return 0
	}
	offset, ok := c.b.shape.Offset(c.position())
	if !ok {
		return int(c.b.shape.Size())
	}
	return int(offset)
}

// Ahead returns the shape of the values from the cursor, included, to the
// end in the direction of travel.
func (c Cursor) Ahead() shape.Shape {
	if c.b == nil {
		return shape.Shape{}
	}
	n := c.b.shape.Len()
	if c.reverse {
		return c.b.shape.Slice(0, n-c.pos).Reverse()
	}
	return c.b.shape.Slice(c.pos, n)
}

// Behind returns the shape of the values already passed, nearest first.
func (c Cursor) Behind() shape.Shape {
	if c.b == nil {
		return shape.Shape{}
	}
	n := c.b.shape.Len()
	if c.reverse {
		return c.b.shape.Slice(n-c.pos, n)
	}
	return c.b.shape.Slice(0, c.pos).Reverse()
}

// position returns the insertion-order position of the cursor.
func (c Cursor) position() int {
	if c.reverse {
		return c.b.shape.Len() - 1 - c.pos
	}
	return c.pos
}

func (c Cursor) check() (int, error) {
	switch {
	case c.b == nil:
		return 0, ErrEmpty
	case c.version != c.b.version:
		return 0, ErrStale
	case c.Done():
		return 0, ErrEmpty
	}
	return c.position(), nil
}
