package list

import (
	"github.com/geofduf/hetseq/shape"
)

// A Cursor is a position in a List together with the direction of travel.
// Cursors are values: Next and Prev return new cursors and leave their
// receiver untouched. A cursor is only valid until the next Push or Close on
// the list it was created from.
type Cursor struct {
	s       *state
	version int
	reverse bool
	ahead   *node // current position and what is left in the direction of travel
	behind  *node // positions already passed, nearest first
	pos     int
}

// Value returns a copy of the value at the cursor.
func (c Cursor) Value() (any, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	v, _ := c.s.arena.load(c.ahead.slot)
	return v, nil
}

// ValueOf returns a pointer to the value at the cursor, which must be of
// type V.
func ValueOf[V any](c Cursor) (*V, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	return pointer[V](c.s, c.ahead.slot)
}

// Next returns the cursor moved one position in the direction of travel.
// Moving past the last value yields a cursor for which Done is true; moving
// a done cursor returns it unchanged.
func (c Cursor) Next() Cursor {
	if c.ahead == nil {
		return c
	}
	c.behind = c.behind.prepend(c.ahead.slot)
	c.ahead = c.ahead.next
	c.pos++
	return c
}

// Prev returns the cursor moved one position against the direction of
// travel. A cursor on the first position is returned unchanged.
func (c Cursor) Prev() Cursor {
	if c.behind == nil {
		return c
	}
	c.ahead = c.ahead.prepend(c.behind.slot)
	c.behind = c.behind.next
	c.pos--
	return c
}

// Done reports whether the cursor is past the last value.
func (c Cursor) Done() bool {
	return c.ahead == nil
}

// Index returns the ordinal position of the cursor in the direction of
// travel.
func (c Cursor) Index() int {
	return c.pos
}

// Reverse reports whether the cursor walks in reverse insertion order.
func (c Cursor) Reverse() bool {
	return c.reverse
}

// Ahead returns the shape of the values from the cursor, included, to the
// end in the direction of travel.
func (c Cursor) Ahead() shape.Shape {
	return c.walk(c.ahead)
}

// Behind returns the shape of the values already passed, nearest first.
func (c Cursor) Behind() shape.Shape {
	return c.walk(c.behind)
}

func (c Cursor) walk(n *node) shape.Shape {
	var s shape.Shape
	for ; n != nil; n = n.next {
		e, _ := c.s.shape.At(n.slot)
		s = s.Append(e.Type)
	}
	return s
}

func (c Cursor) check() error {
	switch {
	case c.s == nil:
		return ErrEmpty
	case c.s.released:
		return ErrReleased
	case c.version != c.s.version:
		return ErrStale
	case c.ahead == nil:
		return ErrEmpty
	}
	return nil
}
