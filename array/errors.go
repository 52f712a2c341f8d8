package array

import "github.com/pkg/errors"

var (
	// ErrCapacity is returned by Push when the value does not fit in the
	// remaining bytes of the buffer.
	ErrCapacity = errors.New("array: capacity exceeded")

	// ErrNotPlainData is returned by Push for types holding pointers.
	ErrNotPlainData = errors.New("array: not plain data")

	// ErrEmptyMarker is returned when pushing the shape.Empty marker.
	ErrEmptyMarker = errors.New("array: cannot push the empty marker")

	// ErrMoved is returned or raised when an Array is used after a call to
	// Push consumed it.
	ErrMoved = errors.New("array: use of moved array")

	// ErrStale is returned by cursors created before a subsequent Push.
	ErrStale = errors.New("array: stale cursor")

	// ErrEmpty is returned when reading a cursor that points past the end.
	ErrEmpty = errors.New("array: no element at cursor")

	// ErrOutOfRange is returned by At for positions outside the array.
	ErrOutOfRange = errors.New("array: index out of range")

	// ErrTypeMismatch is returned when a typed access names the wrong type.
	ErrTypeMismatch = errors.New("array: type mismatch")
)
