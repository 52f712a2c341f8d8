package list

import "github.com/pkg/errors"

var (
	// ErrMoved is returned or raised when a List is used after a call to Push
	// or Close consumed it.
	ErrMoved = errors.New("list: use of moved list")

	// ErrReleased is returned by cursors bound to a list that has been closed.
	ErrReleased = errors.New("list: released")

	// ErrStale is returned by cursors created before a subsequent Push.
	ErrStale = errors.New("list: stale cursor")

	// ErrEmpty is returned when reading a cursor that points past the end.
	ErrEmpty = errors.New("list: no element at cursor")

	// ErrOutOfRange is returned by At for positions outside the list.
	ErrOutOfRange = errors.New("list: index out of range")

	// ErrTypeMismatch is returned when a typed access names the wrong type.
	ErrTypeMismatch = errors.New("list: type mismatch")

	// ErrEmptyMarker is raised when pushing the shape.Empty marker.
	ErrEmptyMarker = errors.New("list: cannot push the empty marker")

	// ErrUntypedNil is raised when pushing an untyped nil.
	ErrUntypedNil = errors.New("list: cannot push untyped nil")
)
