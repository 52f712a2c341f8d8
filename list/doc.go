/*
Package list implements a heterogeneous, append-only sequence whose values are
individually allocated on the heap.

A List is built once, by chaining calls to Push:

	l := list.New().Push(uint8(1)).Push("two").Push(3.0).Push(true)
	defer l.Close()

Each call to Push consumes its receiver and returns the list that now owns
every value pushed so far. Using a consumed List panics with ErrMoved.

Values are reachable through two chains of nodes. The forward chain follows
insertion order and the backward chain follows reverse order. Both chains hold
slot indices into a single arena owned by the list, so a value is stored
exactly once whichever chain reaches it.

Close runs the teardown: it walks the backward chain only, most recent value
first, and releases every value exactly once. Values implementing Releaser or
io.Closer are released through that method. The forward chain never releases
anything.

A List is not safe for concurrent use.
*/
package list
