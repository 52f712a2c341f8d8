package shape

// Empty marks the end of a sequence. It is returned by positional access
// past the last element and is never accepted as an element itself.
type Empty struct{}

// String implements fmt.Stringer.
func (Empty) String() string {
	return "Empty"
}

// IsEmpty reports whether v is the Empty marker.
func IsEmpty(v any) bool {
	_, ok := v.(Empty)
	return ok
}
