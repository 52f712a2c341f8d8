package shape

// A Slot represents the half-open byte range [Start, End) occupied by an
// element in a packed layout.
type Slot struct {
	Start uintptr
	End   uintptr
}

// Len returns the number of bytes covered by the slot.
func (x Slot) Len() uintptr {
	return x.End - x.Start
}

// Intersect returns the intersection with the slot y. If the slots do not
// overlap, the second value returned by the method is false. Zero-length
// slots never overlap anything.
func (x Slot) Intersect(y Slot) (Slot, bool) {
	if x.Len() == 0 || y.Len() == 0 {
		return Slot{}, false
	}
	if x.Start <= y.Start {
		if x.End >= y.End {
			return y, true
		}
		if x.End > y.Start {
			return Slot{Start: y.Start, End: x.End}, true
		}
	} else if x.Start < y.End {
		if x.End >= y.End {
			return Slot{Start: x.Start, End: y.End}, true
		}
		return x, true
	}
	return Slot{}, false
}
