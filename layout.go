package kdtools

// Midpos returns the median position of the half-open range [first, last).
func Midpos(first, last int) int {
	return first + (last-first)/2
}

// FindPivot locates the discriminator position within a range already k-d
// sorted at axis, without touching any element: it is the first position in
// [first, midpos) whose axis value is not less than the value held at
// midpos, i.e. the leftmost element tied with the pivot on this axis.
func FindPivot[T Number](s Sequence[T], axis, first, last int) int {
	mid := Midpos(first, last)
	pivot := s.Axis(mid, axis)
	// partition_point over [first, mid) using less_on_axis(axis)(., pivot)
	lo, hi := first, mid
	for lo < hi {
		mp := lo + (hi-lo)/2
		if s.Axis(mp, axis) < pivot {
			lo = mp + 1
		} else {
			hi = mp
		}
	}
	return lo
}
