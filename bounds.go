package kdtools

// LowerBound returns the leftmost position p in [first, last) with
// NoneLess(s.At(p), v), or last if no such position exists. axis is the
// discriminator axis in effect at first; the range must already be k-d
// sorted starting at that axis.
func LowerBound[T Number](s Sequence[T], axis, first, last int, v Point[T]) int {
	if last-first <= 0 {
		return last
	}
	if last-first == 1 {
		if NoneLess(s.At(first), v) {
			return first
		}
		return last
	}
	p := FindPivot(s, axis, first, last)
	next := nextAxis(axis, s.Dims)
	switch {
	case NoneLess(s.At(p), v):
		return LowerBound(s, next, first, p, v)
	case AllLess(s.At(p), v):
		return LowerBound(s, next, p+1, last, v)
	default:
		if left := LowerBound(s, next, first, p, v); left != p {
			return left
		}
		if right := LowerBound(s, next, p+1, last, v); right != last {
			return right
		}
		return last
	}
}

// UpperBound returns the leftmost position p in [first, last) with
// AllLess(v, s.At(p)), or last if no such position exists.
func UpperBound[T Number](s Sequence[T], axis, first, last int, v Point[T]) int {
	if last-first <= 0 {
		return last
	}
	if last-first == 1 {
		if AllLess(v, s.At(first)) {
			return first
		}
		return last
	}
	p := FindPivot(s, axis, first, last)
	next := nextAxis(axis, s.Dims)
	switch {
	case AllLess(v, s.At(p)):
		return UpperBound(s, next, first, p, v)
	case NoneLess(v, s.At(p)):
		return UpperBound(s, next, p+1, last, v)
	default:
		if left := UpperBound(s, next, first, p, v); left != p {
			return left
		}
		if right := UpperBound(s, next, p+1, last, v); right != last {
			return right
		}
		return last
	}
}

// BinarySearch reports whether v matches some element of s under
// componentwise equality (NoneLess in both directions).
func BinarySearch[T Number](s Sequence[T], v Point[T]) bool {
	last := s.Len()
	p := LowerBound(s, 0, 0, last, v)
	return p != last && NoneLess(v, s.At(p))
}

// EqualRange returns the bracketing (lo, hi) pair produced by LowerBound and
// UpperBound at axis 0.
func EqualRange[T Number](s Sequence[T], v Point[T]) (lo, hi int) {
	last := s.Len()
	return LowerBound(s, 0, 0, last, v), UpperBound(s, 0, 0, last, v)
}
