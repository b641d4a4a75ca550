package kdtools

// RangeQuery returns every position in [first, last) whose tuple lies in the
// half-open box [lo, hi), in descent order (not sorted). axis is the
// discriminator axis in effect at first; the range must already be k-d
// sorted starting at that axis.
func RangeQuery[T Number](s Sequence[T], axis, first, last int, lo, hi Point[T]) []int {
	var out []int
	RangeQuerySink(s, axis, first, last, lo, hi, func(pos int) {
		out = append(out, pos)
	})
	return out
}

// RangeQuerySink is RangeQuery with positions delivered to emit as they are
// found, avoiding an intermediate allocation for callers that can consume
// results incrementally.
func RangeQuerySink[T Number](s Sequence[T], axis, first, last int, lo, hi Point[T], emit func(pos int)) {
	if last-first == 0 {
		return
	}
	if last-first == 1 {
		if Contains(s.At(first), lo, hi) {
			emit(first)
		}
		return
	}
	p := FindPivot(s, axis, first, last)
	if Contains(s.At(p), lo, hi) {
		emit(p)
	}
	next := nextAxis(axis, s.Dims)
	if !(s.Axis(p, axis) < lo[axis]) {
		RangeQuerySink(s, next, first, p, lo, hi, emit)
	}
	if s.Axis(p, axis) < hi[axis] {
		RangeQuerySink(s, next, p+1, last, lo, hi, emit)
	}
}
