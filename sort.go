package kdtools

import "math/rand/v2"

// Sort reorders s in place into k-d order starting at axis 0, recursively
// median-partitioning the range while cycling the discriminator axis.
func Sort[T Number](s Sequence[T]) {
	kdSortAxis(s, 0, 0, s.Len())
}

// SortFunc is Sort generalized to a user-supplied per-axis comparator,
// substituted for the natural "<" wherever axis values are compared.
func SortFunc[T Number](s Sequence[T], cmp Comparator[T]) {
	kdSortAxisFunc(s, cmp, 0, 0, s.Len())
}

func kdSortAxis[T Number](s Sequence[T], axis, first, last int) {
	if last-first <= 1 {
		return
	}
	p := Midpos(first, last)
	nthElement(s, axis, first, p, last)
	p = stableSplit(s, axis, first, p)
	next := nextAxis(axis, s.Dims)
	kdSortAxis(s, next, p+1, last)
	kdSortAxis(s, next, first, p)
}

func kdSortAxisFunc[T Number](s Sequence[T], cmp Comparator[T], axis, first, last int) {
	if last-first <= 1 {
		return
	}
	p := Midpos(first, last)
	nthElementFunc(s, cmp, axis, first, p, last)
	p = stableSplitFunc(s, cmp, axis, first, p)
	next := nextAxis(axis, s.Dims)
	kdSortAxisFunc(s, cmp, next, p+1, last)
	kdSortAxisFunc(s, cmp, next, first, p)
}

// nthElement performs a partial selection (quickselect) so that position
// nth holds the element that would occupy it under KdLessFrom(axis, ...),
// with everything before it no greater and everything after it no less.
// Relative order within each side is left unspecified.
func nthElement[T Number](s Sequence[T], axis, first, nth, last int) {
	for last-first > 1 {
		pivotIdx := first + rand.IntN(last-first)
		pivotIdx = partitionAround(s, axis, first, last, pivotIdx)
		switch {
		case nth == pivotIdx:
			return
		case nth < pivotIdx:
			last = pivotIdx
		default:
			first = pivotIdx + 1
		}
	}
}

func partitionAround[T Number](s Sequence[T], axis, first, last, pivotIdx int) int {
	s.Swap(pivotIdx, last-1)
	pivotPos := last - 1
	store := first
	for i := first; i < last-1; i++ {
		if KdLessFrom(axis, s.At(i), s.At(pivotPos)) {
			s.Swap(i, store)
			store++
		}
	}
	s.Swap(store, pivotPos)
	return store
}

// stableSplit re-partitions [first, p) around the value now held at p,
// returning the first position not less than it. This is std::partition,
// not a stable partition: relative order within each side is unspecified,
// but the boundary it returns lets FindPivot recover the pivot later.
func stableSplit[T Number](s Sequence[T], axis, first, p int) int {
	store := first
	for i := first; i < p; i++ {
		if KdLessFrom(axis, s.At(i), s.At(p)) {
			s.Swap(i, store)
			store++
		}
	}
	return store
}

func nthElementFunc[T Number](s Sequence[T], cmp Comparator[T], axis, first, nth, last int) {
	for last-first > 1 {
		pivotIdx := first + rand.IntN(last-first)
		pivotIdx = partitionAroundFunc(s, cmp, axis, first, last, pivotIdx)
		switch {
		case nth == pivotIdx:
			return
		case nth < pivotIdx:
			last = pivotIdx
		default:
			first = pivotIdx + 1
		}
	}
}

func partitionAroundFunc[T Number](s Sequence[T], cmp Comparator[T], axis, first, last, pivotIdx int) int {
	s.Swap(pivotIdx, last-1)
	pivotPos := last - 1
	store := first
	for i := first; i < last-1; i++ {
		if KdLessFromFunc(axis, cmp, s.At(i), s.At(pivotPos)) {
			s.Swap(i, store)
			store++
		}
	}
	s.Swap(store, pivotPos)
	return store
}

func stableSplitFunc[T Number](s Sequence[T], cmp Comparator[T], axis, first, p int) int {
	store := first
	for i := first; i < p; i++ {
		if KdLessFromFunc(axis, cmp, s.At(i), s.At(p)) {
			s.Swap(i, store)
			store++
		}
	}
	return store
}
