// Package kdtools implements an in-place, implicit k-dimensional binary
// search tree over a contiguous, random-access sequence of fixed-arity
// numeric tuples. There is no per-node link storage: the tree structure is
// entirely defined by the current permutation of the sequence.
//
// Basic usage:
//
//	seq := kdtools.NewSequence([]float64{
//		1, 1,
//		2, 2,
//		3, 3,
//		4, 4,
//		5, 5,
//	}, 2)
//	kdtools.Sort(seq)
//	pos := kdtools.NearestNeighbor(seq, 0, 0, seq.Len(), kdtools.Point[float64]{2.1, 2.0})
//	// seq.At(pos) is the tuple closest to (2.1, 2.0)
//
// For large sequences, SortParallel splits the recursive partitioning across
// goroutines up to a bounded fan-out:
//
//	opts := kdtools.DefaultSortOptions()
//	err := kdtools.SortParallel(seq, opts)
//
// Once a sequence is sorted, LowerBound, UpperBound, BinarySearch,
// EqualRange, NearestNeighbor, KNearestNeighbors, and RangeQuery all operate
// as read-only descents that borrow the sequence positionally. Mutating the
// sequence after sort invalidates any positions already returned.
package kdtools
