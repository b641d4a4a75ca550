package kdtools

import (
	"container/heap"
	"math"
)

type neighbor struct {
	dist float64
	pos  int
}

// bestQueue is a bounded max-heap over (distance, position) pairs: it
// retains the n smallest distances seen, with the current worst (largest)
// retained distance at the root for O(1) query.
type bestQueue struct {
	items []neighbor
	cap   int
}

func newBestQueue(cap int) *bestQueue {
	return &bestQueue{items: make([]neighbor, 0, cap), cap: cap}
}

func (q *bestQueue) Len() int            { return len(q.items) }
func (q *bestQueue) Less(i, j int) bool  { return q.items[i].dist > q.items[j].dist }
func (q *bestQueue) Swap(i, j int)       { q.items[i], q.items[j] = q.items[j], q.items[i] }
func (q *bestQueue) Push(x interface{})  { q.items = append(q.items, x.(neighbor)) }
func (q *bestQueue) Pop() interface{} {
	old := q.items
	n := len(old)
	item := old[n-1]
	q.items = old[:n-1]
	return item
}

// Worst returns the largest retained distance, or +Inf while the queue has
// not yet reached capacity so that the opposite side of a descent is always
// explored until the queue fills.
func (q *bestQueue) Worst() float64 {
	if len(q.items) < q.cap {
		return math.Inf(1)
	}
	return q.items[0].dist
}

// Add offers a candidate to the queue, evicting the current worst entry if
// the queue is already at capacity and the candidate is strictly closer.
func (q *bestQueue) Add(dist float64, pos int) {
	if len(q.items) < q.cap {
		heap.Push(q, neighbor{dist: dist, pos: pos})
		return
	}
	if dist < q.items[0].dist {
		q.items[0] = neighbor{dist: dist, pos: pos}
		heap.Fix(q, 0)
	}
}

// KNearestNeighbors returns up to n positions in [first, last) nearest to v
// under L2Dist, in unspecified (heap) order. n must be >= 1; the range must
// already be k-d sorted starting at axis.
func KNearestNeighbors[T Number](s Sequence[T], axis, first, last int, v Point[T], n int) []int {
	q := newBestQueue(n)
	knnDescend(s, axis, first, last, v, q)
	out := make([]int, len(q.items))
	for i, it := range q.items {
		out[i] = it.pos
	}
	return out
}

func knnDescend[T Number](s Sequence[T], axis, first, last int, v Point[T], q *bestQueue) {
	if last <= first {
		return
	}
	if last-first <= 1 {
		q.Add(L2Dist(s.At(first), v), first)
		return
	}
	p := FindPivot(s, axis, first, last)
	q.Add(L2Dist(s.At(p), v), p)

	next := nextAxis(axis, s.Dims)
	goLeft := v[axis] < s.Axis(p, axis)
	if goLeft {
		knnDescend(s, next, first, p, v, q)
	} else {
		knnDescend(s, next, p+1, last, v, q)
	}

	if absDiff(v[axis], s.Axis(p, axis)) <= q.Worst() {
		if goLeft {
			knnDescend(s, next, p+1, last, v, q)
		} else {
			knnDescend(s, next, first, p, v, q)
		}
	}
}
