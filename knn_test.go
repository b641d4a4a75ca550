package kdtools

import (
	"math"
	"sort"
	"testing"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestKNearestNeighborsAgainstBruteForce(t *testing.T) {
	dist := distuv.Normal{Mu: 0, Sigma: 50, Src: rand.NewSource(1122)}
	n := 10000
	data := make([]float64, 0, n*2)
	for i := 0; i < n; i++ {
		data = append(data, dist.Rand(), dist.Rand())
	}
	s := NewSequence(append([]float64{}, data...), 2)
	Sort(s)

	q := Point[float64]{3, -2}
	k := 5
	positions := KNearestNeighbors(s, 0, 0, s.Len(), q, k)
	if len(positions) != k {
		t.Fatalf("KNearestNeighbors returned %d positions, want %d", len(positions), k)
	}
	got := make([]float64, k)
	for i, p := range positions {
		got[i] = L2Dist(s.At(p), q)
	}
	sort.Float64s(got)

	brute := NewSequence(data, 2)
	dists := make([]float64, brute.Len())
	for i := 0; i < brute.Len(); i++ {
		dists[i] = L2Dist(brute.At(i), q)
	}
	sort.Float64s(dists)
	want := dists[:k]

	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("kth-distance mismatch at rank %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestKNearestNeighborsSmallN(t *testing.T) {
	data := []float64{1, 1, 2, 2, 3, 3, 4, 4, 5, 5}
	s := NewSequence(data, 2)
	Sort(s)
	positions := KNearestNeighbors(s, 0, 0, s.Len(), Point[float64]{2.1, 2.0}, 1)
	if len(positions) != 1 {
		t.Fatalf("KNearestNeighbors(n=1) returned %d positions", len(positions))
	}
	got := s.At(positions[0])
	if got[0] != 2 || got[1] != 2 {
		t.Fatalf("KNearestNeighbors(n=1) = %v, want (2,2)", got)
	}
}

func TestBestQueueWorstIsInfUntilFull(t *testing.T) {
	q := newBestQueue(3)
	if !math.IsInf(q.Worst(), 1) {
		t.Fatalf("Worst() on an empty queue should be +Inf")
	}
	q.Add(1, 0)
	q.Add(2, 1)
	if !math.IsInf(q.Worst(), 1) {
		t.Fatalf("Worst() below capacity should still be +Inf")
	}
	q.Add(3, 2)
	if math.IsInf(q.Worst(), 1) {
		t.Fatalf("Worst() at capacity should be finite")
	}
	if q.Worst() != 3 {
		t.Fatalf("Worst() = %v, want 3", q.Worst())
	}
	q.Add(0.5, 3)
	if q.Worst() != 2 {
		t.Fatalf("Worst() after evicting the largest = %v, want 2", q.Worst())
	}
}
