package kdtools

import (
	"math/rand/v2"
	"testing"
)

func TestSortParallelMatchesSerialOnDistinctValues(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	n := 1000
	dims := 4
	base := make([]float64, n*dims)
	seen := make(map[float64]bool)
	for i := range base {
		var v float64
		for {
			v = r.Float64()*1_000_000 + float64(i)
			if !seen[v] {
				seen[v] = true
				break
			}
		}
		base[i] = v
	}

	serialData := append([]float64{}, base...)
	serial := NewSequence(serialData, dims)
	Sort(serial)

	parallelData := append([]float64{}, base...)
	parallel := NewSequence(parallelData, dims)
	if err := SortParallel(parallel, SortOptions{MaxThreads: 4}); err != nil {
		t.Fatalf("SortParallel returned error: %v", err)
	}

	if !equalFloats(serial.Data, parallel.Data) {
		t.Fatalf("SortParallel produced a different permutation than Sort for a distinct-valued sequence")
	}
}

func TestSortParallelIsValidLayout(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	data := make([]float64, 0, 400)
	for i := 0; i < 200; i++ {
		data = append(data, r.Float64()*100, r.Float64()*100)
	}
	s := NewSequence(data, 2)
	if err := SortParallel(s, DefaultSortOptions()); err != nil {
		t.Fatalf("SortParallel returned error: %v", err)
	}
	verifyKdOrder(t, s, 0, 0, s.Len())
}

func TestSortParallelSingleThreadIsSerial(t *testing.T) {
	data := []float64{5, 1, 3, 9, 2, 8, 7, 4}
	serial := NewSequence(append([]float64{}, data...), 2)
	Sort(serial)

	parallel := NewSequence(append([]float64{}, data...), 2)
	if err := SortParallel(parallel, SortOptions{MaxThreads: 1}); err != nil {
		t.Fatalf("SortParallel returned error: %v", err)
	}
	if !equalFloats(serial.Data, parallel.Data) {
		t.Fatalf("MaxThreads=1 should behave identically to Sort")
	}
}
