package kdtools

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// SortOptions configures SortParallel.
type SortOptions struct {
	// MaxThreads bounds the number of concurrently live sort tasks. Values
	// less than 1 are treated as 1 (fully serial).
	MaxThreads int
}

// DefaultSortOptions returns SortOptions sized to the host's available
// CPUs.
func DefaultSortOptions() SortOptions {
	return SortOptions{MaxThreads: runtime.GOMAXPROCS(0)}
}

// SortParallel is Sort split across goroutines up to opts.MaxThreads: at
// each recursion depth where 2^depth < MaxThreads, the right half is handed
// to a new task while the left half continues on the calling goroutine, and
// the two are joined before the frame returns.
//
// If a worker slot cannot be acquired at some fan-out point, that subrange
// is sorted on the calling goroutine instead. The sequence is always fully
// sorted when SortParallel returns; a non-nil error only reports that one
// or more fan-out points fell back to serial execution.
func SortParallel[T Number](s Sequence[T], opts SortOptions) error {
	maxThreads := opts.MaxThreads
	if maxThreads < 1 {
		maxThreads = 1
	}

	sem := semaphore.NewWeighted(int64(maxThreads))
	var g errgroup.Group
	var degraded atomic.Bool

	var descend func(axis, depth, first, last int)
	descend = func(axis, depth, first, last int) {
		if last-first <= 1 {
			return
		}
		p := Midpos(first, last)
		nthElement(s, axis, first, p, last)
		p = stableSplit(s, axis, first, p)
		next := nextAxis(axis, s.Dims)

		if (int64(1) << uint(depth)) < int64(maxThreads) {
			if sem.TryAcquire(1) {
				g.Go(func() error {
					defer sem.Release(1)
					descend(next, depth+1, p+1, last)
					return nil
				})
				descend(next, depth+1, first, p)
				return
			}
			degraded.Store(true)
		}

		descend(next, depth+1, p+1, last)
		descend(next, depth+1, first, p)
	}

	descend(0, 0, 0, s.Len())
	if err := g.Wait(); err != nil {
		return err
	}
	if degraded.Load() {
		return ErrTaskSpawnFailed
	}
	return nil
}
