package tally

import "sync"

// Run fans total increment operations across workers goroutines, each
// operation issuing exactly one Inc on a fresh Cell guarded by strategy, and
// returns the final value once every worker has finished.
//
// The total is split into contiguous per-worker ranges that tile it exactly,
// so exactly total increments are issued regardless of whether workers
// divides it. For LockFree, Spinning, and Blocking the result always equals
// total; for None with workers > 1 it is typically lower, demonstrating lost
// updates.
//
// Configuration errors (non-positive workers, negative total, unknown
// strategy) are reported before any goroutine starts.
//
// Example:
//
//	got, err := tally.Run(tally.Spinning, 10_000, 4)
//	// got == 10_000
func Run(strategy Strategy, total, workers int) (int64, error) {
	if workers <= 0 {
		return 0, ErrInvalidWorkers
	}
	if total < 0 {
		return 0, ErrInvalidTotal
	}
	cell, err := NewCell(strategy)
	if err != nil {
		return 0, err
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * total / workers
		hi := (w + 1) * total / workers
		if lo == hi {
			continue
		}
		wg.Add(1)
		go func(count int) {
			defer wg.Done()
			for i := 0; i < count; i++ {
				cell.Inc()
			}
		}(hi - lo)
	}
	wg.Wait()

	return cell.Load(), nil
}
