package tandem

// Stats is a snapshot of pool counters, taken at the time Stats() is called.
// Counters accumulate across map calls for the pool's lifetime.
type Stats struct {
	// Runs is the number of completed map calls.
	Runs uint64

	// Items is the total number of inputs processed across all map calls.
	Items uint64

	// Workers is the number of worker slots. Fixed at construction.
	Workers int

	// WorkerStats holds per-slot counters, one entry per worker slot.
	WorkerStats []WorkerStats
}

// WorkerStats contains counters for a single worker slot.
type WorkerStats struct {
	// Slot is the worker slot index (0-based).
	Slot int

	// ItemsProcessed is the number of inputs this slot has evaluated.
	ItemsProcessed uint64

	// Panics is the number of map-function panics recovered on this slot.
	Panics uint64
}
