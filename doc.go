// Package tandem provides a fixed-size worker pool for parallel map
// evaluation with per-worker scratch state.
//
// The hazard tandem exists to remove is accidental sharing of mutable
// intermediate state: a function that needs a scratch buffer, evaluated in
// parallel with one buffer captured by every worker, silently produces wrong
// answers. tandem makes scratch ownership an explicit contract: a pool owns
// exactly one scratch value per worker slot, allocated once at construction
// and reused across calls, and each slot's value is only ever touched by the
// goroutine running that slot's partition.
//
// # Quick Start
//
//	pool, err := tandem.New(func() ([]float64, error) {
//	    return make([]float64, 3), nil
//	}, tandem.WithWorkers(4))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer pool.Close()
//
//	out, err := tandem.Map(pool, inputs, func(scratch []float64, in Input) float64 {
//	    // scratch is private to this worker slot; overwrite it fully,
//	    // use it, derive the output from it.
//	    return evolve(scratch, in)
//	})
//
// # Correctness Contract
//
// Map's outputs are index-aligned with its inputs and identical to what
// Serial produces with a single sequentially reused scratch value, for any
// worker count and any scheduling. For that guarantee to hold, the map
// function must:
//
//   - write only to the scratch value it is given
//   - derive its output solely from that scratch value and the input
//   - not retain the scratch value beyond the call
//   - fully overwrite whatever scratch state it depends on; scratch values
//     are reused across calls and are never zeroed between them
//
// # Partitioning
//
// Inputs are assigned to worker slots either as contiguous index ranges
// (default) or round-robin, selected with WithPartition. Both policies are
// deterministic for a given input length and worker count; the correctness
// contract holds under either.
//
// # Lifecycle
//
// A pool is built once, serves any number of map calls, and is retired with
// Close. Map calls on one pool serialize internally because scratch slots
// have a single owner per call; concurrent callers simply queue. Mapping on
// a closed pool returns ErrPoolClosed.
//
// # Error Handling
//
// Construction is fail-fast: an invalid configuration or a scratch factory
// failure aborts New before any work starts, so a pool in hand is always
// fully built. Panics raised by the map function are recovered per worker,
// wrapped in *PanicError, and returned from Map; the pool remains usable.
//
// For fallible map functions, MapErr runs the same fan-out under a
// context.Context with a choice of error modes: FailFast cancels remaining
// partitions on the first error, CollectAll keeps going and returns every
// failure as an aggregate.
//
// # Synchronized Counters
//
// The companion package tally provides the other half of this module: a
// shared counter cell guarded by a pluggable synchronization strategy
// (lock-free, spinning, blocking, or deliberately unguarded), built on the
// same fixed fan-out/fan-in worker model.
package tandem
