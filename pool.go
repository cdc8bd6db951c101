package tandem

import (
	"sync"
	"sync/atomic"
)

// Pool lifecycle states.
const (
	stateBuilt uint32 = iota
	stateClosed
)

// Pool is a fixed set of worker slots, each owning one scratch value of
// type S.
//
// Scratch values are created once, by the factory passed to New, and reused
// for every map call for the pool's lifetime. Slot k's scratch value is only
// ever read and written by the goroutine running slot k's partition, so a
// map function that honors the contract documented on Map never observes
// another worker's intermediate state.
//
// S is typically a pointer, slice, or map type so that writes through the
// scratch value persist across calls.
type Pool[S any] struct {
	cfg     Config
	scratch []S

	// Serializes map calls: scratch slots have a single owner per call,
	// so concurrent callers queue here rather than race on the slots.
	runMu sync.Mutex

	state atomic.Uint32

	metrics poolMetrics
}

// poolMetrics tracks pool-wide counters across map calls.
type poolMetrics struct {
	runs    atomic.Uint64
	items   atomic.Uint64
	perSlot []slotMetrics
}

// slotMetrics tracks per-worker-slot counters.
type slotMetrics struct {
	items  atomic.Uint64
	panics atomic.Uint64
}

// New builds a pool with one scratch value per worker slot.
//
// The factory runs exactly once per slot, synchronously, before New returns.
// If any invocation fails, construction aborts immediately: the error is
// wrapped in a *FactoryError carrying the failing slot, no further factory
// calls are made, and no pool is returned.
//
// Example:
//
//	pool, err := tandem.New(func() (*bytes.Buffer, error) {
//	    return new(bytes.Buffer), nil
//	}, tandem.WithWorkers(8))
func New[S any](factory func() (S, error), opts ...Option) (*Pool[S], error) {
	if factory == nil {
		return nil, ErrNilFactory
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	scratch := make([]S, cfg.Workers)
	for slot := range scratch {
		s, err := factory()
		if err != nil {
			return nil, &FactoryError{Slot: slot, Err: err}
		}
		scratch[slot] = s
	}

	return &Pool[S]{
		cfg:     cfg,
		scratch: scratch,
		metrics: poolMetrics{perSlot: make([]slotMetrics, cfg.Workers)},
	}, nil
}

// Workers returns the number of worker slots in the pool.
func (p *Pool[S]) Workers() int {
	return len(p.scratch)
}

// Close retires the pool. Map calls already running finish normally; later
// calls return ErrPoolClosed. Close is idempotent and safe to call
// concurrently with map calls.
func (p *Pool[S]) Close() {
	p.state.Store(stateClosed)
}

// Closed reports whether Close has been called.
func (p *Pool[S]) Closed() bool {
	return p.state.Load() == stateClosed
}

// acquire claims the pool for one map call, failing if the pool is closed.
// The closed check repeats under runMu so a Close racing with a queued call
// is not outrun.
func (p *Pool[S]) acquire() error {
	if p.state.Load() == stateClosed {
		return ErrPoolClosed
	}
	p.runMu.Lock()
	if p.state.Load() == stateClosed {
		p.runMu.Unlock()
		return ErrPoolClosed
	}
	return nil
}

// release ends a map call claimed with acquire.
func (p *Pool[S]) release() {
	p.runMu.Unlock()
}

// finishRun records counters for one completed map call.
func (p *Pool[S]) finishRun(items int) {
	p.metrics.runs.Add(1)
	p.metrics.items.Add(uint64(items))
}

// Stats returns a snapshot of pool counters. Values are read without locks
// and may be slightly inconsistent while a map call is in flight.
//
// Example:
//
//	stats := pool.Stats()
//	fmt.Printf("runs=%d items=%d\n", stats.Runs, stats.Items)
func (p *Pool[S]) Stats() Stats {
	workerStats := make([]WorkerStats, len(p.scratch))
	for slot := range p.metrics.perSlot {
		workerStats[slot] = WorkerStats{
			Slot:           slot,
			ItemsProcessed: p.metrics.perSlot[slot].items.Load(),
			Panics:         p.metrics.perSlot[slot].panics.Load(),
		}
	}
	return Stats{
		Runs:        p.metrics.runs.Load(),
		Items:       p.metrics.items.Load(),
		Workers:     len(p.scratch),
		WorkerStats: workerStats,
	}
}
