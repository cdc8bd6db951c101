package tandem

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
)

// ErrorMode defines how MapErr reacts to errors from the map function.
type ErrorMode int

const (
	// FailFast cancels the remaining partitions on the first error and
	// returns that error alone.
	FailFast ErrorMode = iota
	// CollectAll evaluates every input regardless of failures and returns
	// all errors as an aggregate.
	CollectAll
)

// Map applies fn to every input using the pool's worker slots and returns
// the outputs in input order.
//
// Each worker slot evaluates fn with its own scratch value over the indexes
// its partition assigns to it, writing out[i] in place; the call blocks
// until every slot has finished. Because out[i] depends only on inputs[i]
// and scratch state fn itself wrote, the result is element-wise identical to
// Serial for any worker count and any scheduling - provided fn honors the
// scratch contract:
//
//   - fn writes only to the scratch value it is given
//   - fn derives its output solely from that scratch value and the input
//   - fn does not retain the scratch value beyond the call
//   - fn fully overwrites whatever scratch state it reads; scratch values
//     are reused across calls and are never zeroed between them
//
// If fn panics, the panic is recovered, the remaining slots run to
// completion, and Map returns a *PanicError (the first one observed) with
// nil outputs. The pool stays usable.
//
// Example:
//
//	out, err := tandem.Map(pool, points, func(buf []float64, p Point) float64 {
//	    return integrate(buf, p)
//	})
func Map[S, In, Out any](p *Pool[S], inputs []In, fn func(scratch S, in In) Out) ([]Out, error) {
	if fn == nil {
		return nil, ErrNilFunc
	}
	if err := p.acquire(); err != nil {
		return nil, err
	}
	defer p.release()

	out := make([]Out, len(inputs))
	if len(inputs) == 0 {
		p.finishRun(0)
		return out, nil
	}

	workers := len(p.scratch)

	var (
		wg       sync.WaitGroup
		panicMu  sync.Mutex
		panicked *PanicError
	)
	for slot := 0; slot < workers; slot++ {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					p.metrics.perSlot[slot].panics.Add(1)
					if p.cfg.PanicHandler != nil {
						p.cfg.PanicHandler(r)
					}
					pe := &PanicError{Slot: slot, Value: r, Stack: string(debug.Stack())}
					panicMu.Lock()
					if panicked == nil {
						panicked = pe
					}
					panicMu.Unlock()
				}
			}()
			if p.cfg.OnWorkerStart != nil {
				p.cfg.OnWorkerStart(slot)
			}
			if p.cfg.OnWorkerStop != nil {
				defer p.cfg.OnWorkerStop(slot)
			}

			scratch := p.scratch[slot]
			done := 0
			forEachIndex(p.cfg.Partition, slot, workers, len(inputs), func(i int) {
				out[i] = fn(scratch, inputs[i])
				done++
			})
			p.metrics.perSlot[slot].items.Add(uint64(done))
		}(slot)
	}
	wg.Wait()

	p.finishRun(len(inputs))

	if panicked != nil {
		return nil, panicked
	}
	return out, nil
}

// MapErr is Map for fallible functions, run under a context.
//
// The scratch contract is the same as Map's. mode selects the error policy:
// FailFast cancels the context passed to fn as soon as any evaluation fails
// and returns that error; CollectAll evaluates every input and returns all
// failures aggregated into one error. Either way, outputs are nil when
// MapErr returns a non-nil error.
//
// Example:
//
//	out, err := tandem.MapErr(ctx, pool, rows,
//	    func(ctx context.Context, dec *Decoder, row []byte) (Record, error) {
//	        return dec.Decode(ctx, row)
//	    }, tandem.FailFast)
func MapErr[S, In, Out any](ctx context.Context, p *Pool[S], inputs []In, fn func(ctx context.Context, scratch S, in In) (Out, error), mode ErrorMode) ([]Out, error) {
	if fn == nil {
		return nil, ErrNilFunc
	}
	if mode != FailFast && mode != CollectAll {
		return nil, fmt.Errorf("tandem: unknown error mode %d", mode)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := p.acquire(); err != nil {
		return nil, err
	}
	defer p.release()

	out := make([]Out, len(inputs))
	if len(inputs) == 0 {
		p.finishRun(0)
		return out, nil
	}

	workers := len(p.scratch)

	var failed error
	switch mode {
	case FailFast:
		g, gctx := errgroup.WithContext(ctx)
		for slot := 0; slot < workers; slot++ {
			slot := slot
			g.Go(func() error {
				scratch := p.scratch[slot]
				var err error
				done := 0
				forEachIndex(p.cfg.Partition, slot, workers, len(inputs), func(i int) {
					if err != nil {
						return
					}
					if err = gctx.Err(); err != nil {
						return
					}
					out[i], err = fn(gctx, scratch, inputs[i])
					if err == nil {
						done++
					}
				})
				p.metrics.perSlot[slot].items.Add(uint64(done))
				return err
			})
		}
		failed = g.Wait()

	case CollectAll:
		var (
			wg   sync.WaitGroup
			mu   sync.Mutex
			merr *multierror.Error
		)
		for slot := 0; slot < workers; slot++ {
			wg.Add(1)
			go func(slot int) {
				defer wg.Done()
				scratch := p.scratch[slot]
				done := 0
				forEachIndex(p.cfg.Partition, slot, workers, len(inputs), func(i int) {
					o, err := fn(ctx, scratch, inputs[i])
					if err != nil {
						mu.Lock()
						merr = multierror.Append(merr, fmt.Errorf("input %d: %w", i, err))
						mu.Unlock()
						return
					}
					out[i] = o
					done++
				})
				p.metrics.perSlot[slot].items.Add(uint64(done))
			}(slot)
		}
		wg.Wait()
		failed = merr.ErrorOrNil()
	}

	p.finishRun(len(inputs))

	if failed != nil {
		return nil, failed
	}
	return out, nil
}

// Serial evaluates fn over inputs sequentially with a single scratch value,
// in input order. It is the baseline Map is equivalent to: for a fn honoring
// the scratch contract, Map and Serial produce element-wise identical
// outputs.
func Serial[S, In, Out any](factory func() (S, error), inputs []In, fn func(scratch S, in In) Out) ([]Out, error) {
	if factory == nil {
		return nil, ErrNilFactory
	}
	if fn == nil {
		return nil, ErrNilFunc
	}
	scratch, err := factory()
	if err != nil {
		return nil, &FactoryError{Slot: 0, Err: err}
	}

	out := make([]Out, len(inputs))
	for i, in := range inputs {
		out[i] = fn(scratch, in)
	}
	return out, nil
}
