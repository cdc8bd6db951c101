package tally

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCell_KnownStrategies(t *testing.T) {
	for _, s := range []Strategy{LockFree, Spinning, Blocking, None} {
		t.Run(s.String(), func(t *testing.T) {
			cell, err := NewCell(s)
			require.NoError(t, err)
			require.NotNil(t, cell)
			assert.Equal(t, s, cell.Strategy())
			assert.Equal(t, int64(0), cell.Load())
		})
	}
}

func TestNewCell_UnknownStrategy(t *testing.T) {
	cell, err := NewCell(Strategy(42))
	require.ErrorIs(t, err, ErrUnknownStrategy)
	assert.Nil(t, cell)
}

func TestStrategy_String(t *testing.T) {
	assert.Equal(t, "LockFree", LockFree.String())
	assert.Equal(t, "Spinning", Spinning.String())
	assert.Equal(t, "Blocking", Blocking.String())
	assert.Equal(t, "None", None.String())
	assert.Equal(t, "Unknown", Strategy(42).String())
}

func TestCell_AddSequential(t *testing.T) {
	for _, s := range []Strategy{LockFree, Spinning, Blocking, None} {
		t.Run(s.String(), func(t *testing.T) {
			cell, err := NewCell(s)
			require.NoError(t, err)

			cell.Inc()
			cell.Add(41)
			cell.Add(-2)
			assert.Equal(t, int64(40), cell.Load())
		})
	}
}

// Guarded strategies keep the count exact under concurrent mutation from
// a single shared cell, whatever the worker count.
func TestCell_ConcurrentAdd_GuardedStrategies(t *testing.T) {
	const perWorker = 5_000

	for _, s := range []Strategy{LockFree, Spinning, Blocking} {
		for _, workers := range []int{1, 2, 4, 8} {
			t.Run(fmt.Sprintf("%s/workers=%d", s, workers), func(t *testing.T) {
				cell, err := NewCell(s)
				require.NoError(t, err)

				var wg sync.WaitGroup
				for w := 0; w < workers; w++ {
					wg.Add(1)
					go func() {
						defer wg.Done()
						for i := 0; i < perWorker; i++ {
							cell.Inc()
						}
					}()
				}
				wg.Wait()

				assert.Equal(t, int64(workers*perWorker), cell.Load())
			})
		}
	}
}
