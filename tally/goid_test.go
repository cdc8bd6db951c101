package tally

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoroutineID_StableWithinGoroutine(t *testing.T) {
	id := goroutineID()
	require.Positive(t, id)
	assert.Equal(t, id, goroutineID())
}

func TestGoroutineID_DistinctAcrossGoroutines(t *testing.T) {
	const n = 16

	ids := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- goroutineID()
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		require.Positive(t, id)
		assert.False(t, seen[id], "goroutine ID %d observed twice", id)
		seen[id] = true
	}
}

func TestParseGID(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int64
	}{
		{name: "running", in: "goroutine 123 [running]:\nmain.main()", want: 123},
		{name: "single digit", in: "goroutine 7 [runnable]:", want: 7},
		{name: "large id", in: "goroutine 18446744073 [running]:", want: 18446744073},
		{name: "missing prefix", in: "gorouting 123 [running]:", want: 0},
		{name: "empty", in: "", want: 0},
		{name: "no digits", in: "goroutine [running]:", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseGID([]byte(tt.in)))
		})
	}
}
