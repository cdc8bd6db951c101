package tandem

import (
	"fmt"
	"testing"
)

func BenchmarkSerial(b *testing.B) {
	inputs := randomVecs(1000, 9)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Serial(bufFactory, inputs, evolve)
	}
}

func BenchmarkMap(b *testing.B) {
	inputs := randomVecs(1000, 9)

	for _, workers := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			pool, err := New(bufFactory, WithWorkers(workers))
			if err != nil {
				b.Fatalf("New() error = %v", err)
			}
			defer pool.Close()

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = Map(pool, inputs, evolve)
			}
		})
	}
}

func BenchmarkMap_Partition(b *testing.B) {
	inputs := randomVecs(1000, 9)

	for _, p := range []Partition{Contiguous, RoundRobin} {
		name := "contiguous"
		if p == RoundRobin {
			name = "roundrobin"
		}
		b.Run(name, func(b *testing.B) {
			pool, err := New(bufFactory, WithWorkers(4), WithPartition(p))
			if err != nil {
				b.Fatalf("New() error = %v", err)
			}
			defer pool.Close()

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = Map(pool, inputs, evolve)
			}
		})
	}
}
