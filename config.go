package tandem

import "runtime"

// Partition selects how input indexes are assigned to worker slots.
// Both policies are deterministic for a given input length and worker count.
type Partition int

const (
	// Contiguous assigns each worker slot one contiguous index range.
	// Ranges tile the input exactly and differ in size by at most one.
	Contiguous Partition = iota
	// RoundRobin stripes indexes across worker slots: slot k handles
	// indexes k, k+W, k+2W, and so on.
	RoundRobin
)

// Config contains all configuration options for a pool.
type Config struct {
	// Workers is the number of worker slots, and therefore the number of
	// scratch values the pool owns. Defaults to runtime.NumCPU().
	Workers int

	// Partition determines how input indexes are assigned to worker slots.
	// Defaults to Contiguous.
	Partition Partition

	// PanicHandler is called with the recovered value when a map function
	// panics. The panic is still surfaced to the caller as a *PanicError.
	PanicHandler func(any)

	// OnWorkerStart is called at the start of each worker slot's partition
	// on every map call. Useful for logging or tracing.
	OnWorkerStart func(slot int)

	// OnWorkerStop is called when a worker slot finishes its partition,
	// including when the map function panicked.
	OnWorkerStop func(slot int)
}

func defaultConfig() Config {
	return Config{
		Workers:   runtime.NumCPU(),
		Partition: Contiguous,
	}
}

// validate checks the configuration before any scratch allocation or
// goroutine starts.
func (c *Config) validate() error {
	if c.Workers <= 0 {
		return ErrInvalidWorkers
	}
	if c.Partition != Contiguous && c.Partition != RoundRobin {
		return ErrInvalidPartition
	}
	return nil
}
