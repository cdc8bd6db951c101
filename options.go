package tandem

// Option configures a pool at construction time.
type Option func(*Config)

// WithWorkers sets the number of worker slots. Values <= 0 are rejected by
// New with ErrInvalidWorkers.
//
// Example:
//
//	pool, err := tandem.New(factory, tandem.WithWorkers(4))
func WithWorkers(n int) Option {
	return func(c *Config) {
		c.Workers = n
	}
}

// WithPartition sets how input indexes are assigned to worker slots.
//
// Example:
//
//	pool, err := tandem.New(factory, tandem.WithPartition(tandem.RoundRobin))
func WithPartition(p Partition) Option {
	return func(c *Config) {
		c.Partition = p
	}
}

// WithPanicHandler installs a handler invoked with the recovered value when
// a map function panics. The panic is still returned as a *PanicError.
//
// Example:
//
//	pool, err := tandem.New(factory, tandem.WithPanicHandler(func(r any) {
//	    log.Printf("map function panicked: %v", r)
//	}))
func WithPanicHandler(h func(any)) Option {
	return func(c *Config) {
		c.PanicHandler = h
	}
}

// WithWorkerHooks installs callbacks around each worker slot's partition on
// every map call. Either hook may be nil.
func WithWorkerHooks(onStart, onStop func(slot int)) Option {
	return func(c *Config) {
		c.OnWorkerStart = onStart
		c.OnWorkerStop = onStop
	}
}
