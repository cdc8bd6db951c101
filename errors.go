package tandem

import (
	"errors"
	"fmt"
)

// Common errors returned by the pool.
var (
	// ErrPoolClosed is returned when mapping on a pool after Close.
	ErrPoolClosed = errors.New("tandem: pool is closed")

	// ErrInvalidWorkers is returned by New when the configured worker
	// count is not positive.
	ErrInvalidWorkers = errors.New("tandem: worker count must be positive")

	// ErrInvalidPartition is returned by New for an unknown partition
	// policy.
	ErrInvalidPartition = errors.New("tandem: unknown partition policy")

	// ErrNilFactory is returned when the scratch factory is nil.
	ErrNilFactory = errors.New("tandem: scratch factory is nil")

	// ErrNilFunc is returned when the map function is nil.
	ErrNilFunc = errors.New("tandem: map function is nil")
)

// FactoryError reports a scratch factory failure during pool construction.
// Construction is fail-fast: the first failing slot aborts New and no pool
// is returned.
type FactoryError struct {
	// Slot is the worker slot whose scratch allocation failed.
	Slot int
	// Err is the error the factory returned.
	Err error
}

// Error implements the error interface.
func (e *FactoryError) Error() string {
	return fmt.Sprintf("tandem: scratch factory failed for worker slot %d: %v", e.Slot, e.Err)
}

// Unwrap returns the factory's error, for use with errors.Is and errors.As.
func (e *FactoryError) Unwrap() error {
	return e.Err
}

// PanicError wraps a panic recovered from a map function, together with the
// worker slot it occurred on and the stack trace at the point of recovery.
type PanicError struct {
	Slot  int
	Value any
	Stack string
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("tandem: map function panicked on worker slot %d: %v", e.Slot, e.Value)
}
