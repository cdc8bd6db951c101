package tally

import "errors"

// Common errors returned by the package.
var (
	// ErrUnknownStrategy is returned by NewCell for a strategy value
	// outside the declared set.
	ErrUnknownStrategy = errors.New("tally: unknown strategy")

	// ErrInvalidWorkers is returned by Run when the worker count is not
	// positive.
	ErrInvalidWorkers = errors.New("tally: worker count must be positive")

	// ErrInvalidTotal is returned by Run when the increment total is
	// negative.
	ErrInvalidTotal = errors.New("tally: increment total must be non-negative")
)
