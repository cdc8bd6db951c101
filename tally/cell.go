package tally

import "sync/atomic"

// Cell is an integer counter shared by concurrent workers. All mutation goes
// through the synchronization strategy chosen at construction; callers never
// touch the raw value directly.
//
// Strategy state lives inside the Cell and is shared by reference across all
// workers for the Cell's lifetime. A Cell must not be copied after first use.
type Cell struct {
	strategy Strategy

	acc  atomic.Int64   // LockFree
	spin SpinLock       // Spinning
	mu   ReentrantMutex // Blocking
	raw  int64          // Spinning, Blocking, None
}

// NewCell returns a counter cell guarded by the given strategy. The initial
// value is zero.
func NewCell(s Strategy) (*Cell, error) {
	switch s {
	case LockFree, Spinning, Blocking, None:
		return &Cell{strategy: s}, nil
	default:
		return nil, ErrUnknownStrategy
	}
}

// Strategy returns the strategy the cell was built with.
func (c *Cell) Strategy() Strategy {
	return c.strategy
}

// Inc adds one to the cell under its strategy.
func (c *Cell) Inc() {
	c.Add(1)
}

// Add applies delta to the cell under its strategy.
//
// Under None the update is a raw read-modify-write: concurrent Adds race and
// some are lost. That is the point of the strategy, not an oversight.
func (c *Cell) Add(delta int64) {
	switch c.strategy {
	case LockFree:
		c.acc.Add(delta)
	case Spinning:
		c.spin.Lock()
		c.raw += delta
		c.spin.Unlock()
	case Blocking:
		c.mu.Lock()
		c.raw += delta
		c.mu.Unlock()
	default: // None
		c.raw += delta
	}
}

// Load returns the current value, read under the cell's strategy. For None
// the read is as raw as the writes; only a quiescent read (all workers done)
// is meaningful.
func (c *Cell) Load() int64 {
	switch c.strategy {
	case LockFree:
		return c.acc.Load()
	case Spinning:
		c.spin.Lock()
		v := c.raw
		c.spin.Unlock()
		return v
	case Blocking:
		c.mu.Lock()
		v := c.raw
		c.mu.Unlock()
		return v
	default: // None
		return c.raw
	}
}
