package tally

import (
	"sync"
	"sync/atomic"
)

// ReentrantMutex is a mutual-exclusion lock that its holder may acquire
// again without deadlocking. An internal depth counter tracks nesting;
// waiters are released only when the depth returns to zero. Goroutines that
// cannot acquire the lock block on an underlying sync.Mutex and are
// de-scheduled rather than spinning.
//
// Ownership is keyed by goroutine ID, so Lock and Unlock of one acquisition
// must happen on the same goroutine.
//
// The zero value is an unlocked ReentrantMutex. It must not be copied after
// first use.
type ReentrantMutex struct {
	mu    sync.Mutex
	owner atomic.Int64 // goroutine ID of the holder, 0 when unheld
	depth int          // nesting depth, touched only by the holder
}

// Lock acquires the mutex. If the calling goroutine already holds it, the
// nesting depth increases and Lock returns immediately; otherwise the caller
// blocks until the lock is free.
func (m *ReentrantMutex) Lock() {
	gid := goroutineID()
	if m.owner.Load() == gid {
		m.depth++
		return
	}
	m.mu.Lock()
	m.owner.Store(gid)
	m.depth = 1
}

// Unlock releases one level of nesting. The mutex becomes available to other
// goroutines only when every Lock has been matched by an Unlock. It panics
// if the calling goroutine does not hold the mutex.
func (m *ReentrantMutex) Unlock() {
	if m.owner.Load() != goroutineID() {
		panic("tally: unlock of ReentrantMutex not held by this goroutine")
	}
	m.depth--
	if m.depth == 0 {
		m.owner.Store(0)
		m.mu.Unlock()
	}
}
