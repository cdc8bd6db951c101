package tally

import (
	"runtime"
	"sync/atomic"
)

// yieldEvery bounds how long a waiter monopolizes its processor between
// scheduler yields while spinning.
const yieldEvery = 64

// SpinLock is a busy-polling mutual-exclusion flag.
//
// A goroutine that cannot claim the flag keeps polling it instead of
// de-scheduling, so the lock is only sensible around very short critical
// sections. SpinLock is NOT reentrant: a goroutine that calls Lock while
// already holding the lock spins forever, and nothing detects it. Use
// ReentrantMutex where the critical section may re-enter.
//
// The zero value is an unlocked SpinLock. A SpinLock must not be copied
// after first use.
type SpinLock struct {
	flag atomic.Int32
}

// Lock claims the flag, busy-polling until it is free. The waiter yields the
// processor periodically so a spinning goroutine cannot starve the holder
// off its logical processor.
func (l *SpinLock) Lock() {
	spins := 0
	for !l.flag.CompareAndSwap(0, 1) {
		spins++
		if spins%yieldEvery == 0 {
			runtime.Gosched()
		}
	}
}

// TryLock claims the flag if it is free and reports whether it succeeded.
// It never spins.
func (l *SpinLock) TryLock() bool {
	return l.flag.CompareAndSwap(0, 1)
}

// Unlock releases the flag. It panics if the flag is not held.
func (l *SpinLock) Unlock() {
	if !l.flag.CompareAndSwap(1, 0) {
		panic("tally: unlock of unlocked SpinLock")
	}
}
