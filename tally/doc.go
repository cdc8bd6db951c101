// Package tally provides a shared integer counter guarded by a pluggable
// synchronization strategy, plus the locking primitives the strategies are
// built from.
//
// A Cell is one integer mutated by many concurrent workers. The strategy
// chosen at construction decides how those mutations are made safe:
//
//   - LockFree: hardware fetch-and-add on an atomic cell. No waiting at all.
//   - Spinning: a SpinLock guards a plain cell. Waiters busy-poll, burning
//     CPU until the holder releases. Not reentrant - a goroutine that
//     re-acquires a SpinLock it already holds spins forever.
//   - Blocking: a ReentrantMutex guards a plain cell. Waiters de-schedule,
//     and the holder may re-acquire the lock; a depth counter tracks nesting
//     and releases waiters only when the depth returns to zero.
//   - None: raw read-modify-writes with no guard. A deliberate negative
//     control: with more than one worker it loses updates, which is exactly
//     what the guarded strategies exist to prevent.
//
// Run fans a given number of increments across a fixed set of worker
// goroutines and returns the final value. For the three guarded strategies
// the result always equals the number of increments issued; for None it is
// typically lower, and varies run to run.
//
//	got, err := tally.Run(tally.LockFree, 10_000, 4)
//	// got == 10_000
package tally
