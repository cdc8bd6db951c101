package tally

// Strategy selects the synchronization discipline guarding a Cell.
type Strategy int

const (
	// LockFree applies increments with a hardware fetch-and-add on an
	// atomic cell. Increments are linearizable and nothing ever blocks.
	LockFree Strategy = iota

	// Spinning guards the cell with a SpinLock: waiters busy-poll instead
	// of de-scheduling. Correct, but waiting burns CPU, and the lock is
	// not reentrant - a critical section that re-acquires it deadlocks.
	Spinning

	// Blocking guards the cell with a ReentrantMutex: waiters de-schedule,
	// and the holding goroutine may safely re-acquire the lock.
	Blocking

	// None applies raw read-modify-writes with no synchronization. It is
	// a deliberate negative control: with concurrent workers it loses
	// updates and the final value is non-deterministic.
	None
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case LockFree:
		return "LockFree"
	case Spinning:
		return "Spinning"
	case Blocking:
		return "Blocking"
	case None:
		return "None"
	default:
		return "Unknown"
	}
}
