package tally

import "runtime"

// goroutineID returns the numeric ID of the calling goroutine, parsed from
// the first line of its stack trace. The runtime does not expose goroutine
// IDs, so this is the portable way to give a lock an owner identity; the
// parse cost (one runtime.Stack call) is paid only on the ReentrantMutex
// Lock/Unlock path.
//
// ReentrantMutex uses 0 as its "unheld" owner sentinel, so a parse failure
// must never be reported as ID 0: a goroutine with ID 0 would alias an
// unlocked mutex as one it already holds. Goroutine IDs start at 1, and a
// format change in the runtime's stack header is a bug here, so panic.
func goroutineID() int64 {
	// Only the first line is needed: "goroutine 123 [running]:".
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	gid := parseGID(buf[:n])
	if gid <= 0 {
		panic("tally: cannot parse goroutine ID from stack trace")
	}
	return gid
}

// parseGID extracts the goroutine ID from stack trace bytes of the form
// "goroutine 123 [running]:...". It returns 0 if the format is unexpected.
func parseGID(buf []byte) int64 {
	const prefix = "goroutine "
	if len(buf) < len(prefix) || string(buf[:len(prefix)]) != prefix {
		return 0
	}
	var gid int64
	for _, c := range buf[len(prefix):] {
		if c < '0' || c > '9' {
			break
		}
		gid = gid*10 + int64(c-'0')
	}
	return gid
}
