//go:build !race

package tandem

// raceEnabled reports whether the Go race detector is active in this build.
const raceEnabled = false
