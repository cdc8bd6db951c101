//go:build race

package tally

// raceEnabled reports whether the Go race detector is active in this build.
// Tests that demonstrate deliberate data races consult it to skip themselves
// under -race.
const raceEnabled = true
