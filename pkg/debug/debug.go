// Package debug gates verbose console output behind the -debug flags.
package debug

import "fmt"

var (
	// Enabled is set by -debug: scoring and input events.
	Enabled bool

	// Tracking is set by -debug-tracking: one line per detected blob, every frame.
	Tracking bool
)

// Log prints to stdout when -debug is set.
func Log(format string, args ...any) {
	if Enabled {
		fmt.Printf(format, args...)
	}
}

// TrackLog prints to stdout when -debug-tracking is set.
func TrackLog(format string, args ...any) {
	if Tracking {
		fmt.Printf(format, args...)
	}
}
