// Package config provides configuration defaults for colorchase commands.
package config

// Default command configuration.
const (
	DefaultCameraID = 0
	DefaultLogLevel = "info"

	// GameWindow and SummaryWindow are the titles of the two display windows.
	GameWindow    = "Color Tracking"
	SummaryWindow = "Summary"

	// QuitKey exits the main loop without showing a summary.
	QuitKey = 'q'
)

// LogLevels lists the accepted -log-level values.
func LogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidLogLevel reports whether level is one of LogLevels.
func ValidLogLevel(level string) bool {
	for _, l := range LogLevels() {
		if l == level {
			return true
		}
	}
	return false
}
