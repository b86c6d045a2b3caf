// Package colorchase wires the camera, the color detector, the game state
// machine and the display into the single-threaded game loop.
package colorchase

import (
	"fmt"

	"github.com/teslashibe/colorchase/internal/config"
	"github.com/teslashibe/colorchase/pkg/camera"
	"github.com/teslashibe/colorchase/pkg/tracking"
)

// Config holds all configuration for the game application.
// Flag parsing is done in cmd/colorchase/main.go; this struct is data only.
type Config struct {
	// Debug enables verbose debug logging.
	Debug bool

	// DebugTracking logs every blob detection.
	DebugTracking bool

	// Logging.
	LogLevel string // "debug", "info", "warn", "error"
	LogJSON  bool

	// Camera device and frame geometry.
	Camera camera.Config

	// Tracking sets the hue sensitivity of a selection and the smallest
	// blob the detector reports.
	Tracking tracking.Config

	// Sound plays a chime on every point.
	Sound bool

	// PollDelayMs is how long each tick waits for window input.
	PollDelayMs int
}

// DefaultConfig returns sensible defaults for the game.
func DefaultConfig() Config {
	return Config{
		LogLevel:    config.DefaultLogLevel,
		Camera:      camera.DefaultConfig(),
		Tracking:    tracking.DefaultConfig(),
		PollDelayMs: 1,
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if !config.ValidLogLevel(c.LogLevel) {
		return &ConfigError{Field: "LogLevel", Message: fmt.Sprintf("unknown log level %q", c.LogLevel)}
	}
	if errs := c.Camera.Validate(); len(errs) > 0 {
		return &ConfigError{Field: "Camera", Message: fmt.Sprintf("invalid camera config: %v", errs)}
	}
	if errs := c.Tracking.Validate(); len(errs) > 0 {
		return &ConfigError{Field: "Tracking", Message: fmt.Sprintf("invalid tracking config: %v", errs)}
	}
	if c.PollDelayMs < 1 {
		return &ConfigError{Field: "PollDelayMs", Message: "poll delay must be at least 1ms"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}
