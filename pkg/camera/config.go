// Package camera provides the webcam frame source for the game.
package camera

import "fmt"

// Config holds all camera configuration parameters.
type Config struct {
	DeviceID int  // Capture device index
	Width    int  // Frame width in pixels; frames are resized to it
	Height   int  // Frame height in pixels; frames are resized to it
	Mirror   bool // Flip frames horizontally so the view acts like a mirror
}

// Frame limits accepted by Validate.
const (
	MinWidth  = 160
	MinHeight = 120
	MaxWidth  = 4096
	MaxHeight = 2160
)

// DefaultConfig returns the 640x480 mirrored webcam configuration.
func DefaultConfig() Config {
	return Config{
		DeviceID: 0,
		Width:    640,
		Height:   480,
		Mirror:   true,
	}
}

// Validate checks if the config values are within valid ranges.
// Returns a list of validation errors, or nil if valid.
func (c *Config) Validate() []string {
	var errors []string

	if c.DeviceID < 0 {
		errors = append(errors, "device_id must not be negative")
	}
	if c.Width < MinWidth || c.Width > MaxWidth {
		errors = append(errors, fmt.Sprintf("width must be between %d and %d", MinWidth, MaxWidth))
	}
	if c.Height < MinHeight || c.Height > MaxHeight {
		errors = append(errors, fmt.Sprintf("height must be between %d and %d", MinHeight, MaxHeight))
	}

	return errors
}
