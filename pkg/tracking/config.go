// Package tracking holds the color-tracking model shared by the detector and
// the game: HSV samples, color ranges built around them and per-frame blob
// detections.
package tracking

import "fmt"

// Color selection and blob filtering constants.
const (
	// Sensitivity is the half-width of the hue interval built around a sample.
	Sensitivity = 20

	// HueMax is the largest hue OpenCV produces for 8-bit images.
	HueMax = 179

	// MinSaturation and MinValue are the fixed lower S/V bounds of a range.
	MinSaturation = 100
	MinValue      = 100

	// ChannelMax is the upper S/V bound of a range.
	ChannelMax = 255

	// MinRadius filters blobs whose enclosing circle is this size or smaller.
	MinRadius = 10.0
)

// Config holds the parameters used to build ranges and filter blobs.
// The game session reads Sensitivity and the detector reads MinRadius.
type Config struct {
	Sensitivity int     // Hue half-width around the sampled color
	MinRadius   float64 // Blobs with radius <= MinRadius are ignored
}

// DefaultConfig returns the game's fixed tracking parameters.
func DefaultConfig() Config {
	return Config{
		Sensitivity: Sensitivity,
		MinRadius:   MinRadius,
	}
}

// Validate returns a list of problems with the configuration.
func (c Config) Validate() []string {
	var errs []string
	if c.Sensitivity < 0 || c.Sensitivity > HueMax {
		errs = append(errs, fmt.Sprintf("sensitivity %d out of range [0,%d]", c.Sensitivity, HueMax))
	}
	if c.MinRadius < 0 {
		errs = append(errs, fmt.Sprintf("min radius %v must not be negative", c.MinRadius))
	}
	return errs
}
