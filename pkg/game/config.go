// Package game implements the color-chase game state machine: color
// selection, target-zone scoring, the countdown and the end-of-game
// transition. It knows nothing about cameras or windows; frames reach it
// only through Sampler and per-tick detections.
package game

import (
	"image"
	"time"

	"github.com/teslashibe/colorchase/pkg/tracking"
)

// Fixed gameplay constants.
const (
	FrameWidth  = 640
	FrameHeight = 480

	ZoneRadius = 50 // Target zone radius in pixels
	ZoneMargin = 50 // Minimum distance from a zone center to the frame edge

	Duration = 20 * time.Second
)

// EndButton is the "end game" button area. Both edges are inclusive:
// x in [500,640], y in [10,50].
var EndButton = image.Rect(500, 10, 641, 51)

// Config holds the gameplay parameters of a session.
type Config struct {
	Width, Height int             // Playable frame size
	ZoneRadius    int             // Target zone radius
	ZoneMargin    int             // Margin kept between zone centers and frame edges
	Duration      time.Duration   // Time limit, counted from color selection
	Sensitivity   int             // Hue half-width of a selected color range
	EndButton     image.Rectangle // Clicks inside end the game
}

// DefaultConfig returns the game's fixed configuration.
func DefaultConfig() Config {
	return Config{
		Width:       FrameWidth,
		Height:      FrameHeight,
		ZoneRadius:  ZoneRadius,
		ZoneMargin:  ZoneMargin,
		Duration:    Duration,
		Sensitivity: tracking.DefaultConfig().Sensitivity,
		EndButton:   EndButton,
	}
}
