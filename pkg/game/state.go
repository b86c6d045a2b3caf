package game

import (
	"image"
	"time"

	"github.com/google/uuid"
	"github.com/teslashibe/colorchase/pkg/tracking"
)

// State is the game phase.
type State int

const (
	// Idle means no color has been selected yet.
	Idle State = iota
	// Active means a color is selected and the countdown is running.
	Active
	// Ended is terminal.
	Ended
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Active:
		return "active"
	case Ended:
		return "ended"
	default:
		return "unknown"
	}
}

// Zone is the circular target the player guides the blob into.
type Zone struct {
	Center image.Point
	Radius int
}

// Contains reports whether p is strictly inside the zone.
func (z Zone) Contains(p image.Point) bool {
	return tracking.Distance(p, z.Center) < float64(z.Radius)
}

// Sampler reads the HSV color under a frame coordinate.
type Sampler interface {
	HSVAt(x, y int) (tracking.HSV, bool)
}

// ClickResult describes what a click did.
type ClickResult struct {
	Ended    bool                // The click hit the end button
	Selected bool                // A color was selected and the game (re)started
	Sample   tracking.HSV        // Sampled color, when Selected
	Range    tracking.ColorRange // New tracking range, when Selected
}

// TickResult describes the outcome of one frame.
type TickResult struct {
	Scored    bool // The detection entered the zone this tick
	Score     int
	Remaining int  // Whole seconds left, never negative
	Ended     bool // The countdown ran out on this tick
	Zone      Zone // Zone position after any relocation
}

// Summary is the final result shown when the game ends.
type Summary struct {
	SessionID uuid.UUID
	Score     int
	TotalTime time.Duration // Whole seconds since color selection; 0 if none
}

// TotalSeconds returns TotalTime in whole seconds.
func (s Summary) TotalSeconds() int {
	return int(s.TotalTime / time.Second)
}
