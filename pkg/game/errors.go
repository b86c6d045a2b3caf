package game

import "errors"

var (
	// ErrNoSample is returned when a click cannot be sampled for a color,
	// e.g. it falls outside the frame or no frame has been read yet.
	ErrNoSample = errors.New("game: no color sample at click position")

	// ErrGameOver is returned when input arrives after the game has ended.
	ErrGameOver = errors.New("game: session has ended")
)
