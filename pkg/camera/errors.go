package camera

import "errors"

var (
	// ErrFrameUnavailable is returned when the device yields no frame.
	// The game treats it as end of stream.
	ErrFrameUnavailable = errors.New("camera: frame unavailable")

	// ErrClosed is returned when reading from a released source.
	ErrClosed = errors.New("camera: source closed")
)
