package detection

import (
	"sync"

	"github.com/teslashibe/colorchase/pkg/debug"
	"github.com/teslashibe/colorchase/pkg/tracking"
	"gocv.io/x/gocv"
)

// ColorDetector segments frames by HSV range and locates the largest blob.
// The HSV and mask buffers are reused across frames.
type ColorDetector struct {
	config Config
	hsv    gocv.Mat
	mask   gocv.Mat
	mu     sync.Mutex // Protects the buffers
	closed bool
}

// NewColorDetector creates a detector with its working buffers allocated
func NewColorDetector(cfg Config) *ColorDetector {
	return &ColorDetector{
		config: cfg,
		hsv:    gocv.NewMat(),
		mask:   gocv.NewMat(),
	}
}

// Detect finds the largest blob of frame whose pixels fall inside r
func (d *ColorDetector) Detect(frame gocv.Mat, r tracking.ColorRange) (*tracking.Detection, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if frame.Empty() {
		return nil, ErrEmptyFrame
	}

	Segment(frame, r, &d.hsv, &d.mask)

	det := locate(d.mask, d.config.Mode, d.config.Method, d.config.MinRadius)
	if det != nil {
		debug.TrackLog("🎯 Blob at (%.0f, %.0f) r=%.1f\n", det.X, det.Y, det.Radius)
	}

	return det, nil
}

// Close releases the detector buffers
func (d *ColorDetector) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil
	}
	d.closed = true
	d.hsv.Close()
	d.mask.Close()
	return nil
}
