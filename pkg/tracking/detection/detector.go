// Package detection locates a colored blob in camera frames using OpenCV
package detection

import (
	"errors"

	"github.com/teslashibe/colorchase/pkg/tracking"
	"gocv.io/x/gocv"
)

// ErrEmptyFrame is returned when a detector is handed an empty Mat.
var ErrEmptyFrame = errors.New("detection: empty frame")

// Detector is the interface for blob detection backends
type Detector interface {
	// Detect returns the largest blob matching r, or nil if there is none
	Detect(frame gocv.Mat, r tracking.ColorRange) (*tracking.Detection, error)

	// Close releases resources
	Close() error
}

// Config holds detector configuration
type Config struct {
	MinRadius float64 // Blobs with an enclosing radius <= MinRadius are dropped
	Mode      gocv.RetrievalMode
	Method    gocv.ContourApproximationMode
}

// DefaultConfig returns the detector settings used by the game
func DefaultConfig() Config {
	return Config{
		MinRadius: tracking.DefaultConfig().MinRadius,
		Mode:      gocv.RetrievalExternal,
		Method:    gocv.ChainApproxSimple,
	}
}

// Segment converts a BGR frame to HSV into hsv and writes the in-range mask into mask.
func Segment(frame gocv.Mat, r tracking.ColorRange, hsv, mask *gocv.Mat) {
	gocv.CvtColor(frame, hsv, gocv.ColorBGRToHSV)
	gocv.InRangeWithScalar(*hsv, toScalar(r.Lower), toScalar(r.Upper), mask)
}

// Locate finds the largest external contour in mask and returns its minimum
// enclosing circle. It returns nil when the mask is blank or the circle
// radius does not exceed minRadius.
func Locate(mask gocv.Mat, minRadius float64) *tracking.Detection {
	return locate(mask, DefaultConfig().Mode, DefaultConfig().Method, minRadius)
}

func locate(mask gocv.Mat, mode gocv.RetrievalMode, method gocv.ContourApproximationMode, minRadius float64) *tracking.Detection {
	contours := gocv.FindContours(mask, mode, method)
	defer contours.Close()

	if contours.Size() == 0 {
		return nil
	}

	best := -1
	bestArea := -1.0
	for i := 0; i < contours.Size(); i++ {
		area := gocv.ContourArea(contours.At(i))
		if area > bestArea {
			bestArea = area
			best = i
		}
	}

	x, y, radius := gocv.MinEnclosingCircle(contours.At(best))
	if float64(radius) <= minRadius {
		return nil
	}

	return &tracking.Detection{
		X:      float64(x),
		Y:      float64(y),
		Radius: float64(radius),
	}
}

func toScalar(c tracking.HSV) gocv.Scalar {
	return gocv.NewScalar(float64(c.H), float64(c.S), float64(c.V), 0)
}
