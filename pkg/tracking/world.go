package tracking

import (
	"image"
	"math"
)

// Detection is the enclosing circle of the largest matching blob in a frame.
// Detections carry no identity: every frame is located independently.
type Detection struct {
	X, Y   float64 // Center in frame pixels
	Radius float64 // Enclosing circle radius in pixels
}

// Center returns the detection center rounded down to whole pixels,
// the same truncation used when drawing it.
func (d Detection) Center() image.Point {
	return image.Pt(int(d.X), int(d.Y))
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b image.Point) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}
