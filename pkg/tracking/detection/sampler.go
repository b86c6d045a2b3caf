package detection

import (
	"image"

	"github.com/teslashibe/colorchase/pkg/tracking"
	"gocv.io/x/gocv"
)

// FrameSampler reads HSV values from a BGR frame owned by the caller.
type FrameSampler struct {
	frame *gocv.Mat
}

// NewFrameSampler returns a sampler over frame. The Mat is read at call time,
// so the sampler always sees the frame's current contents.
func NewFrameSampler(frame *gocv.Mat) *FrameSampler {
	return &FrameSampler{frame: frame}
}

// HSVAt converts the pixel at (x, y) to HSV. It reports false when there is
// no frame or the point lies outside it.
func (s *FrameSampler) HSVAt(x, y int) (tracking.HSV, bool) {
	if s.frame == nil || s.frame.Empty() {
		return tracking.HSV{}, false
	}
	if x < 0 || y < 0 || x >= s.frame.Cols() || y >= s.frame.Rows() {
		return tracking.HSV{}, false
	}

	px := s.frame.Region(image.Rect(x, y, x+1, y+1))
	defer px.Close()

	hsv := gocv.NewMat()
	defer hsv.Close()
	gocv.CvtColor(px, &hsv, gocv.ColorBGRToHSV)

	return tracking.HSV{
		H: hsv.GetUCharAt(0, 0),
		S: hsv.GetUCharAt(0, 1),
		V: hsv.GetUCharAt(0, 2),
	}, true
}
