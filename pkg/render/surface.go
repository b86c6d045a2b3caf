package render

import (
	"image"
	"sync"

	"github.com/teslashibe/colorchase/pkg/game"
	"gocv.io/x/gocv"
)

// OpenCV mouse event code for a left button press.
const eventLButtonDown = 1

// NoKey is returned by Poll when no key was pressed.
const NoKey = -1

// Input is what arrived during one poll.
type Input struct {
	Clicks []image.Point // Left clicks in window coordinates, oldest first
	Key    int           // Low byte of the pressed key, or NoKey
}

// Surface is the game window. OpenCV invokes the mouse handler from inside
// WaitKey on the calling goroutine, so clicks are queued and handed out by
// the same Poll call that pumped them.
type Surface struct {
	window *gocv.Window
	clicks []image.Point

	closeOnce sync.Once
}

// NewSurface opens a window with the given title.
func NewSurface(title string) *Surface {
	s := &Surface{window: gocv.NewWindow(title)}
	s.window.SetMouseHandler(s.onMouse, nil)
	return s
}

func (s *Surface) onMouse(event int, x int, y int, flags int, userdata interface{}) {
	if event == eventLButtonDown {
		s.enqueue(image.Pt(x, y))
	}
}

func (s *Surface) enqueue(p image.Point) {
	s.clicks = append(s.clicks, p)
}

// Show displays frame.
func (s *Surface) Show(frame gocv.Mat) {
	s.window.IMShow(frame)
}

// Poll waits up to delayMs for a key press and returns it together with
// every click queued since the previous poll.
func (s *Surface) Poll(delayMs int) Input {
	key := s.window.WaitKey(delayMs)
	return s.drain(key)
}

func (s *Surface) drain(key int) Input {
	in := Input{Clicks: s.clicks, Key: NoKey}
	s.clicks = nil
	if key >= 0 {
		in.Key = key & 0xFF
	}
	return in
}

// Close destroys the window. Safe to call more than once.
func (s *Surface) Close() error {
	var err error
	s.closeOnce.Do(func() {
		err = s.window.Close()
	})
	return err
}

// ShowSummary opens the summary window, blocks until any key is pressed and
// closes it again.
func ShowSummary(title string, sum game.Summary, width, height int) error {
	img := SummaryImage(sum, width, height)
	defer img.Close()

	w := gocv.NewWindow(title)
	w.IMShow(img)
	w.WaitKey(0)
	return w.Close()
}
