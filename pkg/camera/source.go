package camera

import (
	"fmt"
	"image"
	"sync"

	"github.com/teslashibe/colorchase/internal/log"
	"gocv.io/x/gocv"
)

// Source reads frames from a capture device. It is owned by a single
// reader; Close may be called any number of times and releases the device
// once.
type Source struct {
	config  Config
	capture *gocv.VideoCapture
	raw     gocv.Mat
	sized   gocv.Mat

	mu     sync.Mutex
	closed bool
}

// Open acquires the capture device described by cfg.
func Open(cfg Config) (*Source, error) {
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %v", errs)
	}

	capture, err := gocv.OpenVideoCapture(cfg.DeviceID)
	if err != nil {
		return nil, fmt.Errorf("open device %d: %w", cfg.DeviceID, err)
	}

	capture.Set(gocv.VideoCaptureFrameWidth, float64(cfg.Width))
	capture.Set(gocv.VideoCaptureFrameHeight, float64(cfg.Height))

	log.Info("camera opened", "device", cfg.DeviceID, "width", cfg.Width, "height", cfg.Height, "mirror", cfg.Mirror)

	return &Source{
		config:  cfg,
		capture: capture,
		raw:     gocv.NewMat(),
		sized:   gocv.NewMat(),
	}, nil
}

// Config returns the configuration the source was opened with.
func (s *Source) Config() Config {
	return s.config
}

// Read grabs the next frame into dst, resized to the configured size and
// mirrored when configured. It returns ErrFrameUnavailable when the device
// produces nothing.
func (s *Source) Read(dst *gocv.Mat) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}

	if ok := s.capture.Read(&s.raw); !ok || s.raw.Empty() {
		return ErrFrameUnavailable
	}

	frame := s.raw
	if frame.Cols() != s.config.Width || frame.Rows() != s.config.Height {
		gocv.Resize(s.raw, &s.sized, image.Pt(s.config.Width, s.config.Height), 0, 0, gocv.InterpolationLinear)
		frame = s.sized
	}

	if s.config.Mirror {
		gocv.Flip(frame, dst, 1)
	} else {
		frame.CopyTo(dst)
	}

	return nil
}

// Close releases the capture device.
func (s *Source) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	s.raw.Close()
	s.sized.Close()
	if err := s.capture.Close(); err != nil {
		return fmt.Errorf("release device %d: %w", s.config.DeviceID, err)
	}

	log.Info("camera released", "device", s.config.DeviceID)
	return nil
}
