package colorchase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/teslashibe/colorchase/internal/config"
	"github.com/teslashibe/colorchase/internal/log"
	"github.com/teslashibe/colorchase/pkg/audio"
	"github.com/teslashibe/colorchase/pkg/camera"
	"github.com/teslashibe/colorchase/pkg/debug"
	"github.com/teslashibe/colorchase/pkg/game"
	"github.com/teslashibe/colorchase/pkg/render"
	"github.com/teslashibe/colorchase/pkg/tracking"
	"github.com/teslashibe/colorchase/pkg/tracking/detection"
	"gocv.io/x/gocv"
)

// FrameSource supplies camera frames. camera.Source implements it.
type FrameSource interface {
	Read(dst *gocv.Mat) error
	Close() error
}

// Display shows frames and reports input. render.Surface implements it.
type Display interface {
	Show(frame gocv.Mat)
	Poll(delayMs int) render.Input
	Close() error
}

// Chime is notified on every point. audio.Player implements it.
type Chime interface {
	PlayPoint()
}

// App is the game application orchestrator.
// It owns every component and runs the frame loop on the caller's goroutine.
type App struct {
	config Config

	source   FrameSource
	display  Display
	detector detection.Detector
	session  *game.Session
	chime    Chime
	player   *audio.Player

	// showSummary blocks until the player dismisses the summary.
	showSummary func(game.Summary) error

	frame   gocv.Mat // Clean mirrored frame; detection and sampling read it
	canvas  gocv.Mat // Frame plus overlays, what the player sees
	sampler *detection.FrameSampler
	ready   bool

	releaseOnce sync.Once
	releaseErr  error
}

// New creates a new application with the given configuration.
func New(cfg Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	debug.Enabled = cfg.Debug
	debug.Tracking = cfg.DebugTracking

	return &App{config: cfg}, nil
}

// Init opens the camera and the window and creates the game session.
// Call this after New() and before Run().
func (a *App) Init() error {
	fmt.Println("🎨 Color Chase")
	fmt.Println("==============")
	if debug.Enabled {
		fmt.Println("🐛 Debug mode enabled")
	}

	fmt.Print("📹 Opening camera... ")
	src, err := camera.Open(a.config.Camera)
	if err != nil {
		return fmt.Errorf("camera: %w", err)
	}
	a.source = src
	fmt.Println("✅")

	size := src.Config()
	a.display = render.NewSurface(config.GameWindow)
	a.detector = detection.NewColorDetector(a.detectorConfig())
	a.session = game.New(a.gameConfig(size.Width, size.Height))

	a.showSummary = func(sum game.Summary) error {
		return render.ShowSummary(config.SummaryWindow, sum, size.Width, size.Height)
	}

	if a.config.Sound {
		a.initSound()
	}

	a.prepare()

	fmt.Println("🖱️  Click a colored object to start, 'q' to quit")
	return nil
}

// gameConfig returns the session parameters for a frame of the given size.
func (a *App) gameConfig(width, height int) game.Config {
	cfg := game.DefaultConfig()
	cfg.Width, cfg.Height = width, height
	cfg.Sensitivity = a.config.Tracking.Sensitivity
	return cfg
}

func (a *App) detectorConfig() detection.Config {
	cfg := detection.DefaultConfig()
	cfg.MinRadius = a.config.Tracking.MinRadius
	return cfg
}

func (a *App) initSound() {
	fmt.Print("🔊 Opening audio... ")
	p := audio.NewPlayer()
	if err := p.Init(); err != nil {
		fmt.Printf("⚠️  %v (continuing without sound)\n", err)
		return
	}
	a.player = p
	a.chime = p
	fmt.Println("✅")
}

// prepare allocates the per-frame buffers.
func (a *App) prepare() {
	a.frame = gocv.NewMat()
	a.canvas = gocv.NewMat()
	a.sampler = detection.NewFrameSampler(&a.frame)
	a.ready = true
}

// Run drives the game until the player quits, the game ends or the camera
// stops producing frames. A camera failure is returned as an error wrapping
// camera.ErrFrameUnavailable; the camera is released on every path.
func (a *App) Run(ctx context.Context) error {
	defer a.releaseCamera()

	for {
		if ctx.Err() != nil {
			log.Info("loop cancelled")
			return nil
		}

		if err := a.source.Read(&a.frame); err != nil {
			log.Error("frame read failed", "error", err)
			return fmt.Errorf("read frame: %w", err)
		}

		ended, quit := a.tick()
		if quit {
			log.Info("quit requested")
			return nil
		}
		if ended {
			return a.finish()
		}
	}
}

// tick processes the frame in a.frame: detection, scoring, drawing, input.
func (a *App) tick() (ended, quit bool) {
	a.frame.CopyTo(&a.canvas)

	var det *tracking.Detection
	if a.session.Detecting() {
		det = a.detect()
		render.DrawBlob(&a.canvas, det)
	}

	render.DrawZone(&a.canvas, a.session.Zone())

	res := a.session.Tick(det)
	if res.Scored {
		render.DrawPoint(&a.canvas)
		if a.chime != nil {
			a.chime.PlayPoint()
		}
		debug.Log("⭐ Point! score=%d\n", res.Score)
	}

	render.DrawHUD(&a.canvas, res.Score, res.Remaining, game.EndButton)

	if res.Ended {
		log.Info("time is up", "score", res.Score)
		return true, false
	}

	a.display.Show(a.canvas)

	in := a.display.Poll(a.config.PollDelayMs)
	for _, p := range in.Clicks {
		if a.click(p.X, p.Y) {
			return true, false
		}
	}

	return false, in.Key == config.QuitKey
}

func (a *App) detect() *tracking.Detection {
	r, _ := a.session.Range()
	det, err := a.detector.Detect(a.frame, r)
	if err != nil {
		log.Warn("detection failed", "error", err)
		return nil
	}
	return det
}

// click forwards a click to the session and reports whether it ended the game.
func (a *App) click(x, y int) bool {
	restart := a.session.Active()
	res, err := a.session.Click(x, y, a.sampler)
	switch {
	case errors.Is(err, game.ErrNoSample):
		log.Debug("click ignored", "x", x, "y", y, "error", err)
		return false
	case err != nil:
		log.Debug("click ignored", "x", x, "y", y, "error", err)
		return a.session.State() == game.Ended
	}

	switch {
	case res.Selected && restart:
		fmt.Printf("🔄 Color reselected: %v, score and timer reset\n", res.Sample)
	case res.Selected:
		fmt.Printf("🎯 Color selected: %v\n", res.Sample)
	}
	return res.Ended
}

// finish performs the ordered shutdown after the game ends: camera first,
// then the game window, then the blocking summary.
func (a *App) finish() error {
	sum := a.session.End()

	if err := a.releaseCamera(); err != nil {
		log.Warn("camera release failed", "error", err)
	}
	if err := a.display.Close(); err != nil {
		log.Warn("window close failed", "error", err)
	}

	fmt.Printf("🏁 Final score: %d in %ds\n", sum.Score, sum.TotalSeconds())
	if a.showSummary != nil {
		if err := a.showSummary(sum); err != nil {
			return fmt.Errorf("summary: %w", err)
		}
	}
	return nil
}

func (a *App) releaseCamera() error {
	a.releaseOnce.Do(func() {
		if a.source != nil {
			a.releaseErr = a.source.Close()
		}
	})
	return a.releaseErr
}

// Session returns the game session.
func (a *App) Session() *game.Session {
	return a.session
}

// Shutdown releases every component. Safe to call after Run on any path.
func (a *App) Shutdown() {
	fmt.Println("\n👋 Goodbye!")

	if err := a.releaseCamera(); err != nil {
		log.Warn("camera release failed", "error", err)
	}
	if a.display != nil {
		if err := a.display.Close(); err != nil {
			log.Warn("window close failed", "error", err)
		}
	}
	if a.detector != nil {
		if err := a.detector.Close(); err != nil {
			log.Warn("detector close failed", "error", err)
		}
	}
	if a.player != nil {
		a.player.Close()
	}
	if a.ready {
		a.frame.Close()
		a.canvas.Close()
		a.ready = false
	}
}
