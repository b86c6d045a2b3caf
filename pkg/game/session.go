package game

import (
	"image"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/teslashibe/colorchase/internal/log"
	"github.com/teslashibe/colorchase/pkg/tracking"
)

// Session owns all mutable game state. It is driven from a single goroutine:
// Click for pointer input and Tick once per frame.
type Session struct {
	config Config
	now    func() time.Time
	rng    *rand.Rand

	id       uuid.UUID
	state    State
	score    int
	start    time.Time // zero until the first color selection
	colors   tracking.ColorRange
	hasRange bool
	zone     Zone
	summary  *Summary
	logger   *slog.Logger // carries the session id once a color is selected
}

// Option configures a Session.
type Option func(*Session)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithRand sets the random source used to place the target zone.
func WithRand(r *rand.Rand) Option {
	return func(s *Session) { s.rng = r }
}

// New creates an idle session with the zone at a random position.
func New(cfg Config, opts ...Option) *Session {
	s := &Session{
		config: cfg,
		now:    time.Now,
		state:  Idle,
		logger: log.L(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	s.zone = Zone{Center: s.randomCenter(), Radius: cfg.ZoneRadius}
	return s
}

// Click handles a pointer press at frame coordinates (x, y).
// The end button always wins over color selection. Any other click samples
// the color under the pointer and restarts the game with it, even when a
// game is already running.
func (s *Session) Click(x, y int, sampler Sampler) (ClickResult, error) {
	if s.state == Ended {
		return ClickResult{}, ErrGameOver
	}

	if image.Pt(x, y).In(s.config.EndButton) {
		s.End()
		return ClickResult{Ended: true}, nil
	}

	if sampler == nil {
		return ClickResult{}, ErrNoSample
	}
	sample, ok := sampler.HSVAt(x, y)
	if !ok {
		return ClickResult{}, ErrNoSample
	}

	s.colors = tracking.RangeAround(sample, s.config.Sensitivity)
	s.hasRange = true
	s.score = 0
	s.start = s.now()
	s.state = Active
	s.id = uuid.New()
	s.logger = log.With("session", s.id)

	s.logger.Info("color selected",
		"sample", sample.String(),
		"range", s.colors.String())

	return ClickResult{Selected: true, Sample: sample, Range: s.colors}, nil
}

// Tick advances the game by one frame. det is this frame's detection, or nil.
// A detection strictly inside the zone scores one point and moves the zone.
// The game ends on the tick where the remaining time reaches zero.
func (s *Session) Tick(det *tracking.Detection) TickResult {
	var res TickResult

	if s.state == Active && det != nil && s.zone.Contains(det.Center()) {
		s.score++
		s.zone.Center = s.randomCenter()
		res.Scored = true
		s.logger.Debug("point scored", "score", s.score, "zone", s.zone.Center)
	}

	res.Remaining = s.Remaining()
	if s.state == Active && res.Remaining <= 0 {
		s.End()
		res.Ended = true
	}

	res.Score = s.score
	res.Zone = s.zone
	return res
}

// Remaining returns the whole seconds left. Before any selection it is the
// full duration; it never goes below zero.
func (s *Session) Remaining() int {
	limit := int(s.config.Duration / time.Second)
	if s.start.IsZero() {
		return limit
	}
	return max(0, limit-s.elapsedSeconds())
}

// End moves the session to Ended and returns its summary. Calling it again
// returns the same summary.
func (s *Session) End() Summary {
	if s.summary != nil {
		return *s.summary
	}

	var total time.Duration
	if !s.start.IsZero() {
		total = time.Duration(s.elapsedSeconds()) * time.Second
	}

	s.state = Ended
	s.summary = &Summary{
		SessionID: s.id,
		Score:     s.score,
		TotalTime: total,
	}

	s.logger.Info("game ended", "score", s.score, "total", total)
	return *s.summary
}

func (s *Session) elapsedSeconds() int {
	return int(s.now().Sub(s.start) / time.Second)
}

func (s *Session) randomCenter() image.Point {
	m := s.config.ZoneMargin
	return image.Pt(
		m+s.rng.IntN(s.config.Width-2*m+1),
		m+s.rng.IntN(s.config.Height-2*m+1),
	)
}

// State returns the current phase.
func (s *Session) State() State { return s.state }

// Active reports whether the countdown is running.
func (s *Session) Active() bool { return s.state == Active }

// Detecting reports whether frames should be searched for the selected color.
func (s *Session) Detecting() bool { return s.state == Active && s.hasRange }

// Score returns the points scored since the last color selection.
func (s *Session) Score() int { return s.score }

// Zone returns the current target zone.
func (s *Session) Zone() Zone { return s.zone }

// Range returns the selected color range, if any.
func (s *Session) Range() (tracking.ColorRange, bool) { return s.colors, s.hasRange }

// StartTime returns the time of the last color selection, zero if none.
func (s *Session) StartTime() time.Time { return s.start }

// ID identifies the current game; it changes on every color selection.
func (s *Session) ID() uuid.UUID { return s.id }
