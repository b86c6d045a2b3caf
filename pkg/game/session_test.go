package game

import (
	"errors"
	"image"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/teslashibe/colorchase/pkg/tracking"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }
func newClock() *fakeClock { return &fakeClock{t: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)} }
func seeded(seed uint64) *rand.Rand { return rand.New(rand.NewPCG(seed, seed^0x9e3779b9)) }
func newSession(c *fakeClock) *Session { return New(DefaultConfig(), WithClock(c.Now), WithRand(seeded(7))) }
func detAt(p image.Point) *tracking.Detection { return &tracking.Detection{X: float64(p.X), Y: float64(p.Y), Radius: 20} }

// solidSampler returns the same color for every in-frame point.
type solidSampler struct {
	c     tracking.HSV
	calls int
}

func (s *solidSampler) HSVAt(x, y int) (tracking.HSV, bool) {
	s.calls++
	if x < 0 || y < 0 || x >= FrameWidth || y >= FrameHeight {
		return tracking.HSV{}, false
	}
	return s.c, true
}

func TestNew_Idle(t *testing.T) {
	c := newClock()
	s := newSession(c)

	if s.State() != Idle {
		t.Errorf("State: got %v, want idle", s.State())
	}
	if s.Score() != 0 {
		t.Errorf("Score: got %d, want 0", s.Score())
	}
	if s.Remaining() != 20 {
		t.Errorf("Remaining before selection: got %d, want 20", s.Remaining())
	}
	if _, ok := s.Range(); ok {
		t.Error("Range: expected no range before selection")
	}
	if s.Detecting() {
		t.Error("Detecting: expected false while idle")
	}
	assertZoneInBounds(t, s.Zone())
	if s.Zone().Radius != 50 {
		t.Errorf("Zone radius: got %d, want 50", s.Zone().Radius)
	}
}

func TestClick_SelectsColor(t *testing.T) {
	c := newClock()
	s := newSession(c)
	sampler := &solidSampler{c: tracking.HSV{H: 60, S: 150, V: 150}}

	res, err := s.Click(300, 240, sampler)
	if err != nil {
		t.Fatalf("Click failed: %v", err)
	}

	if !res.Selected || res.Ended {
		t.Errorf("ClickResult: got %+v, want Selected", res)
	}
	want := tracking.ColorRange{
		Lower: tracking.HSV{H: 40, S: 100, V: 100},
		Upper: tracking.HSV{H: 80, S: 255, V: 255},
	}
	if r, ok := s.Range(); !ok || r != want {
		t.Errorf("Range: got %v (ok=%v), want %v", r, ok, want)
	}
	if s.Score() != 0 {
		t.Errorf("Score: got %d, want 0", s.Score())
	}
	if !s.Active() || s.State() != Active {
		t.Errorf("State: got %v, want active", s.State())
	}
	if !s.StartTime().Equal(c.Now()) {
		t.Errorf("StartTime: got %v, want %v", s.StartTime(), c.Now())
	}
	if s.ID() == uuid.Nil {
		t.Error("ID: expected a session id after selection")
	}
}

func TestClick_EndButtonAlwaysEnds(t *testing.T) {
	corners := []image.Point{
		{500, 10}, {640, 10}, {500, 50}, {640, 50}, {570, 30},
	}

	for _, state := range []State{Idle, Active} {
		for _, p := range corners {
			t.Run(state.String()+"_"+p.String(), func(t *testing.T) {
				c := newClock()
				s := newSession(c)
				sampler := &solidSampler{c: tracking.HSV{H: 30, S: 200, V: 200}}
				if state == Active {
					if _, err := s.Click(100, 100, sampler); err != nil {
						t.Fatalf("select: %v", err)
					}
				}
				before, _ := s.Range()
				calls := sampler.calls

				res, err := s.Click(p.X, p.Y, sampler)
				if err != nil {
					t.Fatalf("Click failed: %v", err)
				}
				if !res.Ended || res.Selected {
					t.Errorf("ClickResult: got %+v, want Ended", res)
				}
				if s.State() != Ended {
					t.Errorf("State: got %v, want ended", s.State())
				}
				if sampler.calls != calls {
					t.Error("end button click must not sample a color")
				}
				if after, _ := s.Range(); after != before {
					t.Errorf("Range changed on end click: %v -> %v", before, after)
				}
			})
		}
	}
}

func TestClick_JustOutsideEndButtonSelects(t *testing.T) {
	outside := []image.Point{{499, 30}, {570, 9}, {570, 51}}

	for _, p := range outside {
		t.Run(p.String(), func(t *testing.T) {
			s := newSession(newClock())
			res, err := s.Click(p.X, p.Y, &solidSampler{c: tracking.HSV{H: 90, S: 200, V: 200}})
			if err != nil {
				t.Fatalf("Click failed: %v", err)
			}
			if !res.Selected {
				t.Errorf("ClickResult: got %+v, want Selected", res)
			}
		})
	}
}

func TestClick_ReselectResetsScoreAndTimer(t *testing.T) {
	c := newClock()
	s := newSession(c)
	sampler := &solidSampler{c: tracking.HSV{H: 60, S: 150, V: 150}}

	if _, err := s.Click(10, 200, sampler); err != nil {
		t.Fatalf("select: %v", err)
	}
	firstID := s.ID()
	c.Advance(3 * time.Second)
	s.Tick(detAt(s.Zone().Center))
	s.Tick(detAt(s.Zone().Center))
	if s.Score() != 2 {
		t.Fatalf("Score: got %d, want 2", s.Score())
	}
	c.Advance(5 * time.Second)
	zone := s.Zone()

	sampler.c = tracking.HSV{H: 170, S: 200, V: 200}
	if _, err := s.Click(20, 300, sampler); err != nil {
		t.Fatalf("reselect: %v", err)
	}

	if s.Score() != 0 {
		t.Errorf("Score after reselect: got %d, want 0", s.Score())
	}
	if !s.StartTime().Equal(c.Now()) {
		t.Errorf("StartTime after reselect: got %v, want %v", s.StartTime(), c.Now())
	}
	if s.Remaining() != 20 {
		t.Errorf("Remaining after reselect: got %d, want 20", s.Remaining())
	}
	if r, _ := s.Range(); r.Upper.H != 179 || r.Lower.H != 150 {
		t.Errorf("Range after reselect: got %v", r)
	}
	if s.Zone() != zone {
		t.Errorf("Zone moved on reselect: %v -> %v", zone, s.Zone())
	}
	if s.ID() == firstID {
		t.Error("ID: expected a new session id after reselect")
	}
}

func TestClick_NoSample(t *testing.T) {
	s := newSession(newClock())

	if _, err := s.Click(100, 479+50, &solidSampler{}); !errors.Is(err, ErrNoSample) {
		t.Errorf("out of frame: got %v, want ErrNoSample", err)
	}
	if _, err := s.Click(100, 100, nil); !errors.Is(err, ErrNoSample) {
		t.Errorf("nil sampler: got %v, want ErrNoSample", err)
	}
	if s.State() != Idle {
		t.Errorf("State: got %v, want idle", s.State())
	}
}

func TestClick_AfterEnd(t *testing.T) {
	s := newSession(newClock())
	s.End()

	if _, err := s.Click(100, 100, &solidSampler{}); !errors.Is(err, ErrGameOver) {
		t.Errorf("got %v, want ErrGameOver", err)
	}
	if _, err := s.Click(550, 30, &solidSampler{}); !errors.Is(err, ErrGameOver) {
		t.Errorf("end button after end: got %v, want ErrGameOver", err)
	}
}

func TestTick_ScoringBoundary(t *testing.T) {
	tests := []struct {
		name   string
		offset image.Point
		scores bool
	}{
		{"at center", image.Pt(0, 0), true},
		{"radius minus one", image.Pt(49, 0), true},
		{"radius minus one vertical", image.Pt(0, -49), true},
		{"exactly radius", image.Pt(50, 0), false},
		{"exactly radius 3-4-5", image.Pt(30, 40), false},
		{"outside", image.Pt(60, 10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newClock()
			s := newSession(c)
			if _, err := s.Click(10, 200, &solidSampler{c: tracking.HSV{H: 60, S: 150, V: 150}}); err != nil {
				t.Fatalf("select: %v", err)
			}
			zone := s.Zone()

			res := s.Tick(detAt(zone.Center.Add(tt.offset)))

			if res.Scored != tt.scores {
				t.Errorf("Scored: got %v, want %v", res.Scored, tt.scores)
			}
			wantScore := 0
			if tt.scores {
				wantScore = 1
			}
			if s.Score() != wantScore || res.Score != wantScore {
				t.Errorf("Score: got %d (result %d), want %d", s.Score(), res.Score, wantScore)
			}
			if !tt.scores && s.Zone() != zone {
				t.Errorf("Zone moved without scoring: %v -> %v", zone, s.Zone())
			}
			assertZoneInBounds(t, s.Zone())
		})
	}
}

func TestTick_ScoreRelocatesZone(t *testing.T) {
	c := newClock()
	s := newSession(c)
	if _, err := s.Click(10, 200, &solidSampler{c: tracking.HSV{H: 60, S: 150, V: 150}}); err != nil {
		t.Fatalf("select: %v", err)
	}

	moved := 0
	for i := 1; i <= 200; i++ {
		before := s.Zone()
		res := s.Tick(detAt(before.Center))
		if !res.Scored {
			t.Fatalf("tick %d: expected score", i)
		}
		if s.Score() != i {
			t.Fatalf("tick %d: Score got %d, want %d (one point per tick)", i, s.Score(), i)
		}
		if res.Zone != s.Zone() {
			t.Errorf("tick %d: result zone %v differs from session zone %v", i, res.Zone, s.Zone())
		}
		if s.Zone().Center != before.Center {
			moved++
		}
		assertZoneInBounds(t, s.Zone())
	}
	if moved == 0 {
		t.Error("zone never relocated after scoring")
	}
}

func TestTick_IgnoresDetectionWhenNotActive(t *testing.T) {
	s := newSession(newClock())
	zone := s.Zone()

	res := s.Tick(detAt(zone.Center))
	if res.Scored || s.Score() != 0 {
		t.Errorf("idle tick scored: %+v", res)
	}

	s.End()
	res = s.Tick(detAt(zone.Center))
	if res.Scored || res.Ended {
		t.Errorf("ended tick: got %+v", res)
	}
}

func TestTick_NilDetection(t *testing.T) {
	s := newSession(newClock())
	if _, err := s.Click(10, 200, &solidSampler{c: tracking.HSV{H: 60, S: 150, V: 150}}); err != nil {
		t.Fatalf("select: %v", err)
	}

	res := s.Tick(nil)
	if res.Scored || s.Score() != 0 {
		t.Errorf("nil detection scored: %+v", res)
	}
}

func TestTick_CountdownEndsGame(t *testing.T) {
	c := newClock()
	s := newSession(c)
	if _, err := s.Click(10, 200, &solidSampler{c: tracking.HSV{H: 60, S: 150, V: 150}}); err != nil {
		t.Fatalf("select: %v", err)
	}
	s.Tick(detAt(s.Zone().Center))

	last := s.Remaining()
	for step := 0; step < 39; step++ {
		c.Advance(500 * time.Millisecond)
		res := s.Tick(nil)
		if res.Remaining > last {
			t.Fatalf("Remaining increased: %d -> %d", last, res.Remaining)
		}
		if res.Remaining < 0 {
			t.Fatalf("Remaining negative: %d", res.Remaining)
		}
		if res.Ended {
			t.Fatalf("ended early at %v elapsed", c.Now().Sub(s.StartTime()))
		}
		last = res.Remaining
	}
	if last != 1 {
		t.Errorf("Remaining at 19.5s: got %d, want 1", last)
	}

	c.Advance(500 * time.Millisecond)
	res := s.Tick(nil)
	if !res.Ended || res.Remaining != 0 {
		t.Errorf("at 20s: got %+v, want Ended with 0 remaining", res)
	}
	if s.State() != Ended {
		t.Errorf("State: got %v, want ended", s.State())
	}

	sum := s.End()
	if sum.Score != 1 {
		t.Errorf("Summary score: got %d, want 1", sum.Score)
	}
	if sum.TotalSeconds() != 20 {
		t.Errorf("Summary total: got %d, want 20", sum.TotalSeconds())
	}

	c.Advance(10 * time.Second)
	if s.Remaining() != 0 {
		t.Errorf("Remaining after end: got %d, want 0", s.Remaining())
	}
}

func TestTick_IdleNeverEnds(t *testing.T) {
	c := newClock()
	s := newSession(c)

	c.Advance(time.Minute)
	res := s.Tick(nil)
	if res.Ended || s.State() != Idle {
		t.Errorf("idle session ended: %+v", res)
	}
	if res.Remaining != 20 {
		t.Errorf("Remaining while idle: got %d, want 20", res.Remaining)
	}
}

func TestEnd_WithoutStart(t *testing.T) {
	s := newSession(newClock())

	sum := s.End()
	if sum.TotalTime != 0 || sum.Score != 0 {
		t.Errorf("Summary: got %+v, want zero time and score", sum)
	}
	if s.State() != Ended {
		t.Errorf("State: got %v, want ended", s.State())
	}
}

func TestEnd_Idempotent(t *testing.T) {
	c := newClock()
	s := newSession(c)
	if _, err := s.Click(10, 200, &solidSampler{c: tracking.HSV{H: 60, S: 150, V: 150}}); err != nil {
		t.Fatalf("select: %v", err)
	}
	c.Advance(7*time.Second + 900*time.Millisecond)

	first := s.End()
	c.Advance(5 * time.Second)
	second := s.End()

	if first != second {
		t.Errorf("End not idempotent: %+v vs %+v", first, second)
	}
	if first.TotalSeconds() != 7 {
		t.Errorf("TotalSeconds: got %d, want 7", first.TotalSeconds())
	}
}

func TestZone_Contains(t *testing.T) {
	z := Zone{Center: image.Pt(100, 100), Radius: 50}

	tests := []struct {
		p    image.Point
		want bool
	}{
		{image.Pt(100, 100), true},
		{image.Pt(149, 100), true},
		{image.Pt(150, 100), false},
		{image.Pt(135, 135), true},
		{image.Pt(136, 136), false},
	}

	for _, tt := range tests {
		if got := z.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v): got %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestRandomCenter_Bounds(t *testing.T) {
	s := New(DefaultConfig(), WithRand(seeded(42)))
	for i := 0; i < 5000; i++ {
		p := s.randomCenter()
		if p.X < 50 || p.X > 590 || p.Y < 50 || p.Y > 430 {
			t.Fatalf("center %v outside [50,590]x[50,430]", p)
		}
	}
}

func TestState_String(t *testing.T) {
	tests := []struct {
		s    State
		want string
	}{
		{Idle, "idle"},
		{Active, "active"},
		{Ended, "ended"},
		{State(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("String(%d): got %q, want %q", tt.s, got, tt.want)
		}
	}
}

func assertZoneInBounds(t *testing.T, z Zone) {
	t.Helper()
	if z.Center.X < 50 || z.Center.X > 590 || z.Center.Y < 50 || z.Center.Y > 430 {
		t.Errorf("zone center %v outside [50,590]x[50,430]", z.Center)
	}
}
