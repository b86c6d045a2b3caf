package audio

import (
	"math"
	"testing"

	"github.com/gopxl/beep"
)

func TestNewChime_Length(t *testing.T) {
	sr := beep.SampleRate(8000)
	s := NewChime(sr)

	buf := make([][2]float64, 256)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}

	if want := sr.N(chimeLength); total != want {
		t.Errorf("chime length: got %d samples, want %d", total, want)
	}
}

func TestNewChime_DecaysAndStaysInRange(t *testing.T) {
	sr := beep.SampleRate(8000)
	s := NewChime(sr)

	buf := make([][2]float64, sr.N(chimeLength))
	n, _ := s.Stream(buf)

	peak := func(from, to int) float64 {
		m := 0.0
		for _, smp := range buf[from:to] {
			if smp[0] != smp[1] {
				t.Fatalf("channels differ: %v", smp)
			}
			m = math.Max(m, math.Abs(smp[0]))
		}
		return m
	}

	head := peak(0, n/4)
	tail := peak(3*n/4, n)
	if head > 1 {
		t.Errorf("peak %v exceeds full scale", head)
	}
	if tail >= head {
		t.Errorf("chime should decay: head peak %v, tail peak %v", head, tail)
	}
}

func TestPlayer_SilentUntilInit(t *testing.T) {
	p := NewPlayer()
	// Neither call may touch the speaker before Init.
	p.PlayPoint()
	p.Close()
}
