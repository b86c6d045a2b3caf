// Package audio plays the short chime that accompanies a scored point.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	chimeFreq     = 988.0 // B5
	chimeOvertone = 1318.5
	chimeLength   = 180 * time.Millisecond
	chimeVolume   = 0.4
)

// Player owns the speaker. A zero-value Player is silent until Init succeeds.
type Player struct {
	mu          sync.Mutex
	initialized bool
}

// NewPlayer creates a silent player.
func NewPlayer() *Player {
	return &Player{}
}

// Init opens the audio device.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	p.initialized = true
	return nil
}

// PlayPoint queues the scoring chime. It never blocks the caller.
func (p *Player) PlayPoint() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Play(NewChime(sampleRate))
}

// Close stops playback and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// NewChime returns a two-partial sine chime with an exponential decay.
func NewChime(sr beep.SampleRate) beep.Streamer {
	total := sr.N(chimeLength)
	pos := 0
	chime := beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if pos >= total {
				return i, i > 0
			}
			t := float64(pos) / float64(sr)
			env := math.Exp(-t * 18)
			v := chimeVolume * env * (0.7*math.Sin(2*math.Pi*chimeFreq*t) + 0.3*math.Sin(2*math.Pi*chimeOvertone*t))
			samples[i][0] = v
			samples[i][1] = v
			pos++
		}
		return len(samples), true
	})
	return beep.Take(total, chime)
}
