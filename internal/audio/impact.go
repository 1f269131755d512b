// Package audio plays the optional hammer impact sound. Everything degrades
// to silence: init failure, or simply never enabling sound, leaves a Player
// whose Thunk is a no-op.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player owns the speaker. Zero value is a silent player.
type Player struct {
	ready bool
}

// NewPlayer initializes the speaker when enabled. An init error is not a
// fault worth surfacing in a classroom demo; the player just stays silent.
func NewPlayer(enabled bool) *Player {
	if !enabled {
		return &Player{}
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return &Player{}
	}
	return &Player{ready: true}
}

// Thunk plays a short decaying thump for the hammer strike. Louder strikes
// get a slightly longer tail.
func (p *Player) Thunk(impulse float64) {
	if p == nil || !p.ready {
		return
	}
	dur := time.Duration(80+int(math.Min(impulse, 100))/2) * time.Millisecond
	speaker.Play(beep.Take(sampleRate.N(dur), newThump(90)))
}

// thump is a sine burst with an exponential decay envelope.
type thump struct {
	freq  float64
	phase float64
	pos   int
}

func newThump(freq float64) beep.Streamer {
	return &thump{freq: freq}
}

func (t *thump) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		env := math.Exp(-float64(t.pos) / float64(sampleRate) * 18)
		val := math.Sin(2*math.Pi*t.phase) * env * 0.6
		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(sampleRate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *thump) Err() error { return nil }
