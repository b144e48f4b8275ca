// Package audio plays synthesized sound cues for gameplay events.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSquare Wave = iota
	WaveSine
	WaveNoise
)

// Tone is one note of a cue.
type Tone struct {
	Freq     float64
	Duration time.Duration
	Wave     Wave
}

// release is how long each tone fades out at its end.
const release = 15 * time.Millisecond

// cues maps events to short chiptune phrases.
var cues = map[platformer.EventKind][]Tone{
	platformer.EventJump: {
		{Freq: 392, Duration: 40 * time.Millisecond, Wave: WaveSquare},
		{Freq: 587.33, Duration: 60 * time.Millisecond, Wave: WaveSquare},
	},
	platformer.EventCoin: {
		{Freq: 987.77, Duration: 60 * time.Millisecond, Wave: WaveSquare},
		{Freq: 1318.51, Duration: 140 * time.Millisecond, Wave: WaveSquare},
	},
	platformer.EventEnemyDefeat: {
		{Freq: 220, Duration: 40 * time.Millisecond, Wave: WaveSquare},
		{Freq: 0, Duration: 60 * time.Millisecond, Wave: WaveNoise},
	},
	platformer.EventPowerUp: {
		{Freq: 523.25, Duration: 60 * time.Millisecond, Wave: WaveSine},
		{Freq: 659.25, Duration: 60 * time.Millisecond, Wave: WaveSine},
		{Freq: 783.99, Duration: 60 * time.Millisecond, Wave: WaveSine},
		{Freq: 1046.5, Duration: 120 * time.Millisecond, Wave: WaveSine},
	},
	platformer.EventDeath: {
		{Freq: 493.88, Duration: 120 * time.Millisecond, Wave: WaveSquare},
		{Freq: 349.23, Duration: 120 * time.Millisecond, Wave: WaveSquare},
		{Freq: 261.63, Duration: 240 * time.Millisecond, Wave: WaveSquare},
	},
	platformer.EventLevelComplete: {
		{Freq: 523.25, Duration: 100 * time.Millisecond, Wave: WaveSquare},
		{Freq: 659.25, Duration: 100 * time.Millisecond, Wave: WaveSquare},
		{Freq: 783.99, Duration: 100 * time.Millisecond, Wave: WaveSquare},
		{Freq: 1046.5, Duration: 300 * time.Millisecond, Wave: WaveSquare},
	},
	platformer.EventFireball: {
		{Freq: 0, Duration: 50 * time.Millisecond, Wave: WaveNoise},
	},
	platformer.EventGameOver: {
		{Freq: 392, Duration: 200 * time.Millisecond, Wave: WaveSine},
		{Freq: 329.63, Duration: 200 * time.Millisecond, Wave: WaveSine},
		{Freq: 261.63, Duration: 400 * time.Millisecond, Wave: WaveSine},
	},
}

// Cue returns the tones played for an event kind, nil for silent kinds.
func Cue(kind platformer.EventKind) []Tone {
	return cues[kind]
}

// CueLength returns how many samples the cue for kind lasts at rate.
func CueLength(kind platformer.EventKind, rate beep.SampleRate) int {
	n := 0
	for _, t := range cues[kind] {
		n += rate.N(t.Duration)
	}
	return n
}

// oscillator generates a single waveform for a fixed number of samples.
type oscillator struct {
	freq     float64
	phase    float64
	position int
	length   int
	fade     int
	wave     Wave
	rate     beep.SampleRate
	noise    *rand.Rand
}

func newOscillator(t Tone, rate beep.SampleRate, noise *rand.Rand) *oscillator {
	length := rate.N(t.Duration)
	return &oscillator{
		freq:   t.Freq,
		length: length,
		fade:   min(rate.N(release), length),
		wave:   t.Wave,
		rate:   rate,
		noise:  noise,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		// Linear release over the last samples
		if left := o.length - o.position; left < o.fade {
			val *= float64(left) / float64(o.fade)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// Build renders the cue for kind as a streamer at the given volume
// (0 silences it, 1 is full scale). It returns nil for silent kinds.
func Build(kind platformer.EventKind, rate beep.SampleRate, volume float64, noise *rand.Rand) beep.Streamer {
	tones := cues[kind]
	if len(tones) == 0 {
		return nil
	}

	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		parts = append(parts, beep.Take(rate.N(t.Duration), newOscillator(t, rate, noise)))
	}

	seq := beep.Seq(parts...)
	if volume <= 0 {
		return &effects.Volume{Streamer: seq, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: seq, Base: 2, Volume: math.Log2(min(volume, 1))}
}
