package audio

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

const (
	// DefaultSampleRate is used when Options leave it unset.
	DefaultSampleRate = beep.SampleRate(44100)

	// maxVoices caps simultaneous cues; extra events are dropped.
	maxVoices = 8
)

// Options configures the speaker sink.
type Options struct {
	SampleRate beep.SampleRate
	Volume     float64 // 0..1
}

// Sink is a platformer.EffectSink that plays a cue per event through the
// system speaker. Emit only queues the cue and never waits for playback.
type Sink struct {
	rate   beep.SampleRate
	volume float64
	mixer  *beep.Mixer
	noise  *rand.Rand
	logger *log.Logger
	live   bool // whether the speaker is pulling from mixer
}

var _ platformer.EffectSink = (*Sink)(nil)

// NewSink opens the speaker and starts playing an empty mixer.
func NewSink(opts Options, logger *log.Logger) (*Sink, error) {
	s := newSink(opts, logger)
	if err := speaker.Init(s.rate, s.rate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(s.mixer)
	s.live = true
	s.logger.Debug("speaker ready", "rate", int(s.rate), "volume", s.volume)
	return s, nil
}

// newSink builds a sink without touching the speaker.
func newSink(opts Options, logger *log.Logger) *Sink {
	rate := opts.SampleRate
	if rate <= 0 {
		rate = DefaultSampleRate
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Sink{
		rate:   rate,
		volume: opts.Volume,
		mixer:  &beep.Mixer{},
		noise:  rand.New(rand.NewSource(time.Now().UnixNano())), //#nosec G404 -- noise waveform, not security
		logger: logger.WithPrefix("audio"),
	}
}

// Emit queues the cue for e. Events without a cue and events arriving
// while maxVoices cues are playing are dropped.
func (s *Sink) Emit(e platformer.Event) {
	st := Build(e.Kind, s.rate, s.volume, s.noise)
	if st == nil {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()
	if s.mixer.Len() >= maxVoices {
		s.logger.Debug("cue dropped", "event", e.Kind)
		return
	}
	s.mixer.Add(st)
}

// Voices returns the number of cues still playing.
func (s *Sink) Voices() int {
	speaker.Lock()
	defer speaker.Unlock()
	return s.mixer.Len()
}

// Close stops playback and releases the speaker.
func (s *Sink) Close() {
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	if s.live {
		speaker.Close()
		s.live = false
	}
}
