// Package audio synthesizes short gesture feedback sounds for the demo.
// Sounds are rendered once into buffers at startup; playback is a cheap
// streamer copy on the speaker mixer. When no audio backend is available
// the service degrades to a no-op instead of failing the program.
package audio

import (
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// SoundType identifies one feedback sound
type SoundType int

const (
	// SoundSnap plays when a tab settles into the pile or onto a slot
	SoundSnap SoundType = iota

	// SoundSwipe plays when a swipe commits and the tab flies out
	SoundSwipe

	// SoundOvershoot plays once when a drag first pushes past the bound
	SoundOvershoot

	// SoundShow and SoundHide mark the switcher transitions
	SoundShow
	SoundHide

	soundCount
)

// Config controls the feedback service
type Config struct {
	Enabled      bool
	MasterVolume float64 // 0..1
	SampleRate   int
}

// DefaultConfig returns a muted service at CD sample rate; the demo
// enables it from its own config
func DefaultConfig() Config {
	return Config{Enabled: false, MasterVolume: 0.6, SampleRate: 44100}
}

// LoadConfig reads Config overrides from the environment:
// TABSTACK_AUDIO (bool), TABSTACK_VOLUME (0-100)
func LoadConfig() Config {
	cfg := DefaultConfig()
	if v := os.Getenv("TABSTACK_AUDIO"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.Enabled = enabled
		}
	}
	if v := os.Getenv("TABSTACK_VOLUME"); v != "" {
		if vol, err := strconv.Atoi(v); err == nil {
			cfg.MasterVolume = float64(vol) / 100
			if cfg.MasterVolume < 0 {
				cfg.MasterVolume = 0
			}
			if cfg.MasterVolume > 1 {
				cfg.MasterVolume = 1
			}
		}
	}
	return cfg
}

// Feedback renders and plays the gesture sounds. Safe for use from the
// event loop; playback itself runs on the speaker goroutine
type Feedback struct {
	cfg      Config
	rate     beep.SampleRate
	buffers  [soundCount]*beep.Buffer
	initOnce sync.Once
	disabled bool
}

// NewFeedback creates the service. No audio backend is touched until the
// first Play on an enabled service
func NewFeedback(cfg Config) *Feedback {
	return &Feedback{cfg: cfg, rate: beep.SampleRate(cfg.SampleRate)}
}

// Enabled reports whether the service will produce sound
func (f *Feedback) Enabled() bool { return f.cfg.Enabled && !f.disabled }

// Play schedules the sound. A disabled or degraded service no-ops
func (f *Feedback) Play(sound SoundType) {
	if !f.cfg.Enabled || sound < 0 || sound >= soundCount {
		return
	}
	f.initOnce.Do(f.initSpeaker)
	if f.disabled {
		return
	}
	buf := f.buffers[sound]
	speaker.Play(f.withVolume(buf.Streamer(0, buf.Len())))
}

func (f *Feedback) initSpeaker() {
	if err := speaker.Init(f.rate, f.rate.N(time.Second/20)); err != nil {
		f.disabled = true
		return
	}
	for s := SoundType(0); s < soundCount; s++ {
		buf := beep.NewBuffer(beep.Format{SampleRate: f.rate, NumChannels: 2, Precision: 2})
		buf.Append(f.render(s))
		f.buffers[s] = buf
	}
}

// render builds the streamer for one sound. Frequencies are tuned by ear
func (f *Feedback) render(sound SoundType) beep.Streamer {
	r := f.rate
	switch sound {
	case SoundSnap:
		return NewEnvelope(NewTone(880, 40*time.Millisecond, WaveTriangle, r),
			40*time.Millisecond, 2*time.Millisecond, 20*time.Millisecond, r)
	case SoundSwipe:
		return NewEnvelope(NewSweep(900, 300, 120*time.Millisecond, WaveSine, r),
			120*time.Millisecond, 5*time.Millisecond, 60*time.Millisecond, r)
	case SoundOvershoot:
		return NewEnvelope(NewTone(220, 80*time.Millisecond, WaveTriangle, r),
			80*time.Millisecond, 5*time.Millisecond, 40*time.Millisecond, r)
	case SoundShow:
		return NewEnvelope(NewSweep(400, 800, 90*time.Millisecond, WaveSine, r),
			90*time.Millisecond, 5*time.Millisecond, 30*time.Millisecond, r)
	default:
		return NewEnvelope(NewSweep(800, 400, 90*time.Millisecond, WaveSine, r),
			90*time.Millisecond, 5*time.Millisecond, 30*time.Millisecond, r)
	}
}

func (f *Feedback) withVolume(s beep.Streamer) beep.Streamer {
	if f.cfg.MasterVolume >= 1 {
		return s
	}
	if f.cfg.MasterVolume <= 0 {
		return beep.Silence(0)
	}
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   (f.cfg.MasterVolume - 1) * 4,
	}
}
