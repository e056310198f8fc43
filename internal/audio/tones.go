// Package audio plays short synthesized cues for game events.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const sampleRate = beep.SampleRate(44100)

// WaveType — форма сигнала осциллятора
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator generates a tone of freq Hz for duration.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{freq: freq, duration: rate.N(duration), wave: wave, rate: rate}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
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
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
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

// fade линейно гасит поток к концу, чтобы не было щелчка.
type fade struct {
	streamer beep.Streamer
	position int
	total    int
}

func newFade(s beep.Streamer, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &fade{streamer: s, total: rate.N(duration)}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1 - float64(f.position)/float64(f.total)
		if vol < 0 {
			vol = 0
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		f.position++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// note is one step of a cue.
type note struct {
	freq     float64
	duration time.Duration
	wave     WaveType
}

func melody(rate beep.SampleRate, notes ...note) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, newFade(NewOscillator(n.freq, n.duration, n.wave, rate), n.duration, rate))
	}
	return beep.Seq(parts...)
}

// Cue identifies a sound.
type Cue int

const (
	CueKill Cue = iota
	CueLeak
	CueWaveCleared
	CueFloorCleared
	CueGameOver
)

// Build creates a fresh streamer for c at volume vol.
func Build(c Cue, vol float64, rate beep.SampleRate) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CueKill:
		s = melody(rate, note{1320, 40 * time.Millisecond, WaveSine})
	case CueLeak:
		s = melody(rate, note{110, 180 * time.Millisecond, WaveSaw})
	case CueWaveCleared:
		s = melody(rate,
			note{660, 90 * time.Millisecond, WaveSine},
			note{880, 140 * time.Millisecond, WaveSine})
	case CueFloorCleared:
		s = melody(rate,
			note{523, 90 * time.Millisecond, WaveSquare},
			note{659, 90 * time.Millisecond, WaveSquare},
			note{784, 200 * time.Millisecond, WaveSquare})
	case CueGameOver:
		s = melody(rate,
			note{392, 200 * time.Millisecond, WaveSaw},
			note{311, 200 * time.Millisecond, WaveSaw},
			note{196, 400 * time.Millisecond, WaveSaw})
	default:
		return nil
	}
	return newVolume(s, vol)
}
