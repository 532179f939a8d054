// Package audio provides synthesized sound cues for the catcher. Cues are
// generated beep streamers (no sound files); the speaker backend is optional
// and the package degrades to silence when it is unavailable.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
	WaveNoise
)

// note is a finite streamer: one oscillated tone with a linear attack and
// release envelope.
type note struct {
	freq    float64
	phase   float64
	wave    WaveType
	rate    beep.SampleRate
	volume  float64
	pos     int
	total   int
	attack  int
	release int
}

// NewNote creates a single enveloped tone of the given duration.
func NewNote(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate, volume float64) beep.Streamer {
	total := rate.N(d)
	att := rate.N(5 * time.Millisecond)
	rel := rate.N(30 * time.Millisecond)
	if att+rel > total {
		att = total / 4
		rel = total / 4
	}
	return &note{
		freq:    freq,
		wave:    wave,
		rate:    rate,
		volume:  volume,
		total:   total,
		attack:  att,
		release: rel,
	}
}

func (n *note) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if n.pos >= n.total {
			return i, i > 0
		}

		var val float64
		switch n.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * n.phase)
		case WaveSquare:
			if n.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveTriangle:
			val = 4*math.Abs(n.phase-0.5) - 1
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		vol := n.volume
		if n.pos < n.attack && n.attack > 0 {
			vol *= float64(n.pos) / float64(n.attack)
		}
		if rem := n.total - n.pos; rem < n.release && n.release > 0 {
			vol *= float64(rem) / float64(n.release)
		}

		samples[i][0] = val * vol
		samples[i][1] = val * vol

		n.phase += n.freq / float64(n.rate)
		n.phase -= math.Floor(n.phase)
		n.pos++
	}
	return len(samples), true
}

func (n *note) Err() error { return nil }

// rest is a finite silent streamer used for gaps between notes.
type rest struct {
	pos   int
	total int
}

// NewRest creates a silent streamer of the given duration.
func NewRest(d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &rest{total: rate.N(d)}
}

func (r *rest) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if r.pos >= r.total {
			return i, i > 0
		}
		samples[i][0] = 0
		samples[i][1] = 0
		r.pos++
	}
	return len(samples), true
}

func (r *rest) Err() error { return nil }

// melodyNote is one step of a looping melody. Freq 0 is a rest.
type melodyNote struct {
	freq float64
	dur  time.Duration
}

// melody is an endless streamer cycling through a fixed note pattern. It is
// used for the background theme; beep's Loop needs a seekable stream, which
// generated audio is not, so the looping happens here.
type melody struct {
	pattern []melodyNote
	wave    WaveType
	rate    beep.SampleRate
	volume  float64
	idx     int
	current beep.Streamer
}

// NewMelody creates an endless looping melody streamer.
func NewMelody(pattern []melodyNote, wave WaveType, rate beep.SampleRate, volume float64) beep.Streamer {
	return &melody{
		pattern: pattern,
		wave:    wave,
		rate:    rate,
		volume:  volume,
	}
}

func (m *melody) Stream(samples [][2]float64) (int, bool) {
	filled := 0
	for filled < len(samples) {
		if m.current == nil {
			n := m.pattern[m.idx%len(m.pattern)]
			m.idx++
			if n.freq == 0 {
				m.current = NewRest(n.dur, m.rate)
			} else {
				m.current = NewNote(n.freq, n.dur, m.wave, m.rate, m.volume)
			}
		}
		n, ok := m.current.Stream(samples[filled:])
		filled += n
		if !ok {
			m.current = nil
		}
	}
	return filled, true
}

func (m *melody) Err() error { return nil }
