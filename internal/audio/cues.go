package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Cue names the game and platform refer to.
const (
	CueCoin     = "coin"
	CuePowerup  = "powerup"
	CuePause    = "pause"
	CueBreak    = "break"
	CueGameOver = "gameover"
)

// Note frequencies used by the cues, in Hz.
const (
	freqE4 = 329.63
	freqA4 = 440.00
	freqC5 = 523.25
	freqE5 = 659.25
	freqG5 = 783.99
	freqB5 = 987.77
	freqC6 = 1046.50
	freqE6 = 1318.51
)

// cueFactories builds the registry of cue streamer constructors. Streamers
// are single-use, so every playback constructs a fresh one.
func cueFactories(rate beep.SampleRate) map[string]func() beep.Streamer {
	ms := func(d int) time.Duration { return time.Duration(d) * time.Millisecond }

	return map[string]func() beep.Streamer{
		// Catch reward: two quick rising square notes.
		CueCoin: func() beep.Streamer {
			return beep.Seq(
				NewNote(freqB5, ms(70), WaveSquare, rate, 0.35),
				NewNote(freqE6, ms(220), WaveSquare, rate, 0.35),
			)
		},
		// Rising arpeggio. Registered for catalog use even though the
		// default catalog maps everything to "coin".
		CuePowerup: func() beep.Streamer {
			return beep.Seq(
				NewNote(freqC5, ms(60), WaveSquare, rate, 0.3),
				NewNote(freqE5, ms(60), WaveSquare, rate, 0.3),
				NewNote(freqG5, ms(60), WaveSquare, rate, 0.3),
				NewNote(freqC6, ms(180), WaveSquare, rate, 0.3),
			)
		},
		// Pause toggle: a calm two-tone blip.
		CuePause: func() beep.Streamer {
			return beep.Seq(
				NewNote(freqA4, ms(90), WaveSine, rate, 0.3),
				NewNote(freqE4, ms(140), WaveSine, rate, 0.3),
			)
		},
		// Miss: a short noise crunch over a low tone.
		CueBreak: func() beep.Streamer {
			return beep.Seq(
				NewNote(0, ms(40), WaveNoise, rate, 0.25),
				NewNote(freqE4/2, ms(120), WaveSquare, rate, 0.3),
			)
		},
		// Loss: a slow descending line.
		CueGameOver: func() beep.Streamer {
			return beep.Seq(
				NewNote(freqC5, ms(200), WaveTriangle, rate, 0.35),
				NewNote(freqA4, ms(200), WaveTriangle, rate, 0.35),
				NewNote(freqE4, ms(200), WaveTriangle, rate, 0.35),
				NewNote(freqE4/2, ms(450), WaveTriangle, rate, 0.35),
			)
		},
	}
}

// themePattern is the looping background melody.
func themePattern() []melodyNote {
	ms := func(d int) time.Duration { return time.Duration(d) * time.Millisecond }
	return []melodyNote{
		{freqC5, ms(180)}, {freqE5, ms(180)}, {freqG5, ms(180)}, {freqE5, ms(180)},
		{freqA4, ms(180)}, {freqC5, ms(180)}, {freqE5, ms(360)},
		{0, ms(180)},
		{freqG5, ms(180)}, {freqE5, ms(180)}, {freqC5, ms(180)}, {freqA4, ms(360)},
		{0, ms(360)},
	}
}
