package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Manager owns the speaker and the cue registry. Playback failure is never
// fatal to gameplay: if the speaker cannot initialize, the manager stays in
// silent mode and every Play becomes a no-op.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	theme       *beep.Ctrl
	cues        map[string]func() beep.Streamer
	initialized bool
	muted       bool
}

// NewManager creates a manager with the full cue registry. Call Init before
// playing anything.
func NewManager() *Manager {
	return &Manager{
		mixer: &beep.Mixer{},
		cues:  cueFactories(sampleRate),
	}
}

// Init sets up the speaker. On error the manager remains silent; the caller
// may log the error and keep going.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Ready reports whether the speaker is up.
func (m *Manager) Ready() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.initialized
}

// SetMuted silences cue playback without tearing the speaker down.
func (m *Manager) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
	if m.theme != nil {
		m.theme.Paused = muted
	}
}

// Play fires a cue by name. Unknown names and silent mode are no-ops; the
// return value reports whether playback actually started.
func (m *Manager) Play(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || m.muted {
		return false
	}
	factory, ok := m.cues[name]
	if !ok {
		return false
	}
	m.mixer.Add(factory())
	return true
}

// Knows reports whether a cue name is registered. The platform uses it at
// startup to verify the catalog's sound references.
func (m *Manager) Knows(name string) bool {
	_, ok := m.cues[name]
	return ok
}

// StartTheme begins the looping background melody. Calling it again while
// the theme plays is a no-op.
func (m *Manager) StartTheme() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	if m.theme != nil && !m.theme.Paused {
		return
	}
	ctrl := &beep.Ctrl{
		Streamer: NewMelody(themePattern(), WaveTriangle, sampleRate, 0.12),
		Paused:   m.muted,
	}
	m.theme = ctrl
	m.mixer.Add(ctrl)
}

// StopTheme pauses the background melody, e.g. when the session ends.
func (m *Manager) StopTheme() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.theme != nil {
		m.theme.Paused = true
	}
}
