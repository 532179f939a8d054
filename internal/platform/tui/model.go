package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"maxcatch/internal/audio"
	"maxcatch/internal/catcher"
	"maxcatch/internal/core"
)

// Game is what the platform needs from a playable game. The catcher session
// satisfies it.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
	Report() catcher.Report
}

type phase int

const (
	phasePlaying phase = iota
	phaseReport
)

// Model is the Bubble Tea model running one catcher session: the game view
// while the session lives, then the tally report screen until a quit key.
type Model struct {
	game   Game
	screen *core.Screen
	sounds *audio.Manager
	keymap *KeyMapper
	config core.RuntimeConfig

	frame     core.InputFrame
	held      map[core.Key]uint64 // direction -> tick of last press/repeat
	holdTicks uint64
	tickCount uint64

	state    core.GameState
	phase    phase
	report   ReportModel
	quitting bool
}

// NewModel creates a model for the given game and resets the session. A zero
// seed is replaced with a time-based one here, so tests that pass explicit
// seeds stay deterministic.
func NewModel(game Game, sounds *audio.Manager, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	// Terminals deliver no key-release events. A direction key counts as
	// held while its press/repeat stream is alive; once it goes quiet for
	// about half a second the platform synthesizes the key-up the game's
	// input model expects. The window must outlast the terminal's initial
	// key-repeat delay.
	hold := uint64(core.Max(2, cfg.TickRate/2))

	game.Reset(cfg)

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		sounds:    sounds,
		keymap:    NewKeyMapper(),
		config:    cfg,
		frame:     core.NewInputFrame(),
		held:      make(map[core.Key]uint64),
		holdTicks: hold,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.phase == phaseReport {
		var quit bool
		m.report, quit = m.report.Update(msg)
		if quit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	// After game over the game view shows its overlay; the next key moves
	// to the report screen. No path leads back into the session.
	if m.state.GameOver {
		m.sounds.StopTheme()
		m.report = NewReportModel(m.game.Title(), m.game.Report(),
			m.config.ScreenW, m.config.ScreenH)
		m.phase = phaseReport
		return m, nil
	}

	key, isQuit := m.keymap.MapKey(msg)
	if isQuit {
		m.frame.PushQuit()
		return m, nil
	}
	switch key {
	case core.KeyLeft, core.KeyRight:
		m.frame.PushKeyDown(key)
		m.held[key] = m.tickCount
	case core.KeyPause, core.KeyEscape:
		m.frame.PushKeyDown(key)
	}

	return m, nil
}

// handleResize adjusts the projection surface. The simulation field is
// fixed, so nothing in the session needs resetting.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	if m.phase == phaseReport {
		m.report = m.report.Resize(msg.Width, msg.Height)
	}
	return m, nil
}

// handleTick runs one simulation tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.phase == phaseReport || m.state.GameOver {
		return m, nil
	}

	m.tickCount++

	// Expired hold windows become key-up events, in front of nothing: the
	// frame already carries this tick's presses in arrival order.
	for key, last := range m.held {
		if m.tickCount-last >= m.holdTicks {
			m.frame.PushKeyUp(key)
			delete(m.held, key)
		}
	}

	result := m.game.Step(m.frame)
	m.frame.Clear()
	m.state = result.State

	for _, cue := range result.Sounds {
		m.sounds.Play(cue)
	}

	if m.state.GameOver {
		m.sounds.StopTheme()
		// Keep the over overlay on screen; the next keypress brings the
		// report.
		return m, nil
	}

	if m.state.Paused {
		return m, tickCmd(pauseTickRate)
	}
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.phase == phaseReport {
		return m.report.View()
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for one session and blocks until the
// player leaves. The caller keeps the game value and reads the final report
// from it afterwards.
func Run(game Game, sounds *audio.Manager, cfg core.RuntimeConfig) error {
	sounds.StartTheme()

	p := tea.NewProgram(
		NewModel(game, sounds, cfg),
		tea.WithAltScreen(),
	)
	_, err := p.Run()

	sounds.StopTheme()
	return err
}
