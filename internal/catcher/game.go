package catcher

import (
	"math/rand"

	"maxcatch/internal/config"
	"maxcatch/internal/core"
	"maxcatch/internal/sprite"
)

// Sound cue names emitted by the session itself. Catch cues come from the
// catalog per bonus type.
const (
	CueMiss     = "break"
	CuePause    = "pause"
	CueGameOver = "gameover"
)

// SessionState is the session state machine: Running toggles with Paused,
// and GameOver is terminal.
type SessionState int

const (
	StateRunning SessionState = iota
	StatePaused
	StateGameOver
)

// String returns a human-readable state name.
func (s SessionState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Game is one catcher session: the player, the active-bonus field, the
// difficulty rules, and the state machine driving loop termination.
type Game struct {
	cfg     config.CatcherConfig
	runtime core.RuntimeConfig

	catalog *Catalog
	diff    Difficulty
	player  *Player
	field   *BonusField
	rng     *rand.Rand

	state SessionState
	tick  uint64
}

// New builds a session from validated configuration and a loaded sprite
// store. Every sprite the session can ever draw is resolved here, so asset
// problems surface as startup errors instead of mid-game failures.
func New(cfg config.CatcherConfig, store *sprite.Store) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	catalog, err := NewCatalog(cfg.Catalog)
	if err != nil {
		return nil, err
	}
	player, err := newPlayer(cfg.Player, store, catalog)
	if err != nil {
		return nil, err
	}
	field, err := newBonusField(catalog, store)
	if err != nil {
		return nil, err
	}
	return &Game{
		cfg:     cfg,
		runtime: core.DefaultConfig(),
		catalog: catalog,
		diff:    NewDifficulty(cfg.Rules),
		player:  player,
		field:   field,
	}, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "catcher"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Max Catch"
}

// Reset initializes or restarts the session with the given runtime config.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.runtime = rt
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.player.reset()
	g.field.reset(g.rng)
	g.state = StateRunning
	g.tick = 0
}

// Step advances the session by one tick. The per-tick order is fixed and
// load-bearing: input, spawn, movement, then the resolver's miss pass, loss
// check, and hit pass. A miss that breaches the threshold ends the game
// before a same-tick catch could save it, but catches on the final tick
// still score.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var sounds []string

	if g.state == StateGameOver {
		return core.StepResult{State: g.State()}
	}

	quit, pausePresses := g.player.applyEvents(in)
	if quit {
		g.state = StateGameOver
		sounds = append(sounds, CueGameOver)
		return core.StepResult{State: g.State(), Sounds: sounds}
	}
	if pausePresses%2 == 1 {
		if g.state == StateRunning {
			g.state = StatePaused
			sounds = append(sounds, CuePause)
		} else {
			g.state = StateRunning
		}
	}
	if g.state == StatePaused {
		// Frozen: no entity updates, no spawns, no collision resolution.
		return core.StepResult{State: g.State(), Sounds: sounds}
	}

	g.tick++

	// Spawner: top the active set up by at most one bonus per tick.
	if g.field.Count() < g.diff.ObjectsMax(g.player.score) {
		g.field.spawnOne()
	}

	// Movement updates.
	g.field.update()
	g.player.update()

	// Miss pass: every bonus fully below the bottom edge scores against the
	// player.
	for _, b := range g.field.collectMissed() {
		g.player.score -= b.points
		g.player.tallies[b.name].Miss++
		g.player.misses++
		sounds = append(sounds, CueMiss)
	}

	// Loss check, with the post-miss score, before any hit resolution.
	if !g.runtime.Infinite && g.player.misses >= g.diff.MissesAllowed(g.player.score) {
		g.state = StateGameOver
		g.player.lose()
		sounds = append(sounds, CueGameOver)
	}

	// Hit pass: still runs on the losing tick; the frame completes before
	// the loop exits.
	for _, b := range g.field.collectHits(g.player, g.cfg.Rules.CollisionRatio) {
		g.player.score += b.points
		g.player.tallies[b.name].Hit++
		sounds = append(sounds, b.sound)
	}

	return core.StepResult{State: g.State(), Sounds: sounds}
}

// State returns the platform-facing session state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:         g.player.score,
		Misses:        g.player.misses,
		MissesAllowed: g.diff.MissesAllowed(g.player.score),
		GameOver:      g.state == StateGameOver,
		Paused:        g.state == StatePaused,
	}
}

// SessionState returns the state machine state.
func (g *Game) SessionState() SessionState {
	return g.state
}

// Infinite reports whether the loss condition is disabled.
func (g *Game) Infinite() bool {
	return g.runtime.Infinite
}

// TallyLine is one row of the end-of-session report.
type TallyLine struct {
	Name   string
	Points int
	Hit    int
	Miss   int
}

// Report is the end-of-session summary: the final score, miss budget, and
// per-bonus-type tallies in catalog order.
type Report struct {
	Score         int
	Misses        int
	MissesAllowed int
	Lines         []TallyLine
}

// Report returns the current session summary.
func (g *Game) Report() Report {
	r := Report{
		Score:         g.player.score,
		Misses:        g.player.misses,
		MissesAllowed: g.diff.MissesAllowed(g.player.score),
		Lines:         make([]TallyLine, 0, g.catalog.Len()),
	}
	for _, e := range g.catalog.Entries() {
		t := g.player.tallies[e.Name]
		r.Lines = append(r.Lines, TallyLine{
			Name:   e.Name,
			Points: e.Points,
			Hit:    t.Hit,
			Miss:   t.Miss,
		})
	}
	return r
}
