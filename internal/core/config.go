package core

// Field dimensions. The simulation always runs in a fixed 800×600 logical
// field; the platform projects field units onto however many terminal cells
// are available. One cell covers 10×25 field units at the 80×24 reference
// terminal, which is also the scale sprite sizes are derived at.
const (
	FieldW = 800
	FieldH = 600

	RefCols = 80
	RefRows = 24

	CellUnitW = FieldW / RefCols
	CellUnitH = FieldH / RefRows
)

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in cells
	ScreenH  int   // Terminal height in cells
	TickRate int   // Simulation ticks per second (default 30)
	Seed     int64 // RNG seed for deterministic gameplay; 0 = time-based (platform)
	Infinite bool  // Disable the miss-threshold loss condition
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  RefCols,
		ScreenH:  RefRows,
		TickRate: 30,
	}
}

// GameState represents the current state of the session as the platform
// sees it.
type GameState struct {
	Score         int
	Misses        int
	MissesAllowed int
	GameOver      bool
	Paused        bool
}

// StepResult is returned by Game.Step() after each simulation tick. Sounds
// lists the cue names fired during the tick, in the order they fired; the
// platform plays them so game logic stays free of audio dependencies.
type StepResult struct {
	State  GameState
	Sounds []string
}
