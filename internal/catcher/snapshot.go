package catcher

// Snapshot captures the observable session state for determinism testing.
type Snapshot struct {
	Tick          uint64
	State         SessionState
	Score         int
	Misses        int
	MissesAllowed int
	ObjectsMax    int
	ActiveBonuses int
	PlayerX       float64
	PlayerY       float64
	Direction     Direction
	Emotion       Emotion
	Speed         float64
}

// Snapshot returns the current session snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:          g.tick,
		State:         g.state,
		Score:         g.player.score,
		Misses:        g.player.misses,
		MissesAllowed: g.diff.MissesAllowed(g.player.score),
		ObjectsMax:    g.diff.ObjectsMax(g.player.score),
		ActiveBonuses: g.field.Count(),
		PlayerX:       g.player.x,
		PlayerY:       g.player.y,
		Direction:     g.player.direction,
		Emotion:       g.player.emotion,
		Speed:         g.player.speed,
	}
}
