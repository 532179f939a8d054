package catcher

import (
	"maxcatch/internal/config"
	"maxcatch/internal/core"
)

// Difficulty derives the per-tick session limits from the live score. Both
// rules are pure functions recomputed every tick, never cached. Negative
// scores clamp to zero so the limits never drop below their base values.
type Difficulty struct {
	rules config.RulesConfig
}

// NewDifficulty wraps the session rules.
func NewDifficulty(rules config.RulesConfig) Difficulty {
	return Difficulty{rules: rules}
}

// MissesAllowed returns the permitted-miss budget for the given score. The
// budget grows by one for every MissStepScore points, compensating for the
// player speed increase at higher scores.
func (d Difficulty) MissesAllowed(score int) int {
	if score < 0 {
		score = 0
	}
	return d.rules.MissesAllowedBase + score/d.rules.MissStepScore
}

// ObjectsMax returns the maximum number of concurrently active bonuses for
// the given score. It grows in discrete steps and is capped.
func (d Difficulty) ObjectsMax(score int) int {
	if score < 0 {
		score = 0
	}
	n := d.rules.ObjectsBase + d.rules.ObjectsStep*(score/d.rules.ObjectsStepScore)
	return core.Min(n, d.rules.ObjectsMaxCap)
}
