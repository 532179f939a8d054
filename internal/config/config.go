// Package config provides YAML-based game configuration loading for the
// catcher: the bonus catalog, player tuning, and session rules.
package config

import "fmt"

// CatcherConfig contains all configuration for a catcher session.
type CatcherConfig struct {
	Catalog []BonusType  `yaml:"catalog"`
	Player  PlayerConfig `yaml:"player"`
	Rules   RulesConfig  `yaml:"rules"`
}

// BonusType is one entry of the bonus catalog: a falling collectible kind
// with its point value, descent speed, and catch sound cue. The catalog is
// ordered; random type selection draws by index so seeded runs stay
// deterministic.
type BonusType struct {
	Name   string  `yaml:"name"`
	Points int     `yaml:"points"`
	Speed  float64 `yaml:"speed"`
	Sound  string  `yaml:"sound"`
}

// PlayerConfig defines player tuning parameters.
type PlayerConfig struct {
	Name string `yaml:"name"` // sprite family name, e.g. "max"

	SpeedMin float64 `yaml:"speed_min"`
	// SpeedMax is the nominal speed ceiling. The effective ceiling is half
	// the player sprite's width; this value is carried as configuration but
	// not applied.
	SpeedMax float64 `yaml:"speed_max"`

	BumpFrequency int     `yaml:"bump_frequency"` // frames of movement per bob
	BumpHeight    float64 `yaml:"bump_height"`    // downward nudge in field units
}

// RulesConfig defines the session rules: miss budget growth, concurrent
// bonus caps, and the catch overlap ratio.
type RulesConfig struct {
	MissesAllowedBase int `yaml:"misses_allowed_base"`
	MissStepScore     int `yaml:"miss_step_score"` // +1 allowed miss per this many points

	ObjectsBase      int `yaml:"objects_base"`
	ObjectsStep      int `yaml:"objects_step"`       // bonuses added per score step
	ObjectsStepScore int `yaml:"objects_step_score"` // score step size
	ObjectsMaxCap    int `yaml:"objects_max_cap"`

	CollisionRatio float64 `yaml:"collision_ratio"`
}

// Validate checks the configuration for values the simulation cannot run
// with. A bad catalog is a startup error, never silently patched.
func (c CatcherConfig) Validate() error {
	if len(c.Catalog) == 0 {
		return fmt.Errorf("config: catalog is empty")
	}
	seen := make(map[string]bool, len(c.Catalog))
	for _, b := range c.Catalog {
		if b.Name == "" {
			return fmt.Errorf("config: catalog entry with empty name")
		}
		if seen[b.Name] {
			return fmt.Errorf("config: duplicate catalog entry %q", b.Name)
		}
		seen[b.Name] = true
		if b.Points <= 0 {
			return fmt.Errorf("config: bonus %q has non-positive points %d", b.Name, b.Points)
		}
		if b.Speed < 1 {
			return fmt.Errorf("config: bonus %q has speed %v, minimum is 1", b.Name, b.Speed)
		}
		if b.Sound == "" {
			return fmt.Errorf("config: bonus %q has no sound cue", b.Name)
		}
	}
	if c.Player.SpeedMin <= 0 {
		return fmt.Errorf("config: player speed_min must be positive")
	}
	if c.Player.BumpFrequency <= 0 {
		return fmt.Errorf("config: player bump_frequency must be positive")
	}
	if c.Rules.MissesAllowedBase < 0 {
		return fmt.Errorf("config: misses_allowed_base must be non-negative")
	}
	if c.Rules.MissStepScore <= 0 || c.Rules.ObjectsStepScore <= 0 {
		return fmt.Errorf("config: score step sizes must be positive")
	}
	if c.Rules.CollisionRatio <= 0 || c.Rules.CollisionRatio > 1 {
		return fmt.Errorf("config: collision_ratio %v out of (0, 1]", c.Rules.CollisionRatio)
	}
	return nil
}
