package config

import (
	_ "embed"
)

//go:embed defaults/catcher.yaml
var defaultCatcherYAML []byte

// DefaultCatcherConfig returns the built-in catcher configuration. It mirrors
// defaults/catcher.yaml and exists so the loader has a hardcoded fallback and
// tests have a ready-made config.
func DefaultCatcherConfig() CatcherConfig {
	return CatcherConfig{
		Catalog: []BonusType{
			{Name: "box", Points: 100, Speed: 5, Sound: "coin"},
			{Name: "present", Points: 150, Speed: 15, Sound: "coin"},
			{Name: "boot", Points: 50, Speed: 7, Sound: "coin"},
			{Name: "pillow", Points: 100, Speed: 3, Sound: "coin"},
			{Name: "soccerball", Points: 50, Speed: 7, Sound: "coin"},
			{Name: "thermos", Points: 100, Speed: 7, Sound: "coin"},
		},
		Player: PlayerConfig{
			Name:          "max",
			SpeedMin:      6,
			SpeedMax:      80,
			BumpFrequency: 10,
			BumpHeight:    3,
		},
		Rules: RulesConfig{
			MissesAllowedBase: 30,
			MissStepScore:     500,
			ObjectsBase:       10,
			ObjectsStep:       5,
			ObjectsStepScore:  2000,
			ObjectsMaxCap:     40,
			CollisionRatio:    0.7,
		},
	}
}
