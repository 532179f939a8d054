package config

import "testing"

func TestValidateDefault(t *testing.T) {
	if err := DefaultCatcherConfig().Validate(); err != nil {
		t.Fatalf("default config is invalid: %v", err)
	}
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CatcherConfig)
	}{
		{"empty catalog", func(c *CatcherConfig) { c.Catalog = nil }},
		{"unnamed bonus", func(c *CatcherConfig) { c.Catalog[0].Name = "" }},
		{"duplicate bonus", func(c *CatcherConfig) { c.Catalog[1].Name = c.Catalog[0].Name }},
		{"zero points", func(c *CatcherConfig) { c.Catalog[0].Points = 0 }},
		{"negative points", func(c *CatcherConfig) { c.Catalog[0].Points = -50 }},
		{"speed below one", func(c *CatcherConfig) { c.Catalog[0].Speed = 0.5 }},
		{"silent bonus", func(c *CatcherConfig) { c.Catalog[0].Sound = "" }},
		{"zero speed_min", func(c *CatcherConfig) { c.Player.SpeedMin = 0 }},
		{"zero bump_frequency", func(c *CatcherConfig) { c.Player.BumpFrequency = 0 }},
		{"negative miss base", func(c *CatcherConfig) { c.Rules.MissesAllowedBase = -1 }},
		{"zero miss step", func(c *CatcherConfig) { c.Rules.MissStepScore = 0 }},
		{"zero objects step", func(c *CatcherConfig) { c.Rules.ObjectsStepScore = 0 }},
		{"zero collision ratio", func(c *CatcherConfig) { c.Rules.CollisionRatio = 0 }},
		{"ratio above one", func(c *CatcherConfig) { c.Rules.CollisionRatio = 1.5 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultCatcherConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("%s passed validation", tc.name)
			}
		})
	}
}
