package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCatcherDefault(t *testing.T) {
	// No custom path and no user/local override reachable from the test dir:
	// the embedded default must load and validate.
	cfg, err := LoadCatcher("")
	if err != nil {
		t.Fatalf("LoadCatcher(\"\") failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("loaded default is invalid: %v", err)
	}
	if len(cfg.Catalog) == 0 {
		t.Fatal("loaded default has an empty catalog")
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	loaded, err := LoadCatcher("")
	if err != nil {
		t.Fatal(err)
	}
	hard := DefaultCatcherConfig()

	if len(loaded.Catalog) != len(hard.Catalog) {
		t.Fatalf("embedded catalog has %d entries, hardcoded has %d",
			len(loaded.Catalog), len(hard.Catalog))
	}
	for i, b := range hard.Catalog {
		if loaded.Catalog[i] != b {
			t.Errorf("catalog[%d]: embedded %+v, hardcoded %+v", i, loaded.Catalog[i], b)
		}
	}
	if loaded.Player != hard.Player {
		t.Errorf("player: embedded %+v, hardcoded %+v", loaded.Player, hard.Player)
	}
	if loaded.Rules != hard.Rules {
		t.Errorf("rules: embedded %+v, hardcoded %+v", loaded.Rules, hard.Rules)
	}
}

func TestLoadCatcherCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	yaml := `catalog:
  - name: star
    points: 200
    speed: 9
    sound: coin
player:
  name: max
  speed_min: 6
  speed_max: 80
  bump_frequency: 10
  bump_height: 3
rules:
  misses_allowed_base: 5
  miss_step_score: 100
  objects_base: 3
  objects_step: 1
  objects_step_score: 500
  objects_max_cap: 8
  collision_ratio: 0.5
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadCatcher(path)
	if err != nil {
		t.Fatalf("LoadCatcher(%q) failed: %v", path, err)
	}
	if len(cfg.Catalog) != 1 || cfg.Catalog[0].Name != "star" || cfg.Catalog[0].Points != 200 {
		t.Errorf("custom catalog not applied: %+v", cfg.Catalog)
	}
	if cfg.Rules.MissesAllowedBase != 5 || cfg.Rules.CollisionRatio != 0.5 {
		t.Errorf("custom rules not applied: %+v", cfg.Rules)
	}
}

func TestLoadCatcherMissingCustomPath(t *testing.T) {
	if _, err := LoadCatcher(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing custom path did not fail")
	}
}

func TestLoadCatcherInvalidCustom(t *testing.T) {
	dir := t.TempDir()

	garbled := filepath.Join(dir, "garbled.yaml")
	if err := os.WriteFile(garbled, []byte("{not yaml: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCatcher(garbled); err == nil {
		t.Error("unparsable custom config did not fail")
	}

	// Parses but fails validation
	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("catalog: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCatcher(invalid); err == nil {
		t.Error("empty-catalog custom config did not fail validation")
	}
}
