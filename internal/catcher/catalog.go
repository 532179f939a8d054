// Package catcher implements the falling-bonus catcher game: a player moves
// horizontally to catch falling bonuses, accumulating score against a bounded
// miss budget until the session ends. The package is pure logic driven by a
// seeded RNG; rendering targets the core screen buffer and audio is reported
// as cue names, so the whole simulation is deterministic and testable.
package catcher

import (
	"fmt"

	"maxcatch/internal/config"
)

// Catalog is the fixed set of bonus types for a session. It preserves the
// configuration order so random type selection draws by index and stays
// deterministic under a seeded RNG.
type Catalog struct {
	entries []config.BonusType
	index   map[string]int
}

// NewCatalog builds a catalog from validated configuration entries.
func NewCatalog(entries []config.BonusType) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("catcher: empty bonus catalog")
	}
	c := &Catalog{
		entries: make([]config.BonusType, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	copy(c.entries, entries)
	for i, e := range entries {
		if _, dup := c.index[e.Name]; dup {
			return nil, fmt.Errorf("catcher: duplicate bonus type %q", e.Name)
		}
		c.index[e.Name] = i
	}
	return c, nil
}

// Get returns the catalog entry with the given name. Requesting a name
// outside the catalog is a programming error and fails loudly.
func (c *Catalog) Get(name string) (config.BonusType, error) {
	i, ok := c.index[name]
	if !ok {
		return config.BonusType{}, fmt.Errorf("catcher: unknown bonus type %q", name)
	}
	return c.entries[i], nil
}

// Entries returns the catalog entries in configuration order.
func (c *Catalog) Entries() []config.BonusType {
	return c.entries
}

// Len returns the number of bonus types.
func (c *Catalog) Len() int {
	return len(c.entries)
}
