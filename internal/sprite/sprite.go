// Package sprite provides the embedded rune-art sprite store. Sprites are
// small text files compiled into the binary; a missing or malformed sprite is
// a startup error, never a silent fallback.
package sprite

import (
	"embed"
	"fmt"
	"path"
	"strings"

	"maxcatch/internal/core"
)

//go:embed assets/*.txt
var assetFS embed.FS

// Sprite is a fixed-size piece of rune art. W and H are the bounding size in
// field units, derived once from the art's cell dimensions; they never change
// after load. Space cells are transparent.
type Sprite struct {
	Name  string
	Art   [][]rune
	CellW int
	CellH int
	W     float64
	H     float64
}

// Rotated returns the art rotated counter-clockwise by the given number of
// quarter turns. Rotation is a pure visual transform; the sprite's bounding
// size is unaffected.
func (s Sprite) Rotated(quarters int) [][]rune {
	q := ((quarters % 4) + 4) % 4
	art := s.Art
	for ; q > 0; q-- {
		art = rotateCCW(art)
	}
	return art
}

// rotateCCW rotates a rectangular rune grid 90° counter-clockwise.
func rotateCCW(art [][]rune) [][]rune {
	if len(art) == 0 {
		return art
	}
	h := len(art)
	w := len(art[0])
	out := make([][]rune, w)
	for r := 0; r < w; r++ {
		out[r] = make([]rune, h)
		for c := 0; c < h; c++ {
			out[r][c] = art[c][w-1-r]
		}
	}
	return out
}

// Store caches all embedded sprites by name.
type Store struct {
	sprites map[string]Sprite
}

// Load parses every embedded sprite asset. Any unreadable or empty asset
// fails the whole load.
func Load() (*Store, error) {
	entries, err := assetFS.ReadDir("assets")
	if err != nil {
		return nil, fmt.Errorf("sprite: reading embedded assets: %w", err)
	}

	store := &Store{sprites: make(map[string]Sprite, len(entries))}
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".txt")
		data, err := assetFS.ReadFile(path.Join("assets", e.Name()))
		if err != nil {
			return nil, fmt.Errorf("sprite: reading %s: %w", e.Name(), err)
		}
		sp, err := parse(name, string(data))
		if err != nil {
			return nil, err
		}
		store.sprites[name] = sp
	}
	return store, nil
}

// Get returns the sprite with the given name. An unknown name is an invariant
// violation on the caller's side and is reported as an error.
func (st *Store) Get(name string) (Sprite, error) {
	sp, ok := st.sprites[name]
	if !ok {
		return Sprite{}, fmt.Errorf("sprite: %q not found", name)
	}
	return sp, nil
}

// Len returns the number of loaded sprites. Used by startup logging.
func (st *Store) Len() int {
	return len(st.sprites)
}

// parse turns raw art text into a rectangular sprite, padding short lines
// with transparent cells.
func parse(name, raw string) (Sprite, error) {
	lines := strings.Split(strings.TrimRight(raw, "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return Sprite{}, fmt.Errorf("sprite: %q is empty", name)
	}

	width := 0
	rows := make([][]rune, 0, len(lines))
	for _, line := range lines {
		r := []rune(strings.TrimRight(line, " "))
		rows = append(rows, r)
		if len(r) > width {
			width = len(r)
		}
	}
	if width == 0 {
		return Sprite{}, fmt.Errorf("sprite: %q has no visible cells", name)
	}
	for i, r := range rows {
		for len(r) < width {
			r = append(r, ' ')
		}
		rows[i] = r
	}

	return Sprite{
		Name:  name,
		Art:   rows,
		CellW: width,
		CellH: len(rows),
		W:     float64(width * core.CellUnitW),
		H:     float64(len(rows) * core.CellUnitH),
	}, nil
}
