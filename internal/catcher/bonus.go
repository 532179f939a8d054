package catcher

import (
	"math/rand"

	"maxcatch/internal/config"
	"maxcatch/internal/core"
	"maxcatch/internal/sprite"
)

// rotIncRange bounds the per-instance rotation increment, degrees per tick.
const rotIncRange = 5

// Bonus is one falling collectible. All random parameters are drawn once at
// spawn; fall speed and rotation increment never change afterwards.
type Bonus struct {
	body

	name   string
	points int
	sound  string
	color  core.Color

	rotation int // degrees, always in [0, 360)
	rotInc   int

	sprite sprite.Sprite
}

// bonusTemplate is a catalog entry resolved against the sprite store, so
// spawning during a session can no longer fail.
type bonusTemplate struct {
	entry  config.BonusType
	sprite sprite.Sprite
	color  core.Color
}

// bonusPalette assigns a display color per catalog position.
var bonusPalette = []core.Color{
	core.ColorYellow,
	core.ColorMagenta,
	core.ColorOrange,
	core.ColorCyan,
	core.ColorGreen,
	core.ColorBrightWhite,
}

// newBonusFromTemplate draws the spawn parameters from the session RNG:
// horizontal position uniform inside the field with half-width margins,
// vertical start uniformly above the field so the bonus enters from the top
// with variable lead time, drift speed in [1, fall speed], and a fixed
// rotation increment in [-5, +5]. The draw order is part of the determinism
// contract; do not reorder.
func newBonusFromTemplate(rng *rand.Rand, t bonusTemplate) *Bonus {
	b := &Bonus{
		body:   body{w: t.sprite.W, h: t.sprite.H},
		name:   t.entry.Name,
		points: t.entry.Points,
		sound:  t.entry.Sound,
		color:  t.color,
		sprite: t.sprite,
	}
	b.yInc = float64(randBetween(rng, 1, int(t.entry.Speed)))
	b.x = float64(randBetween(rng, int(b.w/2), core.FieldW-int(b.w/2)))
	b.y = float64(randBetween(rng, -core.FieldH, -int(b.h)))
	b.rotInc = randBetween(rng, -rotIncRange, rotIncRange)
	return b
}

// update advances rotation and position by one tick. Rotation wraps modulo
// 360 and is purely visual; the collision box never rotates.
func (b *Bonus) update() {
	b.rotation = ((b.rotation+b.rotInc)%360 + 360) % 360
	b.advance()
}

// missed reports whether the bonus has fully exited the bottom of the field.
func (b *Bonus) missed() bool {
	return b.y > core.FieldH+b.h
}

// Name returns the bonus type name.
func (b *Bonus) Name() string { return b.name }

// Points returns the catalog point value.
func (b *Bonus) Points() int { return b.points }

// Position returns the bonus center in field units.
func (b *Bonus) Position() (x, y float64) { return b.x, b.y }

// Rotation returns the current rotation angle in degrees.
func (b *Bonus) Rotation() int { return b.rotation }

// randBetween returns a uniform int in [lo, hi], both inclusive.
func randBetween(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// BonusField owns the active-bonus collection for one session: the spawner
// that keeps it at or below the difficulty cap and the miss/hit sweeps the
// resolver runs each tick.
type BonusField struct {
	active    []*Bonus
	templates []bonusTemplate
	byName    map[string]int
	rng       *rand.Rand
}

// newBonusField resolves every catalog entry against the sprite store up
// front; a catalog entry without a sprite is a startup error.
func newBonusField(catalog *Catalog, store *sprite.Store) (*BonusField, error) {
	f := &BonusField{
		templates: make([]bonusTemplate, 0, catalog.Len()),
		byName:    make(map[string]int, catalog.Len()),
	}
	for i, e := range catalog.Entries() {
		sp, err := store.Get(e.Name)
		if err != nil {
			return nil, err
		}
		f.byName[e.Name] = i
		f.templates = append(f.templates, bonusTemplate{
			entry:  e,
			sprite: sp,
			color:  bonusPalette[i%len(bonusPalette)],
		})
	}
	return f, nil
}

// reset clears the active set and installs the session RNG.
func (f *BonusField) reset(rng *rand.Rand) {
	f.active = f.active[:0]
	f.rng = rng
}

// spawnOne adds a single bonus of a uniformly random type. The spawner calls
// this at most once per tick regardless of how far below the cap the active
// count is, which bounds growth after a cap increase.
func (f *BonusField) spawnOne() *Bonus {
	t := f.templates[f.rng.Intn(len(f.templates))]
	b := newBonusFromTemplate(f.rng, t)
	f.active = append(f.active, b)
	return b
}

// spawnNamed adds a single bonus of an explicit type. Unknown names fail
// loudly via the catalog contract.
func (f *BonusField) spawnNamed(name string) (*Bonus, bool) {
	i, ok := f.byName[name]
	if !ok {
		return nil, false
	}
	b := newBonusFromTemplate(f.rng, f.templates[i])
	f.active = append(f.active, b)
	return b, true
}

// update advances every active bonus by one tick.
func (f *BonusField) update() {
	for _, b := range f.active {
		b.update()
	}
}

// collectMissed removes and returns every bonus that has fully exited the
// bottom edge. Several can resolve in the same tick. A removed bonus is never
// updated again.
func (f *BonusField) collectMissed() []*Bonus {
	var missed []*Bonus
	kept := f.active[:0]
	for _, b := range f.active {
		if b.missed() {
			missed = append(missed, b)
		} else {
			kept = append(kept, b)
		}
	}
	f.active = kept
	return missed
}

// collectHits removes and returns every bonus overlapping the player. The
// overlap test is a shrunk circle approximation: each entity's radius is the
// circle enclosing its bounding box, scaled by ratio, so glancing surface
// contact does not count as a catch. Each bonus can be caught at most once.
func (f *BonusField) collectHits(p *Player, ratio float64) []*Bonus {
	pr := core.BoundingRadius(p.w, p.h)
	var hits []*Bonus
	kept := f.active[:0]
	for _, b := range f.active {
		br := core.BoundingRadius(b.w, b.h)
		if core.CirclesOverlap(p.x, p.y, pr, b.x, b.y, br, ratio) {
			hits = append(hits, b)
		} else {
			kept = append(kept, b)
		}
	}
	f.active = kept
	return hits
}

// Active returns the live bonus slice. Callers must not mutate it.
func (f *BonusField) Active() []*Bonus {
	return f.active
}

// Count returns the number of active bonuses.
func (f *BonusField) Count() int {
	return len(f.active)
}
