package catcher

import (
	"fmt"

	"maxcatch/internal/config"
	"maxcatch/internal/core"
	"maxcatch/internal/sprite"
)

// Direction is the player's facing, which selects the sprite variant.
type Direction string

const (
	DirLeft  Direction = "left"
	DirRight Direction = "right"
)

// Emotion is the player's visual mood. Switching to sad is one-way per
// session, triggered only by loss.
type Emotion string

const (
	EmotionNeutral Emotion = ""
	EmotionSad     Emotion = "sad"
)

// Tally counts catches and misses for one bonus type.
type Tally struct {
	Hit  int
	Miss int
}

// Player is the controllable character. It owns the score, the miss count,
// and the per-bonus-type tallies that become the end-of-session report.
type Player struct {
	body
	yOrig float64

	speed     float64
	score     int
	misses    int
	bumpCount int
	direction Direction
	emotion   Emotion

	tallies map[string]*Tally

	cfg      config.PlayerConfig
	variants map[string]sprite.Sprite
}

// playerVariants are the emotion/direction combinations every player sprite
// family must provide.
var playerVariants = []struct {
	emotion   Emotion
	direction Direction
}{
	{EmotionNeutral, DirLeft},
	{EmotionNeutral, DirRight},
	{EmotionSad, DirLeft},
	{EmotionSad, DirRight},
}

// newPlayer loads all sprite variants for the configured family and builds a
// zeroed tally table over the catalog. All variants must share one bounding
// size, otherwise clamping would jump when the image switches.
func newPlayer(cfg config.PlayerConfig, store *sprite.Store, catalog *Catalog) (*Player, error) {
	p := &Player{
		cfg:      cfg,
		variants: make(map[string]sprite.Sprite, len(playerVariants)),
	}
	for _, v := range playerVariants {
		key := variantKey(cfg.Name, v.emotion, v.direction)
		sp, err := store.Get(key)
		if err != nil {
			return nil, err
		}
		if p.w != 0 && (sp.W != p.w || sp.H != p.h) {
			return nil, fmt.Errorf("catcher: player sprite %q size %vx%v differs from %vx%v",
				key, sp.W, sp.H, p.w, p.h)
		}
		p.w, p.h = sp.W, sp.H
		p.variants[key] = sp
	}

	p.tallies = make(map[string]*Tally, catalog.Len())
	for _, e := range catalog.Entries() {
		p.tallies[e.Name] = &Tally{}
	}

	p.reset()
	return p, nil
}

func variantKey(family string, e Emotion, d Direction) string {
	return family + string(e) + "-" + string(d)
}

// reset puts the player at the spawn point: centered horizontally, two-thirds
// down the field, facing left, neutral. Tallies and score are also zeroed so
// a session restart starts clean.
func (p *Player) reset() {
	p.x = core.FieldW / 2
	p.y = core.FieldH * 2 / 3
	p.yOrig = p.y
	p.xInc, p.yInc = 0, 0
	p.direction = DirLeft
	p.emotion = EmotionNeutral
	p.speed = p.cfg.SpeedMin
	p.score = 0
	p.misses = 0
	p.bumpCount = 0
	for _, t := range p.tallies {
		t.Hit, t.Miss = 0, 0
	}
}

// applyEvents consumes one frame of input events in order. It returns whether
// a quit was requested and how many times the pause key was pressed. Left and
// right set direction and horizontal velocity; a key-up zeroes the velocity
// only if that key's direction is the one driving movement, so a stale
// release cannot cancel a still-held opposite key.
func (p *Player) applyEvents(in core.InputFrame) (quit bool, pausePresses int) {
	for _, ev := range in.Events {
		switch ev.Type {
		case core.EventQuit:
			quit = true
		case core.EventKeyDown:
			switch ev.Key {
			case core.KeyEscape:
				quit = true
			case core.KeyPause:
				pausePresses++
			case core.KeyLeft:
				p.direction = DirLeft
				p.xInc = -p.speed
			case core.KeyRight:
				p.direction = DirRight
				p.xInc = p.speed
			}
		case core.EventKeyUp:
			switch ev.Key {
			case core.KeyLeft:
				if p.xInc < 0 {
					p.xInc = 0
				}
			case core.KeyRight:
				if p.xInc > 0 {
					p.xInc = 0
				}
			}
		}
	}
	return quit, pausePresses
}

// update advances the player by one tick: bob animation, speed scaling,
// movement, then edge clamping. The position is always inside the field
// after update returns.
func (p *Player) update() {
	// Walking bob: the counter runs only while moving horizontally and the
	// vertical position snaps back to baseline each moving frame until the
	// counter rolls over and nudges it down.
	if p.bumpCount > p.cfg.BumpFrequency {
		p.bumpCount = 0
		p.y += p.cfg.BumpHeight
	} else if p.xInc != 0 {
		p.bumpCount++
		p.y = p.yOrig
	}

	// Speed scales with score, floored at the configured minimum and capped
	// at half the sprite width. The configured speed_max is nominal only and
	// deliberately not applied here.
	p.speed = core.ClampF(float64(p.score/1000), p.cfg.SpeedMin, p.w/2)

	p.advance()

	p.x = core.ClampF(p.x, p.w/2, core.FieldW-p.w/2)
	p.y = core.ClampF(p.y, p.h/2, core.FieldH-p.h/2)
}

// lose flips the player to the sad emotion. There is no way back.
func (p *Player) lose() {
	p.emotion = EmotionSad
}

// Sprite returns the sprite for the current emotion and facing.
func (p *Player) Sprite() sprite.Sprite {
	return p.variants[variantKey(p.cfg.Name, p.emotion, p.direction)]
}

// Score returns the current score. It may be negative.
func (p *Player) Score() int { return p.score }

// Misses returns the total miss count.
func (p *Player) Misses() int { return p.misses }

// Position returns the player's center in field units.
func (p *Player) Position() (x, y float64) { return p.x, p.y }

// Tally returns the hit/miss counts for a bonus type. The zero value is
// returned for names outside the catalog.
func (p *Player) Tally(name string) Tally {
	if t, ok := p.tallies[name]; ok {
		return *t
	}
	return Tally{}
}
