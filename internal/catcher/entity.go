package catcher

// body is the movable state shared by the player and the bonuses: a center
// position, a velocity, and a bounding size in field units. It does no
// clamping; edge policy belongs to the owner.
type body struct {
	x, y       float64
	xInc, yInc float64
	w, h       float64
}

// advance applies the velocity once.
func (b *body) advance() {
	b.x += b.xInc
	b.y += b.yInc
}
