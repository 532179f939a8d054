// Package core provides fundamental types and utilities for the catcher game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned cell rectangle, used for screen drawing.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// CirclesOverlap reports whether two circles overlap after both radii are
// scaled by ratio. This is the catch test: each entity's radius is the circle
// enclosing its bounding box, and the ratio shrinks the pair to avoid
// glancing surface hits.
func CirclesOverlap(ax, ay, ar, bx, by, br, ratio float64) bool {
	dx := ax - bx
	dy := ay - by
	reach := (ar + br) * ratio
	return dx*dx+dy*dy < reach*reach
}

// BoundingRadius returns the radius of the circle enclosing a w×h box.
func BoundingRadius(w, h float64) float64 {
	return math.Hypot(w, h) / 2
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
