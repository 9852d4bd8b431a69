// Package physics provides axis-aligned collision detection.
package physics

import (
	"math"

	"github.com/tomz197/starfighter/internal/loop/config"
)

// Box is an axis-aligned rectangle with its top-left corner at (X, Y).
type Box struct {
	X, Y, W, H float64
}

// CenteredBox returns the box of a w×h sprite whose anchor is its center.
func CenteredBox(cx, cy, w, h float64) Box {
	return Box{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 { return b.X + b.W }

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.Y + b.H }

// Overlaps reports whether the interiors of b and o intersect.
func (b Box) Overlaps(o Box) bool {
	return b.X < o.Right() && b.Right() > o.X && b.Y < o.Bottom() && b.Bottom() > o.Y
}

// Contains reports whether the point lies inside b.
func (b Box) Contains(x, y float64) bool {
	return x >= b.X && x < b.Right() && y >= b.Y && y < b.Bottom()
}

// Body is anything that can take part in a collision.
type Body interface {
	Alive() bool
	Bounds() Box
}

// Mode selects the hitbox shaping applied before the overlap test.
type Mode int

const (
	// PlayerVsEnemy shrinks both boxes to their lower hull.
	PlayerVsEnemy Mode = iota
	// ProjectileVsEnemy reshapes only the enemy (second) box.
	ProjectileVsEnemy
)

func (m Mode) String() string {
	switch m {
	case PlayerVsEnemy:
		return "player-vs-enemy"
	case ProjectileVsEnemy:
		return "projectile-vs-enemy"
	default:
		return "unknown"
	}
}

// Intersects reports whether a and b collide under mode. Missing or dead
// bodies never collide. The sprite boxes include exhaust and padding, so each
// mode trims them to the hull that should count as a hit.
func Intersects(a, b Body, mode Mode) bool {
	if a == nil || b == nil || !a.Alive() || !b.Alive() {
		return false
	}
	ba, bb := a.Bounds(), b.Bounds()

	switch mode {
	case PlayerVsEnemy:
		ba = lowerHull(ba)
		bb = lowerHull(bb)
	case ProjectileVsEnemy:
		bb = enemyHull(bb)
	}
	return ba.Overlaps(bb)
}

// lowerHull keeps 75% of the width and the lower half of the height.
func lowerHull(b Box) Box {
	h := b.H
	b.W = b.W * config.HitboxWidthFactor
	b.H = h * config.HitboxHeightFactor
	b.Y += math.Floor(h / 2)
	return b
}

// enemyHull sets the height from the width and drops the box by a quarter height.
func enemyHull(b Box) Box {
	h := b.H
	b.H = b.W * config.EnemyHullFromWidthFactor
	b.Y += math.Floor(h / 4)
	return b
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
