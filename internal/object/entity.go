// Package object holds the entities simulated during a round.
package object

import (
	"github.com/tomz197/starfighter/internal/physics"
	"github.com/tomz197/starfighter/internal/scene"
)

// Player is the ship the user steers. Position is the sprite center.
type Player struct {
	X, Y          float64
	Width, Height float64
	alive         bool
}

// NewPlayer creates a live player ship centered at (x, y).
func NewPlayer(x, y, w, h float64) *Player {
	return &Player{X: x, Y: y, Width: w, Height: h, alive: true}
}

// Alive reports whether the ship is still in play. A nil player is not.
func (p *Player) Alive() bool { return p != nil && p.alive }

// Kill takes the ship out of play.
func (p *Player) Kill() {
	if p != nil {
		p.alive = false
	}
}

// Bounds returns the sprite box.
func (p *Player) Bounds() physics.Box {
	return physics.CenteredBox(p.X, p.Y, p.Width, p.Height)
}

// Position returns the ship center.
func (p *Player) Position() (float64, float64) { return p.X, p.Y }

// Kind implements scene.Handle.
func (p *Player) Kind() scene.Kind { return scene.KindPlayer }

// Nose returns where shots leave the ship.
func (p *Player) Nose(offsetY float64) (float64, float64) {
	return p.X + p.Width/2, p.Y + offsetY
}

// Projectile travels right until it leaves the arena or hits an enemy.
type Projectile struct {
	X, Y          float64
	Width, Height float64
	Speed         float64
	Dead          bool // Marked for removal; compacted out before the next tick
}

// NewProjectile creates a projectile centered at (x, y).
func NewProjectile(x, y, w, h, speed float64) *Projectile {
	return &Projectile{X: x, Y: y, Width: w, Height: h, Speed: speed}
}

// Alive reports whether the projectile is still in flight.
func (p *Projectile) Alive() bool { return p != nil && !p.Dead }

// Bounds returns the sprite box.
func (p *Projectile) Bounds() physics.Box {
	return physics.CenteredBox(p.X, p.Y, p.Width, p.Height)
}

// Kind implements scene.Handle.
func (p *Projectile) Kind() scene.Kind { return scene.KindProjectile }

// Advance moves the projectile one tick and marks it dead past maxX.
func (p *Projectile) Advance(maxX float64) {
	p.X += p.Speed
	if p.X > maxX {
		p.Dead = true
	}
}

// Enemy flies left, drifting up or down with the rest of the wave.
type Enemy struct {
	X, Y          float64
	Width, Height float64
	Speed         float64
	alive         bool
}

// NewEnemy creates a live enemy centered at (x, y).
func NewEnemy(x, y, w, h, speed float64) *Enemy {
	return &Enemy{X: x, Y: y, Width: w, Height: h, Speed: speed, alive: true}
}

// Alive reports whether the enemy is still in play.
func (e *Enemy) Alive() bool { return e != nil && e.alive }

// Kill takes the enemy out of play.
func (e *Enemy) Kill() {
	if e != nil {
		e.alive = false
	}
}

// Bounds returns the sprite box.
func (e *Enemy) Bounds() physics.Box {
	return physics.CenteredBox(e.X, e.Y, e.Width, e.Height)
}

// Position returns the enemy center.
func (e *Enemy) Position() (float64, float64) { return e.X, e.Y }

// Kind implements scene.Handle.
func (e *Enemy) Kind() scene.Kind { return scene.KindEnemy }

// Advance moves the enemy one tick left and drifts it vertically by half its
// speed. Drift is skipped, not clamped, when it would leave [minY, maxY].
func (e *Enemy) Advance(up bool, minY, maxY float64) {
	e.X -= e.Speed
	step := e.Speed / 2
	if up {
		step = -step
	}
	if y := e.Y + step; y >= minY && y <= maxY {
		e.Y = y
	}
}

// Compile-time checks for the collision and scene contracts.
var (
	_ physics.Body = (*Player)(nil)
	_ physics.Body = (*Projectile)(nil)
	_ physics.Body = (*Enemy)(nil)
	_ scene.Handle = (*Player)(nil)
	_ scene.Handle = (*Projectile)(nil)
	_ scene.Handle = (*Enemy)(nil)
)
