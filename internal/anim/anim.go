// Package anim plays frame animations and signals when one-shot ones finish.
package anim

import (
	"time"

	"github.com/tomz197/starfighter/internal/clock"
	"github.com/tomz197/starfighter/internal/loop/config"
	"github.com/tomz197/starfighter/internal/scene"
)

// Type selects the animation strip.
type Type int

const (
	Explosion Type = iota
	PlayerExplosion
	MuzzleFlash
	ExitStrategy
)

type strip struct {
	frames int
	scale  float64
	loop   bool
}

var strips = map[Type]strip{
	Explosion:       {frames: config.ExplosionFrames, scale: 1},
	PlayerExplosion: {frames: config.ExplosionFrames, scale: config.PlayerExplosionScale},
	MuzzleFlash:     {frames: config.MuzzleFlashFrames, scale: 1},
	ExitStrategy:    {frames: config.ExitAnimationFrames, scale: config.ExitAnimationScale, loop: true},
}

// Anchor is anything with a position an animation can follow.
type Anchor interface {
	Position() (x, y float64)
}

// Point is a fixed anchor.
type Point struct{ X, Y float64 }

// Position implements Anchor.
func (p Point) Position() (float64, float64) { return p.X, p.Y }

// Offset follows another anchor at a fixed distance.
type Offset struct {
	Anchor
	DX, DY float64
}

// Position implements Anchor.
func (o Offset) Position() (float64, float64) {
	x, y := o.Anchor.Position()
	return x + o.DX, y + o.DY
}

// ID identifies a playing animation. The zero ID is never issued.
type ID uint64

// Animation is a playing strip. It is attached to the scene while it plays.
type Animation struct {
	id         ID
	typ        Type
	at         Anchor
	frame      float64
	strip      strip
	onComplete func()
}

// Kind implements scene.Handle.
func (a *Animation) Kind() scene.Kind { return scene.KindAnimation }

// Type returns which strip is playing.
func (a *Animation) Type() Type { return a.typ }

// Position returns where the animation is drawn.
func (a *Animation) Position() (float64, float64) { return a.at.Position() }

// Frame returns the current frame index.
func (a *Animation) Frame() int { return int(a.frame) }

// Frames returns the number of frames in the strip.
func (a *Animation) Frames() int { return a.strip.frames }

// Scale returns the draw scale.
func (a *Animation) Scale() float64 { return a.strip.scale }

// Player advances all animations once per clock tick.
type Player struct {
	clock  *clock.Clock
	scene  scene.Renderer
	token  clock.Token
	active []*Animation
	lastID ID
	speed  float64 // Frames per tick
}

// NewPlayer creates a player ticking on c and drawing into r.
func NewPlayer(c *clock.Clock, r scene.Renderer) *Player {
	p := &Player{clock: c, scene: r, speed: config.AnimationSpeed}
	p.token = c.OnTick(p.step)
	return p
}

// Play starts an animation at an anchor. onComplete runs exactly once when a
// one-shot strip reaches its last frame; looping strips never complete.
func (p *Player) Play(t Type, at Anchor, onComplete func()) ID {
	s, ok := strips[t]
	if !ok {
		return 0
	}
	p.lastID++
	a := &Animation{id: p.lastID, typ: t, at: at, strip: s, onComplete: onComplete}
	p.active = append(p.active, a)
	p.scene.Attach(a)
	return a.id
}

// Stop removes an animation without completing it. Unknown IDs are ignored.
func (p *Player) Stop(id ID) bool {
	for i, a := range p.active {
		if a.id == id {
			p.remove(i)
			return true
		}
	}
	return false
}

// Active returns the number of playing animations.
func (p *Player) Active() int {
	return len(p.active)
}

// Close stops ticking and drops every animation without completing them.
func (p *Player) Close() {
	p.clock.Cancel(p.token)
	for len(p.active) > 0 {
		p.remove(len(p.active) - 1)
	}
}

func (p *Player) remove(i int) {
	a := p.active[i]
	p.scene.Detach(a)
	copy(p.active[i:], p.active[i+1:])
	p.active[len(p.active)-1] = nil
	p.active = p.active[:len(p.active)-1]
}

// step advances every animation one tick. Finished strips leave the scene
// before their completion callbacks run, so callbacks may start or stop others.
func (p *Player) step(_ time.Duration) {
	var finished []*Animation
	kept := p.active[:0]
	for _, a := range p.active {
		a.frame += p.speed
		if a.frame >= float64(a.strip.frames) {
			if a.strip.loop {
				a.frame -= float64(a.strip.frames)
			} else {
				p.scene.Detach(a)
				finished = append(finished, a)
				continue
			}
		}
		kept = append(kept, a)
	}
	clear(p.active[len(kept):])
	p.active = kept

	for _, a := range finished {
		if fn := a.onComplete; fn != nil {
			a.onComplete = nil
			fn()
		}
	}
}
