package loop

import (
	"github.com/tomz197/starfighter/internal/anim"
	"github.com/tomz197/starfighter/internal/input"
	"github.com/tomz197/starfighter/internal/loop/config"
	"github.com/tomz197/starfighter/internal/object"
	"github.com/tomz197/starfighter/internal/physics"
)

// Step advances the round by one tick:
// player → fire → projectiles → enemies vs player → projectiles vs enemies.
// It does nothing unless the round is being played.
func (s *Session) Step() {
	if s.phase != phasePlaying || !s.player.Alive() {
		return
	}
	s.movePlayer(s.deps.Input)
	if s.deps.Input.ConsumeFire() {
		s.fire()
	}
	s.moveProjectiles()
	s.moveEnemies()
	s.resolveHits()
}

// movePlayer moves the ship by PlayerSpeed per held direction and keeps it in the arena.
func (s *Session) movePlayer(in input.Source) {
	p := s.player
	if in.Held(input.KeyUp) {
		p.Y -= config.PlayerSpeed
	}
	if in.Held(input.KeyDown) {
		p.Y += config.PlayerSpeed
	}
	if in.Held(input.KeyLeft) {
		p.X -= config.PlayerSpeed
	}
	if in.Held(input.KeyRight) {
		p.X += config.PlayerSpeed
	}
	p.X = physics.Clamp(p.X, p.Width/2, config.ArenaWidth-p.Width/2)
	p.Y = physics.Clamp(p.Y, p.Height/2, config.ArenaHeight-p.Height/2)
}

// fire plays the muzzle flash at the nose; the projectile leaves when it ends.
func (s *Session) fire() {
	at := anim.Offset{Anchor: s.player, DX: s.player.Width / 2, DY: config.MuzzleOffsetY}
	s.play(anim.MuzzleFlash, at, s.addProjectile)
}

func (s *Session) moveProjectiles() {
	for _, p := range s.projectiles {
		p.Advance(config.ArenaWidth)
	}
	s.compactProjectiles()
}

// moveEnemies checks each enemy against the player before moving it. An enemy
// touching the player stays put; only the first hit ends the round.
func (s *Session) moveEnemies() {
	h := config.EnemyHeight
	up := s.spawner.DriftUp()
	for _, e := range s.enemies {
		if !e.Alive() {
			continue
		}
		if physics.Intersects(s.player, e, physics.PlayerVsEnemy) {
			s.endRound()
			continue
		}
		e.Advance(up, h/2, config.ArenaHeight-h/2)
	}
}

// resolveHits pairs every live projectile with the first live enemy it hits.
// Both are marked and removed together once every pair has been checked.
func (s *Session) resolveHits() {
	hits := 0
	for _, p := range s.projectiles {
		for _, e := range s.enemies {
			if !p.Alive() {
				break
			}
			if !physics.Intersects(p, e, physics.ProjectileVsEnemy) {
				continue
			}
			p.Dead = true
			e.Kill()
			s.deps.Scene.Detach(p)
			s.deps.Scene.Detach(e)
			s.play(anim.Explosion, anim.Point{X: e.X, Y: e.Y}, nil)
			s.deps.Score.Add(config.ScorePerKill)
			hits++
		}
	}
	if hits == 0 {
		return
	}
	s.compactProjectiles()
	s.compactEnemies()
}

// endRound starts the player explosion. The round is over when it finishes.
func (s *Session) endRound() {
	if s.phase != phasePlaying {
		return
	}
	s.phase = phaseEnding
	s.spawner.Stop()
	s.deps.Input.Detach()
	s.log.Debug("player hit", "score", s.deps.Score.Value())

	at := anim.Point{X: s.player.X, Y: s.player.Y}
	s.play(anim.PlayerExplosion, at, func() {
		if s.onOver != nil {
			s.onOver()
		}
	})
	if s.onEnding != nil {
		s.onEnding()
	}
}

func (s *Session) compactProjectiles() {
	kept := s.projectiles[:0]
	for _, p := range s.projectiles {
		if p.Alive() {
			kept = append(kept, p)
			continue
		}
		s.deps.Scene.Detach(p)
	}
	clear(s.projectiles[len(kept):])
	s.projectiles = kept
}

func (s *Session) compactEnemies() {
	kept := s.enemies[:0]
	for _, e := range s.enemies {
		if e.Alive() {
			kept = append(kept, e)
			continue
		}
		s.deps.Scene.Detach(e)
	}
	clear(s.enemies[len(kept):])
	s.enemies = kept
}

var _ anim.Anchor = (*object.Player)(nil)
