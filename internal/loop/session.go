// Package loop runs a round of play and the screens around it.
package loop

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/tomz197/starfighter/internal/anim"
	"github.com/tomz197/starfighter/internal/clock"
	"github.com/tomz197/starfighter/internal/input"
	"github.com/tomz197/starfighter/internal/loop/config"
	"github.com/tomz197/starfighter/internal/object"
	"github.com/tomz197/starfighter/internal/scene"
	"github.com/tomz197/starfighter/internal/score"
)

// Animator plays frame animations and reports when one-shot ones finish.
type Animator interface {
	Play(t anim.Type, at anim.Anchor, onComplete func()) anim.ID
	Stop(id anim.ID) bool
}

// Deps are the collaborators shared by the machine and every session.
type Deps struct {
	Clock  *clock.Clock
	Scene  scene.Renderer
	Input  *input.State
	Anim   Animator
	Score  *score.Tracker
	Rand   Rand
	Logger *log.Logger
}

type phase int

const (
	phaseIdle    phase = iota // Built, not started
	phasePlaying              // Step simulates
	phaseEnding               // Player hit, big explosion playing
	phaseStopped              // Torn down
)

// Session owns every entity of one round. It is created by the Machine when a
// game starts and discarded when the menu comes back.
type Session struct {
	id   uuid.UUID
	deps Deps
	log  *log.Logger

	phase   phase
	spawner *Spawner
	tick    clock.Token

	player      *object.Player
	projectiles []*object.Projectile
	enemies     []*object.Enemy
	anims       map[anim.ID]struct{}

	onEnding func() // Player was hit
	onOver   func() // Player explosion finished
}

// NewSession creates an idle session. onEnding runs when the player is hit
// and onOver once the player explosion has finished.
func NewSession(deps Deps, onEnding, onOver func()) *Session {
	logger := deps.Logger
	if logger == nil {
		logger = log.Default()
	}
	s := &Session{
		id:       uuid.New(),
		deps:     deps,
		anims:    make(map[anim.ID]struct{}),
		onEnding: onEnding,
		onOver:   onOver,
	}
	s.log = logger.With("round", s.id.String()[:8])
	s.spawner = NewSpawner(deps.Clock, deps.Rand, s.addEnemy)
	return s
}

// ID identifies the round in logs.
func (s *Session) ID() uuid.UUID { return s.id }

// Start resets the score, puts the player in the arena and begins ticking.
// Only an idle session can start.
func (s *Session) Start() {
	if s.phase != phaseIdle {
		return
	}
	s.phase = phasePlaying
	s.deps.Score.Reset()

	s.player = object.NewPlayer(config.PlayerStartX, config.PlayerStartY, config.PlayerWidth, config.PlayerHeight)
	s.deps.Scene.Attach(s.player)
	s.deps.Scene.Attach(s.deps.Score)

	s.spawner.Start()
	s.tick = s.deps.Clock.OnTick(func(time.Duration) { s.Step() })
	s.deps.Input.Attach()
	s.log.Info("round started")
}

// Playing reports whether Step currently simulates.
func (s *Session) Playing() bool { return s.phase == phasePlaying }

// Ending reports whether the player has been hit and the round is winding down.
func (s *Session) Ending() bool { return s.phase == phaseEnding }

// Player returns the player ship, nil once torn down.
func (s *Session) Player() *object.Player { return s.player }

// Projectiles returns the projectiles in flight.
func (s *Session) Projectiles() []*object.Projectile { return s.projectiles }

// Enemies returns the enemies in the arena.
func (s *Session) Enemies() []*object.Enemy { return s.enemies }

// Spawner returns the enemy spawner of the round.
func (s *Session) Spawner() *Spawner { return s.spawner }

// Stop tears the round down: timers, input, entities, animations and score.
// Stopping twice is a no-op.
func (s *Session) Stop() {
	if s.phase == phaseStopped {
		return
	}
	wasRunning := s.phase != phaseIdle
	s.phase = phaseStopped

	s.spawner.Stop()
	s.deps.Clock.Cancel(s.tick)
	s.tick = 0
	s.deps.Input.Detach()

	for id := range s.anims {
		s.deps.Anim.Stop(id)
	}
	clear(s.anims)

	if s.player != nil {
		s.deps.Scene.Detach(s.player)
		s.player = nil
	}
	for _, p := range s.projectiles {
		s.deps.Scene.Detach(p)
	}
	for _, e := range s.enemies {
		s.deps.Scene.Detach(e)
	}
	s.projectiles = nil
	s.enemies = nil
	s.deps.Scene.Detach(s.deps.Score)

	if wasRunning {
		s.log.Info("round ended", "score", s.deps.Score.Value())
	}
	s.deps.Score.Reset()
}

// play starts an animation and forgets it once it completes.
func (s *Session) play(t anim.Type, at anim.Anchor, done func()) {
	var id anim.ID
	id = s.deps.Anim.Play(t, at, func() {
		delete(s.anims, id)
		if done != nil {
			done()
		}
	})
	if id != 0 {
		s.anims[id] = struct{}{}
	}
}

func (s *Session) addEnemy(e *object.Enemy) {
	if s.phase != phasePlaying {
		return
	}
	s.enemies = append(s.enemies, e)
	s.deps.Scene.Attach(e)
}

func (s *Session) addProjectile() {
	if s.phase != phasePlaying || !s.player.Alive() {
		return
	}
	x, y := s.player.Nose(config.MuzzleOffsetY)
	p := object.NewProjectile(x, y, config.ProjectileWidth, config.ProjectileHeight, config.ProjectileSpeed)
	s.projectiles = append(s.projectiles, p)
	s.deps.Scene.Attach(p)
}
