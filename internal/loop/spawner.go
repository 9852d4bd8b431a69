package loop

import (
	"math"

	"github.com/tomz197/starfighter/internal/clock"
	"github.com/tomz197/starfighter/internal/loop/config"
	"github.com/tomz197/starfighter/internal/object"
	"github.com/tomz197/starfighter/internal/physics"
)

// Rand is the random source used for spawn positions and drift flips.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Spawner brings in a new enemy every EnemySpawnInterval and flips the shared
// drift direction every DriftInterval. Both timers run only between Start and Stop.
type Spawner struct {
	clock   *clock.Clock
	rand    Rand
	spawn   func(e *object.Enemy)
	driftUp bool

	enemyToken clock.Token
	driftToken clock.Token
	active     bool
}

// NewSpawner creates a stopped spawner that hands new enemies to spawn.
func NewSpawner(c *clock.Clock, r Rand, spawn func(e *object.Enemy)) *Spawner {
	return &Spawner{clock: c, rand: r, spawn: spawn}
}

// Start registers both timers. Starting an active spawner is a no-op.
func (s *Spawner) Start() {
	if s.active {
		return
	}
	s.active = true
	s.driftUp = false
	s.enemyToken = s.clock.Every(config.EnemySpawnInterval, s.spawnEnemy)
	s.driftToken = s.clock.Every(config.DriftInterval, s.flipDrift)
}

// Stop cancels both timers. Stopping a stopped spawner is a no-op.
func (s *Spawner) Stop() {
	if !s.active {
		return
	}
	s.active = false
	s.clock.Cancel(s.enemyToken)
	s.clock.Cancel(s.driftToken)
	s.enemyToken, s.driftToken = 0, 0
}

// Active reports whether the timers are running.
func (s *Spawner) Active() bool {
	return s.active
}

// DriftUp reports the direction every enemy drifts this interval.
func (s *Spawner) DriftUp() bool {
	return s.driftUp
}

func (s *Spawner) spawnEnemy() {
	h := float64(config.EnemyHeight)
	minY, maxY := h/2, config.ArenaHeight-h/2
	y := physics.Clamp(math.Floor(s.rand.Float64()*maxY), minY, maxY)

	x := float64(config.ArenaWidth + config.EnemySpawnOffset)
	s.spawn(object.NewEnemy(x, y, config.EnemyWidth, h, config.EnemySpeed))
}

func (s *Spawner) flipDrift() {
	s.driftUp = s.rand.Float64() < 0.5
}
