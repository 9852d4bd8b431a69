package loop

import (
	"testing"

	"github.com/tomz197/starfighter/internal/clock"
	"github.com/tomz197/starfighter/internal/loop/config"
	"github.com/tomz197/starfighter/internal/object"
)

func TestSpawnerStartStopIdempotent(t *testing.T) {
	c := clock.New()
	s := NewSpawner(c, fixedRand(0.5), func(*object.Enemy) {})

	s.Start()
	s.Start()
	if got := c.Pending(); got != 2 {
		t.Fatalf("pending = %d, want 2 timers", got)
	}
	s.Stop()
	s.Stop()
	if got := c.Pending(); got != 0 {
		t.Fatalf("pending after stop = %d, want 0", got)
	}
	if s.Active() {
		t.Fatal("spawner still active")
	}
}

func TestSpawnerPlacesEnemies(t *testing.T) {
	tests := []struct {
		name string
		r    float64
		want float64
	}{
		{"top clamps to half height", 0, 30},
		{"middle", 0.5, 285},
		{"bottom", 0.999, 569},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := clock.New()
			var got []*object.Enemy
			s := NewSpawner(c, fixedRand(tt.r), func(e *object.Enemy) { got = append(got, e) })
			s.Start()

			c.Advance(config.EnemySpawnInterval - 1)
			if len(got) != 0 {
				t.Fatalf("spawned %d enemies before the interval", len(got))
			}
			c.Advance(1)
			if len(got) != 1 {
				t.Fatalf("spawned %d enemies, want 1", len(got))
			}
			e := got[0]
			if e.X != config.ArenaWidth+config.EnemySpawnOffset {
				t.Fatalf("x = %v, want %v", e.X, config.ArenaWidth+config.EnemySpawnOffset)
			}
			if e.Y != tt.want {
				t.Fatalf("y = %v, want %v", e.Y, tt.want)
			}
			if e.Speed != config.EnemySpeed || !e.Alive() {
				t.Fatalf("unexpected enemy %+v", e)
			}
		})
	}
}

func TestSpawnerDriftFlip(t *testing.T) {
	tests := []struct {
		r      float64
		wantUp bool
	}{
		{0.2, true},
		{0.7, false},
	}
	for _, tt := range tests {
		c := clock.New()
		s := NewSpawner(c, fixedRand(tt.r), func(*object.Enemy) {})
		s.Start()
		if s.DriftUp() {
			t.Fatal("drift starts downwards")
		}
		c.Advance(config.DriftInterval)
		if s.DriftUp() != tt.wantUp {
			t.Fatalf("r=%v: drift up = %v, want %v", tt.r, s.DriftUp(), tt.wantUp)
		}
	}
}

func TestSpawnerStoppedDoesNotSpawn(t *testing.T) {
	c := clock.New()
	n := 0
	s := NewSpawner(c, fixedRand(0.5), func(*object.Enemy) { n++ })
	s.Start()
	c.Advance(config.EnemySpawnInterval)
	s.Stop()
	c.Advance(3 * config.EnemySpawnInterval)
	if n != 1 {
		t.Fatalf("spawned %d, want 1", n)
	}
}
