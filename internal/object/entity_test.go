package object

import "testing"

func TestProjectileAdvanceMarksDeadPastEdge(t *testing.T) {
	p := NewProjectile(790, 300, 20, 8, 5)
	p.Advance(800)
	if p.Dead || p.X != 795 {
		t.Fatalf("after 1 tick: x=%v dead=%v", p.X, p.Dead)
	}
	p.Advance(800)
	if p.Dead {
		t.Fatal("x == 800 is still inside the arena")
	}
	p.Advance(800)
	if !p.Dead {
		t.Fatalf("x=%v should be dead", p.X)
	}
}

func TestEnemyAdvanceDriftsWithinBand(t *testing.T) {
	e := NewEnemy(500, 300, 90, 60, 2)
	e.Advance(true, 30, 570)
	if e.X != 498 || e.Y != 299 {
		t.Fatalf("up drift: got (%v, %v), want (498, 299)", e.X, e.Y)
	}
	e.Advance(false, 30, 570)
	if e.Y != 300 {
		t.Fatalf("down drift: got y=%v, want 300", e.Y)
	}
}

func TestEnemyDriftStopsAtBandEdge(t *testing.T) {
	e := NewEnemy(500, 30.5, 90, 60, 2)
	for i := 0; i < 5; i++ {
		e.Advance(true, 30, 570)
	}
	// 30.5 - 1 would leave the band, so the enemy stays put rather than snapping to 30.
	if e.Y != 30.5 {
		t.Fatalf("y = %v, want 30.5", e.Y)
	}
	if e.X != 490 {
		t.Fatalf("x = %v, want 490", e.X)
	}
}

func TestNilEntitiesAreNotAlive(t *testing.T) {
	var p *Player
	var e *Enemy
	var pr *Projectile
	if p.Alive() || e.Alive() || pr.Alive() {
		t.Fatal("nil entities must report not alive")
	}
	p.Kill()
	e.Kill()
}

func TestPlayerNose(t *testing.T) {
	p := NewPlayer(60, 300, 110, 60)
	x, y := p.Nose(5)
	if x != 115 || y != 305 {
		t.Fatalf("nose = (%v, %v), want (115, 305)", x, y)
	}
}
