package physics

import "testing"

type body struct {
	box  Box
	dead bool
}

func (b *body) Alive() bool { return b != nil && !b.dead }
func (b *body) Bounds() Box { return b.box }

func centered(x, y, w, h float64) *body {
	return &body{box: CenteredBox(x, y, w, h)}
}

func TestBoxOverlapsIsStrict(t *testing.T) {
	a := Box{X: 0, Y: 0, W: 10, H: 10}
	touching := Box{X: 10, Y: 0, W: 10, H: 10}
	inside := Box{X: 9, Y: 9, W: 10, H: 10}
	if a.Overlaps(touching) {
		t.Fatal("edge contact must not count as overlap")
	}
	if !a.Overlaps(inside) {
		t.Fatal("expected overlap")
	}
}

func TestIntersectsPlayerVsEnemy(t *testing.T) {
	tests := []struct {
		name   string
		player *body
		enemy  *body
		want   bool
	}{
		{
			name:   "same center overlaps",
			player: centered(100, 300, 110, 60),
			enemy:  centered(100, 300, 90, 60),
			want:   true,
		},
		{
			// Raw boxes overlap by 20 vertically, but the hull starts at the center line.
			name:   "enemy above hull",
			player: centered(100, 300, 110, 60),
			enemy:  centered(100, 260, 90, 60),
			want:   false,
		},
		{
			// Player hull spans x [45, 127.5); enemy hull starts at 130.
			name:   "raw overlap trimmed by width factor",
			player: centered(100, 300, 110, 60),
			enemy:  centered(175, 300, 90, 60),
			want:   false,
		},
		{
			name:   "enemy hull reaches player hull",
			player: centered(100, 300, 110, 60),
			enemy:  centered(170, 300, 90, 60),
			want:   true,
		},
		{
			name:   "far apart",
			player: centered(60, 300, 110, 60),
			enemy:  centered(850, 300, 90, 60),
			want:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Intersects(tt.player, tt.enemy, PlayerVsEnemy); got != tt.want {
				t.Fatalf("Intersects = %v, want %v", got, tt.want)
			}
			// Both boxes are shaped the same way, so the test is symmetric.
			if got := Intersects(tt.enemy, tt.player, PlayerVsEnemy); got != tt.want {
				t.Fatalf("reversed Intersects = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIntersectsProjectileVsEnemy(t *testing.T) {
	// Enemy 90x60 at (400, 300): raw box y [270, 330); hull y [285, 352.5).
	enemy := centered(400, 300, 90, 60)
	tests := []struct {
		name       string
		projectile *body
		want       bool
	}{
		{"center hit", centered(400, 300, 20, 8), true},
		{"top padding ignored", centered(400, 275, 20, 8), false},
		{"hull extends below sprite", centered(400, 345, 20, 8), true},
		{"left of enemy", centered(340, 300, 20, 8), false},
		{"clips left edge", centered(350, 300, 20, 8), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Intersects(tt.projectile, enemy, ProjectileVsEnemy); got != tt.want {
				t.Fatalf("Intersects = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProjectileModeIsNotSymmetric(t *testing.T) {
	// Only the second argument is reshaped, so swapping roles changes the answer.
	projectile := centered(400, 345, 20, 8)
	enemy := centered(400, 300, 90, 60)
	if !Intersects(projectile, enemy, ProjectileVsEnemy) {
		t.Fatal("expected hit against the reshaped enemy hull")
	}
	if Intersects(enemy, projectile, ProjectileVsEnemy) {
		t.Fatal("expected miss when the projectile takes the enemy slot")
	}
}

func TestIntersectsIgnoresMissingOrDeadBodies(t *testing.T) {
	live := centered(100, 100, 50, 50)
	dead := centered(100, 100, 50, 50)
	dead.dead = true
	var missing *body

	for _, mode := range []Mode{PlayerVsEnemy, ProjectileVsEnemy} {
		if Intersects(live, dead, mode) || Intersects(dead, live, mode) {
			t.Fatalf("%v: dead body collided", mode)
		}
		if Intersects(live, missing, mode) || Intersects(nil, live, mode) {
			t.Fatalf("%v: missing body collided", mode)
		}
	}
}

func TestIntersectsIsPure(t *testing.T) {
	a := centered(100, 300, 110, 60)
	b := centered(100, 300, 90, 60)
	before := b.box
	Intersects(a, b, ProjectileVsEnemy)
	Intersects(a, b, PlayerVsEnemy)
	if b.box != before {
		t.Fatalf("bounds mutated: %+v -> %+v", before, b.box)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-5, 0, 10); got != 0 {
		t.Fatalf("Clamp(-5) = %v", got)
	}
	if got := Clamp(15, 0, 10); got != 10 {
		t.Fatalf("Clamp(15) = %v", got)
	}
	if got := Clamp(5, 0, 10); got != 5 {
		t.Fatalf("Clamp(5) = %v", got)
	}
}
