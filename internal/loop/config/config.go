// Package config centralizes all tunable game parameters.
package config

import "time"

// Arena dimensions in logical units. The arena does not resize.
const (
	ArenaWidth  = 800
	ArenaHeight = 600
)

// Player
const (
	PlayerWidth   = 110.0
	PlayerHeight  = 60.0
	PlayerStartX  = 60.0
	PlayerStartY  = ArenaHeight / 2
	PlayerSpeed   = 5.0 // Units per tick in each held direction
	MuzzleOffsetY = 5.0 // Projectile spawns at the ship nose, slightly below center
)

// Projectiles
const (
	ProjectileWidth  = 20.0
	ProjectileHeight = 8.0
	ProjectileSpeed  = 5.0 // Units per tick, +x
)

// Enemies
const (
	EnemyWidth         = 90.0
	EnemyHeight        = 60.0
	EnemySpeed         = 2.0 // Units per tick, -x
	EnemySpawnOffset   = 50  // Spawn this far past the right edge
	EnemySpawnInterval = 2000 * time.Millisecond
	DriftInterval      = 1000 * time.Millisecond
)

// Hitbox shaping
const (
	HitboxWidthFactor        = 0.75 // PlayerVsEnemy: both boxes keep 75% width
	HitboxHeightFactor       = 0.5  // PlayerVsEnemy: both boxes keep 50% height
	EnemyHullFromWidthFactor = 0.75 // ProjectileVsEnemy: enemy height = 75% of its width
)

// Scoring
const (
	ScorePerKill = 15
)

// Splash screen
const (
	SplashDuration = 2000 * time.Millisecond
	SplashFadeStep = 0.01 // Opacity lost per tick while fading
)

// Animations (frames advance by Speed per tick)
const (
	AnimationSpeed       = 0.4
	ExplosionFrames      = 9
	MuzzleFlashFrames    = 3
	ExitAnimationFrames  = 100
	PlayerExplosionScale = 2.0
	ExitAnimationScale   = 0.7
)

// Menu layout
const (
	ButtonWidth       = 200.0
	ButtonHeight      = 56.0
	ButtonIdleAlpha   = 0.7
	ButtonActiveAlpha = 1.0
	ButtonPressScale  = 1.05
	MenuCenterX       = ArenaWidth / 2
	LogoY             = 150.0
	BackButtonX       = 60.0
	BackButtonY       = 40.0
	BackButtonWidth   = 100.0
	BackButtonHeight  = 40.0
	ExitAnimationX    = 400.0
	ExitAnimationY    = 435.0
	ScoreTextX        = 30.0
	ScoreTextY        = 20.0
)

// MenuButtonY lists the vertical centers of GAME1, GAME2, GAME3 and EXIT.
var MenuButtonY = [...]float64{300, 375, 450, 525}

// Frame timing
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
	MaxFrameDelta   = 100 * time.Millisecond // Longer frames are clamped
)
