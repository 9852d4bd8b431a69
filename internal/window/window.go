// Package window plays the game in a desktop window with real key-up events and a mouse.
package window

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/tomz197/starfighter/internal/app"
	"github.com/tomz197/starfighter/internal/input"
	"github.com/tomz197/starfighter/internal/loop"
	"github.com/tomz197/starfighter/internal/loop/config"
)

// bindings maps physical keys to controls. Several keys may share a control.
var bindings = []struct {
	key     ebiten.Key
	control input.Key
}{
	{ebiten.KeyArrowUp, input.KeyUp},
	{ebiten.KeyW, input.KeyUp},
	{ebiten.KeyArrowDown, input.KeyDown},
	{ebiten.KeyS, input.KeyDown},
	{ebiten.KeyArrowLeft, input.KeyLeft},
	{ebiten.KeyA, input.KeyLeft},
	{ebiten.KeyArrowRight, input.KeyRight},
	{ebiten.KeyD, input.KeyRight},
	{ebiten.KeySpace, input.KeyFire},
	{ebiten.KeyEnter, input.KeyConfirm},
	{ebiten.KeyEscape, input.KeyBack},
	{ebiten.KeyBackspace, input.KeyBack},
	{ebiten.KeyQ, input.KeyQuit},
}

// Game adapts an App to ebiten.Game.
type Game struct {
	app        *app.App
	lastUpdate time.Time
	painter    *painter
}

// New creates a window frontend for a.
func New(a *app.App) *Game {
	return &Game{app: a, painter: newPainter()}
}

// Update reads the keyboard and mouse and advances the game by the real elapsed time.
func (g *Game) Update() error {
	now := time.Now()
	if g.lastUpdate.IsZero() {
		g.app.Start()
		g.lastUpdate = now
	}
	dt := now.Sub(g.lastUpdate)
	g.lastUpdate = now

	if g.pressed(input.KeyQuit) {
		return ebiten.Termination
	}
	g.readKeys()
	g.readMouse()
	g.app.Frame(dt)
	return nil
}

// readKeys reports held controls every frame while playing, and key
// transitions on the other screens.
func (g *Game) readKeys() {
	if g.app.Screen() == loop.ScreenPlaying {
		var held [input.KeyQuit + 1]bool
		for _, b := range bindings {
			if ebiten.IsKeyPressed(b.key) {
				held[b.control] = true
			}
		}
		for k, down := range held {
			g.app.Key(input.Key(k), down)
		}
		return
	}
	for _, b := range bindings {
		switch {
		case inpututil.IsKeyJustPressed(b.key):
			g.app.Key(b.control, true)
		case inpututil.IsKeyJustReleased(b.key):
			g.app.Key(b.control, false)
		}
	}
}

// pressed reports whether any key bound to control went down this frame.
func (g *Game) pressed(control input.Key) bool {
	for _, b := range bindings {
		if b.control == control && inpututil.IsKeyJustPressed(b.key) {
			return true
		}
	}
	return false
}

func (g *Game) readMouse() {
	x, y := ebiten.CursorPosition()
	g.app.Pointer(float64(x), float64(y))
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.app.PointerDown()
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.app.PointerUp()
	}
}

// Draw paints the scene.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.paint(screen, g.app)
}

// Layout keeps the arena at its fixed logical size; ebiten scales the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return config.ArenaWidth, config.ArenaHeight
}

// Run opens the window and blocks until it is closed.
func Run(a *app.App) error {
	ebiten.SetWindowSize(config.ArenaWidth, config.ArenaHeight)
	ebiten.SetWindowTitle("Starfighter")
	ebiten.SetTPS(config.TargetFPS)
	return ebiten.RunGame(New(a))
}
