// Package app wires the game core together for a single player.
package app

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/starfighter/internal/anim"
	"github.com/tomz197/starfighter/internal/clock"
	"github.com/tomz197/starfighter/internal/input"
	"github.com/tomz197/starfighter/internal/loop"
	"github.com/tomz197/starfighter/internal/loop/config"
	"github.com/tomz197/starfighter/internal/scene"
	"github.com/tomz197/starfighter/internal/score"
	"github.com/tomz197/starfighter/internal/ui"
)

// Options configures an App.
type Options struct {
	Seed   int64       // Random seed; 0 picks one from the current time
	Logger *log.Logger // Defaults to log.Default()
}

// App is one player's game: the clock, the scene and the screen machine.
// It is not safe for concurrent use; drive it from one goroutine.
type App struct {
	Clock   *clock.Clock
	Scene   *scene.Graph
	Input   *input.State
	Anim    *anim.Player
	Score   *score.Tracker
	Machine *loop.Machine
	Menu    *ui.Menu

	pointerX, pointerY float64
	pointerSeen        bool

	fireDown    bool // Last reported state of KeyFire, on any screen
	fireLatched bool // Fire held since the round started; ignored until released
}

// New builds an App showing nothing yet. Call Start to show the splash screen.
func New(opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	a := &App{
		Clock: clock.New(),
		Scene: scene.NewGraph(),
		Input: input.NewState(),
		Score: score.NewTracker(),
		Menu:  ui.NewMenu(),
	}
	a.Anim = anim.NewPlayer(a.Clock, a.Scene)
	a.Machine = loop.NewMachine(loop.Deps{
		Clock:  a.Clock,
		Scene:  a.Scene,
		Input:  a.Input,
		Anim:   a.Anim,
		Score:  a.Score,
		Rand:   rand.New(rand.NewSource(seed)),
		Logger: logger,
	})
	a.Machine.OnChange(func(screen loop.Screen) {
		a.Menu.Set(a.Machine.Elements())
		if a.pointerSeen {
			a.Menu.PointerMove(a.pointerX, a.pointerY)
		}
		// A fire key still down from the menu must not shoot on entry.
		a.fireLatched = screen == loop.ScreenPlaying && a.fireDown
	})
	return a
}

// Start shows the splash screen.
func (a *App) Start() {
	a.Machine.Start()
}

// Frame advances the game by dt. Long frames are clamped so a stall does not
// replay a burst of timers.
func (a *App) Frame(dt time.Duration) {
	if dt > config.MaxFrameDelta {
		dt = config.MaxFrameDelta
	}
	a.Clock.Advance(dt)
}

// Screen returns the current screen.
func (a *App) Screen() loop.Screen {
	return a.Machine.Screen()
}

// Key routes a key transition. While playing it feeds the input state; on the
// menu and exit screens it moves focus and activates buttons. Frontends should
// report releases too, so a fire key held across the start of a round is
// ignored until it comes back up.
func (a *App) Key(k input.Key, down bool) {
	if k == input.KeyFire {
		a.fireDown = down
	}
	switch a.Machine.Screen() {
	case loop.ScreenPlaying:
		if k == input.KeyFire && a.fireLatched {
			if down {
				return
			}
			a.fireLatched = false
		}
		a.Input.Set(k, down)
	case loop.ScreenMenu, loop.ScreenExit:
		if !down {
			return
		}
		switch k {
		case input.KeyUp, input.KeyLeft:
			a.Menu.Prev()
		case input.KeyDown, input.KeyRight:
			a.Menu.Next()
		case input.KeyConfirm, input.KeyFire:
			a.Menu.Activate()
		case input.KeyBack:
			if a.Machine.Screen() == loop.ScreenExit {
				a.Machine.ShowMenu()
			}
		}
	}
}

// Pointer reports where the mouse is. Hover only follows the pointer when it
// moves, so a resting mouse does not take focus away from the keyboard.
func (a *App) Pointer(x, y float64) {
	if a.pointerSeen && x == a.pointerX && y == a.pointerY {
		return
	}
	a.pointerX, a.pointerY, a.pointerSeen = x, y, true
	a.Menu.PointerMove(x, y)
}

// PointerDown presses the button under the pointer.
func (a *App) PointerDown() {
	if a.pointerSeen {
		a.Menu.PointerMove(a.pointerX, a.pointerY)
	}
	a.Menu.PointerDown()
}

// PointerUp releases the pressed button.
func (a *App) PointerUp() {
	a.Menu.PointerUp()
}

// ScoreText is the HUD line for the current score.
func (a *App) ScoreText() string {
	return fmt.Sprintf("Score: %d", a.Score.Value())
}
