package loop

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/starfighter/internal/anim"
	"github.com/tomz197/starfighter/internal/clock"
	"github.com/tomz197/starfighter/internal/scene"
	"github.com/tomz197/starfighter/internal/ui"
)

// Screen is the phase the game is in.
type Screen int

const (
	ScreenSplash   Screen = iota // Logo, then fade
	ScreenMenu                   // GAME1-3 and EXIT buttons
	ScreenPlaying                // A round is being simulated
	ScreenGameOver               // Player explosion playing, nothing simulated
	ScreenExit                   // Exit animation and BACK button
)

var screenNames = [...]string{"splash", "menu", "playing", "game-over", "exit"}

func (s Screen) String() string {
	if s < 0 || int(s) >= len(screenNames) {
		return "unknown"
	}
	return screenNames[s]
}

// Logo is the title image shown on the splash and menu screens.
type Logo struct {
	X, Y    float64
	Opacity float64
}

// Kind implements scene.Handle.
func (l *Logo) Kind() scene.Kind { return scene.KindLogo }

// Machine switches between screens. Each transition tears the current screen
// down completely before the next one is built. Requests that make no sense
// on the current screen are ignored.
type Machine struct {
	deps    Deps
	log     *log.Logger
	screen  Screen
	started bool

	session  *Session
	logo     *Logo
	elements []ui.Element
	tokens   []clock.Token
	anims    []anim.ID
	faded    bool

	listeners []func(Screen)
}

// NewMachine creates a machine that has not shown anything yet.
func NewMachine(deps Deps) *Machine {
	if deps.Logger == nil {
		deps.Logger = log.Default()
	}
	if deps.Rand == nil {
		deps.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Machine{deps: deps, log: deps.Logger}
}

// OnChange registers fn to be called after every screen change.
func (m *Machine) OnChange(fn func(Screen)) {
	m.listeners = append(m.listeners, fn)
}

// Start shows the splash screen. Starting twice is a no-op.
func (m *Machine) Start() {
	if m.started {
		return
	}
	m.started = true
	m.enter(ScreenSplash)
}

// Screen returns the current screen.
func (m *Machine) Screen() Screen { return m.screen }

// Session returns the current round, nil outside Playing and GameOver.
func (m *Machine) Session() *Session { return m.session }

// Elements returns the interactive elements of the current screen.
func (m *Machine) Elements() []ui.Element { return m.elements }

// Logo returns the logo, nil on screens without one.
func (m *Machine) Logo() *Logo { return m.logo }

// StartGame begins a round. Only the menu can start one.
func (m *Machine) StartGame() {
	if m.screen != ScreenMenu || !m.started {
		return
	}
	m.enter(ScreenPlaying)
}

// ShowMenu returns to the menu from any other screen.
func (m *Machine) ShowMenu() {
	if m.screen == ScreenMenu || !m.started {
		return
	}
	m.enter(ScreenMenu)
}

// ShowExit opens the exit screen. Only the menu can open it.
func (m *Machine) ShowExit() {
	if m.screen != ScreenMenu || !m.started {
		return
	}
	m.enter(ScreenExit)
}

// gameOver is called by the session when the player is hit. The session stays
// alive so its explosion can finish.
func (m *Machine) gameOver() {
	if m.screen != ScreenPlaying {
		return
	}
	m.log.Debug("screen", "from", m.screen, "to", ScreenGameOver)
	m.screen = ScreenGameOver
	m.notify()
}

func (m *Machine) enter(next Screen) {
	m.teardown()
	m.log.Debug("screen", "from", m.screen, "to", next)
	m.screen = next

	switch next {
	case ScreenSplash:
		m.buildSplash()
	case ScreenMenu:
		m.buildMenu()
	case ScreenPlaying:
		m.buildPlaying()
	case ScreenExit:
		m.buildExit()
	}
	m.notify()
}

// teardown removes everything the current screen put on the clock and in the scene.
func (m *Machine) teardown() {
	for _, t := range m.tokens {
		m.deps.Clock.Cancel(t)
	}
	m.tokens = nil
	for _, id := range m.anims {
		m.deps.Anim.Stop(id)
	}
	m.anims = nil

	if m.session != nil {
		m.session.Stop()
		m.session = nil
	}
	if m.logo != nil {
		m.deps.Scene.Detach(m.logo)
		m.logo = nil
	}
	for _, el := range m.elements {
		m.deps.Scene.Detach(el)
	}
	m.elements = nil
}

func (m *Machine) notify() {
	for _, fn := range m.listeners {
		fn(m.screen)
	}
}
