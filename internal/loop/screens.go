package loop

import (
	"time"

	"github.com/tomz197/starfighter/internal/anim"
	"github.com/tomz197/starfighter/internal/loop/config"
	"github.com/tomz197/starfighter/internal/ui"
)

// buildSplash shows the logo, waits, then fades it out and opens the menu once.
func (m *Machine) buildSplash() {
	m.faded = false
	m.logo = &Logo{X: config.ArenaWidth / 2, Y: config.ArenaHeight / 2, Opacity: 1}
	m.deps.Scene.Attach(m.logo)

	m.tokens = append(m.tokens, m.deps.Clock.After(config.SplashDuration, func() {
		m.tokens = append(m.tokens, m.deps.Clock.OnTick(m.fadeSplash))
	}))
}

func (m *Machine) fadeSplash(time.Duration) {
	if m.screen != ScreenSplash || m.logo == nil {
		return
	}
	m.logo.Opacity -= config.SplashFadeStep
	if m.logo.Opacity > 0 || m.faded {
		return
	}
	m.faded = true
	m.ShowMenu()
}

// buildMenu shows the logo with three game buttons and an exit button.
func (m *Machine) buildMenu() {
	m.logo = &Logo{X: config.MenuCenterX, Y: config.LogoY, Opacity: 1}
	m.deps.Scene.Attach(m.logo)

	y := config.MenuButtonY
	m.elements = []ui.Element{
		ui.NewGameButton(1, config.MenuCenterX, y[0], m.StartGame),
		ui.NewGameButton(2, config.MenuCenterX, y[1], m.StartGame),
		ui.NewGameButton(3, config.MenuCenterX, y[2], m.StartGame),
		ui.NewExitButton(config.MenuCenterX, y[3], m.ShowExit),
	}
	for _, el := range m.elements {
		m.deps.Scene.Attach(el)
	}
}

// buildPlaying starts a fresh round.
func (m *Machine) buildPlaying() {
	m.session = NewSession(m.deps, m.gameOver, m.ShowMenu)
	m.session.Start()
}

// buildExit shows the looping exit animation and a button back to the menu.
func (m *Machine) buildExit() {
	at := anim.Point{X: config.ExitAnimationX, Y: config.ExitAnimationY}
	m.anims = append(m.anims, m.deps.Anim.Play(anim.ExitStrategy, at, nil))

	back := ui.NewBackButton(config.BackButtonX, config.BackButtonY, m.ShowMenu)
	m.elements = []ui.Element{back}
	m.deps.Scene.Attach(back)
}
