// Package ui holds the interactive menu elements.
package ui

import (
	"fmt"

	"github.com/tomz197/starfighter/internal/loop/config"
	"github.com/tomz197/starfighter/internal/physics"
	"github.com/tomz197/starfighter/internal/scene"
)

// Element is an interactive widget. Frontends translate pointer or keyboard
// activity into these four calls and never look at the concrete type.
type Element interface {
	scene.Handle
	OnPress()
	OnRelease()
	OnHoverEnter()
	OnHoverExit()
	Bounds() physics.Box
}

// Widget is an Element that describes how it should be drawn.
type Widget interface {
	Element
	Face() physics.Box
	Caption() string
	Opacity() float64
}

// Button is the shared look and press/hover bookkeeping of every button.
type Button struct {
	Label string
	X, Y  float64 // Center
	W, H  float64
	Alpha float64
	Scale float64
	down  bool
	over  bool
}

func newButton(label string, x, y, w, h float64) Button {
	return Button{
		Label: label,
		X:     x,
		Y:     y,
		W:     w,
		H:     h,
		Alpha: config.ButtonIdleAlpha,
		Scale: 1,
	}
}

// Kind implements scene.Handle.
func (b *Button) Kind() scene.Kind { return scene.KindButton }

// Bounds returns the clickable box.
func (b *Button) Bounds() physics.Box {
	return physics.CenteredBox(b.X, b.Y, b.W, b.H)
}

// Face returns the drawn box, grown while pressed.
func (b *Button) Face() physics.Box {
	return physics.CenteredBox(b.X, b.Y, b.W*b.Scale, b.H*b.Scale)
}

// Caption returns the label.
func (b *Button) Caption() string { return b.Label }

// Opacity returns the current alpha.
func (b *Button) Opacity() float64 { return b.Alpha }

// Hovered reports whether the pointer or keyboard focus is on the button.
func (b *Button) Hovered() bool { return b.over }

// Pressed reports whether the button is held down.
func (b *Button) Pressed() bool { return b.down }

// OnPress grows the button and lights it up.
func (b *Button) OnPress() {
	b.down = true
	b.Scale = config.ButtonPressScale
	b.Alpha = config.ButtonActiveAlpha
}

// OnHoverEnter lights the button unless it is being held.
func (b *Button) OnHoverEnter() {
	b.over = true
	if b.down {
		return
	}
	b.Alpha = config.ButtonActiveAlpha
}

// OnHoverExit dims the button unless it is being held.
func (b *Button) OnHoverExit() {
	b.over = false
	if b.down {
		return
	}
	b.Alpha = config.ButtonIdleAlpha
}

// release ends a press and reports whether it counts as a click, which
// it does only while the pointer is still over the button.
func (b *Button) release() bool {
	b.down = false
	b.Scale = 1
	b.Alpha = config.ButtonIdleAlpha
	return b.over
}

// GameButton starts a round.
type GameButton struct {
	Button
	Index int
	start func()
}

// NewGameButton creates the GAME<n> button (1-based).
func NewGameButton(n int, x, y float64, start func()) *GameButton {
	return &GameButton{
		Button: newButton(fmt.Sprintf("GAME%d", n), x, y, config.ButtonWidth, config.ButtonHeight),
		Index:  n,
		start:  start,
	}
}

// OnRelease starts the game when released over the button.
func (b *GameButton) OnRelease() {
	if b.release() && b.start != nil {
		b.start()
	}
}

// ExitButton opens the exit screen.
type ExitButton struct {
	Button
	exit func()
}

// NewExitButton creates the EXIT button.
func NewExitButton(x, y float64, exit func()) *ExitButton {
	return &ExitButton{
		Button: newButton("EXIT", x, y, config.ButtonWidth, config.ButtonHeight),
		exit:   exit,
	}
}

// OnRelease shows the exit screen when released over the button.
func (b *ExitButton) OnRelease() {
	if b.release() && b.exit != nil {
		b.exit()
	}
}

// BackButton returns to the menu.
type BackButton struct {
	Button
	back func()
}

// NewBackButton creates the « Back button.
func NewBackButton(x, y float64, back func()) *BackButton {
	return &BackButton{
		Button: newButton("« Back", x, y, config.BackButtonWidth, config.BackButtonHeight),
		back:   back,
	}
}

// OnRelease returns to the menu when released over the button.
func (b *BackButton) OnRelease() {
	if b.release() && b.back != nil {
		b.back()
	}
}

// Compile-time checks that every variant is a Widget.
var (
	_ Widget = (*GameButton)(nil)
	_ Widget = (*ExitButton)(nil)
	_ Widget = (*BackButton)(nil)
)
