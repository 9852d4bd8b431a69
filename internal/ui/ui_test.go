package ui

import (
	"testing"

	"github.com/tomz197/starfighter/internal/loop/config"
)

func TestButtonFeedback(t *testing.T) {
	clicks := 0
	b := NewGameButton(1, 400, 300, func() { clicks++ })
	if b.Label != "GAME1" || b.Alpha != config.ButtonIdleAlpha || b.Scale != 1 {
		t.Fatalf("unexpected initial button %+v", b.Button)
	}

	b.OnHoverEnter()
	if b.Alpha != config.ButtonActiveAlpha {
		t.Fatalf("hover alpha = %v", b.Alpha)
	}
	b.OnPress()
	if b.Scale != config.ButtonPressScale || !b.Pressed() {
		t.Fatalf("press scale = %v", b.Scale)
	}
	b.OnRelease()
	if clicks != 1 {
		t.Fatalf("clicks = %d, want 1", clicks)
	}
	if b.Scale != 1 || b.Alpha != config.ButtonIdleAlpha || b.Pressed() {
		t.Fatalf("button not reset after click: %+v", b.Button)
	}
}

func TestReleaseOutsideDoesNotClick(t *testing.T) {
	clicks := 0
	b := NewExitButton(400, 525, func() { clicks++ })

	b.OnHoverEnter()
	b.OnPress()
	b.OnHoverExit()
	if b.Alpha != config.ButtonActiveAlpha {
		t.Fatal("leaving a held button must not dim it")
	}
	b.OnRelease()
	if clicks != 0 {
		t.Fatal("release away from the button clicked it")
	}
}

func TestMenuKeyboardFocusWraps(t *testing.T) {
	var got []string
	m := NewMenu()
	m.Set([]Element{
		NewGameButton(1, 400, 300, func() { got = append(got, "game1") }),
		NewGameButton(2, 400, 375, func() { got = append(got, "game2") }),
		NewExitButton(400, 525, func() { got = append(got, "exit") }),
	})

	m.Prev() // Wraps to the last element
	m.Activate()
	m.Next() // Wraps to the first
	m.Next()
	m.Activate()
	if len(got) != 2 || got[0] != "exit" || got[1] != "game2" {
		t.Fatalf("activated %v, want [exit game2]", got)
	}

	first := m.Elements()[0].(*GameButton)
	if first.Hovered() {
		t.Fatal("focus moved on but the old element is still hovered")
	}
}

func TestMenuActivateWithoutFocusOnlyFocuses(t *testing.T) {
	clicks := 0
	m := NewMenu()
	m.Set([]Element{NewBackButton(60, 40, func() { clicks++ })})
	m.Activate()
	if clicks != 0 || m.Focused() == nil {
		t.Fatalf("clicks = %d, focused = %v", clicks, m.Focused())
	}
	m.Activate()
	if clicks != 1 {
		t.Fatalf("clicks = %d, want 1", clicks)
	}
}

func TestMenuPointer(t *testing.T) {
	clicks := 0
	b := NewGameButton(1, 400, 300, func() { clicks++ })
	m := NewMenu()
	m.Set([]Element{b})

	m.PointerMove(0, 0)
	m.PointerDown()
	m.PointerUp()
	if clicks != 0 {
		t.Fatal("click outside any element")
	}

	m.PointerMove(400, 300)
	if !b.Hovered() {
		t.Fatal("pointer over the button should hover it")
	}
	m.PointerDown()
	m.PointerMove(0, 0)
	m.PointerUp()
	if clicks != 0 {
		t.Fatal("dragging off before release must cancel the click")
	}
	if b.Pressed() {
		t.Fatal("button still pressed after pointer up")
	}

	m.PointerMove(410, 310)
	m.PointerDown()
	m.PointerUp()
	if clicks != 1 {
		t.Fatalf("clicks = %d, want 1", clicks)
	}
}

func TestEmptyMenuIsSafe(t *testing.T) {
	m := NewMenu()
	m.Next()
	m.Prev()
	m.Activate()
	m.PointerMove(1, 1)
	m.PointerDown()
	m.PointerUp()
	if m.Focused() != nil {
		t.Fatal("empty menu has focus")
	}
}
