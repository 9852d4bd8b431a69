package ui

// Menu routes keyboard focus and pointer activity to a set of elements.
type Menu struct {
	elements []Element
	focus    int     // Index of the hovered element, -1 for none
	pressed  Element // Element that received OnPress and awaits OnRelease
}

// NewMenu creates a controller with nothing focused.
func NewMenu() *Menu {
	return &Menu{focus: -1}
}

// Set replaces the elements, e.g. when the screen changes. Nothing is focused afterwards.
func (m *Menu) Set(elements []Element) {
	m.elements = elements
	m.focus = -1
	m.pressed = nil
}

// Elements returns the current elements.
func (m *Menu) Elements() []Element {
	return m.elements
}

// Focused returns the hovered element, if any.
func (m *Menu) Focused() Element {
	if m.focus < 0 || m.focus >= len(m.elements) {
		return nil
	}
	return m.elements[m.focus]
}

func (m *Menu) setFocus(i int) {
	if i == m.focus {
		return
	}
	if old := m.Focused(); old != nil {
		old.OnHoverExit()
	}
	m.focus = i
	if cur := m.Focused(); cur != nil {
		cur.OnHoverEnter()
	}
}

// Next moves keyboard focus down, wrapping around.
func (m *Menu) Next() {
	if len(m.elements) == 0 {
		return
	}
	m.setFocus((m.focus + 1) % len(m.elements))
}

// Prev moves keyboard focus up, wrapping around.
func (m *Menu) Prev() {
	if len(m.elements) == 0 {
		return
	}
	i := m.focus - 1
	if i < 0 {
		i = len(m.elements) - 1
	}
	m.setFocus(i)
}

// Activate clicks the focused element. Focuses the first element if none is.
func (m *Menu) Activate() {
	el := m.Focused()
	if el == nil {
		m.Next()
		return
	}
	el.OnPress()
	el.OnRelease()
}

// PointerMove updates hover state for a pointer at (x, y).
func (m *Menu) PointerMove(x, y float64) {
	for i, el := range m.elements {
		if el.Bounds().Contains(x, y) {
			m.setFocus(i)
			return
		}
	}
	m.setFocus(-1)
}

// PointerDown presses the hovered element.
func (m *Menu) PointerDown() {
	if el := m.Focused(); el != nil {
		m.pressed = el
		el.OnPress()
	}
}

// PointerUp releases whatever was pressed, even if the pointer has moved off it.
func (m *Menu) PointerUp() {
	el := m.pressed
	m.pressed = nil
	if el != nil {
		el.OnRelease()
	}
}
