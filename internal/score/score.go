// Package score keeps the running score of a round.
package score

import "github.com/tomz197/starfighter/internal/scene"

// Tracker holds the score and tells a listener when it changes.
// It doubles as the HUD handle in the scene.
type Tracker struct {
	value    int
	onChange func(int)
}

// NewTracker creates a tracker at zero.
func NewTracker() *Tracker {
	return &Tracker{}
}

// OnChange sets the function notified after every change.
func (t *Tracker) OnChange(fn func(value int)) {
	t.onChange = fn
}

// Add increases the score. Non-positive amounts are ignored.
func (t *Tracker) Add(amount int) {
	if amount <= 0 {
		return
	}
	t.value += amount
	t.notify()
}

// Reset sets the score back to zero.
func (t *Tracker) Reset() {
	if t.value == 0 {
		return
	}
	t.value = 0
	t.notify()
}

// Value returns the current score.
func (t *Tracker) Value() int {
	return t.value
}

// Kind implements scene.Handle.
func (t *Tracker) Kind() scene.Kind { return scene.KindScore }

func (t *Tracker) notify() {
	if t.onChange != nil {
		t.onChange(t.value)
	}
}
