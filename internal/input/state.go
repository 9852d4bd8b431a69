// Package input tracks held control keys and the fire edge.
package input

// Key is a logical control, independent of the physical key that produced it.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyFire
	KeyConfirm
	KeyBack
	KeyQuit
	keyCount
)

var keyNames = [keyCount]string{"up", "down", "left", "right", "fire", "confirm", "back", "quit"}

func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return "unknown"
	}
	return keyNames[k]
}

// Source is what the simulation reads each tick.
type Source interface {
	Held(k Key) bool
	// ConsumeFire returns true once per not-held to held transition of KeyFire.
	ConsumeFire() bool
}

// State holds which keys are down. Frontends feed it key-down/key-up events;
// it only listens while attached.
type State struct {
	held     [keyCount]bool
	fire     bool
	attached bool
}

// Compile-time check that State implements Source.
var _ Source = (*State)(nil)

// NewState creates a detached input state.
func NewState() *State {
	return &State{}
}

// Attach starts accepting key events. Attaching twice is a no-op.
func (s *State) Attach() {
	s.attached = true
}

// Detach stops accepting key events and forgets held keys and pending fire.
// Detaching twice is a no-op.
func (s *State) Detach() {
	s.attached = false
	s.held = [keyCount]bool{}
	s.fire = false
}

// Attached reports whether key events are currently accepted.
func (s *State) Attached() bool {
	return s.attached
}

// Press marks k as held.
func (s *State) Press(k Key) {
	s.Set(k, true)
}

// Release marks k as not held.
func (s *State) Release(k Key) {
	s.Set(k, false)
}

// Set updates the held state of k, raising a fire request on a KeyFire edge.
func (s *State) Set(k Key, down bool) {
	if !s.attached || k < 0 || k >= keyCount {
		return
	}
	if k == KeyFire && down && !s.held[k] {
		s.fire = true
	}
	s.held[k] = down
}

// Held reports whether k is currently down.
func (s *State) Held(k Key) bool {
	if k < 0 || k >= keyCount {
		return false
	}
	return s.held[k]
}

// ConsumeFire returns and clears the pending fire request.
func (s *State) ConsumeFire() bool {
	f := s.fire
	s.fire = false
	return f
}
