package input

import (
	"testing"
	"time"
)

func TestFireEdgeRaisedOncePerPress(t *testing.T) {
	s := NewState()
	s.Attach()

	s.Press(KeyFire)
	s.Press(KeyFire) // still held, no new edge
	if !s.ConsumeFire() {
		t.Fatal("expected fire request after first press")
	}
	if s.ConsumeFire() {
		t.Fatal("fire request must be one-shot")
	}

	s.Release(KeyFire)
	s.Press(KeyFire)
	if !s.ConsumeFire() {
		t.Fatal("expected fire request after release and press")
	}
}

func TestDetachedStateIgnoresEvents(t *testing.T) {
	s := NewState()
	s.Press(KeyUp)
	s.Press(KeyFire)
	if s.Held(KeyUp) || s.ConsumeFire() {
		t.Fatal("detached state must ignore key events")
	}
}

func TestDetachClearsHeldAndFire(t *testing.T) {
	s := NewState()
	s.Attach()
	s.Press(KeyLeft)
	s.Press(KeyFire)

	s.Detach()
	s.Detach()
	if s.Held(KeyLeft) {
		t.Fatal("held key survived detach")
	}
	if s.ConsumeFire() {
		t.Fatal("pending fire survived detach")
	}
	if s.Attached() {
		t.Fatal("still attached after detach")
	}
}

func TestOutOfRangeKeysIgnored(t *testing.T) {
	s := NewState()
	s.Attach()
	s.Press(Key(-1))
	s.Press(keyCount)
	if s.Held(Key(-1)) || s.Held(keyCount) {
		t.Fatal("out of range key reported held")
	}
}

func TestStreamParsesArrowsAndLetters(t *testing.T) {
	s := &Stream{}
	now := time.Unix(100, 0)

	f := s.parse([]byte("\x1b[Aw \r"), now)

	want := []Key{KeyUp, KeyUp, KeyFire, KeyConfirm}
	if len(f.Pressed) != len(want) {
		t.Fatalf("pressed = %v, want %v", f.Pressed, want)
	}
	for i := range want {
		if f.Pressed[i] != want[i] {
			t.Fatalf("pressed = %v, want %v", f.Pressed, want)
		}
	}
	if !f.Held[KeyUp] || !f.Held[KeyFire] {
		t.Fatal("keys seen this frame should be held")
	}
	if f.Held[KeyDown] {
		t.Fatal("unseen key reported held")
	}
}

func TestStreamHoldExpires(t *testing.T) {
	s := &Stream{}
	now := time.Unix(100, 0)
	s.parse([]byte("d"), now)

	f := s.parse(nil, now.Add(keyHoldDuration/2))
	if !f.Held[KeyRight] {
		t.Fatal("key should still be held inside the hold window")
	}
	f = s.parse(nil, now.Add(keyHoldDuration))
	if f.Held[KeyRight] {
		t.Fatal("key should be released once the hold window passes")
	}
}

func TestFrameApplyRaisesFireEdge(t *testing.T) {
	st := NewState()
	st.Attach()
	s := &Stream{}
	now := time.Unix(100, 0)

	s.parse([]byte(" "), now).Apply(st)
	if !st.ConsumeFire() {
		t.Fatal("space should raise fire")
	}
	s.parse(nil, now.Add(10*time.Millisecond)).Apply(st)
	if st.ConsumeFire() {
		t.Fatal("held space must not raise a second fire")
	}
	s.parse(nil, now.Add(time.Second)).Apply(st)
	if st.Held(KeyFire) {
		t.Fatal("space should be released after the hold window")
	}
}
