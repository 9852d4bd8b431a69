package clock

import (
	"testing"
	"time"
)

func TestEveryFiresOncePerPeriod(t *testing.T) {
	c := New()
	fired := 0
	c.Every(time.Second, func() { fired++ })

	c.Advance(999 * time.Millisecond)
	if fired != 0 {
		t.Fatalf("fired before period elapsed: %d", fired)
	}
	c.Advance(time.Millisecond)
	if fired != 1 {
		t.Fatalf("fired = %d, want 1", fired)
	}
	c.Advance(3 * time.Second)
	if fired != 4 {
		t.Fatalf("fired = %d, want 4", fired)
	}
}

func TestAfterFiresOnceAndExpires(t *testing.T) {
	c := New()
	fired := 0
	tok := c.After(500*time.Millisecond, func() { fired++ })

	c.Advance(time.Second)
	c.Advance(time.Second)
	if fired != 1 {
		t.Fatalf("fired = %d, want 1", fired)
	}
	if c.Active(tok) {
		t.Fatal("one-shot timer still active after firing")
	}
}

func TestCancelIsIdempotent(t *testing.T) {
	c := New()
	fired := 0
	tok := c.Every(time.Second, func() { fired++ })

	if !c.Cancel(tok) {
		t.Fatal("first cancel should report removal")
	}
	if c.Cancel(tok) {
		t.Fatal("second cancel should be a no-op")
	}
	if c.Cancel(0) {
		t.Fatal("zero token should never be active")
	}
	c.Advance(5 * time.Second)
	if fired != 0 {
		t.Fatalf("cancelled timer fired %d times", fired)
	}
	if c.Pending() != 0 {
		t.Fatalf("pending = %d, want 0", c.Pending())
	}
}

func TestTimersFireInDueOrderBeforeTicks(t *testing.T) {
	c := New()
	var order []string
	c.OnTick(func(time.Duration) { order = append(order, "tick") })
	c.Every(2*time.Second, func() { order = append(order, "slow") })
	c.Every(time.Second, func() { order = append(order, "fast") })

	c.Advance(2 * time.Second)

	want := []string{"fast", "slow", "fast", "tick"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestTimerSeesItsDueTime(t *testing.T) {
	c := New()
	var at []time.Duration
	c.Every(300*time.Millisecond, func() { at = append(at, c.Now()) })

	c.Advance(time.Second)

	want := []time.Duration{300 * time.Millisecond, 600 * time.Millisecond, 900 * time.Millisecond}
	if len(at) != len(want) {
		t.Fatalf("fired at %v, want %v", at, want)
	}
	for i := range want {
		if at[i] != want[i] {
			t.Fatalf("fired at %v, want %v", at, want)
		}
	}
	if c.Now() != time.Second {
		t.Fatalf("now = %v, want 1s", c.Now())
	}
}

func TestListenerCancelledMidTickDoesNotRun(t *testing.T) {
	c := New()
	var second Token
	ran := false
	c.OnTick(func(time.Duration) { c.Cancel(second) })
	second = c.OnTick(func(time.Duration) { ran = true })

	c.Advance(16 * time.Millisecond)
	if ran {
		t.Fatal("listener cancelled earlier in the same tick still ran")
	}
	if c.Active(second) {
		t.Fatal("cancelled listener reported active")
	}
}

func TestListenerReceivesDelta(t *testing.T) {
	c := New()
	var got time.Duration
	c.OnTick(func(dt time.Duration) { got = dt })

	c.Advance(16 * time.Millisecond)
	if got != 16*time.Millisecond {
		t.Fatalf("dt = %v, want 16ms", got)
	}
	if c.Ticks() != 1 {
		t.Fatalf("ticks = %d, want 1", c.Ticks())
	}
}

func TestTimerCancelledByEarlierTimerDoesNotFire(t *testing.T) {
	c := New()
	var victim Token
	fired := false
	c.After(100*time.Millisecond, func() { c.Cancel(victim) })
	victim = c.After(200*time.Millisecond, func() { fired = true })

	c.Advance(time.Second)
	if fired {
		t.Fatal("timer fired after being cancelled by an earlier timer")
	}
}
