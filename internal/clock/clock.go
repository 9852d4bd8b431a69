// Package clock drives frame ticks and wall-clock timers on a single executor.
//
// All callbacks run on the goroutine that calls Advance, one at a time and to
// completion, so state mutated from timers and tick listeners never races.
package clock

import (
	"sort"
	"time"
)

// Token identifies a registered timer or tick listener.
// The zero Token is never issued and is always inactive.
type Token uint64

type timer struct {
	due    time.Duration
	period time.Duration // 0 for one-shot timers
	fn     func()
}

type listener struct {
	token Token
	fn    func(dt time.Duration)
}

// Clock is a virtual-time scheduler advanced by the frame loop.
type Clock struct {
	now       time.Duration
	lastToken Token
	timers    map[Token]*timer
	listeners []listener
	active    map[Token]struct{} // Registered tick listeners
	ticks     uint64
}

// New creates a clock at time zero.
func New() *Clock {
	return &Clock{
		timers: make(map[Token]*timer),
		active: make(map[Token]struct{}),
	}
}

// Now returns the elapsed time since the clock was created.
func (c *Clock) Now() time.Duration {
	return c.now
}

// Ticks returns how many times tick listeners have been notified.
func (c *Clock) Ticks() uint64 {
	return c.ticks
}

func (c *Clock) issue() Token {
	c.lastToken++
	return c.lastToken
}

// Every schedules fn to run each time period elapses until cancelled.
func (c *Clock) Every(period time.Duration, fn func()) Token {
	if period <= 0 {
		period = time.Millisecond
	}
	t := c.issue()
	c.timers[t] = &timer{due: c.now + period, period: period, fn: fn}
	return t
}

// After schedules fn to run once after d elapses.
func (c *Clock) After(d time.Duration, fn func()) Token {
	if d < 0 {
		d = 0
	}
	t := c.issue()
	c.timers[t] = &timer{due: c.now + d, fn: fn}
	return t
}

// OnTick registers fn to be called on every Advance with the frame delta.
func (c *Clock) OnTick(fn func(dt time.Duration)) Token {
	t := c.issue()
	c.listeners = append(c.listeners, listener{token: t, fn: fn})
	c.active[t] = struct{}{}
	return t
}

// Cancel removes a timer or tick listener. Cancelling an inactive token is a no-op.
// Returns true if something was removed.
func (c *Clock) Cancel(t Token) bool {
	if _, ok := c.timers[t]; ok {
		delete(c.timers, t)
		return true
	}
	if _, ok := c.active[t]; ok {
		delete(c.active, t)
		kept := c.listeners[:0]
		for _, l := range c.listeners {
			if l.token != t {
				kept = append(kept, l)
			}
		}
		clear(c.listeners[len(kept):])
		c.listeners = kept
		return true
	}
	return false
}

// Active reports whether the token refers to a live timer or listener.
func (c *Clock) Active(t Token) bool {
	if _, ok := c.timers[t]; ok {
		return true
	}
	_, ok := c.active[t]
	return ok
}

// Pending returns the number of live timers and tick listeners.
func (c *Clock) Pending() int {
	return len(c.timers) + len(c.active)
}

// Advance moves time forward by dt. Timers that come due fire first, in
// due-time order (ties in registration order), each seeing Now() equal to its
// due time. Tick listeners then run in registration order.
func (c *Clock) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	target := c.now + dt

	for {
		t, ok := c.nextDue(target)
		if !ok {
			break
		}
		tm := c.timers[t]
		c.now = tm.due
		if tm.period > 0 {
			tm.due += tm.period
		} else {
			delete(c.timers, t)
		}
		tm.fn()
	}
	c.now = target

	c.ticks++
	// Snapshot so listeners may register or cancel while we iterate.
	snapshot := make([]listener, len(c.listeners))
	copy(snapshot, c.listeners)
	for _, l := range snapshot {
		if _, ok := c.active[l.token]; !ok {
			continue
		}
		l.fn(dt)
	}
}

// nextDue finds the earliest timer due at or before target.
func (c *Clock) nextDue(target time.Duration) (Token, bool) {
	var due []Token
	for t, tm := range c.timers {
		if tm.due <= target {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return 0, false
	}
	sort.Slice(due, func(i, j int) bool {
		a, b := c.timers[due[i]], c.timers[due[j]]
		if a.due != b.due {
			return a.due < b.due
		}
		return due[i] < due[j]
	})
	return due[0], true
}
