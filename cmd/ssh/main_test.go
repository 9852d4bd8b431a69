package main

import (
	"sync"
	"testing"
	"time"
)

func TestSizeTrackerFollowsUpdates(t *testing.T) {
	s := newSizeTracker(80, 24)
	s.update(120, 40)
	w, h, err := s.getSize()
	if err != nil || w != 120 || h != 40 {
		t.Fatalf("getSize = %d, %d, %v", w, h, err)
	}
}

func TestWaitTimeoutGivesUp(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(1)
	start := time.Now()
	waitTimeout(&wg, 20*time.Millisecond)
	if time.Since(start) > time.Second {
		t.Fatal("waitTimeout blocked past its deadline")
	}
	wg.Done()
}
