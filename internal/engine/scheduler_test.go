package engine

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestSchedulerFires(t *testing.T) {
	s := newScheduler()
	var fired atomic.Int32

	s.schedule("s-1", phaseMatched, 0, func() { fired.Add(1) })
	waitFor(t, "timer to fire", func() bool { return fired.Load() == 1 })

	s.mu.Lock()
	n := len(s.timers)
	s.mu.Unlock()
	if n != 0 {
		t.Fatalf("fired timer left %d entries behind", n)
	}
}

func TestSchedulerCancelSession(t *testing.T) {
	s := newScheduler()
	var fired atomic.Int32

	s.schedule("s-1", phaseMatched, 20*time.Millisecond, func() { fired.Add(1) })
	s.schedule("s-1", phaseReveal, 20*time.Millisecond, func() { fired.Add(1) })
	s.schedule("s-2", phaseMatched, 20*time.Millisecond, func() { fired.Add(1) })
	s.cancelSession("s-1")

	time.Sleep(50 * time.Millisecond)
	if got := fired.Load(); got != 1 {
		t.Fatalf("fired = %d; want only s-2's timer", got)
	}
}

func TestSchedulerReplaceKey(t *testing.T) {
	s := newScheduler()
	var first, second atomic.Int32

	s.schedule("s-1", phaseMatched, 20*time.Millisecond, func() { first.Add(1) })
	s.schedule("s-1", phaseMatched, 5*time.Millisecond, func() { second.Add(1) })

	time.Sleep(50 * time.Millisecond)
	if first.Load() != 0 || second.Load() != 1 {
		t.Fatalf("replaced timer fired %d/%d; want 0/1", first.Load(), second.Load())
	}
}
