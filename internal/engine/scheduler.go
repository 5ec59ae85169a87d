package engine

import (
	"sync"
	"time"
)

// timerPhase names the transition a pending timer will drive.
type timerPhase string

const (
	phaseMatched timerPhase = "matched"
	phaseReveal  timerPhase = "reveal"
)

type timerKey struct {
	sessionID string
	phase     timerPhase
}

// scheduler issues cancellable delayed callbacks keyed by (session, phase).
// A fired callback must re-validate session state itself: Stop racing an
// already-fired timer is allowed and harmless.
type scheduler struct {
	mu     sync.Mutex
	timers map[timerKey]*time.Timer
}

func newScheduler() *scheduler {
	return &scheduler{timers: make(map[timerKey]*time.Timer)}
}

func (s *scheduler) schedule(sessionID string, phase timerPhase, d time.Duration, fn func()) {
	key := timerKey{sessionID: sessionID, phase: phase}

	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[key]; ok {
		t.Stop()
	}
	s.timers[key] = time.AfterFunc(d, func() {
		s.mu.Lock()
		delete(s.timers, key)
		s.mu.Unlock()
		fn()
	})
}

// cancelSession stops every outstanding timer for the session.
func (s *scheduler) cancelSession(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, t := range s.timers {
		if key.sessionID == sessionID {
			t.Stop()
			delete(s.timers, key)
		}
	}
}
