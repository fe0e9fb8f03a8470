package sched

import (
	"sync"
	"time"
)

// Slot owns at most one scheduled task. Starting a new task cancels the
// previous one, so state-exit cleanup is a single Cancel call with no raw
// timer handles to leak. The tutor session uses it for reconnect backoff;
// a stale timer firing after its owning state resolved is the failure mode
// this replaces.
type Slot struct {
	mu      sync.Mutex
	timer   *time.Timer
	gen     uint64
	pending bool
}

// After schedules fn to run once after d, cancelling any pending task.
func (s *Slot) After(d time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
	}
	s.gen++
	gen := s.gen
	s.pending = true

	s.timer = time.AfterFunc(d, func() {
		s.mu.Lock()
		live := gen == s.gen
		if live {
			s.pending = false
		}
		s.mu.Unlock()
		if live {
			fn()
		}
	})
}

// Cancel stops any pending task. Safe to call repeatedly or with nothing
// scheduled.
func (s *Slot) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.gen++
	s.pending = false
}

// Pending reports whether a task is scheduled and not yet fired or
// cancelled.
func (s *Slot) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}
