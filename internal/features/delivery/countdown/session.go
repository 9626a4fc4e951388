package countdown

import (
	"sync"
	"time"

	"storefront/internal/core/clock"
)

// Session owns the countdown for one consumer, such as an open stream.
// At most one presenter is live at a time: a new evaluation replaces the
// previous presenter and Close releases the current one.
type Session struct {
	clock    clock.Clock
	onUpdate func(Snapshot)

	mu      sync.Mutex
	current *Presenter
	closed  bool
}

// NewSession creates a session whose presenters publish to onUpdate.
func NewSession(c clock.Clock, onUpdate func(Snapshot)) *Session {
	return &Session{clock: c, onUpdate: onUpdate}
}

// Replace stops the live presenter, if any, and starts one for cutoff.
// A nil cutoff only stops the live presenter. Returns the new presenter,
// or nil when none was started.
func (s *Session) Replace(cutoff *time.Time) *Presenter {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil {
		s.current.Stop()
		s.current = nil
	}
	if s.closed || cutoff == nil {
		return nil
	}

	p := NewPresenter(s.clock, cutoff, s.onUpdate)
	s.current = p
	p.Start()
	return p
}

// Current returns the live presenter, or nil.
func (s *Session) Current() *Presenter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Close stops the live presenter. Later Replace calls start nothing.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	if s.current != nil {
		s.current.Stop()
		s.current = nil
	}
}
