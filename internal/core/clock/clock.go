// Package clock abstracts wall time and one-shot scheduled callbacks so
// time-driven components can be driven deterministically in tests.
package clock

import "time"

// Timer is a pending scheduled callback.
type Timer interface {
	// Stop cancels the callback. It reports whether the call stopped the
	// timer before it fired.
	Stop() bool
}

// Clock provides the current time and scheduled callbacks.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// Real is the Clock backed by the runtime timer facility.
type Real struct{}

// Now returns time.Now().
func (Real) Now() time.Time { return time.Now() }

// AfterFunc wraps time.AfterFunc.
func (Real) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// InLocation wraps a Clock so Now reports wall time in loc.
func InLocation(c Clock, loc *time.Location) Clock {
	return located{Clock: c, loc: loc}
}

type located struct {
	Clock
	loc *time.Location
}

func (l located) Now() time.Time { return l.Clock.Now().In(l.loc) }
