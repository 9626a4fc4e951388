// Package countdown turns a same-day cutoff into a live time-remaining
// display that refreshes once per second until the cutoff passes.
package countdown

import (
	"fmt"
	"time"
)

// ExpiredMessage replaces the clock display once the cutoff has passed.
const ExpiredMessage = "Same-day delivery no longer available"

// Snapshot is the time left until a cutoff, truncated to whole seconds.
type Snapshot struct {
	Hours   int  `json:"hours"`
	Minutes int  `json:"minutes"`
	Seconds int  `json:"seconds"`
	Expired bool `json:"expired"`
}

// Remaining computes the time left from now until cutoff. A nil cutoff or
// one at or before now yields an expired, all-zero snapshot.
func Remaining(cutoff *time.Time, now time.Time) Snapshot {
	if cutoff == nil {
		return Snapshot{Expired: true}
	}

	diff := cutoff.Sub(now)
	if diff <= 0 {
		return Snapshot{Expired: true}
	}

	return Snapshot{
		Hours:   int(diff / time.Hour),
		Minutes: int(diff % time.Hour / time.Minute),
		Seconds: int(diff % time.Minute / time.Second),
	}
}

// String renders HH:MM:SS, or ExpiredMessage once expired.
func (s Snapshot) String() string {
	if s.Expired {
		return ExpiredMessage
	}
	return fmt.Sprintf("%02d:%02d:%02d", s.Hours, s.Minutes, s.Seconds)
}
