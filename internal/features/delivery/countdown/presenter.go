package countdown

import (
	"sync"
	"time"

	"storefront/internal/core/clock"
)

// Interval is the refresh cadence while counting.
const Interval = time.Second

// State is the presenter's lifecycle stage.
type State int

const (
	// Idle means Start has not been called.
	Idle State = iota
	// Counting means the cutoff is in the future and a refresh is scheduled.
	Counting
	// Expired means the cutoff passed or was never set. Terminal.
	Expired
	// Stopped means the owner released the presenter before expiry. Terminal.
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Counting:
		return "counting"
	case Expired:
		return "expired"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

// Presenter publishes a Snapshot for a fixed cutoff immediately on Start
// and then once per Interval until the cutoff passes. Each refresh
// schedules the next one, so nothing stays scheduled after expiry or Stop.
//
// onUpdate runs with the presenter locked; it must not call back into the
// presenter and should return quickly.
type Presenter struct {
	clock    clock.Clock
	cutoff   *time.Time
	onUpdate func(Snapshot)

	mu    sync.Mutex
	state State
	timer clock.Timer
	last  Snapshot
}

// NewPresenter creates an idle presenter for cutoff. A nil cutoff expires on Start.
func NewPresenter(c clock.Clock, cutoff *time.Time, onUpdate func(Snapshot)) *Presenter {
	if onUpdate == nil {
		onUpdate = func(Snapshot) {}
	}
	var own *time.Time
	if cutoff != nil {
		t := *cutoff
		own = &t
	}
	return &Presenter{
		clock:    c,
		cutoff:   own,
		onUpdate: onUpdate,
		last:     Snapshot{Expired: true},
	}
}

// Start publishes the first snapshot. Calling Start again is a no-op.
func (p *Presenter) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != Idle {
		return
	}
	p.state = Counting
	p.refresh()
}

// Stop cancels any scheduled refresh. No update is published after Stop
// returns. Stop is idempotent and safe after expiry.
func (p *Presenter) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
	if p.state == Idle || p.state == Counting {
		p.state = Stopped
	}
}

// State returns the current lifecycle stage.
func (p *Presenter) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Snapshot returns the most recently published snapshot.
func (p *Presenter) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last
}

// Cutoff returns the cutoff this presenter counts down to, or nil.
func (p *Presenter) Cutoff() *time.Time {
	if p.cutoff == nil {
		return nil
	}
	t := *p.cutoff
	return &t
}

func (p *Presenter) tick() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.timer = nil
	if p.state != Counting {
		return
	}
	p.refresh()
}

// refresh computes and publishes a snapshot, scheduling the next refresh
// while counting. Caller holds p.mu.
func (p *Presenter) refresh() {
	snap := Remaining(p.cutoff, p.clock.Now())
	p.last = snap

	if snap.Expired {
		p.state = Expired
	} else {
		p.timer = p.clock.AfterFunc(Interval, p.tick)
	}

	p.onUpdate(snap)
}
