// Package proctor counts suspicious client signals during an interview and
// decides between warning the candidate and terminating the session.
package proctor

import (
	"sync"
	"time"
)

type State string

const (
	StateInactive   State = "inactive"
	StateActive     State = "active"
	StateTerminated State = "terminated"
)

type EventKind string

const (
	EventWarning    EventKind = "warning"
	EventTerminated EventKind = "terminated"
)

const (
	DefaultMaxWarnings = 3
	DefaultCooldown    = 8 * time.Second
	// DismissAfter is how long a client shows a warning before auto-dismissing it.
	DismissAfter = 8 * time.Second
)

type Event struct {
	Kind         EventKind `json:"kind"`
	Reason       string    `json:"reason"`
	WarningCount int       `json:"warning_count"`
	MaxWarnings  int       `json:"max_warnings"`
	DismissAfter int64     `json:"dismiss_after_ms,omitempty"`
	At           time.Time `json:"at"`
}

type Snapshot struct {
	State          State `json:"state"`
	WarningCount   int   `json:"warning_count"`
	MaxWarnings    int   `json:"max_warnings"`
	CooldownActive bool  `json:"cooldown_active"`
}

type Option func(*Policy)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(p *Policy) { p.now = now }
}

func WithMaxWarnings(n int) Option {
	return func(p *Policy) {
		if n > 0 {
			p.maxWarnings = n
		}
	}
}

func WithCooldown(d time.Duration) Option {
	return func(p *Policy) {
		if d >= 0 {
			p.cooldown = d
		}
	}
}

// Policy is the violation state machine of one session. Every method holds
// the lock for its whole run, so events of a session are applied one at a time.
type Policy struct {
	mu            sync.Mutex
	now           func() time.Time
	maxWarnings   int
	cooldown      time.Duration
	state         State
	warningCount  int
	cooldownUntil time.Time
}

func NewPolicy(opts ...Option) *Policy {
	p := &Policy{
		now:         time.Now,
		maxWarnings: DefaultMaxWarnings,
		cooldown:    DefaultCooldown,
		state:       StateInactive,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Activate starts (or restarts) monitoring with a clean slate.
func (p *Policy) Activate() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.state = StateActive
	p.warningCount = 0
	p.cooldownUntil = time.Time{}
}

// Deactivate stops monitoring. Calling it on an inactive policy is a no-op.
func (p *Policy) Deactivate() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.state = StateInactive
	p.cooldownUntil = time.Time{}
}

// RecordViolation returns the emitted event and true, or false when the
// violation was ignored (not active, or still cooling down).
func (p *Policy) RecordViolation(reason string) (Event, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	if p.state != StateActive || now.Before(p.cooldownUntil) {
		return Event{}, false
	}

	p.warningCount++
	p.cooldownUntil = now.Add(p.cooldown)

	ev := Event{
		Reason:       reason,
		WarningCount: p.warningCount,
		MaxWarnings:  p.maxWarnings,
		At:           now,
	}
	if p.warningCount < p.maxWarnings {
		ev.Kind = EventWarning
		ev.DismissAfter = DismissAfter.Milliseconds()
		return ev, true
	}

	ev.Kind = EventTerminated
	p.state = StateTerminated
	return ev, true
}

func (p *Policy) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	return Snapshot{
		State:          p.state,
		WarningCount:   p.warningCount,
		MaxWarnings:    p.maxWarnings,
		CooldownActive: p.state == StateActive && p.now().Before(p.cooldownUntil),
	}
}
