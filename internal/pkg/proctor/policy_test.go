package proctor

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestPolicyIgnoresViolationsWhenInactive(t *testing.T) {
	p := NewPolicy()
	_, ok := p.RecordViolation("tab_switch")
	assert.False(t, ok)
	assert.Equal(t, StateInactive, p.Snapshot().State)
	assert.Zero(t, p.Snapshot().WarningCount)
}

func TestPolicyWarnsThenTerminates(t *testing.T) {
	clock := newFakeClock()
	p := NewPolicy(WithClock(clock.Now))
	p.Activate()

	ev, ok := p.RecordViolation("tab_switch")
	require.True(t, ok)
	assert.Equal(t, EventWarning, ev.Kind)
	assert.Equal(t, 1, ev.WarningCount)
	assert.Equal(t, int64(8000), ev.DismissAfter)

	clock.Advance(DefaultCooldown)
	ev, ok = p.RecordViolation("window_blur")
	require.True(t, ok)
	assert.Equal(t, EventWarning, ev.Kind)
	assert.Equal(t, 2, ev.WarningCount)
	assert.Equal(t, "window_blur", ev.Reason)

	clock.Advance(DefaultCooldown)
	ev, ok = p.RecordViolation("motion")
	require.True(t, ok)
	assert.Equal(t, EventTerminated, ev.Kind)
	assert.Equal(t, "motion", ev.Reason)
	assert.Equal(t, StateTerminated, p.Snapshot().State)

	clock.Advance(time.Hour)
	_, ok = p.RecordViolation("tab_switch")
	assert.False(t, ok, "terminated policy must not process a fourth violation")
	assert.Equal(t, 3, p.Snapshot().WarningCount)

	p.Activate()
	snap := p.Snapshot()
	assert.Equal(t, StateActive, snap.State)
	assert.Zero(t, snap.WarningCount)
	_, ok = p.RecordViolation("tab_switch")
	assert.True(t, ok)
}

func TestPolicyCooldownSuppressesBursts(t *testing.T) {
	clock := newFakeClock()
	p := NewPolicy(WithClock(clock.Now))
	p.Activate()

	_, ok := p.RecordViolation("window_blur")
	require.True(t, ok)
	assert.True(t, p.Snapshot().CooldownActive)

	// 15 attempts spread over 7.5s, all inside the cooldown window.
	for i := 0; i < 15; i++ {
		clock.Advance(500 * time.Millisecond)
		_, ok = p.RecordViolation("window_blur")
		assert.False(t, ok, "attempt %d", i)
	}
	assert.Equal(t, 1, p.Snapshot().WarningCount)

	clock.Advance(500 * time.Millisecond)
	_, ok = p.RecordViolation("window_blur")
	assert.True(t, ok)
	assert.Equal(t, 2, p.Snapshot().WarningCount)
}

func TestPolicyDeactivateIsIdempotent(t *testing.T) {
	clock := newFakeClock()
	p := NewPolicy(WithClock(clock.Now))

	p.Deactivate()
	p.Deactivate()
	assert.Equal(t, StateInactive, p.Snapshot().State)

	p.Activate()
	_, _ = p.RecordViolation("tab_switch")
	p.Deactivate()
	snap := p.Snapshot()
	assert.Equal(t, StateInactive, snap.State)
	assert.False(t, snap.CooldownActive)

	_, ok := p.RecordViolation("tab_switch")
	assert.False(t, ok)
}

func TestPolicyOptions(t *testing.T) {
	clock := newFakeClock()
	p := NewPolicy(WithClock(clock.Now), WithMaxWarnings(1), WithCooldown(0))
	p.Activate()

	ev, ok := p.RecordViolation("tab_switch")
	require.True(t, ok)
	assert.Equal(t, EventTerminated, ev.Kind)
	assert.Equal(t, 1, ev.MaxWarnings)
}

func TestPolicyConcurrentViolationsCountOnce(t *testing.T) {
	clock := newFakeClock()
	p := NewPolicy(WithClock(clock.Now))
	p.Activate()

	var wg sync.WaitGroup
	var mu sync.Mutex
	recorded := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok := p.RecordViolation("window_blur"); ok {
				mu.Lock()
				recorded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, recorded)
	assert.Equal(t, 1, p.Snapshot().WarningCount)
}

func TestRegistry(t *testing.T) {
	r := NewRegistry(WithMaxWarnings(2))

	a := r.Get("a")
	assert.Same(t, a, r.Get("a"))
	assert.NotSame(t, a, r.Get("b"))
	assert.Equal(t, 2, r.Len())

	a.Activate()
	r.Remove("a")
	r.Remove("a")
	assert.Equal(t, StateInactive, a.Snapshot().State)
	_, ok := r.Lookup("a")
	assert.False(t, ok)
	assert.Equal(t, 2, r.Get("b").Snapshot().MaxWarnings)
}
