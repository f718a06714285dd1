package ratelimit

import (
	"context"
	"sync"
	"time"

	"mesa-campaigns/internal/core/port"
)

// Window is the length of a tenant's quota window.
const Window = time.Hour

// Entry is the window state of one tenant.
type Entry struct {
	Count   int
	ResetAt time.Time
}

// Decide applies one check-and-increment to prev, the tenant's current
// window (nil when none exists). It returns the next window state and
// whether it differs from prev. A denial never changes the state.
func Decide(prev *Entry, now time.Time, maxPerHour int) (Entry, port.RateDecision, bool) {
	if prev == nil || now.After(prev.ResetAt) {
		if maxPerHour <= 0 {
			return Entry{}, port.RateDecision{ResetAt: now.Add(Window), RetryAfter: Window}, false
		}
		next := Entry{Count: 1, ResetAt: now.Add(Window)}
		return next, port.RateDecision{Allowed: true, Count: 1, ResetAt: next.ResetAt}, true
	}
	if prev.Count < maxPerHour {
		next := Entry{Count: prev.Count + 1, ResetAt: prev.ResetAt}
		return next, port.RateDecision{Allowed: true, Count: next.Count, ResetAt: next.ResetAt}, true
	}
	return *prev, port.RateDecision{
		Count:      prev.Count,
		ResetAt:    prev.ResetAt,
		RetryAfter: prev.ResetAt.Sub(now),
	}, false
}

// Limiter is a process-local per-tenant hourly quota guard. It is
// constructed once per process and injected into the use case. A single
// mutex serialises check-and-increment so concurrent callers can never
// exceed the ceiling.
type Limiter struct {
	mu      sync.Mutex
	entries map[string]Entry
	now     func() time.Time
}

// New returns an empty limiter using the wall clock.
func New() *Limiter {
	return NewWithClock(time.Now)
}

// NewWithClock returns a limiter reading time from now.
func NewWithClock(now func() time.Time) *Limiter {
	return &Limiter{entries: make(map[string]Entry), now: now}
}

// Allow reports whether tenantID may make another call under maxPerHour.
func (l *Limiter) Allow(tenantID string, maxPerHour int) bool {
	return l.decide(tenantID, maxPerHour).Allowed
}

// Check implements port.RateLimiter. It never returns an error.
func (l *Limiter) Check(_ context.Context, tenantID string, maxPerHour int) (port.RateDecision, error) {
	return l.decide(tenantID, maxPerHour), nil
}

func (l *Limiter) decide(tenantID string, maxPerHour int) port.RateDecision {
	l.mu.Lock()
	defer l.mu.Unlock()

	var prev *Entry
	if e, ok := l.entries[tenantID]; ok {
		prev = &e
	}
	next, d, changed := Decide(prev, l.now(), maxPerHour)
	if changed {
		l.entries[tenantID] = next
	}
	return d
}

// Snapshot returns the current count and reset time for tenantID.
func (l *Limiter) Snapshot(tenantID string) (count int, resetAt time.Time, ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.entries[tenantID]
	if !ok {
		return 0, time.Time{}, false
	}
	return e.Count, e.ResetAt, true
}
