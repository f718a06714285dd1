package ratelimit

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func newClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)}
}

func TestAllowUpToCeiling(t *testing.T) {
	clock := newClock()
	l := NewWithClock(clock.Now)

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow("t1", 3), "call %d", i+1)
	}
	assert.False(t, l.Allow("t1", 3))

	count, resetAt, ok := l.Snapshot("t1")
	require.True(t, ok)
	assert.Equal(t, 3, count)
	assert.Equal(t, clock.Now().Add(time.Hour), resetAt)
}

// A denied call must not increment the counter.
func TestDeniedCallDoesNotMutate(t *testing.T) {
	clock := newClock()
	l := NewWithClock(clock.Now)
	for i := 0; i < 50; i++ {
		require.True(t, l.Allow("t1", 50))
	}

	clock.Advance(20 * time.Minute)
	d, err := l.Check(context.Background(), "t1", 50)
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, 40*time.Minute, d.RetryAfter)

	count, _, _ := l.Snapshot("t1")
	assert.Equal(t, 50, count)
}

func TestWindowResets(t *testing.T) {
	clock := newClock()
	l := NewWithClock(clock.Now)
	require.True(t, l.Allow("t1", 1))
	require.False(t, l.Allow("t1", 1))

	// Exactly at reset time the window is still active.
	clock.Advance(time.Hour)
	assert.False(t, l.Allow("t1", 1))

	clock.Advance(time.Second)
	assert.True(t, l.Allow("t1", 1))
	count, resetAt, _ := l.Snapshot("t1")
	assert.Equal(t, 1, count)
	assert.Equal(t, clock.Now().Add(time.Hour), resetAt)
}

func TestTenantsAreIndependent(t *testing.T) {
	l := NewWithClock(newClock().Now)
	require.True(t, l.Allow("a", 1))
	assert.False(t, l.Allow("a", 1))
	assert.True(t, l.Allow("b", 1))
}

func TestZeroQuotaDenies(t *testing.T) {
	l := NewWithClock(newClock().Now)
	assert.False(t, l.Allow("t1", 0))
	_, _, ok := l.Snapshot("t1")
	assert.False(t, ok)
}

func TestConcurrentCallersNeverExceedCeiling(t *testing.T) {
	l := NewWithClock(newClock().Now)
	const (
		ceiling = 100
		callers = 64
		perCall = 10
	)

	var allowed atomic.Int64
	var wg sync.WaitGroup
	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < perCall; j++ {
				if l.Allow("shared", ceiling) {
					allowed.Add(1)
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(ceiling), allowed.Load())
}

func TestDecide(t *testing.T) {
	now := newClock().Now()

	next, d, changed := Decide(nil, now, 5)
	assert.True(t, changed)
	assert.True(t, d.Allowed)
	assert.Equal(t, Entry{Count: 1, ResetAt: now.Add(Window)}, next)

	full := Entry{Count: 5, ResetAt: now.Add(10 * time.Minute)}
	next, d, changed = Decide(&full, now, 5)
	assert.False(t, changed)
	assert.False(t, d.Allowed)
	assert.Equal(t, full, next)
	assert.Equal(t, 10*time.Minute, d.RetryAfter)

	expired := Entry{Count: 5, ResetAt: now.Add(-time.Second)}
	next, d, changed = Decide(&expired, now, 5)
	assert.True(t, changed)
	assert.True(t, d.Allowed)
	assert.Equal(t, 1, next.Count)
}
