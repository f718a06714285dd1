package retry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"mesa-campaigns/internal/core/domain"
)

const (
	DefaultMaxRetries = 3
	DefaultBaseDelay  = 2 * time.Second
)

// Config controls the retry policy. MaxRetries is the total number of
// attempts; the delay before attempt n+1 is BaseDelay*2^n. CallTimeout, when
// positive, bounds every single attempt.
type Config struct {
	MaxRetries  int
	BaseDelay   time.Duration
	CallTimeout time.Duration
}

// Sleeper waits for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

// Executor wraps remote calls with bounded exponential backoff. Only errors
// whose kind is retryable (platform throttling, transient timeouts) are
// attempted again; everything else is returned on the first failure. It
// holds no shared state.
type Executor struct {
	cfg    Config
	sleep  Sleeper
	logger *slog.Logger
}

// New returns an executor; zero config fields fall back to the defaults.
func New(cfg Config, logger *slog.Logger) *Executor {
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = DefaultBaseDelay
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Executor{cfg: cfg, sleep: sleepContext, logger: logger}
}

// WithSleeper replaces the wait function, mainly for tests.
func (e *Executor) WithSleeper(s Sleeper) *Executor {
	cp := *e
	cp.sleep = s
	return &cp
}

// Config returns the effective policy.
func (e *Executor) Config() Config {
	return e.cfg
}

// Delay returns the wait after the given zero-based failed attempt.
func (e *Executor) Delay(attempt int) time.Duration {
	return e.cfg.BaseDelay * time.Duration(1<<attempt)
}

// Execute runs fn under the retry policy.
func (e *Executor) Execute(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	_, err := Do(ctx, e, op, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}

// Do runs fn under e's retry policy and returns its value. After the last
// retryable failure the error is surfaced as KindUpstreamUnavailable.
func Do[T any](ctx context.Context, e *Executor, op string, fn func(ctx context.Context) (T, error)) (T, error) {
	var (
		zero    T
		lastErr error
	)
	for attempt := 0; attempt < e.cfg.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, &domain.Error{Kind: domain.KindCanceled, Op: op, Err: err}
		}

		v, err := attemptCall(ctx, e.cfg.CallTimeout, op, fn)
		if err == nil {
			return v, nil
		}
		if ctx.Err() != nil {
			return zero, &domain.Error{Kind: domain.KindCanceled, Op: op, Err: ctx.Err()}
		}

		var de *domain.Error
		if !errors.As(err, &de) || !de.Retryable() {
			return zero, err
		}
		lastErr = err
		if attempt == e.cfg.MaxRetries-1 {
			break
		}

		delay := e.Delay(attempt)
		e.logger.Warn("platform throttled, backing off",
			slog.String("op", op),
			slog.Int("attempt", attempt+1),
			slog.Duration("delay", delay),
			slog.Any("error", err))
		if err = e.sleep(ctx, delay); err != nil {
			return zero, &domain.Error{Kind: domain.KindCanceled, Op: op, Err: err}
		}
	}
	return zero, &domain.Error{
		Kind:    domain.KindUpstreamUnavailable,
		Op:      op,
		Message: fmt.Sprintf("giving up after %d attempts: %v", e.cfg.MaxRetries, lastErr),
		Err:     lastErr,
	}
}

// attemptCall bounds a single attempt with timeout. A per-call deadline the
// callee did not classify itself is a hard timeout, not a throttle.
func attemptCall[T any](ctx context.Context, timeout time.Duration, op string, fn func(ctx context.Context) (T, error)) (T, error) {
	if timeout <= 0 {
		return fn(ctx)
	}
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	v, err := fn(callCtx)
	if err != nil && ctx.Err() == nil && errors.Is(callCtx.Err(), context.DeadlineExceeded) {
		var de *domain.Error
		if !errors.As(err, &de) {
			return v, &domain.Error{Kind: domain.KindTimeout, Op: op, Message: "call deadline exceeded", Err: err}
		}
	}
	return v, err
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
