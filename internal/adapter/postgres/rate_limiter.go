package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mesa-campaigns/internal/core/port"
	"mesa-campaigns/internal/core/ratelimit"
)

// RateLimiter keeps tenant quota windows in the rate_limits table so that
// every process behind the same database shares them. The window rule is
// the one of ratelimit.Decide; the row lock makes check-and-increment
// atomic per tenant.
type RateLimiter struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

var _ port.RateLimiter = (*RateLimiter)(nil)

// NewRateLimiter returns a limiter backed by pool.
func NewRateLimiter(pool *pgxpool.Pool) *RateLimiter {
	return &RateLimiter{pool: pool, now: time.Now}
}

// Check implements port.RateLimiter.
func (l *RateLimiter) Check(ctx context.Context, tenantID string, maxPerHour int) (d port.RateDecision, err error) {
	now := l.now().UTC()
	if maxPerHour <= 0 {
		_, d, _ = ratelimit.Decide(nil, now, maxPerHour)
		return d, nil
	}

	tx, err := l.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return d, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	// First call of a tenant: the insert itself is the admission.
	tag, err := tx.Exec(ctx, `INSERT INTO rate_limits (tenant_id, count, reset_at)
VALUES ($1, 1, $2) ON CONFLICT (tenant_id) DO NOTHING`, tenantID, now.Add(ratelimit.Window))
	if err != nil {
		return d, err
	}
	if tag.RowsAffected() == 1 {
		return port.RateDecision{Allowed: true, Count: 1, ResetAt: now.Add(ratelimit.Window)}, nil
	}

	var prev ratelimit.Entry
	err = tx.QueryRow(ctx, `SELECT count, reset_at FROM rate_limits WHERE tenant_id = $1 FOR UPDATE`, tenantID).
		Scan(&prev.Count, &prev.ResetAt)
	if err != nil {
		return d, err
	}

	next, d, changed := ratelimit.Decide(&prev, now, maxPerHour)
	if changed {
		_, err = tx.Exec(ctx, `UPDATE rate_limits SET count = $2, reset_at = $3 WHERE tenant_id = $1`,
			tenantID, next.Count, next.ResetAt)
	}
	return d, err
}
