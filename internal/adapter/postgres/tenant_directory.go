package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mesa-campaigns/internal/core/port"
)

// TenantDirectory resolves hourly quotas from the tenants table.
type TenantDirectory struct {
	pool  *pgxpool.Pool
	tiers map[string]int
}

var _ port.TenantDirectory = (*TenantDirectory)(nil)

// NewTenantDirectory returns a directory mapping subscription tiers to
// hourly call quotas.
func NewTenantDirectory(pool *pgxpool.Pool, tiers map[string]int) *TenantDirectory {
	return &TenantDirectory{pool: pool, tiers: tiers}
}

// QuotaPerHour implements port.TenantDirectory.
func (d *TenantDirectory) QuotaPerHour(ctx context.Context, tenantID string) (int, error) {
	var tier string
	err := d.pool.QueryRow(ctx, `SELECT tier FROM tenants WHERE id = $1`, tenantID).Scan(&tier)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, port.ErrTenantNotFound
	}
	if err != nil {
		return 0, err
	}
	return TierQuota(d.tiers, tier)
}

// TierQuota looks up tier case-insensitively.
func TierQuota(tiers map[string]int, tier string) (int, error) {
	q, ok := tiers[strings.ToLower(strings.TrimSpace(tier))]
	if !ok {
		return 0, fmt.Errorf("unknown tier %q", tier)
	}
	return q, nil
}
