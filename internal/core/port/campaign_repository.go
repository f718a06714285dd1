package port

import (
	"context"
	"errors"
	"time"

	"mesa-campaigns/internal/core/domain"
)

var (
	ErrRunNotFound    = errors.New("campaign run not found")
	ErrTenantNotFound = errors.New("tenant not found")
)

// CampaignRepository persists campaign creation runs for reporting and
// cleanup. It is an outbound port in hexagonal architecture.
type CampaignRepository interface {
	// SaveRun stores a run together with every attempted resource.
	SaveRun(ctx context.Context, run domain.CampaignRun) error
	// GetRun returns a run by id or ErrRunNotFound.
	GetRun(ctx context.Context, id string) (*domain.CampaignRun, error)
	// ListOrphans returns created campaigns and ad groups of failed runs.
	ListOrphans(ctx context.Context, tenantID string) ([]domain.Orphan, error)
}

// TenantDirectory resolves a tenant's hourly call quota from its
// subscription tier.
type TenantDirectory interface {
	// QuotaPerHour returns ErrTenantNotFound for unknown tenants.
	QuotaPerHour(ctx context.Context, tenantID string) (int, error)
}

// RateDecision is the answer of a RateLimiter.
type RateDecision struct {
	Allowed    bool
	Count      int
	ResetAt    time.Time
	RetryAfter time.Duration
}

// RateLimiter guards per-tenant hourly quotas. Implementations must make
// the check-and-increment atomic per tenant.
type RateLimiter interface {
	Check(ctx context.Context, tenantID string, maxPerHour int) (RateDecision, error)
}
