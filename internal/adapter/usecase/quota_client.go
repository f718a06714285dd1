package usecase

import (
	"context"

	"mesa-campaigns/internal/core/domain"
	"mesa-campaigns/internal/core/port"
)

// quotaClient gates every call to the platform through the tenant's hourly
// quota. A denied call never reaches the platform. One is built per
// request; the limiter behind it is shared.
type quotaClient struct {
	next     port.AdPlatformClient
	limiter  port.RateLimiter
	tenantID string
	quota    int
}

var _ port.AdPlatformClient = (*quotaClient)(nil)

func (q *quotaClient) admit(ctx context.Context, op string) error {
	d, err := q.limiter.Check(ctx, q.tenantID, q.quota)
	if err != nil {
		return &domain.Error{Kind: domain.KindInternal, Op: op, Message: "rate limiter unavailable", Err: err}
	}
	if !d.Allowed {
		return domain.RateLimited(op, q.tenantID, d.RetryAfter)
	}
	return nil
}

func (q *quotaClient) CreateCampaign(ctx context.Context, p port.CampaignPayload) (string, error) {
	if err := q.admit(ctx, "platform.CreateCampaign"); err != nil {
		return "", err
	}
	return q.next.CreateCampaign(ctx, p)
}

func (q *quotaClient) CreateAdGroup(ctx context.Context, p port.AdGroupPayload) (string, error) {
	if err := q.admit(ctx, "platform.CreateAdGroup"); err != nil {
		return "", err
	}
	return q.next.CreateAdGroup(ctx, p)
}

func (q *quotaClient) CreateAd(ctx context.Context, p port.AdPayload) (string, error) {
	if err := q.admit(ctx, "platform.CreateAd"); err != nil {
		return "", err
	}
	return q.next.CreateAd(ctx, p)
}

func (q *quotaClient) CreateLeadForm(ctx context.Context, p port.LeadFormPayload) (string, error) {
	if err := q.admit(ctx, "platform.CreateLeadForm"); err != nil {
		return "", err
	}
	return q.next.CreateLeadForm(ctx, p)
}

func (q *quotaClient) GetCampaign(ctx context.Context, id string) (domain.ResourceState, error) {
	if err := q.admit(ctx, "platform.GetCampaign"); err != nil {
		return domain.ResourceState{}, err
	}
	return q.next.GetCampaign(ctx, id)
}

func (q *quotaClient) GetAdGroup(ctx context.Context, id string) (domain.ResourceState, error) {
	if err := q.admit(ctx, "platform.GetAdGroup"); err != nil {
		return domain.ResourceState{}, err
	}
	return q.next.GetAdGroup(ctx, id)
}

func (q *quotaClient) GetAd(ctx context.Context, id string) (domain.ResourceState, error) {
	if err := q.admit(ctx, "platform.GetAd"); err != nil {
		return domain.ResourceState{}, err
	}
	return q.next.GetAd(ctx, id)
}

func (q *quotaClient) UpdateStatus(ctx context.Context, ref domain.ResourceRef, status domain.ResourceStatus) error {
	if err := q.admit(ctx, "platform.UpdateStatus"); err != nil {
		return err
	}
	return q.next.UpdateStatus(ctx, ref, status)
}

func (q *quotaClient) ListPixelEvents(ctx context.Context, pixelID string) ([]domain.PixelEvent, error) {
	if err := q.admit(ctx, "platform.ListPixelEvents"); err != nil {
		return nil, err
	}
	return q.next.ListPixelEvents(ctx, pixelID)
}
