package port

import (
	"context"

	"mesa-campaigns/internal/core/domain"
)

// CampaignUseCase defines the business operations exposed by the engine.
// It is the primary port into the application domain.
type CampaignUseCase interface {
	// CreateCompleteCampaign builds Campaign, Ad Group, optional Lead Form
	// and one Ad per creative. A non-nil error is returned only when nothing
	// was attempted remotely (validation, local quota); every other outcome,
	// including fatal ones, is reported through the result.
	CreateCompleteCampaign(ctx context.Context, req domain.CampaignRequest) (*domain.CampaignResult, error)

	// UpdateResourceStatus changes a resource's status and re-reads it to
	// report whether the platform honoured the request.
	UpdateResourceStatus(ctx context.Context, tenantID string, ref domain.ResourceRef, status domain.ResourceStatus) (*domain.StatusUpdateResult, error)

	// GetRun returns a stored run.
	GetRun(ctx context.Context, id string) (*domain.CampaignRun, error)

	// ListOrphans returns remote resources left behind by failed runs.
	ListOrphans(ctx context.Context, tenantID string) ([]domain.Orphan, error)
}
