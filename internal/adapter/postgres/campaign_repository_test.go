package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-campaigns/internal/core/domain"
	"mesa-campaigns/internal/core/port"
)

func TestCampaignRepository_RunRoundTripAndOrphans(t *testing.T) {
	pool := testPool(t)
	repo := NewCampaignRepository(pool)
	ctx := context.Background()
	tenant := "tenant-" + uuid.NewString()
	at := time.Now().UTC().Truncate(time.Millisecond)

	failedRun := domain.CampaignRun{
		ID:           uuid.NewString(),
		TenantID:     tenant,
		CampaignName: "Spring 20250301100000",
		Objective:    domain.ObjectiveConversions,
		Outcome:      domain.OutcomeFailure,
		FailureKind:  domain.KindPlatformRejected,
		FailureMsg:   "no ad created: bad video",
		Resources: []domain.CreationResult{
			{ResourceType: domain.ResourceCampaign, RemoteID: "c1", Status: domain.StatusCreated, Index: -1},
			{ResourceType: domain.ResourceAdGroup, RemoteID: "g1", Status: domain.StatusCreated, Index: -1},
			{ResourceType: domain.ResourceAd, Status: domain.StatusFailed, Index: 0, ErrorKind: domain.KindPlatformRejected, Error: "bad video"},
		},
		CreatedAt: at,
	}
	okRun := domain.CampaignRun{
		ID:           uuid.NewString(),
		TenantID:     tenant,
		CampaignName: "Summer",
		Objective:    domain.ObjectiveTraffic,
		Outcome:      domain.OutcomeSuccess,
		Success:      true,
		Resources: []domain.CreationResult{
			{ResourceType: domain.ResourceCampaign, RemoteID: "c2", Status: domain.StatusCreated, Index: -1},
		},
		CreatedAt: at,
	}
	require.NoError(t, repo.SaveRun(ctx, failedRun))
	require.NoError(t, repo.SaveRun(ctx, okRun))

	got, err := repo.GetRun(ctx, failedRun.ID)
	require.NoError(t, err)
	assert.Equal(t, failedRun.Resources, got.Resources)
	assert.Equal(t, failedRun.FailureKind, got.FailureKind)
	assert.Equal(t, failedRun.Outcome, got.Outcome)
	assert.WithinDuration(t, at, got.CreatedAt, time.Millisecond)

	orphans, err := repo.ListOrphans(ctx, tenant)
	require.NoError(t, err)
	require.Len(t, orphans, 2)
	assert.Equal(t, "c1", orphans[0].RemoteID)
	assert.Equal(t, domain.ResourceAdGroup, orphans[1].ResourceType)

	_, err = repo.GetRun(ctx, uuid.NewString())
	assert.ErrorIs(t, err, port.ErrRunNotFound)
}
