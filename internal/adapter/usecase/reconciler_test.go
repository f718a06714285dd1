package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mesa-campaigns/internal/core/domain"
)

// Enabling an ad group under a disabled campaign is reported, not failed.
func TestUpdateResourceStatus_ParentDisabled(t *testing.T) {
	f := newFixture(t, nil)
	ref := domain.ResourceRef{Type: domain.ResourceAdGroup, ID: "g1"}

	f.platform.EXPECT().UpdateStatus(mock.Anything, ref, domain.StatusEnabled).Return(nil).Once()
	f.platform.EXPECT().GetAdGroup(mock.Anything, "g1").Return(domain.ResourceState{
		ID:              "g1",
		Status:          domain.StatusDisabled,
		SecondaryStatus: domain.SecondaryCampaignDisabled,
	}, nil).Once()

	res, err := f.uc.UpdateResourceStatus(context.Background(), "tenant-1", ref, domain.StatusEnabled)
	require.NoError(t, err)
	assert.Equal(t, &domain.StatusUpdateResult{
		ResourceID:          "g1",
		ResourceType:        domain.ResourceAdGroup,
		RequestedStatus:     domain.StatusEnabled,
		ActualStatus:        domain.StatusDisabled,
		SecondaryStatus:     domain.SecondaryCampaignDisabled,
		IsEffectivelyActive: false,
		Warning:             true,
	}, res)
}

func TestUpdateResourceStatus_Honoured(t *testing.T) {
	f := newFixture(t, nil)
	ref := domain.ResourceRef{Type: domain.ResourceAd, ID: "a1"}

	f.platform.EXPECT().UpdateStatus(mock.Anything, ref, domain.StatusEnabled).Return(nil).Once()
	f.platform.EXPECT().GetAd(mock.Anything, "a1").Return(domain.ResourceState{ID: "a1", Status: domain.StatusEnabled}, nil).Once()

	res, err := f.uc.UpdateResourceStatus(context.Background(), "tenant-1", ref, domain.StatusEnabled)
	require.NoError(t, err)
	assert.False(t, res.Warning)
	assert.True(t, res.IsEffectivelyActive)
}

// The flag can say ENABLED while an override marker keeps it off.
func TestUpdateResourceStatus_EnabledButOverridden(t *testing.T) {
	f := newFixture(t, nil)
	ref := domain.ResourceRef{Type: domain.ResourceAd, ID: "a1"}

	f.platform.EXPECT().UpdateStatus(mock.Anything, ref, domain.StatusEnabled).Return(nil).Once()
	f.platform.EXPECT().GetAd(mock.Anything, "a1").Return(domain.ResourceState{
		ID: "a1", Status: domain.StatusEnabled, SecondaryStatus: domain.SecondaryAdGroupDisabled,
	}, nil).Once()

	res, err := f.uc.UpdateResourceStatus(context.Background(), "tenant-1", ref, domain.StatusEnabled)
	require.NoError(t, err)
	assert.False(t, res.Warning)
	assert.False(t, res.IsEffectivelyActive)
}

func TestUpdateResourceStatus_NotFound(t *testing.T) {
	f := newFixture(t, nil)
	ref := domain.ResourceRef{Type: domain.ResourceCampaign, ID: "missing"}

	f.platform.EXPECT().UpdateStatus(mock.Anything, ref, domain.StatusDisabled).
		Return(&domain.Error{Kind: domain.KindNotFound, Message: "campaign does not exist"}).Once()

	_, err := f.uc.UpdateResourceStatus(context.Background(), "tenant-1", ref, domain.StatusDisabled)
	assert.True(t, domain.IsKind(err, domain.KindNotFound))
	assert.Contains(t, err.Error(), "campaign missing not found")
}

func TestUpdateResourceStatus_ReadIsRetried(t *testing.T) {
	f := newFixture(t, nil)
	ref := domain.ResourceRef{Type: domain.ResourceAdGroup, ID: "g1"}

	f.platform.EXPECT().UpdateStatus(mock.Anything, ref, domain.StatusDisabled).Return(nil).Once()
	f.platform.EXPECT().GetAdGroup(mock.Anything, "g1").Return(domain.ResourceState{}, throttled()).Once()
	f.platform.EXPECT().GetAdGroup(mock.Anything, "g1").Return(domain.ResourceState{ID: "g1", Status: domain.StatusDisabled}, nil).Once()

	res, err := f.uc.UpdateResourceStatus(context.Background(), "tenant-1", ref, domain.StatusDisabled)
	require.NoError(t, err)
	assert.False(t, res.Warning)
	assert.False(t, res.IsEffectivelyActive)
}

func TestUpdateResourceStatus_Validation(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	_, err := f.uc.UpdateResourceStatus(ctx, "", domain.ResourceRef{Type: domain.ResourceAd, ID: "a1"}, domain.StatusEnabled)
	assert.True(t, domain.IsKind(err, domain.KindValidation))

	_, err = f.uc.UpdateResourceStatus(ctx, "tenant-1", domain.ResourceRef{Type: domain.ResourceAd, ID: "a1"}, "PAUSED")
	assert.True(t, domain.IsKind(err, domain.KindValidation))

	_, err = f.uc.UpdateResourceStatus(ctx, "tenant-1", domain.ResourceRef{Type: domain.ResourceLeadForm, ID: "f1"}, domain.StatusEnabled)
	assert.True(t, domain.IsKind(err, domain.KindValidation))
}

func TestUpdateResourceStatus_RateLimited(t *testing.T) {
	f := newFixture(t, nil)
	for i := 0; i < 50; i++ {
		require.True(t, f.limiter.Allow("tenant-1", 50))
	}
	_, err := f.uc.UpdateResourceStatus(context.Background(), "tenant-1",
		domain.ResourceRef{Type: domain.ResourceAd, ID: "a1"}, domain.StatusEnabled)
	assert.True(t, domain.IsKind(err, domain.KindRateLimited))
}
