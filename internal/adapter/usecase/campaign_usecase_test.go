package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mesa-campaigns/internal/core/domain"
	"mesa-campaigns/internal/core/port"
	"mesa-campaigns/internal/core/port/mocks"
	"mesa-campaigns/internal/core/ratelimit"
	"mesa-campaigns/internal/core/retry"
)

var testNow = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return testNow }

type fixture struct {
	platform *mocks.MockAdPlatformClient
	limiter  *ratelimit.Limiter
	uc       *CampaignUseCase
}

func newFixture(t *testing.T, mutate func(*Config), opts ...Option) *fixture {
	t.Helper()
	cfg := Config{
		UTCOffsetHours:      3,
		DefaultLocations:    []string{"102358"},
		DefaultQuotaPerHour: 50,
		FallbackLandingURL:  "https://shop.example/landing",
		AdConcurrency:       1,
	}
	if mutate != nil {
		mutate(&cfg)
	}
	f := &fixture{
		platform: mocks.NewMockAdPlatformClient(t),
		limiter:  ratelimit.NewWithClock(fixedNow),
	}
	exec := retry.New(retry.Config{MaxRetries: 3, BaseDelay: time.Millisecond}, nil).
		WithSleeper(func(context.Context, time.Duration) error { return nil })
	opts = append([]Option{WithExecutor(exec), WithClock(fixedNow)}, opts...)
	f.uc = NewCampaignUseCase(f.platform, f.limiter, nil, nil, cfg, nil, opts...)
	return f
}

func baseRequest(creatives ...domain.Creative) domain.CampaignRequest {
	if len(creatives) == 0 {
		creatives = []domain.Creative{{Kind: domain.CreativeVideo, VideoID: "v1", AdText: "Spring sale", LandingURL: "https://shop.example/sale"}}
	}
	return domain.CampaignRequest{
		TenantID:  "tenant-1",
		Name:      "Spring",
		Objective: domain.ObjectiveConversions,
		Budget:    domain.Budget{Mode: "daily", Amount: 5000},
		Creatives: creatives,
	}
}

func video(id string) domain.Creative {
	return domain.Creative{Kind: domain.CreativeVideo, VideoID: id, AdText: "text " + id, LandingURL: "https://shop.example/" + id}
}

func rejected(msg string) error {
	return &domain.Error{Kind: domain.KindPlatformRejected, Code: 40002, Message: msg}
}

func throttled() error {
	return &domain.Error{Kind: domain.KindPlatformThrottled, Code: 40100, Message: "request limit reached"}
}

// One video creative, no pixel: three resources and no optimization event.
func TestCreateCompleteCampaign_SingleCreativeNoPixel(t *testing.T) {
	f := newFixture(t, nil)

	var campaign port.CampaignPayload
	var adGroup port.AdGroupPayload
	f.platform.EXPECT().CreateCampaign(mock.Anything, mock.Anything).
		Run(func(_ context.Context, p port.CampaignPayload) { campaign = p }).
		Return("c1", nil).Once()
	f.platform.EXPECT().CreateAdGroup(mock.Anything, mock.Anything).
		Run(func(_ context.Context, p port.AdGroupPayload) { adGroup = p }).
		Return("g1", nil).Once()
	f.platform.EXPECT().CreateAd(mock.Anything, mock.MatchedBy(func(p port.AdPayload) bool {
		return p.AdGroupID == "g1" && p.VideoID == "v1" && p.Format == "SINGLE_VIDEO"
	})).Return("a1", nil).Once()

	res, err := f.uc.CreateCompleteCampaign(context.Background(), baseRequest())
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, domain.OutcomeSuccess, res.Outcome)
	require.Len(t, res.Resources, 3)
	assert.Equal(t, created(domain.ResourceCampaign, "c1", -1), res.Resources[0])
	assert.Equal(t, created(domain.ResourceAdGroup, "g1", -1), res.Resources[1])
	assert.Equal(t, created(domain.ResourceAd, "a1", 0), res.Resources[2])
	assert.Empty(t, res.Orphans)

	assert.Equal(t, "Spring 20250301100000", campaign.Name)
	assert.Equal(t, "WEB_CONVERSIONS", campaign.ObjectiveType)
	assert.Equal(t, "BUDGET_MODE_DAY", campaign.BudgetMode)
	assert.Equal(t, 50.0, campaign.Budget)

	assert.Equal(t, "c1", adGroup.CampaignID)
	assert.Empty(t, adGroup.OptimizationEvent)
	assert.Empty(t, adGroup.PixelID)
	assert.Equal(t, []string{"102358"}, adGroup.LocationIDs)
	assert.Equal(t, string(domain.GenderUnrestricted), adGroup.Gender)
	assert.Len(t, adGroup.AgeGroups, 5)
	assert.Equal(t, port.ScheduleFromNow, adGroup.ScheduleType)
	assert.Empty(t, adGroup.ScheduleEnd)
}

// Creative #2 is rejected; the other two still go through.
func TestCreateCompleteCampaign_PartialSuccess(t *testing.T) {
	for _, concurrency := range []int{1, 3} {
		f := newFixture(t, func(c *Config) { c.AdConcurrency = concurrency })

		f.platform.EXPECT().CreateCampaign(mock.Anything, mock.Anything).Return("c1", nil).Once()
		f.platform.EXPECT().CreateAdGroup(mock.Anything, mock.Anything).Return("g1", nil).Once()
		f.platform.EXPECT().CreateAd(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, p port.AdPayload) (string, error) {
				if p.VideoID == "v2" {
					return "", rejected("video aspect ratio not supported")
				}
				return "ad-" + p.VideoID, nil
			}).Times(3)

		res, err := f.uc.CreateCompleteCampaign(context.Background(), baseRequest(video("v1"), video("v2"), video("v3")))
		require.NoError(t, err)

		assert.True(t, res.Success)
		assert.Equal(t, domain.OutcomePartial, res.Outcome)
		assert.Equal(t, 2, res.AdsCreated)
		assert.Equal(t, 1, res.AdsFailed)
		require.Len(t, res.Resources, 5)
		assert.Equal(t, created(domain.ResourceAd, "ad-v1", 0), res.Resources[2])
		assert.Equal(t, domain.StatusFailed, res.Resources[3].Status)
		assert.Equal(t, 1, res.Resources[3].Index)
		assert.Equal(t, domain.KindPlatformRejected, res.Resources[3].ErrorKind)
		assert.Contains(t, res.Resources[3].Error, "video aspect ratio not supported")
		assert.Equal(t, created(domain.ResourceAd, "ad-v3", 2), res.Resources[4])
	}
}

// Zero ads means failure even though campaign and ad group exist.
func TestCreateCompleteCampaign_AllAdsFail(t *testing.T) {
	f := newFixture(t, nil)
	f.platform.EXPECT().CreateCampaign(mock.Anything, mock.Anything).Return("c1", nil).Once()
	f.platform.EXPECT().CreateAdGroup(mock.Anything, mock.Anything).Return("g1", nil).Once()
	f.platform.EXPECT().CreateAd(mock.Anything, mock.Anything).Return("", rejected("bad text")).Once()

	res, err := f.uc.CreateCompleteCampaign(context.Background(), baseRequest())
	require.NoError(t, err)

	assert.False(t, res.Success)
	assert.Equal(t, domain.OutcomeFailure, res.Outcome)
	require.Len(t, res.Resources, 3)
	assert.True(t, res.Resources[0].Created())
	assert.True(t, res.Resources[1].Created())
	assert.False(t, res.Resources[2].Created())
	assert.Equal(t, []domain.CreationResult{res.Resources[0], res.Resources[1]}, res.Orphans)
	assert.Equal(t, domain.KindPlatformRejected, res.FailureKind)
	assert.Contains(t, res.FailureMsg, "bad text")
}

// A tenant already at its ceiling is denied before any remote call.
func TestCreateCompleteCampaign_TenantAtCeiling(t *testing.T) {
	f := newFixture(t, nil)
	for i := 0; i < 50; i++ {
		require.True(t, f.limiter.Allow("tenant-1", 50))
	}

	res, err := f.uc.CreateCompleteCampaign(context.Background(), baseRequest())
	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, domain.IsKind(err, domain.KindRateLimited))
	assert.Equal(t, time.Hour, domain.RetryAfterOf(err))

	count, _, _ := f.limiter.Snapshot("tenant-1")
	assert.Equal(t, 50, count)
	f.platform.AssertNotCalled(t, "CreateCampaign", mock.Anything, mock.Anything)
}

func TestCreateCompleteCampaign_QuotaExhaustedMidRun(t *testing.T) {
	tenants := mocks.NewMockTenantDirectory(t)
	tenants.EXPECT().QuotaPerHour(mock.Anything, "tenant-1").Return(1, nil).Once()

	f := newFixture(t, nil)
	f.uc.tenants = tenants
	f.platform.EXPECT().CreateCampaign(mock.Anything, mock.Anything).Return("c1", nil).Once()

	res, err := f.uc.CreateCompleteCampaign(context.Background(), baseRequest())
	require.NoError(t, err)
	assert.False(t, res.Success)
	require.Len(t, res.Resources, 2)
	assert.Equal(t, domain.KindRateLimited, res.Resources[1].ErrorKind)
	assert.Equal(t, domain.KindRateLimited, res.FailureKind)
	require.Len(t, res.Orphans, 1)
	assert.Equal(t, "c1", res.Orphans[0].RemoteID)
}

func TestCreateCompleteCampaign_QuotaLookupFailsOpen(t *testing.T) {
	tenants := mocks.NewMockTenantDirectory(t)
	tenants.EXPECT().QuotaPerHour(mock.Anything, "tenant-1").Return(0, errors.New("db down")).Once()

	f := newFixture(t, nil)
	f.uc.tenants = tenants
	f.platform.EXPECT().CreateCampaign(mock.Anything, mock.Anything).Return("c1", nil).Once()
	f.platform.EXPECT().CreateAdGroup(mock.Anything, mock.Anything).Return("g1", nil).Once()
	f.platform.EXPECT().CreateAd(mock.Anything, mock.Anything).Return("a1", nil).Once()

	res, err := f.uc.CreateCompleteCampaign(context.Background(), baseRequest())
	require.NoError(t, err)
	assert.True(t, res.Success)
	count, _, _ := f.limiter.Snapshot("tenant-1")
	assert.Equal(t, 3, count)
}

func TestCreateCompleteCampaign_CampaignFailureIsFatal(t *testing.T) {
	f := newFixture(t, nil)
	f.platform.EXPECT().CreateCampaign(mock.Anything, mock.Anything).Return("", rejected("duplicate name")).Once()

	res, err := f.uc.CreateCompleteCampaign(context.Background(), baseRequest())
	require.NoError(t, err)
	assert.False(t, res.Success)
	require.Len(t, res.Resources, 1)
	assert.Equal(t, domain.ResourceCampaign, res.Resources[0].ResourceType)
	assert.Equal(t, domain.KindPlatformRejected, res.FailureKind)
	assert.Contains(t, res.FailureMsg, "duplicate name")
	assert.Empty(t, res.Orphans)
}

func TestCreateCompleteCampaign_AdGroupFailureLeavesOrphan(t *testing.T) {
	f := newFixture(t, nil)
	f.platform.EXPECT().CreateCampaign(mock.Anything, mock.Anything).Return("c1", nil).Once()
	f.platform.EXPECT().CreateAdGroup(mock.Anything, mock.Anything).Return("", rejected("invalid location")).Once()

	res, err := f.uc.CreateCompleteCampaign(context.Background(), baseRequest())
	require.NoError(t, err)
	assert.False(t, res.Success)
	require.Len(t, res.Resources, 2)
	assert.Equal(t, domain.StatusFailed, res.Resources[1].Status)
	require.Len(t, res.Orphans, 1)
	assert.Equal(t, "c1", res.Orphans[0].RemoteID)
}

func TestCreateCompleteCampaign_RetriesThrottling(t *testing.T) {
	f := newFixture(t, nil)
	f.platform.EXPECT().CreateCampaign(mock.Anything, mock.Anything).Return("", throttled()).Once()
	f.platform.EXPECT().CreateCampaign(mock.Anything, mock.Anything).Return("c1", nil).Once()
	f.platform.EXPECT().CreateAdGroup(mock.Anything, mock.Anything).Return("g1", nil).Once()
	f.platform.EXPECT().CreateAd(mock.Anything, mock.Anything).Return("", throttled()).Times(3)

	res, err := f.uc.CreateCompleteCampaign(context.Background(), baseRequest())
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, domain.KindUpstreamUnavailable, res.Resources[2].ErrorKind)

	// Every attempt consumed quota: 2 campaign + 1 ad group + 3 ad.
	count, _, _ := f.limiter.Snapshot("tenant-1")
	assert.Equal(t, 6, count)
}

func TestCreateCompleteCampaign_PixelEvents(t *testing.T) {
	f := newFixture(t, nil)
	req := baseRequest()
	req.AdGroup.PixelID = "px1"

	var adGroup port.AdGroupPayload
	f.platform.EXPECT().CreateCampaign(mock.Anything, mock.Anything).Return("c1", nil).Once()
	f.platform.EXPECT().ListPixelEvents(mock.Anything, "px1").Return([]domain.PixelEvent{
		{Name: "ViewContent", Volume: 300},
		{Name: "CompletePayment", Volume: 12},
	}, nil).Once()
	f.platform.EXPECT().CreateAdGroup(mock.Anything, mock.Anything).
		Run(func(_ context.Context, p port.AdGroupPayload) { adGroup = p }).
		Return("g1", nil).Once()
	f.platform.EXPECT().CreateAd(mock.Anything, mock.Anything).Return("a1", nil).Once()

	_, err := f.uc.CreateCompleteCampaign(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "px1", adGroup.PixelID)
	assert.Equal(t, string(domain.EventPageView), adGroup.OptimizationEvent)
}

func TestCreateCompleteCampaign_PixelEventsUnavailable(t *testing.T) {
	f := newFixture(t, nil)
	req := baseRequest()
	req.AdGroup.PixelID = "px1"

	var adGroup port.AdGroupPayload
	f.platform.EXPECT().CreateCampaign(mock.Anything, mock.Anything).Return("c1", nil).Once()
	f.platform.EXPECT().ListPixelEvents(mock.Anything, "px1").Return(nil, &domain.Error{Kind: domain.KindNotFound}).Once()
	f.platform.EXPECT().CreateAdGroup(mock.Anything, mock.Anything).
		Run(func(_ context.Context, p port.AdGroupPayload) { adGroup = p }).
		Return("g1", nil).Once()
	f.platform.EXPECT().CreateAd(mock.Anything, mock.Anything).Return("a1", nil).Once()

	_, err := f.uc.CreateCompleteCampaign(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, string(domain.DefaultOptimizationEvent), adGroup.OptimizationEvent)
}

func TestCreateCompleteCampaign_ExplicitEventSkipsPixelLookup(t *testing.T) {
	f := newFixture(t, nil)
	req := baseRequest()
	req.AdGroup.PixelID = "px1"
	req.AdGroup.OptimizationEvent = "AddToCart"

	f.platform.EXPECT().CreateCampaign(mock.Anything, mock.Anything).Return("c1", nil).Once()
	f.platform.EXPECT().CreateAdGroup(mock.Anything, mock.MatchedBy(func(p port.AdGroupPayload) bool {
		return p.OptimizationEvent == string(domain.EventCartAdd)
	})).Return("g1", nil).Once()
	f.platform.EXPECT().CreateAd(mock.Anything, mock.Anything).Return("a1", nil).Once()

	_, err := f.uc.CreateCompleteCampaign(context.Background(), req)
	require.NoError(t, err)
}

func TestCreateCompleteCampaign_LifetimeBudgetSchedule(t *testing.T) {
	f := newFixture(t, nil)
	req := baseRequest()
	req.Budget = domain.Budget{Mode: "BUDGET_MODE_TOTAL", Amount: 100000}
	req.StartTime = "2025-03-10 09:00:00"
	req.EndTime = "2025-03-20 21:00:00"

	f.platform.EXPECT().CreateCampaign(mock.Anything, mock.MatchedBy(func(p port.CampaignPayload) bool {
		return p.BudgetMode == "BUDGET_MODE_TOTAL" && p.Budget == 1000
	})).Return("c1", nil).Once()
	f.platform.EXPECT().CreateAdGroup(mock.Anything, mock.MatchedBy(func(p port.AdGroupPayload) bool {
		return p.ScheduleType == port.ScheduleStartEnd &&
			p.ScheduleStart == "2025-03-10 06:00:00" &&
			p.ScheduleEnd == "2025-03-20 18:00:00"
	})).Return("g1", nil).Once()
	f.platform.EXPECT().CreateAd(mock.Anything, mock.Anything).Return("a1", nil).Once()

	res, err := f.uc.CreateCompleteCampaign(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, res.Success)
}

func TestCreateCompleteCampaign_DynamicDailyAlias(t *testing.T) {
	f := newFixture(t, nil)
	req := baseRequest()
	req.Budget.Mode = "BUDGET_MODE_DYNAMIC_DAILY_BUDGET"

	f.platform.EXPECT().CreateCampaign(mock.Anything, mock.MatchedBy(func(p port.CampaignPayload) bool {
		return p.BudgetMode == "BUDGET_MODE_DAY"
	})).Return("c1", nil).Once()
	f.platform.EXPECT().CreateAdGroup(mock.Anything, mock.Anything).Return("g1", nil).Once()
	f.platform.EXPECT().CreateAd(mock.Anything, mock.Anything).Return("a1", nil).Once()

	_, err := f.uc.CreateCompleteCampaign(context.Background(), req)
	require.NoError(t, err)
}

func leadRequest() domain.CampaignRequest {
	req := baseRequest(video("v1"), video("v2"))
	req.Objective = domain.ObjectiveLeadGeneration
	req.LeadForm = &domain.LeadFormParams{
		Title:       "Get a quote",
		PrivacyURL:  "https://shop.example/privacy",
		Fields:      []domain.LeadFormField{{Name: "Email", Type: "email", Required: true}},
		FallbackURL: "https://shop.example/contact",
	}
	return req
}

func TestCreateCompleteCampaign_LeadFormBeforeAds(t *testing.T) {
	f := newFixture(t, nil)

	var order []string
	var mu sync.Mutex
	track := func(s string) {
		mu.Lock()
		order = append(order, s)
		mu.Unlock()
	}
	f.platform.EXPECT().CreateCampaign(mock.Anything, mock.Anything).Return("c1", nil).Once()
	f.platform.EXPECT().CreateAdGroup(mock.Anything, mock.Anything).Return("g1", nil).Once()
	f.platform.EXPECT().CreateLeadForm(mock.Anything, mock.MatchedBy(func(p port.LeadFormPayload) bool {
		return p.Name == "Get a quote" && len(p.Fields) == 1 && p.Fields[0].FieldType == "EMAIL"
	})).Run(func(context.Context, port.LeadFormPayload) { track("form") }).Return("form-1", nil).Once()
	f.platform.EXPECT().CreateAd(mock.Anything, mock.MatchedBy(func(p port.AdPayload) bool {
		return p.LeadFormID == "form-1" && p.LandingPageURL == "" && p.CallToAction == "SIGN_UP"
	})).Run(func(context.Context, port.AdPayload) { track("ad") }).Return("a", nil).Times(2)

	res, err := f.uc.CreateCompleteCampaign(context.Background(), leadRequest())
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, []string{"form", "ad", "ad"}, order)
	require.Len(t, res.Resources, 5)
	assert.Equal(t, created(domain.ResourceLeadForm, "form-1", -1), res.Resources[2])
}

func TestCreateCompleteCampaign_LeadFormFailureFallsBack(t *testing.T) {
	f := newFixture(t, nil)
	f.platform.EXPECT().CreateCampaign(mock.Anything, mock.Anything).Return("c1", nil).Once()
	f.platform.EXPECT().CreateAdGroup(mock.Anything, mock.Anything).Return("g1", nil).Once()
	f.platform.EXPECT().CreateLeadForm(mock.Anything, mock.Anything).Return("", rejected("privacy url unreachable")).Once()
	f.platform.EXPECT().CreateAd(mock.Anything, mock.MatchedBy(func(p port.AdPayload) bool {
		return p.LeadFormID == "" && p.LandingPageURL == "https://shop.example/contact"
	})).Return("a", nil).Times(2)

	res, err := f.uc.CreateCompleteCampaign(context.Background(), leadRequest())
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, domain.OutcomeSuccess, res.Outcome)
	assert.Equal(t, domain.StatusFailed, res.Resources[2].Status)
	assert.Equal(t, domain.ResourceLeadForm, res.Resources[2].ResourceType)
}

// Form fields on a non lead-generation objective skip the form step.
func TestCreateCompleteCampaign_LeadFormIgnoredForOtherObjectives(t *testing.T) {
	f := newFixture(t, nil)
	req := baseRequest()
	req.LeadForm = &domain.LeadFormParams{Fields: []domain.LeadFormField{{Name: "email", Type: "email"}}}

	f.platform.EXPECT().CreateCampaign(mock.Anything, mock.Anything).Return("c1", nil).Once()
	f.platform.EXPECT().CreateAdGroup(mock.Anything, mock.Anything).Return("g1", nil).Once()
	f.platform.EXPECT().CreateAd(mock.Anything, mock.MatchedBy(func(p port.AdPayload) bool {
		return p.LeadFormID == "" && p.LandingPageURL == "https://shop.example/sale"
	})).Return("a1", nil).Once()

	res, err := f.uc.CreateCompleteCampaign(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, res.Success)
	require.Len(t, res.Resources, 3)
	for _, r := range res.Resources {
		assert.NotEqual(t, domain.ResourceLeadForm, r.ResourceType)
	}
	f.platform.AssertNotCalled(t, "CreateLeadForm", mock.Anything, mock.Anything)
}

func TestCreateCompleteCampaign_Validation(t *testing.T) {
	cases := map[string]func(*domain.CampaignRequest){
		"missing tenant":       func(r *domain.CampaignRequest) { r.TenantID = "" },
		"missing name":         func(r *domain.CampaignRequest) { r.Name = " " },
		"bad objective":        func(r *domain.CampaignRequest) { r.Objective = "fame" },
		"zero budget":          func(r *domain.CampaignRequest) { r.Budget.Amount = 0 },
		"unknown budget mode":  func(r *domain.CampaignRequest) { r.Budget.Mode = "weekly" },
		"no creatives":         func(r *domain.CampaignRequest) { r.Creatives = nil },
		"video without id":     func(r *domain.CampaignRequest) { r.Creatives[0].VideoID = "" },
		"empty ad text":        func(r *domain.CampaignRequest) { r.Creatives[0].AdText = "" },
		"bad landing url":      func(r *domain.CampaignRequest) { r.Creatives[0].LandingURL = "shop" },
		"empty locations":      func(r *domain.CampaignRequest) { r.AdGroup.Targeting.Locations = []string{} },
		"bad start time":       func(r *domain.CampaignRequest) { r.StartTime = "tomorrow" },
		"lifetime without end": func(r *domain.CampaignRequest) { r.Budget.Mode = "lifetime" },
		"end before start": func(r *domain.CampaignRequest) {
			r.StartTime = "2025-03-10 10:00:00"
			r.EndTime = "2025-03-09 10:00:00"
		},
		"end in past": func(r *domain.CampaignRequest) { r.EndTime = "2025-02-01 10:00:00" },
		"lead form without privacy url": func(r *domain.CampaignRequest) {
			r.Objective = domain.ObjectiveLeadGeneration
			r.LeadForm = &domain.LeadFormParams{Fields: []domain.LeadFormField{{Name: "email"}}}
		},
		"unresolvable event": func(r *domain.CampaignRequest) {
			r.AdGroup.PixelID = "px1"
			r.AdGroup.OptimizationEvent = "--"
		},
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t, nil)
			req := baseRequest()
			mutate(&req)

			res, err := f.uc.CreateCompleteCampaign(context.Background(), req)
			assert.Nil(t, res)
			assert.True(t, domain.IsKind(err, domain.KindValidation), "got %v", err)
			_, _, touched := f.limiter.Snapshot(req.TenantID)
			assert.False(t, touched)
		})
	}
}

func TestCreateCompleteCampaign_CancelStopsFurtherSteps(t *testing.T) {
	f := newFixture(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f.platform.EXPECT().CreateCampaign(mock.Anything, mock.Anything).Return("c1", nil).Once()
	f.platform.EXPECT().CreateAdGroup(mock.Anything, mock.Anything).
		Run(func(context.Context, port.AdGroupPayload) { cancel() }).
		Return("g1", nil).Once()

	res, err := f.uc.CreateCompleteCampaign(ctx, baseRequest())
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, domain.KindCanceled, res.FailureKind)
	require.Len(t, res.Resources, 2)
	assert.Len(t, res.Orphans, 2)
}

func TestCreateCompleteCampaign_PersistsRun(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	f := newFixture(t, nil)
	f.uc.repo = repo

	f.platform.EXPECT().CreateCampaign(mock.Anything, mock.Anything).Return("c1", nil).Once()
	f.platform.EXPECT().CreateAdGroup(mock.Anything, mock.Anything).Return("g1", nil).Once()
	f.platform.EXPECT().CreateAd(mock.Anything, mock.Anything).Return("a1", nil).Once()

	var saved domain.CampaignRun
	repo.EXPECT().SaveRun(mock.Anything, mock.AnythingOfType("domain.CampaignRun")).
		Run(func(_ context.Context, run domain.CampaignRun) { saved = run }).
		Return(errors.New("store unavailable")).Once()

	res, err := f.uc.CreateCompleteCampaign(context.Background(), baseRequest())
	require.NoError(t, err, "persistence failures must not fail the request")
	assert.Equal(t, res.RunID, saved.ID)
	assert.Equal(t, domain.OutcomeSuccess, saved.Outcome)
	assert.Equal(t, testNow, saved.CreatedAt)
	assert.Len(t, saved.Resources, 3)
}

func TestGetRunWithoutRepository(t *testing.T) {
	f := newFixture(t, nil)
	_, err := f.uc.GetRun(context.Background(), "x")
	assert.ErrorIs(t, err, port.ErrRunNotFound)
}
