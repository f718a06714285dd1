package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"mesa-campaigns/internal/core/domain"
	"mesa-campaigns/internal/core/normalize"
	"mesa-campaigns/internal/core/port"
	"mesa-campaigns/internal/core/retry"
)

// Config holds the orchestration policy.
type Config struct {
	Retry retry.Config
	// UTCOffsetHours is the tenant offset used when a request carries none.
	UTCOffsetHours   int
	DefaultLocations []string
	// DefaultQuotaPerHour is used when the tenant's tier cannot be resolved.
	DefaultQuotaPerHour int
	FallbackLandingURL  string
	// AdConcurrency bounds parallel ad creation per request; 1 is sequential.
	AdConcurrency int
}

// CampaignUseCase orchestrates campaign creation and status changes against
// the ad platform. It implements port.CampaignUseCase.
type CampaignUseCase struct {
	platform  port.AdPlatformClient
	limiter   port.RateLimiter
	tenants   port.TenantDirectory
	repo      port.CampaignRepository
	exec      *retry.Executor
	targeting *normalize.TargetingNormalizer
	cfg       Config
	logger    *slog.Logger
	tracer    trace.Tracer
	now       func() time.Time
}

var _ port.CampaignUseCase = (*CampaignUseCase)(nil)

// Option customises a CampaignUseCase.
type Option func(*CampaignUseCase)

// WithTracer sets the OpenTelemetry tracer.
func WithTracer(tracer trace.Tracer) Option {
	return func(u *CampaignUseCase) {
		if tracer != nil {
			u.tracer = tracer
		}
	}
}

// WithClock replaces the wall clock.
func WithClock(now func() time.Time) Option {
	return func(u *CampaignUseCase) { u.now = now }
}

// WithExecutor replaces the retry executor built from Config.Retry.
func WithExecutor(exec *retry.Executor) Option {
	return func(u *CampaignUseCase) { u.exec = exec }
}

// NewCampaignUseCase wires the orchestrator. The platform client is wrapped
// per request so that every attempt is gated by limiter, which must be
// shared by all requests of the process. tenants and repo may be nil:
// quotas then fall back to cfg.DefaultQuotaPerHour and runs are not
// persisted. Zero values in cfg are replaced by their defaults, and the
// tracer is a no-op unless WithTracer is given.
func NewCampaignUseCase(
	platform port.AdPlatformClient,
	limiter port.RateLimiter,
	tenants port.TenantDirectory,
	repo port.CampaignRepository,
	cfg Config,
	logger *slog.Logger,
	opts ...Option,
) *CampaignUseCase {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.DefaultQuotaPerHour <= 0 {
		cfg.DefaultQuotaPerHour = 50
	}
	if cfg.AdConcurrency <= 0 {
		cfg.AdConcurrency = 1
	}
	u := &CampaignUseCase{
		platform:  platform,
		limiter:   limiter,
		tenants:   tenants,
		repo:      repo,
		exec:      retry.New(cfg.Retry, logger),
		targeting: normalize.NewTargetingNormalizer(cfg.DefaultLocations),
		cfg:       cfg,
		logger:    logger,
		tracer:    noop.NewTracerProvider().Tracer("campaign"),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// CreateCompleteCampaign validates and normalises req, then walks the
// creation steps. Validation failures and a quota denial on the very first
// call are returned as errors; every other outcome is in the result.
func (u *CampaignUseCase) CreateCompleteCampaign(ctx context.Context, req domain.CampaignRequest) (*domain.CampaignResult, error) {
	r, err := u.prepare(ctx, req)
	if err != nil {
		return nil, err
	}
	log := u.logger.With(slog.String("run_id", r.id), slog.String("tenant_id", req.TenantID))
	log.Info("campaign creation started",
		slog.String("campaign_name", r.result.CampaignName),
		slog.Int("creatives", len(req.Creatives)),
		slog.Int("quota_per_hour", r.quota))

	ctx, span := u.tracer.Start(ctx, "campaign.create", trace.WithAttributes(
		attribute.String("run.id", r.id),
		attribute.String("tenant.id", req.TenantID),
		attribute.String("campaign.objective", string(req.Objective)),
	))
	defer span.End()

	for _, s := range u.steps() {
		if err = ctx.Err(); err != nil {
			r.fail(&domain.Error{Kind: domain.KindCanceled, Op: s.name, Err: err})
			log.Warn("campaign creation cancelled", slog.String("step", s.name))
			break
		}
		if err = u.runStep(ctx, r, s, log); err != nil {
			r.fail(err)
			break
		}
	}

	if r.campaignID == "" && domain.IsKind(err, domain.KindRateLimited) {
		// Nothing exists remotely; report the denial like a validation error.
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	r.result.Finalize()
	span.SetAttributes(
		attribute.String("campaign.outcome", string(r.result.Outcome)),
		attribute.Int("campaign.ads_created", r.result.AdsCreated),
	)
	if !r.result.Success {
		span.SetStatus(codes.Error, "no ad created")
		log.Error("campaign creation failed",
			slog.String("failure_kind", string(r.result.FailureKind)),
			slog.String("failure", r.result.FailureMsg),
			slog.Int("orphans", len(r.result.Orphans)))
	} else {
		log.Info("campaign creation finished",
			slog.String("outcome", string(r.result.Outcome)),
			slog.Int("ads_created", r.result.AdsCreated),
			slog.Int("ads_failed", r.result.AdsFailed))
	}

	u.saveRun(ctx, r, log)
	return r.result, nil
}

// UpdateResourceStatus changes a resource's status and verifies it.
func (u *CampaignUseCase) UpdateResourceStatus(ctx context.Context, tenantID string, ref domain.ResourceRef, status domain.ResourceStatus) (*domain.StatusUpdateResult, error) {
	if strings.TrimSpace(tenantID) == "" {
		return nil, domain.Validation("status", "tenant id is required")
	}
	client := u.clientFor(tenantID, u.quotaFor(ctx, tenantID))
	res, err := NewReconciler(client, u.exec, u.tracer).UpdateAndVerify(ctx, ref, status)
	if err != nil {
		return nil, err
	}
	if res.Warning {
		u.logger.Warn("platform did not apply requested status",
			slog.String("tenant_id", tenantID),
			slog.String("resource_type", string(ref.Type)),
			slog.String("resource_id", ref.ID),
			slog.String("requested", string(res.RequestedStatus)),
			slog.String("actual", string(res.ActualStatus)),
			slog.String("secondary", res.SecondaryStatus))
	}
	return res, nil
}

// GetRun returns a stored run.
func (u *CampaignUseCase) GetRun(ctx context.Context, id string) (*domain.CampaignRun, error) {
	if u.repo == nil {
		return nil, port.ErrRunNotFound
	}
	return u.repo.GetRun(ctx, id)
}

// ListOrphans returns remote resources left behind by failed runs.
func (u *CampaignUseCase) ListOrphans(ctx context.Context, tenantID string) ([]domain.Orphan, error) {
	if u.repo == nil {
		return nil, nil
	}
	return u.repo.ListOrphans(ctx, tenantID)
}

// quotaFor resolves the tenant's hourly quota. Lookup failures fail open
// with the conservative default tier.
func (u *CampaignUseCase) quotaFor(ctx context.Context, tenantID string) int {
	if u.tenants == nil {
		return u.cfg.DefaultQuotaPerHour
	}
	quota, err := u.tenants.QuotaPerHour(ctx, tenantID)
	if err != nil || quota <= 0 {
		level := slog.LevelWarn
		if errors.Is(err, port.ErrTenantNotFound) {
			level = slog.LevelInfo
		}
		u.logger.Log(ctx, level, "tenant quota unavailable, using default",
			slog.String("tenant_id", tenantID),
			slog.Int("default_per_hour", u.cfg.DefaultQuotaPerHour),
			slog.Any("error", err))
		return u.cfg.DefaultQuotaPerHour
	}
	return quota
}

func (u *CampaignUseCase) clientFor(tenantID string, quota int) port.AdPlatformClient {
	return &quotaClient{next: u.platform, limiter: u.limiter, tenantID: tenantID, quota: quota}
}

func (u *CampaignUseCase) saveRun(ctx context.Context, r *campaignRun, log *slog.Logger) {
	if u.repo == nil {
		return
	}
	run := r.result.Run(r.req.Objective)
	run.CreatedAt = u.now().UTC()
	// The record must survive a cancelled request.
	if err := u.repo.SaveRun(context.WithoutCancel(ctx), run); err != nil {
		log.Error("failed to persist campaign run", slog.Any("error", err))
	}
}

func newRunID() string {
	return uuid.NewString()
}

func uniqueName(name string, at time.Time) string {
	return fmt.Sprintf("%s %s", strings.TrimSpace(name), at.UTC().Format("20060102150405"))
}
