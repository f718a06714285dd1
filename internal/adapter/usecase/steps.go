package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"mesa-campaigns/internal/core/domain"
	"mesa-campaigns/internal/core/normalize"
	"mesa-campaigns/internal/core/port"
	"mesa-campaigns/internal/core/retry"
)

// campaignRun is the step accumulator of one CreateCompleteCampaign call.
// Steps read the remote ids of earlier steps from it and append their own
// CreationResult entries to result.Resources.
type campaignRun struct {
	id       string
	req      domain.CampaignRequest
	quota    int
	client   port.AdPlatformClient
	mode     domain.BudgetMode
	target   domain.NormalizedTargeting
	start    string
	end      string
	result   *domain.CampaignResult
	fallback string

	campaignID string
	adGroupID  string
	leadFormID string
}

func (r *campaignRun) record(res domain.CreationResult) {
	r.result.Resources = append(r.result.Resources, res)
}

func (r *campaignRun) fail(err error) {
	r.result.FailureKind = domain.KindOf(err)
	r.result.FailureMsg = err.Error()
}

func created(t domain.ResourceType, id string, index int) domain.CreationResult {
	return domain.CreationResult{ResourceType: t, RemoteID: id, Status: domain.StatusCreated, Index: index}
}

func failed(t domain.ResourceType, index int, err error) domain.CreationResult {
	return domain.CreationResult{
		ResourceType: t,
		Status:       domain.StatusFailed,
		Index:        index,
		ErrorKind:    domain.KindOf(err),
		Error:        err.Error(),
	}
}

// step is one state of the creation machine. A returned error is fatal and
// stops the machine; non-fatal failures are recorded in the run.
type step struct {
	name string
	fn   func(ctx context.Context, r *campaignRun) error
}

func (u *CampaignUseCase) steps() []step {
	return []step{
		{"create_campaign", u.createCampaign},
		{"create_ad_group", u.createAdGroup},
		{"create_lead_form", u.createLeadForm},
		{"create_ads", u.createAds},
	}
}

func (u *CampaignUseCase) runStep(ctx context.Context, r *campaignRun, s step, log *slog.Logger) error {
	ctx, span := u.tracer.Start(ctx, "campaign."+s.name, trace.WithAttributes(attribute.String("run.id", r.id)))
	defer span.End()

	log.Debug("step started", slog.String("step", s.name))
	err := s.fn(ctx, r)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Warn("step failed", slog.String("step", s.name), slog.String("kind", string(domain.KindOf(err))), slog.Any("error", err))
		return err
	}
	return nil
}

// prepare validates req and derives every normalised input before any
// remote call is made.
func (u *CampaignUseCase) prepare(ctx context.Context, req domain.CampaignRequest) (*campaignRun, error) {
	const op = "campaign.validate"
	if err := validate(req); err != nil {
		return nil, err
	}

	mode, err := normalize.NormalizeBudgetMode(req.Budget.Mode)
	if err != nil {
		return nil, err
	}
	target, err := u.targeting.NormalizeTargeting(req.AdGroup.Targeting)
	if err != nil {
		return nil, err
	}

	offset := u.cfg.UTCOffsetHours
	if req.UTCOffsetHours != nil {
		offset = *req.UTCOffsetHours
	}
	start, err := normalize.NormalizeSchedule(req.StartTime, offset)
	if err != nil {
		return nil, err
	}
	end, err := normalize.NormalizeSchedule(req.EndTime, offset)
	if err != nil {
		return nil, err
	}
	if mode == domain.BudgetLifetime && end == "" {
		return nil, domain.Validation(op, "a lifetime budget requires an end time")
	}
	if start != "" && end != "" && end <= start {
		return nil, domain.Validation(op, "end time must be after start time")
	}
	if end != "" && end <= u.now().UTC().Format(normalize.PlatformTimeLayout) {
		return nil, domain.Validation(op, "end time is in the past")
	}

	if req.AdGroup.PixelID != "" && req.AdGroup.OptimizationEvent != "" {
		// Fail fast on choices that cannot resolve, before anything exists remotely.
		if _, err = normalize.ResolveOptimizationEvent(req.AdGroup.OptimizationEvent, req.AdGroup.PixelID, nil); err != nil {
			return nil, err
		}
	}

	quota := u.quotaFor(ctx, req.TenantID)
	id := newRunID()
	return &campaignRun{
		id:     id,
		req:    req,
		quota:  quota,
		client: u.clientFor(req.TenantID, quota),
		mode:   mode,
		target: target,
		start:  start,
		end:    end,
		result: &domain.CampaignResult{
			RunID:        id,
			TenantID:     req.TenantID,
			CampaignName: uniqueName(req.Name, u.now()),
			Resources:    make([]domain.CreationResult, 0, len(req.Creatives)+3),
		},
	}, nil
}

func validate(req domain.CampaignRequest) error {
	const op = "campaign.validate"
	switch {
	case strings.TrimSpace(req.TenantID) == "":
		return domain.Validation(op, "tenant id is required")
	case strings.TrimSpace(req.Name) == "":
		return domain.Validation(op, "campaign name is required")
	case !req.Objective.Valid():
		return domain.Validation(op, "unsupported objective %q", req.Objective)
	case req.Budget.Amount <= 0:
		return domain.Validation(op, "budget amount must be positive")
	case len(req.Creatives) == 0:
		return domain.Validation(op, "at least one creative is required")
	case req.AdGroup.BidAmount < 0:
		return domain.Validation(op, "bid amount must not be negative")
	}
	for i, c := range req.Creatives {
		switch creativeKind(c) {
		case domain.CreativeVideo:
			if c.VideoID == "" {
				return domain.Validation(op, "creative %d: video id is required", i)
			}
		case domain.CreativeImage:
			if len(c.ImageIDs) == 0 {
				return domain.Validation(op, "creative %d: image ids are required", i)
			}
		default:
			return domain.Validation(op, "creative %d: unsupported kind %q", i, c.Kind)
		}
		if strings.TrimSpace(c.AdText) == "" {
			return domain.Validation(op, "creative %d: ad text is required", i)
		}
		if c.LandingURL != "" {
			if u, err := url.Parse(c.LandingURL); err != nil || u.Scheme == "" || u.Host == "" {
				return domain.Validation(op, "creative %d: invalid landing url", i)
			}
		}
	}
	// Lead forms on other objectives are ignored by createLeadForm.
	if lf := req.LeadForm; wantsLeadForm(req) && strings.TrimSpace(lf.PrivacyURL) == "" {
		return domain.Validation(op, "lead form privacy url is required")
	}
	return nil
}

// wantsLeadForm reports whether the lead form step runs for req.
func wantsLeadForm(req domain.CampaignRequest) bool {
	return req.Objective == domain.ObjectiveLeadGeneration && req.LeadForm != nil && len(req.LeadForm.Fields) > 0
}

func creativeKind(c domain.Creative) domain.CreativeKind {
	if c.Kind != "" {
		return c.Kind
	}
	if c.VideoID != "" {
		return domain.CreativeVideo
	}
	return domain.CreativeImage
}

// createCampaign is fatal on failure: nothing else is attempted.
func (u *CampaignUseCase) createCampaign(ctx context.Context, r *campaignRun) error {
	payload := campaignPayload(r)
	id, err := retry.Do(ctx, u.exec, "platform.CreateCampaign", func(ctx context.Context) (string, error) {
		return r.client.CreateCampaign(ctx, payload)
	})
	if err != nil {
		r.record(failed(domain.ResourceCampaign, -1, err))
		return err
	}
	r.campaignID = id
	r.record(created(domain.ResourceCampaign, id, -1))
	return nil
}

// createAdGroup is fatal on failure; the campaign stays behind as an orphan.
func (u *CampaignUseCase) createAdGroup(ctx context.Context, r *campaignRun) error {
	ev, err := u.resolveEvent(ctx, r)
	if err != nil {
		r.record(failed(domain.ResourceAdGroup, -1, err))
		return err
	}

	payload := adGroupPayload(r, ev, u.now().UTC().Format(normalize.PlatformTimeLayout))
	id, err := retry.Do(ctx, u.exec, "platform.CreateAdGroup", func(ctx context.Context) (string, error) {
		return r.client.CreateAdGroup(ctx, payload)
	})
	if err != nil {
		r.record(failed(domain.ResourceAdGroup, -1, err))
		return err
	}
	r.adGroupID = id
	r.record(created(domain.ResourceAdGroup, id, -1))
	return nil
}

// resolveEvent fetches the pixel's events once when they are needed. An
// unavailable event list resolves to the safe default.
func (u *CampaignUseCase) resolveEvent(ctx context.Context, r *campaignRun) (normalize.EventResolution, error) {
	ag := r.req.AdGroup
	var events []domain.PixelEvent
	if ag.PixelID != "" && strings.TrimSpace(ag.OptimizationEvent) == "" {
		var err error
		events, err = retry.Do(ctx, u.exec, "platform.ListPixelEvents", func(ctx context.Context) ([]domain.PixelEvent, error) {
			return r.client.ListPixelEvents(ctx, ag.PixelID)
		})
		if err != nil {
			if domain.IsKind(err, domain.KindCanceled) {
				return normalize.EventResolution{}, err
			}
			u.logger.Warn("pixel events unavailable, using default optimization event",
				slog.String("run_id", r.id),
				slog.String("pixel_id", ag.PixelID),
				slog.Any("error", err))
			events = nil
		}
	}
	return normalize.ResolveOptimizationEvent(ag.OptimizationEvent, ag.PixelID, events)
}

// createLeadForm runs before the ads so they can reference the form. A
// failure is recorded and the ads fall back to a landing page.
func (u *CampaignUseCase) createLeadForm(ctx context.Context, r *campaignRun) error {
	if !wantsLeadForm(r.req) {
		return nil
	}
	lf := r.req.LeadForm
	payload := leadFormPayload(r.result.CampaignName, lf)
	id, err := retry.Do(ctx, u.exec, "platform.CreateLeadForm", func(ctx context.Context) (string, error) {
		return r.client.CreateLeadForm(ctx, payload)
	})
	if err != nil {
		if domain.IsKind(err, domain.KindCanceled) {
			return err
		}
		r.record(failed(domain.ResourceLeadForm, -1, err))
		r.fallback = firstNonEmpty(lf.FallbackURL, u.cfg.FallbackLandingURL)
		u.logger.Warn("lead form creation failed, creating standard ads",
			slog.String("run_id", r.id),
			slog.String("fallback_url", r.fallback),
			slog.Any("error", err))
		return nil
	}
	r.leadFormID = id
	r.record(created(domain.ResourceLeadForm, id, -1))
	return nil
}

// createAds submits every creative independently. One failure never aborts
// the others; each attempt is individually gated by the tenant quota.
func (u *CampaignUseCase) createAds(ctx context.Context, r *campaignRun) error {
	results := make([]domain.CreationResult, len(r.req.Creatives))

	var g errgroup.Group
	g.SetLimit(u.cfg.AdConcurrency)
	for i, c := range r.req.Creatives {
		i, c := i, c
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = failed(domain.ResourceAd, i, &domain.Error{Kind: domain.KindCanceled, Op: "create_ad", Err: err})
				return nil
			}
			payload := adPayload(r, i, c)
			id, err := retry.Do(ctx, u.exec, "platform.CreateAd", func(ctx context.Context) (string, error) {
				return r.client.CreateAd(ctx, payload)
			})
			if err != nil {
				u.logger.Warn("ad creation failed",
					slog.String("run_id", r.id),
					slog.Int("creative", i),
					slog.String("kind", string(domain.KindOf(err))),
					slog.Any("error", err))
				results[i] = failed(domain.ResourceAd, i, err)
				return nil
			}
			results[i] = created(domain.ResourceAd, id, i)
			return nil
		})
	}
	_ = g.Wait()

	for _, res := range results {
		r.record(res)
	}
	if err := ctx.Err(); err != nil {
		r.fail(&domain.Error{Kind: domain.KindCanceled, Op: "create_ads", Err: err})
	}
	return nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

var objectiveTypes = map[domain.Objective]string{
	domain.ObjectiveTraffic:        "TRAFFIC",
	domain.ObjectiveConversions:    "WEB_CONVERSIONS",
	domain.ObjectiveLeadGeneration: "LEAD_GENERATION",
	domain.ObjectiveReach:          "REACH",
	domain.ObjectiveVideoViews:     "VIDEO_VIEWS",
	domain.ObjectiveAppPromotion:   "APP_PROMOTION",
}

// optimization goal and billing event per objective.
var objectiveGoals = map[domain.Objective][2]string{
	domain.ObjectiveTraffic:        {"CLICK", "CPC"},
	domain.ObjectiveConversions:    {"CONVERT", "OCPM"},
	domain.ObjectiveLeadGeneration: {"LEAD_GENERATION", "OCPM"},
	domain.ObjectiveReach:          {"REACH", "CPM"},
	domain.ObjectiveVideoViews:     {"VIDEO_VIEW", "CPV"},
	domain.ObjectiveAppPromotion:   {"INSTALL", "OCPM"},
}

var budgetModes = map[domain.BudgetMode]string{
	domain.BudgetDaily:    "BUDGET_MODE_DAY",
	domain.BudgetLifetime: "BUDGET_MODE_TOTAL",
}

func amount(units int64) float64 {
	return float64(units) / 100
}

func campaignPayload(r *campaignRun) port.CampaignPayload {
	return port.CampaignPayload{
		Name:          r.result.CampaignName,
		ObjectiveType: objectiveTypes[r.req.Objective],
		BudgetMode:    budgetModes[r.mode],
		Budget:        amount(r.req.Budget.Amount),
	}
}

func adGroupPayload(r *campaignRun, ev normalize.EventResolution, now string) port.AdGroupPayload {
	ag := r.req.AdGroup
	goal := objectiveGoals[r.req.Objective]
	p := port.AdGroupPayload{
		CampaignID:       r.campaignID,
		Name:             firstNonEmpty(ag.Name, r.result.CampaignName+" - Ad Group"),
		Placements:       ag.Placements,
		LocationIDs:      r.target.Locations,
		Gender:           string(r.target.Gender),
		InterestIDs:      r.target.Interests,
		BehaviorIDs:      r.target.Behaviors,
		Languages:        r.target.Languages,
		BudgetMode:       budgetModes[r.mode],
		Budget:           amount(r.req.Budget.Amount),
		OptimizationGoal: goal[0],
		BillingEvent:     goal[1],
		BidType:          "BID_TYPE_NO_BID",
	}
	for _, a := range r.target.AgeBands {
		p.AgeGroups = append(p.AgeGroups, string(a))
	}
	if ag.BidAmount > 0 {
		p.BidType = "BID_TYPE_CUSTOM"
		p.BidPrice = amount(ag.BidAmount)
	}
	if ag.BidStrategy != "" {
		p.BidType = ag.BidStrategy
	}

	if normalize.FixedSchedule(r.end, r.mode) {
		p.ScheduleType = port.ScheduleStartEnd
		p.ScheduleStart = firstNonEmpty(r.start, now)
		p.ScheduleEnd = r.end
	} else {
		p.ScheduleType = port.ScheduleFromNow
		p.ScheduleStart = r.start
	}

	if ev.Send {
		p.PixelID = ag.PixelID
		p.OptimizationEvent = string(ev.Event)
	}
	return p
}

func leadFormPayload(campaignName string, lf *domain.LeadFormParams) port.LeadFormPayload {
	p := port.LeadFormPayload{
		Name:          firstNonEmpty(lf.Title, campaignName+" - Lead Form"),
		PrivacyURL:    lf.PrivacyURL,
		ThankYouTitle: lf.ThankYouTitle,
	}
	for _, f := range lf.Fields {
		p.Fields = append(p.Fields, port.LeadFormField{
			FieldType: strings.ToUpper(firstNonEmpty(f.Type, "CUSTOM")),
			Label:     f.Name,
			Required:  f.Required,
		})
	}
	return p
}

func adPayload(r *campaignRun, i int, c domain.Creative) port.AdPayload {
	p := port.AdPayload{
		AdGroupID:    r.adGroupID,
		Name:         firstNonEmpty(c.Name, fmt.Sprintf("%s - Ad %d", r.result.CampaignName, i+1)),
		AdText:       c.AdText,
		DisplayName:  c.DisplayName,
		CallToAction: c.CallToAction,
	}
	if creativeKind(c) == domain.CreativeVideo {
		p.Format = "SINGLE_VIDEO"
		p.VideoID = c.VideoID
	} else {
		p.Format = "SINGLE_IMAGE"
		p.ImageIDs = c.ImageIDs
	}

	switch {
	case r.leadFormID != "":
		p.LeadFormID = r.leadFormID
		p.CallToAction = firstNonEmpty(c.CallToAction, "SIGN_UP")
	case r.fallback != "":
		p.LandingPageURL = r.fallback
		p.CallToAction = firstNonEmpty(c.CallToAction, "LEARN_MORE")
	default:
		p.LandingPageURL = c.LandingURL
	}
	return p
}
