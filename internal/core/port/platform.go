package port

import (
	"context"

	"mesa-campaigns/internal/core/domain"
)

// AdPlatformClient is the outbound port to the remote ad platform. Every
// method is a blocking remote call. Implementations must return
// *domain.Error values so callers can switch on the failure kind instead of
// inspecting platform messages.
type AdPlatformClient interface {
	CreateCampaign(ctx context.Context, p CampaignPayload) (string, error)
	CreateAdGroup(ctx context.Context, p AdGroupPayload) (string, error)
	CreateAd(ctx context.Context, p AdPayload) (string, error)
	CreateLeadForm(ctx context.Context, p LeadFormPayload) (string, error)

	GetCampaign(ctx context.Context, id string) (domain.ResourceState, error)
	GetAdGroup(ctx context.Context, id string) (domain.ResourceState, error)
	GetAd(ctx context.Context, id string) (domain.ResourceState, error)

	UpdateStatus(ctx context.Context, ref domain.ResourceRef, status domain.ResourceStatus) error
	ListPixelEvents(ctx context.Context, pixelID string) ([]domain.PixelEvent, error)
}

// CampaignPayload is the platform's native campaign shape.
type CampaignPayload struct {
	Name          string  `json:"campaign_name"`
	ObjectiveType string  `json:"objective_type"`
	BudgetMode    string  `json:"budget_mode"`
	Budget        float64 `json:"budget"`
}

// Schedule types understood by the platform.
const (
	ScheduleStartEnd = "SCHEDULE_START_END"
	ScheduleFromNow  = "SCHEDULE_FROM_NOW"
)

// AdGroupPayload is the platform's native ad group shape. OptimizationEvent
// and PixelID are omitted from the wire when empty.
type AdGroupPayload struct {
	CampaignID        string   `json:"campaign_id"`
	Name              string   `json:"adgroup_name"`
	Placements        []string `json:"placements,omitempty"`
	LocationIDs       []string `json:"location_ids"`
	Gender            string   `json:"gender"`
	AgeGroups         []string `json:"age_groups"`
	InterestIDs       []string `json:"interest_category_ids,omitempty"`
	BehaviorIDs       []string `json:"action_category_ids,omitempty"`
	Languages         []string `json:"languages,omitempty"`
	BudgetMode        string   `json:"budget_mode"`
	Budget            float64  `json:"budget"`
	ScheduleType      string   `json:"schedule_type"`
	ScheduleStart     string   `json:"schedule_start_time,omitempty"`
	ScheduleEnd       string   `json:"schedule_end_time,omitempty"`
	OptimizationGoal  string   `json:"optimization_goal"`
	BillingEvent      string   `json:"billing_event"`
	BidType           string   `json:"bid_type,omitempty"`
	BidPrice          float64  `json:"bid_price,omitempty"`
	PixelID           string   `json:"pixel_id,omitempty"`
	OptimizationEvent string   `json:"optimization_event,omitempty"`
}

// AdPayload is the platform's native ad shape.
type AdPayload struct {
	AdGroupID      string   `json:"adgroup_id"`
	Name           string   `json:"ad_name"`
	Format         string   `json:"ad_format"`
	VideoID        string   `json:"video_id,omitempty"`
	ImageIDs       []string `json:"image_ids,omitempty"`
	AdText         string   `json:"ad_text"`
	DisplayName    string   `json:"display_name,omitempty"`
	LandingPageURL string   `json:"landing_page_url,omitempty"`
	CallToAction   string   `json:"call_to_action,omitempty"`
	LeadFormID     string   `json:"page_id,omitempty"`
}

// LeadFormField is a native lead form question.
type LeadFormField struct {
	FieldType string `json:"field_type"`
	Label     string `json:"label"`
	Required  bool   `json:"required"`
}

// LeadFormPayload is the platform's native lead form shape.
type LeadFormPayload struct {
	Name          string          `json:"form_name"`
	PrivacyURL    string          `json:"privacy_policy_url"`
	Fields        []LeadFormField `json:"fields"`
	ThankYouTitle string          `json:"thank_you_title,omitempty"`
}

type accountKey struct{}

// WithAccount attaches the tenant's platform credential to ctx.
func WithAccount(ctx context.Context, acct domain.PlatformAccount) context.Context {
	return context.WithValue(ctx, accountKey{}, acct)
}

// AccountFrom returns the credential attached by WithAccount.
func AccountFrom(ctx context.Context) (domain.PlatformAccount, bool) {
	acct, ok := ctx.Value(accountKey{}).(domain.PlatformAccount)
	return acct, ok
}
