package domain

import "time"

// Objective is the advertising goal a campaign is created for.
type Objective string

const (
	ObjectiveTraffic        Objective = "traffic"
	ObjectiveConversions    Objective = "conversions"
	ObjectiveLeadGeneration Objective = "lead_generation"
	ObjectiveReach          Objective = "reach"
	ObjectiveVideoViews     Objective = "video_views"
	ObjectiveAppPromotion   Objective = "app_promotion"
)

// Valid reports whether o is one of the supported objectives.
func (o Objective) Valid() bool {
	switch o {
	case ObjectiveTraffic, ObjectiveConversions, ObjectiveLeadGeneration,
		ObjectiveReach, ObjectiveVideoViews, ObjectiveAppPromotion:
		return true
	}
	return false
}

// BudgetMode is the canonical budget mode after alias resolution.
type BudgetMode string

const (
	BudgetDaily    BudgetMode = "daily"
	BudgetLifetime BudgetMode = "lifetime"
)

// Budget is expressed in integer currency units (e.g. cents), like the
// rest of the service.
type Budget struct {
	Mode   string `json:"mode"`
	Amount int64  `json:"amount"`
}

// CampaignRequest is the immutable input of a single "create campaign"
// call. Times are tenant-local wall-clock strings; they are converted to
// the platform's timezone by the schedule normalizer.
type CampaignRequest struct {
	TenantID  string    `json:"tenant_id"`
	Name      string    `json:"name"`
	Objective Objective `json:"objective"`
	Budget    Budget    `json:"budget"`
	StartTime string    `json:"start_time,omitempty"`
	EndTime   string    `json:"end_time,omitempty"`
	// UTCOffsetHours overrides the configured tenant offset when set.
	UTCOffsetHours *int `json:"utc_offset_hours,omitempty"`

	AdGroup   AdGroupParams     `json:"ad_group"`
	Creatives []Creative        `json:"creatives"`
	LeadForm  *LeadFormParams   `json:"lead_form,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// AdGroupParams holds the caller-supplied ad group settings.
type AdGroupParams struct {
	Name              string       `json:"name,omitempty"`
	Targeting         RawTargeting `json:"targeting"`
	BidAmount         int64        `json:"bid_amount,omitempty"`
	BidStrategy       string       `json:"bid_strategy,omitempty"`
	PixelID           string       `json:"pixel_id,omitempty"`
	OptimizationEvent string       `json:"optimization_event,omitempty"`
	Placements        []string     `json:"placements,omitempty"`
}

// CreativeKind distinguishes video creatives from image sets.
type CreativeKind string

const (
	CreativeVideo CreativeKind = "video"
	CreativeImage CreativeKind = "image"
)

// Creative is one ad variant. Either VideoID or ImageIDs must be set.
type Creative struct {
	Name         string       `json:"name,omitempty"`
	Kind         CreativeKind `json:"kind"`
	VideoID      string       `json:"video_id,omitempty"`
	ImageIDs     []string     `json:"image_ids,omitempty"`
	AdText       string       `json:"ad_text"`
	DisplayName  string       `json:"display_name,omitempty"`
	LandingURL   string       `json:"landing_url,omitempty"`
	CallToAction string       `json:"call_to_action,omitempty"`
}

// LeadFormField is a single question on a lead-capture form.
type LeadFormField struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

// LeadFormParams configures the optional lead-capture form.
type LeadFormParams struct {
	Title         string          `json:"title"`
	PrivacyURL    string          `json:"privacy_url"`
	Fields        []LeadFormField `json:"fields"`
	FallbackURL   string          `json:"fallback_url,omitempty"`
	ThankYouTitle string          `json:"thank_you_title,omitempty"`
}

// CampaignRun is the persisted record of one CreateCompleteCampaign call.
type CampaignRun struct {
	ID           string           `json:"id"`
	TenantID     string           `json:"tenant_id"`
	CampaignName string           `json:"campaign_name"`
	Objective    Objective        `json:"objective"`
	Outcome      Outcome          `json:"outcome"`
	Success      bool             `json:"success"`
	FailureKind  Kind             `json:"failure_kind,omitempty"`
	FailureMsg   string           `json:"failure_message,omitempty"`
	Resources    []CreationResult `json:"resources"`
	CreatedAt    time.Time        `json:"created_at"`
}

// Orphan is a created Campaign or Ad Group left behind by a failed run.
type Orphan struct {
	RunID        string       `json:"run_id"`
	TenantID     string       `json:"tenant_id"`
	ResourceType ResourceType `json:"resource_type"`
	RemoteID     string       `json:"remote_id"`
	CreatedAt    time.Time    `json:"created_at"`
}

// PlatformAccount is the already-authenticated ad-platform credential of a
// tenant.
type PlatformAccount struct {
	AdvertiserID string
	AccessToken  string
}
