package domain

import "fmt"

// ResourceType names a remote resource in the campaign tree.
type ResourceType string

const (
	ResourceCampaign ResourceType = "campaign"
	ResourceAdGroup  ResourceType = "ad_group"
	ResourceAd       ResourceType = "ad"
	ResourceLeadForm ResourceType = "lead_form"
)

// CreationStatus is the outcome of a single remote create call.
type CreationStatus string

const (
	StatusCreated CreationStatus = "created"
	StatusFailed  CreationStatus = "failed"
)

// CreationResult records one attempted sub-resource.
type CreationResult struct {
	ResourceType ResourceType   `json:"resource_type"`
	RemoteID     string         `json:"remote_id,omitempty"`
	Status       CreationStatus `json:"status"`
	// Index is the creative position for ads, -1 otherwise.
	Index     int    `json:"index"`
	ErrorKind Kind   `json:"error_kind,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Created reports whether the remote resource exists.
func (r CreationResult) Created() bool {
	return r.Status == StatusCreated
}

// Outcome is the overall result of a campaign creation.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomePartial Outcome = "partial_success"
	OutcomeFailure Outcome = "failure"
)

// CampaignResult is returned by CreateCompleteCampaign. Resources lists
// every attempted sub-resource in order, including failures, so callers can
// see which remote resources now exist.
type CampaignResult struct {
	RunID        string           `json:"run_id"`
	TenantID     string           `json:"tenant_id"`
	CampaignName string           `json:"campaign_name"`
	Outcome      Outcome          `json:"outcome"`
	Success      bool             `json:"success"`
	AdsCreated   int              `json:"ads_created"`
	AdsFailed    int              `json:"ads_failed"`
	Resources    []CreationResult `json:"resources"`
	// Orphans lists created resources left without a usable child when the
	// run failed. A cleanup job can act on them.
	Orphans     []CreationResult `json:"orphans,omitempty"`
	FailureKind Kind             `json:"failure_kind,omitempty"`
	FailureMsg  string           `json:"failure_message,omitempty"`
}

// Finalize computes the outcome from the accumulated resources. A run is
// successful only if at least one ad was created.
func (r *CampaignResult) Finalize() {
	r.AdsCreated, r.AdsFailed = 0, 0
	r.Orphans = nil
	for _, res := range r.Resources {
		if res.ResourceType != ResourceAd {
			continue
		}
		if res.Created() {
			r.AdsCreated++
		} else {
			r.AdsFailed++
		}
	}
	switch {
	case r.AdsCreated > 0 && r.AdsFailed == 0:
		r.Outcome = OutcomeSuccess
	case r.AdsCreated > 0:
		r.Outcome = OutcomePartial
	default:
		r.Outcome = OutcomeFailure
	}
	r.Success = r.AdsCreated > 0
	if r.Success {
		return
	}
	if r.FailureKind == "" {
		r.FailureKind, r.FailureMsg = KindInternal, "no ad created"
		for _, res := range r.Resources {
			if res.ResourceType == ResourceAd && !res.Created() {
				r.FailureKind = res.ErrorKind
				r.FailureMsg = fmt.Sprintf("no ad created: %s", res.Error)
			}
		}
	}
	for _, res := range r.Resources {
		if res.Created() && (res.ResourceType == ResourceCampaign || res.ResourceType == ResourceAdGroup) {
			r.Orphans = append(r.Orphans, res)
		}
	}
}

// Run converts the result into its persisted form.
func (r *CampaignResult) Run(objective Objective) CampaignRun {
	return CampaignRun{
		ID:           r.RunID,
		TenantID:     r.TenantID,
		CampaignName: r.CampaignName,
		Objective:    objective,
		Outcome:      r.Outcome,
		Success:      r.Success,
		FailureKind:  r.FailureKind,
		FailureMsg:   r.FailureMsg,
		Resources:    r.Resources,
	}
}
