package domain

// ResourceStatus is the operational flag of a remote resource.
type ResourceStatus string

const (
	StatusEnabled  ResourceStatus = "ENABLED"
	StatusDisabled ResourceStatus = "DISABLED"
	StatusDeleted  ResourceStatus = "DELETED"
)

// Valid reports whether s can be requested by a caller.
func (s ResourceStatus) Valid() bool {
	return s == StatusEnabled || s == StatusDisabled || s == StatusDeleted
}

// Secondary status markers that force a resource to be effectively
// inactive regardless of its own flag.
const (
	SecondaryParentDisabled   = "PARENT_DISABLED"
	SecondaryCampaignDisabled = "CAMPAIGN_DISABLE"
	SecondaryAdGroupDisabled  = "ADGROUP_DISABLE"
	SecondaryAccountDisabled  = "ADVERTISER_ACCOUNT_PUNISH"
	SecondaryBudgetExceeded   = "BUDGET_EXCEED"
)

var overrideMarkers = map[string]struct{}{
	SecondaryParentDisabled:   {},
	SecondaryCampaignDisabled: {},
	SecondaryAdGroupDisabled:  {},
	SecondaryAccountDisabled:  {},
	SecondaryBudgetExceeded:   {},
}

// IsOverrideMarker reports whether a secondary status forces the resource
// off.
func IsOverrideMarker(secondary string) bool {
	_, ok := overrideMarkers[secondary]
	return ok
}

// ResourceRef addresses a remote resource whose status can be changed.
type ResourceRef struct {
	Type ResourceType
	ID   string
}

// ResourceState is what the platform reports about a resource.
type ResourceState struct {
	ID              string
	Status          ResourceStatus
	SecondaryStatus string
}

// StatusUpdateResult compares the requested status with what the platform
// actually applied. Warning is set when they differ.
type StatusUpdateResult struct {
	ResourceID          string         `json:"resource_id"`
	ResourceType        ResourceType   `json:"resource_type"`
	RequestedStatus     ResourceStatus `json:"requested_status"`
	ActualStatus        ResourceStatus `json:"actual_status"`
	SecondaryStatus     string         `json:"secondary_status,omitempty"`
	IsEffectivelyActive bool           `json:"is_effectively_active"`
	Warning             bool           `json:"warning"`
}
