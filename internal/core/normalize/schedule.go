// Package normalize turns heterogeneous caller input into the canonical
// shapes the ad platform accepts: schedule timestamps, targeting, budget
// modes and optimization events. Everything here is pure.
package normalize

import (
	"strings"
	"time"

	"mesa-campaigns/internal/core/domain"
)

// PlatformTimeLayout is the platform's UTC timestamp format.
const PlatformTimeLayout = "2006-01-02 15:04:05"

// DefaultUTCOffsetHours is the tenant offset used when none is configured.
const DefaultUTCOffsetHours = 3

var localLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
}

// NormalizeSchedule converts a tenant-local wall-clock time into the
// platform's UTC format. An empty input yields an empty result, meaning
// "start immediately" or "open ended".
func NormalizeSchedule(local string, offsetHours int) (string, error) {
	t, ok, err := parseLocal(local, offsetHours)
	if err != nil || !ok {
		return "", err
	}
	return t.Add(-time.Duration(offsetHours) * time.Hour).Format(PlatformTimeLayout), nil
}

// LocalizeSchedule is the inverse of NormalizeSchedule.
func LocalizeSchedule(platform string, offsetHours int) (string, error) {
	if err := checkOffset(offsetHours); err != nil {
		return "", err
	}
	platform = strings.TrimSpace(platform)
	if platform == "" {
		return "", nil
	}
	t, err := time.Parse(PlatformTimeLayout, platform)
	if err != nil {
		return "", domain.Validation("normalize.schedule", "invalid platform time %q", platform)
	}
	return t.Add(time.Duration(offsetHours) * time.Hour).Format(PlatformTimeLayout), nil
}

// ParseLocal parses a tenant-local time and returns it as a UTC instant.
func ParseLocal(local string, offsetHours int) (time.Time, bool, error) {
	t, ok, err := parseLocal(local, offsetHours)
	if err != nil || !ok {
		return time.Time{}, ok, err
	}
	return t.Add(-time.Duration(offsetHours) * time.Hour), true, nil
}

func parseLocal(local string, offsetHours int) (time.Time, bool, error) {
	if err := checkOffset(offsetHours); err != nil {
		return time.Time{}, false, err
	}
	local = strings.TrimSpace(local)
	if local == "" {
		return time.Time{}, false, nil
	}
	for _, layout := range localLayouts {
		if t, err := time.Parse(layout, local); err == nil {
			return t, true, nil
		}
	}
	return time.Time{}, false, domain.Validation("normalize.schedule", "unrecognised time %q, want YYYY-MM-DD HH:MM:SS", local)
}

func checkOffset(offsetHours int) error {
	if offsetHours < -12 || offsetHours > 14 {
		return domain.Validation("normalize.schedule", "utc offset %d out of range", offsetHours)
	}
	return nil
}

// FixedSchedule reports whether an ad group needs an explicit start/end
// schedule. The platform rejects lifetime budgets without an end boundary.
func FixedSchedule(endTime string, mode domain.BudgetMode) bool {
	return strings.TrimSpace(endTime) != "" || mode == domain.BudgetLifetime
}
