package normalize

import (
	"strings"

	"mesa-campaigns/internal/core/domain"
)

var genderAliases = map[string]domain.Gender{
	"":                 domain.GenderUnrestricted,
	"all":              domain.GenderUnrestricted,
	"any":              domain.GenderUnrestricted,
	"unrestricted":     domain.GenderUnrestricted,
	"unlimited":        domain.GenderUnrestricted,
	"gender_unlimited": domain.GenderUnrestricted,
	"male":             domain.GenderMale,
	"m":                domain.GenderMale,
	"gender_male":      domain.GenderMale,
	"female":           domain.GenderFemale,
	"f":                domain.GenderFemale,
	"gender_female":    domain.GenderFemale,
}

var ageBandAliases = map[string]domain.AgeBand{
	"18-24":      domain.Age18To24,
	"age_18_24":  domain.Age18To24,
	"25-34":      domain.Age25To34,
	"age_25_34":  domain.Age25To34,
	"35-44":      domain.Age35To44,
	"age_35_44":  domain.Age35To44,
	"45-54":      domain.Age45To54,
	"age_45_54":  domain.Age45To54,
	"55+":        domain.Age55Plus,
	"55-100":     domain.Age55Plus,
	"age_55_100": domain.Age55Plus,
}

// TargetingNormalizer fills targeting defaults.
type TargetingNormalizer struct {
	defaultLocations []string
}

// NewTargetingNormalizer returns a normalizer using defaultLocations when
// the caller supplies none.
func NewTargetingNormalizer(defaultLocations []string) *TargetingNormalizer {
	return &TargetingNormalizer{defaultLocations: cleanIDs(defaultLocations)}
}

// NormalizeTargeting resolves raw into canonical targeting. A nil location
// list takes the defaults; an explicit empty list is a validation error, as
// is an empty result after defaults.
func (n *TargetingNormalizer) NormalizeTargeting(raw domain.RawTargeting) (domain.NormalizedTargeting, error) {
	const op = "normalize.targeting"
	var out domain.NormalizedTargeting

	if raw.Locations != nil {
		out.Locations = cleanIDs(raw.Locations)
		if len(out.Locations) == 0 {
			return out, domain.Validation(op, "location list is empty")
		}
	} else {
		out.Locations = append([]string(nil), n.defaultLocations...)
		if len(out.Locations) == 0 {
			return out, domain.Validation(op, "no locations given and no default configured")
		}
	}

	g, ok := genderAliases[strings.ToLower(strings.TrimSpace(raw.Gender))]
	if !ok {
		return out, domain.Validation(op, "unsupported gender %q", raw.Gender)
	}
	out.Gender = g

	if len(raw.AgeBands) == 0 {
		out.AgeBands = append([]domain.AgeBand(nil), domain.AdultAgeBands...)
	} else {
		seen := make(map[domain.AgeBand]bool, len(raw.AgeBands))
		for _, a := range raw.AgeBands {
			band, ok := ageBandAliases[strings.ToLower(strings.TrimSpace(a))]
			if !ok {
				return out, domain.Validation(op, "unsupported age band %q", a)
			}
			if !seen[band] {
				seen[band] = true
				out.AgeBands = append(out.AgeBands, band)
			}
		}
	}

	out.Interests = raw.Interests
	out.Behaviors = raw.Behaviors
	out.Languages = raw.Languages
	return out, nil
}

// cleanIDs trims ids and drops blanks and duplicates, keeping order.
func cleanIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
