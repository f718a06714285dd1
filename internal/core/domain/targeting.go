package domain

// Gender restricts delivery by gender. GenderUnrestricted is the default.
type Gender string

const (
	GenderUnrestricted Gender = "GENDER_UNLIMITED"
	GenderMale         Gender = "GENDER_MALE"
	GenderFemale       Gender = "GENDER_FEMALE"
)

// AgeBand is one of the platform's fixed age brackets.
type AgeBand string

const (
	Age18To24 AgeBand = "AGE_18_24"
	Age25To34 AgeBand = "AGE_25_34"
	Age35To44 AgeBand = "AGE_35_44"
	Age45To54 AgeBand = "AGE_45_54"
	Age55Plus AgeBand = "AGE_55_100"
)

// AdultAgeBands is the full adult range, used when no bands are given.
var AdultAgeBands = []AgeBand{Age18To24, Age25To34, Age35To44, Age45To54, Age55Plus}

// RawTargeting is the caller's partial targeting input. A nil Locations
// slice means "use defaults"; an explicit empty slice is rejected.
type RawTargeting struct {
	Locations []string `json:"locations"`
	Gender    string   `json:"gender,omitempty"`
	AgeBands  []string `json:"age_bands,omitempty"`
	Interests []string `json:"interests,omitempty"`
	Behaviors []string `json:"behaviors,omitempty"`
	Languages []string `json:"languages,omitempty"`
}

// NormalizedTargeting is the canonical targeting embedded into the ad
// group payload. Locations is never empty.
type NormalizedTargeting struct {
	Locations []string
	Gender    Gender
	AgeBands  []AgeBand
	Interests []string
	Behaviors []string
	Languages []string
}
