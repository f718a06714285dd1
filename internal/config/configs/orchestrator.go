package configs

import "time"

// Orchestrator tunes campaign creation.
type Orchestrator struct {
	// RetryMax is the total number of attempts per platform call.
	RetryMax       int           `env:"RETRY_MAX" envDefault:"3"`
	RetryBaseDelay time.Duration `env:"RETRY_BASE_DELAY" envDefault:"2s"`
	// CallTimeout bounds a single attempt. Zero leaves only the client
	// timeout in place.
	CallTimeout time.Duration `env:"CALL_TIMEOUT" envDefault:"30s"`
	// UTCOffsetHours is the tenant offset used when a request has none.
	UTCOffsetHours     int      `env:"UTC_OFFSET_HOURS" envDefault:"3"`
	DefaultLocations   []string `env:"DEFAULT_LOCATIONS" envDefault:"6252001"`
	FallbackLandingURL string   `env:"FALLBACK_LANDING_URL"`
	AdConcurrency      int      `env:"AD_CONCURRENCY" envDefault:"1"`
}
