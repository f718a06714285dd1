package configs

import "time"

// Platform configures the outbound ad-platform client. AdvertiserID and
// AccessToken are used only when a request carries no tenant credential.
type Platform struct {
	BaseURL      string        `env:"BASE_URL" envDefault:"https://business-api.tiktok.com/open_api/v1.3"`
	AccessToken  string        `env:"ACCESS_TOKEN"`
	AdvertiserID string        `env:"ADVERTISER_ID"`
	Timeout      time.Duration `env:"TIMEOUT" envDefault:"30s"`
	// RequestsPerSecond paces every outbound call of the process. Zero
	// disables pacing.
	RequestsPerSecond float64 `env:"REQUESTS_PER_SECOND" envDefault:"10"`
}
