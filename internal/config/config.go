package config

import (
	"github.com/caarlos0/env/v11"

	"mesa-campaigns/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// The nested structs are tagged with envPrefix so their fields are parsed
// with the given prefix. See the individual types in the configs package
// for default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is
	// attached to every log record so that records from several
	// deployments can be told apart in a shared sink.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection used by the run store, the
	// tenant directory and, when selected, the shared rate limiter.
	// Environment variables prefixed with PSQL_ will populate this struct.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Platform configures the ad-platform client (PLATFORM_*).
	Platform configs.Platform `envPrefix:"PLATFORM_"`

	// Limits configures tenant quotas (LIMITS_*).
	Limits configs.Limits `envPrefix:"LIMITS_"`

	// Orch tunes retries, time zones and defaults of campaign creation
	// (ORCH_*).
	Orch configs.Orchestrator `envPrefix:"ORCH_"`
}

// Load reads configuration from environment variables into a Config. If
// parsing fails, an error is returned. All fields are loaded with their
// specified defaults when no environment variable is provided, so an
// empty environment yields a runnable local configuration.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
