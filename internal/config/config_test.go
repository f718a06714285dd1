package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, 3, cfg.Orch.RetryMax)
	assert.Equal(t, 2*time.Second, cfg.Orch.RetryBaseDelay)
	assert.Equal(t, 3, cfg.Orch.UTCOffsetHours)
	assert.Equal(t, 50, cfg.Limits.DefaultPerHour)
	assert.Equal(t, map[string]int{"basic": 50, "pro": 100, "enterprise": 200}, cfg.Limits.Tiers)
	assert.False(t, cfg.Limits.Shared())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LIMITS_BACKEND", "Postgres")
	t.Setenv("LIMITS_TIERS", "basic:10,gold:500")
	t.Setenv("ORCH_DEFAULT_LOCATIONS", "6252001,2635167")
	t.Setenv("ORCH_UTC_OFFSET_HOURS", "-5")
	t.Setenv("PLATFORM_REQUESTS_PER_SECOND", "2.5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Limits.Shared())
	assert.Equal(t, map[string]int{"basic": 10, "gold": 500}, cfg.Limits.Tiers)
	assert.Equal(t, []string{"6252001", "2635167"}, cfg.Orch.DefaultLocations)
	assert.Equal(t, -5, cfg.Orch.UTCOffsetHours)
	assert.InDelta(t, 2.5, cfg.Platform.RequestsPerSecond, 0.001)
}
