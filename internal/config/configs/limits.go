package configs

import "strings"

// Limits configures the per-tenant hourly quota.
type Limits struct {
	// Backend selects where quota windows live: "memory" keeps them in the
	// process, "postgres" shares them through the database.
	Backend string `env:"BACKEND" envDefault:"memory"`
	// DefaultPerHour applies when a tenant's tier cannot be resolved.
	DefaultPerHour int `env:"DEFAULT_PER_HOUR" envDefault:"50"`
	// Tiers maps subscription tier to hourly quota, e.g.
	// "basic:50,pro:100,enterprise:200".
	Tiers map[string]int `env:"TIERS" envDefault:"basic:50,pro:100,enterprise:200" envKeyValSeparator:":"`
}

// Shared reports whether quota windows are kept in PostgreSQL.
func (c Limits) Shared() bool {
	return strings.EqualFold(c.Backend, "postgres")
}
