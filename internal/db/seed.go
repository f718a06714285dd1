package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DemoTenants are the ids Seed inserts, one per subscription tier.
var DemoTenants = map[string]string{
	"tenant-basic":      "basic",
	"tenant-pro":        "pro",
	"tenant-enterprise": "enterprise",
}

// Seed inserts demo tenants into the database. Existing rows are kept.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	for id, tier := range DemoTenants {
		name := fmt.Sprintf("Demo %s tenant", tier)
		// Demo advertiser ids are random so they never collide with real ones.
		advertiser := "demo-" + uuid.NewString()[:8]
		_, err := db.Exec(ctx, `INSERT INTO tenants (id, name, tier, advertiser_id, created_at)
VALUES ($1,$2,$3,$4,now()) ON CONFLICT (id) DO NOTHING`, id, name, tier, advertiser)
		if err != nil {
			return fmt.Errorf("seed tenant %s: %w", id, err)
		}
	}
	return nil
}
