package migrations

import "embed"

// FS holds the schema for tenants, campaign runs and the shared rate-limit
// window. It is read through the iofs source driver.
//
//go:embed *.sql
var FS embed.FS

const Version = 1
