package normalize

import (
	"strings"

	"mesa-campaigns/internal/core/domain"
)

// budgetModeAliases maps caller-facing budget modes, including deprecated
// platform values, onto the canonical modes.
var budgetModeAliases = map[string]domain.BudgetMode{
	"daily":                            domain.BudgetDaily,
	"day":                              domain.BudgetDaily,
	"budget_mode_day":                  domain.BudgetDaily,
	"dynamic_daily":                    domain.BudgetDaily,
	"dynamic_daily_budget":             domain.BudgetDaily,
	"budget_mode_dynamic_daily_budget": domain.BudgetDaily,
	"lifetime":                         domain.BudgetLifetime,
	"lifetime_total":                   domain.BudgetLifetime,
	"total":                            domain.BudgetLifetime,
	"budget_mode_total":                domain.BudgetLifetime,
}

// NormalizeBudgetMode resolves mode through the alias table. An empty mode
// is daily.
func NormalizeBudgetMode(mode string) (domain.BudgetMode, error) {
	key := strings.ToLower(strings.TrimSpace(mode))
	if key == "" {
		return domain.BudgetDaily, nil
	}
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)
	if m, ok := budgetModeAliases[key]; ok {
		return m, nil
	}
	return "", domain.Validation("normalize.budget", "unsupported budget mode %q", mode)
}
