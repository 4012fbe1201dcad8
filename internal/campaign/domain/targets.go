package domain

import "github.com/louisbranch/adpulse/internal/platform/errors"

// Targets carries the caller-supplied goal posts the health rules compare
// actual metrics against.
type Targets struct {
	TargetCPA        float64 `json:"target_cpa"`
	DailyBudgetLimit float64 `json:"daily_budget_limit"`
}

// NormalizeTargets rejects non-positive goal values.
func NormalizeTargets(targetCPA, dailyBudgetLimit float64) (Targets, error) {
	if targetCPA <= 0 {
		return Targets{}, errors.WithMetadata(errors.CodeTargetCPAInvalid,
			"target_cpa must be positive",
			map[string]string{"TargetCPA": FormatMoney(targetCPA)})
	}
	if dailyBudgetLimit <= 0 {
		return Targets{}, errors.WithMetadata(errors.CodeBudgetLimitInvalid,
			"daily_budget_limit must be positive",
			map[string]string{"Limit": FormatMoney(dailyBudgetLimit)})
	}
	return Targets{TargetCPA: targetCPA, DailyBudgetLimit: dailyBudgetLimit}, nil
}
