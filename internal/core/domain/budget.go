package domain

import "github.com/shopspring/decimal"

// BudgetStatus classifies a project budget by utilization.
type BudgetStatus string

const (
	BudgetStatusOnTrack    BudgetStatus = "on-track"
	BudgetStatusAtRisk     BudgetStatus = "at-risk"
	BudgetStatusOverBudget BudgetStatus = "over-budget"
)

// ValidBudgetStatus reports whether s is one of the known statuses.
func ValidBudgetStatus(s BudgetStatus) bool {
	switch s {
	case BudgetStatusOnTrack, BudgetStatusAtRisk, BudgetStatusOverBudget:
		return true
	}
	return false
}

// ProjectBudget tracks an allocation for a project owned by a business
// profile. Spent is entered independently, not summed from linked expenses.
// Status is stored, but the classification derived from spent/totalBudget
// is authoritative for display; the two can diverge when spent or
// totalBudget are edited without recomputing status.
type ProjectBudget struct {
	BudgetID    string          `json:"id"`
	BusinessID  string          `json:"businessId"`
	Name        string          `json:"name"`
	TotalBudget decimal.Decimal `json:"totalBudget"`
	Spent       decimal.Decimal `json:"spent"`
	Status      BudgetStatus    `json:"status"`
}
