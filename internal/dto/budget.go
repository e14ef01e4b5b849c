package dto

import (
	"github.com/baatie/controllerpro/internal/core/domain"
	"github.com/baatie/controllerpro/internal/utils/finance"
	"github.com/shopspring/decimal"
)

// --- Project budget DTOs ---

// CreateBudgetRequest defines data for creating a new project budget.
// Status is optional; it is classified from spent/totalBudget when empty.
type CreateBudgetRequest struct {
	ID          string              `json:"id"` // Optional, generated when empty
	BusinessID  string              `json:"businessId" binding:"required"`
	Name        string              `json:"name" binding:"required"`
	TotalBudget decimal.Decimal     `json:"totalBudget"`
	Spent       decimal.Decimal     `json:"spent"`
	Status      domain.BudgetStatus `json:"status" binding:"omitempty,oneof=on-track at-risk over-budget"`
}

// UpdateBudgetRequest defines data for replacing a project budget. The
// supplied status is stored as-is; readers always see the derived
// classification alongside it, so a stale stored status stays visible.
type UpdateBudgetRequest struct {
	BusinessID  string              `json:"businessId" binding:"required"`
	Name        string              `json:"name" binding:"required"`
	TotalBudget decimal.Decimal     `json:"totalBudget"`
	Spent       decimal.Decimal     `json:"spent"`
	Status      domain.BudgetStatus `json:"status" binding:"omitempty,oneof=on-track at-risk over-budget"`
}

// BudgetResponse defines data returned for a project budget. Status is the
// stored field; utilizationPercent and derivedStatus are computed on every
// read and are authoritative for display.
type BudgetResponse struct {
	ID                 string              `json:"id"`
	BusinessID         string              `json:"businessId"`
	Name               string              `json:"name"`
	TotalBudget        decimal.Decimal     `json:"totalBudget"`
	Spent              decimal.Decimal     `json:"spent"`
	Status             domain.BudgetStatus `json:"status"`
	UtilizationPercent int64               `json:"utilizationPercent"`
	DerivedStatus      domain.BudgetStatus `json:"derivedStatus"`
}

// ToDomainBudget converts a create request into the domain entity.
func (r CreateBudgetRequest) ToDomainBudget() domain.ProjectBudget {
	return domain.ProjectBudget{
		BudgetID:    r.ID,
		BusinessID:  r.BusinessID,
		Name:        r.Name,
		TotalBudget: r.TotalBudget,
		Spent:       r.Spent,
		Status:      r.Status,
	}
}

// ToDomainBudget converts an update request into the domain entity.
func (r UpdateBudgetRequest) ToDomainBudget(budgetID string) domain.ProjectBudget {
	return domain.ProjectBudget{
		BudgetID:    budgetID,
		BusinessID:  r.BusinessID,
		Name:        r.Name,
		TotalBudget: r.TotalBudget,
		Spent:       r.Spent,
		Status:      r.Status,
	}
}

// ToBudgetResponse converts domain.ProjectBudget to DTO, attaching the
// derived utilization and classification.
func ToBudgetResponse(b *domain.ProjectBudget) BudgetResponse {
	utilization := finance.UtilizationPercent(b.Spent, b.TotalBudget)
	return BudgetResponse{
		ID:                 b.BudgetID,
		BusinessID:         b.BusinessID,
		Name:               b.Name,
		TotalBudget:        b.TotalBudget,
		Spent:              b.Spent,
		Status:             b.Status,
		UtilizationPercent: utilization,
		DerivedStatus:      finance.ClassifyBudget(utilization),
	}
}

// ListBudgetsResponse wraps a list of project budgets.
type ListBudgetsResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// ToListBudgetsResponse converts a slice of domain.ProjectBudget to DTO.
func ToListBudgetsResponse(bs []domain.ProjectBudget) ListBudgetsResponse {
	list := make([]BudgetResponse, len(bs))
	for i, b := range bs {
		list[i] = ToBudgetResponse(&b)
	}
	return ListBudgetsResponse{Budgets: list}
}
