package services

import (
	"context"

	"github.com/baatie/controllerpro/internal/core/domain"
)

// BudgetSvcFacade defines operations on project budgets.
type BudgetSvcFacade interface {
	// FindBudgetByID retrieves a specific project budget by its ID.
	FindBudgetByID(ctx context.Context, budgetID string) (*domain.ProjectBudget, error)

	// ListBudgets retrieves budgets scoped to businessID; empty businessID
	// returns the cross-tenant set (export only).
	ListBudgets(ctx context.Context, businessID string) ([]domain.ProjectBudget, error)

	// CreateBudget persists a new project budget. Status is classified
	// from spent/totalBudget at creation time.
	CreateBudget(ctx context.Context, budget domain.ProjectBudget) (*domain.ProjectBudget, error)

	// UpdateBudget replaces a project budget in place. The stored status
	// is taken as supplied; readers always get the derived classification
	// alongside it.
	UpdateBudget(ctx context.Context, budget domain.ProjectBudget) (*domain.ProjectBudget, error)

	// DeleteBudget removes a project budget. Always permitted; expenses
	// that referenced it keep a dangling link.
	DeleteBudget(ctx context.Context, budgetID string) error
}
