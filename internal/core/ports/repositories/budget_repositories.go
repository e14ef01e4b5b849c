package repositories

import (
	"context"

	"github.com/baatie/controllerpro/internal/core/domain"
)

// BudgetReader defines read operations for project budget data.
type BudgetReader interface {
	// FindBudgetByID retrieves a specific project budget by its ID.
	FindBudgetByID(ctx context.Context, budgetID string) (*domain.ProjectBudget, error)

	// ListBudgets retrieves budgets owned by businessID; an empty
	// businessID returns the full cross-tenant set.
	ListBudgets(ctx context.Context, businessID string) ([]domain.ProjectBudget, error)
}

// BudgetWriter defines write operations for project budget data.
type BudgetWriter interface {
	// SaveBudget persists a new project budget.
	SaveBudget(ctx context.Context, budget domain.ProjectBudget) error

	// UpdateBudget replaces a stored project budget in place.
	UpdateBudget(ctx context.Context, budget domain.ProjectBudget) error

	// DeleteBudget removes a project budget. Deletion is unguarded;
	// expenses referencing the budget keep their dangling link.
	DeleteBudget(ctx context.Context, budgetID string) error
}

// BudgetRepositoryFacade combines all budget-related repository interfaces.
type BudgetRepositoryFacade interface {
	BudgetReader
	BudgetWriter
}
