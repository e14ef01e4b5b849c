package services

import (
	"context"

	"github.com/baatie/controllerpro/internal/core/domain"
)

// ExpenseSvcFacade defines operations on expenses.
type ExpenseSvcFacade interface {
	// FindExpenseByID retrieves a specific expense by its ID.
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// ListExpenses retrieves expenses scoped to businessID; empty
	// businessID returns the cross-tenant set (export only).
	ListExpenses(ctx context.Context, businessID string) ([]domain.Expense, error)

	// CreateExpense persists a new expense.
	CreateExpense(ctx context.Context, expense domain.Expense) (*domain.Expense, error)

	// UpdateExpense replaces an expense in place as one atomic operation.
	UpdateExpense(ctx context.Context, expense domain.Expense) (*domain.Expense, error)

	// DeleteExpense removes an expense. Always permitted.
	DeleteExpense(ctx context.Context, expenseID string) error
}
