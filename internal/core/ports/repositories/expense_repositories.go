package repositories

import (
	"context"

	"github.com/baatie/controllerpro/internal/core/domain"
)

// ExpenseReader defines read operations for expense data.
type ExpenseReader interface {
	// FindExpenseByID retrieves a specific expense by its ID.
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// ListExpenses retrieves expenses owned by businessID; an empty
	// businessID returns the full cross-tenant set.
	ListExpenses(ctx context.Context, businessID string) ([]domain.Expense, error)
}

// ExpenseWriter defines write operations for expense data.
type ExpenseWriter interface {
	// SaveExpense persists a new expense.
	SaveExpense(ctx context.Context, expense domain.Expense) error

	// UpdateExpense replaces a stored expense in place.
	UpdateExpense(ctx context.Context, expense domain.Expense) error

	// DeleteExpense removes an expense. Deletion is unguarded.
	DeleteExpense(ctx context.Context, expenseID string) error
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces.
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
