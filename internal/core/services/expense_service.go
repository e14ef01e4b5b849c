package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/baatie/controllerpro/internal/apperrors"
	"github.com/baatie/controllerpro/internal/core/domain"
	portsrepo "github.com/baatie/controllerpro/internal/core/ports/repositories"
	portssvc "github.com/baatie/controllerpro/internal/core/ports/services"
	"github.com/google/uuid"
)

// expenseService implements the ExpenseSvcFacade interface.
type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepositoryFacade
}

// NewExpenseService creates a new expense service.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade) portssvc.ExpenseSvcFacade {
	return &expenseService{expenseRepo: expenseRepo}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

// FindExpenseByID retrieves an expense by its ID.
func (s *expenseService) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find expense by ID",
				slog.String("expense_id", expenseID))
		}
		return nil, err
	}
	return expense, nil
}

// ListExpenses retrieves expenses scoped to a business; empty businessID
// returns the cross-tenant set (export only).
func (s *expenseService) ListExpenses(ctx context.Context, businessID string) ([]domain.Expense, error) {
	expenses, err := s.expenseRepo.ListExpenses(ctx, businessID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses",
			slog.String("business_id", businessID))
		return nil, err
	}
	if expenses == nil {
		return []domain.Expense{}, nil
	}
	return expenses, nil
}

func validateExpense(expense domain.Expense) error {
	if expense.BusinessID == "" {
		return fmt.Errorf("%w: expense businessId is required", apperrors.ErrValidation)
	}
	if expense.Amount.IsNegative() {
		return fmt.Errorf("%w: expense amount cannot be negative", apperrors.ErrValidation)
	}
	// Category membership in the business's expenseCategories is advisory,
	// not enforced at the storage layer.
	return nil
}

// CreateExpense persists a new expense. ProjectID and InvoiceID are weak
// references; they are stored as given without an existence check.
func (s *expenseService) CreateExpense(ctx context.Context, expense domain.Expense) (*domain.Expense, error) {
	if err := validateExpense(expense); err != nil {
		return nil, err
	}
	if expense.ExpenseID == "" {
		expense.ExpenseID = uuid.NewString()
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense",
			slog.String("expense_id", expense.ExpenseID))
		return nil, err
	}

	s.LogInfo(ctx, "Expense created successfully",
		slog.String("expense_id", expense.ExpenseID),
		slog.String("business_id", expense.BusinessID),
		slog.String("category", expense.Category))
	return &expense, nil
}

// UpdateExpense replaces an expense in place as one atomic operation.
func (s *expenseService) UpdateExpense(ctx context.Context, expense domain.Expense) (*domain.Expense, error) {
	if expense.ExpenseID == "" {
		return nil, fmt.Errorf("%w: expense id is required", apperrors.ErrValidation)
	}
	if err := validateExpense(expense); err != nil {
		return nil, err
	}

	if _, err := s.expenseRepo.FindExpenseByID(ctx, expense.ExpenseID); err != nil {
		return nil, err
	}

	if err := s.expenseRepo.UpdateExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to update expense",
			slog.String("expense_id", expense.ExpenseID))
		return nil, err
	}

	s.LogInfo(ctx, "Expense updated successfully",
		slog.String("expense_id", expense.ExpenseID))
	return &expense, nil
}

// DeleteExpense removes an expense. Always permitted.
func (s *expenseService) DeleteExpense(ctx context.Context, expenseID string) error {
	if _, err := s.expenseRepo.FindExpenseByID(ctx, expenseID); err != nil {
		return err
	}
	if err := s.expenseRepo.DeleteExpense(ctx, expenseID); err != nil {
		s.LogError(ctx, err, "Failed to delete expense",
			slog.String("expense_id", expenseID))
		return err
	}
	s.LogInfo(ctx, "Expense deleted successfully",
		slog.String("expense_id", expenseID))
	return nil
}
