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
	"github.com/baatie/controllerpro/internal/utils/finance"
	"github.com/google/uuid"
)

// budgetService implements the BudgetSvcFacade interface.
type budgetService struct {
	BaseService
	budgetRepo portsrepo.BudgetRepositoryFacade
}

// NewBudgetService creates a new project budget service.
func NewBudgetService(budgetRepo portsrepo.BudgetRepositoryFacade) portssvc.BudgetSvcFacade {
	return &budgetService{budgetRepo: budgetRepo}
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

// FindBudgetByID retrieves a project budget by its ID.
func (s *budgetService) FindBudgetByID(ctx context.Context, budgetID string) (*domain.ProjectBudget, error) {
	budget, err := s.budgetRepo.FindBudgetByID(ctx, budgetID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find budget by ID",
				slog.String("budget_id", budgetID))
		}
		return nil, err
	}
	return budget, nil
}

// ListBudgets retrieves budgets scoped to a business; empty businessID
// returns the cross-tenant set (export only).
func (s *budgetService) ListBudgets(ctx context.Context, businessID string) ([]domain.ProjectBudget, error) {
	budgets, err := s.budgetRepo.ListBudgets(ctx, businessID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list budgets",
			slog.String("business_id", businessID))
		return nil, err
	}
	if budgets == nil {
		return []domain.ProjectBudget{}, nil
	}
	return budgets, nil
}

func validateBudget(budget domain.ProjectBudget) error {
	if budget.BusinessID == "" {
		return fmt.Errorf("%w: budget businessId is required", apperrors.ErrValidation)
	}
	if budget.Name == "" {
		return fmt.Errorf("%w: budget name is required", apperrors.ErrValidation)
	}
	if !budget.TotalBudget.IsPositive() {
		return fmt.Errorf("%w: total budget must be positive", apperrors.ErrValidation)
	}
	if budget.Spent.IsNegative() {
		return fmt.Errorf("%w: spent amount cannot be negative", apperrors.ErrValidation)
	}
	return nil
}

// CreateBudget persists a new project budget. Status is classified from
// spent/totalBudget here, at creation time only; later edits keep the
// status the caller sends and readers see the derived classification
// alongside the stored value.
func (s *budgetService) CreateBudget(ctx context.Context, budget domain.ProjectBudget) (*domain.ProjectBudget, error) {
	if err := validateBudget(budget); err != nil {
		return nil, err
	}
	if budget.BudgetID == "" {
		budget.BudgetID = uuid.NewString()
	}
	budget.TotalBudget = budget.TotalBudget.Round(2)
	budget.Spent = budget.Spent.Round(2)
	budget.Status = finance.ClassifyBudget(finance.UtilizationPercent(budget.Spent, budget.TotalBudget))

	if err := s.budgetRepo.SaveBudget(ctx, budget); err != nil {
		s.LogError(ctx, err, "Failed to save budget",
			slog.String("budget_id", budget.BudgetID))
		return nil, err
	}

	s.LogInfo(ctx, "Budget created successfully",
		slog.String("budget_id", budget.BudgetID),
		slog.String("business_id", budget.BusinessID),
		slog.String("status", string(budget.Status)))
	return &budget, nil
}

// UpdateBudget replaces a project budget in place. The stored status is
// taken as supplied so stored-vs-derived divergence stays observable.
func (s *budgetService) UpdateBudget(ctx context.Context, budget domain.ProjectBudget) (*domain.ProjectBudget, error) {
	if budget.BudgetID == "" {
		return nil, fmt.Errorf("%w: budget id is required", apperrors.ErrValidation)
	}
	if err := validateBudget(budget); err != nil {
		return nil, err
	}
	if budget.Status == "" {
		budget.Status = finance.ClassifyBudget(finance.UtilizationPercent(budget.Spent, budget.TotalBudget))
	}
	if !domain.ValidBudgetStatus(budget.Status) {
		return nil, fmt.Errorf("%w: unknown budget status %q", apperrors.ErrValidation, budget.Status)
	}

	if _, err := s.budgetRepo.FindBudgetByID(ctx, budget.BudgetID); err != nil {
		return nil, err
	}

	if err := s.budgetRepo.UpdateBudget(ctx, budget); err != nil {
		s.LogError(ctx, err, "Failed to update budget",
			slog.String("budget_id", budget.BudgetID))
		return nil, err
	}

	s.LogInfo(ctx, "Budget updated successfully",
		slog.String("budget_id", budget.BudgetID))
	return &budget, nil
}

// DeleteBudget removes a project budget. Always permitted.
func (s *budgetService) DeleteBudget(ctx context.Context, budgetID string) error {
	if _, err := s.budgetRepo.FindBudgetByID(ctx, budgetID); err != nil {
		return err
	}
	if err := s.budgetRepo.DeleteBudget(ctx, budgetID); err != nil {
		s.LogError(ctx, err, "Failed to delete budget",
			slog.String("budget_id", budgetID))
		return err
	}
	s.LogInfo(ctx, "Budget deleted successfully",
		slog.String("budget_id", budgetID))
	return nil
}
