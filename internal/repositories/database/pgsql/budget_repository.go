package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/baatie/controllerpro/internal/apperrors"
	"github.com/baatie/controllerpro/internal/core/domain"
	portsrepo "github.com/baatie/controllerpro/internal/core/ports/repositories"
	"github.com/baatie/controllerpro/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxBudgetRepository persists project budgets.
type PgxBudgetRepository struct {
	BaseRepository
}

func newPgxBudgetRepository(pool *pgxpool.Pool) portsrepo.BudgetRepositoryFacade {
	return &PgxBudgetRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.BudgetRepositoryFacade = (*PgxBudgetRepository)(nil)

func toModelBudget(d domain.ProjectBudget) models.Budget {
	return models.Budget{
		BudgetID:    d.BudgetID,
		BusinessID:  d.BusinessID,
		Name:        d.Name,
		TotalBudget: d.TotalBudget,
		Spent:       d.Spent,
		Status:      string(d.Status),
	}
}

func toDomainBudget(m models.Budget) domain.ProjectBudget {
	return domain.ProjectBudget{
		BudgetID:    m.BudgetID,
		BusinessID:  m.BusinessID,
		Name:        m.Name,
		TotalBudget: m.TotalBudget,
		Spent:       m.Spent,
		Status:      domain.BudgetStatus(m.Status),
	}
}

// SaveBudget inserts a new project budget.
func (r *PgxBudgetRepository) SaveBudget(ctx context.Context, budget domain.ProjectBudget) error {
	m := toModelBudget(budget)

	query := `
		INSERT INTO budgets (budget_id, business_id, name, total_budget, spent, status)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query, m.BudgetID, m.BusinessID, m.Name, m.TotalBudget, m.Spent, m.Status)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: budget with ID %s already exists", apperrors.ErrDuplicate, m.BudgetID)
		}
		return fmt.Errorf("failed to save budget %s: %w", m.BudgetID, err)
	}
	return nil
}

// UpdateBudget replaces a stored project budget in place.
func (r *PgxBudgetRepository) UpdateBudget(ctx context.Context, budget domain.ProjectBudget) error {
	m := toModelBudget(budget)

	query := `
		UPDATE budgets
		SET business_id = $2, name = $3, total_budget = $4, spent = $5, status = $6
		WHERE budget_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, m.BudgetID, m.BusinessID, m.Name, m.TotalBudget, m.Spent, m.Status)
	if err != nil {
		return fmt.Errorf("failed to update budget %s: %w", m.BudgetID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindBudgetByID retrieves a project budget by its ID.
func (r *PgxBudgetRepository) FindBudgetByID(ctx context.Context, budgetID string) (*domain.ProjectBudget, error) {
	query := `
		SELECT budget_id, business_id, name, total_budget, spent, status
		FROM budgets
		WHERE budget_id = $1;
	`
	var m models.Budget
	err := r.Pool.QueryRow(ctx, query, budgetID).Scan(&m.BudgetID, &m.BusinessID, &m.Name, &m.TotalBudget, &m.Spent, &m.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find budget %s: %w", budgetID, err)
	}

	d := toDomainBudget(m)
	return &d, nil
}

// ListBudgets retrieves budgets scoped to a business; an empty businessID
// returns every budget in the system.
func (r *PgxBudgetRepository) ListBudgets(ctx context.Context, businessID string) ([]domain.ProjectBudget, error) {
	query := `
		SELECT budget_id, business_id, name, total_budget, spent, status
		FROM budgets
	`
	args := []any{}
	if businessID != "" {
		query += ` WHERE business_id = $1`
		args = append(args, businessID)
	}
	query += ` ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	defer rows.Close()

	var budgets []domain.ProjectBudget
	for rows.Next() {
		var m models.Budget
		if err := rows.Scan(&m.BudgetID, &m.BusinessID, &m.Name, &m.TotalBudget, &m.Spent, &m.Status); err != nil {
			return nil, fmt.Errorf("failed to scan budget: %w", err)
		}
		budgets = append(budgets, toDomainBudget(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating budgets: %w", err)
	}
	return budgets, nil
}

// DeleteBudget removes a project budget row.
func (r *PgxBudgetRepository) DeleteBudget(ctx context.Context, budgetID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM budgets WHERE budget_id = $1;`, budgetID)
	if err != nil {
		return fmt.Errorf("failed to delete budget %s: %w", budgetID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
