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

// PgxExpenseRepository persists expenses.
type PgxExpenseRepository struct {
	BaseRepository
}

func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

func toModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:   d.ExpenseID,
		BusinessID:  d.BusinessID,
		Category:    d.Category,
		Amount:      d.Amount,
		Date:        d.Date,
		Description: d.Description,
		Vendor:      d.Vendor,
		ProjectID:   d.ProjectID,
		InvoiceID:   d.InvoiceID,
		ReceiptData: d.ReceiptData,
	}
}

func toDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:   m.ExpenseID,
		BusinessID:  m.BusinessID,
		Category:    m.Category,
		Amount:      m.Amount,
		Date:        m.Date,
		Description: m.Description,
		Vendor:      m.Vendor,
		ProjectID:   m.ProjectID,
		InvoiceID:   m.InvoiceID,
		ReceiptData: m.ReceiptData,
	}
}

const expenseColumns = `expense_id, business_id, category, amount, date, description, vendor, project_id, invoice_id, receipt_data`

func scanExpense(row pgx.Row) (models.Expense, error) {
	var m models.Expense
	err := row.Scan(&m.ExpenseID, &m.BusinessID, &m.Category, &m.Amount, &m.Date,
		&m.Description, &m.Vendor, &m.ProjectID, &m.InvoiceID, &m.ReceiptData)
	return m, err
}

// SaveExpense inserts a new expense.
func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	m := toModelExpense(expense)

	query := `
		INSERT INTO expenses (` + expenseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ExpenseID, m.BusinessID, m.Category, m.Amount, m.Date,
		m.Description, m.Vendor, m.ProjectID, m.InvoiceID, m.ReceiptData)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: expense with ID %s already exists", apperrors.ErrDuplicate, m.ExpenseID)
		}
		return fmt.Errorf("failed to save expense %s: %w", m.ExpenseID, err)
	}
	return nil
}

// UpdateExpense replaces a stored expense in place.
func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	m := toModelExpense(expense)

	query := `
		UPDATE expenses
		SET business_id = $2, category = $3, amount = $4, date = $5, description = $6,
		    vendor = $7, project_id = $8, invoice_id = $9, receipt_data = $10
		WHERE expense_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ExpenseID, m.BusinessID, m.Category, m.Amount, m.Date,
		m.Description, m.Vendor, m.ProjectID, m.InvoiceID, m.ReceiptData)
	if err != nil {
		return fmt.Errorf("failed to update expense %s: %w", m.ExpenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindExpenseByID retrieves an expense by its ID.
func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE expense_id = $1;`
	m, err := scanExpense(r.Pool.QueryRow(ctx, query, expenseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense %s: %w", expenseID, err)
	}

	d := toDomainExpense(m)
	return &d, nil
}

// ListExpenses retrieves expenses scoped to a business; an empty businessID
// returns every expense in the system.
func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, businessID string) ([]domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses`
	args := []any{}
	if businessID != "" {
		query += ` WHERE business_id = $1`
		args = append(args, businessID)
	}
	query += ` ORDER BY date DESC, expense_id;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []domain.Expense
	for rows.Next() {
		m, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, toDomainExpense(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expenses: %w", err)
	}
	return expenses, nil
}

// DeleteExpense removes an expense row.
func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM expenses WHERE expense_id = $1;`, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense %s: %w", expenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
