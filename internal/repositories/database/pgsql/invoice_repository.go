package pgsql

import (
	"context"
	"encoding/json"
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

// PgxInvoiceRepository persists invoices.
type PgxInvoiceRepository struct {
	BaseRepository
}

func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

func toModelInvoice(d domain.Invoice) (models.Invoice, error) {
	items, err := json.Marshal(d.Items)
	if err != nil {
		return models.Invoice{}, fmt.Errorf("failed to marshal line items: %w", err)
	}
	payments, err := json.Marshal(d.Payments)
	if err != nil {
		return models.Invoice{}, fmt.Errorf("failed to marshal payments: %w", err)
	}
	return models.Invoice{
		InvoiceID:        d.InvoiceID,
		BusinessID:       d.BusinessID,
		ClientID:         d.ClientID,
		RepresentativeID: d.RepresentativeID,
		Items:            items,
		IssueDate:        d.IssueDate,
		DueDate:          d.DueDate,
		Status:           string(d.Status),
		Total:            d.Total,
		Payments:         payments,
		CustomerPO:       d.CustomerPO,
		TaxRate:          d.TaxRate,
		TemplateID:       d.TemplateID,
	}, nil
}

func toDomainInvoice(m models.Invoice) (domain.Invoice, error) {
	d := domain.Invoice{
		InvoiceID:        m.InvoiceID,
		BusinessID:       m.BusinessID,
		ClientID:         m.ClientID,
		RepresentativeID: m.RepresentativeID,
		IssueDate:        m.IssueDate,
		DueDate:          m.DueDate,
		Status:           domain.InvoiceStatus(m.Status),
		Total:            m.Total,
		CustomerPO:       m.CustomerPO,
		TaxRate:          m.TaxRate,
		TemplateID:       m.TemplateID,
	}
	if err := json.Unmarshal(m.Items, &d.Items); err != nil {
		return d, fmt.Errorf("failed to parse line items for invoice %s: %w", m.InvoiceID, err)
	}
	if err := json.Unmarshal(m.Payments, &d.Payments); err != nil {
		return d, fmt.Errorf("failed to parse payments for invoice %s: %w", m.InvoiceID, err)
	}
	return d, nil
}

const invoiceColumns = `invoice_id, business_id, client_id, representative_id, items, issue_date, due_date, status, total, payments, customer_po, tax_rate, template_id`

func scanInvoice(row pgx.Row) (models.Invoice, error) {
	var m models.Invoice
	err := row.Scan(&m.InvoiceID, &m.BusinessID, &m.ClientID, &m.RepresentativeID, &m.Items,
		&m.IssueDate, &m.DueDate, &m.Status, &m.Total, &m.Payments, &m.CustomerPO, &m.TaxRate, &m.TemplateID)
	return m, err
}

// SaveInvoice inserts a new invoice.
func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	m, err := toModelInvoice(invoice)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err = r.Pool.Exec(ctx, query,
		m.InvoiceID, m.BusinessID, m.ClientID, m.RepresentativeID, m.Items,
		m.IssueDate, m.DueDate, m.Status, m.Total, m.Payments, m.CustomerPO, m.TaxRate, m.TemplateID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: invoice with ID %s already exists", apperrors.ErrDuplicate, m.InvoiceID)
		}
		return fmt.Errorf("failed to save invoice %s: %w", m.InvoiceID, err)
	}
	return nil
}

// UpdateInvoice replaces a stored invoice in place.
func (r *PgxInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	m, err := toModelInvoice(invoice)
	if err != nil {
		return err
	}

	query := `
		UPDATE invoices
		SET business_id = $2, client_id = $3, representative_id = $4, items = $5,
		    issue_date = $6, due_date = $7, status = $8, total = $9, payments = $10,
		    customer_po = $11, tax_rate = $12, template_id = $13
		WHERE invoice_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.InvoiceID, m.BusinessID, m.ClientID, m.RepresentativeID, m.Items,
		m.IssueDate, m.DueDate, m.Status, m.Total, m.Payments, m.CustomerPO, m.TaxRate, m.TemplateID)
	if err != nil {
		return fmt.Errorf("failed to update invoice %s: %w", m.InvoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindInvoiceByID retrieves an invoice by its ID.
func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_id = $1;`
	m, err := scanInvoice(r.Pool.QueryRow(ctx, query, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice %s: %w", invoiceID, err)
	}

	d, err := toDomainInvoice(m)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ListInvoices retrieves invoices scoped to a business; an empty businessID
// returns every invoice in the system.
func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context, businessID string) ([]domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices`
	args := []any{}
	if businessID != "" {
		query += ` WHERE business_id = $1`
		args = append(args, businessID)
	}
	query += ` ORDER BY issue_date DESC, invoice_id;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	defer rows.Close()

	var invoices []domain.Invoice
	for rows.Next() {
		m, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice: %w", err)
		}
		d, err := toDomainInvoice(m)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoices: %w", err)
	}
	return invoices, nil
}

// CountInvoicesByClientID counts invoices referencing a client across every
// business. The scope is deliberately system-wide; the client delete guard
// must see references outside the caller's active business too.
func (r *PgxInvoiceRepository) CountInvoicesByClientID(ctx context.Context, clientID string) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM invoices WHERE client_id = $1;`, clientID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count invoices for client %s: %w", clientID, err)
	}
	return count, nil
}

// DeleteInvoice removes an invoice row.
func (r *PgxInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM invoices WHERE invoice_id = $1;`, invoiceID)
	if err != nil {
		return fmt.Errorf("failed to delete invoice %s: %w", invoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
