package services

import (
	"context"

	"github.com/baatie/controllerpro/internal/core/domain"
)

// InvoiceSvcFacade defines operations on invoices.
type InvoiceSvcFacade interface {
	// FindInvoiceByID retrieves a specific invoice by its ID.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoices retrieves invoices scoped to businessID; empty
	// businessID returns the cross-tenant set (export only).
	ListInvoices(ctx context.Context, businessID string) ([]domain.Invoice, error)

	// CreateInvoice persists a new invoice. The service generates a
	// time-based id when none is supplied, derives the due date from the
	// business's default net days when unset, recomputes the total from
	// the line items, and applies payment-state status inference.
	CreateInvoice(ctx context.Context, invoice domain.Invoice) (*domain.Invoice, error)

	// UpdateInvoice replaces an invoice in place, re-deriving total and
	// status exactly as CreateInvoice does.
	UpdateInvoice(ctx context.Context, invoice domain.Invoice) (*domain.Invoice, error)

	// DeleteInvoice removes an invoice. Always permitted; expenses that
	// referenced it keep a dangling link which readers render as absent.
	DeleteInvoice(ctx context.Context, invoiceID string) error
}
