package repositories

import (
	"context"

	"github.com/baatie/controllerpro/internal/core/domain"
)

// InvoiceReader defines read operations for invoice data.
type InvoiceReader interface {
	// FindInvoiceByID retrieves a specific invoice by its ID.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoices retrieves invoices owned by businessID; an empty
	// businessID returns the full cross-tenant set.
	ListInvoices(ctx context.Context, businessID string) ([]domain.Invoice, error)

	// CountInvoicesByClientID counts invoices referencing a client across
	// the whole system, not just one business's working set. The client
	// delete guard depends on that scope.
	CountInvoicesByClientID(ctx context.Context, clientID string) (int, error)
}

// InvoiceWriter defines write operations for invoice data.
type InvoiceWriter interface {
	// SaveInvoice persists a new invoice.
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error

	// UpdateInvoice replaces a stored invoice in place.
	UpdateInvoice(ctx context.Context, invoice domain.Invoice) error

	// DeleteInvoice removes an invoice. Deletion is unguarded; expenses
	// referencing the invoice keep their dangling link.
	DeleteInvoice(ctx context.Context, invoiceID string) error
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces.
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
