package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/baatie/controllerpro/internal/apperrors"
	"github.com/baatie/controllerpro/internal/core/domain"
	portsrepo "github.com/baatie/controllerpro/internal/core/ports/repositories"
	portssvc "github.com/baatie/controllerpro/internal/core/ports/services"
	"github.com/baatie/controllerpro/internal/utils/finance"
)

// invoiceService implements the InvoiceSvcFacade interface.
type invoiceService struct {
	BaseService
	invoiceRepo  portsrepo.InvoiceRepositoryFacade
	businessRepo portsrepo.BusinessReader
	now          func() time.Time
}

// InvoiceServiceOption is a functional option for configuring the invoice service.
type InvoiceServiceOption func(*invoiceService)

// WithClock overrides the time source, used by tests for deterministic ids
// and due dates.
func WithClock(now func() time.Time) InvoiceServiceOption {
	return func(s *invoiceService) {
		s.now = now
	}
}

// NewInvoiceService creates a new invoice service. The business reader
// supplies default net-payment terms for due-date derivation.
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepositoryFacade, businessRepo portsrepo.BusinessReader, options ...InvoiceServiceOption) portssvc.InvoiceSvcFacade {
	svc := &invoiceService{
		invoiceRepo:  invoiceRepo,
		businessRepo: businessRepo,
		now:          time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

// FindInvoiceByID retrieves an invoice by its ID.
func (s *invoiceService) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find invoice by ID",
				slog.String("invoice_id", invoiceID))
		}
		return nil, err
	}
	return invoice, nil
}

// ListInvoices retrieves invoices scoped to a business; empty businessID
// returns the cross-tenant set (export only).
func (s *invoiceService) ListInvoices(ctx context.Context, businessID string) ([]domain.Invoice, error) {
	invoices, err := s.invoiceRepo.ListInvoices(ctx, businessID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices",
			slog.String("business_id", businessID))
		return nil, err
	}
	if invoices == nil {
		return []domain.Invoice{}, nil
	}
	return invoices, nil
}

// prepare validates an invoice and applies every write-time derivation:
// the generated id, the due date from the business's net days, the
// recomputed total and the payment-state status inference. A caller-
// supplied total is always overwritten by the derived one.
func (s *invoiceService) prepare(ctx context.Context, invoice domain.Invoice) (domain.Invoice, error) {
	if invoice.BusinessID == "" {
		return invoice, fmt.Errorf("%w: invoice businessId is required", apperrors.ErrValidation)
	}
	if invoice.ClientID == "" {
		return invoice, fmt.Errorf("%w: invoice clientId is required", apperrors.ErrValidation)
	}
	if invoice.Status == "" {
		invoice.Status = domain.InvoiceStatusDraft
	}
	if !domain.ValidInvoiceStatus(invoice.Status) {
		return invoice, fmt.Errorf("%w: unknown invoice status %q", apperrors.ErrValidation, invoice.Status)
	}
	for _, item := range invoice.Items {
		if item.Quantity.IsNegative() {
			return invoice, fmt.Errorf("%w: line item quantity cannot be negative", apperrors.ErrValidation)
		}
	}
	if invoice.TaxRate.IsNegative() {
		return invoice, fmt.Errorf("%w: tax rate cannot be negative", apperrors.ErrValidation)
	}
	if invoice.Items == nil {
		invoice.Items = []domain.LineItem{}
	}
	if invoice.Payments == nil {
		invoice.Payments = []domain.PaymentRecord{}
	}

	if invoice.InvoiceID == "" {
		invoice.InvoiceID = fmt.Sprintf("INV-%d", s.now().UnixMilli())
	}
	if invoice.IssueDate.IsZero() {
		invoice.IssueDate = s.now()
	}
	if invoice.DueDate.IsZero() {
		netDays := 30
		business, err := s.businessRepo.FindBusinessByID(ctx, invoice.BusinessID)
		if err == nil {
			netDays = business.DefaultNetDays
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			return invoice, err
		}
		invoice.DueDate = invoice.IssueDate.AddDate(0, 0, netDays)
	}

	derived := finance.DeriveInvoice(invoice.Items, invoice.TaxRate, invoice.Payments)
	invoice.Total = derived.Total
	invoice.Status = finance.InferStatus(invoice.Status, derived.Total, derived.AmountPaid)
	return invoice, nil
}

// CreateInvoice persists a new invoice with all write-time derivations applied.
func (s *invoiceService) CreateInvoice(ctx context.Context, invoice domain.Invoice) (*domain.Invoice, error) {
	prepared, err := s.prepare(ctx, invoice)
	if err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, prepared); err != nil {
		s.LogError(ctx, err, "Failed to save invoice",
			slog.String("invoice_id", prepared.InvoiceID))
		return nil, err
	}

	s.LogInfo(ctx, "Invoice created successfully",
		slog.String("invoice_id", prepared.InvoiceID),
		slog.String("business_id", prepared.BusinessID),
		slog.String("status", string(prepared.Status)),
		slog.String("total", prepared.Total.String()))
	return &prepared, nil
}

// UpdateInvoice replaces an invoice in place, re-deriving total and status.
func (s *invoiceService) UpdateInvoice(ctx context.Context, invoice domain.Invoice) (*domain.Invoice, error) {
	if invoice.InvoiceID == "" {
		return nil, fmt.Errorf("%w: invoice id is required", apperrors.ErrValidation)
	}
	if _, err := s.invoiceRepo.FindInvoiceByID(ctx, invoice.InvoiceID); err != nil {
		return nil, err
	}

	prepared, err := s.prepare(ctx, invoice)
	if err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.UpdateInvoice(ctx, prepared); err != nil {
		s.LogError(ctx, err, "Failed to update invoice",
			slog.String("invoice_id", prepared.InvoiceID))
		return nil, err
	}

	s.LogInfo(ctx, "Invoice updated successfully",
		slog.String("invoice_id", prepared.InvoiceID),
		slog.String("status", string(prepared.Status)))
	return &prepared, nil
}

// DeleteInvoice removes an invoice. No referential guard applies: expenses
// billed against the invoice keep a dangling link which readers tolerate.
func (s *invoiceService) DeleteInvoice(ctx context.Context, invoiceID string) error {
	if _, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID); err != nil {
		return err
	}
	if err := s.invoiceRepo.DeleteInvoice(ctx, invoiceID); err != nil {
		s.LogError(ctx, err, "Failed to delete invoice",
			slog.String("invoice_id", invoiceID))
		return err
	}
	s.LogInfo(ctx, "Invoice deleted successfully",
		slog.String("invoice_id", invoiceID))
	return nil
}
