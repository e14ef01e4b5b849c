package dto

import (
	"time"

	"github.com/baatie/controllerpro/internal/core/domain"
	"github.com/baatie/controllerpro/internal/utils/finance"
	"github.com/shopspring/decimal"
)

// --- Invoice DTOs ---

// LineItemDTO carries one billable line on an invoice.
type LineItemDTO struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// PaymentRecordDTO carries one payment applied against an invoice.
type PaymentRecordDTO struct {
	ID     string          `json:"id"`
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
	Method string          `json:"method"`
}

// CreateInvoiceRequest defines data for creating a new invoice. ID, issue
// date, due date and status are optional; the service fills them in.
type CreateInvoiceRequest struct {
	ID               string               `json:"id"`
	BusinessID       string               `json:"businessId" binding:"required"`
	ClientID         string               `json:"clientId" binding:"required"`
	RepresentativeID string               `json:"representativeId"`
	Items            []LineItemDTO        `json:"items"`
	IssueDate        *time.Time           `json:"issueDate"`
	DueDate          *time.Time           `json:"dueDate"`
	Status           domain.InvoiceStatus `json:"status" binding:"omitempty,oneof=draft sent paid overdue"`
	Payments         []PaymentRecordDTO   `json:"payments"`
	CustomerPO       string               `json:"customerPo"`
	TaxRate          decimal.Decimal      `json:"taxRate"`
	TemplateID       string               `json:"templateId"`
}

// UpdateInvoiceRequest defines data for replacing an invoice. Total and
// status are re-derived on save exactly as at creation.
type UpdateInvoiceRequest struct {
	BusinessID       string               `json:"businessId" binding:"required"`
	ClientID         string               `json:"clientId" binding:"required"`
	RepresentativeID string               `json:"representativeId"`
	Items            []LineItemDTO        `json:"items"`
	IssueDate        *time.Time           `json:"issueDate"`
	DueDate          *time.Time           `json:"dueDate"`
	Status           domain.InvoiceStatus `json:"status" binding:"omitempty,oneof=draft sent paid overdue"`
	Payments         []PaymentRecordDTO   `json:"payments"`
	CustomerPO       string               `json:"customerPo"`
	TaxRate          decimal.Decimal      `json:"taxRate"`
	TemplateID       string               `json:"templateId"`
}

// InvoiceResponse defines data returned for an invoice. Subtotal, tax
// amount, amount paid and balance due are derived from the stored line
// items and payments on every read; they are never stored.
type InvoiceResponse struct {
	ID               string               `json:"id"`
	BusinessID       string               `json:"businessId"`
	ClientID         string               `json:"clientId"`
	RepresentativeID string               `json:"representativeId,omitempty"`
	Items            []LineItemDTO        `json:"items"`
	IssueDate        time.Time            `json:"issueDate"`
	DueDate          time.Time            `json:"dueDate"`
	Status           domain.InvoiceStatus `json:"status"`
	Payments         []PaymentRecordDTO   `json:"payments"`
	CustomerPO       string               `json:"customerPo,omitempty"`
	TaxRate          decimal.Decimal      `json:"taxRate"`
	TemplateID       string               `json:"templateId,omitempty"`
	Subtotal         decimal.Decimal      `json:"subtotal"`
	TaxAmount        decimal.Decimal      `json:"taxAmount"`
	Total            decimal.Decimal      `json:"total"`
	AmountPaid       decimal.Decimal      `json:"amountPaid"`
	BalanceDue       decimal.Decimal      `json:"balanceDue"`
}

func toDomainLineItems(items []LineItemDTO) []domain.LineItem {
	out := make([]domain.LineItem, len(items))
	for i, item := range items {
		out[i] = domain.LineItem{
			LineItemID:  item.ID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		}
	}
	return out
}

func toDomainPayments(payments []PaymentRecordDTO) []domain.PaymentRecord {
	out := make([]domain.PaymentRecord, len(payments))
	for i, p := range payments {
		out[i] = domain.PaymentRecord{
			PaymentID: p.ID,
			Amount:    p.Amount,
			Date:      p.Date,
			Method:    p.Method,
		}
	}
	return out
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

// ToDomainInvoice converts a create request into the domain entity.
func (r CreateInvoiceRequest) ToDomainInvoice() domain.Invoice {
	return domain.Invoice{
		InvoiceID:        r.ID,
		BusinessID:       r.BusinessID,
		ClientID:         r.ClientID,
		RepresentativeID: r.RepresentativeID,
		Items:            toDomainLineItems(r.Items),
		IssueDate:        timeOrZero(r.IssueDate),
		DueDate:          timeOrZero(r.DueDate),
		Status:           r.Status,
		Payments:         toDomainPayments(r.Payments),
		CustomerPO:       r.CustomerPO,
		TaxRate:          r.TaxRate,
		TemplateID:       r.TemplateID,
	}
}

// ToDomainInvoice converts an update request into the domain entity.
func (r UpdateInvoiceRequest) ToDomainInvoice(invoiceID string) domain.Invoice {
	return domain.Invoice{
		InvoiceID:        invoiceID,
		BusinessID:       r.BusinessID,
		ClientID:         r.ClientID,
		RepresentativeID: r.RepresentativeID,
		Items:            toDomainLineItems(r.Items),
		IssueDate:        timeOrZero(r.IssueDate),
		DueDate:          timeOrZero(r.DueDate),
		Status:           r.Status,
		Payments:         toDomainPayments(r.Payments),
		CustomerPO:       r.CustomerPO,
		TaxRate:          r.TaxRate,
		TemplateID:       r.TemplateID,
	}
}

// ToInvoiceResponse converts domain.Invoice to DTO, attaching the derived
// monetary values.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	items := make([]LineItemDTO, len(inv.Items))
	for i, item := range inv.Items {
		items[i] = LineItemDTO{
			ID:          item.LineItemID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		}
	}
	payments := make([]PaymentRecordDTO, len(inv.Payments))
	for i, p := range inv.Payments {
		payments[i] = PaymentRecordDTO{
			ID:     p.PaymentID,
			Amount: p.Amount,
			Date:   p.Date,
			Method: p.Method,
		}
	}

	derived := finance.DeriveInvoice(inv.Items, inv.TaxRate, inv.Payments)
	return InvoiceResponse{
		ID:               inv.InvoiceID,
		BusinessID:       inv.BusinessID,
		ClientID:         inv.ClientID,
		RepresentativeID: inv.RepresentativeID,
		Items:            items,
		IssueDate:        inv.IssueDate,
		DueDate:          inv.DueDate,
		Status:           inv.Status,
		Payments:         payments,
		CustomerPO:       inv.CustomerPO,
		TaxRate:          inv.TaxRate,
		TemplateID:       inv.TemplateID,
		Subtotal:         derived.Subtotal,
		TaxAmount:        derived.TaxAmount,
		Total:            derived.Total,
		AmountPaid:       derived.AmountPaid,
		BalanceDue:       derived.BalanceDue,
	}
}

// ListInvoicesResponse wraps a list of invoices.
type ListInvoicesResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
}

// ToListInvoicesResponse converts a slice of domain.Invoice to DTO.
func ToListInvoicesResponse(invs []domain.Invoice) ListInvoicesResponse {
	list := make([]InvoiceResponse, len(invs))
	for i, inv := range invs {
		list[i] = ToInvoiceResponse(&inv)
	}
	return ListInvoicesResponse{Invoices: list}
}
