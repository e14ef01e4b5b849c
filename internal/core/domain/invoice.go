package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus defines the lifecycle states of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusSent    InvoiceStatus = "sent"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// ValidInvoiceStatus reports whether s is one of the known statuses.
func ValidInvoiceStatus(s InvoiceStatus) bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusOverdue:
		return true
	}
	return false
}

// LineItem contributes quantity x unit price to an invoice's subtotal.
type LineItem struct {
	LineItemID  string          `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// PaymentRecord is a payment applied against an invoice.
type PaymentRecord struct {
	PaymentID string          `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Date      time.Time       `json:"date"`
	Method    string          `json:"method"`
}

// Invoice is owned by one business profile and references one client and
// optionally one of that client's representatives. Total is persisted but
// always recomputed from the line items at write time. ClientID and
// RepresentativeID are weak references: an id that no longer resolves is
// rendered as absent, never treated as an error.
type Invoice struct {
	InvoiceID        string          `json:"id"`
	BusinessID       string          `json:"businessId"`
	ClientID         string          `json:"clientId"`
	RepresentativeID string          `json:"representativeId,omitempty"`
	Items            []LineItem      `json:"items"`
	IssueDate        time.Time       `json:"issueDate"`
	DueDate          time.Time       `json:"dueDate"`
	Status           InvoiceStatus   `json:"status"`
	Total            decimal.Decimal `json:"total"`
	Payments         []PaymentRecord `json:"payments"`
	CustomerPO       string          `json:"customerPo,omitempty"`
	TaxRate          decimal.Decimal `json:"taxRate"`
	TemplateID       string          `json:"templateId,omitempty"`
}
