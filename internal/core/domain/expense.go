package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a cost recorded against a business profile. Category should be
// one of the owning business's expense categories but is not enforced at
// the storage layer. ProjectID and InvoiceID are weak references: a linked
// budget or invoice may have been deleted, in which case the reference is
// rendered as absent.
type Expense struct {
	ExpenseID   string          `json:"id"`
	BusinessID  string          `json:"businessId"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Vendor      string          `json:"vendor"`
	ProjectID   string          `json:"projectId,omitempty"`
	InvoiceID   string          `json:"invoiceId,omitempty"`
	ReceiptData string          `json:"receiptData,omitempty"` // base64-encoded attachment
}
