// Package models holds the database row representations. Sub-structures
// (line items, payments, representatives, category lists, theming) are
// persisted as opaque JSON blobs and parsed back into domain structures on
// every read.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Business is the businesses table row. It is the tenant root and carries
// no owning business_id tag itself.
type Business struct {
	BusinessID        string
	Name              string
	LogoURL           string
	PhoneNumber       string
	Address           string
	TaxID             string
	DefaultNetDays    int
	ExpenseCategories []byte // JSON array of category names
	Theming           []byte // JSON InvoiceTheme
	TemplateURL       string
}

// Client is the clients table row.
type Client struct {
	ClientID        string
	BusinessID      string
	Name            string
	Address         string
	Representatives []byte // JSON array of representatives
}

// Invoice is the invoices table row.
type Invoice struct {
	InvoiceID        string
	BusinessID       string
	ClientID         string
	RepresentativeID string
	Items            []byte // JSON array of line items
	IssueDate        time.Time
	DueDate          time.Time
	Status           string
	Total            decimal.Decimal
	Payments         []byte // JSON array of payment records
	CustomerPO       string
	TaxRate          decimal.Decimal
	TemplateID       string
}

// Expense is the expenses table row.
type Expense struct {
	ExpenseID   string
	BusinessID  string
	Category    string
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	Vendor      string
	ProjectID   string
	InvoiceID   string
	ReceiptData string
}

// Budget is the budgets table row.
type Budget struct {
	BudgetID    string
	BusinessID  string
	Name        string
	TotalBudget decimal.Decimal
	Spent       decimal.Decimal
	Status      string
}

// User is the users table row.
type User struct {
	UserID       string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
