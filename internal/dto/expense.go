package dto

import (
	"time"

	"github.com/baatie/controllerpro/internal/core/domain"
	"github.com/shopspring/decimal"
)

// --- Expense DTOs ---

// CreateExpenseRequest defines data for creating a new expense. ProjectID
// and InvoiceID are weak links; they may reference records deleted later.
type CreateExpenseRequest struct {
	ID          string          `json:"id"` // Optional, generated when empty
	BusinessID  string          `json:"businessId" binding:"required"`
	Category    string          `json:"category" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Date        time.Time       `json:"date" binding:"required"`
	Description string          `json:"description"`
	Vendor      string          `json:"vendor"`
	ProjectID   string          `json:"projectId"`
	InvoiceID   string          `json:"invoiceId"`
	ReceiptData string          `json:"receiptData"` // base64-encoded attachment
}

// UpdateExpenseRequest defines data for replacing an expense in place.
type UpdateExpenseRequest struct {
	BusinessID  string          `json:"businessId" binding:"required"`
	Category    string          `json:"category" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Date        time.Time       `json:"date" binding:"required"`
	Description string          `json:"description"`
	Vendor      string          `json:"vendor"`
	ProjectID   string          `json:"projectId"`
	InvoiceID   string          `json:"invoiceId"`
	ReceiptData string          `json:"receiptData"`
}

// ExpenseResponse defines data returned for an expense.
type ExpenseResponse struct {
	ID          string          `json:"id"`
	BusinessID  string          `json:"businessId"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Vendor      string          `json:"vendor"`
	ProjectID   string          `json:"projectId,omitempty"`
	InvoiceID   string          `json:"invoiceId,omitempty"`
	ReceiptData string          `json:"receiptData,omitempty"`
}

// ToDomainExpense converts a create request into the domain entity.
func (r CreateExpenseRequest) ToDomainExpense() domain.Expense {
	return domain.Expense{
		ExpenseID:   r.ID,
		BusinessID:  r.BusinessID,
		Category:    r.Category,
		Amount:      r.Amount,
		Date:        r.Date,
		Description: r.Description,
		Vendor:      r.Vendor,
		ProjectID:   r.ProjectID,
		InvoiceID:   r.InvoiceID,
		ReceiptData: r.ReceiptData,
	}
}

// ToDomainExpense converts an update request into the domain entity.
func (r UpdateExpenseRequest) ToDomainExpense(expenseID string) domain.Expense {
	return domain.Expense{
		ExpenseID:   expenseID,
		BusinessID:  r.BusinessID,
		Category:    r.Category,
		Amount:      r.Amount,
		Date:        r.Date,
		Description: r.Description,
		Vendor:      r.Vendor,
		ProjectID:   r.ProjectID,
		InvoiceID:   r.InvoiceID,
		ReceiptData: r.ReceiptData,
	}
}

// ToExpenseResponse converts domain.Expense to DTO.
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ExpenseID,
		BusinessID:  e.BusinessID,
		Category:    e.Category,
		Amount:      e.Amount,
		Date:        e.Date,
		Description: e.Description,
		Vendor:      e.Vendor,
		ProjectID:   e.ProjectID,
		InvoiceID:   e.InvoiceID,
		ReceiptData: e.ReceiptData,
	}
}

// ListExpensesResponse wraps a list of expenses.
type ListExpensesResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToListExpensesResponse converts a slice of domain.Expense to DTO.
func ToListExpensesResponse(es []domain.Expense) ListExpensesResponse {
	list := make([]ExpenseResponse, len(es))
	for i, e := range es {
		list[i] = ToExpenseResponse(&e)
	}
	return ListExpensesResponse{Expenses: list}
}
