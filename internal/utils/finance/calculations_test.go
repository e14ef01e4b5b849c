package finance_test

import (
	"testing"

	"github.com/baatie/controllerpro/internal/core/domain"
	"github.com/baatie/controllerpro/internal/utils/finance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(qty, price string) domain.LineItem {
	return domain.LineItem{
		Quantity:  decimal.RequireFromString(qty),
		UnitPrice: decimal.RequireFromString(price),
	}
}

func payment(amount string) domain.PaymentRecord {
	return domain.PaymentRecord{Amount: decimal.RequireFromString(amount)}
}

func TestSubtotal(t *testing.T) {
	tests := []struct {
		name  string
		items []domain.LineItem
		want  string
	}{
		{
			name:  "no items",
			items: nil,
			want:  "0",
		},
		{
			name:  "single item",
			items: []domain.LineItem{item("2", "49.99")},
			want:  "99.98",
		},
		{
			name:  "fractional quantity rounds at the boundary",
			items: []domain.LineItem{item("1.5", "33.33")},
			want:  "50",
		},
		{
			name:  "many items",
			items: []domain.LineItem{item("1", "8500.00"), item("2", "2000.00")},
			want:  "12500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := finance.Subtotal(tt.items)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"got %s want %s", got, tt.want)
		})
	}
}

func TestSubtotal_OrderInvariant(t *testing.T) {
	a := []domain.LineItem{item("3", "19.99"), item("1", "250.00"), item("0.5", "7.77")}
	b := []domain.LineItem{a[2], a[0], a[1]}

	assert.True(t, finance.Subtotal(a).Equal(finance.Subtotal(b)))
}

func TestSubtotal_SplitInvariant(t *testing.T) {
	// Splitting one item into two of half quantity at the same price must
	// agree within one cent of rounding tolerance.
	whole := []domain.LineItem{item("4", "12.345")}
	split := []domain.LineItem{item("2", "12.345"), item("2", "12.345")}

	diff := finance.Subtotal(whole).Sub(finance.Subtotal(split)).Abs()
	assert.True(t, diff.LessThanOrEqual(decimal.RequireFromString("0.01")),
		"difference %s exceeds one cent", diff)
}

func TestDeriveInvoice_EndToEnd(t *testing.T) {
	// Items [{qty:1, price:8500.00}, {qty:2, price:2000.00}] at 8.5% tax.
	items := []domain.LineItem{item("1", "8500.00"), item("2", "2000.00")}
	taxRate := decimal.RequireFromString("8.5")

	d := finance.DeriveInvoice(items, taxRate, nil)
	assert.Equal(t, "12500", d.Subtotal.String())
	assert.Equal(t, "1062.5", d.TaxAmount.String())
	assert.Equal(t, "13562.5", d.Total.String())
	assert.Equal(t, "13562.5", d.BalanceDue.String())

	// A payment for the full total clears the balance and flips the status.
	paid := finance.DeriveInvoice(items, taxRate, []domain.PaymentRecord{payment("13562.50")})
	assert.True(t, paid.BalanceDue.IsZero())
	assert.Equal(t, domain.InvoiceStatusPaid,
		finance.InferStatus(domain.InvoiceStatusDraft, paid.Total, paid.AmountPaid))
}

func TestBalanceDue_NeverNegative(t *testing.T) {
	total := decimal.RequireFromString("100.00")

	overpaid := finance.BalanceDue(total, decimal.RequireFromString("150.00"))
	require.False(t, overpaid.IsNegative())
	assert.True(t, overpaid.IsZero())

	partial := finance.BalanceDue(total, decimal.RequireFromString("40.00"))
	assert.Equal(t, "60", partial.String())
}

func TestInferStatus(t *testing.T) {
	tests := []struct {
		name     string
		selected domain.InvoiceStatus
		total    string
		paid     string
		want     domain.InvoiceStatus
	}{
		{"fully paid", domain.InvoiceStatusDraft, "100.00", "100.00", domain.InvoiceStatusPaid},
		{"overpaid", domain.InvoiceStatusSent, "100.00", "120.00", domain.InvoiceStatusPaid},
		{"partially paid", domain.InvoiceStatusDraft, "100.00", "25.00", domain.InvoiceStatusSent},
		{"unpaid keeps selection", domain.InvoiceStatusDraft, "100.00", "0", domain.InvoiceStatusDraft},
		{"unpaid keeps overdue", domain.InvoiceStatusOverdue, "100.00", "0", domain.InvoiceStatusOverdue},
		{"zero total never becomes paid", domain.InvoiceStatusDraft, "0", "0", domain.InvoiceStatusDraft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := finance.InferStatus(tt.selected,
				decimal.RequireFromString(tt.total), decimal.RequireFromString(tt.paid))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInferStatus_StaleAfterPaymentEdit(t *testing.T) {
	// Inference runs only at save time. Recomputing payments without
	// re-running inference leaves the stored status untouched, so an
	// invoice whose payments were edited out-of-band stays "paid".
	inv := domain.Invoice{
		Status: domain.InvoiceStatusPaid,
		Total:  decimal.RequireFromString("500.00"),
	}
	paid := finance.AmountPaid(nil) // payments were removed

	assert.True(t, paid.IsZero())
	assert.Equal(t, domain.InvoiceStatusPaid, inv.Status)
}

func TestUtilizationPercent(t *testing.T) {
	tests := []struct {
		name   string
		spent  string
		budget string
		want   int64
	}{
		{"quarter used", "12500.00", "50000.00", 25},
		{"rounds to nearest", "856.00", "1000.00", 86},
		{"fully used", "1000.00", "1000.00", 100},
		{"over", "1010.00", "1000.00", 101},
		{"zero budget sentinel", "500.00", "0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := finance.UtilizationPercent(
				decimal.RequireFromString(tt.spent), decimal.RequireFromString(tt.budget))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyBudget_Monotonic(t *testing.T) {
	assert.Equal(t, domain.BudgetStatusOnTrack, finance.ClassifyBudget(50))
	assert.Equal(t, domain.BudgetStatusOnTrack, finance.ClassifyBudget(85))
	assert.Equal(t, domain.BudgetStatusAtRisk, finance.ClassifyBudget(86))
	assert.Equal(t, domain.BudgetStatusAtRisk, finance.ClassifyBudget(100))
	assert.Equal(t, domain.BudgetStatusOverBudget, finance.ClassifyBudget(101))
}

func TestSummarize(t *testing.T) {
	invoices := []domain.Invoice{
		{Status: domain.InvoiceStatusPaid, Total: decimal.RequireFromString("1000.00")},
		{Status: domain.InvoiceStatusPaid, Total: decimal.RequireFromString("250.50")},
		{Status: domain.InvoiceStatusSent, Total: decimal.RequireFromString("400.00")},
		{Status: domain.InvoiceStatusDraft, Total: decimal.RequireFromString("999.99")},
		{Status: domain.InvoiceStatusOverdue, Total: decimal.RequireFromString("75.00")},
	}
	expenses := []domain.Expense{
		{Amount: decimal.RequireFromString("300.00")},
		{Amount: decimal.RequireFromString("120.25")},
	}

	s := finance.Summarize(invoices, expenses)
	assert.Equal(t, "1250.5", s.TotalIncome.String())
	assert.Equal(t, "400", s.PendingIncome.String())
	assert.Equal(t, "420.25", s.TotalExpenses.String())
	assert.Equal(t, "830.25", s.NetProfit.String())
}

func TestInvoiceYield(t *testing.T) {
	inv := domain.Invoice{
		InvoiceID: "INV-1",
		Total:     decimal.RequireFromString("1000.00"),
	}
	expenses := []domain.Expense{
		{InvoiceID: "INV-1", Amount: decimal.RequireFromString("150.00")},
		{InvoiceID: "INV-1", Amount: decimal.RequireFromString("49.50")},
		{InvoiceID: "INV-2", Amount: decimal.RequireFromString("9999.00")},
		{Amount: decimal.RequireFromString("25.00")}, // unlinked
	}

	assert.Equal(t, "800.5", finance.InvoiceYield(inv, expenses).String())
}
