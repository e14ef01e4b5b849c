// Package finance holds the pure derivation rules for invoice totals,
// payment balances, budget utilization and dashboard aggregates. Every
// function here is deterministic and side-effect free; services and
// handlers apply them to raw records on read or at write time.
package finance

import (
	"github.com/baatie/controllerpro/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Monetary results are rounded to cents at each aggregation boundary, not
// only at display time, so drift cannot accumulate across many line items.
// decimal.Round rounds half away from zero.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Subtotal sums quantity x unit price over the line items.
// The result is invariant under item reordering.
func Subtotal(items []domain.LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.Quantity.Mul(item.UnitPrice))
	}
	return round2(sum)
}

// TaxAmount applies a flat percentage rate to the subtotal.
func TaxAmount(subtotal, taxRatePercent decimal.Decimal) decimal.Decimal {
	return round2(subtotal.Mul(taxRatePercent).Div(decimal.NewFromInt(100)))
}

// Total is the invoice grand total.
func Total(subtotal, taxAmount decimal.Decimal) decimal.Decimal {
	return round2(subtotal.Add(taxAmount))
}

// AmountPaid sums the recorded payments against an invoice.
func AmountPaid(payments []domain.PaymentRecord) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range payments {
		sum = sum.Add(p.Amount)
	}
	return round2(sum)
}

// BalanceDue is the outstanding amount, clamped at zero so overpayment
// never produces a negative balance.
func BalanceDue(total, amountPaid decimal.Decimal) decimal.Decimal {
	balance := round2(total.Sub(amountPaid))
	if balance.IsNegative() {
		return decimal.Zero.Round(2)
	}
	return balance
}

// InvoiceDerivation bundles every derived monetary value for one invoice.
type InvoiceDerivation struct {
	Subtotal   decimal.Decimal
	TaxAmount  decimal.Decimal
	Total      decimal.Decimal
	AmountPaid decimal.Decimal
	BalanceDue decimal.Decimal
}

// DeriveInvoice computes all derived values for an invoice's raw records.
func DeriveInvoice(items []domain.LineItem, taxRatePercent decimal.Decimal, payments []domain.PaymentRecord) InvoiceDerivation {
	subtotal := Subtotal(items)
	tax := TaxAmount(subtotal, taxRatePercent)
	total := Total(subtotal, tax)
	paid := AmountPaid(payments)
	return InvoiceDerivation{
		Subtotal:   subtotal,
		TaxAmount:  tax,
		Total:      total,
		AmountPaid: paid,
		BalanceDue: BalanceDue(total, paid),
	}
}

// InferStatus applies the payment-state rules at save time: fully paid
// invoices become paid, partially paid invoices become sent, and anything
// else keeps the caller-selected status. This runs only at create/update;
// a status can go stale if payments are edited through a path that skips
// re-derivation.
func InferStatus(selected domain.InvoiceStatus, total, amountPaid decimal.Decimal) domain.InvoiceStatus {
	if amountPaid.GreaterThanOrEqual(total) && total.IsPositive() {
		return domain.InvoiceStatusPaid
	}
	if amountPaid.IsPositive() && amountPaid.LessThan(total) {
		return domain.InvoiceStatusSent
	}
	return selected
}

// UtilizationPercent is spent over allocation as a whole percentage.
// A zero or negative allocation yields 0 rather than propagating a
// division error into persisted or displayed state.
func UtilizationPercent(spent, totalBudget decimal.Decimal) int64 {
	if !totalBudget.IsPositive() {
		return 0
	}
	return spent.Div(totalBudget).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// ClassifyBudget maps utilization to a budget status. This classification
// is the authoritative display rule regardless of the stored status field.
func ClassifyBudget(utilizationPercent int64) domain.BudgetStatus {
	switch {
	case utilizationPercent > 100:
		return domain.BudgetStatusOverBudget
	case utilizationPercent > 85:
		return domain.BudgetStatusAtRisk
	default:
		return domain.BudgetStatusOnTrack
	}
}

// Summarize computes the dashboard aggregates over a working set of
// invoices and expenses. Only paid invoices count toward income and only
// sent invoices toward receivables; draft and overdue totals are excluded.
func Summarize(invoices []domain.Invoice, expenses []domain.Expense) domain.FinancialSummary {
	income := decimal.Zero
	pending := decimal.Zero
	for _, inv := range invoices {
		switch inv.Status {
		case domain.InvoiceStatusPaid:
			income = income.Add(inv.Total)
		case domain.InvoiceStatusSent:
			pending = pending.Add(inv.Total)
		}
	}
	spent := decimal.Zero
	for _, e := range expenses {
		spent = spent.Add(e.Amount)
	}
	income = round2(income)
	spent = round2(spent)
	return domain.FinancialSummary{
		TotalIncome:   income,
		PendingIncome: round2(pending),
		TotalExpenses: spent,
		NetProfit:     round2(income.Sub(spent)),
	}
}

// InvoiceYield is the invoice total minus the expenses billed against it.
// Expenses whose InvoiceID does not match are ignored, so dangling expense
// links cost nothing. No rounding beyond the component roundings.
func InvoiceYield(inv domain.Invoice, expenses []domain.Expense) decimal.Decimal {
	yield := inv.Total
	for _, e := range expenses {
		if e.InvoiceID == inv.InvoiceID {
			yield = yield.Sub(e.Amount)
		}
	}
	return yield
}
