package domain

import "github.com/shopspring/decimal"

// FinancialSummary holds the dashboard aggregates for one business's
// working set of invoices and expenses.
type FinancialSummary struct {
	TotalIncome   decimal.Decimal `json:"totalIncome"`   // sum of paid invoice totals
	PendingIncome decimal.Decimal `json:"pendingIncome"` // sum of sent invoice totals (receivables)
	TotalExpenses decimal.Decimal `json:"totalExpenses"` // sum of all expense amounts
	NetProfit     decimal.Decimal `json:"netProfit"`     // totalIncome - totalExpenses
}

// Citation is a source reference returned alongside market research text.
type Citation struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// MarketSearchResult is the outcome of a single-shot market research query.
type MarketSearchResult struct {
	Text    string     `json:"text"`
	Sources []Citation `json:"sources"`
}
