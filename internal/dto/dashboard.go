package dto

import (
	"github.com/baatie/controllerpro/internal/core/domain"
	"github.com/shopspring/decimal"
)

// --- Dashboard and advisory DTOs ---

// FinancialSummaryResponse carries the dashboard aggregates for one
// business.
type FinancialSummaryResponse struct {
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	PendingIncome decimal.Decimal `json:"pendingIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetProfit     decimal.Decimal `json:"netProfit"`
}

// ToFinancialSummaryResponse converts domain.FinancialSummary to DTO.
func ToFinancialSummaryResponse(s *domain.FinancialSummary) FinancialSummaryResponse {
	return FinancialSummaryResponse{
		TotalIncome:   s.TotalIncome,
		PendingIncome: s.PendingIncome,
		TotalExpenses: s.TotalExpenses,
		NetProfit:     s.NetProfit,
	}
}

// AdviceResponse carries the generated financial advice. Advice is empty
// when the provider is unavailable; the dashboard still renders.
type AdviceResponse struct {
	Advice string `json:"advice"`
}

// MarketSearchRequest defines a market research query.
type MarketSearchRequest struct {
	Query string `json:"query" binding:"required"`
}

// CitationDTO is one source reference on a market research answer.
type CitationDTO struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// MarketSearchResponse carries research text plus its source citations.
type MarketSearchResponse struct {
	Text    string        `json:"text"`
	Sources []CitationDTO `json:"sources"`
}

// ToMarketSearchResponse converts domain.MarketSearchResult to DTO.
func ToMarketSearchResponse(r *domain.MarketSearchResult) MarketSearchResponse {
	sources := make([]CitationDTO, len(r.Sources))
	for i, s := range r.Sources {
		sources[i] = CitationDTO(s)
	}
	return MarketSearchResponse{Text: r.Text, Sources: sources}
}
