package services

import (
	"context"

	"github.com/baatie/controllerpro/internal/core/domain"
)

// AdvisorProvider is the capability interface for the external generative
// AI collaborator. Calls are single-shot and retry-free; the core owns no
// knowledge of any specific provider.
type AdvisorProvider interface {
	// GetAdvice returns free-text advice for an assembled context string.
	GetAdvice(ctx context.Context, contextText string) (string, error)

	// Search runs a market research query and returns text plus source
	// citations.
	Search(ctx context.Context, query string) (*domain.MarketSearchResult, error)
}

// DashboardSvcFacade computes per-business aggregates and mediates the AI
// advisory feature.
type DashboardSvcFacade interface {
	// Summary computes the dashboard aggregates for one business.
	Summary(ctx context.Context, businessID string) (*domain.FinancialSummary, error)

	// Advise assembles the advisory context from the business's current
	// aggregates and asks the provider for advice. Provider failure
	// degrades to empty advice; it never blocks the dashboard.
	Advise(ctx context.Context, businessID string) (string, error)

	// MarketTrends runs a market research query through the provider.
	MarketTrends(ctx context.Context, query string) (*domain.MarketSearchResult, error)
}
