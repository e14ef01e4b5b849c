package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/baatie/controllerpro/internal/core/domain"
	portsrepo "github.com/baatie/controllerpro/internal/core/ports/repositories"
	portssvc "github.com/baatie/controllerpro/internal/core/ports/services"
	"github.com/baatie/controllerpro/internal/utils/finance"
)

// dashboardService implements the DashboardSvcFacade interface.
type dashboardService struct {
	BaseService
	businessRepo portsrepo.BusinessReader
	invoiceRepo  portsrepo.InvoiceReader
	expenseRepo  portsrepo.ExpenseReader
	budgetRepo   portsrepo.BudgetReader
	advisor      portssvc.AdvisorProvider
}

// NewDashboardService creates a new dashboard service. The advisor may be
// nil, in which case the advisory feature reports itself unavailable while
// the aggregates keep working.
func NewDashboardService(
	businessRepo portsrepo.BusinessReader,
	invoiceRepo portsrepo.InvoiceReader,
	expenseRepo portsrepo.ExpenseReader,
	budgetRepo portsrepo.BudgetReader,
	advisor portssvc.AdvisorProvider,
) portssvc.DashboardSvcFacade {
	return &dashboardService{
		businessRepo: businessRepo,
		invoiceRepo:  invoiceRepo,
		expenseRepo:  expenseRepo,
		budgetRepo:   budgetRepo,
		advisor:      advisor,
	}
}

var _ portssvc.DashboardSvcFacade = (*dashboardService)(nil)

// Summary computes the dashboard aggregates over the business's working
// set of invoices and expenses.
func (s *dashboardService) Summary(ctx context.Context, businessID string) (*domain.FinancialSummary, error) {
	if _, err := s.businessRepo.FindBusinessByID(ctx, businessID); err != nil {
		return nil, err
	}

	invoices, err := s.invoiceRepo.ListInvoices(ctx, businessID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load invoices for summary",
			slog.String("business_id", businessID))
		return nil, err
	}
	expenses, err := s.expenseRepo.ListExpenses(ctx, businessID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load expenses for summary",
			slog.String("business_id", businessID))
		return nil, err
	}

	summary := finance.Summarize(invoices, expenses)
	return &summary, nil
}

// Advise assembles the advisory context string from the business's current
// aggregates and asks the provider for free-text advice. Provider failure
// degrades to empty advice: the caller still gets a success, just without
// text, and the failure is logged.
func (s *dashboardService) Advise(ctx context.Context, businessID string) (string, error) {
	business, err := s.businessRepo.FindBusinessByID(ctx, businessID)
	if err != nil {
		return "", err
	}
	summary, err := s.Summary(ctx, businessID)
	if err != nil {
		return "", err
	}
	budgets, err := s.budgetRepo.ListBudgets(ctx, businessID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load budgets for advisory context",
			slog.String("business_id", businessID))
		return "", err
	}

	if s.advisor == nil {
		s.LogDebug(ctx, "No advisor provider configured")
		return "", nil
	}

	contextText := fmt.Sprintf(
		"Context: %s. Income: $%s. Expenses: $%s. AR: $%s. Projects: %d. Advise on optimization.",
		business.Name,
		summary.TotalIncome.StringFixed(2),
		summary.TotalExpenses.StringFixed(2),
		summary.PendingIncome.StringFixed(2),
		len(budgets),
	)

	advice, err := s.advisor.GetAdvice(ctx, contextText)
	if err != nil {
		// Single-shot and retry-free: log and carry on without advice.
		s.LogError(ctx, err, "Advisor call failed, degrading to no advice",
			slog.String("business_id", businessID))
		return "", nil
	}

	s.LogInfo(ctx, "Advisory text generated",
		slog.String("business_id", businessID))
	return advice, nil
}

// MarketTrends runs a single-shot market research query.
func (s *dashboardService) MarketTrends(ctx context.Context, query string) (*domain.MarketSearchResult, error) {
	if s.advisor == nil {
		return &domain.MarketSearchResult{Sources: []domain.Citation{}}, nil
	}

	result, err := s.advisor.Search(ctx, query)
	if err != nil {
		s.LogError(ctx, err, "Market search failed, degrading to empty result")
		return &domain.MarketSearchResult{Sources: []domain.Citation{}}, nil
	}
	if result.Sources == nil {
		result.Sources = []domain.Citation{}
	}
	return result, nil
}
