package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/baatie/controllerpro/internal/apperrors"
	"github.com/baatie/controllerpro/internal/core/domain"
	portssvc "github.com/baatie/controllerpro/internal/core/ports/services"
	"github.com/baatie/controllerpro/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type DashboardServiceTestSuite struct {
	suite.Suite
	mockBusinessRepo *MockBusinessRepository
	mockInvoiceRepo  *MockInvoiceRepository
	mockExpenseRepo  *MockExpenseRepository
	mockBudgetRepo   *MockBudgetRepository
	mockAdvisor      *MockAdvisorProvider
	service          portssvc.DashboardSvcFacade
	ctx              context.Context
}

func (s *DashboardServiceTestSuite) SetupTest() {
	s.mockBusinessRepo = new(MockBusinessRepository)
	s.mockInvoiceRepo = new(MockInvoiceRepository)
	s.mockExpenseRepo = new(MockExpenseRepository)
	s.mockBudgetRepo = new(MockBudgetRepository)
	s.mockAdvisor = new(MockAdvisorProvider)
	s.service = services.NewDashboardService(
		s.mockBusinessRepo, s.mockInvoiceRepo, s.mockExpenseRepo, s.mockBudgetRepo, s.mockAdvisor)
	s.ctx = context.Background()
}

func (s *DashboardServiceTestSuite) stubWorkingSet(invoices []domain.Invoice, expenses []domain.Expense) {
	s.mockBusinessRepo.On("FindBusinessByID", s.ctx, "biz-1").
		Return(&domain.BusinessProfile{BusinessID: "biz-1", Name: "Acme Studio"}, nil)
	s.mockInvoiceRepo.On("ListInvoices", s.ctx, "biz-1").Return(invoices, nil)
	s.mockExpenseRepo.On("ListExpenses", s.ctx, "biz-1").Return(expenses, nil)
}

func (s *DashboardServiceTestSuite) TestSummary_AggregatesByStatus() {
	s.stubWorkingSet(
		[]domain.Invoice{
			{InvoiceID: "INV-1", Status: domain.InvoiceStatusPaid, Total: dec("1000")},
			{InvoiceID: "INV-2", Status: domain.InvoiceStatusSent, Total: dec("400")},
			{InvoiceID: "INV-3", Status: domain.InvoiceStatusDraft, Total: dec("9999")},
		},
		[]domain.Expense{
			{ExpenseID: "exp-1", Amount: dec("150.25")},
			{ExpenseID: "exp-2", Amount: dec("49.75")},
		},
	)

	summary, err := s.service.Summary(s.ctx, "biz-1")

	s.NoError(err)
	s.Equal("1000", summary.TotalIncome.String())
	s.Equal("400", summary.PendingIncome.String())
	s.Equal("200", summary.TotalExpenses.String())
	s.Equal("800", summary.NetProfit.String())
}

func (s *DashboardServiceTestSuite) TestSummary_UnknownBusiness() {
	s.mockBusinessRepo.On("FindBusinessByID", s.ctx, "missing").Return(nil, apperrors.ErrNotFound)

	_, err := s.service.Summary(s.ctx, "missing")

	s.ErrorIs(err, apperrors.ErrNotFound)
	s.mockInvoiceRepo.AssertNotCalled(s.T(), "ListInvoices")
}

func (s *DashboardServiceTestSuite) TestAdvise_BuildsContextFromAggregates() {
	s.stubWorkingSet(
		[]domain.Invoice{
			{InvoiceID: "INV-1", Status: domain.InvoiceStatusPaid, Total: dec("5000")},
			{InvoiceID: "INV-2", Status: domain.InvoiceStatusSent, Total: dec("1200.5")},
		},
		[]domain.Expense{{ExpenseID: "exp-1", Amount: dec("340")}},
	)
	s.mockBudgetRepo.On("ListBudgets", s.ctx, "biz-1").
		Return([]domain.ProjectBudget{{BudgetID: "bud-1"}, {BudgetID: "bud-2"}}, nil)

	wantContext := "Context: Acme Studio. Income: $5000.00. Expenses: $340.00. AR: $1200.50. Projects: 2. Advise on optimization."
	s.mockAdvisor.On("GetAdvice", s.ctx, wantContext).
		Return("Chase the outstanding receivable before quarter end.", nil)

	advice, err := s.service.Advise(s.ctx, "biz-1")

	s.NoError(err)
	s.Equal("Chase the outstanding receivable before quarter end.", advice)
	s.mockAdvisor.AssertExpectations(s.T())
}

func (s *DashboardServiceTestSuite) TestAdvise_ProviderFailureDegradesToEmpty() {
	s.stubWorkingSet(nil, nil)
	s.mockBudgetRepo.On("ListBudgets", s.ctx, "biz-1").Return(nil, nil)
	s.mockAdvisor.On("GetAdvice", s.ctx, mock.Anything).
		Return("", errors.New("upstream timeout"))

	advice, err := s.service.Advise(s.ctx, "biz-1")

	s.NoError(err)
	s.Empty(advice)
}

func (s *DashboardServiceTestSuite) TestAdvise_NoAdvisorConfigured() {
	noAdvisor := services.NewDashboardService(
		s.mockBusinessRepo, s.mockInvoiceRepo, s.mockExpenseRepo, s.mockBudgetRepo, nil)
	s.stubWorkingSet(nil, nil)
	s.mockBudgetRepo.On("ListBudgets", s.ctx, "biz-1").Return(nil, nil)

	advice, err := noAdvisor.Advise(s.ctx, "biz-1")

	s.NoError(err)
	s.Empty(advice)
}

func (s *DashboardServiceTestSuite) TestMarketTrends_PassesQueryThrough() {
	s.mockAdvisor.On("Search", s.ctx, "freelance design rates 2025").
		Return(&domain.MarketSearchResult{
			Text:    "Rates are up year over year.",
			Sources: []domain.Citation{{URI: "https://example.com/report", Title: "Rate Report"}},
		}, nil)

	result, err := s.service.MarketTrends(s.ctx, "freelance design rates 2025")

	s.NoError(err)
	s.Equal("Rates are up year over year.", result.Text)
	s.Len(result.Sources, 1)
}

func (s *DashboardServiceTestSuite) TestMarketTrends_FailureDegradesToEmptyResult() {
	s.mockAdvisor.On("Search", s.ctx, "anything").
		Return(nil, errors.New("upstream timeout"))

	result, err := s.service.MarketTrends(s.ctx, "anything")

	s.NoError(err)
	s.Empty(result.Text)
	s.NotNil(result.Sources)
	s.Empty(result.Sources)
}

func TestDashboardService(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}
