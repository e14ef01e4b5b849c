package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/baatie/controllerpro/internal/apperrors"
	"github.com/baatie/controllerpro/internal/core/domain"
	portssvc "github.com/baatie/controllerpro/internal/core/ports/services"
	"github.com/baatie/controllerpro/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type InvoiceServiceTestSuite struct {
	suite.Suite
	mockInvoiceRepo  *MockInvoiceRepository
	mockBusinessRepo *MockBusinessRepository
	service          portssvc.InvoiceSvcFacade
	ctx              context.Context
	now              time.Time
}

func (s *InvoiceServiceTestSuite) SetupTest() {
	s.mockInvoiceRepo = new(MockInvoiceRepository)
	s.mockBusinessRepo = new(MockBusinessRepository)
	s.now = time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	s.service = services.NewInvoiceService(s.mockInvoiceRepo, s.mockBusinessRepo,
		services.WithClock(func() time.Time { return s.now }))
	s.ctx = context.Background()
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func (s *InvoiceServiceTestSuite) TestCreateInvoice_GeneratesTimeBasedID() {
	s.mockBusinessRepo.On("FindBusinessByID", s.ctx, "biz-1").
		Return(&domain.BusinessProfile{BusinessID: "biz-1", DefaultNetDays: 30}, nil)
	s.mockInvoiceRepo.On("SaveInvoice", s.ctx, mock.AnythingOfType("domain.Invoice")).Return(nil)

	created, err := s.service.CreateInvoice(s.ctx, domain.Invoice{
		BusinessID: "biz-1",
		ClientID:   "cl-1",
	})

	s.NoError(err)
	s.Equal("INV-1742040000000", created.InvoiceID)
	s.Equal(domain.InvoiceStatusDraft, created.Status)
}

func (s *InvoiceServiceTestSuite) TestCreateInvoice_KeepsSuppliedID() {
	s.mockInvoiceRepo.On("SaveInvoice", s.ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.InvoiceID == "INV-custom"
	})).Return(nil)

	created, err := s.service.CreateInvoice(s.ctx, domain.Invoice{
		InvoiceID:  "INV-custom",
		BusinessID: "biz-1",
		ClientID:   "cl-1",
		IssueDate:  s.now,
		DueDate:    s.now.AddDate(0, 0, 15),
	})

	s.NoError(err)
	s.Equal("INV-custom", created.InvoiceID)
	s.mockInvoiceRepo.AssertExpectations(s.T())
}

func (s *InvoiceServiceTestSuite) TestCreateInvoice_DerivesDueDateFromNetTerms() {
	s.mockBusinessRepo.On("FindBusinessByID", s.ctx, "biz-1").
		Return(&domain.BusinessProfile{BusinessID: "biz-1", DefaultNetDays: 45}, nil)
	s.mockInvoiceRepo.On("SaveInvoice", s.ctx, mock.AnythingOfType("domain.Invoice")).Return(nil)

	created, err := s.service.CreateInvoice(s.ctx, domain.Invoice{
		BusinessID: "biz-1",
		ClientID:   "cl-1",
	})

	s.NoError(err)
	s.Equal(s.now, created.IssueDate)
	s.Equal(s.now.AddDate(0, 0, 45), created.DueDate)
}

func (s *InvoiceServiceTestSuite) TestCreateInvoice_FallsBackToNet30() {
	s.mockBusinessRepo.On("FindBusinessByID", s.ctx, "biz-gone").
		Return(nil, apperrors.ErrNotFound)
	s.mockInvoiceRepo.On("SaveInvoice", s.ctx, mock.AnythingOfType("domain.Invoice")).Return(nil)

	created, err := s.service.CreateInvoice(s.ctx, domain.Invoice{
		BusinessID: "biz-gone",
		ClientID:   "cl-1",
	})

	s.NoError(err)
	s.Equal(s.now.AddDate(0, 0, 30), created.DueDate)
}

func (s *InvoiceServiceTestSuite) TestCreateInvoice_RecomputesTotal() {
	s.mockInvoiceRepo.On("SaveInvoice", s.ctx, mock.AnythingOfType("domain.Invoice")).Return(nil)

	created, err := s.service.CreateInvoice(s.ctx, domain.Invoice{
		InvoiceID:  "INV-1",
		BusinessID: "biz-1",
		ClientID:   "cl-1",
		IssueDate:  s.now,
		DueDate:    s.now,
		Items: []domain.LineItem{
			{Quantity: dec("1"), UnitPrice: dec("8500")},
			{Quantity: dec("2"), UnitPrice: dec("2000")},
		},
		TaxRate: dec("8.5"),
		Total:   dec("999999"), // caller-supplied total is overwritten
	})

	s.NoError(err)
	s.Equal("13562.5", created.Total.String())
}

func (s *InvoiceServiceTestSuite) TestCreateInvoice_InfersPaidStatus() {
	s.mockInvoiceRepo.On("SaveInvoice", s.ctx, mock.AnythingOfType("domain.Invoice")).Return(nil)

	created, err := s.service.CreateInvoice(s.ctx, domain.Invoice{
		InvoiceID:  "INV-1",
		BusinessID: "biz-1",
		ClientID:   "cl-1",
		IssueDate:  s.now,
		DueDate:    s.now,
		Status:     domain.InvoiceStatusDraft,
		Items:      []domain.LineItem{{Quantity: dec("1"), UnitPrice: dec("100")}},
		Payments:   []domain.PaymentRecord{{Amount: dec("100")}},
	})

	s.NoError(err)
	s.Equal(domain.InvoiceStatusPaid, created.Status)
}

func (s *InvoiceServiceTestSuite) TestCreateInvoice_InfersSentOnPartialPayment() {
	s.mockInvoiceRepo.On("SaveInvoice", s.ctx, mock.AnythingOfType("domain.Invoice")).Return(nil)

	created, err := s.service.CreateInvoice(s.ctx, domain.Invoice{
		InvoiceID:  "INV-1",
		BusinessID: "biz-1",
		ClientID:   "cl-1",
		IssueDate:  s.now,
		DueDate:    s.now,
		Status:     domain.InvoiceStatusDraft,
		Items:      []domain.LineItem{{Quantity: dec("1"), UnitPrice: dec("100")}},
		Payments:   []domain.PaymentRecord{{Amount: dec("40")}},
	})

	s.NoError(err)
	s.Equal(domain.InvoiceStatusSent, created.Status)
}

func (s *InvoiceServiceTestSuite) TestCreateInvoice_RejectsUnknownStatus() {
	_, err := s.service.CreateInvoice(s.ctx, domain.Invoice{
		BusinessID: "biz-1",
		ClientID:   "cl-1",
		Status:     "archived",
	})

	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockInvoiceRepo.AssertNotCalled(s.T(), "SaveInvoice")
}

func (s *InvoiceServiceTestSuite) TestUpdateInvoice_RederivesTotalAndStatus() {
	existing := &domain.Invoice{InvoiceID: "INV-1", BusinessID: "biz-1", ClientID: "cl-1"}
	s.mockInvoiceRepo.On("FindInvoiceByID", s.ctx, "INV-1").Return(existing, nil)
	s.mockInvoiceRepo.On("UpdateInvoice", s.ctx, mock.AnythingOfType("domain.Invoice")).Return(nil)

	updated, err := s.service.UpdateInvoice(s.ctx, domain.Invoice{
		InvoiceID:  "INV-1",
		BusinessID: "biz-1",
		ClientID:   "cl-1",
		IssueDate:  s.now,
		DueDate:    s.now,
		Status:     domain.InvoiceStatusDraft,
		Items:      []domain.LineItem{{Quantity: dec("2"), UnitPrice: dec("50")}},
		Payments:   []domain.PaymentRecord{{Amount: dec("100")}},
	})

	s.NoError(err)
	s.Equal("100", updated.Total.String())
	s.Equal(domain.InvoiceStatusPaid, updated.Status)
}

func (s *InvoiceServiceTestSuite) TestUpdateInvoice_NotFound() {
	s.mockInvoiceRepo.On("FindInvoiceByID", s.ctx, "missing").Return(nil, apperrors.ErrNotFound)

	_, err := s.service.UpdateInvoice(s.ctx, domain.Invoice{
		InvoiceID:  "missing",
		BusinessID: "biz-1",
		ClientID:   "cl-1",
	})

	s.ErrorIs(err, apperrors.ErrNotFound)
	s.mockInvoiceRepo.AssertNotCalled(s.T(), "UpdateInvoice")
}

func (s *InvoiceServiceTestSuite) TestDeleteInvoice_AlwaysPermitted() {
	existing := &domain.Invoice{InvoiceID: "INV-1", BusinessID: "biz-1", ClientID: "cl-1"}
	s.mockInvoiceRepo.On("FindInvoiceByID", s.ctx, "INV-1").Return(existing, nil)
	s.mockInvoiceRepo.On("DeleteInvoice", s.ctx, "INV-1").Return(nil)

	err := s.service.DeleteInvoice(s.ctx, "INV-1")

	s.NoError(err)
	s.mockInvoiceRepo.AssertExpectations(s.T())
}

func TestInvoiceService(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
