package services_test

import (
	"context"
	"testing"

	"github.com/baatie/controllerpro/internal/apperrors"
	"github.com/baatie/controllerpro/internal/core/domain"
	portssvc "github.com/baatie/controllerpro/internal/core/ports/services"
	"github.com/baatie/controllerpro/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ExpenseServiceTestSuite struct {
	suite.Suite
	mockRepo *MockExpenseRepository
	service  portssvc.ExpenseSvcFacade
	ctx      context.Context
}

func (s *ExpenseServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockExpenseRepository)
	s.service = services.NewExpenseService(s.mockRepo)
	s.ctx = context.Background()
}

func (s *ExpenseServiceTestSuite) TestCreateExpense_GeneratesID() {
	s.mockRepo.On("SaveExpense", s.ctx, mock.AnythingOfType("domain.Expense")).Return(nil)

	created, err := s.service.CreateExpense(s.ctx, domain.Expense{
		BusinessID: "biz-1",
		Category:   "Software",
		Amount:     dec("49.99"),
	})

	s.NoError(err)
	s.NotEmpty(created.ExpenseID)
}

func (s *ExpenseServiceTestSuite) TestCreateExpense_StoresWeakLinksUnchecked() {
	// Project and invoice links are stored as given; no lookup happens even
	// when the targets do not exist.
	s.mockRepo.On("SaveExpense", s.ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.ProjectID == "bud-gone" && e.InvoiceID == "INV-gone"
	})).Return(nil)

	_, err := s.service.CreateExpense(s.ctx, domain.Expense{
		BusinessID: "biz-1",
		Category:   "Materials",
		Amount:     dec("120"),
		ProjectID:  "bud-gone",
		InvoiceID:  "INV-gone",
	})

	s.NoError(err)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *ExpenseServiceTestSuite) TestCreateExpense_RejectsNegativeAmount() {
	_, err := s.service.CreateExpense(s.ctx, domain.Expense{
		BusinessID: "biz-1",
		Amount:     dec("-5"),
	})

	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockRepo.AssertNotCalled(s.T(), "SaveExpense")
}

func (s *ExpenseServiceTestSuite) TestUpdateExpense_ChecksExistence() {
	s.mockRepo.On("FindExpenseByID", s.ctx, "exp-1").Return(nil, apperrors.ErrNotFound)

	_, err := s.service.UpdateExpense(s.ctx, domain.Expense{
		ExpenseID:  "exp-1",
		BusinessID: "biz-1",
		Amount:     dec("10"),
	})

	s.ErrorIs(err, apperrors.ErrNotFound)
	s.mockRepo.AssertNotCalled(s.T(), "UpdateExpense")
}

func (s *ExpenseServiceTestSuite) TestDeleteExpense_AlwaysPermitted() {
	s.mockRepo.On("FindExpenseByID", s.ctx, "exp-1").
		Return(&domain.Expense{ExpenseID: "exp-1", BusinessID: "biz-1"}, nil)
	s.mockRepo.On("DeleteExpense", s.ctx, "exp-1").Return(nil)

	err := s.service.DeleteExpense(s.ctx, "exp-1")

	s.NoError(err)
	s.mockRepo.AssertExpectations(s.T())
}

func TestExpenseService(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}
