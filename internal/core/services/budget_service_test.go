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

type BudgetServiceTestSuite struct {
	suite.Suite
	mockRepo *MockBudgetRepository
	service  portssvc.BudgetSvcFacade
	ctx      context.Context
}

func (s *BudgetServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockBudgetRepository)
	s.service = services.NewBudgetService(s.mockRepo)
	s.ctx = context.Background()
}

func (s *BudgetServiceTestSuite) TestCreateBudget_ClassifiesOnTrack() {
	s.mockRepo.On("SaveBudget", s.ctx, mock.AnythingOfType("domain.ProjectBudget")).Return(nil)

	created, err := s.service.CreateBudget(s.ctx, domain.ProjectBudget{
		BusinessID:  "biz-1",
		Name:        "Website relaunch",
		TotalBudget: dec("10000"),
		Spent:       dec("4000"),
	})

	s.NoError(err)
	s.NotEmpty(created.BudgetID)
	s.Equal(domain.BudgetStatusOnTrack, created.Status)
}

func (s *BudgetServiceTestSuite) TestCreateBudget_ClassifiesAtRisk() {
	s.mockRepo.On("SaveBudget", s.ctx, mock.AnythingOfType("domain.ProjectBudget")).Return(nil)

	created, err := s.service.CreateBudget(s.ctx, domain.ProjectBudget{
		BusinessID:  "biz-1",
		Name:        "Rebrand",
		TotalBudget: dec("10000"),
		Spent:       dec("8600"),
	})

	s.NoError(err)
	s.Equal(domain.BudgetStatusAtRisk, created.Status)
}

func (s *BudgetServiceTestSuite) TestCreateBudget_ClassifiesOverBudget() {
	s.mockRepo.On("SaveBudget", s.ctx, mock.AnythingOfType("domain.ProjectBudget")).Return(nil)

	created, err := s.service.CreateBudget(s.ctx, domain.ProjectBudget{
		BusinessID:  "biz-1",
		Name:        "Office move",
		TotalBudget: dec("5000"),
		Spent:       dec("5500"),
	})

	s.NoError(err)
	s.Equal(domain.BudgetStatusOverBudget, created.Status)
}

func (s *BudgetServiceTestSuite) TestCreateBudget_RoundsAmounts() {
	s.mockRepo.On("SaveBudget", s.ctx, mock.MatchedBy(func(b domain.ProjectBudget) bool {
		return b.TotalBudget.Equal(dec("1000.13")) && b.Spent.Equal(dec("250.5"))
	})).Return(nil)

	_, err := s.service.CreateBudget(s.ctx, domain.ProjectBudget{
		BusinessID:  "biz-1",
		Name:        "Tooling",
		TotalBudget: dec("1000.125"),
		Spent:       dec("250.495"),
	})

	s.NoError(err)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *BudgetServiceTestSuite) TestCreateBudget_RequiresPositiveTotal() {
	_, err := s.service.CreateBudget(s.ctx, domain.ProjectBudget{
		BusinessID:  "biz-1",
		Name:        "Empty",
		TotalBudget: dec("0"),
	})

	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockRepo.AssertNotCalled(s.T(), "SaveBudget")
}

func (s *BudgetServiceTestSuite) TestUpdateBudget_KeepsSuppliedStatus() {
	existing := &domain.ProjectBudget{BudgetID: "bud-1", BusinessID: "biz-1"}
	s.mockRepo.On("FindBudgetByID", s.ctx, "bud-1").Return(existing, nil)
	s.mockRepo.On("UpdateBudget", s.ctx, mock.AnythingOfType("domain.ProjectBudget")).Return(nil)

	// Spend is over the total, but the caller's stored status wins on
	// update so the divergence stays visible to readers.
	updated, err := s.service.UpdateBudget(s.ctx, domain.ProjectBudget{
		BudgetID:    "bud-1",
		BusinessID:  "biz-1",
		Name:        "Office move",
		TotalBudget: dec("5000"),
		Spent:       dec("6000"),
		Status:      domain.BudgetStatusOnTrack,
	})

	s.NoError(err)
	s.Equal(domain.BudgetStatusOnTrack, updated.Status)
}

func (s *BudgetServiceTestSuite) TestUpdateBudget_ClassifiesWhenStatusOmitted() {
	existing := &domain.ProjectBudget{BudgetID: "bud-1", BusinessID: "biz-1"}
	s.mockRepo.On("FindBudgetByID", s.ctx, "bud-1").Return(existing, nil)
	s.mockRepo.On("UpdateBudget", s.ctx, mock.AnythingOfType("domain.ProjectBudget")).Return(nil)

	updated, err := s.service.UpdateBudget(s.ctx, domain.ProjectBudget{
		BudgetID:    "bud-1",
		BusinessID:  "biz-1",
		Name:        "Office move",
		TotalBudget: dec("5000"),
		Spent:       dec("6000"),
	})

	s.NoError(err)
	s.Equal(domain.BudgetStatusOverBudget, updated.Status)
}

func (s *BudgetServiceTestSuite) TestUpdateBudget_RejectsUnknownStatus() {
	_, err := s.service.UpdateBudget(s.ctx, domain.ProjectBudget{
		BudgetID:    "bud-1",
		BusinessID:  "biz-1",
		Name:        "Office move",
		TotalBudget: dec("5000"),
		Status:      "paused",
	})

	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockRepo.AssertNotCalled(s.T(), "UpdateBudget")
}

func (s *BudgetServiceTestSuite) TestDeleteBudget_NotFound() {
	s.mockRepo.On("FindBudgetByID", s.ctx, "missing").Return(nil, apperrors.ErrNotFound)

	err := s.service.DeleteBudget(s.ctx, "missing")

	s.ErrorIs(err, apperrors.ErrNotFound)
	s.mockRepo.AssertNotCalled(s.T(), "DeleteBudget")
}

func TestBudgetService(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}
