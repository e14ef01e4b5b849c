package services_test

import (
	"context"
	"testing"

	"github.com/baatie/controllerpro/internal/apperrors"
	"github.com/baatie/controllerpro/internal/core/domain"
	portssvc "github.com/baatie/controllerpro/internal/core/ports/services"
	"github.com/baatie/controllerpro/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BusinessServiceTestSuite struct {
	suite.Suite
	mockRepo *MockBusinessRepository
	service  portssvc.BusinessSvcFacade
	ctx      context.Context
}

func (s *BusinessServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockBusinessRepository)
	s.service = services.NewBusinessService(s.mockRepo)
	s.ctx = context.Background()
}

func (s *BusinessServiceTestSuite) TestCreateBusiness_GeneratesID() {
	s.mockRepo.On("SaveBusiness", s.ctx, mock.AnythingOfType("domain.BusinessProfile")).Return(nil)

	created, err := s.service.CreateBusiness(s.ctx, domain.BusinessProfile{Name: "Acme Consulting"})

	s.NoError(err)
	s.NotEmpty(created.BusinessID)
	s.Equal("Acme Consulting", created.Name)
	s.NotNil(created.ExpenseCategories)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *BusinessServiceTestSuite) TestCreateBusiness_KeepsSuppliedID() {
	s.mockRepo.On("SaveBusiness", s.ctx, mock.MatchedBy(func(b domain.BusinessProfile) bool {
		return b.BusinessID == "biz-1"
	})).Return(nil)

	created, err := s.service.CreateBusiness(s.ctx, domain.BusinessProfile{BusinessID: "biz-1", Name: "Acme"})

	s.NoError(err)
	s.Equal("biz-1", created.BusinessID)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *BusinessServiceTestSuite) TestCreateBusiness_RequiresName() {
	_, err := s.service.CreateBusiness(s.ctx, domain.BusinessProfile{})

	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockRepo.AssertNotCalled(s.T(), "SaveBusiness")
}

func (s *BusinessServiceTestSuite) TestDeleteBusiness_RefusesLastBusiness() {
	business := &domain.BusinessProfile{BusinessID: "biz-1", Name: "Solo"}
	s.mockRepo.On("FindBusinessByID", s.ctx, "biz-1").Return(business, nil)
	s.mockRepo.On("CountBusinesses", s.ctx).Return(1, nil)

	_, err := s.service.DeleteBusiness(s.ctx, "biz-1")

	s.ErrorIs(err, apperrors.ErrLastBusiness)
	s.mockRepo.AssertNotCalled(s.T(), "DeleteBusinessCascade")
}

func (s *BusinessServiceTestSuite) TestDeleteBusiness_CascadesAndReturnsNext() {
	doomed := &domain.BusinessProfile{BusinessID: "biz-2", Name: "Closing Shop"}
	survivor := domain.BusinessProfile{BusinessID: "biz-1", Name: "Acme"}
	s.mockRepo.On("FindBusinessByID", s.ctx, "biz-2").Return(doomed, nil)
	s.mockRepo.On("CountBusinesses", s.ctx).Return(2, nil)
	s.mockRepo.On("DeleteBusinessCascade", s.ctx, "biz-2").Return(nil)
	s.mockRepo.On("ListBusinesses", s.ctx).Return([]domain.BusinessProfile{survivor}, nil)

	next, err := s.service.DeleteBusiness(s.ctx, "biz-2")

	s.NoError(err)
	s.Equal("biz-1", next.BusinessID)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *BusinessServiceTestSuite) TestDeleteBusiness_NotFound() {
	s.mockRepo.On("FindBusinessByID", s.ctx, "missing").Return(nil, apperrors.ErrNotFound)

	_, err := s.service.DeleteBusiness(s.ctx, "missing")

	s.ErrorIs(err, apperrors.ErrNotFound)
	s.mockRepo.AssertNotCalled(s.T(), "DeleteBusinessCascade")
}

func (s *BusinessServiceTestSuite) TestUpdateBusiness_ChecksExistence() {
	s.mockRepo.On("FindBusinessByID", s.ctx, "missing").Return(nil, apperrors.ErrNotFound)

	_, err := s.service.UpdateBusiness(s.ctx, domain.BusinessProfile{BusinessID: "missing", Name: "Ghost"})

	s.ErrorIs(err, apperrors.ErrNotFound)
	s.mockRepo.AssertNotCalled(s.T(), "UpdateBusiness")
}

func (s *BusinessServiceTestSuite) TestListBusinesses_NilBecomesEmpty() {
	s.mockRepo.On("ListBusinesses", s.ctx).Return([]domain.BusinessProfile(nil), nil)

	businesses, err := s.service.ListBusinesses(s.ctx)

	s.NoError(err)
	assert.NotNil(s.T(), businesses)
	s.Empty(businesses)
}

func TestBusinessService(t *testing.T) {
	suite.Run(t, new(BusinessServiceTestSuite))
}
