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

type ClientServiceTestSuite struct {
	suite.Suite
	mockClientRepo  *MockClientRepository
	mockInvoiceRepo *MockInvoiceRepository
	service         portssvc.ClientSvcFacade
	ctx             context.Context
}

func (s *ClientServiceTestSuite) SetupTest() {
	s.mockClientRepo = new(MockClientRepository)
	s.mockInvoiceRepo = new(MockInvoiceRepository)
	s.service = services.NewClientService(s.mockClientRepo, s.mockInvoiceRepo)
	s.ctx = context.Background()
}

func (s *ClientServiceTestSuite) TestCreateClient_GeneratesID() {
	s.mockClientRepo.On("SaveClient", s.ctx, mock.AnythingOfType("domain.Client")).Return(nil)

	created, err := s.service.CreateClient(s.ctx, domain.Client{
		BusinessID: "biz-1",
		Name:       "Globex",
	})

	s.NoError(err)
	s.NotEmpty(created.ClientID)
	s.NotNil(created.Representatives)
	s.mockClientRepo.AssertExpectations(s.T())
}

func (s *ClientServiceTestSuite) TestCreateClient_RequiresBusinessID() {
	_, err := s.service.CreateClient(s.ctx, domain.Client{Name: "Orphan"})

	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockClientRepo.AssertNotCalled(s.T(), "SaveClient")
}

func (s *ClientServiceTestSuite) TestUpdateClient_ReplacesFullEntity() {
	existing := &domain.Client{ClientID: "cl-1", BusinessID: "biz-1", Name: "Globex"}
	s.mockClientRepo.On("FindClientByID", s.ctx, "cl-1").Return(existing, nil)
	s.mockClientRepo.On("UpdateClient", s.ctx, mock.MatchedBy(func(c domain.Client) bool {
		// An update that drops representatives persists the empty set.
		return c.ClientID == "cl-1" && len(c.Representatives) == 0
	})).Return(nil)

	updated, err := s.service.UpdateClient(s.ctx, domain.Client{
		ClientID:   "cl-1",
		BusinessID: "biz-1",
		Name:       "Globex Intl",
	})

	s.NoError(err)
	s.Equal("Globex Intl", updated.Name)
	s.mockClientRepo.AssertExpectations(s.T())
}

func (s *ClientServiceTestSuite) TestDeleteClient_BlockedByInvoices() {
	existing := &domain.Client{ClientID: "cl-1", BusinessID: "biz-1", Name: "Globex"}
	s.mockClientRepo.On("FindClientByID", s.ctx, "cl-1").Return(existing, nil)
	s.mockInvoiceRepo.On("CountInvoicesByClientID", s.ctx, "cl-1").Return(3, nil)

	err := s.service.DeleteClient(s.ctx, "cl-1")

	s.ErrorIs(err, apperrors.ErrIntegrityBlock)
	s.Contains(err.Error(), "3 dependent invoice(s)")
	// The client row is left untouched.
	s.mockClientRepo.AssertNotCalled(s.T(), "DeleteClient")
}

func (s *ClientServiceTestSuite) TestDeleteClient_AllowedWithoutInvoices() {
	existing := &domain.Client{ClientID: "cl-1", BusinessID: "biz-1", Name: "Globex"}
	s.mockClientRepo.On("FindClientByID", s.ctx, "cl-1").Return(existing, nil)
	s.mockInvoiceRepo.On("CountInvoicesByClientID", s.ctx, "cl-1").Return(0, nil)
	s.mockClientRepo.On("DeleteClient", s.ctx, "cl-1").Return(nil)

	err := s.service.DeleteClient(s.ctx, "cl-1")

	s.NoError(err)
	s.mockClientRepo.AssertExpectations(s.T())
	s.mockInvoiceRepo.AssertExpectations(s.T())
}

func (s *ClientServiceTestSuite) TestDeleteClient_NotFound() {
	s.mockClientRepo.On("FindClientByID", s.ctx, "missing").Return(nil, apperrors.ErrNotFound)

	err := s.service.DeleteClient(s.ctx, "missing")

	s.ErrorIs(err, apperrors.ErrNotFound)
	s.mockInvoiceRepo.AssertNotCalled(s.T(), "CountInvoicesByClientID")
}

func TestClientService(t *testing.T) {
	suite.Run(t, new(ClientServiceTestSuite))
}
