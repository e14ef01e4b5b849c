package services_test

import (
	"context"
	"testing"

	"github.com/baatie/controllerpro/internal/apperrors"
	"github.com/baatie/controllerpro/internal/core/domain"
	portssvc "github.com/baatie/controllerpro/internal/core/ports/services"
	"github.com/baatie/controllerpro/internal/core/services"
	"github.com/baatie/controllerpro/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
	ctx      context.Context
}

func (s *UserServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockUserRepository)
	s.service = services.NewUserService(s.mockRepo)
	s.ctx = context.Background()
}

func (s *UserServiceTestSuite) TestRegister_HashesPassword() {
	s.mockRepo.On("FindUserByUsername", s.ctx, "freya").Return(nil, apperrors.ErrNotFound)
	s.mockRepo.On("SaveUser", s.ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "freya" &&
			u.PasswordHash != "hunter22" &&
			utils.CheckPasswordHash("hunter22", u.PasswordHash)
	})).Return(nil)

	user, err := s.service.Register(s.ctx, "freya", "hunter22")

	s.NoError(err)
	s.NotEmpty(user.UserID)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestRegister_RejectsTakenUsername() {
	s.mockRepo.On("FindUserByUsername", s.ctx, "freya").
		Return(&domain.User{UserID: "u-1", Username: "freya"}, nil)

	_, err := s.service.Register(s.ctx, "freya", "hunter22")

	s.ErrorIs(err, apperrors.ErrDuplicate)
	s.mockRepo.AssertNotCalled(s.T(), "SaveUser")
}

func (s *UserServiceTestSuite) TestRegister_RejectsShortPassword() {
	_, err := s.service.Register(s.ctx, "freya", "abc")

	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockRepo.AssertNotCalled(s.T(), "FindUserByUsername")
}

func (s *UserServiceTestSuite) TestAuthenticate_Succeeds() {
	hash, err := utils.HashPassword("hunter22")
	s.Require().NoError(err)
	s.mockRepo.On("FindUserByUsername", s.ctx, "freya").
		Return(&domain.User{UserID: "u-1", Username: "freya", PasswordHash: hash}, nil)

	user, err := s.service.Authenticate(s.ctx, "freya", "hunter22")

	s.NoError(err)
	s.Equal("u-1", user.UserID)
}

func (s *UserServiceTestSuite) TestAuthenticate_WrongPasswordLooksLikeUnknownUser() {
	hash, err := utils.HashPassword("hunter22")
	s.Require().NoError(err)
	s.mockRepo.On("FindUserByUsername", s.ctx, "freya").
		Return(&domain.User{UserID: "u-1", Username: "freya", PasswordHash: hash}, nil)

	_, err = s.service.Authenticate(s.ctx, "freya", "wrong")

	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *UserServiceTestSuite) TestAuthenticate_UnknownUser() {
	s.mockRepo.On("FindUserByUsername", s.ctx, "ghost").Return(nil, apperrors.ErrNotFound)

	_, err := s.service.Authenticate(s.ctx, "ghost", "hunter22")

	s.ErrorIs(err, apperrors.ErrNotFound)
}

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
