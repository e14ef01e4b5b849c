package services

import (
	"context"

	"github.com/baatie/controllerpro/internal/core/domain"
)

// UserSvcFacade defines registration and credential checks.
type UserSvcFacade interface {
	// Register creates a new user with a hashed password. A taken
	// username fails with apperrors.ErrDuplicate.
	Register(ctx context.Context, username, password string) (*domain.User, error)

	// Authenticate verifies a username/password pair and returns the user
	// on success. Unknown users and wrong passwords are indistinguishable
	// to the caller.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
}
