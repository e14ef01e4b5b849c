package repositories

import (
	"context"

	"github.com/baatie/controllerpro/internal/core/domain"
)

// BusinessReader defines read operations for business profiles.
type BusinessReader interface {
	// FindBusinessByID retrieves a specific business profile by its ID.
	FindBusinessByID(ctx context.Context, businessID string) (*domain.BusinessProfile, error)

	// ListBusinesses retrieves every business profile in the system.
	ListBusinesses(ctx context.Context) ([]domain.BusinessProfile, error)

	// CountBusinesses returns the number of business profiles in the system.
	CountBusinesses(ctx context.Context) (int, error)
}

// BusinessWriter defines write operations for business profiles.
type BusinessWriter interface {
	// SaveBusiness persists a new business profile.
	SaveBusiness(ctx context.Context, business domain.BusinessProfile) error

	// UpdateBusiness replaces a stored business profile in place.
	UpdateBusiness(ctx context.Context, business domain.BusinessProfile) error

	// DeleteBusinessCascade removes a business profile together with all of
	// its clients, invoices, expenses and budgets as a single transaction.
	// A partial cascade must never be left behind.
	DeleteBusinessCascade(ctx context.Context, businessID string) error
}

// BusinessRepositoryFacade combines all business-related repository interfaces.
type BusinessRepositoryFacade interface {
	BusinessReader
	BusinessWriter
}
