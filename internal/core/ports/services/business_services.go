package services

import (
	"context"

	"github.com/baatie/controllerpro/internal/core/domain"
)

// BusinessReaderSvc defines read operations for business profiles.
type BusinessReaderSvc interface {
	// FindBusinessByID retrieves a specific business profile by its ID.
	FindBusinessByID(ctx context.Context, businessID string) (*domain.BusinessProfile, error)

	// ListBusinesses retrieves every business profile.
	ListBusinesses(ctx context.Context) ([]domain.BusinessProfile, error)
}

// BusinessWriterSvc defines write operations for business profiles.
type BusinessWriterSvc interface {
	// CreateBusiness persists a new business profile, generating an id
	// when the caller does not supply one.
	CreateBusiness(ctx context.Context, business domain.BusinessProfile) (*domain.BusinessProfile, error)

	// UpdateBusiness replaces a business profile in place.
	UpdateBusiness(ctx context.Context, business domain.BusinessProfile) (*domain.BusinessProfile, error)

	// DeleteBusiness removes a business profile and cascades over all of
	// its owned records. It refuses to delete the last remaining profile
	// (apperrors.ErrLastBusiness). On success it returns the next business
	// to select, so callers never point at a deleted id.
	DeleteBusiness(ctx context.Context, businessID string) (*domain.BusinessProfile, error)
}

// BusinessSvcFacade combines all business-related service interfaces.
type BusinessSvcFacade interface {
	BusinessReaderSvc
	BusinessWriterSvc
}
