package services

import (
	"errors"
	"fmt"
	"log/slog"

	"context"

	"github.com/baatie/controllerpro/internal/apperrors"
	"github.com/baatie/controllerpro/internal/core/domain"
	portsrepo "github.com/baatie/controllerpro/internal/core/ports/repositories"
	portssvc "github.com/baatie/controllerpro/internal/core/ports/services"
	"github.com/google/uuid"
)

// businessService implements the BusinessSvcFacade interface.
type businessService struct {
	BaseService
	businessRepo portsrepo.BusinessRepositoryFacade
}

// NewBusinessService creates a new business service with the provided dependencies.
func NewBusinessService(businessRepo portsrepo.BusinessRepositoryFacade) portssvc.BusinessSvcFacade {
	return &businessService{businessRepo: businessRepo}
}

// Ensure businessService implements the BusinessSvcFacade interface.
var _ portssvc.BusinessSvcFacade = (*businessService)(nil)

// FindBusinessByID retrieves a business profile by its ID.
func (s *businessService) FindBusinessByID(ctx context.Context, businessID string) (*domain.BusinessProfile, error) {
	business, err := s.businessRepo.FindBusinessByID(ctx, businessID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find business by ID",
				slog.String("business_id", businessID))
		}
		return nil, err
	}
	return business, nil
}

// ListBusinesses retrieves every business profile in the system.
func (s *businessService) ListBusinesses(ctx context.Context) ([]domain.BusinessProfile, error) {
	businesses, err := s.businessRepo.ListBusinesses(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list businesses")
		return nil, err
	}
	if businesses == nil {
		return []domain.BusinessProfile{}, nil
	}
	return businesses, nil
}

// CreateBusiness persists a new business profile.
func (s *businessService) CreateBusiness(ctx context.Context, business domain.BusinessProfile) (*domain.BusinessProfile, error) {
	if business.Name == "" {
		return nil, fmt.Errorf("%w: business name is required", apperrors.ErrValidation)
	}
	if business.DefaultNetDays < 0 {
		return nil, fmt.Errorf("%w: default net days cannot be negative", apperrors.ErrValidation)
	}
	if business.BusinessID == "" {
		business.BusinessID = uuid.NewString()
	}
	if business.ExpenseCategories == nil {
		business.ExpenseCategories = []string{}
	}

	if err := s.businessRepo.SaveBusiness(ctx, business); err != nil {
		s.LogError(ctx, err, "Failed to save business",
			slog.String("business_id", business.BusinessID))
		return nil, err
	}

	s.LogInfo(ctx, "Business created successfully",
		slog.String("business_id", business.BusinessID),
		slog.String("name", business.Name))
	return &business, nil
}

// UpdateBusiness replaces a stored business profile in place.
func (s *businessService) UpdateBusiness(ctx context.Context, business domain.BusinessProfile) (*domain.BusinessProfile, error) {
	if business.BusinessID == "" {
		return nil, fmt.Errorf("%w: business id is required", apperrors.ErrValidation)
	}
	if business.Name == "" {
		return nil, fmt.Errorf("%w: business name is required", apperrors.ErrValidation)
	}

	if _, err := s.businessRepo.FindBusinessByID(ctx, business.BusinessID); err != nil {
		return nil, err
	}

	if err := s.businessRepo.UpdateBusiness(ctx, business); err != nil {
		s.LogError(ctx, err, "Failed to update business",
			slog.String("business_id", business.BusinessID))
		return nil, err
	}

	s.LogInfo(ctx, "Business updated successfully",
		slog.String("business_id", business.BusinessID))
	return &business, nil
}

// DeleteBusiness removes a business profile and all records it owns. The
// last remaining profile can never be deleted: that is a cardinality
// invariant, independent of whether the profile has dependent data. On
// success the first remaining profile is returned so callers can re-select
// deterministically.
func (s *businessService) DeleteBusiness(ctx context.Context, businessID string) (*domain.BusinessProfile, error) {
	if _, err := s.businessRepo.FindBusinessByID(ctx, businessID); err != nil {
		return nil, err
	}

	count, err := s.businessRepo.CountBusinesses(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to count businesses")
		return nil, err
	}
	if count <= 1 {
		s.LogInfo(ctx, "Refused to delete the last remaining business",
			slog.String("business_id", businessID))
		return nil, apperrors.ErrLastBusiness
	}

	// The cascade spans five tables and runs as a single transaction in
	// the repository; an interrupted cascade must not leave orphans.
	if err := s.businessRepo.DeleteBusinessCascade(ctx, businessID); err != nil {
		s.LogError(ctx, err, "Failed to cascade delete business",
			slog.String("business_id", businessID))
		return nil, err
	}

	s.LogInfo(ctx, "Business deleted with all owned records",
		slog.String("business_id", businessID))

	remaining, err := s.businessRepo.ListBusinesses(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list businesses after delete")
		return nil, err
	}
	if len(remaining) == 0 {
		// Unreachable given the cardinality guard above.
		return nil, apperrors.ErrNotFound
	}
	return &remaining[0], nil
}
