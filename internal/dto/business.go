package dto

import (
	"github.com/baatie/controllerpro/internal/core/domain"
)

// --- Business profile DTOs ---

// InvoiceThemeDTO carries a business's invoice presentation settings.
type InvoiceThemeDTO struct {
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
	Layout         string `json:"layout" binding:"omitempty,oneof=executive svelte vanguard"`
	LetterheadURL  string `json:"letterheadUrl,omitempty"`
}

// CreateBusinessRequest defines data for creating a new business profile.
type CreateBusinessRequest struct {
	ID                string          `json:"id"` // Optional, generated when empty
	Name              string          `json:"name" binding:"required"`
	LogoURL           string          `json:"logoUrl"`
	PhoneNumber       string          `json:"phoneNumber"`
	Address           string          `json:"address"`
	TaxID             string          `json:"taxId"`
	DefaultNetDays    int             `json:"defaultNetDays" binding:"omitempty,min=0"`
	ExpenseCategories []string        `json:"expenseCategories"`
	Theming           InvoiceThemeDTO `json:"theming"`
	TemplateURL       string          `json:"templateUrl"`
}

// UpdateBusinessRequest defines data for replacing a business profile.
// The full entity is sent; there is no partial patch.
type UpdateBusinessRequest struct {
	Name              string          `json:"name" binding:"required"`
	LogoURL           string          `json:"logoUrl"`
	PhoneNumber       string          `json:"phoneNumber"`
	Address           string          `json:"address"`
	TaxID             string          `json:"taxId"`
	DefaultNetDays    int             `json:"defaultNetDays" binding:"omitempty,min=0"`
	ExpenseCategories []string        `json:"expenseCategories"`
	Theming           InvoiceThemeDTO `json:"theming"`
	TemplateURL       string          `json:"templateUrl"`
}

// BusinessResponse defines data returned for a business profile.
type BusinessResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	LogoURL           string          `json:"logoUrl,omitempty"`
	PhoneNumber       string          `json:"phoneNumber,omitempty"`
	Address           string          `json:"address"`
	TaxID             string          `json:"taxId"`
	DefaultNetDays    int             `json:"defaultNetDays"`
	ExpenseCategories []string        `json:"expenseCategories"`
	Theming           InvoiceThemeDTO `json:"theming"`
	TemplateURL       string          `json:"templateUrl,omitempty"`
}

// ToDomainBusiness converts a create request into the domain entity.
func (r CreateBusinessRequest) ToDomainBusiness() domain.BusinessProfile {
	return domain.BusinessProfile{
		BusinessID:        r.ID,
		Name:              r.Name,
		LogoURL:           r.LogoURL,
		PhoneNumber:       r.PhoneNumber,
		Address:           r.Address,
		TaxID:             r.TaxID,
		DefaultNetDays:    r.DefaultNetDays,
		ExpenseCategories: r.ExpenseCategories,
		Theming:           domain.InvoiceTheme(r.Theming),
		TemplateURL:       r.TemplateURL,
	}
}

// ToDomainBusiness converts an update request into the domain entity.
func (r UpdateBusinessRequest) ToDomainBusiness(businessID string) domain.BusinessProfile {
	return domain.BusinessProfile{
		BusinessID:        businessID,
		Name:              r.Name,
		LogoURL:           r.LogoURL,
		PhoneNumber:       r.PhoneNumber,
		Address:           r.Address,
		TaxID:             r.TaxID,
		DefaultNetDays:    r.DefaultNetDays,
		ExpenseCategories: r.ExpenseCategories,
		Theming:           domain.InvoiceTheme(r.Theming),
		TemplateURL:       r.TemplateURL,
	}
}

// ToBusinessResponse converts domain.BusinessProfile to DTO.
func ToBusinessResponse(b *domain.BusinessProfile) BusinessResponse {
	categories := b.ExpenseCategories
	if categories == nil {
		categories = []string{}
	}
	return BusinessResponse{
		ID:                b.BusinessID,
		Name:              b.Name,
		LogoURL:           b.LogoURL,
		PhoneNumber:       b.PhoneNumber,
		Address:           b.Address,
		TaxID:             b.TaxID,
		DefaultNetDays:    b.DefaultNetDays,
		ExpenseCategories: categories,
		Theming:           InvoiceThemeDTO(b.Theming),
		TemplateURL:       b.TemplateURL,
	}
}

// ListBusinessesResponse wraps a list of business profiles.
type ListBusinessesResponse struct {
	Businesses []BusinessResponse `json:"businesses"`
}

// ToListBusinessesResponse converts a slice of domain.BusinessProfile to DTO.
func ToListBusinessesResponse(bs []domain.BusinessProfile) ListBusinessesResponse {
	list := make([]BusinessResponse, len(bs))
	for i, b := range bs {
		list[i] = ToBusinessResponse(&b)
	}
	return ListBusinessesResponse{Businesses: list}
}

// DeleteBusinessResponse reports the cascade outcome together with the next
// business the caller should select.
type DeleteBusinessResponse struct {
	DeletedID            string `json:"deletedId"`
	NextActiveBusinessID string `json:"nextActiveBusinessId"`
}
