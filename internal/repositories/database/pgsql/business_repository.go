package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/baatie/controllerpro/internal/apperrors"
	"github.com/baatie/controllerpro/internal/core/domain"
	portsrepo "github.com/baatie/controllerpro/internal/core/ports/repositories"
	"github.com/baatie/controllerpro/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxBusinessRepository persists business profiles.
type PgxBusinessRepository struct {
	BaseRepository
}

func newPgxBusinessRepository(pool *pgxpool.Pool) portsrepo.BusinessRepositoryFacade {
	return &PgxBusinessRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.BusinessRepositoryFacade = (*PgxBusinessRepository)(nil)

func toModelBusiness(d domain.BusinessProfile) (models.Business, error) {
	categories, err := json.Marshal(d.ExpenseCategories)
	if err != nil {
		return models.Business{}, fmt.Errorf("failed to marshal expense categories: %w", err)
	}
	theming, err := json.Marshal(d.Theming)
	if err != nil {
		return models.Business{}, fmt.Errorf("failed to marshal theming: %w", err)
	}
	return models.Business{
		BusinessID:        d.BusinessID,
		Name:              d.Name,
		LogoURL:           d.LogoURL,
		PhoneNumber:       d.PhoneNumber,
		Address:           d.Address,
		TaxID:             d.TaxID,
		DefaultNetDays:    d.DefaultNetDays,
		ExpenseCategories: categories,
		Theming:           theming,
		TemplateURL:       d.TemplateURL,
	}, nil
}

func toDomainBusiness(m models.Business) (domain.BusinessProfile, error) {
	d := domain.BusinessProfile{
		BusinessID:     m.BusinessID,
		Name:           m.Name,
		LogoURL:        m.LogoURL,
		PhoneNumber:    m.PhoneNumber,
		Address:        m.Address,
		TaxID:          m.TaxID,
		DefaultNetDays: m.DefaultNetDays,
		TemplateURL:    m.TemplateURL,
	}
	if err := json.Unmarshal(m.ExpenseCategories, &d.ExpenseCategories); err != nil {
		return d, fmt.Errorf("failed to parse expense categories for business %s: %w", m.BusinessID, err)
	}
	if err := json.Unmarshal(m.Theming, &d.Theming); err != nil {
		return d, fmt.Errorf("failed to parse theming for business %s: %w", m.BusinessID, err)
	}
	return d, nil
}

// SaveBusiness inserts a new business profile.
func (r *PgxBusinessRepository) SaveBusiness(ctx context.Context, business domain.BusinessProfile) error {
	m, err := toModelBusiness(business)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO businesses (business_id, name, logo_url, phone_number, address, tax_id, default_net_days, expense_categories, theming, template_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = r.Pool.Exec(ctx, query,
		m.BusinessID, m.Name, m.LogoURL, m.PhoneNumber, m.Address,
		m.TaxID, m.DefaultNetDays, m.ExpenseCategories, m.Theming, m.TemplateURL,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: business with ID %s already exists", apperrors.ErrDuplicate, m.BusinessID)
		}
		return fmt.Errorf("failed to save business %s: %w", m.BusinessID, err)
	}
	return nil
}

// UpdateBusiness replaces a stored business profile in place.
func (r *PgxBusinessRepository) UpdateBusiness(ctx context.Context, business domain.BusinessProfile) error {
	m, err := toModelBusiness(business)
	if err != nil {
		return err
	}

	query := `
		UPDATE businesses
		SET name = $2, logo_url = $3, phone_number = $4, address = $5, tax_id = $6,
		    default_net_days = $7, expense_categories = $8, theming = $9, template_url = $10
		WHERE business_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.BusinessID, m.Name, m.LogoURL, m.PhoneNumber, m.Address,
		m.TaxID, m.DefaultNetDays, m.ExpenseCategories, m.Theming, m.TemplateURL,
	)
	if err != nil {
		return fmt.Errorf("failed to update business %s: %w", m.BusinessID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindBusinessByID retrieves a business profile by its ID.
func (r *PgxBusinessRepository) FindBusinessByID(ctx context.Context, businessID string) (*domain.BusinessProfile, error) {
	query := `
		SELECT business_id, name, logo_url, phone_number, address, tax_id, default_net_days, expense_categories, theming, template_url
		FROM businesses
		WHERE business_id = $1;
	`
	var m models.Business
	err := r.Pool.QueryRow(ctx, query, businessID).Scan(
		&m.BusinessID, &m.Name, &m.LogoURL, &m.PhoneNumber, &m.Address,
		&m.TaxID, &m.DefaultNetDays, &m.ExpenseCategories, &m.Theming, &m.TemplateURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find business %s: %w", businessID, err)
	}

	d, err := toDomainBusiness(m)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ListBusinesses retrieves every business profile.
func (r *PgxBusinessRepository) ListBusinesses(ctx context.Context) ([]domain.BusinessProfile, error) {
	query := `
		SELECT business_id, name, logo_url, phone_number, address, tax_id, default_net_days, expense_categories, theming, template_url
		FROM businesses
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list businesses: %w", err)
	}
	defer rows.Close()

	var businesses []domain.BusinessProfile
	for rows.Next() {
		var m models.Business
		if err := rows.Scan(
			&m.BusinessID, &m.Name, &m.LogoURL, &m.PhoneNumber, &m.Address,
			&m.TaxID, &m.DefaultNetDays, &m.ExpenseCategories, &m.Theming, &m.TemplateURL,
		); err != nil {
			return nil, fmt.Errorf("failed to scan business: %w", err)
		}
		d, err := toDomainBusiness(m)
		if err != nil {
			return nil, err
		}
		businesses = append(businesses, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating businesses: %w", err)
	}
	return businesses, nil
}

// CountBusinesses returns the number of business profiles in the system.
func (r *PgxBusinessRepository) CountBusinesses(ctx context.Context) (int, error) {
	var count int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM businesses;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count businesses: %w", err)
	}
	return count, nil
}

// DeleteBusinessCascade removes a business and everything it owns inside
// one transaction, so an interrupted cascade never leaves orphaned rows.
func (r *PgxBusinessRepository) DeleteBusinessCascade(ctx context.Context, businessID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	// Dependents first, root last.
	for _, table := range []string{"budgets", "expenses", "invoices", "clients"} {
		if _, err := tx.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE business_id = $1;`, table), businessID); err != nil {
			return fmt.Errorf("failed to cascade delete %s for business %s: %w", table, businessID, err)
		}
	}

	tag, err := tx.Exec(ctx, `DELETE FROM businesses WHERE business_id = $1;`, businessID)
	if err != nil {
		return fmt.Errorf("failed to delete business %s: %w", businessID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}
