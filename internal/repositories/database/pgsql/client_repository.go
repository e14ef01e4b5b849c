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

// PgxClientRepository persists clients.
type PgxClientRepository struct {
	BaseRepository
}

func newPgxClientRepository(pool *pgxpool.Pool) portsrepo.ClientRepositoryFacade {
	return &PgxClientRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ClientRepositoryFacade = (*PgxClientRepository)(nil)

func toModelClient(d domain.Client) (models.Client, error) {
	reps, err := json.Marshal(d.Representatives)
	if err != nil {
		return models.Client{}, fmt.Errorf("failed to marshal representatives: %w", err)
	}
	return models.Client{
		ClientID:        d.ClientID,
		BusinessID:      d.BusinessID,
		Name:            d.Name,
		Address:         d.Address,
		Representatives: reps,
	}, nil
}

func toDomainClient(m models.Client) (domain.Client, error) {
	d := domain.Client{
		ClientID:   m.ClientID,
		BusinessID: m.BusinessID,
		Name:       m.Name,
		Address:    m.Address,
	}
	if err := json.Unmarshal(m.Representatives, &d.Representatives); err != nil {
		return d, fmt.Errorf("failed to parse representatives for client %s: %w", m.ClientID, err)
	}
	return d, nil
}

// SaveClient inserts a new client.
func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	m, err := toModelClient(client)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO clients (client_id, business_id, name, address, representatives)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err = r.Pool.Exec(ctx, query, m.ClientID, m.BusinessID, m.Name, m.Address, m.Representatives)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: client with ID %s already exists", apperrors.ErrDuplicate, m.ClientID)
		}
		return fmt.Errorf("failed to save client %s: %w", m.ClientID, err)
	}
	return nil
}

// UpdateClient replaces a stored client in place. One statement, so an
// interrupted edit can no longer lose the row the way delete-then-recreate
// could.
func (r *PgxClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	m, err := toModelClient(client)
	if err != nil {
		return err
	}

	query := `
		UPDATE clients
		SET business_id = $2, name = $3, address = $4, representatives = $5
		WHERE client_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, m.ClientID, m.BusinessID, m.Name, m.Address, m.Representatives)
	if err != nil {
		return fmt.Errorf("failed to update client %s: %w", m.ClientID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindClientByID retrieves a client by its ID.
func (r *PgxClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	query := `
		SELECT client_id, business_id, name, address, representatives
		FROM clients
		WHERE client_id = $1;
	`
	var m models.Client
	err := r.Pool.QueryRow(ctx, query, clientID).Scan(&m.ClientID, &m.BusinessID, &m.Name, &m.Address, &m.Representatives)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find client %s: %w", clientID, err)
	}

	d, err := toDomainClient(m)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ListClients retrieves clients scoped to a business; an empty businessID
// returns every client in the system.
func (r *PgxClientRepository) ListClients(ctx context.Context, businessID string) ([]domain.Client, error) {
	query := `
		SELECT client_id, business_id, name, address, representatives
		FROM clients
	`
	args := []any{}
	if businessID != "" {
		query += ` WHERE business_id = $1`
		args = append(args, businessID)
	}
	query += ` ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	var clients []domain.Client
	for rows.Next() {
		var m models.Client
		if err := rows.Scan(&m.ClientID, &m.BusinessID, &m.Name, &m.Address, &m.Representatives); err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		d, err := toDomainClient(m)
		if err != nil {
			return nil, err
		}
		clients = append(clients, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating clients: %w", err)
	}
	return clients, nil
}

// DeleteClient removes a client row.
func (r *PgxClientRepository) DeleteClient(ctx context.Context, clientID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM clients WHERE client_id = $1;`, clientID)
	if err != nil {
		return fmt.Errorf("failed to delete client %s: %w", clientID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
