package services

import (
	"context"

	"github.com/baatie/controllerpro/internal/core/domain"
)

// ClientSvcFacade defines operations on clients.
type ClientSvcFacade interface {
	// FindClientByID retrieves a specific client by its ID.
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// ListClients retrieves clients scoped to businessID; empty businessID
	// returns the cross-tenant set (export only).
	ListClients(ctx context.Context, businessID string) ([]domain.Client, error)

	// CreateClient persists a new client.
	CreateClient(ctx context.Context, client domain.Client) (*domain.Client, error)

	// UpdateClient replaces a client in place. The caller sends the full
	// entity; edits never merge with stored fields.
	UpdateClient(ctx context.Context, client domain.Client) (*domain.Client, error)

	// DeleteClient removes a client unless any invoice anywhere in the
	// system references it, in which case it fails with
	// apperrors.ErrIntegrityBlock and the client is left untouched.
	DeleteClient(ctx context.Context, clientID string) error
}
