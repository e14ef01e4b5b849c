package repositories

import (
	"context"

	"github.com/baatie/controllerpro/internal/core/domain"
)

// ClientReader defines read operations for client data.
type ClientReader interface {
	// FindClientByID retrieves a specific client by its ID.
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// ListClients retrieves clients owned by businessID. An empty
	// businessID returns the full cross-tenant set; only the system-wide
	// export path uses that form.
	ListClients(ctx context.Context, businessID string) ([]domain.Client, error)
}

// ClientWriter defines write operations for client data.
type ClientWriter interface {
	// SaveClient persists a new client.
	SaveClient(ctx context.Context, client domain.Client) error

	// UpdateClient replaces a stored client in place. Callers send the
	// full entity; there is no partial patch.
	UpdateClient(ctx context.Context, client domain.Client) error

	// DeleteClient removes a client row. The integrity guard runs in the
	// service layer before this is called.
	DeleteClient(ctx context.Context, clientID string) error
}

// ClientRepositoryFacade combines all client-related repository interfaces.
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
}
