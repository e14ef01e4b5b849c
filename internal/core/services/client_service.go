package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/baatie/controllerpro/internal/apperrors"
	"github.com/baatie/controllerpro/internal/core/domain"
	portsrepo "github.com/baatie/controllerpro/internal/core/ports/repositories"
	portssvc "github.com/baatie/controllerpro/internal/core/ports/services"
	"github.com/google/uuid"
)

// clientService implements the ClientSvcFacade interface.
type clientService struct {
	BaseService
	clientRepo  portsrepo.ClientRepositoryFacade
	invoiceRepo portsrepo.InvoiceReader
}

// NewClientService creates a new client service. The invoice reader is
// needed for the delete guard.
func NewClientService(clientRepo portsrepo.ClientRepositoryFacade, invoiceRepo portsrepo.InvoiceReader) portssvc.ClientSvcFacade {
	return &clientService{clientRepo: clientRepo, invoiceRepo: invoiceRepo}
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

// FindClientByID retrieves a client by its ID.
func (s *clientService) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find client by ID",
				slog.String("client_id", clientID))
		}
		return nil, err
	}
	return client, nil
}

// ListClients retrieves clients scoped to a business. An empty businessID
// returns the cross-tenant set; only the export path uses that form.
func (s *clientService) ListClients(ctx context.Context, businessID string) ([]domain.Client, error) {
	clients, err := s.clientRepo.ListClients(ctx, businessID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list clients",
			slog.String("business_id", businessID))
		return nil, err
	}
	if clients == nil {
		return []domain.Client{}, nil
	}
	return clients, nil
}

func validateClient(client domain.Client) error {
	if client.BusinessID == "" {
		return fmt.Errorf("%w: client businessId is required", apperrors.ErrValidation)
	}
	if client.Name == "" {
		return fmt.Errorf("%w: client name is required", apperrors.ErrValidation)
	}
	return nil
}

// CreateClient persists a new client.
func (s *clientService) CreateClient(ctx context.Context, client domain.Client) (*domain.Client, error) {
	if err := validateClient(client); err != nil {
		return nil, err
	}
	if client.ClientID == "" {
		client.ClientID = uuid.NewString()
	}
	if client.Representatives == nil {
		client.Representatives = []domain.Representative{}
	}

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		s.LogError(ctx, err, "Failed to save client",
			slog.String("client_id", client.ClientID))
		return nil, err
	}

	s.LogInfo(ctx, "Client created successfully",
		slog.String("client_id", client.ClientID),
		slog.String("business_id", client.BusinessID))
	return &client, nil
}

// UpdateClient replaces a stored client in place. Edits carry the full
// entity, so a caller that drops a field loses it; there is no merge.
func (s *clientService) UpdateClient(ctx context.Context, client domain.Client) (*domain.Client, error) {
	if client.ClientID == "" {
		return nil, fmt.Errorf("%w: client id is required", apperrors.ErrValidation)
	}
	if err := validateClient(client); err != nil {
		return nil, err
	}
	if client.Representatives == nil {
		client.Representatives = []domain.Representative{}
	}

	if _, err := s.clientRepo.FindClientByID(ctx, client.ClientID); err != nil {
		return nil, err
	}

	if err := s.clientRepo.UpdateClient(ctx, client); err != nil {
		s.LogError(ctx, err, "Failed to update client",
			slog.String("client_id", client.ClientID))
		return nil, err
	}

	s.LogInfo(ctx, "Client updated successfully",
		slog.String("client_id", client.ClientID))
	return &client, nil
}

// DeleteClient removes a client unless invoices still reference it. The
// scan covers every invoice in the system, not just the active business's
// working set, so a client shared into history anywhere stays protected.
func (s *clientService) DeleteClient(ctx context.Context, clientID string) error {
	if _, err := s.clientRepo.FindClientByID(ctx, clientID); err != nil {
		return err
	}

	refs, err := s.invoiceRepo.CountInvoicesByClientID(ctx, clientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count invoices for client",
			slog.String("client_id", clientID))
		return err
	}
	if refs > 0 {
		s.LogInfo(ctx, "Refused to delete client with dependent invoices",
			slog.String("client_id", clientID),
			slog.Int("invoice_count", refs))
		return fmt.Errorf("%w: client has %d dependent invoice(s); remove them first", apperrors.ErrIntegrityBlock, refs)
	}

	if err := s.clientRepo.DeleteClient(ctx, clientID); err != nil {
		s.LogError(ctx, err, "Failed to delete client",
			slog.String("client_id", clientID))
		return err
	}

	s.LogInfo(ctx, "Client deleted successfully",
		slog.String("client_id", clientID))
	return nil
}
