package dto

import (
	"github.com/baatie/controllerpro/internal/core/domain"
)

// --- Client DTOs ---

// RepresentativeDTO carries one billing contact on a client.
type RepresentativeDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name" binding:"required"`
	Department string `json:"department"`
	Email      string `json:"email" binding:"omitempty,email"`
}

// CreateClientRequest defines data for creating a new client.
type CreateClientRequest struct {
	ID              string              `json:"id"` // Optional, generated when empty
	BusinessID      string              `json:"businessId" binding:"required"`
	Name            string              `json:"name" binding:"required"`
	Address         string              `json:"address"`
	Representatives []RepresentativeDTO `json:"representatives" binding:"omitempty,dive"`
}

// UpdateClientRequest defines data for replacing a client. The full entity
// is sent, representatives included; edits never merge with stored fields.
type UpdateClientRequest struct {
	BusinessID      string              `json:"businessId" binding:"required"`
	Name            string              `json:"name" binding:"required"`
	Address         string              `json:"address"`
	Representatives []RepresentativeDTO `json:"representatives" binding:"omitempty,dive"`
}

// ClientResponse defines data returned for a client.
type ClientResponse struct {
	ID              string              `json:"id"`
	BusinessID      string              `json:"businessId"`
	Name            string              `json:"name"`
	Address         string              `json:"address"`
	Representatives []RepresentativeDTO `json:"representatives"`
}

func toDomainRepresentatives(reps []RepresentativeDTO) []domain.Representative {
	out := make([]domain.Representative, len(reps))
	for i, rep := range reps {
		out[i] = domain.Representative{
			RepresentativeID: rep.ID,
			Name:             rep.Name,
			Department:       rep.Department,
			Email:            rep.Email,
		}
	}
	return out
}

// ToDomainClient converts a create request into the domain entity.
func (r CreateClientRequest) ToDomainClient() domain.Client {
	return domain.Client{
		ClientID:        r.ID,
		BusinessID:      r.BusinessID,
		Name:            r.Name,
		Address:         r.Address,
		Representatives: toDomainRepresentatives(r.Representatives),
	}
}

// ToDomainClient converts an update request into the domain entity.
func (r UpdateClientRequest) ToDomainClient(clientID string) domain.Client {
	return domain.Client{
		ClientID:        clientID,
		BusinessID:      r.BusinessID,
		Name:            r.Name,
		Address:         r.Address,
		Representatives: toDomainRepresentatives(r.Representatives),
	}
}

// ToClientResponse converts domain.Client to DTO.
func ToClientResponse(c *domain.Client) ClientResponse {
	reps := make([]RepresentativeDTO, len(c.Representatives))
	for i, rep := range c.Representatives {
		reps[i] = RepresentativeDTO{
			ID:         rep.RepresentativeID,
			Name:       rep.Name,
			Department: rep.Department,
			Email:      rep.Email,
		}
	}
	return ClientResponse{
		ID:              c.ClientID,
		BusinessID:      c.BusinessID,
		Name:            c.Name,
		Address:         c.Address,
		Representatives: reps,
	}
}

// ListClientsResponse wraps a list of clients.
type ListClientsResponse struct {
	Clients []ClientResponse `json:"clients"`
}

// ToListClientsResponse converts a slice of domain.Client to DTO.
func ToListClientsResponse(cs []domain.Client) ListClientsResponse {
	list := make([]ClientResponse, len(cs))
	for i, c := range cs {
		list[i] = ToClientResponse(&c)
	}
	return ListClientsResponse{Clients: list}
}
