package usecase

import (
	"context"
	"fmt"

	"github.com/agarciagaray/mi-riesgo/internal/application/dto"
	"github.com/agarciagaray/mi-riesgo/internal/domain/port"
)

// ListClientsUseCase returns the client roster for the analyst console.
type ListClientsUseCase struct {
	clientRepo port.ClientRepository
}

// NewListClientsUseCase wires dependencies.
func NewListClientsUseCase(clientRepo port.ClientRepository) *ListClientsUseCase {
	return &ListClientsUseCase{clientRepo: clientRepo}
}

// Execute lists all registered clients.
func (uc *ListClientsUseCase) Execute(ctx context.Context) ([]dto.ClientResponse, error) {
	clients, err := uc.clientRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("find clients: %w", err)
	}

	responses := make([]dto.ClientResponse, 0, len(clients))
	for _, client := range clients {
		responses = append(responses, toClientResponse(client))
	}
	return responses, nil
}
