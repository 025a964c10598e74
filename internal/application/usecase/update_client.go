package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/agarciagaray/mi-riesgo/internal/application/dto"
	"github.com/agarciagaray/mi-riesgo/internal/domain/port"
)

// UpdateClientUseCase applies an analyst edit to a client record. Changed
// contact fields are prepended to their histories; the flag set is replaced.
type UpdateClientUseCase struct {
	clientRepo port.ClientRepository
	publisher  port.EventPublisher
}

// NewUpdateClientUseCase wires dependencies.
func NewUpdateClientUseCase(clientRepo port.ClientRepository, publisher port.EventPublisher) *UpdateClientUseCase {
	return &UpdateClientUseCase{clientRepo: clientRepo, publisher: publisher}
}

// Execute loads, mutates and persists the client, then publishes the
// resulting domain events. Publish failures do not roll back the write.
func (uc *UpdateClientUseCase) Execute(ctx context.Context, req dto.UpdateClientRequest) (dto.ClientResponse, error) {
	client, err := uc.clientRepo.FindByID(ctx, req.ClientID)
	if err != nil {
		return dto.ClientResponse{}, fmt.Errorf("find client %d: %w", req.ClientID, err)
	}

	updated, err := client.UpdateContact(req.FullName, req.Address, req.Phone, req.Email, req.Flags, time.Now().UTC())
	if err != nil {
		return dto.ClientResponse{}, fmt.Errorf("update client %d: %w", req.ClientID, err)
	}

	if err := uc.clientRepo.Save(ctx, updated); err != nil {
		return dto.ClientResponse{}, fmt.Errorf("save client %d: %w", req.ClientID, err)
	}

	if uc.publisher != nil {
		if err := uc.publisher.Publish(ctx, updated.DomainEvents()...); err != nil {
			return dto.ClientResponse{}, fmt.Errorf("publish client events: %w", err)
		}
	}

	return toClientResponse(updated.ClearEvents()), nil
}
