package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/agarciagaray/mi-riesgo/internal/application/dto"
	"github.com/agarciagaray/mi-riesgo/internal/domain/port"
	"github.com/agarciagaray/mi-riesgo/internal/domain/service"
	"github.com/agarciagaray/mi-riesgo/internal/domain/valueobject"
)

// UpdateLoanUseCase applies an analyst edit to a loan. Status and balance are
// independently optional; a request carrying neither is a no-op that still
// returns the current state.
type UpdateLoanUseCase struct {
	loanRepo  port.LoanRepository
	resolver  *service.LoanStatusResolver
	publisher port.EventPublisher
}

// NewUpdateLoanUseCase wires dependencies.
func NewUpdateLoanUseCase(loanRepo port.LoanRepository, resolver *service.LoanStatusResolver, publisher port.EventPublisher) *UpdateLoanUseCase {
	return &UpdateLoanUseCase{loanRepo: loanRepo, resolver: resolver, publisher: publisher}
}

// Execute loads, mutates and persists the loan, then publishes the resulting
// domain events.
func (uc *UpdateLoanUseCase) Execute(ctx context.Context, req dto.UpdateLoanRequest) (dto.LoanResponse, error) {
	loan, err := uc.loanRepo.FindByID(ctx, req.LoanID)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("find loan %d: %w", req.LoanID, err)
	}

	now := time.Now().UTC()
	changed := false

	if req.Status != nil {
		status, err := valueobject.NewCreditStatus(*req.Status)
		if err != nil {
			return dto.LoanResponse{}, fmt.Errorf("update loan %d: %w", req.LoanID, err)
		}
		loan, err = loan.UpdateStatus(status, now)
		if err != nil {
			return dto.LoanResponse{}, fmt.Errorf("update loan %d: %w", req.LoanID, err)
		}
		changed = true
	}

	if req.CurrentBalance != nil {
		loan, err = loan.UpdateBalance(*req.CurrentBalance, now)
		if err != nil {
			return dto.LoanResponse{}, fmt.Errorf("update loan %d: %w", req.LoanID, err)
		}
		changed = true
	}

	if changed {
		if err := uc.loanRepo.Save(ctx, loan); err != nil {
			return dto.LoanResponse{}, fmt.Errorf("save loan %d: %w", req.LoanID, err)
		}
		if uc.publisher != nil {
			if err := uc.publisher.Publish(ctx, loan.DomainEvents()...); err != nil {
				return dto.LoanResponse{}, fmt.Errorf("publish loan events: %w", err)
			}
		}
	}

	display := uc.resolver.Resolve(loan, now)
	return toLoanResponse(loan.ClearEvents(), display), nil
}
