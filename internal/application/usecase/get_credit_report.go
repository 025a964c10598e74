package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/agarciagaray/mi-riesgo/internal/application/dto"
	"github.com/agarciagaray/mi-riesgo/internal/domain/model"
	"github.com/agarciagaray/mi-riesgo/internal/domain/port"
	"github.com/agarciagaray/mi-riesgo/internal/domain/service"
)

// GetCreditReportUseCase assembles the full consultation payload for one
// person: client record, loans decorated with their displayed status, and
// the recomputed debt summary.
type GetCreditReportUseCase struct {
	clientRepo port.ClientRepository
	loanRepo   port.LoanRepository
	resolver   *service.LoanStatusResolver
}

// NewGetCreditReportUseCase wires dependencies.
func NewGetCreditReportUseCase(
	clientRepo port.ClientRepository,
	loanRepo port.LoanRepository,
	resolver *service.LoanStatusResolver,
) *GetCreditReportUseCase {
	return &GetCreditReportUseCase{
		clientRepo: clientRepo,
		loanRepo:   loanRepo,
		resolver:   resolver,
	}
}

// Execute builds the report. A missing client surfaces port.ErrNotFound;
// repository failures are wrapped and propagated. The input data is never
// mutated, so repeated calls on unchanged data yield identical output.
func (uc *GetCreditReportUseCase) Execute(
	ctx context.Context,
	req dto.GetReportRequest,
) (dto.CreditReportResponse, error) {
	now := time.Now().UTC()

	client, err := uc.clientRepo.FindByNationalIdentifier(ctx, req.NationalIdentifier)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return dto.CreditReportResponse{}, port.ErrNotFound
		}
		return dto.CreditReportResponse{}, fmt.Errorf("find client: %w", err)
	}

	loans, err := uc.loanRepo.FindByClientID(ctx, client.ID())
	if err != nil {
		return dto.CreditReportResponse{}, fmt.Errorf("find loans: %w", err)
	}

	loanResponses := make([]dto.LoanResponse, 0, len(loans))
	for _, loan := range loans {
		display := uc.resolver.Resolve(loan, now)
		loanResponses = append(loanResponses, toLoanResponse(loan, display))
	}

	return dto.CreditReportResponse{
		Client:      toClientResponse(client),
		Loans:       loanResponses,
		DebtSummary: toDebtSummaryResponse(model.ComputeDebtSummary(loans)),
	}, nil
}

// Assemble returns the raw domain report used by scoring, without the
// display decoration.
func (uc *GetCreditReportUseCase) Assemble(
	ctx context.Context,
	nationalIdentifier string,
) (model.CreditReport, error) {
	client, err := uc.clientRepo.FindByNationalIdentifier(ctx, nationalIdentifier)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return model.CreditReport{}, port.ErrNotFound
		}
		return model.CreditReport{}, fmt.Errorf("find client: %w", err)
	}

	loans, err := uc.loanRepo.FindByClientID(ctx, client.ID())
	if err != nil {
		return model.CreditReport{}, fmt.Errorf("find loans: %w", err)
	}

	return model.CreditReport{
		Client:      client,
		Loans:       loans,
		DebtSummary: model.ComputeDebtSummary(loans),
	}, nil
}
