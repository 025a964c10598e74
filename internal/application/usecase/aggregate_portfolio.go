package usecase

import (
	"context"
	"fmt"

	"github.com/agarciagaray/mi-riesgo/internal/application/dto"
	"github.com/agarciagaray/mi-riesgo/internal/domain/model"
	"github.com/agarciagaray/mi-riesgo/internal/domain/port"
	"github.com/agarciagaray/mi-riesgo/internal/domain/service"
)

// AggregatePortfolioUseCase produces the dashboard analytics: the global
// portfolio statistics plus the per-company breakdown.
type AggregatePortfolioUseCase struct {
	clientRepo  port.ClientRepository
	loanRepo    port.LoanRepository
	companyRepo port.CompanyRepository
	aggregator  *service.PortfolioAggregator
}

// NewAggregatePortfolioUseCase wires dependencies.
func NewAggregatePortfolioUseCase(
	clientRepo port.ClientRepository,
	loanRepo port.LoanRepository,
	companyRepo port.CompanyRepository,
	aggregator *service.PortfolioAggregator,
) *AggregatePortfolioUseCase {
	return &AggregatePortfolioUseCase{
		clientRepo:  clientRepo,
		loanRepo:    loanRepo,
		companyRepo: companyRepo,
		aggregator:  aggregator,
	}
}

// Execute aggregates the full population. An empty portfolio yields all-zero
// counts, not an error.
func (uc *AggregatePortfolioUseCase) Execute(ctx context.Context) (dto.DashboardResponse, error) {
	clients, err := uc.clientRepo.FindAll(ctx)
	if err != nil {
		return dto.DashboardResponse{}, fmt.Errorf("find clients: %w", err)
	}

	loans, err := uc.loanRepo.FindAll(ctx)
	if err != nil {
		return dto.DashboardResponse{}, fmt.Errorf("find loans: %w", err)
	}

	companies, err := uc.companyRepo.FindAll(ctx)
	if err != nil {
		return dto.DashboardResponse{}, fmt.Errorf("find companies: %w", err)
	}

	loansByClient := make(map[int64][]model.Loan, len(clients))
	for _, loan := range loans {
		loansByClient[loan.ClientID()] = append(loansByClient[loan.ClientID()], loan)
	}

	general := uc.aggregator.Aggregate(clients, loansByClient)
	perCompany := uc.aggregator.AggregateByCompany(companies, clients, loansByClient)

	companyResponses := make([]dto.CompanyAnalyticsResponse, 0, len(perCompany))
	for _, cs := range perCompany {
		companyResponses = append(companyResponses, dto.CompanyAnalyticsResponse{
			Company: toCompanyResponse(cs.Company),
			Stats:   toStatsResponse(cs.Stats),
		})
	}

	return dto.DashboardResponse{
		General: toStatsResponse(general),
		Company: companyResponses,
	}, nil
}
