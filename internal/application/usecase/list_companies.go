package usecase

import (
	"context"
	"fmt"

	"github.com/agarciagaray/mi-riesgo/internal/application/dto"
	"github.com/agarciagaray/mi-riesgo/internal/domain/port"
)

// ListCompaniesUseCase returns the reporting entities registered with the
// bureau.
type ListCompaniesUseCase struct {
	companyRepo port.CompanyRepository
}

// NewListCompaniesUseCase wires dependencies.
func NewListCompaniesUseCase(companyRepo port.CompanyRepository) *ListCompaniesUseCase {
	return &ListCompaniesUseCase{companyRepo: companyRepo}
}

// Execute lists all registered companies.
func (uc *ListCompaniesUseCase) Execute(ctx context.Context) ([]dto.CompanyResponse, error) {
	companies, err := uc.companyRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("find companies: %w", err)
	}

	responses := make([]dto.CompanyResponse, 0, len(companies))
	for _, company := range companies {
		responses = append(responses, toCompanyResponse(company))
	}
	return responses, nil
}
