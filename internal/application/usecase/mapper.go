package usecase

import (
	"time"

	"github.com/agarciagaray/mi-riesgo/internal/application/dto"
	"github.com/agarciagaray/mi-riesgo/internal/domain/model"
	"github.com/agarciagaray/mi-riesgo/internal/domain/service"
	"github.com/agarciagaray/mi-riesgo/internal/domain/valueobject"
)

// dateLayout is the ISO-8601 calendar date form used at the API boundary.
const dateLayout = "2006-01-02"

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func toHistoryResponse(history []model.HistoricEntry) []dto.HistoricEntryResponse {
	out := make([]dto.HistoricEntryResponse, 0, len(history))
	for _, entry := range history {
		out = append(out, dto.HistoricEntryResponse{
			Value:        entry.Value,
			DateModified: formatDate(entry.DateModified),
		})
	}
	return out
}

func toClientResponse(client model.Client) dto.ClientResponse {
	flags := client.Flags()
	if flags == nil {
		flags = []string{}
	}
	return dto.ClientResponse{
		ID:                 client.ID(),
		CompanyID:          client.CompanyID(),
		NationalIdentifier: client.NationalIdentifier(),
		FullName:           client.FullName(),
		BirthDate:          formatDate(client.BirthDate()),
		Addresses:          toHistoryResponse(client.Addresses()),
		Phones:             toHistoryResponse(client.Phones()),
		Emails:             toHistoryResponse(client.Emails()),
		Flags:              flags,
	}
}

func toPaymentResponse(p model.Payment) dto.PaymentResponse {
	return dto.PaymentResponse{
		ID:                  p.ID,
		InstallmentNumber:   p.InstallmentNumber,
		ExpectedPaymentDate: formatDate(p.ExpectedPaymentDate),
		ActualPaymentDate:   formatDatePtr(p.ActualPaymentDate),
		AmountPaid:          p.AmountPaid,
		Status:              p.Status.String(),
		DaysLate:            p.DaysLate,
	}
}

// toLoanResponse decorates a loan with its resolved display status and the
// calculator outputs consumed by the report view and the exported PDF.
func toLoanResponse(loan model.Loan, display valueobject.DisplayStatus) dto.LoanResponse {
	installment := model.InstallmentAmount(loan)

	payments := loan.Payments()
	paymentResponses := make([]dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		paymentResponses = append(paymentResponses, toPaymentResponse(p))
	}

	return dto.LoanResponse{
		ID:                  loan.ID(),
		ClientID:            loan.ClientID(),
		CompanyID:           loan.CompanyID(),
		OriginationDate:     formatDate(loan.OriginationDate()),
		OriginalAmount:      loan.OriginalAmount(),
		Modality:            loan.Modality().String(),
		InterestRate:        loan.InterestRate(),
		Installments:        loan.Installments(),
		CurrentBalance:      loan.CurrentBalance(),
		Status:              loan.Status().String(),
		DisplayStatus:       display.String(),
		ReportActive:        display.ReportActive(),
		LastPaymentDate:     formatDatePtr(display.LastPaymentDate()),
		ReportExpiryDate:    formatDatePtr(display.ReportExpiry()),
		InstallmentAmount:   installment,
		TotalOverdue:        model.TotalOverdue(loan, installment),
		PaidInstallments:    loan.PaidCount(),
		OverdueInstallments: loan.OverdueCount(),
		LastReportDate:      formatDate(loan.LastReportDate()),
		Payments:            paymentResponses,
	}
}

func toDebtSummaryResponse(summary model.DebtSummary) dto.DebtSummaryResponse {
	return dto.DebtSummaryResponse{
		TotalCredits:        summary.TotalCredits,
		ActiveCredits:       summary.ActiveCredits,
		PaidCredits:         summary.PaidCredits,
		TotalOriginalAmount: summary.TotalOriginalAmount,
		TotalCurrentBalance: summary.TotalCurrentBalance,
	}
}

func toCompanyResponse(company model.Company) dto.CompanyResponse {
	return dto.CompanyResponse{
		ID:             company.ID,
		Name:           company.Name,
		NIT:            company.NIT,
		TransUnionCode: company.TransUnionCode,
		Address:        company.Address,
		Phone:          company.Phone,
		Email:          company.Email,
		Active:         company.Active,
	}
}

func toStatsResponse(stats service.PortfolioStats) dto.PortfolioStatsResponse {
	return dto.PortfolioStatsResponse{
		TotalClients:          stats.TotalClients,
		ActiveClientsUpToDate: stats.ActiveClientsUpToDate,
		ClientsWithArrears:    stats.ClientsWithArrears,
		ClientsInLegal:        stats.ClientsInLegal,
		MoraDistribution: map[string]int{
			"1-30":  stats.MoraDistribution.Days1To30,
			"31-60": stats.MoraDistribution.Days31To60,
			"61-90": stats.MoraDistribution.Days61To90,
			"91+":   stats.MoraDistribution.Days91Plus,
		},
	}
}

func toRiskScoreResponse(score model.RiskScore) dto.RiskScoreResponse {
	return dto.RiskScoreResponse{
		Score:      score.Score,
		Assessment: score.Assessment.String(),
		Reasoning:  score.Reasoning,
	}
}
