package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/agarciagaray/mi-riesgo/internal/domain/model"
	"github.com/agarciagaray/mi-riesgo/internal/domain/service"
	"github.com/agarciagaray/mi-riesgo/internal/domain/valueobject"
)

func buildClient(t *testing.T, id, companyID int64) model.Client {
	t.Helper()
	return model.ReconstructClient(
		id, companyID,
		"900000000", "Cliente Prueba",
		date(1990, time.January, 1),
		nil, nil, nil, nil,
	)
}

func arrearsPayment(daysLate int) model.Payment {
	return model.Payment{
		InstallmentNumber:   1,
		ExpectedPaymentDate: date(2024, time.January, 15),
		Status:              valueobject.PaymentStatusEnMora,
		DaysLate:            daysLate,
	}
}

func TestAggregate_EmptyPortfolio(t *testing.T) {
	stats := service.NewPortfolioAggregator().Aggregate(nil, nil)

	assert.Equal(t, service.PortfolioStats{}, stats)
}

func TestAggregate_ClientWithoutLoansOnlyCounts(t *testing.T) {
	clients := []model.Client{buildClient(t, 1, 1)}

	stats := service.NewPortfolioAggregator().Aggregate(clients, nil)

	assert.Equal(t, 1, stats.TotalClients)
	assert.Equal(t, 0, stats.ActiveClientsUpToDate)
	assert.Equal(t, 0, stats.ClientsWithArrears)
}

func TestAggregate_ActiveUpToDate(t *testing.T) {
	clients := []model.Client{buildClient(t, 1, 1)}
	loans := map[int64][]model.Loan{
		1: {buildLoan(t, valueobject.CreditStatusVigente, []model.Payment{
			settledPayment(1, date(2024, time.January, 15), 0),
		})},
	}

	stats := service.NewPortfolioAggregator().Aggregate(clients, loans)

	assert.Equal(t, 1, stats.ActiveClientsUpToDate)
	assert.Equal(t, 0, stats.ClientsWithArrears)
	assert.Equal(t, service.MoraDistribution{}, stats.MoraDistribution)
}

func TestAggregate_MoraBucketBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		daysLate int
		want     service.MoraDistribution
	}{
		{"one day", 1, service.MoraDistribution{Days1To30: 1}},
		{"thirty days", 30, service.MoraDistribution{Days1To30: 1}},
		{"thirty one days", 31, service.MoraDistribution{Days31To60: 1}},
		{"sixty days", 60, service.MoraDistribution{Days31To60: 1}},
		{"ninety days", 90, service.MoraDistribution{Days61To90: 1}},
		{"ninety one days", 91, service.MoraDistribution{Days91Plus: 1}},
		{"one year", 365, service.MoraDistribution{Days91Plus: 1}},
	}

	aggregator := service.NewPortfolioAggregator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clients := []model.Client{buildClient(t, 1, 1)}
			loans := map[int64][]model.Loan{
				1: {buildLoan(t, valueobject.CreditStatusEnMora, []model.Payment{
					arrearsPayment(tt.daysLate),
				})},
			}

			stats := aggregator.Aggregate(clients, loans)

			assert.Equal(t, tt.want, stats.MoraDistribution)
			assert.Equal(t, 1, stats.ClientsWithArrears)
		})
	}
}

func TestAggregate_ClientCountedOncePerBucket(t *testing.T) {
	// Two delinquent loans on the same client land in a single bucket,
	// chosen by the worst lateness.
	clients := []model.Client{buildClient(t, 1, 1)}
	loans := map[int64][]model.Loan{
		1: {
			buildLoan(t, valueobject.CreditStatusEnMora, []model.Payment{arrearsPayment(15)}),
			buildLoan(t, valueobject.CreditStatusEnMora, []model.Payment{arrearsPayment(75)}),
		},
	}

	stats := service.NewPortfolioAggregator().Aggregate(clients, loans)

	assert.Equal(t, service.MoraDistribution{Days61To90: 1}, stats.MoraDistribution)
	assert.Equal(t, 1, stats.ClientsWithArrears)
}

func TestAggregate_SettledLateHistoryStaysOutOfChart(t *testing.T) {
	clients := []model.Client{buildClient(t, 1, 1)}
	loans := map[int64][]model.Loan{
		1: {buildLoan(t, valueobject.CreditStatusVigente, []model.Payment{
			settledPayment(1, date(2024, time.January, 15), 45),
		})},
	}

	stats := service.NewPortfolioAggregator().Aggregate(clients, loans)

	assert.Equal(t, service.MoraDistribution{}, stats.MoraDistribution)
	assert.Equal(t, 1, stats.ActiveClientsUpToDate)
}

func TestAggregate_LegalStatusClassification(t *testing.T) {
	clients := []model.Client{buildClient(t, 1, 1)}
	loans := map[int64][]model.Loan{
		1: {buildLoan(t, valueobject.CreditStatusEnJuridica, []model.Payment{arrearsPayment(120)})},
	}

	stats := service.NewPortfolioAggregator().Aggregate(clients, loans)

	assert.Equal(t, 1, stats.ClientsInLegal)
	// An overdue payment on a legal-status loan does not double count the
	// client as "with arrears".
	assert.Equal(t, 0, stats.ClientsWithArrears)
	assert.Equal(t, service.MoraDistribution{Days91Plus: 1}, stats.MoraDistribution)
}

func TestAggregateByCompany_ScopesClients(t *testing.T) {
	companies := []model.Company{
		{ID: 1, Name: "CrediSur", NIT: "900111222"},
		{ID: 2, Name: "FinanNorte", NIT: "900333444"},
	}
	clients := []model.Client{
		buildClient(t, 1, 1),
		buildClient(t, 2, 1),
		buildClient(t, 3, 2),
	}
	loans := map[int64][]model.Loan{
		1: {buildLoan(t, valueobject.CreditStatusVigente, nil)},
		3: {buildLoan(t, valueobject.CreditStatusEnMora, []model.Payment{arrearsPayment(10)})},
	}

	out := service.NewPortfolioAggregator().AggregateByCompany(companies, clients, loans)

	assert.Len(t, out, 2)
	assert.Equal(t, "CrediSur", out[0].Company.Name)
	assert.Equal(t, 2, out[0].Stats.TotalClients)
	assert.Equal(t, 1, out[0].Stats.ActiveClientsUpToDate)
	assert.Equal(t, 1, out[1].Stats.TotalClients)
	assert.Equal(t, 1, out[1].Stats.ClientsWithArrears)
}
