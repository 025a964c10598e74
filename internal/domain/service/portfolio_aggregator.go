package service

import (
	"github.com/agarciagaray/mi-riesgo/internal/domain/model"
	"github.com/agarciagaray/mi-riesgo/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// PortfolioAggregator – dashboard analytics over the full client population
// ---------------------------------------------------------------------------

// MoraDistribution buckets clients by the worst days-late value across all
// their payments. A client with no overdue payment belongs to no bucket.
type MoraDistribution struct {
	Days1To30  int
	Days31To60 int
	Days61To90 int
	Days91Plus int
}

// PortfolioStats are the aggregate counts shown on the dashboard.
type PortfolioStats struct {
	TotalClients          int
	ActiveClientsUpToDate int
	ClientsWithArrears    int
	ClientsInLegal        int
	MoraDistribution      MoraDistribution
}

// CompanyStats is the per-reporting-entity breakdown of the same aggregation.
type CompanyStats struct {
	Company model.Company
	Stats   PortfolioStats
}

// PortfolioAggregator classifies each client independently and merges the
// counts, so a concurrent map-reduce implementation can be dropped in
// without changing the contract.
type PortfolioAggregator struct{}

// NewPortfolioAggregator returns a new aggregator instance.
func NewPortfolioAggregator() *PortfolioAggregator {
	return &PortfolioAggregator{}
}

// Aggregate computes portfolio statistics over the given clients. Loans are
// looked up per client ID; clients without loans still count toward
// TotalClients.
func (a *PortfolioAggregator) Aggregate(clients []model.Client, loansByClient map[int64][]model.Loan) PortfolioStats {
	stats := PortfolioStats{TotalClients: len(clients)}

	for _, client := range clients {
		c := classifyClient(loansByClient[client.ID()])
		if c.activeUpToDate {
			stats.ActiveClientsUpToDate++
		}
		if c.withArrears {
			stats.ClientsWithArrears++
		}
		if c.inLegal {
			stats.ClientsInLegal++
		}
		switch {
		case c.worstDaysLate <= 0:
			// clean client, no bucket
		case c.worstDaysLate <= 30:
			stats.MoraDistribution.Days1To30++
		case c.worstDaysLate <= 60:
			stats.MoraDistribution.Days31To60++
		case c.worstDaysLate <= 90:
			stats.MoraDistribution.Days61To90++
		default:
			stats.MoraDistribution.Days91Plus++
		}
	}

	return stats
}

// AggregateByCompany runs the same aggregation once per company, scoped to
// the clients belonging to it.
func (a *PortfolioAggregator) AggregateByCompany(
	companies []model.Company,
	clients []model.Client,
	loansByClient map[int64][]model.Loan,
) []CompanyStats {
	clientsByCompany := make(map[int64][]model.Client)
	for _, client := range clients {
		clientsByCompany[client.CompanyID()] = append(clientsByCompany[client.CompanyID()], client)
	}

	out := make([]CompanyStats, 0, len(companies))
	for _, company := range companies {
		out = append(out, CompanyStats{
			Company: company,
			Stats:   a.Aggregate(clientsByCompany[company.ID], loansByClient),
		})
	}
	return out
}

// clientClassification is the per-client outcome merged into PortfolioStats.
type clientClassification struct {
	activeUpToDate bool
	withArrears    bool
	inLegal        bool
	worstDaysLate  int
}

// classifyClient inspects all of one client's loans. A client is active and
// up to date when at least one loan is Vigente and no payment anywhere is
// overdue; in arrears when an overdue payment sits on a loan outside the
// legal statuses; in legal when any loan carries a legal status.
func classifyClient(loans []model.Loan) clientClassification {
	var c clientClassification
	hasVigente := false
	hasOverdue := false

	for _, loan := range loans {
		if loan.Status().Equal(valueobject.CreditStatusVigente) {
			hasVigente = true
		}
		if loan.Status().IsLegal() {
			c.inLegal = true
		}

		overdue := false
		for _, p := range loan.Payments() {
			if !p.Status.IsOverdue() {
				continue
			}
			overdue = true
			// Only installments still in arrears feed the chart; a
			// settled-late history contributes nothing.
			if p.DaysLate > c.worstDaysLate {
				c.worstDaysLate = p.DaysLate
			}
		}
		if overdue {
			hasOverdue = true
			if !loan.Status().IsLegal() {
				c.withArrears = true
			}
		}
	}

	c.activeUpToDate = hasVigente && !hasOverdue
	return c
}
