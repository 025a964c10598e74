package model

import (
	"github.com/shopspring/decimal"

	"github.com/agarciagaray/mi-riesgo/internal/domain/valueobject"
)

// CreditReport bundles everything known about a person at consultation time.
type CreditReport struct {
	Client      Client
	Loans       []Loan
	DebtSummary DebtSummary
}

// DebtSummary is derived from the loan list on every consultation; it is
// never stored.
type DebtSummary struct {
	TotalCredits        int
	ActiveCredits       int
	PaidCredits         int
	TotalOriginalAmount decimal.Decimal
	TotalCurrentBalance decimal.Decimal
}

// ComputeDebtSummary tallies a client's obligations. Loans in Pagado or
// Cancelado status count as paid; everything else counts as active.
func ComputeDebtSummary(loans []Loan) DebtSummary {
	summary := DebtSummary{
		TotalCredits:        len(loans),
		TotalOriginalAmount: decimal.Zero,
		TotalCurrentBalance: decimal.Zero,
	}
	for _, loan := range loans {
		if !loan.Status().IsClosed() {
			summary.ActiveCredits++
		}
		summary.TotalOriginalAmount = summary.TotalOriginalAmount.Add(loan.OriginalAmount())
		summary.TotalCurrentBalance = summary.TotalCurrentBalance.Add(loan.CurrentBalance())
	}
	summary.PaidCredits = summary.TotalCredits - summary.ActiveCredits
	return summary
}

// RiskScore is the ephemeral scoring result shown alongside a report. It is
// recomputed per consultation and never persisted as domain truth.
type RiskScore struct {
	Score      int
	Assessment valueobject.RiskAssessment
	Reasoning  string
}
