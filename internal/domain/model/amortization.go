package model

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Amortization calculator
// ---------------------------------------------------------------------------

// InstallmentAmount derives the periodic installment of a loan from its
// amortization parameters.
//
// The calculation uses the standard fixed-payment formula:
//
//	periodicRate = (interestRate / 100) / periodsPerYear
//	installment  = P * r * (1+r)^n / ((1+r)^n - 1)
//
// Every degenerate input resolves to a defined value: zero installments
// yield zero, and a zero rate or a vanishing denominator falls back to a
// straight-line split. The result is never NaN or infinite.
func InstallmentAmount(loan Loan) decimal.Decimal {
	installments := loan.Installments()
	if installments == 0 {
		return decimal.Zero
	}

	principal := loan.OriginalAmount()
	straightLine := principal.Div(decimal.NewFromInt(int64(installments)))

	if loan.InterestRate().IsZero() {
		return straightLine
	}

	// Rate arithmetic runs in float64 for the power computation, then
	// switches back to decimal for the monetary result.
	periodsPerYear := loan.Modality().PeriodsPerYear()
	periodicRate := loan.InterestRate().InexactFloat64() / 100.0 / float64(periodsPerYear)
	if periodicRate == 0 {
		return straightLine
	}

	factor := math.Pow(1+periodicRate, float64(installments))
	denominator := factor - 1
	if denominator == 0 || math.IsInf(factor, 0) {
		return straightLine
	}

	payment := principal.InexactFloat64() * periodicRate * factor / denominator
	return decimal.NewFromFloat(payment).Round(2)
}

// TotalOverdue returns the lateness-weighted arrears total: the number of
// installments currently in arrears times the periodic installment amount.
func TotalOverdue(loan Loan, installmentAmount decimal.Decimal) decimal.Decimal {
	return installmentAmount.Mul(decimal.NewFromInt(int64(loan.OverdueCount())))
}

// AmortizationEntry is one period of a projected amortization schedule.
type AmortizationEntry struct {
	DueDate          time.Time
	Principal        decimal.Decimal
	Interest         decimal.Decimal
	Total            decimal.Decimal
	RemainingBalance decimal.Decimal
	Period           int
}

// AmortizationSchedule projects the full repayment schedule of a loan from
// its origination date. The final period absorbs rounding so the remaining
// balance lands exactly on zero.
func AmortizationSchedule(loan Loan) []AmortizationEntry {
	installments := loan.Installments()
	if installments <= 0 || loan.OriginalAmount().LessThanOrEqual(decimal.Zero) {
		return nil
	}

	payment := InstallmentAmount(loan)
	periodsPerYear := loan.Modality().PeriodsPerYear()
	periodicRate := decimal.NewFromFloat(
		loan.InterestRate().InexactFloat64() / 100.0 / float64(periodsPerYear),
	)

	schedule := make([]AmortizationEntry, 0, installments)
	remaining := loan.OriginalAmount()

	for period := 1; period <= installments; period++ {
		interest := remaining.Mul(periodicRate).Round(2)
		principalPart := payment.Sub(interest)

		if period == installments {
			principalPart = remaining
			payment = principalPart.Add(interest)
		}

		remaining = remaining.Sub(principalPart)
		if remaining.LessThan(decimal.Zero) {
			remaining = decimal.Zero
		}

		schedule = append(schedule, AmortizationEntry{
			Period:           period,
			DueDate:          dueDateFor(loan, period, periodsPerYear),
			Principal:        principalPart,
			Interest:         interest,
			Total:            principalPart.Add(interest),
			RemainingBalance: remaining,
		})
	}

	return schedule
}

// dueDateFor advances the origination date by whole periods of the loan's
// modality.
func dueDateFor(loan Loan, period, periodsPerYear int) time.Time {
	start := loan.OriginationDate()
	switch periodsPerYear {
	case 365:
		return start.AddDate(0, 0, period)
	case 52:
		return start.AddDate(0, 0, 7*period)
	case 24:
		return start.AddDate(0, 0, 15*period)
	case 1:
		return start.AddDate(period, 0, 0)
	default:
		return start.AddDate(0, period, 0)
	}
}
