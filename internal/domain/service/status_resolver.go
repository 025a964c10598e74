package service

import (
	"time"

	"github.com/agarciagaray/mi-riesgo/internal/domain/model"
	"github.com/agarciagaray/mi-riesgo/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// LoanStatusResolver – derives the displayed reporting status
// ---------------------------------------------------------------------------

// maxReportingDays caps the retention window of a paid-off loan at 4 years.
const maxReportingDays = 4 * 365

// LoanStatusResolver translates a loan's raw lifecycle status and payment
// history into the status shown to an analyst. A paid-off loan stays visible
// as "Pagado (Reporte Activo)" for twice the duration of its worst
// delinquency, capped at four years from the last actual payment.
type LoanStatusResolver struct{}

// NewLoanStatusResolver returns a new resolver instance.
func NewLoanStatusResolver() *LoanStatusResolver {
	return &LoanStatusResolver{}
}

// Resolve computes the display status for a loan at the given instant. It is
// a pure function of the loan data and now; callers inject the clock.
func (r *LoanStatusResolver) Resolve(loan model.Loan, now time.Time) valueobject.DisplayStatus {
	if !loan.Status().Equal(valueobject.CreditStatusPagado) {
		return valueobject.PassThrough(loan.Status())
	}

	lastPaymentDate := loan.LastPaymentDate()
	if lastPaymentDate == nil {
		// No settled payment with a known date: nothing to anchor the
		// retention window on.
		return valueobject.PassThrough(loan.Status())
	}

	reportingDays := loan.MaxDaysLate() * 2
	if reportingDays > maxReportingDays {
		reportingDays = maxReportingDays
	}

	var reportExpiry *time.Time
	if reportingDays > 0 {
		expiry := lastPaymentDate.AddDate(0, 0, reportingDays)
		reportExpiry = &expiry
	}

	reportActive := reportExpiry != nil && now.Before(*reportExpiry)
	return valueobject.PaidWithHistory(lastPaymentDate, reportExpiry, reportActive)
}
