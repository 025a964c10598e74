package valueobject

import "time"

// ---------------------------------------------------------------------------
// DisplayStatus – derived reporting status
// ---------------------------------------------------------------------------

// DisplayStatus is the status an analyst sees for a loan. It is either the
// raw CreditStatus passed through, or the synthetic "Pagado (Reporte
// Activo)" state for a paid-off loan whose bureau retention window has not
// yet expired. The synthetic state never enters the stored enumeration.
type DisplayStatus struct {
	raw             CreditStatus
	reportActive    bool
	lastPaymentDate *time.Time
	reportExpiry    *time.Time
}

// PassThrough wraps a raw status without any retention decoration.
func PassThrough(raw CreditStatus) DisplayStatus {
	return DisplayStatus{raw: raw}
}

// PaidWithHistory wraps a paid status carrying the resolved payment dates.
// reportActive marks the loan as still visible within its retention window.
func PaidWithHistory(lastPaymentDate, reportExpiry *time.Time, reportActive bool) DisplayStatus {
	return DisplayStatus{
		raw:             CreditStatusPagado,
		reportActive:    reportActive,
		lastPaymentDate: lastPaymentDate,
		reportExpiry:    reportExpiry,
	}
}

// Raw returns the underlying stored status.
func (d DisplayStatus) Raw() CreditStatus { return d.raw }

// ReportActive reports whether the loan is in the synthetic retention state.
func (d DisplayStatus) ReportActive() bool { return d.reportActive }

// LastPaymentDate returns the latest actual payment date, when known.
func (d DisplayStatus) LastPaymentDate() *time.Time { return d.lastPaymentDate }

// ReportExpiry returns the retention window end, when one applies.
func (d DisplayStatus) ReportExpiry() *time.Time { return d.reportExpiry }

// String renders the status as shown on screen and in exported reports.
func (d DisplayStatus) String() string {
	if d.reportActive {
		return "Pagado (Reporte Activo)"
	}
	return d.raw.String()
}
