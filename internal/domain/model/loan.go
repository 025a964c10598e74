package model

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/agarciagaray/mi-riesgo/internal/domain/event"
	"github.com/agarciagaray/mi-riesgo/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Loan aggregate root
// ---------------------------------------------------------------------------

// Loan is an immutable aggregate. Mutations return a new copy.
type Loan struct {
	id              int64
	clientID        int64
	companyID       int64
	originationDate time.Time
	originalAmount  decimal.Decimal
	modality        valueobject.PaymentModality
	interestRate    decimal.Decimal // percent per year
	installments    int
	currentBalance  decimal.Decimal
	status          valueobject.CreditStatus
	lastReportDate  time.Time
	payments        []Payment
	domainEvents    []event.DomainEvent
}

// NewLoan creates a loan record as produced by ingestion.
func NewLoan(
	id, clientID, companyID int64,
	originationDate time.Time,
	originalAmount decimal.Decimal,
	modality valueobject.PaymentModality,
	interestRate decimal.Decimal,
	installments int,
	currentBalance decimal.Decimal,
	status valueobject.CreditStatus,
	lastReportDate time.Time,
	payments []Payment,
) (Loan, error) {
	if clientID == 0 {
		return Loan{}, errors.New("client ID is required")
	}
	if originalAmount.LessThanOrEqual(decimal.Zero) {
		return Loan{}, errors.New("original amount must be positive")
	}
	if installments < 0 {
		return Loan{}, errors.New("installments must not be negative")
	}
	if status.IsZero() {
		return Loan{}, errors.New("status is required")
	}

	return Loan{
		id:              id,
		clientID:        clientID,
		companyID:       companyID,
		originationDate: originationDate,
		originalAmount:  originalAmount,
		modality:        modality,
		interestRate:    interestRate,
		installments:    installments,
		currentBalance:  currentBalance,
		status:          status,
		lastReportDate:  lastReportDate,
		payments:        payments,
	}, nil
}

// ReconstructLoan rebuilds a Loan aggregate from persistence.
func ReconstructLoan(
	id, clientID, companyID int64,
	originationDate time.Time,
	originalAmount decimal.Decimal,
	modality valueobject.PaymentModality,
	interestRate decimal.Decimal,
	installments int,
	currentBalance decimal.Decimal,
	status valueobject.CreditStatus,
	lastReportDate time.Time,
	payments []Payment,
) Loan {
	return Loan{
		id:              id,
		clientID:        clientID,
		companyID:       companyID,
		originationDate: originationDate,
		originalAmount:  originalAmount,
		modality:        modality,
		interestRate:    interestRate,
		installments:    installments,
		currentBalance:  currentBalance,
		status:          status,
		lastReportDate:  lastReportDate,
		payments:        payments,
	}
}

// ---------------------------------------------------------------------------
// State transitions
// ---------------------------------------------------------------------------

// UpdateStatus applies an analyst edit to the raw lifecycle status.
func (l Loan) UpdateStatus(status valueobject.CreditStatus, now time.Time) (Loan, error) {
	if status.IsZero() {
		return l, errors.New("status is required")
	}
	next := l
	next.status = status
	next.lastReportDate = now
	next.domainEvents = append(copyEvents(l.domainEvents), event.NewLoanUpdated(
		l.id, l.clientID, status.String(), l.currentBalance,
	))
	return next, nil
}

// UpdateBalance applies an analyst edit to the outstanding balance.
func (l Loan) UpdateBalance(balance decimal.Decimal, now time.Time) (Loan, error) {
	if balance.IsNegative() {
		return l, errors.New("balance must not be negative")
	}
	next := l
	next.currentBalance = balance
	next.lastReportDate = now
	next.domainEvents = append(copyEvents(l.domainEvents), event.NewLoanUpdated(
		l.id, l.clientID, l.status.String(), balance,
	))
	return next, nil
}

// ---------------------------------------------------------------------------
// Payment history queries
// ---------------------------------------------------------------------------

// OverdueCount returns the number of installments currently in arrears.
func (l Loan) OverdueCount() int {
	n := 0
	for _, p := range l.payments {
		if p.Status.IsOverdue() {
			n++
		}
	}
	return n
}

// PaidCount returns the number of settled installments.
func (l Loan) PaidCount() int {
	n := 0
	for _, p := range l.payments {
		if p.Status.IsPaid() {
			n++
		}
	}
	return n
}

// MaxDaysLate returns the worst lateness across all payments, zero when the
// history is clean or empty.
func (l Loan) MaxDaysLate() int {
	max := 0
	for _, p := range l.payments {
		if p.DaysLate > max {
			max = p.DaysLate
		}
	}
	return max
}

// LastPaymentDate returns the latest actual payment date among settled
// installments, or nil when none has been paid.
func (l Loan) LastPaymentDate() *time.Time {
	var last *time.Time
	for _, p := range l.payments {
		if !p.Status.IsPaid() || p.ActualPaymentDate == nil {
			continue
		}
		if last == nil || p.ActualPaymentDate.After(*last) {
			d := *p.ActualPaymentDate
			last = &d
		}
	}
	return last
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (l Loan) ID() int64                             { return l.id }
func (l Loan) ClientID() int64                       { return l.clientID }
func (l Loan) CompanyID() int64                      { return l.companyID }
func (l Loan) OriginationDate() time.Time            { return l.originationDate }
func (l Loan) OriginalAmount() decimal.Decimal       { return l.originalAmount }
func (l Loan) Modality() valueobject.PaymentModality { return l.modality }
func (l Loan) InterestRate() decimal.Decimal         { return l.interestRate }
func (l Loan) Installments() int                     { return l.installments }
func (l Loan) CurrentBalance() decimal.Decimal       { return l.currentBalance }
func (l Loan) Status() valueobject.CreditStatus      { return l.status }
func (l Loan) LastReportDate() time.Time             { return l.lastReportDate }
func (l Loan) DomainEvents() []event.DomainEvent     { return l.domainEvents }

// Payments returns a defensive copy of the payment history.
func (l Loan) Payments() []Payment {
	if l.payments == nil {
		return nil
	}
	out := make([]Payment, len(l.payments))
	copy(out, l.payments)
	return out
}

// ClearEvents returns a copy with an empty event list.
func (l Loan) ClearEvents() Loan {
	next := l
	next.domainEvents = nil
	return next
}
