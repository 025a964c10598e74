package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/agarciagaray/mi-riesgo/internal/domain/valueobject"
)

// Payment is an immutable value object representing one expected installment
// of a loan. Payments are created by ingestion and read-only afterwards;
// status and days-late arrive pre-computed from the reporting entity.
type Payment struct {
	ID                  int64
	LoanID              int64
	InstallmentNumber   int
	ExpectedPaymentDate time.Time
	ActualPaymentDate   *time.Time
	AmountPaid          *decimal.Decimal
	Status              valueobject.PaymentStatus
	DaysLate            int
}

// HistoricEntry is one value in a client's contact history together with the
// date it became current. The first entry of a history list is always the
// active value.
type HistoricEntry struct {
	Value        string
	DateModified time.Time
}
