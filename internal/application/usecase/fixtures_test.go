package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/agarciagaray/mi-riesgo/internal/domain/model"
	"github.com/agarciagaray/mi-riesgo/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Shared fixtures
// ---------------------------------------------------------------------------

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func testClient(t *testing.T, id int64, flags ...string) model.Client {
	t.Helper()
	return model.ReconstructClient(
		id, 1,
		"1020304050", "Ana María Gómez",
		date(1988, time.March, 14),
		[]model.HistoricEntry{{Value: "Calle 45 # 12-30", DateModified: date(2023, time.June, 1)}},
		[]model.HistoricEntry{{Value: "3001234567", DateModified: date(2023, time.June, 1)}},
		[]model.HistoricEntry{{Value: "ana@example.com", DateModified: date(2023, time.June, 1)}},
		flags,
	)
}

func testLoan(t *testing.T, id, clientID int64, status valueobject.CreditStatus, payments []model.Payment) model.Loan {
	t.Helper()
	return model.ReconstructLoan(
		id, clientID, 1,
		date(2023, time.January, 15),
		decimal.NewFromInt(5_000_000),
		valueobject.ModalityMensual,
		decimal.NewFromFloat(2.5),
		12,
		decimal.NewFromInt(2_000_000),
		status,
		date(2024, time.January, 15),
		payments,
	)
}

func paidPayment(n int, expected, actual time.Time) model.Payment {
	amount := decimal.NewFromInt(480_000)
	return model.Payment{
		ID:                  int64(n),
		InstallmentNumber:   n,
		ExpectedPaymentDate: expected,
		ActualPaymentDate:   &actual,
		AmountPaid:          &amount,
		Status:              valueobject.PaymentStatusPagado,
	}
}

func overduePayment(n int, expected time.Time, daysLate int) model.Payment {
	return model.Payment{
		ID:                  int64(n),
		InstallmentNumber:   n,
		ExpectedPaymentDate: expected,
		Status:              valueobject.PaymentStatusEnMora,
		DaysLate:            daysLate,
	}
}

func mustStatus(t *testing.T, s string) valueobject.CreditStatus {
	t.Helper()
	status, err := valueobject.NewCreditStatus(s)
	require.NoError(t, err)
	return status
}
