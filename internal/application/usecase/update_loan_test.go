package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agarciagaray/mi-riesgo/internal/application/dto"
	"github.com/agarciagaray/mi-riesgo/internal/application/usecase"
	"github.com/agarciagaray/mi-riesgo/internal/domain/event"
	"github.com/agarciagaray/mi-riesgo/internal/domain/model"
	"github.com/agarciagaray/mi-riesgo/internal/domain/port"
	"github.com/agarciagaray/mi-riesgo/internal/domain/service"
	"github.com/agarciagaray/mi-riesgo/internal/domain/valueobject"
)

func strPtr(s string) *string { return &s }

func newUpdateLoanFixture(t *testing.T, loan model.Loan) (*usecase.UpdateLoanUseCase, *mockLoanRepository, *mockEventPublisher) {
	t.Helper()
	loanRepo := &mockLoanRepository{
		findByIDFunc: func(_ context.Context, id int64) (model.Loan, error) {
			assert.Equal(t, loan.ID(), id)
			return loan, nil
		},
	}
	publisher := &mockEventPublisher{}
	uc := usecase.NewUpdateLoanUseCase(loanRepo, service.NewLoanStatusResolver(), publisher)
	return uc, loanRepo, publisher
}

func TestUpdateLoan_StatusAndBalance(t *testing.T) {
	loan := testLoan(t, 100, 1, valueobject.CreditStatusVigente, nil)
	uc, loanRepo, publisher := newUpdateLoanFixture(t, loan)

	balance := decimal.NewFromInt(1_500_000)
	resp, err := uc.Execute(context.Background(), dto.UpdateLoanRequest{
		LoanID:         100,
		Status:         strPtr("En Mora"),
		CurrentBalance: &balance,
	})
	require.NoError(t, err)

	assert.Equal(t, "En Mora", resp.Status)
	assert.True(t, resp.CurrentBalance.Equal(balance))

	require.Len(t, loanRepo.savedLoans, 1)
	assert.Equal(t, "En Mora", loanRepo.savedLoans[0].Status().String())

	// One event per state transition.
	require.Len(t, publisher.published, 2)
	_, ok := publisher.published[0].(event.LoanUpdated)
	assert.True(t, ok)
}

func TestUpdateLoan_NoFieldsIsNoOp(t *testing.T) {
	loan := testLoan(t, 100, 1, valueobject.CreditStatusVigente, nil)
	uc, loanRepo, publisher := newUpdateLoanFixture(t, loan)

	resp, err := uc.Execute(context.Background(), dto.UpdateLoanRequest{LoanID: 100})
	require.NoError(t, err)

	assert.Equal(t, "Vigente", resp.Status)
	assert.Empty(t, loanRepo.savedLoans)
	assert.Empty(t, publisher.published)
}

func TestUpdateLoan_InvalidStatus(t *testing.T) {
	loan := testLoan(t, 100, 1, valueobject.CreditStatusVigente, nil)
	uc, loanRepo, _ := newUpdateLoanFixture(t, loan)

	_, err := uc.Execute(context.Background(), dto.UpdateLoanRequest{
		LoanID: 100,
		Status: strPtr("Perdido"),
	})
	require.Error(t, err)
	assert.Empty(t, loanRepo.savedLoans)
}

func TestUpdateLoan_NotFound(t *testing.T) {
	uc := usecase.NewUpdateLoanUseCase(&mockLoanRepository{}, service.NewLoanStatusResolver(), &mockEventPublisher{})

	_, err := uc.Execute(context.Background(), dto.UpdateLoanRequest{LoanID: 7})
	assert.ErrorIs(t, err, port.ErrNotFound)
}

func TestUpdateLoan_PaidLoanGetsRetentionDisplay(t *testing.T) {
	now := time.Now().UTC()
	lastPayment := now.AddDate(0, 0, -5)
	loan := testLoan(t, 100, 1, valueobject.CreditStatusVigente, []model.Payment{
		{
			ID:                  1,
			InstallmentNumber:   1,
			ExpectedPaymentDate: lastPayment.AddDate(0, 0, -10),
			ActualPaymentDate:   &lastPayment,
			Status:              valueobject.PaymentStatusPagado,
			DaysLate:            10,
		},
	})
	uc, _, _ := newUpdateLoanFixture(t, loan)

	resp, err := uc.Execute(context.Background(), dto.UpdateLoanRequest{
		LoanID: 100,
		Status: strPtr("Pagado"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Pagado", resp.Status)
	assert.Equal(t, "Pagado (Reporte Activo)", resp.DisplayStatus)
	assert.True(t, resp.ReportActive)
	require.NotNil(t, resp.ReportExpiryDate)
}
