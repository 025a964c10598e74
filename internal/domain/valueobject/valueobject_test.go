package valueobject_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agarciagaray/mi-riesgo/internal/domain/valueobject"
)

func TestNewCreditStatus(t *testing.T) {
	status, err := valueobject.NewCreditStatus("En Mora")
	require.NoError(t, err)
	assert.Equal(t, valueobject.CreditStatusEnMora, status)

	_, err = valueobject.NewCreditStatus("en mora")
	assert.Error(t, err)

	_, err = valueobject.NewCreditStatus("")
	assert.Error(t, err)
}

func TestCreditStatus_Classification(t *testing.T) {
	legal := []valueobject.CreditStatus{
		valueobject.CreditStatusEnJuridica,
		valueobject.CreditStatusEmbargo,
		valueobject.CreditStatusCastigado,
		valueobject.CreditStatusFraudulento,
		valueobject.CreditStatusSiniestrado,
	}
	for _, s := range legal {
		assert.True(t, s.IsLegal(), s.String())
		assert.False(t, s.IsClosed(), s.String())
	}

	assert.True(t, valueobject.CreditStatusPagado.IsClosed())
	assert.True(t, valueobject.CreditStatusCancelado.IsClosed())
	assert.False(t, valueobject.CreditStatusVigente.IsLegal())
	assert.False(t, valueobject.CreditStatusVigente.IsClosed())
}

func TestPaymentStatus(t *testing.T) {
	assert.True(t, valueobject.PaymentStatusEnMora.IsOverdue())
	assert.True(t, valueobject.PaymentStatusPagado.IsPaid())
	assert.False(t, valueobject.PaymentStatusPendiente.IsOverdue())
	assert.False(t, valueobject.PaymentStatusPendiente.IsPaid())

	_, err := valueobject.NewPaymentStatus("Atrasado")
	assert.Error(t, err)
}

func TestPaymentModality_PeriodsPerYear(t *testing.T) {
	tests := []struct {
		modality valueobject.PaymentModality
		want     int
	}{
		{valueobject.ModalityDiario, 365},
		{valueobject.ModalitySemanal, 52},
		{valueobject.ModalityQuincenal, 24},
		{valueobject.ModalityMensual, 12},
		{valueobject.ModalityAnual, 1},
		{valueobject.PaymentModality{}, 12},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.modality.PeriodsPerYear(), tt.modality.String())
	}
}

func TestDisplayStatus_Rendering(t *testing.T) {
	pass := valueobject.PassThrough(valueobject.CreditStatusVigente)
	assert.Equal(t, "Vigente", pass.String())
	assert.False(t, pass.ReportActive())

	last := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	expiry := last.AddDate(0, 0, 20)

	active := valueobject.PaidWithHistory(&last, &expiry, true)
	assert.Equal(t, "Pagado (Reporte Activo)", active.String())
	assert.Equal(t, valueobject.CreditStatusPagado, active.Raw())

	expired := valueobject.PaidWithHistory(&last, &expiry, false)
	assert.Equal(t, "Pagado", expired.String())
}

func TestRiskAssessment(t *testing.T) {
	a, err := valueobject.NewRiskAssessment("Muy Alto")
	require.NoError(t, err)
	assert.True(t, a.Equal(valueobject.RiskAssessmentMuyAlto))

	_, err = valueobject.NewRiskAssessment("muy alto")
	assert.Error(t, err)
}
