package valueobject

import (
	"errors"
	"fmt"
)

// ---------------------------------------------------------------------------
// CreditStatus – immutable value object
// ---------------------------------------------------------------------------

// CreditStatus represents the raw lifecycle status of a reported loan. The
// stored values are the Spanish display strings used on bureau reports.
type CreditStatus struct {
	value string
}

const (
	creditStatusVigente     = "Vigente"
	creditStatusEnMora      = "En Mora"
	creditStatusPagado      = "Pagado"
	creditStatusCancelado   = "Cancelado"
	creditStatusCastigado   = "Castigado"
	creditStatusFraudulento = "Fraudulento"
	creditStatusSiniestrado = "Siniestrado"
	creditStatusEnJuridica  = "En Jurídica"
	creditStatusEmbargo     = "Embargo"
)

var (
	CreditStatusVigente     = CreditStatus{value: creditStatusVigente}
	CreditStatusEnMora      = CreditStatus{value: creditStatusEnMora}
	CreditStatusPagado      = CreditStatus{value: creditStatusPagado}
	CreditStatusCancelado   = CreditStatus{value: creditStatusCancelado}
	CreditStatusCastigado   = CreditStatus{value: creditStatusCastigado}
	CreditStatusFraudulento = CreditStatus{value: creditStatusFraudulento}
	CreditStatusSiniestrado = CreditStatus{value: creditStatusSiniestrado}
	CreditStatusEnJuridica  = CreditStatus{value: creditStatusEnJuridica}
	CreditStatusEmbargo     = CreditStatus{value: creditStatusEmbargo}
)

var validCreditStatuses = map[string]CreditStatus{
	creditStatusVigente:     CreditStatusVigente,
	creditStatusEnMora:      CreditStatusEnMora,
	creditStatusPagado:      CreditStatusPagado,
	creditStatusCancelado:   CreditStatusCancelado,
	creditStatusCastigado:   CreditStatusCastigado,
	creditStatusFraudulento: CreditStatusFraudulento,
	creditStatusSiniestrado: CreditStatusSiniestrado,
	creditStatusEnJuridica:  CreditStatusEnJuridica,
	creditStatusEmbargo:     CreditStatusEmbargo,
}

// NewCreditStatus creates a CreditStatus from a raw string.
func NewCreditStatus(s string) (CreditStatus, error) {
	v, ok := validCreditStatuses[s]
	if !ok {
		return CreditStatus{}, fmt.Errorf("invalid credit status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s CreditStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s CreditStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s CreditStatus) Equal(other CreditStatus) bool { return s.value == other.value }

// IsLegal reports whether the status places the loan in legal collection or
// an equivalent terminal derogatory state.
func (s CreditStatus) IsLegal() bool {
	switch s.value {
	case creditStatusEnJuridica, creditStatusEmbargo, creditStatusCastigado,
		creditStatusFraudulento, creditStatusSiniestrado:
		return true
	}
	return false
}

// IsClosed reports whether the loan no longer counts as an active obligation.
func (s CreditStatus) IsClosed() bool {
	return s.value == creditStatusPagado || s.value == creditStatusCancelado
}

// ---------------------------------------------------------------------------
// Sentinel errors
// ---------------------------------------------------------------------------

var (
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)
