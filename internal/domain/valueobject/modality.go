package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// PaymentModality – immutable value object
// ---------------------------------------------------------------------------

// PaymentModality is the contracted payment frequency of a loan. It
// determines the number of amortization periods per year.
type PaymentModality struct {
	value string
}

const (
	modalityDiario    = "Diario"
	modalitySemanal   = "Semanal"
	modalityQuincenal = "Quincenal"
	modalityMensual   = "Mensual"
	modalityAnual     = "Anual"
)

var (
	ModalityDiario    = PaymentModality{value: modalityDiario}
	ModalitySemanal   = PaymentModality{value: modalitySemanal}
	ModalityQuincenal = PaymentModality{value: modalityQuincenal}
	ModalityMensual   = PaymentModality{value: modalityMensual}
	ModalityAnual     = PaymentModality{value: modalityAnual}
)

var validModalities = map[string]PaymentModality{
	modalityDiario:    ModalityDiario,
	modalitySemanal:   ModalitySemanal,
	modalityQuincenal: ModalityQuincenal,
	modalityMensual:   ModalityMensual,
	modalityAnual:     ModalityAnual,
}

// NewPaymentModality creates a PaymentModality from a raw string.
func NewPaymentModality(s string) (PaymentModality, error) {
	v, ok := validModalities[s]
	if !ok {
		return PaymentModality{}, fmt.Errorf("invalid payment modality: %q", s)
	}
	return v, nil
}

// String returns the string representation of the modality.
func (m PaymentModality) String() string { return m.value }

// IsZero returns true if the modality has not been initialised.
func (m PaymentModality) IsZero() bool { return m.value == "" }

// Equal returns true when both modalities carry the same value.
func (m PaymentModality) Equal(other PaymentModality) bool { return m.value == other.value }

// PeriodsPerYear returns the number of amortization periods in a year for
// the modality. Unrecognised (zero) modalities fall back to monthly.
func (m PaymentModality) PeriodsPerYear() int {
	switch m.value {
	case modalityDiario:
		return 365
	case modalitySemanal:
		return 52
	case modalityQuincenal:
		return 24
	case modalityMensual:
		return 12
	case modalityAnual:
		return 1
	default:
		return 12
	}
}
