package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// PaymentStatus – immutable value object
// ---------------------------------------------------------------------------

// PaymentStatus represents the state of a single expected installment payment.
type PaymentStatus struct {
	value string
}

const (
	paymentStatusPendiente = "Pendiente"
	paymentStatusPagado    = "Pagado"
	paymentStatusEnMora    = "En Mora"
)

var (
	PaymentStatusPendiente = PaymentStatus{value: paymentStatusPendiente}
	PaymentStatusPagado    = PaymentStatus{value: paymentStatusPagado}
	PaymentStatusEnMora    = PaymentStatus{value: paymentStatusEnMora}
)

var validPaymentStatuses = map[string]PaymentStatus{
	paymentStatusPendiente: PaymentStatusPendiente,
	paymentStatusPagado:    PaymentStatusPagado,
	paymentStatusEnMora:    PaymentStatusEnMora,
}

// NewPaymentStatus creates a PaymentStatus from a raw string.
func NewPaymentStatus(s string) (PaymentStatus, error) {
	v, ok := validPaymentStatuses[s]
	if !ok {
		return PaymentStatus{}, fmt.Errorf("invalid payment status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s PaymentStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s PaymentStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s PaymentStatus) Equal(other PaymentStatus) bool { return s.value == other.value }

// IsOverdue reports whether the installment is currently in arrears.
func (s PaymentStatus) IsOverdue() bool { return s.value == paymentStatusEnMora }

// IsPaid reports whether the installment has been settled.
func (s PaymentStatus) IsPaid() bool { return s.value == paymentStatusPagado }
