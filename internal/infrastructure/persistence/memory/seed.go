package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/agarciagaray/mi-riesgo/internal/domain/model"
	"github.com/agarciagaray/mi-riesgo/internal/domain/valueobject"
)

// Seed loads a deterministic demo dataset: one reporting entity and a small
// client population covering the interesting states — up to date, in
// arrears, in legal collection and flagged.
func Seed(ctx context.Context, store *Store, now time.Time) error {
	companies := store.Companies()
	clients := store.Clients()
	loans := store.Loans()

	if err := companies.Save(ctx, model.Company{
		ID: 1, Name: "CrediSur S.A.S.", NIT: "900123456-7",
		TransUnionCode: "TU-4471", Address: "Calle 100 # 8A-55, Bogotá",
		Phone: "6015550100", Email: "reportes@credisur.co", Active: true,
	}); err != nil {
		return fmt.Errorf("seed company: %w", err)
	}

	seeds := []struct {
		identifier, name string
		birthDate        time.Time
		address, phone   string
		email            string
		flags            []string
		loanStatus       valueobject.CreditStatus
		balance          int64
		payments         []model.Payment
	}{
		{
			identifier: "123456780", name: "Carlos Andrés García Martínez",
			birthDate: time.Date(1985, time.March, 15, 0, 0, 0, 0, time.UTC),
			address:   "Calle 123 # 45-67, Bogotá", phone: "3001234567",
			email:      "carlos.garcia@example.com",
			loanStatus: valueobject.CreditStatusVigente, balance: 3_200_000,
			payments: paidHistory(now, 6, 0),
		},
		{
			identifier: "987654321", name: "María Elena Rodríguez López",
			birthDate: time.Date(1978, time.November, 22, 0, 0, 0, 0, time.UTC),
			address:   "Carrera 89 # 12-34, Medellín", phone: "3109876543",
			email:      "maria.rodriguez@example.com",
			loanStatus: valueobject.CreditStatusEnMora, balance: 4_100_000,
			payments: append(paidHistory(now, 4, 0), overdueHistory(now, 4, 2, 45)...),
		},
		{
			identifier: "101010101", name: "Juan Carlos Pérez Hernández",
			birthDate: time.Date(1990, time.July, 8, 0, 0, 0, 0, time.UTC),
			address:   "Avenida 56 # 78-90, Cali", phone: "3157891234",
			email:      "juan.perez@example.com",
			loanStatus: valueobject.CreditStatusPagado, balance: 0,
			payments: paidHistory(now, 12, 20),
		},
		{
			identifier: "202020202", name: "Ana Isabel Gutiérrez Silva",
			birthDate: time.Date(1983, time.December, 5, 0, 0, 0, 0, time.UTC),
			address:   "Transversal 23 # 45-12, Barranquilla", phone: "3204567890",
			email:      "ana.gutierrez@example.com",
			loanStatus: valueobject.CreditStatusEnJuridica, balance: 5_800_000,
			payments: overdueHistory(now, 0, 5, 190),
		},
		{
			identifier: "303030303", name: "Luis Fernando Morales Castro",
			birthDate: time.Date(1992, time.April, 18, 0, 0, 0, 0, time.UTC),
			address:   "Diagonal 67 # 89-23, Bucaramanga", phone: "3013456789",
			email:      "luis.morales@example.com",
			flags:      []string{"Fraude"},
			loanStatus: valueobject.CreditStatusFraudulento, balance: 2_500_000,
			payments: overdueHistory(now, 0, 3, 95),
		},
	}

	for i, seed := range seeds {
		client, err := model.NewClient(
			0, 1, seed.identifier, seed.name, seed.birthDate,
			seed.address, seed.phone, seed.email, now.AddDate(-1, 0, 0),
		)
		if err != nil {
			return fmt.Errorf("seed client %s: %w", seed.identifier, err)
		}
		if len(seed.flags) > 0 {
			client, err = client.UpdateContact(seed.name, "", "", "", seed.flags, now.AddDate(0, -6, 0))
			if err != nil {
				return fmt.Errorf("seed flags %s: %w", seed.identifier, err)
			}
			client = client.ClearEvents()
		}
		if err := clients.Save(ctx, client); err != nil {
			return fmt.Errorf("seed client %s: %w", seed.identifier, err)
		}

		stored, err := clients.FindByNationalIdentifier(ctx, seed.identifier)
		if err != nil {
			return fmt.Errorf("reload seed client %s: %w", seed.identifier, err)
		}

		loanID := int64(1000 + i)
		loan, err := model.NewLoan(
			loanID, stored.ID(), 1,
			now.AddDate(-1, -2, 0),
			decimal.NewFromInt(6_000_000),
			valueobject.ModalityMensual,
			decimal.NewFromFloat(2.2),
			12,
			decimal.NewFromInt(seed.balance),
			seed.loanStatus,
			now.AddDate(0, 0, -15),
			seed.payments,
		)
		if err != nil {
			return fmt.Errorf("seed loan %d: %w", loanID, err)
		}
		if err := loans.Save(ctx, loan); err != nil {
			return fmt.Errorf("seed loan %d: %w", loanID, err)
		}
	}

	return nil
}

// paidHistory builds n settled monthly installments ending near now, each
// paid daysLate days after its due date.
func paidHistory(now time.Time, n, daysLate int) []model.Payment {
	amount := decimal.NewFromInt(565_000)
	payments := make([]model.Payment, 0, n)
	for i := 1; i <= n; i++ {
		due := now.AddDate(0, i-n-1, 0)
		actual := due.AddDate(0, 0, daysLate)
		payments = append(payments, model.Payment{
			InstallmentNumber:   i,
			ExpectedPaymentDate: due,
			ActualPaymentDate:   &actual,
			AmountPaid:          &amount,
			Status:              valueobject.PaymentStatusPagado,
			DaysLate:            daysLate,
		})
	}
	return payments
}

// overdueHistory builds n installments in arrears numbered after offset,
// the oldest one maxDays late and the rest stepping down by 30 days.
func overdueHistory(now time.Time, offset, n, maxDays int) []model.Payment {
	payments := make([]model.Payment, 0, n)
	for i := 1; i <= n; i++ {
		daysLate := maxDays - (i-1)*30
		if daysLate < 1 {
			daysLate = 1
		}
		payments = append(payments, model.Payment{
			InstallmentNumber:   offset + i,
			ExpectedPaymentDate: now.AddDate(0, 0, -daysLate),
			Status:              valueobject.PaymentStatusEnMora,
			DaysLate:            daysLate,
		})
	}
	return payments
}
