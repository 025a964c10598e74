package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/agarciagaray/mi-riesgo/internal/domain/model"
	"github.com/agarciagaray/mi-riesgo/internal/domain/port"
	"github.com/agarciagaray/mi-riesgo/internal/domain/valueobject"
	pkgpostgres "github.com/agarciagaray/mi-riesgo/pkg/postgres"
)

// LoanRepo implements port.LoanRepository.
type LoanRepo struct {
	pool *pgxpool.Pool
}

// NewLoanRepo creates a new PostgreSQL-backed loan repository.
func NewLoanRepo(pool *pgxpool.Pool) *LoanRepo {
	return &LoanRepo{pool: pool}
}

// Save persists a loan and rewrites its payment history. Loan identifiers
// come from the reporting entity, so the row is upserted on the external id.
func (r *LoanRepo) Save(ctx context.Context, loan model.Loan) error {
	return pkgpostgres.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		query := `
			INSERT INTO loans (
				id, client_id, company_id, origination_date,
				original_amount, modality, interest_rate, installments,
				current_balance, status, last_report_date
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
			ON CONFLICT (id) DO UPDATE SET
				current_balance  = EXCLUDED.current_balance,
				status           = EXCLUDED.status,
				last_report_date = EXCLUDED.last_report_date
		`
		_, err := tx.Exec(ctx, query,
			loan.ID(), loan.ClientID(), loan.CompanyID(), loan.OriginationDate(),
			loan.OriginalAmount(), loan.Modality().String(), loan.InterestRate(), loan.Installments(),
			loan.CurrentBalance(), loan.Status().String(), loan.LastReportDate(),
		)
		if err != nil {
			return fmt.Errorf("save loan: %w", err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM payments WHERE loan_id = $1`, loan.ID()); err != nil {
			return fmt.Errorf("clear payments: %w", err)
		}
		for _, p := range loan.Payments() {
			_, err := tx.Exec(ctx, `
				INSERT INTO payments (
					loan_id, installment_number, expected_payment_date,
					actual_payment_date, amount_paid, status, days_late
				) VALUES ($1,$2,$3,$4,$5,$6,$7)
			`, loan.ID(), p.InstallmentNumber, p.ExpectedPaymentDate,
				p.ActualPaymentDate, p.AmountPaid, p.Status.String(), p.DaysLate,
			)
			if err != nil {
				return fmt.Errorf("save payment %d: %w", p.InstallmentNumber, err)
			}
		}

		return nil
	})
}

// FindByID retrieves a loan and its payment history.
func (r *LoanRepo) FindByID(ctx context.Context, id int64) (model.Loan, error) {
	loan, err := r.scanOneLoan(ctx, `
		SELECT id, client_id, company_id, origination_date,
		       original_amount, modality, interest_rate, installments,
		       current_balance, status, last_report_date
		FROM loans WHERE id = $1
	`, id)
	if err != nil {
		return model.Loan{}, err
	}
	return r.withPayments(ctx, loan)
}

// FindByClientID retrieves all loans reported for a client.
func (r *LoanRepo) FindByClientID(ctx context.Context, clientID int64) ([]model.Loan, error) {
	return r.findMany(ctx, `
		SELECT id, client_id, company_id, origination_date,
		       original_amount, modality, interest_rate, installments,
		       current_balance, status, last_report_date
		FROM loans WHERE client_id = $1
		ORDER BY origination_date DESC
	`, clientID)
}

// FindAll retrieves every loan with its payment history.
func (r *LoanRepo) FindAll(ctx context.Context) ([]model.Loan, error) {
	return r.findMany(ctx, `
		SELECT id, client_id, company_id, origination_date,
		       original_amount, modality, interest_rate, installments,
		       current_balance, status, last_report_date
		FROM loans ORDER BY id
	`)
}

// ---------------------------------------------------------------------------
// internal helpers
// ---------------------------------------------------------------------------

func (r *LoanRepo) findMany(ctx context.Context, query string, args ...any) ([]model.Loan, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query loans: %w", err)
	}
	defer rows.Close()

	var bases []model.Loan
	for rows.Next() {
		loan, err := scanLoanRow(rows)
		if err != nil {
			return nil, err
		}
		bases = append(bases, loan)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	loans := make([]model.Loan, 0, len(bases))
	for _, base := range bases {
		loan, err := r.withPayments(ctx, base)
		if err != nil {
			return nil, err
		}
		loans = append(loans, loan)
	}
	return loans, nil
}

func (r *LoanRepo) scanOneLoan(ctx context.Context, query string, args ...any) (model.Loan, error) {
	loan, err := scanLoanRow(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Loan{}, port.ErrNotFound
		}
		return model.Loan{}, err
	}
	return loan, nil
}

func scanLoanRow(s scannable) (model.Loan, error) {
	var (
		id, clientID, companyID int64
		originationDate         time.Time
		originalAmount          decimal.Decimal
		modalityStr             string
		interestRate            decimal.Decimal
		installments            int
		currentBalance          decimal.Decimal
		statusStr               string
		lastReportDate          time.Time
	)

	err := s.Scan(
		&id, &clientID, &companyID, &originationDate,
		&originalAmount, &modalityStr, &interestRate, &installments,
		&currentBalance, &statusStr, &lastReportDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Loan{}, pgx.ErrNoRows
		}
		return model.Loan{}, fmt.Errorf("scan loan: %w", err)
	}

	modality, err := valueobject.NewPaymentModality(modalityStr)
	if err != nil {
		return model.Loan{}, fmt.Errorf("parse modality: %w", err)
	}
	status, err := valueobject.NewCreditStatus(statusStr)
	if err != nil {
		return model.Loan{}, fmt.Errorf("parse loan status: %w", err)
	}

	return model.ReconstructLoan(
		id, clientID, companyID, originationDate,
		originalAmount, modality, interestRate, installments,
		currentBalance, status, lastReportDate, nil,
	), nil
}

func (r *LoanRepo) withPayments(ctx context.Context, loan model.Loan) (model.Loan, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, installment_number, expected_payment_date,
		       actual_payment_date, amount_paid, status, days_late
		FROM payments
		WHERE loan_id = $1
		ORDER BY installment_number
	`, loan.ID())
	if err != nil {
		return model.Loan{}, fmt.Errorf("query payments: %w", err)
	}
	defer rows.Close()

	var payments []model.Payment
	for rows.Next() {
		var (
			p         model.Payment
			statusStr string
		)
		err := rows.Scan(
			&p.ID, &p.InstallmentNumber, &p.ExpectedPaymentDate,
			&p.ActualPaymentDate, &p.AmountPaid, &statusStr, &p.DaysLate,
		)
		if err != nil {
			return model.Loan{}, fmt.Errorf("scan payment: %w", err)
		}
		status, err := valueobject.NewPaymentStatus(statusStr)
		if err != nil {
			return model.Loan{}, fmt.Errorf("parse payment status: %w", err)
		}
		p.Status = status
		p.LoanID = loan.ID()
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return model.Loan{}, err
	}

	return model.ReconstructLoan(
		loan.ID(), loan.ClientID(), loan.CompanyID(), loan.OriginationDate(),
		loan.OriginalAmount(), loan.Modality(), loan.InterestRate(), loan.Installments(),
		loan.CurrentBalance(), loan.Status(), loan.LastReportDate(), payments,
	), nil
}
