package port

import (
	"context"
	"errors"

	"github.com/agarciagaray/mi-riesgo/internal/domain/event"
	"github.com/agarciagaray/mi-riesgo/internal/domain/model"
)

// ErrNotFound signals that no record exists for the given identifier. The
// presentation layer maps it to a plain not-found response instead of a
// server error.
var ErrNotFound = errors.New("record not found")

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// ClientRepository persists and retrieves client records. The core never
// knows whether the backing store is the real upstream or an in-memory demo
// dataset.
type ClientRepository interface {
	Save(ctx context.Context, client model.Client) error
	FindByID(ctx context.Context, id int64) (model.Client, error)
	FindByNationalIdentifier(ctx context.Context, identifier string) (model.Client, error)
	FindAll(ctx context.Context) ([]model.Client, error)
}

// LoanRepository persists and retrieves loans with their payment histories.
type LoanRepository interface {
	Save(ctx context.Context, loan model.Loan) error
	FindByID(ctx context.Context, id int64) (model.Loan, error)
	FindByClientID(ctx context.Context, clientID int64) ([]model.Loan, error)
	FindAll(ctx context.Context) ([]model.Loan, error)
}

// CompanyRepository retrieves the reporting entities registered with the
// bureau.
type CompanyRepository interface {
	Save(ctx context.Context, company model.Company) error
	FindByID(ctx context.Context, id int64) (model.Company, error)
	FindAll(ctx context.Context) ([]model.Company, error)
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}

// ---------------------------------------------------------------------------
// External service ports
// ---------------------------------------------------------------------------

// ScoringClient is the optional remote risk-scoring collaborator. Calls must
// observe the context deadline; any failure makes the caller fall back to
// the local deterministic scorer.
type ScoringClient interface {
	ScoreReport(ctx context.Context, report model.CreditReport) (model.RiskScore, error)
}
