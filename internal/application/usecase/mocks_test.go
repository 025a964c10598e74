package usecase_test

import (
	"context"

	"github.com/agarciagaray/mi-riesgo/internal/domain/event"
	"github.com/agarciagaray/mi-riesgo/internal/domain/model"
	"github.com/agarciagaray/mi-riesgo/internal/domain/port"
)

// ---------------------------------------------------------------------------
// Hand-rolled mocks
// ---------------------------------------------------------------------------

type mockClientRepository struct {
	saveFunc                     func(ctx context.Context, client model.Client) error
	findByIDFunc                 func(ctx context.Context, id int64) (model.Client, error)
	findByNationalIdentifierFunc func(ctx context.Context, identifier string) (model.Client, error)
	findAllFunc                  func(ctx context.Context) ([]model.Client, error)

	savedClients []model.Client
}

func (m *mockClientRepository) Save(ctx context.Context, client model.Client) error {
	m.savedClients = append(m.savedClients, client)
	if m.saveFunc != nil {
		return m.saveFunc(ctx, client)
	}
	return nil
}

func (m *mockClientRepository) FindByID(ctx context.Context, id int64) (model.Client, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return model.Client{}, port.ErrNotFound
}

func (m *mockClientRepository) FindByNationalIdentifier(ctx context.Context, identifier string) (model.Client, error) {
	if m.findByNationalIdentifierFunc != nil {
		return m.findByNationalIdentifierFunc(ctx, identifier)
	}
	return model.Client{}, port.ErrNotFound
}

func (m *mockClientRepository) FindAll(ctx context.Context) ([]model.Client, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx)
	}
	return nil, nil
}

type mockLoanRepository struct {
	saveFunc         func(ctx context.Context, loan model.Loan) error
	findByIDFunc     func(ctx context.Context, id int64) (model.Loan, error)
	findByClientFunc func(ctx context.Context, clientID int64) ([]model.Loan, error)
	findAllFunc      func(ctx context.Context) ([]model.Loan, error)

	savedLoans []model.Loan
}

func (m *mockLoanRepository) Save(ctx context.Context, loan model.Loan) error {
	m.savedLoans = append(m.savedLoans, loan)
	if m.saveFunc != nil {
		return m.saveFunc(ctx, loan)
	}
	return nil
}

func (m *mockLoanRepository) FindByID(ctx context.Context, id int64) (model.Loan, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return model.Loan{}, port.ErrNotFound
}

func (m *mockLoanRepository) FindByClientID(ctx context.Context, clientID int64) ([]model.Loan, error) {
	if m.findByClientFunc != nil {
		return m.findByClientFunc(ctx, clientID)
	}
	return nil, nil
}

func (m *mockLoanRepository) FindAll(ctx context.Context) ([]model.Loan, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx)
	}
	return nil, nil
}

type mockCompanyRepository struct {
	saveFunc     func(ctx context.Context, company model.Company) error
	findByIDFunc func(ctx context.Context, id int64) (model.Company, error)
	findAllFunc  func(ctx context.Context) ([]model.Company, error)
}

func (m *mockCompanyRepository) Save(ctx context.Context, company model.Company) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, company)
	}
	return nil
}

func (m *mockCompanyRepository) FindByID(ctx context.Context, id int64) (model.Company, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return model.Company{}, port.ErrNotFound
}

func (m *mockCompanyRepository) FindAll(ctx context.Context) ([]model.Company, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx)
	}
	return nil, nil
}

type mockEventPublisher struct {
	publishFunc func(ctx context.Context, events ...event.DomainEvent) error

	published []event.DomainEvent
}

func (m *mockEventPublisher) Publish(ctx context.Context, events ...event.DomainEvent) error {
	m.published = append(m.published, events...)
	if m.publishFunc != nil {
		return m.publishFunc(ctx, events...)
	}
	return nil
}

type mockScoringClient struct {
	scoreFunc func(ctx context.Context, report model.CreditReport) (model.RiskScore, error)

	calls int
}

func (m *mockScoringClient) ScoreReport(ctx context.Context, report model.CreditReport) (model.RiskScore, error) {
	m.calls++
	if m.scoreFunc != nil {
		return m.scoreFunc(ctx, report)
	}
	return model.RiskScore{}, nil
}
