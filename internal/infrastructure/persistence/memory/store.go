package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/agarciagaray/mi-riesgo/internal/domain/model"
	"github.com/agarciagaray/mi-riesgo/internal/domain/port"
)

// Store is an in-memory implementation of the repository ports, used in demo
// mode and in tests. All methods are safe for concurrent use.
type Store struct {
	mu           sync.RWMutex
	clients      map[int64]model.Client
	clientsByNID map[string]int64
	loans        map[int64]model.Loan
	companies    map[int64]model.Company
	nextClientID int64
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		clients:      make(map[int64]model.Client),
		clientsByNID: make(map[string]int64),
		loans:        make(map[int64]model.Loan),
		companies:    make(map[int64]model.Company),
		nextClientID: 1,
	}
}

// Clients returns the store as a port.ClientRepository.
func (s *Store) Clients() port.ClientRepository { return (*clientStore)(s) }

// Loans returns the store as a port.LoanRepository.
func (s *Store) Loans() port.LoanRepository { return (*loanStore)(s) }

// Companies returns the store as a port.CompanyRepository.
func (s *Store) Companies() port.CompanyRepository { return (*companyStore)(s) }

// ---------------------------------------------------------------------------
// ClientRepository
// ---------------------------------------------------------------------------

type clientStore Store

func (s *clientStore) Save(_ context.Context, client model.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := client.ID()
	if existing, ok := s.clientsByNID[client.NationalIdentifier()]; ok {
		id = existing
	} else if id == 0 {
		id = s.nextClientID
	}
	if id >= s.nextClientID {
		s.nextClientID = id + 1
	}

	stored := model.ReconstructClient(
		id, client.CompanyID(),
		client.NationalIdentifier(), client.FullName(), client.BirthDate(),
		client.Addresses(), client.Phones(), client.Emails(),
		client.Flags(),
	)
	s.clients[id] = stored
	s.clientsByNID[client.NationalIdentifier()] = id
	return nil
}

func (s *clientStore) FindByID(_ context.Context, id int64) (model.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	client, ok := s.clients[id]
	if !ok {
		return model.Client{}, port.ErrNotFound
	}
	return client, nil
}

func (s *clientStore) FindByNationalIdentifier(_ context.Context, identifier string) (model.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.clientsByNID[identifier]
	if !ok {
		return model.Client{}, port.ErrNotFound
	}
	return s.clients[id], nil
}

func (s *clientStore) FindAll(_ context.Context) ([]model.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Client, 0, len(s.clients))
	for _, client := range s.clients {
		out = append(out, client)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out, nil
}

// ---------------------------------------------------------------------------
// LoanRepository
// ---------------------------------------------------------------------------

type loanStore Store

func (s *loanStore) Save(_ context.Context, loan model.Loan) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loans[loan.ID()] = loan.ClearEvents()
	return nil
}

func (s *loanStore) FindByID(_ context.Context, id int64) (model.Loan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	loan, ok := s.loans[id]
	if !ok {
		return model.Loan{}, port.ErrNotFound
	}
	return loan, nil
}

func (s *loanStore) FindByClientID(_ context.Context, clientID int64) ([]model.Loan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Loan
	for _, loan := range s.loans {
		if loan.ClientID() == clientID {
			out = append(out, loan)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out, nil
}

func (s *loanStore) FindAll(_ context.Context) ([]model.Loan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Loan, 0, len(s.loans))
	for _, loan := range s.loans {
		out = append(out, loan)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out, nil
}

// ---------------------------------------------------------------------------
// CompanyRepository
// ---------------------------------------------------------------------------

type companyStore Store

func (s *companyStore) Save(_ context.Context, company model.Company) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.companies[company.ID] = company
	return nil
}

func (s *companyStore) FindByID(_ context.Context, id int64) (model.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	company, ok := s.companies[id]
	if !ok {
		return model.Company{}, port.ErrNotFound
	}
	return company, nil
}

func (s *companyStore) FindAll(_ context.Context) ([]model.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Company, 0, len(s.companies))
	for _, company := range s.companies {
		out = append(out, company)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
