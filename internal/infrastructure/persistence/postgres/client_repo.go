package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agarciagaray/mi-riesgo/internal/domain/model"
	"github.com/agarciagaray/mi-riesgo/internal/domain/port"
	pkgpostgres "github.com/agarciagaray/mi-riesgo/pkg/postgres"
)

// History kinds stored in client_contact_history.
const (
	historyKindAddress = "address"
	historyKindPhone   = "phone"
	historyKindEmail   = "email"
)

// ClientRepo implements port.ClientRepository.
type ClientRepo struct {
	pool *pgxpool.Pool
}

// NewClientRepo creates a new PostgreSQL-backed client repository.
func NewClientRepo(pool *pgxpool.Pool) *ClientRepo {
	return &ClientRepo{pool: pool}
}

// Save persists the full client state: the base row, the contact histories
// and the flag set. Histories and flags are rewritten wholesale because the
// aggregate always carries them complete.
func (r *ClientRepo) Save(ctx context.Context, client model.Client) error {
	return pkgpostgres.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		query := `
			INSERT INTO clients (company_id, national_identifier, full_name, birth_date)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (national_identifier) DO UPDATE SET
				company_id = EXCLUDED.company_id,
				full_name  = EXCLUDED.full_name,
				birth_date = EXCLUDED.birth_date
			RETURNING id
		`
		var clientID int64
		err := tx.QueryRow(ctx, query,
			client.CompanyID(), client.NationalIdentifier(), client.FullName(), client.BirthDate(),
		).Scan(&clientID)
		if err != nil {
			return fmt.Errorf("save client: %w", err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM client_contact_history WHERE client_id = $1`, clientID); err != nil {
			return fmt.Errorf("clear contact history: %w", err)
		}
		if err := insertHistory(ctx, tx, clientID, historyKindAddress, client.Addresses()); err != nil {
			return err
		}
		if err := insertHistory(ctx, tx, clientID, historyKindPhone, client.Phones()); err != nil {
			return err
		}
		if err := insertHistory(ctx, tx, clientID, historyKindEmail, client.Emails()); err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, `DELETE FROM client_flags WHERE client_id = $1`, clientID); err != nil {
			return fmt.Errorf("clear flags: %w", err)
		}
		for _, flag := range client.Flags() {
			if _, err := tx.Exec(ctx,
				`INSERT INTO client_flags (client_id, flag) VALUES ($1, $2)`, clientID, flag,
			); err != nil {
				return fmt.Errorf("save flag %q: %w", flag, err)
			}
		}

		return nil
	})
}

// FindByID retrieves a client with contact histories and flags.
func (r *ClientRepo) FindByID(ctx context.Context, id int64) (model.Client, error) {
	return r.findOne(ctx, `
		SELECT id, company_id, national_identifier, full_name, birth_date
		FROM clients WHERE id = $1
	`, id)
}

// FindByNationalIdentifier retrieves a client by cédula or NIT.
func (r *ClientRepo) FindByNationalIdentifier(ctx context.Context, identifier string) (model.Client, error) {
	return r.findOne(ctx, `
		SELECT id, company_id, national_identifier, full_name, birth_date
		FROM clients WHERE national_identifier = $1
	`, identifier)
}

// FindAll retrieves every client, histories and flags included.
func (r *ClientRepo) FindAll(ctx context.Context) ([]model.Client, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, company_id, national_identifier, full_name, birth_date
		FROM clients ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("query clients: %w", err)
	}
	defer rows.Close()

	type baseRow struct {
		id, companyID      int64
		identifier, name   string
		birthDate          time.Time
	}
	var bases []baseRow
	for rows.Next() {
		var b baseRow
		if err := rows.Scan(&b.id, &b.companyID, &b.identifier, &b.name, &b.birthDate); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		bases = append(bases, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	clients := make([]model.Client, 0, len(bases))
	for _, b := range bases {
		client, err := r.hydrate(ctx, b.id, b.companyID, b.identifier, b.name, b.birthDate)
		if err != nil {
			return nil, err
		}
		clients = append(clients, client)
	}
	return clients, nil
}

// ---------------------------------------------------------------------------
// internal helpers
// ---------------------------------------------------------------------------

func (r *ClientRepo) findOne(ctx context.Context, query string, arg any) (model.Client, error) {
	var (
		id, companyID    int64
		identifier, name string
		birthDate        time.Time
	)
	err := r.pool.QueryRow(ctx, query, arg).Scan(&id, &companyID, &identifier, &name, &birthDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Client{}, port.ErrNotFound
		}
		return model.Client{}, fmt.Errorf("scan client: %w", err)
	}
	return r.hydrate(ctx, id, companyID, identifier, name, birthDate)
}

func (r *ClientRepo) hydrate(ctx context.Context, id, companyID int64, identifier, name string, birthDate time.Time) (model.Client, error) {
	histories, err := r.loadHistories(ctx, id)
	if err != nil {
		return model.Client{}, err
	}
	flags, err := r.loadFlags(ctx, id)
	if err != nil {
		return model.Client{}, err
	}
	return model.ReconstructClient(
		id, companyID, identifier, name, birthDate,
		histories[historyKindAddress], histories[historyKindPhone], histories[historyKindEmail],
		flags,
	), nil
}

// loadHistories returns the contact histories keyed by kind, newest first.
func (r *ClientRepo) loadHistories(ctx context.Context, clientID int64) (map[string][]model.HistoricEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT kind, value, date_modified
		FROM client_contact_history
		WHERE client_id = $1
		ORDER BY date_modified DESC, id ASC
	`, clientID)
	if err != nil {
		return nil, fmt.Errorf("query contact history: %w", err)
	}
	defer rows.Close()

	histories := make(map[string][]model.HistoricEntry)
	for rows.Next() {
		var kind string
		var entry model.HistoricEntry
		if err := rows.Scan(&kind, &entry.Value, &entry.DateModified); err != nil {
			return nil, fmt.Errorf("scan history entry: %w", err)
		}
		histories[kind] = append(histories[kind], entry)
	}
	return histories, rows.Err()
}

func (r *ClientRepo) loadFlags(ctx context.Context, clientID int64) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT flag FROM client_flags WHERE client_id = $1 ORDER BY flag
	`, clientID)
	if err != nil {
		return nil, fmt.Errorf("query flags: %w", err)
	}
	defer rows.Close()

	var flags []string
	for rows.Next() {
		var flag string
		if err := rows.Scan(&flag); err != nil {
			return nil, fmt.Errorf("scan flag: %w", err)
		}
		flags = append(flags, flag)
	}
	return flags, rows.Err()
}

func insertHistory(ctx context.Context, tx pgx.Tx, clientID int64, kind string, entries []model.HistoricEntry) error {
	for _, entry := range entries {
		if _, err := tx.Exec(ctx, `
			INSERT INTO client_contact_history (client_id, kind, value, date_modified)
			VALUES ($1, $2, $3, $4)
		`, clientID, kind, entry.Value, entry.DateModified); err != nil {
			return fmt.Errorf("save %s history: %w", kind, err)
		}
	}
	return nil
}
