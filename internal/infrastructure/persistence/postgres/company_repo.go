package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agarciagaray/mi-riesgo/internal/domain/model"
	"github.com/agarciagaray/mi-riesgo/internal/domain/port"
)

// CompanyRepo implements port.CompanyRepository.
type CompanyRepo struct {
	pool *pgxpool.Pool
}

// NewCompanyRepo creates a new PostgreSQL-backed company repository.
func NewCompanyRepo(pool *pgxpool.Pool) *CompanyRepo {
	return &CompanyRepo{pool: pool}
}

// Save upserts a reporting entity.
func (r *CompanyRepo) Save(ctx context.Context, company model.Company) error {
	query := `
		INSERT INTO companies (id, name, nit, transunion_code, address, phone, email, active)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (id) DO UPDATE SET
			name            = EXCLUDED.name,
			nit             = EXCLUDED.nit,
			transunion_code = EXCLUDED.transunion_code,
			address         = EXCLUDED.address,
			phone           = EXCLUDED.phone,
			email           = EXCLUDED.email,
			active          = EXCLUDED.active
	`
	_, err := r.pool.Exec(ctx, query,
		company.ID, company.Name, company.NIT, company.TransUnionCode,
		company.Address, company.Phone, company.Email, company.Active,
	)
	if err != nil {
		return fmt.Errorf("save company: %w", err)
	}
	return nil
}

// FindByID retrieves a reporting entity.
func (r *CompanyRepo) FindByID(ctx context.Context, id int64) (model.Company, error) {
	company, err := scanCompany(r.pool.QueryRow(ctx, `
		SELECT id, name, nit, transunion_code, address, phone, email, active
		FROM companies WHERE id = $1
	`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Company{}, port.ErrNotFound
		}
		return model.Company{}, err
	}
	return company, nil
}

// FindAll retrieves every registered reporting entity.
func (r *CompanyRepo) FindAll(ctx context.Context) ([]model.Company, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, nit, transunion_code, address, phone, email, active
		FROM companies ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("query companies: %w", err)
	}
	defer rows.Close()

	var companies []model.Company
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, company)
	}
	return companies, rows.Err()
}

func scanCompany(s scannable) (model.Company, error) {
	var c model.Company
	err := s.Scan(&c.ID, &c.Name, &c.NIT, &c.TransUnionCode, &c.Address, &c.Phone, &c.Email, &c.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Company{}, pgx.ErrNoRows
		}
		return model.Company{}, fmt.Errorf("scan company: %w", err)
	}
	return c, nil
}
