package companies

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const companyColumns = `id, name, created_at, updated_at`

// Create inserts a new company row.
func (r *PGRepo) Create(ctx context.Context, company Company) error {
	const query = `
INSERT INTO companies (id, name, created_at, updated_at)
VALUES ($1, $2, now(), now())`
	_, err := r.DB.ExecContext(ctx, query, company.ID, company.Name)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrNameTaken
		}
		return err
	}
	return nil
}

// GetByID fetches a company by primary key.
func (r *PGRepo) GetByID(ctx context.Context, companyID string) (Company, error) {
	const query = `SELECT ` + companyColumns + ` FROM companies WHERE id = $1 LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, companyID))
}

// GetByName fetches a company by its exact name.
func (r *PGRepo) GetByName(ctx context.Context, name string) (Company, error) {
	const query = `SELECT ` + companyColumns + ` FROM companies WHERE name = $1 LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, name))
}

// List returns every company, newest first.
func (r *PGRepo) List(ctx context.Context) ([]Company, error) {
	const query = `SELECT ` + companyColumns + ` FROM companies ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Company
	for rows.Next() {
		var company Company
		if err := rows.Scan(&company.ID, &company.Name, &company.CreatedAt, &company.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, company)
	}
	return out, rows.Err()
}

func (r *PGRepo) scanOne(row *sql.Row) (Company, error) {
	var company Company
	err := row.Scan(&company.ID, &company.Name, &company.CreatedAt, &company.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Company{}, ErrNotFound
		}
		return Company{}, err
	}
	return company, nil
}

var _ Repo = (*PGRepo)(nil)
