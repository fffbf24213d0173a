package documents

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const documentColumns = `id, file_name, file_url, status, company_id, context, important_points, instructions, auto_summary, created_at, updated_at`

// Create inserts a new document row.
func (r *PGRepo) Create(ctx context.Context, doc Document) error {
	const query = `
INSERT INTO documents (id, file_name, file_url, status, company_id, context, important_points, instructions, auto_summary, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())`
	_, err := r.DB.ExecContext(ctx, query,
		doc.ID,
		doc.FileName,
		nullableString(doc.FileURL),
		doc.Status,
		doc.CompanyID,
		nullableString(doc.Context),
		nullableString(doc.ImportantPoints),
		nullableString(doc.Instructions),
		nullableString(doc.AutoSummary),
	)
	return err
}

// GetByID fetches a document by primary key, unscoped. Callers enforce
// tenant scoping on the returned row.
func (r *PGRepo) GetByID(ctx context.Context, documentID string) (Document, error) {
	const query = `SELECT ` + documentColumns + ` FROM documents WHERE id = $1 LIMIT 1`
	doc, err := scanDocument(r.DB.QueryRowContext(ctx, query, documentID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, ErrNotFound
		}
		return Document{}, err
	}
	return doc, nil
}

// ListByCompany lists a company's documents, newest first.
func (r *PGRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]Document, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT ` + documentColumns + `
FROM documents
WHERE company_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

// CountByCompany counts a company's documents.
func (r *PGRepo) CountByCompany(ctx context.Context, companyID string) (int, error) {
	const query = `SELECT COUNT(*) FROM documents WHERE company_id = $1`
	var count int
	if err := r.DB.QueryRowContext(ctx, query, companyID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// Delete removes a document row by primary key.
func (r *PGRepo) Delete(ctx context.Context, documentID string) error {
	const query = `DELETE FROM documents WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query, documentID)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// SetStatus updates the status and, when provided, the auto summary.
func (r *PGRepo) SetStatus(ctx context.Context, documentID, status, autoSummary string) error {
	const query = `
UPDATE documents
SET status = $2,
    auto_summary = COALESCE(NULLIF($3, ''), auto_summary),
    updated_at = now()
WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query, documentID, status, autoSummary)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (Document, error) {
	var doc Document
	var fileURL, docContext, importantPoints, instructions, autoSummary sql.NullString
	err := row.Scan(
		&doc.ID,
		&doc.FileName,
		&fileURL,
		&doc.Status,
		&doc.CompanyID,
		&docContext,
		&importantPoints,
		&instructions,
		&autoSummary,
		&doc.CreatedAt,
		&doc.UpdatedAt,
	)
	if err != nil {
		return Document{}, err
	}
	doc.FileURL = fileURL.String
	doc.Context = docContext.String
	doc.ImportantPoints = importantPoints.String
	doc.Instructions = instructions.String
	doc.AutoSummary = autoSummary.String
	return doc, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

var _ Repo = (*PGRepo)(nil)
