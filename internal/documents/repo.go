package documents

import "context"

// Repo abstracts document persistence.
type Repo interface {
	Create(ctx context.Context, doc Document) error
	GetByID(ctx context.Context, documentID string) (Document, error)
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]Document, error)
	CountByCompany(ctx context.Context, companyID string) (int, error)
	Delete(ctx context.Context, documentID string) error
	// SetStatus updates the document status; a non-empty autoSummary also
	// replaces the stored summary.
	SetStatus(ctx context.Context, documentID, status, autoSummary string) error
}
