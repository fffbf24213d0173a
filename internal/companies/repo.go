package companies

import "context"

// Repo abstracts company persistence.
type Repo interface {
	Create(ctx context.Context, company Company) error
	GetByID(ctx context.Context, companyID string) (Company, error)
	GetByName(ctx context.Context, name string) (Company, error)
	List(ctx context.Context) ([]Company, error)
}
