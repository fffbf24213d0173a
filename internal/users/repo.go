package users

import "context"

// Repo defines persistence operations for users. List and count are always
// company-scoped; GetByEmail is deliberately unscoped because login precedes
// tenant context and the cross-organization duplicate check needs it.
type Repo interface {
	Create(ctx context.Context, user User) error
	GetByID(ctx context.Context, userID string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByEmailInCompany(ctx context.Context, email, companyID string) (User, error)
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]User, error)
	CountByCompany(ctx context.Context, companyID string) (int, error)
	Delete(ctx context.Context, userID string) error
}
