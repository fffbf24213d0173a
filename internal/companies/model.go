package companies

import "time"

// Company is a tenant. Every user and document belongs to exactly one.
type Company struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
