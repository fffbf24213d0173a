package users

import "errors"

var (
	// ErrNotFound means the user does not exist or is not visible to the
	// caller's company.
	ErrNotFound = errors.New("user not found")
	// ErrEmailTakenInCompany means the email is already used inside the
	// caller's own company.
	ErrEmailTakenInCompany = errors.New("user already exists in your company")
	// ErrEmailTakenElsewhere means the email belongs to a different
	// organization, which is rejected globally by policy.
	ErrEmailTakenElsewhere = errors.New("email registered with another organization")
	// ErrEmailTaken is the storage-level duplicate backstop (unique index).
	ErrEmailTaken = errors.New("email already registered")
	// ErrProtectedRole means the target holds an administrative role and
	// cannot be deleted through the tenant path.
	ErrProtectedRole = errors.New("cannot delete administrative roles")
	// ErrInvalidInput covers missing or malformed fields.
	ErrInvalidInput = errors.New("invalid input")
)
