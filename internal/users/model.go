package users

import "time"

// Roles. A superadmin manages companies and company admins, an admin manages
// one company's users and documents, a user only queries chat.
const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superadmin"
)

// User is an account scoped to one company. PasswordHash never leaves the
// backend; responses use UserResponse.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     string
	Role         string
	CompanyID    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdministrative reports whether the user holds an admin or superadmin role.
func (u User) IsAdministrative() bool {
	return u.Role == RoleAdmin || u.Role == RoleSuperAdmin
}

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	switch role {
	case RoleUser, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}
