package users

import "time"

// UserResponse is the outward-facing projection of a user. It never carries
// the password hash.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	CompanyID string    `json:"company_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ToResponse converts a User to its sanitized projection.
func ToResponse(user User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      user.Role,
		CompanyID: user.CompanyID,
		CreatedAt: user.CreatedAt,
	}
}

// ToResponses converts a slice of users.
func ToResponses(list []User) []UserResponse {
	out := make([]UserResponse, 0, len(list))
	for _, user := range list {
		out = append(out, ToResponse(user))
	}
	return out
}
