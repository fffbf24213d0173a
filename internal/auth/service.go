package auth

import (
	"context"
	"errors"
	"strings"

	"companybot-backend/internal/companies"
	sharedauth "companybot-backend/internal/shared/auth"
	"companybot-backend/internal/shared/util"
	"companybot-backend/internal/users"
)

var (
	// ErrUserNotFound means no account exists for the email.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials means the account exists but the password is wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// LoginResult carries the signed token and the sanitized user payload.
type LoginResult struct {
	Token string
	User  users.User
	// CompanyName is resolved from the user's tenant; empty when the
	// company row is missing.
	CompanyName string
}

// Service implements email/password login.
type Service struct {
	Users     users.Repo
	Companies companies.Repo
	Tokens    *sharedauth.Tokens
}

// NewService constructs a Service.
func NewService(userRepo users.Repo, companyRepo companies.Repo, tokens *sharedauth.Tokens) *Service {
	return &Service{Users: userRepo, Companies: companyRepo, Tokens: tokens}
}

// Login resolves the account by email across all tenants, verifies the
// password, and mints a 24h token. Unknown email and wrong password are
// distinct failures so the handler can keep the original status split.
func (s *Service) Login(ctx context.Context, email, password string) (LoginResult, error) {
	// Accounts are stored with lowercased emails; normalize the same way here
	// so login accepts whatever casing the user typed at signup.
	email = strings.TrimSpace(strings.ToLower(email))
	user, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return LoginResult{}, ErrUserNotFound
		}
		return LoginResult{}, err
	}

	if !util.CheckPassword(user.PasswordHash, password) {
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := s.Tokens.Sign(user.ID, user.Role, user.CompanyID)
	if err != nil {
		return LoginResult{}, err
	}

	result := LoginResult{Token: token, User: user}
	if company, err := s.Companies.GetByID(ctx, user.CompanyID); err == nil {
		result.CompanyName = company.Name
	}
	return result, nil
}
