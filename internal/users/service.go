package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"companybot-backend/internal/shared/pagination"
	"companybot-backend/internal/shared/util"
)

// Service contains business logic for company-scoped user management.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// CreateInput carries the fields an admin supplies when creating a user.
type CreateInput struct {
	Email    string
	Password string
	FullName string
}

// List returns one page of the company's users, newest first, with the
// pagination envelope. Pages past the end yield an empty list.
func (s *Service) List(ctx context.Context, companyID string, p pagination.Params) ([]User, pagination.Envelope, error) {
	total, err := s.Repo.CountByCompany(ctx, companyID)
	if err != nil {
		return nil, pagination.Envelope{}, fmt.Errorf("count users: %w", err)
	}
	items, err := s.Repo.ListByCompany(ctx, companyID, p.PageSize, p.Offset())
	if err != nil {
		return nil, pagination.Envelope{}, fmt.Errorf("list users: %w", err)
	}
	if items == nil {
		items = []User{}
	}
	return items, pagination.NewEnvelope(total, p), nil
}

// Create adds a regular user to the admin's company. The role is always
// "user": company admins cannot mint further admins through this path.
// Email conflicts inside the company and across organizations are reported
// as distinct errors so the caller can surface distinct messages.
func (s *Service) Create(ctx context.Context, companyID string, in CreateInput) (User, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" || in.Password == "" {
		return User{}, ErrInvalidInput
	}

	if _, err := s.Repo.GetByEmailInCompany(ctx, email, companyID); err == nil {
		return User{}, ErrEmailTakenInCompany
	} else if !errors.Is(err, ErrNotFound) {
		return User{}, err
	}

	if _, err := s.Repo.GetByEmail(ctx, email); err == nil {
		return User{}, ErrEmailTakenElsewhere
	} else if !errors.Is(err, ErrNotFound) {
		return User{}, err
	}

	return s.insert(ctx, companyID, email, in.Password, in.FullName, RoleUser)
}

// CreateAdmin adds a company admin. Only the superadmin provisioning path
// calls this; the email must be globally unused.
func (s *Service) CreateAdmin(ctx context.Context, companyID string, in CreateInput) (User, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" || in.Password == "" {
		return User{}, ErrInvalidInput
	}

	if _, err := s.Repo.GetByEmail(ctx, email); err == nil {
		return User{}, ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return User{}, err
	}

	return s.insert(ctx, companyID, email, in.Password, in.FullName, RoleAdmin)
}

// Delete removes a regular user from the caller's company. Lookups are
// company-scoped, so a valid id belonging to another company reads as
// NotFound. Administrative roles cannot be deleted here.
func (s *Service) Delete(ctx context.Context, companyID, userID string) error {
	user, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.CompanyID != companyID {
		return ErrNotFound
	}
	if user.IsAdministrative() {
		return ErrProtectedRole
	}
	return s.Repo.Delete(ctx, userID)
}

func (s *Service) insert(ctx context.Context, companyID, email, password, fullName, role string) (User, error) {
	hash, err := util.HashPassword(password)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}
	user := User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		FullName:     strings.TrimSpace(fullName),
		Role:         role,
		CompanyID:    companyID,
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return User{}, err
	}
	return user, nil
}
