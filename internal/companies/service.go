package companies

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"companybot-backend/internal/users"
)

// Service contains the superadmin provisioning logic: creating tenants and
// their primary admins.
type Service struct {
	Repo  Repo
	Users *users.Service
}

// NewService constructs a Service.
func NewService(repo Repo, userSvc *users.Service) *Service {
	return &Service{Repo: repo, Users: userSvc}
}

// Create provisions a new tenant. Names are unique globally.
func (s *Service) Create(ctx context.Context, name string) (Company, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Company{}, ErrInvalidInput
	}

	if _, err := s.Repo.GetByName(ctx, name); err == nil {
		return Company{}, ErrNameTaken
	} else if !errors.Is(err, ErrNotFound) {
		return Company{}, err
	}

	company := Company{
		ID:   uuid.NewString(),
		Name: name,
	}
	if err := s.Repo.Create(ctx, company); err != nil {
		return Company{}, err
	}
	return company, nil
}

// List returns every tenant, newest first.
func (s *Service) List(ctx context.Context) ([]Company, error) {
	list, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	if list == nil {
		list = []Company{}
	}
	return list, nil
}

// CreateAdmin provisions the primary admin for an existing tenant. The
// target company must exist and the email must be globally unused.
func (s *Service) CreateAdmin(ctx context.Context, companyID string, in users.CreateInput) (users.User, error) {
	if _, err := s.Repo.GetByID(ctx, companyID); err != nil {
		return users.User{}, err
	}
	return s.Users.CreateAdmin(ctx, companyID, in)
}
