package admin

import (
	"context"

	"github.com/coraxie-ca/comp3005-project/internal/auth"
	"github.com/coraxie-ca/comp3005-project/internal/logger"
)

type Service interface {
	CreateAdmin(ctx context.Context, req CreateAdminRequest) (*Admin, error)
	Bootstrap(ctx context.Context, name, email, password string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateAdmin(ctx context.Context, req CreateAdminRequest) (*Admin, error) {
	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, req.Name, req.Email, passwordHash)
}

// Bootstrap seeds the first admin account so the admin endpoints are
// reachable on a fresh database. A no-op when an admin already exists or no
// password is configured.
func (s *service) Bootstrap(ctx context.Context, name, email, password string) error {
	if password == "" {
		return nil
	}

	exists, err := s.repo.AnyExists(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	a, err := s.repo.Create(ctx, name, email, passwordHash)
	if err != nil {
		return err
	}

	logger.Infof("Bootstrap admin created: %s (ID: %d)", a.Email, a.ID)
	return nil
}
