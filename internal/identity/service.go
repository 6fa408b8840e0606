package identity

import (
	"context"
	"errors"

	"github.com/coraxie-ca/comp3005-project/internal/admin"
	"github.com/coraxie-ca/comp3005-project/internal/auth"
	"github.com/coraxie-ca/comp3005-project/internal/member"
	"github.com/coraxie-ca/comp3005-project/internal/trainer"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type Service interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (string, *Principal, error)
}

type service struct {
	adminRepo   admin.Repository
	trainerRepo trainer.Repository
	memberRepo  member.Repository
	jwtSecret   string
}

func NewService(adminRepo admin.Repository, trainerRepo trainer.Repository, memberRepo member.Repository, jwtSecret string) Service {
	return &service{
		adminRepo:   adminRepo,
		trainerRepo: trainerRepo,
		memberRepo:  memberRepo,
		jwtSecret:   jwtSecret,
	}
}

// Login resolves the account by email, checking the admin, trainer and
// member tables in that order, then verifies the password.
func (s *service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	principal, passwordHash, err := s.lookup(ctx, req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !auth.CheckPassword(passwordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	accessToken, refreshToken, err := auth.GenerateTokens(
		principal.ID,
		principal.Email,
		principal.Role,
		s.jwtSecret,
		s.jwtSecret,
	)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Principal:    *principal,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *service) lookup(ctx context.Context, email string) (*Principal, string, error) {
	if a, err := s.adminRepo.FindByEmail(ctx, email); err == nil {
		return &Principal{ID: a.ID, Name: a.Name, Email: a.Email, Role: auth.RoleAdmin}, a.PasswordHash, nil
	}

	if t, err := s.trainerRepo.FindByEmail(ctx, email); err == nil {
		return &Principal{ID: t.ID, Name: t.Name, Email: t.Email, Role: auth.RoleTrainer}, t.PasswordHash, nil
	}

	if m, err := s.memberRepo.FindByEmail(ctx, email); err == nil {
		return &Principal{ID: m.ID, Name: m.Name, Email: m.Email, Role: auth.RoleMember}, m.PasswordHash, nil
	}

	return nil, "", ErrInvalidCredentials
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (string, *Principal, error) {
	newAccessToken, claims, err := auth.RefreshAccessToken(refreshToken, s.jwtSecret, s.jwtSecret)
	if err != nil {
		return "", nil, err
	}

	principal, _, err := s.lookup(ctx, claims.Email)
	if err != nil {
		return "", nil, err
	}

	return newAccessToken, principal, nil
}
