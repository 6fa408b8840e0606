package member

import (
	"context"
	"errors"
	"time"

	"github.com/coraxie-ca/comp3005-project/internal/auth"
	"github.com/coraxie-ca/comp3005-project/internal/logger"
)

var ErrInvalidDate = errors.New("invalid date format, use YYYY-MM-DD")

const dateLayout = "2006-01-02"

// Notifier delivers the welcome email after registration. Delivery is best
// effort and never fails the registration.
type Notifier interface {
	SendWelcome(ctx context.Context, to, name string) error
}

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*Member, string, string, error)
	GetByID(ctx context.Context, memberID int) (*Member, error)
	UpdateProfile(ctx context.Context, memberID int, req UpdateProfileRequest) (*Member, error)
}

type service struct {
	repo      Repository
	notifier  Notifier
	jwtSecret string
}

func NewService(repo Repository, notifier Notifier, jwtSecret string) Service {
	return &service{
		repo:      repo,
		notifier:  notifier,
		jwtSecret: jwtSecret,
	}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*Member, string, string, error) {
	var dob *time.Time
	if req.DateOfBirth != "" {
		parsed, err := time.Parse(dateLayout, req.DateOfBirth)
		if err != nil {
			return nil, "", "", ErrInvalidDate
		}
		dob = &parsed
	}

	var gender *string
	if req.Gender != "" {
		gender = &req.Gender
	}

	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, "", "", err
	}
	if exists {
		return nil, "", "", ErrEmailInUse
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, "", "", err
	}

	m, err := s.repo.Create(ctx, req.Name, req.Email, passwordHash, dob, gender)
	if err != nil {
		return nil, "", "", err
	}

	accessToken, refreshToken, err := auth.GenerateTokens(
		m.ID,
		m.Email,
		auth.RoleMember,
		s.jwtSecret,
		s.jwtSecret,
	)
	if err != nil {
		return nil, "", "", err
	}

	if s.notifier != nil {
		if err := s.notifier.SendWelcome(ctx, m.Email, m.Name); err != nil {
			logger.Errorf("Failed to queue welcome email for %s: %v", m.Email, err)
		}
	}

	return m, accessToken, refreshToken, nil
}

func (s *service) GetByID(ctx context.Context, memberID int) (*Member, error) {
	return s.repo.FindByID(ctx, memberID)
}

func (s *service) UpdateProfile(ctx context.Context, memberID int, req UpdateProfileRequest) (*Member, error) {
	upd := ProfileUpdate{
		Name:   req.Name,
		Email:  req.Email,
		Gender: req.Gender,
	}

	if req.DateOfBirth != nil {
		parsed, err := time.Parse(dateLayout, *req.DateOfBirth)
		if err != nil {
			return nil, ErrInvalidDate
		}
		upd.DateOfBirth = &parsed
	}

	return s.repo.UpdateProfile(ctx, memberID, upd)
}
