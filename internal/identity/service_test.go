package identity

import (
	"context"
	"testing"
	"time"

	"github.com/coraxie-ca/comp3005-project/internal/admin"
	"github.com/coraxie-ca/comp3005-project/internal/auth"
	"github.com/coraxie-ca/comp3005-project/internal/member"
	"github.com/coraxie-ca/comp3005-project/internal/trainer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type MockAdminRepo struct{ mock.Mock }
type MockTrainerRepo struct{ mock.Mock }
type MockMemberRepo struct{ mock.Mock }

func (m *MockAdminRepo) Create(ctx context.Context, name, email, passwordHash string) (*admin.Admin, error) {
	args := m.Called(ctx, name, email, passwordHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*admin.Admin), args.Error(1)
}

func (m *MockAdminRepo) FindByEmail(ctx context.Context, email string) (*admin.Admin, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*admin.Admin), args.Error(1)
}

func (m *MockAdminRepo) FindByID(ctx context.Context, id int) (*admin.Admin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*admin.Admin), args.Error(1)
}

func (m *MockAdminRepo) AnyExists(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockTrainerRepo) CreateTrainer(ctx context.Context, name, email, passwordHash string) (*trainer.Trainer, error) {
	args := m.Called(ctx, name, email, passwordHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trainer.Trainer), args.Error(1)
}

func (m *MockTrainerRepo) FindByEmail(ctx context.Context, email string) (*trainer.Trainer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trainer.Trainer), args.Error(1)
}

func (m *MockTrainerRepo) FindByID(ctx context.Context, id int) (*trainer.Trainer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trainer.Trainer), args.Error(1)
}

func (m *MockTrainerRepo) ListTrainers(ctx context.Context) ([]trainer.Trainer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trainer.Trainer), args.Error(1)
}

func (m *MockTrainerRepo) CreateSlots(ctx context.Context, trainerID int, dates []time.Time, startHour int) (*trainer.AvailabilityReport, error) {
	args := m.Called(ctx, trainerID, dates, startHour)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trainer.AvailabilityReport), args.Error(1)
}

func (m *MockTrainerRepo) ListOpenSlots(ctx context.Context, trainerID int) ([]trainer.AvailableTime, error) {
	args := m.Called(ctx, trainerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trainer.AvailableTime), args.Error(1)
}

func (m *MockTrainerRepo) ActiveSessions(ctx context.Context, trainerID int) ([]trainer.ActiveSession, error) {
	args := m.Called(ctx, trainerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trainer.ActiveSession), args.Error(1)
}

func (m *MockMemberRepo) Create(ctx context.Context, name, email, passwordHash string, dateOfBirth *time.Time, gender *string) (*member.Member, error) {
	args := m.Called(ctx, name, email, passwordHash, dateOfBirth, gender)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*member.Member), args.Error(1)
}

func (m *MockMemberRepo) FindByEmail(ctx context.Context, email string) (*member.Member, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*member.Member), args.Error(1)
}

func (m *MockMemberRepo) FindByID(ctx context.Context, id int) (*member.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*member.Member), args.Error(1)
}

func (m *MockMemberRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockMemberRepo) UpdateProfile(ctx context.Context, id int, upd member.ProfileUpdate) (*member.Member, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*member.Member), args.Error(1)
}

func TestService_Login(t *testing.T) {
	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)

	t.Run("admin account wins lookup order", func(t *testing.T) {
		ar := new(MockAdminRepo)
		tr := new(MockTrainerRepo)
		mr := new(MockMemberRepo)

		// Same email could exist in every table; the admin row decides.
		ar.On("FindByEmail", mock.Anything, "shared@fitclub.com").Return(&admin.Admin{
			ID:           1,
			Name:         "Root",
			Email:        "shared@fitclub.com",
			PasswordHash: hash,
		}, nil)

		svc := NewService(ar, tr, mr, testSecret)

		resp, err := svc.Login(context.Background(), LoginRequest{
			Email:    "shared@fitclub.com",
			Password: "password123",
		})

		assert.NoError(t, err)
		assert.Equal(t, auth.RoleAdmin, resp.Principal.Role)
		tr.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
		mr.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})

	t.Run("falls through to trainer then member", func(t *testing.T) {
		ar := new(MockAdminRepo)
		tr := new(MockTrainerRepo)
		mr := new(MockMemberRepo)

		ar.On("FindByEmail", mock.Anything, "bob@example.com").Return(nil, admin.ErrAdminNotFound)
		tr.On("FindByEmail", mock.Anything, "bob@example.com").Return(nil, trainer.ErrTrainerNotFound)
		mr.On("FindByEmail", mock.Anything, "bob@example.com").Return(&member.Member{
			ID:           7,
			Name:         "Bob",
			Email:        "bob@example.com",
			PasswordHash: hash,
		}, nil)

		svc := NewService(ar, tr, mr, testSecret)

		resp, err := svc.Login(context.Background(), LoginRequest{
			Email:    "bob@example.com",
			Password: "password123",
		})

		assert.NoError(t, err)
		assert.Equal(t, auth.RoleMember, resp.Principal.Role)
		assert.Equal(t, 7, resp.Principal.ID)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		ar := new(MockAdminRepo)
		ar.On("FindByEmail", mock.Anything, "root@fitclub.com").Return(&admin.Admin{
			ID:           1,
			Email:        "root@fitclub.com",
			PasswordHash: hash,
		}, nil)

		svc := NewService(ar, new(MockTrainerRepo), new(MockMemberRepo), testSecret)

		_, err := svc.Login(context.Background(), LoginRequest{
			Email:    "root@fitclub.com",
			Password: "wrong",
		})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		ar := new(MockAdminRepo)
		tr := new(MockTrainerRepo)
		mr := new(MockMemberRepo)

		ar.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, admin.ErrAdminNotFound)
		tr.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, trainer.ErrTrainerNotFound)
		mr.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, member.ErrMemberNotFound)

		svc := NewService(ar, tr, mr, testSecret)

		_, err := svc.Login(context.Background(), LoginRequest{
			Email:    "nobody@example.com",
			Password: "password123",
		})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestService_Refresh(t *testing.T) {
	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)

	t.Run("successful refresh", func(t *testing.T) {
		ar := new(MockAdminRepo)
		tr := new(MockTrainerRepo)
		mr := new(MockMemberRepo)

		ar.On("FindByEmail", mock.Anything, "bob@example.com").Return(nil, admin.ErrAdminNotFound)
		tr.On("FindByEmail", mock.Anything, "bob@example.com").Return(nil, trainer.ErrTrainerNotFound)
		mr.On("FindByEmail", mock.Anything, "bob@example.com").Return(&member.Member{
			ID:           7,
			Name:         "Bob",
			Email:        "bob@example.com",
			PasswordHash: hash,
		}, nil)

		refreshToken, err := auth.GenerateRefreshToken(7, "bob@example.com", auth.RoleMember, testSecret)
		require.NoError(t, err)

		svc := NewService(ar, tr, mr, testSecret)

		accessToken, principal, err := svc.Refresh(context.Background(), refreshToken)
		assert.NoError(t, err)
		assert.NotEmpty(t, accessToken)
		assert.Equal(t, 7, principal.ID)

		claims, err := auth.ValidateToken(accessToken, testSecret)
		assert.NoError(t, err)
		assert.Equal(t, "access", claims.TokenType)
	})

	t.Run("access token rejected", func(t *testing.T) {
		accessToken, err := auth.GenerateAccessToken(7, "bob@example.com", auth.RoleMember, testSecret)
		require.NoError(t, err)

		svc := NewService(new(MockAdminRepo), new(MockTrainerRepo), new(MockMemberRepo), testSecret)

		_, _, err = svc.Refresh(context.Background(), accessToken)
		assert.ErrorIs(t, err, auth.ErrInvalidTokenType)
	})
}
