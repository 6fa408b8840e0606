package trainer

import (
	"context"
	"errors"
	"time"

	"github.com/coraxie-ca/comp3005-project/internal/auth"
	"github.com/coraxie-ca/comp3005-project/internal/metrics"
)

var (
	ErrInvalidDate       = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidHour       = errors.New("invalid start_hour, must be an integer between 0 and 23")
	ErrInvalidRecurrence = errors.New("recurrence must be 'single' or 'weekly'")
)

type Service interface {
	CreateTrainer(ctx context.Context, req CreateTrainerRequest) (*Trainer, error)
	ListTrainers(ctx context.Context) ([]Trainer, error)
	GetOpenSlots(ctx context.Context, trainerID int) ([]AvailableTime, error)
	CreateAvailability(ctx context.Context, trainerID int, req CreateAvailabilityRequest) (*AvailabilityReport, error)
	ActiveSessions(ctx context.Context, trainerID int) ([]ActiveSession, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateTrainer(ctx context.Context, req CreateTrainerRequest) (*Trainer, error) {
	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	return s.repo.CreateTrainer(ctx, req.Name, req.Email, passwordHash)
}

func (s *service) ListTrainers(ctx context.Context) ([]Trainer, error) {
	return s.repo.ListTrainers(ctx)
}

func (s *service) GetOpenSlots(ctx context.Context, trainerID int) ([]AvailableTime, error) {
	if _, err := s.repo.FindByID(ctx, trainerID); err != nil {
		return nil, err
	}

	return s.repo.ListOpenSlots(ctx, trainerID)
}

// CreateAvailability validates input, expands the recurrence into concrete
// dates and creates the slots in one batch. Validation happens before any
// transaction is opened.
func (s *service) CreateAvailability(ctx context.Context, trainerID int, req CreateAvailabilityRequest) (*AvailabilityReport, error) {
	if req.StartHour < 0 || req.StartHour > 23 {
		return nil, ErrInvalidHour
	}

	startDate, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	occurrences := 1
	switch req.Recurrence {
	case "", RecurrenceSingle:
	case RecurrenceWeekly:
		occurrences = weeklyOccurrences
	default:
		return nil, ErrInvalidRecurrence
	}

	dates := make([]time.Time, 0, occurrences)
	for i := 0; i < occurrences; i++ {
		dates = append(dates, startDate.AddDate(0, 0, 7*i))
	}

	report, err := s.repo.CreateSlots(ctx, trainerID, dates, req.StartHour)
	if err != nil {
		return nil, err
	}

	metrics.RecordSlotsCreated(report.Created, report.Attempted-report.Created)
	return report, nil
}

func (s *service) ActiveSessions(ctx context.Context, trainerID int) ([]ActiveSession, error) {
	return s.repo.ActiveSessions(ctx, trainerID)
}
