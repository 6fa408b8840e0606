package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/coraxie-ca/comp3005-project/internal/logger"
	"github.com/coraxie-ca/comp3005-project/internal/member"
	"github.com/coraxie-ca/comp3005-project/internal/metrics"
	"github.com/coraxie-ca/comp3005-project/internal/trainer"
)

var (
	ErrInvalidDate = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidHour = errors.New("invalid start_hour, must be an integer between 0 and 23")
)

const dateLayout = "2006-01-02"

// Notifier queues booking confirmations; satisfied by email.Service.
type Notifier interface {
	SendBookingConfirmation(ctx context.Context, to, name, trainerName string, when time.Time) error
}

type Service interface {
	BookSession(ctx context.Context, memberID int, req BookRequest) (*BookingConfirmation, error)
	AssignRoom(ctx context.Context, slotID, roomID int) error
}

type service struct {
	repo        Repository
	memberRepo  member.Repository
	trainerRepo trainer.Repository
	notifier    Notifier
}

func NewService(repo Repository, memberRepo member.Repository, trainerRepo trainer.Repository, notifier Notifier) Service {
	return &service{
		repo:        repo,
		memberRepo:  memberRepo,
		trainerRepo: trainerRepo,
		notifier:    notifier,
	}
}

// BookSession validates input, then claims the matching open slot. Setting
// member_id on the slot is the booking; there is no separate confirm step.
func (s *service) BookSession(ctx context.Context, memberID int, req BookRequest) (*BookingConfirmation, error) {
	if req.StartHour < 0 || req.StartHour > 23 {
		return nil, ErrInvalidHour
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	slotID, err := s.repo.BookSlot(ctx, memberID, req.TrainerID, date, req.StartHour)
	if err != nil {
		if errors.Is(err, ErrSlotUnavailable) {
			metrics.RecordBooking("unavailable")
		} else {
			metrics.RecordBooking("failed")
		}
		return nil, err
	}

	metrics.RecordBooking("booked")

	s.sendConfirmation(ctx, memberID, req.TrainerID, date, req.StartHour)

	return &BookingConfirmation{
		SlotID:    slotID,
		MemberID:  memberID,
		TrainerID: req.TrainerID,
		Date:      req.Date,
		StartHour: req.StartHour,
	}, nil
}

func (s *service) AssignRoom(ctx context.Context, slotID, roomID int) error {
	err := s.repo.AssignRoom(ctx, slotID, roomID)
	if err != nil {
		var assigned *AlreadyAssignedError
		switch {
		case errors.Is(err, ErrRoomConflict):
			metrics.RecordRoomAssignment("conflict")
		case errors.As(err, &assigned):
			metrics.RecordRoomAssignment("already_assigned")
		default:
			metrics.RecordRoomAssignment("failed")
		}
		return err
	}

	metrics.RecordRoomAssignment("assigned")
	return nil
}

// Confirmation mail is best effort; a queue failure never fails the booking.
func (s *service) sendConfirmation(ctx context.Context, memberID, trainerID int, date time.Time, startHour int) {
	if s.notifier == nil {
		return
	}

	m, err := s.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		logger.Errorf("Booking confirmed but member %d lookup failed: %v", memberID, err)
		return
	}

	trainerName := fmt.Sprintf("Trainer %d", trainerID)
	if t, err := s.trainerRepo.FindByID(ctx, trainerID); err == nil {
		trainerName = t.Name
	}

	when := time.Date(date.Year(), date.Month(), date.Day(), startHour, 0, 0, 0, time.UTC)
	if err := s.notifier.SendBookingConfirmation(ctx, m.Email, m.Name, trainerName, when); err != nil {
		logger.Errorf("Failed to queue booking confirmation for member %d: %v", memberID, err)
	}
}
