package trainer

import (
	"context"
	"time"
)

type Repository interface {
	CreateTrainer(ctx context.Context, name, email, passwordHash string) (*Trainer, error)
	FindByEmail(ctx context.Context, email string) (*Trainer, error)
	FindByID(ctx context.Context, id int) (*Trainer, error)
	ListTrainers(ctx context.Context) ([]Trainer, error)
	CreateSlots(ctx context.Context, trainerID int, dates []time.Time, startHour int) (*AvailabilityReport, error)
	ListOpenSlots(ctx context.Context, trainerID int) ([]AvailableTime, error)
	ActiveSessions(ctx context.Context, trainerID int) ([]ActiveSession, error)
}
