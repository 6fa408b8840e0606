package booking

import (
	"context"
	"time"
)

type Repository interface {
	BookSlot(ctx context.Context, memberID, trainerID int, date time.Time, startHour int) (int, error)
	AssignRoom(ctx context.Context, slotID, roomID int) error
	GetSchedule(ctx context.Context, slotID int) (*SchedulePT, error)
}
