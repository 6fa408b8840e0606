package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

var (
	ErrSlotUnavailable  = errors.New("slot does not exist or is already booked")
	ErrScheduleNotFound = errors.New("schedule record not found")
	ErrRoomNotFound     = errors.New("room not found")
	ErrSlotNotFound     = errors.New("availability slot not found")
	ErrRoomConflict     = errors.New("room is already booked at that date and hour")
)

// AlreadyAssignedError reports which room currently occupies the slot.
type AlreadyAssignedError struct {
	RoomID int
}

func (e *AlreadyAssignedError) Error() string {
	return fmt.Sprintf("slot is already assigned to room %d", e.RoomID)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// BookSlot claims the open slot matching (trainer, date, hour) for the member
// and ensures its schedulept row exists, in one transaction. The conditional
// UPDATE is the booking: zero rows means the slot was never created or is
// already taken, which callers cannot distinguish.
func (r *repository) BookSlot(ctx context.Context, memberID, trainerID int, date time.Time, startHour int) (int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var slotID int
	err = tx.GetContext(ctx, &slotID, `
		UPDATE availabletime
		SET member_id = $1
		WHERE trainer_id = $2 AND date = $3 AND start_hour = $4 AND member_id IS NULL
		RETURNING slot_id
	`, memberID, trainerID, date, startHour)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrSlotUnavailable
		}
		return 0, err
	}

	// Idempotent: a schedulept row may survive from a prior partial run.
	_, err = tx.ExecContext(ctx, `
		INSERT INTO schedulept (slot_id, room_id)
		VALUES ($1, NULL)
		ON CONFLICT (slot_id) DO NOTHING
	`, slotID)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	return slotID, nil
}

// AssignRoom allocates a room to a booked session. Preconditions are checked
// in order, each with its own failure mode; the schedulept row is locked for
// the duration so concurrent assignments serialize.
func (r *repository) AssignRoom(ctx context.Context, slotID, roomID int) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var sched SchedulePT
	err = tx.GetContext(ctx, &sched, `
		SELECT slot_id, room_id
		FROM schedulept
		WHERE slot_id = $1
		FOR UPDATE
	`, slotID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrScheduleNotFound
		}
		return err
	}

	if sched.RoomID != nil {
		return &AlreadyAssignedError{RoomID: *sched.RoomID}
	}

	var roomExists bool
	err = tx.GetContext(ctx, &roomExists, `SELECT EXISTS(SELECT 1 FROM room WHERE room_id = $1)`, roomID)
	if err != nil {
		return err
	}
	if !roomExists {
		return ErrRoomNotFound
	}

	var slot slotTime
	err = tx.GetContext(ctx, &slot, `SELECT date, start_hour FROM availabletime WHERE slot_id = $1`, slotID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrSlotNotFound
		}
		return err
	}

	var occupied bool
	err = tx.GetContext(ctx, &occupied, `
		SELECT EXISTS(
			SELECT 1 FROM schedulept s
			JOIN availabletime a ON s.slot_id = a.slot_id
			WHERE s.room_id = $1 AND a.date = $2 AND a.start_hour = $3
		)
	`, roomID, slot.Date, slot.StartHour)
	if err != nil {
		return err
	}
	if occupied {
		return ErrRoomConflict
	}

	_, err = tx.ExecContext(ctx, `UPDATE schedulept SET room_id = $1 WHERE slot_id = $2`, roomID, slotID)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *repository) GetSchedule(ctx context.Context, slotID int) (*SchedulePT, error) {
	var sched SchedulePT
	err := r.db.GetContext(ctx, &sched, `SELECT slot_id, room_id FROM schedulept WHERE slot_id = $1`, slotID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrScheduleNotFound
		}
		return nil, err
	}

	return &sched, nil
}
