package trainer

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/coraxie-ca/comp3005-project/internal/db"

	"github.com/jmoiron/sqlx"
)

var (
	ErrTrainerNotFound = errors.New("trainer not found")
	ErrEmailInUse      = errors.New("email address already in use")
)

const dateLayout = "2006-01-02"

type repository struct {
	db *sqlx.DB
}

func NewRepository(database *sqlx.DB) Repository {
	return &repository{db: database}
}

func (r *repository) CreateTrainer(ctx context.Context, name, email, passwordHash string) (*Trainer, error) {
	query := `
		INSERT INTO trainer (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING trainer_id, name, email, password_hash, created_at
	`

	var t Trainer
	err := r.db.GetContext(ctx, &t, query, name, email, passwordHash)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrEmailInUse
		}
		return nil, err
	}

	return &t, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Trainer, error) {
	query := `
		SELECT trainer_id, name, email, password_hash, created_at
		FROM trainer
		WHERE email = $1
	`

	var t Trainer
	err := r.db.GetContext(ctx, &t, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}

	return &t, nil
}

func (r *repository) FindByID(ctx context.Context, id int) (*Trainer, error) {
	query := `
		SELECT trainer_id, name, email, password_hash, created_at
		FROM trainer
		WHERE trainer_id = $1
	`

	var t Trainer
	err := r.db.GetContext(ctx, &t, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}

	return &t, nil
}

func (r *repository) ListTrainers(ctx context.Context) ([]Trainer, error) {
	query := `
		SELECT trainer_id, name, email, password_hash, created_at
		FROM trainer
		ORDER BY trainer_id
	`

	var trainers []Trainer
	err := r.db.SelectContext(ctx, &trainers, query)
	if err != nil {
		return nil, err
	}

	return trainers, nil
}

// CreateSlots inserts one availability slot per date inside a single
// transaction. A date whose (trainer, date, hour) slot already exists is
// skipped and reported as a conflict; any other failure rolls back the whole
// batch.
func (r *repository) CreateSlots(ctx context.Context, trainerID int, dates []time.Time, startHour int) (*AvailabilityReport, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	insert := `
		INSERT INTO availabletime (trainer_id, date, start_hour)
		VALUES ($1, $2, $3)
		ON CONFLICT ON CONSTRAINT availabletime_slot_unique DO NOTHING
		RETURNING slot_id
	`

	report := &AvailabilityReport{
		TrainerID: trainerID,
		StartHour: startHour,
		Attempted: len(dates),
	}

	for _, date := range dates {
		var slotID int
		err := tx.GetContext(ctx, &slotID, insert, trainerID, date, startHour)
		if errors.Is(err, sql.ErrNoRows) {
			report.Occurrences = append(report.Occurrences, Occurrence{
				Date:   date.Format(dateLayout),
				Reason: "slot already exists for this trainer, date and hour",
			})
			continue
		}
		if err != nil {
			return nil, err
		}

		id := slotID
		report.Created++
		report.Occurrences = append(report.Occurrences, Occurrence{
			Date:    date.Format(dateLayout),
			SlotID:  &id,
			Created: true,
		})
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return report, nil
}

func (r *repository) ListOpenSlots(ctx context.Context, trainerID int) ([]AvailableTime, error) {
	query := `
		SELECT slot_id, trainer_id, date, start_hour, member_id, created_at
		FROM availabletime
		WHERE trainer_id = $1 AND member_id IS NULL AND date >= CURRENT_DATE
		ORDER BY date, start_hour
	`

	var slots []AvailableTime
	err := r.db.SelectContext(ctx, &slots, query, trainerID)
	if err != nil {
		return nil, err
	}

	return slots, nil
}

func (r *repository) ActiveSessions(ctx context.Context, trainerID int) ([]ActiveSession, error) {
	query := `
		SELECT slot_id, member_name, trainer_name, start_time, end_time, status
		FROM active_pt_sessions
		WHERE trainer_id = $1
		ORDER BY start_time
	`

	var sessions []ActiveSession
	err := r.db.SelectContext(ctx, &sessions, query, trainerID)
	if err != nil {
		return nil, err
	}

	return sessions, nil
}
