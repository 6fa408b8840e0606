package trainer

import "time"

type Trainer struct {
	ID           int       `db:"trainer_id" json:"trainer_id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// AvailableTime is a one-hour slot identified by (trainer, date, start_hour).
type AvailableTime struct {
	SlotID    int       `db:"slot_id" json:"slot_id"`
	TrainerID int       `db:"trainer_id" json:"trainer_id"`
	Date      time.Time `db:"date" json:"date"`
	StartHour int       `db:"start_hour" json:"start_hour"`
	MemberID  *int      `db:"member_id" json:"member_id,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Booked reports whether a member holds the slot.
func (a AvailableTime) Booked() bool {
	return a.MemberID != nil
}

const (
	RecurrenceSingle = "single"
	RecurrenceWeekly = "weekly"

	// Weekly recurrence covers the start date plus the following four weeks.
	weeklyOccurrences = 5
)

type CreateAvailabilityRequest struct {
	Date       string `json:"date" binding:"required,isodate"`
	StartHour  int    `json:"start_hour" binding:"gte=0,lte=23"`
	Recurrence string `json:"recurrence" binding:"omitempty,oneof=single weekly"`
}

// Occurrence reports the outcome of a single date within one availability
// request. A conflicted occurrence is a skip, not a failure.
type Occurrence struct {
	Date    string `json:"date"`
	SlotID  *int   `json:"slot_id,omitempty"`
	Created bool   `json:"created"`
	Reason  string `json:"reason,omitempty"`
}

type AvailabilityReport struct {
	TrainerID   int          `json:"trainer_id"`
	StartHour   int          `json:"start_hour"`
	Attempted   int          `json:"attempted"`
	Created     int          `json:"created"`
	Occurrences []Occurrence `json:"occurrences"`
}

// ActiveSession is a row of the active_pt_sessions view.
type ActiveSession struct {
	SlotID      int       `db:"slot_id" json:"slot_id"`
	MemberName  string    `db:"member_name" json:"member_name"`
	TrainerName string    `db:"trainer_name" json:"trainer_name"`
	StartTime   time.Time `db:"start_time" json:"start_time"`
	EndTime     time.Time `db:"end_time" json:"end_time"`
	Status      string    `db:"status" json:"status"`
}

type CreateTrainerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}
