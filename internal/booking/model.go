package booking

import "time"

// SchedulePT exists 1:1 with a booked availability slot. room_id stays nil
// until an admin assigns a room, and is immutable afterwards.
type SchedulePT struct {
	SlotID int  `db:"slot_id" json:"slot_id"`
	RoomID *int `db:"room_id" json:"room_id,omitempty"`
}

// Assigned reports whether a room has been allocated to the session.
func (s SchedulePT) Assigned() bool {
	return s.RoomID != nil
}

type BookRequest struct {
	TrainerID int    `json:"trainer_id" binding:"required"`
	Date      string `json:"date" binding:"required,isodate"`
	StartHour int    `json:"start_hour" binding:"gte=0,lte=23"`
}

type BookingConfirmation struct {
	SlotID    int    `json:"slot_id"`
	MemberID  int    `json:"member_id"`
	TrainerID int    `json:"trainer_id"`
	Date      string `json:"date"`
	StartHour int    `json:"start_hour"`
}

type AssignRoomRequest struct {
	RoomID int `json:"room_id" binding:"required"`
}

type slotTime struct {
	Date      time.Time `db:"date"`
	StartHour int       `db:"start_hour"`
}
