package room

import "time"

type Room struct {
	ID        int       `db:"room_id" json:"room_id"`
	Capacity  int       `db:"capacity" json:"capacity"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Canonical equipment states. Transitions are not enforced; updateStatus
// accepts any string, matching the permissiveness of the maintenance log.
const (
	StatusNeedsRepair = "Needs Repair"
	StatusInProgress  = "In Progress"
	StatusRepaired    = "Repaired"
)

type EquipmentMaintain struct {
	EquipmentID int    `db:"equipment_id" json:"equipment_id"`
	RoomID      int    `db:"room_id" json:"room_id"`
	Issue       string `db:"issue" json:"issue"`
	Status      string `db:"status" json:"status"`
}

type CreateRoomRequest struct {
	Capacity int `json:"capacity" binding:"required,min=1"`
}

type LogIssueRequest struct {
	EquipmentID int    `json:"equipment_id" binding:"required"`
	RoomID      int    `json:"room_id" binding:"required"`
	Issue       string `json:"issue" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
