package room

import "context"

type Repository interface {
	CreateRoom(ctx context.Context, capacity int) (*Room, error)
	GetRoomByID(ctx context.Context, id int) (*Room, error)
	ListRooms(ctx context.Context) ([]Room, error)
	LogIssue(ctx context.Context, equipmentID, roomID int, issue string) (*EquipmentMaintain, error)
	UpdateEquipmentStatus(ctx context.Context, equipmentID int, status string) error
	GetEquipmentByID(ctx context.Context, equipmentID int) (*EquipmentMaintain, error)
	ListEquipmentByStatus(ctx context.Context, status string) ([]EquipmentMaintain, error)
}
