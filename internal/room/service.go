package room

import (
	"context"

	"github.com/coraxie-ca/comp3005-project/internal/metrics"
)

type Service interface {
	CreateRoom(ctx context.Context, req CreateRoomRequest) (*Room, error)
	ListRooms(ctx context.Context) ([]Room, error)
	LogIssue(ctx context.Context, req LogIssueRequest) (*EquipmentMaintain, error)
	UpdateStatus(ctx context.Context, equipmentID int, req UpdateStatusRequest) (*EquipmentMaintain, error)
	GetEquipment(ctx context.Context, equipmentID int) (*EquipmentMaintain, error)
	ListEquipmentByStatus(ctx context.Context, status string) ([]EquipmentMaintain, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateRoom(ctx context.Context, req CreateRoomRequest) (*Room, error) {
	return s.repo.CreateRoom(ctx, req.Capacity)
}

func (s *service) ListRooms(ctx context.Context) ([]Room, error) {
	return s.repo.ListRooms(ctx)
}

func (s *service) LogIssue(ctx context.Context, req LogIssueRequest) (*EquipmentMaintain, error) {
	if _, err := s.repo.GetRoomByID(ctx, req.RoomID); err != nil {
		return nil, err
	}

	equipment, err := s.repo.LogIssue(ctx, req.EquipmentID, req.RoomID, req.Issue)
	if err != nil {
		return nil, err
	}

	metrics.RecordEquipmentIssue()
	return equipment, nil
}

func (s *service) UpdateStatus(ctx context.Context, equipmentID int, req UpdateStatusRequest) (*EquipmentMaintain, error) {
	if err := s.repo.UpdateEquipmentStatus(ctx, equipmentID, req.Status); err != nil {
		return nil, err
	}

	return s.repo.GetEquipmentByID(ctx, equipmentID)
}

func (s *service) GetEquipment(ctx context.Context, equipmentID int) (*EquipmentMaintain, error) {
	return s.repo.GetEquipmentByID(ctx, equipmentID)
}

func (s *service) ListEquipmentByStatus(ctx context.Context, status string) ([]EquipmentMaintain, error) {
	return s.repo.ListEquipmentByStatus(ctx, status)
}
