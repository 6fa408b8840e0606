package room

import (
	"context"
	"database/sql"
	"errors"

	"github.com/coraxie-ca/comp3005-project/internal/db"

	"github.com/jmoiron/sqlx"
)

var (
	ErrRoomNotFound      = errors.New("room not found")
	ErrEquipmentNotFound = errors.New("equipment not found")
	ErrEquipmentExists   = errors.New("equipment ID already has a logged issue")
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(database *sqlx.DB) Repository {
	return &repository{db: database}
}

func (r *repository) CreateRoom(ctx context.Context, capacity int) (*Room, error) {
	query := `
		INSERT INTO room (capacity)
		VALUES ($1)
		RETURNING room_id, capacity, created_at
	`

	var room Room
	err := r.db.GetContext(ctx, &room, query, capacity)
	if err != nil {
		return nil, err
	}

	return &room, nil
}

func (r *repository) GetRoomByID(ctx context.Context, id int) (*Room, error) {
	query := `
		SELECT room_id, capacity, created_at
		FROM room
		WHERE room_id = $1
	`

	var room Room
	err := r.db.GetContext(ctx, &room, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	return &room, nil
}

func (r *repository) ListRooms(ctx context.Context) ([]Room, error) {
	query := `
		SELECT room_id, capacity, created_at
		FROM room
		ORDER BY room_id
	`

	var rooms []Room
	err := r.db.SelectContext(ctx, &rooms, query)
	if err != nil {
		return nil, err
	}

	return rooms, nil
}

func (r *repository) LogIssue(ctx context.Context, equipmentID, roomID int, issue string) (*EquipmentMaintain, error) {
	query := `
		INSERT INTO equipmentmaintain (equipment_id, room_id, issue, status)
		VALUES ($1, $2, $3, 'Needs Repair')
		RETURNING equipment_id, room_id, issue, status
	`

	var equipment EquipmentMaintain
	err := r.db.GetContext(ctx, &equipment, query, equipmentID, roomID, issue)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrEquipmentExists
		}
		return nil, err
	}

	return &equipment, nil
}

// UpdateEquipmentStatus overwrites the status unconditionally; any string is
// accepted.
func (r *repository) UpdateEquipmentStatus(ctx context.Context, equipmentID int, status string) error {
	query := `
		UPDATE equipmentmaintain
		SET status = $2
		WHERE equipment_id = $1
	`

	result, err := r.db.ExecContext(ctx, query, equipmentID, status)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrEquipmentNotFound
	}

	return nil
}

func (r *repository) GetEquipmentByID(ctx context.Context, equipmentID int) (*EquipmentMaintain, error) {
	query := `
		SELECT equipment_id, room_id, issue, status
		FROM equipmentmaintain
		WHERE equipment_id = $1
	`

	var equipment EquipmentMaintain
	err := r.db.GetContext(ctx, &equipment, query, equipmentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEquipmentNotFound
		}
		return nil, err
	}

	return &equipment, nil
}

func (r *repository) ListEquipmentByStatus(ctx context.Context, status string) ([]EquipmentMaintain, error) {
	query := `
		SELECT equipment_id, room_id, issue, status
		FROM equipmentmaintain
		WHERE status = $1
		ORDER BY equipment_id
	`

	var equipment []EquipmentMaintain
	err := r.db.SelectContext(ctx, &equipment, query, status)
	if err != nil {
		return nil, err
	}

	return equipment, nil
}
