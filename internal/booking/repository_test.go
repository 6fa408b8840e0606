package booking

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func setupMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	closer := func() {
		sqlxDB.Close()
	}

	return repo, mock, closer
}

func TestBookSlot(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE availabletime SET member_id = $1 WHERE trainer_id = $2 AND date = $3 AND start_hour = $4 AND member_id IS NULL RETURNING slot_id")).
		WithArgs(1, 2, date, 9).
		WillReturnRows(sqlmock.NewRows([]string{"slot_id"}).AddRow(7))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO schedulept (slot_id, room_id) VALUES ($1, NULL) ON CONFLICT (slot_id) DO NOTHING")).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	slotID, err := repo.BookSlot(context.Background(), 1, 2, date, 9)
	require.NoError(t, err)
	require.Equal(t, 7, slotID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookSlotUnavailable(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	// The conditional UPDATE matches no row when the slot is missing or taken.
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE availabletime SET member_id = $1 WHERE trainer_id = $2 AND date = $3 AND start_hour = $4 AND member_id IS NULL RETURNING slot_id")).
		WithArgs(1, 2, date, 9).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, err := repo.BookSlot(context.Background(), 1, 2, date, 9)
	require.ErrorIs(t, err, ErrSlotUnavailable)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignRoom(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT slot_id, room_id FROM schedulept WHERE slot_id = $1 FOR UPDATE")).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"slot_id", "room_id"}).AddRow(5, nil))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM room WHERE room_id = $1)")).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT date, start_hour FROM availabletime WHERE slot_id = $1")).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"date", "start_hour"}).AddRow(date, 9))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS( SELECT 1 FROM schedulept s JOIN availabletime a ON s.slot_id = a.slot_id WHERE s.room_id = $1 AND a.date = $2 AND a.start_hour = $3 )")).
		WithArgs(3, date, 9).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE schedulept SET room_id = $1 WHERE slot_id = $2")).
		WithArgs(3, 5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.AssignRoom(context.Background(), 5, 3)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignRoomScheduleNotFound(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT slot_id, room_id FROM schedulept WHERE slot_id = $1 FOR UPDATE")).
		WithArgs(99).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	err := repo.AssignRoom(context.Background(), 99, 3)
	require.ErrorIs(t, err, ErrScheduleNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignRoomAlreadyAssigned(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT slot_id, room_id FROM schedulept WHERE slot_id = $1 FOR UPDATE")).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"slot_id", "room_id"}).AddRow(5, 8))
	mock.ExpectRollback()

	err := repo.AssignRoom(context.Background(), 5, 3)

	var assigned *AlreadyAssignedError
	require.ErrorAs(t, err, &assigned)
	require.Equal(t, 8, assigned.RoomID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignRoomRoomNotFound(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT slot_id, room_id FROM schedulept WHERE slot_id = $1 FOR UPDATE")).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"slot_id", "room_id"}).AddRow(5, nil))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM room WHERE room_id = $1)")).
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectRollback()

	err := repo.AssignRoom(context.Background(), 5, 42)
	require.ErrorIs(t, err, ErrRoomNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignRoomConflict(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT slot_id, room_id FROM schedulept WHERE slot_id = $1 FOR UPDATE")).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"slot_id", "room_id"}).AddRow(5, nil))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM room WHERE room_id = $1)")).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT date, start_hour FROM availabletime WHERE slot_id = $1")).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"date", "start_hour"}).AddRow(date, 9))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS( SELECT 1 FROM schedulept s JOIN availabletime a ON s.slot_id = a.slot_id WHERE s.room_id = $1 AND a.date = $2 AND a.start_hour = $3 )")).
		WithArgs(3, date, 9).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	err := repo.AssignRoom(context.Background(), 5, 3)
	require.ErrorIs(t, err, ErrRoomConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetSchedule(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT slot_id, room_id FROM schedulept WHERE slot_id = $1")).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"slot_id", "room_id"}).AddRow(5, 2))

	sched, err := repo.GetSchedule(context.Background(), 5)
	require.NoError(t, err)
	require.True(t, sched.Assigned())
	require.Equal(t, 2, *sched.RoomID)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT slot_id, room_id FROM schedulept WHERE slot_id = $1")).
		WithArgs(99).
		WillReturnError(sql.ErrNoRows)

	_, err = repo.GetSchedule(context.Background(), 99)
	require.ErrorIs(t, err, ErrScheduleNotFound)
}
