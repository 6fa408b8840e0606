package member

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
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

func TestCreate(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()
	dob := time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC)
	gender := "F"

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO member (name, email, password_hash, date_of_birth, gender) VALUES ($1, $2, $3, $4, $5) RETURNING member_id, name, email, password_hash, date_of_birth, gender, created_at")).
		WithArgs("Alice", "alice@example.com", "hash", dob, gender).
		WillReturnRows(sqlmock.NewRows([]string{"member_id", "name", "email", "password_hash", "date_of_birth", "gender", "created_at"}).
			AddRow(1, "Alice", "alice@example.com", "hash", dob, gender, now))

	m, err := repo.Create(context.Background(), "Alice", "alice@example.com", "hash", &dob, &gender)
	require.NoError(t, err)
	require.Equal(t, 1, m.ID)
	require.NotNil(t, m.DateOfBirth)
	require.Equal(t, "F", *m.Gender)
}

func TestCreateDuplicateEmail(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO member (name, email, password_hash, date_of_birth, gender) VALUES ($1, $2, $3, $4, $5) RETURNING member_id, name, email, password_hash, date_of_birth, gender, created_at")).
		WithArgs("Alice", "alice@example.com", "hash", nil, nil).
		WillReturnError(&pq.Error{Code: "23505"})

	_, err := repo.Create(context.Background(), "Alice", "alice@example.com", "hash", nil, nil)
	require.ErrorIs(t, err, ErrEmailInUse)
}

func TestFindByEmail(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT member_id, name, email, password_hash, date_of_birth, gender, created_at FROM member WHERE email = $1")).
		WithArgs("alice@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"member_id", "name", "email", "password_hash", "date_of_birth", "gender", "created_at"}).
			AddRow(1, "Alice", "alice@example.com", "hash", nil, nil, now))

	m, err := repo.FindByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, "Alice", m.Name)
	require.Nil(t, m.DateOfBirth)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT member_id, name, email, password_hash, date_of_birth, gender, created_at FROM member WHERE email = $1")).
		WithArgs("nobody@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err = repo.FindByEmail(context.Background(), "nobody@example.com")
	require.ErrorIs(t, err, ErrMemberNotFound)
}

func TestEmailExists(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM member WHERE email = $1)")).
		WithArgs("alice@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.EmailExists(context.Background(), "alice@example.com")
	require.NoError(t, err)
	require.True(t, exists)
}

func TestUpdateProfile(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()
	name := "Alice B"

	// Unset fields pass NULL and COALESCE keeps the stored value.
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE member SET name = COALESCE($2, name), email = COALESCE($3, email), date_of_birth = COALESCE($4, date_of_birth), gender = COALESCE($5, gender) WHERE member_id = $1 RETURNING member_id, name, email, password_hash, date_of_birth, gender, created_at")).
		WithArgs(1, name, nil, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"member_id", "name", "email", "password_hash", "date_of_birth", "gender", "created_at"}).
			AddRow(1, "Alice B", "alice@example.com", "hash", nil, nil, now))

	m, err := repo.UpdateProfile(context.Background(), 1, ProfileUpdate{Name: &name})
	require.NoError(t, err)
	require.Equal(t, "Alice B", m.Name)
}

func TestUpdateProfileDuplicateEmail(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	email := "taken@example.com"

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE member SET name = COALESCE($2, name), email = COALESCE($3, email), date_of_birth = COALESCE($4, date_of_birth), gender = COALESCE($5, gender) WHERE member_id = $1 RETURNING member_id, name, email, password_hash, date_of_birth, gender, created_at")).
		WithArgs(1, nil, email, nil, nil).
		WillReturnError(&pq.Error{Code: "23505"})

	_, err := repo.UpdateProfile(context.Background(), 1, ProfileUpdate{Email: &email})
	require.ErrorIs(t, err, ErrEmailInUse)
}
