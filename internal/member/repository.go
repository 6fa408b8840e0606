package member

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/coraxie-ca/comp3005-project/internal/db"

	"github.com/jmoiron/sqlx"
)

var (
	ErrEmailInUse     = errors.New("email address already in use")
	ErrMemberNotFound = errors.New("member not found")
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, name, email, passwordHash string, dateOfBirth *time.Time, gender *string) (*Member, error) {
	query := `
		INSERT INTO member (name, email, password_hash, date_of_birth, gender)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING member_id, name, email, password_hash, date_of_birth, gender, created_at
	`

	var m Member
	err := r.db.GetContext(ctx, &m, query, name, email, passwordHash, dateOfBirth, gender)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrEmailInUse
		}
		return nil, err
	}

	return &m, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Member, error) {
	query := `
		SELECT member_id, name, email, password_hash, date_of_birth, gender, created_at
		FROM member
		WHERE email = $1
	`

	var m Member
	err := r.db.GetContext(ctx, &m, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	return &m, nil
}

func (r *repository) FindByID(ctx context.Context, id int) (*Member, error) {
	query := `
		SELECT member_id, name, email, password_hash, date_of_birth, gender, created_at
		FROM member
		WHERE member_id = $1
	`

	var m Member
	err := r.db.GetContext(ctx, &m, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	return &m, nil
}

func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM member WHERE email = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, email)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (r *repository) UpdateProfile(ctx context.Context, id int, upd ProfileUpdate) (*Member, error) {
	query := `
		UPDATE member
		SET name = COALESCE($2, name),
		    email = COALESCE($3, email),
		    date_of_birth = COALESCE($4, date_of_birth),
		    gender = COALESCE($5, gender)
		WHERE member_id = $1
		RETURNING member_id, name, email, password_hash, date_of_birth, gender, created_at
	`

	var m Member
	err := r.db.GetContext(ctx, &m, query, id, upd.Name, upd.Email, upd.DateOfBirth, upd.Gender)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		if db.IsUniqueViolation(err) {
			return nil, ErrEmailInUse
		}
		return nil, err
	}

	return &m, nil
}
