package admin

import (
	"context"
	"database/sql"
	"errors"

	"github.com/coraxie-ca/comp3005-project/internal/db"

	"github.com/jmoiron/sqlx"
)

var (
	ErrAdminNotFound = errors.New("admin not found")
	ErrEmailInUse    = errors.New("email address already in use")
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(database *sqlx.DB) Repository {
	return &repository{db: database}
}

func (r *repository) Create(ctx context.Context, name, email, passwordHash string) (*Admin, error) {
	query := `
		INSERT INTO admin (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING admin_id, name, email, password_hash, created_at
	`

	var a Admin
	err := r.db.GetContext(ctx, &a, query, name, email, passwordHash)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrEmailInUse
		}
		return nil, err
	}

	return &a, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Admin, error) {
	query := `
		SELECT admin_id, name, email, password_hash, created_at
		FROM admin
		WHERE email = $1
	`

	var a Admin
	err := r.db.GetContext(ctx, &a, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}

	return &a, nil
}

func (r *repository) FindByID(ctx context.Context, id int) (*Admin, error) {
	query := `
		SELECT admin_id, name, email, password_hash, created_at
		FROM admin
		WHERE admin_id = $1
	`

	var a Admin
	err := r.db.GetContext(ctx, &a, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}

	return &a, nil
}

func (r *repository) AnyExists(ctx context.Context) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM admin)`)
	if err != nil {
		return false, err
	}

	return exists, nil
}
