package admin

import "context"

type Repository interface {
	Create(ctx context.Context, name, email, passwordHash string) (*Admin, error)
	FindByEmail(ctx context.Context, email string) (*Admin, error)
	FindByID(ctx context.Context, id int) (*Admin, error)
	AnyExists(ctx context.Context) (bool, error)
}
