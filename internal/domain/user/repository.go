package user

import "context"

type UserRepository interface {
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	ListActiveWorkers(ctx context.Context, companyID string) ([]User, error)
}
