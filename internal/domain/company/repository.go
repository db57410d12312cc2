package company

import "context"

type CompanyRepository interface {
	GetByID(ctx context.Context, id string) (Company, error)
	GetTimezone(ctx context.Context, id string) (string, error)
	ListIDs(ctx context.Context) ([]string, error)
	Update(ctx context.Context, c Company) error
}
