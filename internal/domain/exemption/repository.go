package exemption

import "context"

type ExemptionRepository interface {
	Create(ctx context.Context, i Interval) (Interval, error)
	GetByID(ctx context.Context, id string, companyID string) (Interval, error)
	ListByWorker(ctx context.Context, workerID string, companyID string) ([]Interval, error)
	ListApprovedByWorker(ctx context.Context, workerID string, companyID string) ([]Interval, error)
	Update(ctx context.Context, i Interval) error
}
