package checkin

import "context"

type CheckInRepository interface {
	Create(ctx context.Context, c CheckIn) (CheckIn, error)
	HasCheckedIn(ctx context.Context, workerID string, date string, companyID string) (bool, error)
	ListByWorker(ctx context.Context, workerID string, companyID string, limit int) ([]CheckIn, int64, error)
}
