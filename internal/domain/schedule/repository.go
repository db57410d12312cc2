package schedule

import "context"

type TeamScheduleRepository interface {
	GetByID(ctx context.Context, id string, companyID string) (TeamSchedule, error)
	GetByWorker(ctx context.Context, workerID string, companyID string) (TeamSchedule, error)
	List(ctx context.Context, companyID string) ([]TeamSchedule, error)
	Upsert(ctx context.Context, s TeamSchedule) (TeamSchedule, error)
	Delete(ctx context.Context, id string, companyID string) error
}
