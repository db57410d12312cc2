package schedule

import "context"

type TeamScheduleService interface {
	UpsertTeamSchedule(ctx context.Context, req UpsertTeamScheduleRequest) (TeamScheduleResponse, error)
	GetTeamSchedule(ctx context.Context, id string) (TeamScheduleResponse, error)
	ListTeamSchedules(ctx context.Context) ([]TeamScheduleResponse, error)
	DeleteTeamSchedule(ctx context.Context, id string) error
}
