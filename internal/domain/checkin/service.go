package checkin

import "context"

type CheckInService interface {
	CheckIn(ctx context.Context) (CheckInResponse, error)
	ListMyCheckIns(ctx context.Context, limit int) (ListCheckInResponse, error)
}
