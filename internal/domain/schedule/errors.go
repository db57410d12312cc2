package schedule

import "errors"

var (
	ErrTeamScheduleNotFound = errors.New("team schedule not found")
	ErrOvernightShift       = errors.New("shift end must be after shift start; overnight shifts are not supported")
)
