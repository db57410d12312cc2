package schedule

import (
	"github.com/giodelapiedra/aegira-backend-go/internal/pkg/civiltime"
	"github.com/giodelapiedra/aegira-backend-go/internal/pkg/validator"
)

// ========================================
// TEAM SCHEDULE DTOs
// ========================================

type UpsertTeamScheduleRequest struct {
	// ID is empty on create; updates carry the existing schedule ID.
	ID                 string   `json:"id"`
	TeamName           string   `json:"team_name"`
	WorkDays           []string `json:"work_days"`
	ShiftStart         string   `json:"shift_start"`
	ShiftEnd           string   `json:"shift_end"`
	GracePeriodMinutes *int     `json:"grace_period_minutes"`
}

func (r *UpsertTeamScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ID != "" && !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a valid UUID",
		})
	}

	if validator.IsEmpty(r.TeamName) {
		errs = append(errs, validator.ValidationError{
			Field:   "team_name",
			Message: "team_name is required",
		})
	}

	seen := map[string]bool{}
	for _, day := range r.WorkDays {
		if !validator.IsInSlice(day, DayCodeValues) {
			errs = append(errs, validator.ValidationError{
				Field:   "work_days",
				Message: "work days must be one of MON..SUN",
			})
			break
		}
		if seen[day] {
			errs = append(errs, validator.ValidationError{
				Field:   "work_days",
				Message: "work days must not repeat",
			})
			break
		}
		seen[day] = true
	}

	start, startErr := civiltime.ParseClock(r.ShiftStart)
	if startErr != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_start",
			Message: "shift_start must be a 24-hour HH:MM time",
		})
	}

	end, endErr := civiltime.ParseClock(r.ShiftEnd)
	if endErr != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_end",
			Message: "shift_end must be a 24-hour HH:MM time",
		})
	}

	if startErr == nil && endErr == nil && !start.Before(end) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_end",
			Message: ErrOvernightShift.Error(),
		})
	}

	if r.GracePeriodMinutes != nil && *r.GracePeriodMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "grace_period_minutes",
			Message: "grace_period_minutes must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TeamScheduleResponse struct {
	ID                 string   `json:"id"`
	TeamName           string   `json:"team_name"`
	WorkDays           []string `json:"work_days"`
	ShiftStart         string   `json:"shift_start"`
	ShiftEnd           string   `json:"shift_end"`
	GracePeriodMinutes int      `json:"grace_period_minutes"`
	CreatedAt          string   `json:"created_at"`
	UpdatedAt          string   `json:"updated_at"`
}
