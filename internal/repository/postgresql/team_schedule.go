package postgresql

import (
	"context"
	"fmt"

	"github.com/giodelapiedra/aegira-backend-go/internal/domain/schedule"
	"github.com/giodelapiedra/aegira-backend-go/internal/pkg/civiltime"
	"github.com/giodelapiedra/aegira-backend-go/internal/pkg/database"
)

type teamScheduleRepositoryImpl struct {
	db *database.DB
}

func NewTeamScheduleRepository(db *database.DB) schedule.TeamScheduleRepository {
	return &teamScheduleRepositoryImpl{db: db}
}

// Shift clocks persist as "HH:MM" text and work days as a text array of
// day codes; parsing back through civiltime keeps the zone semantics in
// one place.
func scanTeamSchedule(s *schedule.TeamSchedule, workDays []string, shiftStart, shiftEnd string) error {
	s.WorkDays = make([]schedule.DayCode, 0, len(workDays))
	for _, d := range workDays {
		s.WorkDays = append(s.WorkDays, schedule.DayCode(d))
	}

	var err error
	if s.ShiftStart, err = civiltime.ParseClock(shiftStart); err != nil {
		return fmt.Errorf("failed to parse shift start %q: %w", shiftStart, err)
	}
	if s.ShiftEnd, err = civiltime.ParseClock(shiftEnd); err != nil {
		return fmt.Errorf("failed to parse shift end %q: %w", shiftEnd, err)
	}
	return nil
}

// GetByID implements schedule.TeamScheduleRepository.
func (r *teamScheduleRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (schedule.TeamSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, team_name, work_days, shift_start, shift_end,
			   grace_period_minutes, created_at, updated_at
		FROM team_schedules
		WHERE id = $1 AND company_id = $2
	`

	var s schedule.TeamSchedule
	var workDays []string
	var shiftStart, shiftEnd string
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&s.ID, &s.CompanyID, &s.TeamName, &workDays, &shiftStart, &shiftEnd,
		&s.GracePeriodMinutes, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return schedule.TeamSchedule{}, err
	}
	if err := scanTeamSchedule(&s, workDays, shiftStart, shiftEnd); err != nil {
		return schedule.TeamSchedule{}, err
	}

	return s, nil
}

// GetByWorker implements schedule.TeamScheduleRepository.
func (r *teamScheduleRepositoryImpl) GetByWorker(ctx context.Context, workerID string, companyID string) (schedule.TeamSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ts.id, ts.company_id, ts.team_name, ts.work_days, ts.shift_start, ts.shift_end,
			   ts.grace_period_minutes, ts.created_at, ts.updated_at
		FROM team_schedules ts
		JOIN users u ON u.team_schedule_id = ts.id
		WHERE u.id = $1 AND ts.company_id = $2
	`

	var s schedule.TeamSchedule
	var workDays []string
	var shiftStart, shiftEnd string
	err := q.QueryRow(ctx, query, workerID, companyID).Scan(
		&s.ID, &s.CompanyID, &s.TeamName, &workDays, &shiftStart, &shiftEnd,
		&s.GracePeriodMinutes, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return schedule.TeamSchedule{}, err
	}
	if err := scanTeamSchedule(&s, workDays, shiftStart, shiftEnd); err != nil {
		return schedule.TeamSchedule{}, err
	}

	return s, nil
}

// List implements schedule.TeamScheduleRepository.
func (r *teamScheduleRepositoryImpl) List(ctx context.Context, companyID string) ([]schedule.TeamSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, team_name, work_days, shift_start, shift_end,
			   grace_period_minutes, created_at, updated_at
		FROM team_schedules
		WHERE company_id = $1
		ORDER BY team_name
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schedules []schedule.TeamSchedule
	for rows.Next() {
		var s schedule.TeamSchedule
		var workDays []string
		var shiftStart, shiftEnd string
		if err := rows.Scan(
			&s.ID, &s.CompanyID, &s.TeamName, &workDays, &shiftStart, &shiftEnd,
			&s.GracePeriodMinutes, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if err := scanTeamSchedule(&s, workDays, shiftStart, shiftEnd); err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}

	return schedules, rows.Err()
}

// Upsert implements schedule.TeamScheduleRepository.
func (r *teamScheduleRepositoryImpl) Upsert(ctx context.Context, s schedule.TeamSchedule) (schedule.TeamSchedule, error) {
	q := GetQuerier(ctx, r.db)

	workDays := make([]string, 0, len(s.WorkDays))
	for _, d := range s.WorkDays {
		workDays = append(workDays, string(d))
	}

	query := `
		INSERT INTO team_schedules (
			id, company_id, team_name, work_days, shift_start, shift_end, grace_period_minutes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)
		ON CONFLICT (id) DO UPDATE SET
			team_name = EXCLUDED.team_name,
			work_days = EXCLUDED.work_days,
			shift_start = EXCLUDED.shift_start,
			shift_end = EXCLUDED.shift_end,
			grace_period_minutes = EXCLUDED.grace_period_minutes,
			updated_at = NOW()
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.ID,
		s.CompanyID,
		s.TeamName,
		workDays,
		s.ShiftStart.String(),
		s.ShiftEnd.String(),
		s.GracePeriodMinutes,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return schedule.TeamSchedule{}, fmt.Errorf("failed to upsert team schedule: %w", err)
	}

	return s, nil
}

// Delete implements schedule.TeamScheduleRepository.
func (r *teamScheduleRepositoryImpl) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM team_schedules WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrTeamScheduleNotFound
	}

	return nil
}
