package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/giodelapiedra/aegira-backend-go/internal/domain/schedule"
	"github.com/giodelapiedra/aegira-backend-go/internal/pkg/civiltime"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type TeamScheduleServiceImpl struct {
	schedule.TeamScheduleRepository
}

func NewTeamScheduleService(repo schedule.TeamScheduleRepository) schedule.TeamScheduleService {
	return &TeamScheduleServiceImpl{TeamScheduleRepository: repo}
}

func companyIDFrom(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}
	return companyID, nil
}

// UpsertTeamSchedule implements schedule.TeamScheduleService. Malformed
// shift times, unknown day codes and overnight shifts are rejected here
// so evaluations never see a bad pattern.
func (s *TeamScheduleServiceImpl) UpsertTeamSchedule(ctx context.Context, req schedule.UpsertTeamScheduleRequest) (schedule.TeamScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.TeamScheduleResponse{}, err
	}

	companyID, err := companyIDFrom(ctx)
	if err != nil {
		return schedule.TeamScheduleResponse{}, err
	}

	shiftStart, err := civiltime.ParseClock(req.ShiftStart)
	if err != nil {
		return schedule.TeamScheduleResponse{}, err
	}
	shiftEnd, err := civiltime.ParseClock(req.ShiftEnd)
	if err != nil {
		return schedule.TeamScheduleResponse{}, err
	}

	workDays := make([]schedule.DayCode, 0, len(req.WorkDays))
	for _, day := range req.WorkDays {
		workDays = append(workDays, schedule.DayCode(day))
	}

	grace := schedule.DefaultGracePeriodMinutes
	if req.GracePeriodMinutes != nil {
		grace = *req.GracePeriodMinutes
	}

	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}

	saved, err := s.TeamScheduleRepository.Upsert(ctx, schedule.TeamSchedule{
		ID:                 id,
		CompanyID:          companyID,
		TeamName:           req.TeamName,
		WorkDays:           workDays,
		ShiftStart:         shiftStart,
		ShiftEnd:           shiftEnd,
		GracePeriodMinutes: grace,
	})
	if err != nil {
		return schedule.TeamScheduleResponse{}, fmt.Errorf("failed to upsert team schedule: %w", err)
	}

	return mapTeamScheduleToResponse(saved), nil
}

// GetTeamSchedule implements schedule.TeamScheduleService.
func (s *TeamScheduleServiceImpl) GetTeamSchedule(ctx context.Context, id string) (schedule.TeamScheduleResponse, error) {
	companyID, err := companyIDFrom(ctx)
	if err != nil {
		return schedule.TeamScheduleResponse{}, err
	}

	teamSchedule, err := s.TeamScheduleRepository.GetByID(ctx, id, companyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.TeamScheduleResponse{}, schedule.ErrTeamScheduleNotFound
		}
		return schedule.TeamScheduleResponse{}, fmt.Errorf("failed to get team schedule: %w", err)
	}

	return mapTeamScheduleToResponse(teamSchedule), nil
}

// ListTeamSchedules implements schedule.TeamScheduleService.
func (s *TeamScheduleServiceImpl) ListTeamSchedules(ctx context.Context) ([]schedule.TeamScheduleResponse, error) {
	companyID, err := companyIDFrom(ctx)
	if err != nil {
		return nil, err
	}

	schedules, err := s.TeamScheduleRepository.List(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team schedules: %w", err)
	}

	responses := make([]schedule.TeamScheduleResponse, 0, len(schedules))
	for _, teamSchedule := range schedules {
		responses = append(responses, mapTeamScheduleToResponse(teamSchedule))
	}
	return responses, nil
}

// DeleteTeamSchedule implements schedule.TeamScheduleService.
func (s *TeamScheduleServiceImpl) DeleteTeamSchedule(ctx context.Context, id string) error {
	companyID, err := companyIDFrom(ctx)
	if err != nil {
		return err
	}

	if err := s.TeamScheduleRepository.Delete(ctx, id, companyID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.ErrTeamScheduleNotFound
		}
		return fmt.Errorf("failed to delete team schedule: %w", err)
	}
	return nil
}

func mapTeamScheduleToResponse(s schedule.TeamSchedule) schedule.TeamScheduleResponse {
	workDays := make([]string, 0, len(s.WorkDays))
	for _, day := range s.WorkDays {
		workDays = append(workDays, string(day))
	}

	return schedule.TeamScheduleResponse{
		ID:                 s.ID,
		TeamName:           s.TeamName,
		WorkDays:           workDays,
		ShiftStart:         s.ShiftStart.String(),
		ShiftEnd:           s.ShiftEnd.String(),
		GracePeriodMinutes: s.GracePeriodMinutes,
		CreatedAt:          s.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:          s.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
