package checkin

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/giodelapiedra/aegira-backend-go/internal/domain/checkin"
	"github.com/giodelapiedra/aegira-backend-go/internal/domain/company"
	"github.com/giodelapiedra/aegira-backend-go/internal/domain/eligibility"
	"github.com/giodelapiedra/aegira-backend-go/internal/domain/schedule"
	"github.com/giodelapiedra/aegira-backend-go/internal/pkg/civiltime"
	"github.com/giodelapiedra/aegira-backend-go/internal/pkg/database"
	"github.com/giodelapiedra/aegira-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CheckInServiceImpl struct {
	db             *database.DB
	checkinRepo    checkin.CheckInRepository
	companyRepo    company.CompanyRepository
	scheduleRepo   schedule.TeamScheduleRepository
	eligibilitySvc eligibility.EligibilityService
}

func NewCheckInService(
	db *database.DB,
	checkinRepo checkin.CheckInRepository,
	companyRepo company.CompanyRepository,
	scheduleRepo schedule.TeamScheduleRepository,
	eligibilitySvc eligibility.EligibilityService,
) checkin.CheckInService {
	return &CheckInServiceImpl{
		db:             db,
		checkinRepo:    checkinRepo,
		companyRepo:    companyRepo,
		scheduleRepo:   scheduleRepo,
		eligibilitySvc: eligibilitySvc,
	}
}

func claimsIDs(ctx context.Context) (workerID string, companyID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", "", fmt.Errorf("company_id claim is missing or invalid")
	}

	workerID, ok = claims["worker_id"].(string)
	if !ok || workerID == "" {
		return "", "", fmt.Errorf("worker_id claim is missing or invalid")
	}

	return workerID, companyID, nil
}

// CheckIn implements checkin.CheckInService. The eligibility engine is
// the gatekeeper: a record is only written when the worker is inside
// the window right now.
func (s *CheckInServiceImpl) CheckIn(ctx context.Context) (checkin.CheckInResponse, error) {
	workerID, companyID, err := claimsIDs(ctx)
	if err != nil {
		return checkin.CheckInResponse{}, err
	}

	nowUTC := time.Now().UTC()

	result, err := s.eligibilitySvc.EvaluateWorkerAt(ctx, workerID, companyID, nowUTC)
	if err != nil {
		return checkin.CheckInResponse{}, err
	}

	switch {
	case result.Reason == eligibility.ReasonOnExemption:
		return checkin.CheckInResponse{}, checkin.ErrOnExemption
	case result.Reason == eligibility.ReasonAlreadyCheckedIn:
		return checkin.CheckInResponse{}, checkin.ErrAlreadyCheckedIn
	case !result.EligibleNow:
		return checkin.CheckInResponse{}, checkin.ErrNotEligible
	}

	timezone, err := s.companyRepo.GetTimezone(ctx, companyID)
	if err != nil {
		return checkin.CheckInResponse{}, fmt.Errorf("failed to get company timezone: %w", err)
	}
	resolver, err := civiltime.NewResolver(timezone)
	if err != nil {
		return checkin.CheckInResponse{}, fmt.Errorf("company timezone is misconfigured: %w", err)
	}

	teamSchedule, err := s.scheduleRepo.GetByWorker(ctx, workerID, companyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return checkin.CheckInResponse{}, schedule.ErrTeamScheduleNotFound
		}
		return checkin.CheckInResponse{}, fmt.Errorf("failed to get team schedule: %w", err)
	}

	today := resolver.DateOf(nowUTC)
	shiftStart, _ := teamSchedule.Pattern().ShiftBounds(today, resolver)

	status := checkin.StatusPresent
	lateMinutes := 0
	if nowUTC.After(shiftStart) {
		status = checkin.StatusLate
		lateMinutes = int(math.Floor(nowUTC.Sub(shiftStart).Minutes()))
	}

	record := checkin.CheckIn{
		ID:          uuid.NewString(),
		WorkerID:    workerID,
		CompanyID:   companyID,
		Date:        today.DateString(),
		CheckedInAt: &nowUTC,
		Status:      status,
		LateMinutes: lateMinutes,
	}

	// Re-check and insert in one transaction. Two concurrent requests
	// can both pass the eligibility gate; only one may write a record.
	var created checkin.CheckIn
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		exists, err := s.checkinRepo.HasCheckedIn(txCtx, workerID, record.Date, companyID)
		if err != nil {
			return fmt.Errorf("failed to check existing record: %w", err)
		}
		if exists {
			return checkin.ErrAlreadyCheckedIn
		}

		created, err = s.checkinRepo.Create(txCtx, record)
		if err != nil {
			return fmt.Errorf("failed to create check-in record: %w", err)
		}
		return nil
	})
	if err != nil {
		return checkin.CheckInResponse{}, err
	}

	return mapCheckInToResponse(created), nil
}

// ListMyCheckIns implements checkin.CheckInService.
func (s *CheckInServiceImpl) ListMyCheckIns(ctx context.Context, limit int) (checkin.ListCheckInResponse, error) {
	workerID, companyID, err := claimsIDs(ctx)
	if err != nil {
		return checkin.ListCheckInResponse{}, err
	}

	if limit <= 0 || limit > 100 {
		limit = 30
	}

	records, total, err := s.checkinRepo.ListByWorker(ctx, workerID, companyID, limit)
	if err != nil {
		return checkin.ListCheckInResponse{}, fmt.Errorf("failed to list check-ins: %w", err)
	}

	responses := make([]checkin.CheckInResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, mapCheckInToResponse(rec))
	}

	return checkin.ListCheckInResponse{
		TotalCount: total,
		CheckIns:   responses,
	}, nil
}

func mapCheckInToResponse(c checkin.CheckIn) checkin.CheckInResponse {
	var checkedInAt *string
	if c.CheckedInAt != nil {
		formatted := c.CheckedInAt.UTC().Format(time.RFC3339)
		checkedInAt = &formatted
	}

	return checkin.CheckInResponse{
		ID:          c.ID,
		WorkerID:    c.WorkerID,
		Date:        c.Date,
		CheckedInAt: checkedInAt,
		Status:      string(c.Status),
		LateMinutes: c.LateMinutes,
	}
}
