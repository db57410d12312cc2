package eligibility

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/giodelapiedra/aegira-backend-go/internal/domain/checkin"
	"github.com/giodelapiedra/aegira-backend-go/internal/domain/company"
	domain "github.com/giodelapiedra/aegira-backend-go/internal/domain/eligibility"
	"github.com/giodelapiedra/aegira-backend-go/internal/domain/exemption"
	"github.com/giodelapiedra/aegira-backend-go/internal/domain/schedule"
	"github.com/giodelapiedra/aegira-backend-go/internal/pkg/civiltime"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
)

type EligibilityServiceImpl struct {
	companyRepo   company.CompanyRepository
	scheduleRepo  schedule.TeamScheduleRepository
	exemptionRepo exemption.ExemptionRepository
	checkinRepo   checkin.CheckInRepository
}

func NewEligibilityService(
	companyRepo company.CompanyRepository,
	scheduleRepo schedule.TeamScheduleRepository,
	exemptionRepo exemption.ExemptionRepository,
	checkinRepo checkin.CheckInRepository,
) domain.EligibilityService {
	return &EligibilityServiceImpl{
		companyRepo:   companyRepo,
		scheduleRepo:  scheduleRepo,
		exemptionRepo: exemptionRepo,
		checkinRepo:   checkinRepo,
	}
}

// EvaluateMine implements eligibility.EligibilityService.
func (s *EligibilityServiceImpl) EvaluateMine(ctx context.Context) (domain.EligibilityResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return domain.EligibilityResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return domain.EligibilityResponse{}, fmt.Errorf("company_id claim is missing or invalid")
	}

	workerID, ok := claims["worker_id"].(string)
	if !ok || workerID == "" {
		return domain.EligibilityResponse{}, fmt.Errorf("worker_id claim is missing or invalid")
	}

	result, err := s.EvaluateWorkerAt(ctx, workerID, companyID, time.Now().UTC())
	if err != nil {
		return domain.EligibilityResponse{}, err
	}

	resp := domain.EligibilityResponse{
		EligibleNow: result.EligibleNow,
		ReturnDate:  result.ReturnDate,
		Reason:      string(result.Reason),
	}
	if result.NextEligibleAt != nil {
		at := result.NextEligibleAt.UTC().Format(time.RFC3339)
		resp.NextEligibleAt = &at
	}
	return resp, nil
}

// EvaluateWorkerAt implements eligibility.EligibilityService. The
// instant is injected so callers (and tests) control the clock; the
// evaluation itself stays pure.
func (s *EligibilityServiceImpl) EvaluateWorkerAt(ctx context.Context, workerID string, companyID string, now time.Time) (domain.Result, error) {
	timezone, err := s.companyRepo.GetTimezone(ctx, companyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Result{}, company.ErrCompanyNotFound
		}
		return domain.Result{}, fmt.Errorf("failed to get company timezone: %w", err)
	}

	resolver, err := civiltime.NewResolver(timezone)
	if err != nil {
		return domain.Result{}, fmt.Errorf("company timezone is misconfigured: %w", err)
	}

	teamSchedule, err := s.scheduleRepo.GetByWorker(ctx, workerID, companyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Result{}, schedule.ErrTeamScheduleNotFound
		}
		return domain.Result{}, fmt.Errorf("failed to get team schedule: %w", err)
	}

	exemptions, err := s.exemptionRepo.ListApprovedByWorker(ctx, workerID, companyID)
	if err != nil {
		return domain.Result{}, fmt.Errorf("failed to list approved exemptions: %w", err)
	}

	today := resolver.DateOf(now).DateString()
	alreadyCheckedIn, err := s.checkinRepo.HasCheckedIn(ctx, workerID, today, companyID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return domain.Result{}, fmt.Errorf("failed to check today's check-in: %w", err)
	}

	return Evaluate(now, teamSchedule.Pattern(), resolver, exemptions, alreadyCheckedIn), nil
}
