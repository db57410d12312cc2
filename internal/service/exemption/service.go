package exemption

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/giodelapiedra/aegira-backend-go/internal/domain/exemption"
	"github.com/giodelapiedra/aegira-backend-go/internal/pkg/civiltime"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ExemptionServiceImpl struct {
	exemption.ExemptionRepository
}

func NewExemptionService(repo exemption.ExemptionRepository) exemption.ExemptionService {
	return &ExemptionServiceImpl{ExemptionRepository: repo}
}

func claimsFrom(ctx context.Context) (userID, workerID, companyID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, _ = claims["user_id"].(string)
	workerID, _ = claims["worker_id"].(string)
	companyID, _ = claims["company_id"].(string)
	if companyID == "" {
		return "", "", "", fmt.Errorf("company_id claim is missing or invalid")
	}
	return userID, workerID, companyID, nil
}

// CreateExemption implements exemption.ExemptionService.
func (s *ExemptionServiceImpl) CreateExemption(ctx context.Context, req exemption.CreateExemptionRequest) (exemption.ExemptionResponse, error) {
	if err := req.Validate(); err != nil {
		return exemption.ExemptionResponse{}, err
	}

	_, workerID, companyID, err := claimsFrom(ctx)
	if err != nil {
		return exemption.ExemptionResponse{}, err
	}
	if workerID == "" {
		return exemption.ExemptionResponse{}, fmt.Errorf("worker_id claim is missing or invalid")
	}

	startDate, err := civiltime.ParseDate(req.StartDate)
	if err != nil {
		return exemption.ExemptionResponse{}, err
	}
	endDate, err := civiltime.ParseDate(req.EndDate)
	if err != nil {
		return exemption.ExemptionResponse{}, err
	}

	created, err := s.ExemptionRepository.Create(ctx, exemption.Interval{
		ID:        uuid.NewString(),
		WorkerID:  workerID,
		CompanyID: companyID,
		StartDate: startDate,
		EndDate:   endDate,
		Reason:    req.Reason,
		Status:    exemption.StatusPending,
	})
	if err != nil {
		return exemption.ExemptionResponse{}, fmt.Errorf("failed to create exemption request: %w", err)
	}

	return mapExemptionToResponse(created), nil
}

// ApproveExemption implements exemption.ExemptionService.
func (s *ExemptionServiceImpl) ApproveExemption(ctx context.Context, id string) (exemption.ExemptionResponse, error) {
	userID, _, companyID, err := claimsFrom(ctx)
	if err != nil {
		return exemption.ExemptionResponse{}, err
	}

	interval, err := s.getInterval(ctx, id, companyID)
	if err != nil {
		return exemption.ExemptionResponse{}, err
	}

	if interval.Status != exemption.StatusPending {
		return exemption.ExemptionResponse{}, exemption.ErrExemptionAlreadyProcessed
	}

	now := time.Now()
	interval.Status = exemption.StatusApproved
	interval.ApprovedBy = &userID
	interval.ApprovedAt = &now
	interval.RejectionReason = nil

	if err := s.ExemptionRepository.Update(ctx, interval); err != nil {
		return exemption.ExemptionResponse{}, fmt.Errorf("failed to approve exemption: %w", err)
	}

	return mapExemptionToResponse(interval), nil
}

// RejectExemption implements exemption.ExemptionService.
func (s *ExemptionServiceImpl) RejectExemption(ctx context.Context, req exemption.RejectExemptionRequest) (exemption.ExemptionResponse, error) {
	if err := req.Validate(); err != nil {
		return exemption.ExemptionResponse{}, err
	}

	userID, _, companyID, err := claimsFrom(ctx)
	if err != nil {
		return exemption.ExemptionResponse{}, err
	}

	interval, err := s.getInterval(ctx, req.ID, companyID)
	if err != nil {
		return exemption.ExemptionResponse{}, err
	}

	if interval.Status != exemption.StatusPending {
		return exemption.ExemptionResponse{}, exemption.ErrExemptionAlreadyProcessed
	}

	now := time.Now()
	interval.Status = exemption.StatusRejected
	interval.ApprovedBy = &userID
	interval.ApprovedAt = &now
	interval.RejectionReason = &req.Reason

	if err := s.ExemptionRepository.Update(ctx, interval); err != nil {
		return exemption.ExemptionResponse{}, fmt.Errorf("failed to reject exemption: %w", err)
	}

	return mapExemptionToResponse(interval), nil
}

// EndExemptionEarly implements exemption.ExemptionService. The only
// mutation an approved interval accepts: its end date may move earlier,
// never later.
func (s *ExemptionServiceImpl) EndExemptionEarly(ctx context.Context, req exemption.EndEarlyRequest) (exemption.ExemptionResponse, error) {
	if err := req.Validate(); err != nil {
		return exemption.ExemptionResponse{}, err
	}

	_, _, companyID, err := claimsFrom(ctx)
	if err != nil {
		return exemption.ExemptionResponse{}, err
	}

	interval, err := s.getInterval(ctx, req.ID, companyID)
	if err != nil {
		return exemption.ExemptionResponse{}, err
	}

	if interval.Status != exemption.StatusApproved {
		return exemption.ExemptionResponse{}, exemption.ErrExemptionNotApproved
	}

	newEnd, err := civiltime.ParseDate(req.EndDate)
	if err != nil {
		return exemption.ExemptionResponse{}, err
	}
	if newEnd.DateString() < interval.StartDate.DateString() {
		return exemption.ExemptionResponse{}, exemption.ErrEndDateBeforeStart
	}
	if newEnd.DateString() >= interval.EndDate.DateString() {
		return exemption.ExemptionResponse{}, fmt.Errorf("end date %s does not shorten the exemption", req.EndDate)
	}

	now := time.Now()
	interval.EndDate = newEnd
	interval.EndedEarlyAt = &now

	if err := s.ExemptionRepository.Update(ctx, interval); err != nil {
		return exemption.ExemptionResponse{}, fmt.Errorf("failed to end exemption early: %w", err)
	}

	return mapExemptionToResponse(interval), nil
}

// ListMyExemptions implements exemption.ExemptionService.
func (s *ExemptionServiceImpl) ListMyExemptions(ctx context.Context) ([]exemption.ExemptionResponse, error) {
	_, workerID, companyID, err := claimsFrom(ctx)
	if err != nil {
		return nil, err
	}
	if workerID == "" {
		return nil, fmt.Errorf("worker_id claim is missing or invalid")
	}

	intervals, err := s.ExemptionRepository.ListByWorker(ctx, workerID, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list exemptions: %w", err)
	}

	responses := make([]exemption.ExemptionResponse, 0, len(intervals))
	for _, interval := range intervals {
		responses = append(responses, mapExemptionToResponse(interval))
	}
	return responses, nil
}

func (s *ExemptionServiceImpl) getInterval(ctx context.Context, id string, companyID string) (exemption.Interval, error) {
	interval, err := s.ExemptionRepository.GetByID(ctx, id, companyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return exemption.Interval{}, exemption.ErrExemptionNotFound
		}
		return exemption.Interval{}, fmt.Errorf("failed to get exemption: %w", err)
	}
	return interval, nil
}

func mapExemptionToResponse(i exemption.Interval) exemption.ExemptionResponse {
	return exemption.ExemptionResponse{
		ID:              i.ID,
		WorkerID:        i.WorkerID,
		StartDate:       i.StartDate.DateString(),
		EndDate:         i.EndDate.DateString(),
		Reason:          i.Reason,
		Status:          string(i.Status),
		ApprovedBy:      i.ApprovedBy,
		RejectionReason: i.RejectionReason,
		CreatedAt:       i.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:       i.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
