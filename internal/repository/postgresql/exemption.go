package postgresql

import (
	"context"
	"fmt"

	"github.com/giodelapiedra/aegira-backend-go/internal/domain/exemption"
	"github.com/giodelapiedra/aegira-backend-go/internal/pkg/civiltime"
	"github.com/giodelapiedra/aegira-backend-go/internal/pkg/database"
)

type exemptionRepositoryImpl struct {
	db *database.DB
}

func NewExemptionRepository(db *database.DB) exemption.ExemptionRepository {
	return &exemptionRepositoryImpl{db: db}
}

// Exemption dates persist as "YYYY-MM-DD" text. They are zone-local
// calendar dates, not instants, and must survive storage unchanged.
func scanInterval(i *exemption.Interval, startDate, endDate string) error {
	var err error
	if i.StartDate, err = civiltime.ParseDate(startDate); err != nil {
		return fmt.Errorf("failed to parse start date %q: %w", startDate, err)
	}
	if i.EndDate, err = civiltime.ParseDate(endDate); err != nil {
		return fmt.Errorf("failed to parse end date %q: %w", endDate, err)
	}
	return nil
}

// Create implements exemption.ExemptionRepository.
func (r *exemptionRepositoryImpl) Create(ctx context.Context, i exemption.Interval) (exemption.Interval, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO exemptions (
			id, worker_id, company_id, start_date, end_date, reason, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		i.ID,
		i.WorkerID,
		i.CompanyID,
		i.StartDate.DateString(),
		i.EndDate.DateString(),
		i.Reason,
		i.Status,
	).Scan(&i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		return exemption.Interval{}, fmt.Errorf("failed to create exemption: %w", err)
	}

	return i, nil
}

// GetByID implements exemption.ExemptionRepository.
func (r *exemptionRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (exemption.Interval, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, worker_id, company_id, start_date, end_date, reason, status,
			   approved_by, approved_at, rejection_reason, ended_early_at,
			   created_at, updated_at
		FROM exemptions
		WHERE id = $1 AND company_id = $2
	`

	var i exemption.Interval
	var startDate, endDate string
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&i.ID, &i.WorkerID, &i.CompanyID, &startDate, &endDate, &i.Reason, &i.Status,
		&i.ApprovedBy, &i.ApprovedAt, &i.RejectionReason, &i.EndedEarlyAt,
		&i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return exemption.Interval{}, err
	}
	if err := scanInterval(&i, startDate, endDate); err != nil {
		return exemption.Interval{}, err
	}

	return i, nil
}

// ListByWorker implements exemption.ExemptionRepository.
func (r *exemptionRepositoryImpl) ListByWorker(ctx context.Context, workerID string, companyID string) ([]exemption.Interval, error) {
	return r.list(ctx, workerID, companyID, false)
}

// ListApprovedByWorker implements exemption.ExemptionRepository.
func (r *exemptionRepositoryImpl) ListApprovedByWorker(ctx context.Context, workerID string, companyID string) ([]exemption.Interval, error) {
	return r.list(ctx, workerID, companyID, true)
}

func (r *exemptionRepositoryImpl) list(ctx context.Context, workerID string, companyID string, approvedOnly bool) ([]exemption.Interval, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, worker_id, company_id, start_date, end_date, reason, status,
			   approved_by, approved_at, rejection_reason, ended_early_at,
			   created_at, updated_at
		FROM exemptions
		WHERE worker_id = $1 AND company_id = $2
	`
	args := []any{workerID, companyID}
	if approvedOnly {
		query += ` AND status = $3`
		args = append(args, exemption.StatusApproved)
	}
	query += ` ORDER BY start_date DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var intervals []exemption.Interval
	for rows.Next() {
		var i exemption.Interval
		var startDate, endDate string
		if err := rows.Scan(
			&i.ID, &i.WorkerID, &i.CompanyID, &startDate, &endDate, &i.Reason, &i.Status,
			&i.ApprovedBy, &i.ApprovedAt, &i.RejectionReason, &i.EndedEarlyAt,
			&i.CreatedAt, &i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if err := scanInterval(&i, startDate, endDate); err != nil {
			return nil, err
		}
		intervals = append(intervals, i)
	}

	return intervals, rows.Err()
}

// Update implements exemption.ExemptionRepository.
func (r *exemptionRepositoryImpl) Update(ctx context.Context, i exemption.Interval) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE exemptions
		SET start_date = $3, end_date = $4, reason = $5, status = $6,
			approved_by = $7, approved_at = $8, rejection_reason = $9,
			ended_early_at = $10, updated_at = NOW()
		WHERE id = $1 AND company_id = $2
	`

	tag, err := q.Exec(ctx, query,
		i.ID,
		i.CompanyID,
		i.StartDate.DateString(),
		i.EndDate.DateString(),
		i.Reason,
		i.Status,
		i.ApprovedBy,
		i.ApprovedAt,
		i.RejectionReason,
		i.EndedEarlyAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update exemption: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return exemption.ErrExemptionNotFound
	}

	return nil
}
