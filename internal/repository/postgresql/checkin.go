package postgresql

import (
	"context"
	"fmt"

	"github.com/giodelapiedra/aegira-backend-go/internal/domain/checkin"
	"github.com/giodelapiedra/aegira-backend-go/internal/pkg/database"
)

type checkInRepositoryImpl struct {
	db *database.DB
}

func NewCheckInRepository(db *database.DB) checkin.CheckInRepository {
	return &checkInRepositoryImpl{db: db}
}

// Create implements checkin.CheckInRepository.
func (r *checkInRepositoryImpl) Create(ctx context.Context, c checkin.CheckIn) (checkin.CheckIn, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO check_ins (
			id, worker_id, company_id, date, checked_in_at, status, late_minutes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		c.ID,
		c.WorkerID,
		c.CompanyID,
		c.Date,
		c.CheckedInAt,
		c.Status,
		c.LateMinutes,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return checkin.CheckIn{}, fmt.Errorf("failed to create check-in: %w", err)
	}

	return c, nil
}

// HasCheckedIn implements checkin.CheckInRepository.
func (r *checkInRepositoryImpl) HasCheckedIn(ctx context.Context, workerID string, date string, companyID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM check_ins
			WHERE worker_id = $1 AND date = $2 AND company_id = $3
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, workerID, date, companyID).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

// ListByWorker implements checkin.CheckInRepository.
func (r *checkInRepositoryImpl) ListByWorker(ctx context.Context, workerID string, companyID string, limit int) ([]checkin.CheckIn, int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM check_ins WHERE worker_id = $1 AND company_id = $2`,
		workerID, companyID,
	).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, worker_id, company_id, date, checked_in_at, status, late_minutes,
			   created_at, updated_at
		FROM check_ins
		WHERE worker_id = $1 AND company_id = $2
		ORDER BY date DESC
		LIMIT $3
	`

	rows, err := q.Query(ctx, query, workerID, companyID, limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var checkIns []checkin.CheckIn
	for rows.Next() {
		var c checkin.CheckIn
		if err := rows.Scan(
			&c.ID, &c.WorkerID, &c.CompanyID, &c.Date, &c.CheckedInAt, &c.Status, &c.LateMinutes,
			&c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		checkIns = append(checkIns, c)
	}

	return checkIns, total, rows.Err()
}
