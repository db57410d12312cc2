package postgresql

import (
	"context"

	"github.com/giodelapiedra/aegira-backend-go/internal/domain/company"
	"github.com/giodelapiedra/aegira-backend-go/internal/pkg/database"
)

type companyRepositoryImpl struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) company.CompanyRepository {
	return &companyRepositoryImpl{db: db}
}

// GetByID implements company.CompanyRepository.
func (r *companyRepositoryImpl) GetByID(ctx context.Context, id string) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, timezone, created_at, updated_at
		FROM companies
		WHERE id = $1
	`

	var c company.Company
	err := q.QueryRow(ctx, query, id).Scan(
		&c.ID,
		&c.Name,
		&c.Timezone,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return company.Company{}, err
	}

	return c, nil
}

// GetTimezone implements company.CompanyRepository.
func (r *companyRepositoryImpl) GetTimezone(ctx context.Context, id string) (string, error) {
	q := GetQuerier(ctx, r.db)

	var timezone string
	err := q.QueryRow(ctx, `SELECT timezone FROM companies WHERE id = $1`, id).Scan(&timezone)
	if err != nil {
		return "", err
	}

	return timezone, nil
}

// ListIDs implements company.CompanyRepository.
func (r *companyRepositoryImpl) ListIDs(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id FROM companies ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// Update implements company.CompanyRepository.
func (r *companyRepositoryImpl) Update(ctx context.Context, c company.Company) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE companies
		SET name = $2, timezone = $3, updated_at = NOW()
		WHERE id = $1
	`

	_, err := q.Exec(ctx, query, c.ID, c.Name, c.Timezone)
	return err
}
