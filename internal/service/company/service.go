package company

import (
	"context"
	"errors"
	"fmt"

	"github.com/giodelapiedra/aegira-backend-go/internal/domain/company"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
)

type CompanyServiceImpl struct {
	company.CompanyRepository
}

func NewCompanyService(repo company.CompanyRepository) company.CompanyService {
	return &CompanyServiceImpl{CompanyRepository: repo}
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

// GetMyCompany implements company.CompanyService.
func (s *CompanyServiceImpl) GetMyCompany(ctx context.Context) (company.CompanyResponse, error) {
	companyID, err := companyIDFrom(ctx)
	if err != nil {
		return company.CompanyResponse{}, err
	}

	c, err := s.CompanyRepository.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.CompanyResponse{}, company.ErrCompanyNotFound
		}
		return company.CompanyResponse{}, fmt.Errorf("failed to get company: %w", err)
	}

	return mapCompanyToResponse(c), nil
}

// UpdateMyCompany implements company.CompanyService. Timezone changes
// pass through request validation, so an invalid IANA identifier never
// reaches storage.
func (s *CompanyServiceImpl) UpdateMyCompany(ctx context.Context, req company.UpdateCompanyRequest) (company.CompanyResponse, error) {
	if err := req.Validate(); err != nil {
		return company.CompanyResponse{}, err
	}

	companyID, err := companyIDFrom(ctx)
	if err != nil {
		return company.CompanyResponse{}, err
	}

	c, err := s.CompanyRepository.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.CompanyResponse{}, company.ErrCompanyNotFound
		}
		return company.CompanyResponse{}, fmt.Errorf("failed to get company: %w", err)
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Timezone != nil {
		c.Timezone = *req.Timezone
	}

	if err := s.CompanyRepository.Update(ctx, c); err != nil {
		return company.CompanyResponse{}, fmt.Errorf("failed to update company: %w", err)
	}

	return mapCompanyToResponse(c), nil
}

func mapCompanyToResponse(c company.Company) company.CompanyResponse {
	return company.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		Timezone:  c.Timezone,
		CreatedAt: c.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt: c.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
