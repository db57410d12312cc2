package company

import "context"

type CompanyService interface {
	GetMyCompany(ctx context.Context) (CompanyResponse, error)
	UpdateMyCompany(ctx context.Context, req UpdateCompanyRequest) (CompanyResponse, error)
}
