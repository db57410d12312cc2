package company

import (
	"github.com/giodelapiedra/aegira-backend-go/internal/pkg/civiltime"
	"github.com/giodelapiedra/aegira-backend-go/internal/pkg/validator"
)

type UpdateCompanyRequest struct {
	Name     *string `json:"name"`
	Timezone *string `json:"timezone"`
}

func (r *UpdateCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	// Zone identifiers are configuration; reject bad ones here so the
	// engine never sees them.
	if r.Timezone != nil {
		if _, err := civiltime.NewResolver(*r.Timezone); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "timezone",
				Message: ErrInvalidTimezone.Error(),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CompanyResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Timezone  string `json:"timezone"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
