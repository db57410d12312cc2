package http

import (
	"encoding/json"
	"net/http"

	"github.com/giodelapiedra/aegira-backend-go/internal/domain/company"
	"github.com/giodelapiedra/aegira-backend-go/internal/handler/http/response"
)

type CompanyHandler interface {
	GetMyCompany(w http.ResponseWriter, r *http.Request)
	UpdateMyCompany(w http.ResponseWriter, r *http.Request)
}

type companyHandlerImpl struct {
	companyService company.CompanyService
}

func NewCompanyHandler(companyService company.CompanyService) CompanyHandler {
	return &companyHandlerImpl{
		companyService: companyService,
	}
}

// GetMyCompany implements CompanyHandler.
func (h *companyHandlerImpl) GetMyCompany(w http.ResponseWriter, r *http.Request) {
	result, err := h.companyService.GetMyCompany(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateMyCompany implements CompanyHandler. Changing the timezone takes
// effect on the next evaluation; past check-in records keep the dates
// they were stored with.
func (h *companyHandlerImpl) UpdateMyCompany(w http.ResponseWriter, r *http.Request) {
	var req company.UpdateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.companyService.UpdateMyCompany(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Company updated successfully", result)
}
