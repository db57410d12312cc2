package http

import (
	"net/http"

	"github.com/giodelapiedra/aegira-backend-go/internal/domain/eligibility"
	"github.com/giodelapiedra/aegira-backend-go/internal/handler/http/response"
)

type EligibilityHandler interface {
	GetMyEligibility(w http.ResponseWriter, r *http.Request)
}

type eligibilityHandlerImpl struct {
	eligibilityService eligibility.EligibilityService
}

func NewEligibilityHandler(eligibilityService eligibility.EligibilityService) EligibilityHandler {
	return &eligibilityHandlerImpl{
		eligibilityService: eligibilityService,
	}
}

// GetMyEligibility implements EligibilityHandler. The result is computed
// fresh on every request; nothing about it is cached or persisted.
func (h *eligibilityHandlerImpl) GetMyEligibility(w http.ResponseWriter, r *http.Request) {
	result, err := h.eligibilityService.EvaluateMine(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
