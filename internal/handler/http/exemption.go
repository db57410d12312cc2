package http

import (
	"encoding/json"
	"net/http"

	"github.com/giodelapiedra/aegira-backend-go/internal/domain/exemption"
	"github.com/giodelapiedra/aegira-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ExemptionHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	EndEarly(w http.ResponseWriter, r *http.Request)
}

type exemptionHandlerImpl struct {
	exemptionService exemption.ExemptionService
}

func NewExemptionHandler(exemptionService exemption.ExemptionService) ExemptionHandler {
	return &exemptionHandlerImpl{
		exemptionService: exemptionService,
	}
}

// Create implements ExemptionHandler.
func (h *exemptionHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req exemption.CreateExemptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.exemptionService.CreateExemption(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Exemption request submitted", result)
}

// ListMine implements ExemptionHandler.
func (h *exemptionHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	result, err := h.exemptionService.ListMyExemptions(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Approve implements ExemptionHandler.
func (h *exemptionHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.exemptionService.ApproveExemption(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Exemption request approved", result)
}

// Reject implements ExemptionHandler.
func (h *exemptionHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	var req exemption.RejectExemptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.exemptionService.RejectExemption(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Exemption request rejected", result)
}

// EndEarly implements ExemptionHandler.
func (h *exemptionHandlerImpl) EndEarly(w http.ResponseWriter, r *http.Request) {
	var req exemption.EndEarlyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.exemptionService.EndExemptionEarly(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Exemption ended early", result)
}
