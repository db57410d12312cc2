package http

import (
	"encoding/json"
	"net/http"

	"github.com/giodelapiedra/aegira-backend-go/internal/domain/schedule"
	"github.com/giodelapiedra/aegira-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type TeamScheduleHandler interface {
	Upsert(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type teamScheduleHandlerImpl struct {
	scheduleService schedule.TeamScheduleService
}

func NewTeamScheduleHandler(scheduleService schedule.TeamScheduleService) TeamScheduleHandler {
	return &teamScheduleHandlerImpl{
		scheduleService: scheduleService,
	}
}

// Upsert implements TeamScheduleHandler. A request without an id
// creates a schedule; with an id it replaces the configuration.
func (h *teamScheduleHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	var req schedule.UpsertTeamScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if id := chi.URLParam(r, "id"); id != "" {
		req.ID = id
	}

	result, err := h.scheduleService.UpsertTeamSchedule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if req.ID == "" {
		response.Created(w, "Team schedule created successfully", result)
		return
	}
	response.SuccessWithMessage(w, "Team schedule updated successfully", result)
}

// Get implements TeamScheduleHandler.
func (h *teamScheduleHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.scheduleService.GetTeamSchedule(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements TeamScheduleHandler.
func (h *teamScheduleHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.scheduleService.ListTeamSchedules(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Delete implements TeamScheduleHandler.
func (h *teamScheduleHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.scheduleService.DeleteTeamSchedule(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Team schedule deleted successfully", nil)
}
