package http

import (
	"net/http"
	"strconv"

	"github.com/giodelapiedra/aegira-backend-go/internal/domain/checkin"
	"github.com/giodelapiedra/aegira-backend-go/internal/handler/http/response"
)

type CheckInHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	ListMyCheckIns(w http.ResponseWriter, r *http.Request)
}

type checkInHandlerImpl struct {
	checkInService checkin.CheckInService
}

func NewCheckInHandler(checkInService checkin.CheckInService) CheckInHandler {
	return &checkInHandlerImpl{
		checkInService: checkInService,
	}
}

// CheckIn implements CheckInHandler. The request carries no body; the
// worker and the moment come from the token and the server clock.
func (h *checkInHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	result, err := h.checkInService.CheckIn(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Checked in successfully", result)
}

// ListMyCheckIns implements CheckInHandler.
func (h *checkInHandlerImpl) ListMyCheckIns(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			response.BadRequest(w, "limit must be a positive integer", nil)
			return
		}
		limit = parsed
	}

	result, err := h.checkInService.ListMyCheckIns(r.Context(), limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.CheckIns, &response.Meta{
		Limit:      limit,
		TotalItems: result.TotalCount,
	})
}
