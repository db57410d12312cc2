package response

import (
	"errors"
	"net/http"

	"github.com/giodelapiedra/aegira-backend-go/internal/domain/auth"
	"github.com/giodelapiedra/aegira-backend-go/internal/domain/checkin"
	"github.com/giodelapiedra/aegira-backend-go/internal/domain/company"
	"github.com/giodelapiedra/aegira-backend-go/internal/domain/exemption"
	"github.com/giodelapiedra/aegira-backend-go/internal/domain/schedule"
	"github.com/giodelapiedra/aegira-backend-go/internal/domain/user"
	"github.com/giodelapiedra/aegira-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, "User account is deactivated")

	// Company domain errors
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, company.ErrInvalidTimezone):
		BadRequest(w, "Timezone must be a valid IANA zone identifier", nil)

	// Schedule domain errors
	case errors.Is(err, schedule.ErrTeamScheduleNotFound):
		NotFound(w, "Team schedule not found")
	case errors.Is(err, schedule.ErrOvernightShift):
		BadRequest(w, "Overnight shifts are not supported", nil)

	// Exemption domain errors
	case errors.Is(err, exemption.ErrExemptionNotFound):
		NotFound(w, "Exemption request not found")
	case errors.Is(err, exemption.ErrExemptionAlreadyProcessed):
		Conflict(w, "Exemption request already processed")
	case errors.Is(err, exemption.ErrExemptionNotApproved):
		Conflict(w, "Only an approved exemption can be ended early")
	case errors.Is(err, exemption.ErrEndDateBeforeStart):
		BadRequest(w, "End date must not be before start date", nil)

	// Check-in domain errors
	case errors.Is(err, checkin.ErrAlreadyCheckedIn):
		Conflict(w, "You have already checked in today")
	case errors.Is(err, checkin.ErrOnExemption):
		Conflict(w, "You are on an approved exemption today")
	case errors.Is(err, checkin.ErrNotEligible):
		Conflict(w, "Check-in is not open right now")
	case errors.Is(err, checkin.ErrCheckInNotFound):
		NotFound(w, "Check-in record not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
