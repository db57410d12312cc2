package eligibility

import "time"

// Reason states why a worker can or cannot check in right now.
type Reason string

const (
	// ReasonEligibleNow: within the window on a scheduled work day.
	ReasonEligibleNow Reason = "eligible_now"
	// ReasonWindowNotOpen: today is a work day but the grace window has
	// not opened yet; NextEligibleAt is later today.
	ReasonWindowNotOpen Reason = "window_not_open"
	// ReasonOnExemption: today falls inside an approved exemption.
	// ReturnDate carries the first work day after it, when one exists;
	// NextEligibleAt stays empty because return-to-work is a different
	// state than a countdown to the next check-in.
	ReasonOnExemption Reason = "on_exemption"
	// ReasonAlreadyCheckedIn: today's check-in exists; NextEligibleAt is
	// on a later calendar date.
	ReasonAlreadyCheckedIn Reason = "already_checked_in"
	// ReasonShiftEnded: today's window has closed.
	ReasonShiftEnded Reason = "shift_ended"
	// ReasonNotWorkDay: today is not in the team's work-day set.
	ReasonNotWorkDay Reason = "not_work_day"
	// ReasonNoEligibleDay: the forward search exhausted its horizon with
	// no candidate, e.g. an empty work-day set.
	ReasonNoEligibleDay Reason = "no_eligible_day"
)

// Result is the outcome of one eligibility evaluation. It is a pure
// function of the inputs, produced fresh every time and never persisted.
type Result struct {
	EligibleNow    bool
	NextEligibleAt *time.Time
	ReturnDate     *string
	Reason         Reason
}

// EligibilityResponse is the wire form consumed by the worker home UI.
type EligibilityResponse struct {
	EligibleNow    bool    `json:"eligible_now"`
	NextEligibleAt *string `json:"next_eligible_at,omitempty"`
	ReturnDate     *string `json:"return_date,omitempty"`
	Reason         string  `json:"reason"`
}
