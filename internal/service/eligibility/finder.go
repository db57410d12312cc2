package eligibility

import (
	"time"

	"github.com/giodelapiedra/aegira-backend-go/internal/domain/eligibility"
	"github.com/giodelapiedra/aegira-backend-go/internal/domain/exemption"
	"github.com/giodelapiedra/aegira-backend-go/internal/domain/schedule"
	"github.com/giodelapiedra/aegira-backend-go/internal/pkg/civiltime"
)

// searchHorizonDays bounds the forward search for the next eligible
// day. Exhausting it is a valid outcome (an empty work-day set), not an
// error.
const searchHorizonDays = 14

// Evaluate answers whether a worker may check in at the given instant
// and, if not, when next. It is a pure function of its inputs: the
// caller injects "now" and a read-only exemption snapshot, and nothing
// is mutated or remembered between calls.
func Evaluate(
	now time.Time,
	pattern schedule.WorkPattern,
	r *civiltime.Resolver,
	exemptions []exemption.Interval,
	alreadyCheckedIn bool,
) eligibility.Result {
	today := r.DateOf(now)
	suppressedToday := isSuppressed(today, exemptions)
	returnDate := earliestReturnDate(today, exemptions, pattern)

	// An active exemption with a known return date is a distinct state:
	// the worker is told when they are due back, not when a check-in
	// window opens.
	if returnDate != nil {
		ret := returnDate.DateString()
		return eligibility.Result{
			Reason:     eligibility.ReasonOnExemption,
			ReturnDate: &ret,
		}
	}

	workToday := pattern.IsWorkDay(today)
	win := windowOn(today, pattern, r)

	if workToday && !alreadyCheckedIn && !suppressedToday {
		if win.contains(now) {
			at := now
			return eligibility.Result{
				EligibleNow:    true,
				NextEligibleAt: &at,
				Reason:         eligibility.ReasonEligibleNow,
			}
		}
		if win.before(now) {
			at := win.opensAt
			return eligibility.Result{
				NextEligibleAt: &at,
				Reason:         eligibility.ReasonWindowNotOpen,
			}
		}
	}

	// Forward search always starts at tomorrow. Today never qualifies
	// here, even when its weekday matches a candidate's weekday; a
	// worker who checked in must get a later calendar date.
	reason := todayReason(workToday, alreadyCheckedIn, suppressedToday, win, now)
	for i := 1; i <= searchHorizonDays; i++ {
		candidate := civiltime.AddDays(today, i)
		if isSuppressed(candidate, exemptions) {
			continue
		}
		if !pattern.IsWorkDay(candidate) {
			continue
		}
		at := pattern.GraceStart(candidate, r)
		return eligibility.Result{
			NextEligibleAt: &at,
			Reason:         reason,
		}
	}

	return eligibility.Result{Reason: eligibility.ReasonNoEligibleDay}
}

// todayReason explains why today did not qualify, to accompany the
// forward-search result.
func todayReason(workToday, alreadyCheckedIn, suppressedToday bool, win window, now time.Time) eligibility.Reason {
	switch {
	case suppressedToday:
		// Covered by an exemption whose return date could not be
		// resolved; still reported as an exemption day.
		return eligibility.ReasonOnExemption
	case !workToday:
		return eligibility.ReasonNotWorkDay
	case alreadyCheckedIn:
		return eligibility.ReasonAlreadyCheckedIn
	case win.after(now):
		return eligibility.ReasonShiftEnded
	default:
		return eligibility.ReasonNotWorkDay
	}
}
