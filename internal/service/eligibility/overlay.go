package eligibility

import (
	"github.com/giodelapiedra/aegira-backend-go/internal/domain/exemption"
	"github.com/giodelapiedra/aegira-backend-go/internal/domain/schedule"
	"github.com/giodelapiedra/aegira-backend-go/internal/pkg/civiltime"
)

// returnSearchDays bounds the walk forward from an exemption's end date
// to the first scheduled work day.
const returnSearchDays = 7

// isSuppressed reports whether any approved exemption covers the
// zone-local date.
func isSuppressed(date civiltime.Civil, exemptions []exemption.Interval) bool {
	for _, e := range exemptions {
		if e.Covers(date) {
			return true
		}
	}
	return false
}

// earliestReturnDate finds when a currently exempted worker is next due
// back. Only intervals covering today count; a future-scheduled
// exemption is not an active one. When several overlap, the earliest
// end date wins, and the return date is then pushed forward to the
// first work day after it, since returning on a non-work day is
// meaningless. Returns nil when no interval covers today, when the
// bounded search finds no work day, or when the computed date is
// already behind today (stale data, treated as not exempted).
func earliestReturnDate(today civiltime.Civil, exemptions []exemption.Interval, pattern schedule.WorkPattern) *civiltime.Civil {
	var active *exemption.Interval
	for i := range exemptions {
		e := exemptions[i]
		if !e.Covers(today) {
			continue
		}
		if active == nil || e.EndDate.DateString() < active.EndDate.DateString() {
			active = &e
		}
	}
	if active == nil {
		return nil
	}

	for i := 1; i <= returnSearchDays; i++ {
		candidate := civiltime.AddDays(active.EndDate, i)
		if !pattern.IsWorkDay(candidate) {
			continue
		}
		if candidate.DateString() < today.DateString() {
			return nil
		}
		return &candidate
	}
	return nil
}
