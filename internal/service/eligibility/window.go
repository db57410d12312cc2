package eligibility

import (
	"time"

	"github.com/giodelapiedra/aegira-backend-go/internal/domain/schedule"
	"github.com/giodelapiedra/aegira-backend-go/internal/pkg/civiltime"
)

// window is the check-in window on one work day: it opens at shift
// start minus the grace period and closes at shift end, inclusive on
// both bounds (exact shift start and exact shift end are eligible).
type window struct {
	opensAt  time.Time
	closesAt time.Time
}

func windowOn(date civiltime.Civil, pattern schedule.WorkPattern, r *civiltime.Resolver) window {
	_, end := pattern.ShiftBounds(date, r)
	return window{
		opensAt:  pattern.GraceStart(date, r),
		closesAt: end,
	}
}

func (w window) contains(now time.Time) bool {
	return !now.Before(w.opensAt) && !now.After(w.closesAt)
}

func (w window) before(now time.Time) bool {
	return now.Before(w.opensAt)
}

func (w window) after(now time.Time) bool {
	return now.After(w.closesAt)
}
