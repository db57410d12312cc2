package eligibility

import (
	"testing"
	"time"

	domain "github.com/giodelapiedra/aegira-backend-go/internal/domain/eligibility"
	"github.com/giodelapiedra/aegira-backend-go/internal/domain/exemption"
	"github.com/giodelapiedra/aegira-backend-go/internal/domain/schedule"
	"github.com/giodelapiedra/aegira-backend-go/internal/pkg/civiltime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func manilaResolver(t *testing.T) *civiltime.Resolver {
	t.Helper()
	r, err := civiltime.NewResolver("Asia/Manila")
	require.NoError(t, err)
	return r
}

func weekdayPattern() schedule.WorkPattern {
	return schedule.WorkPattern{
		WorkDays:           []schedule.DayCode{schedule.DayMonday, schedule.DayTuesday, schedule.DayWednesday, schedule.DayThursday, schedule.DayFriday},
		ShiftStart:         civiltime.Clock{Hour: 8},
		ShiftEnd:           civiltime.Clock{Hour: 17},
		GracePeriodMinutes: 30,
	}
}

func approved(start, end string) exemption.Interval {
	return interval(start, end, exemption.StatusApproved)
}

func interval(start, end string, status exemption.Status) exemption.Interval {
	s, err := civiltime.ParseDate(start)
	if err != nil {
		panic(err)
	}
	e, err := civiltime.ParseDate(end)
	if err != nil {
		panic(err)
	}
	return exemption.Interval{WorkerID: "w1", StartDate: s, EndDate: e, Status: status}
}

// manilaTime builds an instant from Manila wall-clock fields.
func manilaTime(t *testing.T, r *civiltime.Resolver, y int, m time.Month, d, hh, mm, ss int) time.Time {
	t.Helper()
	return time.Date(y, m, d, hh, mm, ss, 0, r.Location())
}

func TestEvaluateEligibleNow(t *testing.T) {
	r := manilaResolver(t)
	// Monday 2025-01-13 07:45, window opened at 07:30.
	now := manilaTime(t, r, 2025, time.January, 13, 7, 45, 0)

	result := Evaluate(now, weekdayPattern(), r, nil, false)

	assert.True(t, result.EligibleNow)
	assert.Equal(t, domain.ReasonEligibleNow, result.Reason)
	require.NotNil(t, result.NextEligibleAt)
	assert.True(t, result.NextEligibleAt.Equal(now))
	assert.Nil(t, result.ReturnDate)
}

func TestEvaluateBeforeWindowOpens(t *testing.T) {
	r := manilaResolver(t)
	// Monday 07:00: the 07:30 window has not opened yet.
	now := manilaTime(t, r, 2025, time.January, 13, 7, 0, 0)

	result := Evaluate(now, weekdayPattern(), r, nil, false)

	assert.False(t, result.EligibleNow)
	assert.Equal(t, domain.ReasonWindowNotOpen, result.Reason)
	require.NotNil(t, result.NextEligibleAt)
	assert.Equal(t, "2025-01-13 07:30", r.Civil(*result.NextEligibleAt).String())
}

func TestEvaluateGraceBoundaryInclusive(t *testing.T) {
	r := manilaResolver(t)
	pattern := weekdayPattern()

	atOpen := Evaluate(manilaTime(t, r, 2025, time.January, 13, 7, 30, 0), pattern, r, nil, false)
	assert.True(t, atOpen.EligibleNow, "exact window open must be eligible")

	justBefore := Evaluate(manilaTime(t, r, 2025, time.January, 13, 7, 29, 59), pattern, r, nil, false)
	assert.False(t, justBefore.EligibleNow, "one second before open must not be eligible")
	assert.Equal(t, domain.ReasonWindowNotOpen, justBefore.Reason)

	atEnd := Evaluate(manilaTime(t, r, 2025, time.January, 13, 17, 0, 0), pattern, r, nil, false)
	assert.True(t, atEnd.EligibleNow, "exact shift end must be eligible")

	pastEnd := Evaluate(manilaTime(t, r, 2025, time.January, 13, 17, 0, 1), pattern, r, nil, false)
	assert.False(t, pastEnd.EligibleNow)
	assert.Equal(t, domain.ReasonShiftEnded, pastEnd.Reason)
}

func TestEvaluateExemptionSuppression(t *testing.T) {
	r := manilaResolver(t)
	exemptions := []exemption.Interval{approved("2025-01-13", "2025-01-17")}
	// Wednesday 2025-01-15, mid-exemption.
	now := manilaTime(t, r, 2025, time.January, 15, 10, 0, 0)

	result := Evaluate(now, weekdayPattern(), r, exemptions, false)

	assert.False(t, result.EligibleNow)
	assert.Equal(t, domain.ReasonOnExemption, result.Reason)
	assert.Nil(t, result.NextEligibleAt)
	// 2025-01-18 and 19 are a weekend; the return date lands on Monday.
	require.NotNil(t, result.ReturnDate)
	assert.Equal(t, "2025-01-20", *result.ReturnDate)
}

func TestEvaluateAlreadyCheckedInSameDayExclusion(t *testing.T) {
	r := manilaResolver(t)
	// Monday 09:00, inside the window, but today's check-in exists.
	now := manilaTime(t, r, 2025, time.January, 13, 9, 0, 0)

	result := Evaluate(now, weekdayPattern(), r, nil, true)

	assert.False(t, result.EligibleNow)
	assert.Equal(t, domain.ReasonAlreadyCheckedIn, result.Reason)
	require.NotNil(t, result.NextEligibleAt)
	// Tuesday is also a work day; the candidate must be a different
	// calendar date even though Monday's weekday recurs in the horizon.
	next := r.Civil(*result.NextEligibleAt)
	assert.Equal(t, "2025-01-14 07:30", next.String())
}

func TestEvaluateAfterShiftEnd(t *testing.T) {
	r := manilaResolver(t)
	now := manilaTime(t, r, 2025, time.January, 13, 18, 0, 0)

	result := Evaluate(now, weekdayPattern(), r, nil, false)

	assert.Equal(t, domain.ReasonShiftEnded, result.Reason)
	require.NotNil(t, result.NextEligibleAt)
	assert.Equal(t, "2025-01-14 07:30", r.Civil(*result.NextEligibleAt).String())
}

func TestEvaluateWeekendRollsToMonday(t *testing.T) {
	r := manilaResolver(t)
	// Saturday 2025-01-11.
	now := manilaTime(t, r, 2025, time.January, 11, 10, 0, 0)

	result := Evaluate(now, weekdayPattern(), r, nil, false)

	assert.Equal(t, domain.ReasonNotWorkDay, result.Reason)
	require.NotNil(t, result.NextEligibleAt)
	assert.Equal(t, "2025-01-13 07:30", r.Civil(*result.NextEligibleAt).String())
}

func TestEvaluateSkipsSuppressedFutureDays(t *testing.T) {
	r := manilaResolver(t)
	// Saturday 2025-01-18; the whole following week is exempted but the
	// exemption has not started, so no return date applies yet.
	exemptions := []exemption.Interval{approved("2025-01-20", "2025-01-24")}
	now := manilaTime(t, r, 2025, time.January, 18, 10, 0, 0)

	result := Evaluate(now, weekdayPattern(), r, exemptions, false)

	assert.False(t, result.EligibleNow)
	assert.Nil(t, result.ReturnDate)
	require.NotNil(t, result.NextEligibleAt)
	assert.Equal(t, "2025-01-27 07:30", r.Civil(*result.NextEligibleAt).String())
}

func TestEvaluateIgnoresPendingAndRejected(t *testing.T) {
	r := manilaResolver(t)
	exemptions := []exemption.Interval{
		interval("2025-01-13", "2025-01-17", exemption.StatusPending),
		interval("2025-01-13", "2025-01-17", exemption.StatusRejected),
	}
	now := manilaTime(t, r, 2025, time.January, 13, 9, 0, 0)

	result := Evaluate(now, weekdayPattern(), r, exemptions, false)

	assert.True(t, result.EligibleNow)
}

func TestEvaluateHorizonExhaustion(t *testing.T) {
	r := manilaResolver(t)
	pattern := schedule.WorkPattern{
		ShiftStart:         civiltime.Clock{Hour: 8},
		ShiftEnd:           civiltime.Clock{Hour: 17},
		GracePeriodMinutes: 30,
	}
	now := manilaTime(t, r, 2025, time.January, 13, 9, 0, 0)

	result := Evaluate(now, pattern, r, nil, false)

	assert.False(t, result.EligibleNow)
	assert.Nil(t, result.NextEligibleAt)
	assert.Equal(t, domain.ReasonNoEligibleDay, result.Reason)
}

func TestEvaluateIdempotent(t *testing.T) {
	r := manilaResolver(t)
	exemptions := []exemption.Interval{approved("2025-01-15", "2025-01-15")}
	now := manilaTime(t, r, 2025, time.January, 13, 7, 0, 0)

	first := Evaluate(now, weekdayPattern(), r, exemptions, false)
	second := Evaluate(now, weekdayPattern(), r, exemptions, false)

	assert.Equal(t, first, second)
}

func TestEvaluateMonotonicHorizon(t *testing.T) {
	r := manilaResolver(t)
	pattern := weekdayPattern()

	nows := []time.Time{
		manilaTime(t, r, 2025, time.January, 13, 7, 0, 0),  // before window
		manilaTime(t, r, 2025, time.January, 13, 18, 0, 0), // after shift
		manilaTime(t, r, 2025, time.January, 11, 12, 0, 0), // weekend
		manilaTime(t, r, 2025, time.January, 13, 9, 0, 0),  // in window
	}
	for _, now := range nows {
		result := Evaluate(now, pattern, r, nil, false)
		if result.NextEligibleAt == nil {
			continue
		}
		if result.EligibleNow {
			assert.True(t, result.NextEligibleAt.Equal(now), "now=%v", now)
		} else {
			assert.True(t, result.NextEligibleAt.After(now), "now=%v next=%v", now, result.NextEligibleAt)
		}
	}
}
