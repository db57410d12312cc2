package eligibility

import (
	"testing"

	"github.com/giodelapiedra/aegira-backend-go/internal/domain/exemption"
	"github.com/giodelapiedra/aegira-backend-go/internal/pkg/civiltime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) civiltime.Civil {
	t.Helper()
	d, err := civiltime.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestIsSuppressedInclusiveBounds(t *testing.T) {
	exemptions := []exemption.Interval{approved("2025-01-13", "2025-01-17")}

	assert.False(t, isSuppressed(date(t, "2025-01-12"), exemptions))
	assert.True(t, isSuppressed(date(t, "2025-01-13"), exemptions))
	assert.True(t, isSuppressed(date(t, "2025-01-17"), exemptions))
	assert.False(t, isSuppressed(date(t, "2025-01-18"), exemptions))
}

func TestIsSuppressedSingleDay(t *testing.T) {
	exemptions := []exemption.Interval{approved("2025-01-15", "2025-01-15")}

	assert.True(t, isSuppressed(date(t, "2025-01-15"), exemptions))
	assert.False(t, isSuppressed(date(t, "2025-01-14"), exemptions))
	assert.False(t, isSuppressed(date(t, "2025-01-16"), exemptions))
}

func TestIsSuppressedInvertedRange(t *testing.T) {
	// startDate > endDate never suppresses, approved or not.
	exemptions := []exemption.Interval{approved("2025-01-17", "2025-01-13")}

	for d := date(t, "2025-01-12"); d.DateString() <= "2025-01-18"; d = civiltime.AddDays(d, 1) {
		assert.False(t, isSuppressed(d, exemptions), "date %s", d.DateString())
	}
}

func TestEarliestReturnDateSkipsWeekend(t *testing.T) {
	exemptions := []exemption.Interval{approved("2025-01-13", "2025-01-17")}

	ret := earliestReturnDate(date(t, "2025-01-15"), exemptions, weekdayPattern())

	require.NotNil(t, ret)
	assert.Equal(t, "2025-01-20", ret.DateString())
}

func TestEarliestReturnDatePicksEarliestEnd(t *testing.T) {
	exemptions := []exemption.Interval{
		approved("2025-01-13", "2025-01-22"),
		approved("2025-01-14", "2025-01-16"),
	}

	// Both cover Wednesday the 15th; the one ending on the 16th wins
	// and Friday the 17th is the first work day after it.
	ret := earliestReturnDate(date(t, "2025-01-15"), exemptions, weekdayPattern())

	require.NotNil(t, ret)
	assert.Equal(t, "2025-01-17", ret.DateString())
}

func TestEarliestReturnDateIgnoresFutureIntervals(t *testing.T) {
	exemptions := []exemption.Interval{approved("2025-01-20", "2025-01-24")}

	ret := earliestReturnDate(date(t, "2025-01-15"), exemptions, weekdayPattern())

	assert.Nil(t, ret)
}

func TestEarliestReturnDateNoWorkDayWithinBound(t *testing.T) {
	exemptions := []exemption.Interval{approved("2025-01-13", "2025-01-17")}
	neverWorks := weekdayPattern()
	neverWorks.WorkDays = nil

	ret := earliestReturnDate(date(t, "2025-01-15"), exemptions, neverWorks)

	assert.Nil(t, ret)
}
