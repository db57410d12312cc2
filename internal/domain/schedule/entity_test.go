package schedule

import (
	"testing"
	"time"

	"github.com/giodelapiedra/aegira-backend-go/internal/pkg/civiltime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weekdayPattern() WorkPattern {
	return WorkPattern{
		WorkDays:           []DayCode{DayMonday, DayTuesday, DayWednesday, DayThursday, DayFriday},
		ShiftStart:         civiltime.Clock{Hour: 8},
		ShiftEnd:           civiltime.Clock{Hour: 17},
		GracePeriodMinutes: DefaultGracePeriodMinutes,
	}
}

func TestIsWorkDayWeekdayConsistency(t *testing.T) {
	pattern := weekdayPattern()

	// 2025-01-13 is a Monday; walk one full week.
	want := []bool{true, true, true, true, true, false, false}
	date, err := civiltime.ParseDate("2025-01-13")
	require.NoError(t, err)

	for i, w := range want {
		d := civiltime.AddDays(date, i)
		assert.Equal(t, w, pattern.IsWorkDay(d), "date %s", d.DateString())
	}
}

func TestIsWorkDayEmptySet(t *testing.T) {
	pattern := WorkPattern{
		ShiftStart: civiltime.Clock{Hour: 8},
		ShiftEnd:   civiltime.Clock{Hour: 17},
	}
	date, err := civiltime.ParseDate("2025-01-13")
	require.NoError(t, err)

	for i := 0; i < 7; i++ {
		assert.False(t, pattern.IsWorkDay(civiltime.AddDays(date, i)))
	}
}

func TestShiftBoundsAndGraceStart(t *testing.T) {
	r, err := civiltime.NewResolver("Asia/Manila")
	require.NoError(t, err)

	pattern := weekdayPattern()
	date, err := civiltime.ParseDate("2025-01-13")
	require.NoError(t, err)

	start, end := pattern.ShiftBounds(date, r)
	assert.Equal(t, time.Date(2025, time.January, 13, 0, 0, 0, 0, time.UTC), start.UTC())
	assert.Equal(t, time.Date(2025, time.January, 13, 9, 0, 0, 0, time.UTC), end.UTC())

	grace := pattern.GraceStart(date, r)
	assert.Equal(t, "2025-01-13 07:30", r.Civil(grace).String())
}
