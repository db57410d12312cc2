package schedule

import (
	"time"

	"github.com/giodelapiedra/aegira-backend-go/internal/pkg/civiltime"
)

// DayCode identifies a day of the week in team configuration.
type DayCode string

const (
	DayMonday    DayCode = "MON"
	DayTuesday   DayCode = "TUE"
	DayWednesday DayCode = "WED"
	DayThursday  DayCode = "THU"
	DayFriday    DayCode = "FRI"
	DaySaturday  DayCode = "SAT"
	DaySunday    DayCode = "SUN"
)

var DayCodeValues = []string{
	string(DayMonday),
	string(DayTuesday),
	string(DayWednesday),
	string(DayThursday),
	string(DayFriday),
	string(DaySaturday),
	string(DaySunday),
}

var dayCodeWeekdays = map[DayCode]time.Weekday{
	DayMonday:    time.Monday,
	DayTuesday:   time.Tuesday,
	DayWednesday: time.Wednesday,
	DayThursday:  time.Thursday,
	DayFriday:    time.Friday,
	DaySaturday:  time.Saturday,
	DaySunday:    time.Sunday,
}

// Weekday maps the code to the standard library weekday.
func (d DayCode) Weekday() (time.Weekday, bool) {
	wd, ok := dayCodeWeekdays[d]
	return wd, ok
}

// DefaultGracePeriodMinutes opens the check-in window this many minutes
// before shift start when a team does not configure its own value.
const DefaultGracePeriodMinutes = 30

// WorkPattern is a team's weekly rhythm: which days are worked and the
// shift bounds on those days. An empty work-day set is legal and means
// the team is never scheduled.
type WorkPattern struct {
	WorkDays           []DayCode
	ShiftStart         civiltime.Clock
	ShiftEnd           civiltime.Clock
	GracePeriodMinutes int
}

// IsWorkDay reports whether a zone-local calendar date is scheduled.
// The date must already be localized to the organization zone; the same
// instant near midnight falls on different weekdays in different zones.
func (p WorkPattern) IsWorkDay(date civiltime.Civil) bool {
	wd := civiltime.WeekdayOf(date)
	for _, code := range p.WorkDays {
		if codeWd, ok := code.Weekday(); ok && codeWd == wd {
			return true
		}
	}
	return false
}

// ShiftBounds resolves the shift start and end instants on a date.
func (p WorkPattern) ShiftBounds(date civiltime.Civil, r *civiltime.Resolver) (time.Time, time.Time) {
	return r.InstantAt(date, p.ShiftStart), r.InstantAt(date, p.ShiftEnd)
}

// GraceStart resolves the instant the check-in window opens on a date:
// shift start minus the grace period, subtracted on the wall clock
// before resolving so the offset survives DST transitions.
func (p WorkPattern) GraceStart(date civiltime.Civil, r *civiltime.Resolver) time.Time {
	return r.InstantAt(date, p.ShiftStart.SubMinutes(p.GracePeriodMinutes))
}

// TeamSchedule is the persisted schedule configuration of one team.
type TeamSchedule struct {
	ID                 string
	CompanyID          string
	TeamName           string
	WorkDays           []DayCode
	ShiftStart         civiltime.Clock
	ShiftEnd           civiltime.Clock
	GracePeriodMinutes int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Pattern returns the schedule's work pattern for evaluation.
func (s TeamSchedule) Pattern() WorkPattern {
	return WorkPattern{
		WorkDays:           s.WorkDays,
		ShiftStart:         s.ShiftStart,
		ShiftEnd:           s.ShiftEnd,
		GracePeriodMinutes: s.GracePeriodMinutes,
	}
}
