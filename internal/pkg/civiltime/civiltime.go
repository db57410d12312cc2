package civiltime

import (
	"fmt"
	"log/slog"
	"time"
)

// Civil is a wall-clock date and time as humans read it in some zone.
// It carries no offset and must never be confused with an absolute
// instant; Resolver converts between the two.
type Civil struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
}

// DateString returns the calendar date in "YYYY-MM-DD" form.
func (c Civil) DateString() string {
	return fmt.Sprintf("%04d-%02d-%02d", c.Year, c.Month, c.Day)
}

func (c Civil) String() string {
	return fmt.Sprintf("%s %02d:%02d", c.DateString(), c.Hour, c.Minute)
}

// Resolver converts civil times to instants and back for one IANA zone.
// Invalid zone identifiers are rejected once, when the resolver is built,
// so evaluations never have to re-validate configuration.
type Resolver struct {
	loc *time.Location
}

// NewResolver loads the zone rules for an IANA identifier such as
// "Asia/Manila". A failure here is a configuration error.
func NewResolver(zone string) (*Resolver, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", zone, err)
	}
	return &Resolver{loc: loc}, nil
}

// Location exposes the underlying zone rules.
func (r *Resolver) Location() *time.Location {
	return r.loc
}

// Instant resolves a civil time to the absolute instant it names in the
// resolver's zone. time.Date applies the zone's offset rules directly,
// including daylight-saving transitions.
//
// A civil time inside a spring-forward gap never occurs; time.Date
// normalizes it to a real instant after the gap. That is logged as a
// warning and the normalized instant is returned, a degraded but
// deterministic answer. A civil time inside a fall-back overlap occurs
// twice; time.Date picks one of the two offsets and that tie-break is
// accepted as-is.
func (r *Resolver) Instant(c Civil) time.Time {
	t := time.Date(c.Year, c.Month, c.Day, c.Hour, c.Minute, 0, 0, r.loc)
	if got := r.Civil(t); got != c {
		slog.Warn("civil time does not exist in zone, using normalized instant",
			"civil", c.String(),
			"zone", r.loc.String(),
			"normalized", got.String(),
		)
	}
	return t
}

// InstantAt resolves a wall-clock time on a given calendar date.
func (r *Resolver) InstantAt(date Civil, clock Clock) time.Time {
	return r.Instant(Civil{
		Year:   date.Year,
		Month:  date.Month,
		Day:    date.Day,
		Hour:   clock.Hour,
		Minute: clock.Minute,
	})
}

// Civil formats an instant as the civil date and time in the resolver's
// zone, truncated to minute precision.
func (r *Resolver) Civil(t time.Time) Civil {
	local := t.In(r.loc)
	return Civil{
		Year:   local.Year(),
		Month:  local.Month(),
		Day:    local.Day(),
		Hour:   local.Hour(),
		Minute: local.Minute(),
	}
}

// Weekday returns the instant's day of week in the resolver's zone.
// Near midnight the same instant can fall on different weekdays in
// different zones, so callers must not use the host's local weekday.
func (r *Resolver) Weekday(t time.Time) time.Weekday {
	return t.In(r.loc).Weekday()
}

// DateOf returns the civil calendar date of an instant with the clock
// fields zeroed.
func (r *Resolver) DateOf(t time.Time) Civil {
	c := r.Civil(t)
	c.Hour = 0
	c.Minute = 0
	return c
}

// AddDays shifts a calendar date by a number of days in pure calendar
// arithmetic, independent of zone offsets.
func AddDays(date Civil, days int) Civil {
	t := time.Date(date.Year, date.Month, date.Day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, days)
	return Civil{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// WeekdayOf returns the day of week of a calendar date.
func WeekdayOf(date Civil) time.Weekday {
	return time.Date(date.Year, date.Month, date.Day, 0, 0, 0, 0, time.UTC).Weekday()
}

// ParseDate parses a "YYYY-MM-DD" calendar date.
func ParseDate(s string) (Civil, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Civil{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Civil{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}
