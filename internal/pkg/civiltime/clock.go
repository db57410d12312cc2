package civiltime

import (
	"fmt"
	"time"
)

// Clock is a 24-hour wall-clock time of day ("HH:MM"). Shift bounds and
// grace offsets are Clock values: arithmetic on them stays in wall-clock
// space and is only resolved to an instant at the last moment, because a
// fixed UTC offset is wrong across daylight-saving transitions.
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock parses a "HH:MM" string.
func ParseClock(s string) (Clock, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return Clock{}, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	return Clock{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Minutes returns the clock as minutes since midnight.
func (c Clock) Minutes() int {
	return c.Hour*60 + c.Minute
}

// Before reports whether c reads earlier on the wall than u.
func (c Clock) Before(u Clock) bool {
	return c.Minutes() < u.Minutes()
}

// SubMinutes moves the clock back by n minutes within the same day,
// clamping at midnight. Grace periods never reach into the previous
// calendar day.
func (c Clock) SubMinutes(n int) Clock {
	m := c.Minutes() - n
	if m < 0 {
		m = 0
	}
	return Clock{Hour: m / 60, Minute: m % 60}
}
