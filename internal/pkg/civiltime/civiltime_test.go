package civiltime

import (
	"testing"
	"time"
)

func TestNewResolver(t *testing.T) {
	if _, err := NewResolver("Asia/Manila"); err != nil {
		t.Fatalf("NewResolver(Asia/Manila) = %v, want nil", err)
	}
	if _, err := NewResolver("Mars/Olympus"); err == nil {
		t.Fatal("NewResolver(Mars/Olympus) = nil, want error")
	}
}

func TestInstantRoundTrip(t *testing.T) {
	r, err := NewResolver("Asia/Manila")
	if err != nil {
		t.Fatal(err)
	}

	c := Civil{Year: 2025, Month: time.January, Day: 13, Hour: 8, Minute: 0}
	instant := r.Instant(c)

	// Manila is UTC+8 with no DST: 08:00 local is 00:00 UTC.
	if got := instant.UTC(); got.Hour() != 0 || got.Day() != 13 {
		t.Errorf("Instant(%v).UTC() = %v, want 2025-01-13 00:00 UTC", c, got)
	}
	if got := r.Civil(instant); got != c {
		t.Errorf("Civil(Instant(%v)) = %v, want %v", c, got, c)
	}
}

func TestInstantAcrossSpringForward(t *testing.T) {
	r, err := NewResolver("America/New_York")
	if err != nil {
		t.Fatal(err)
	}

	// 2025-03-09 02:30 never occurs in New York; the resolver must still
	// return a deterministic instant rather than fail.
	c := Civil{Year: 2025, Month: time.March, Day: 9, Hour: 2, Minute: 30}
	instant := r.Instant(c)
	if instant.IsZero() {
		t.Fatal("Instant inside DST gap returned zero time")
	}

	// 08:00 on either side of the transition must resolve with the
	// offset in force on that date.
	before := r.Instant(Civil{Year: 2025, Month: time.March, Day: 8, Hour: 8})
	after := r.Instant(Civil{Year: 2025, Month: time.March, Day: 10, Hour: 8})
	if before.UTC().Hour() != 13 {
		t.Errorf("pre-transition 08:00 = %v UTC, want 13:00 UTC (EST)", before.UTC())
	}
	if after.UTC().Hour() != 12 {
		t.Errorf("post-transition 08:00 = %v UTC, want 12:00 UTC (EDT)", after.UTC())
	}
}

func TestWeekdayIndependentOfHostZone(t *testing.T) {
	r, err := NewResolver("Asia/Manila")
	if err != nil {
		t.Fatal(err)
	}

	// 2025-01-12 23:00 UTC is already Monday 07:00 in Manila.
	instant := time.Date(2025, time.January, 12, 23, 0, 0, 0, time.UTC)
	if got := r.Weekday(instant); got != time.Monday {
		t.Errorf("Weekday = %v, want Monday", got)
	}
	if got := r.DateOf(instant).DateString(); got != "2025-01-13" {
		t.Errorf("DateOf = %s, want 2025-01-13", got)
	}
}

func TestAddDays(t *testing.T) {
	cases := []struct {
		date string
		days int
		want string
	}{
		{"2025-01-31", 1, "2025-02-01"},
		{"2025-12-31", 1, "2026-01-01"},
		{"2025-01-13", 14, "2025-01-27"},
		{"2024-02-28", 1, "2024-02-29"},
	}
	for _, c := range cases {
		date, err := ParseDate(c.date)
		if err != nil {
			t.Fatal(err)
		}
		if got := AddDays(date, c.days).DateString(); got != c.want {
			t.Errorf("AddDays(%s, %d) = %s, want %s", c.date, c.days, got, c.want)
		}
	}
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		input string
		want  Clock
		ok    bool
	}{
		{"08:00", Clock{8, 0}, true},
		{"17:30", Clock{17, 30}, true},
		{"00:00", Clock{0, 0}, true},
		{"24:00", Clock{}, false},
		{"8am", Clock{}, false},
		{"", Clock{}, false},
	}
	for _, c := range cases {
		got, err := ParseClock(c.input)
		if c.ok && (err != nil || got != c.want) {
			t.Errorf("ParseClock(%q) = %v, %v, want %v", c.input, got, err, c.want)
		}
		if !c.ok && err == nil {
			t.Errorf("ParseClock(%q) = %v, want error", c.input, got)
		}
	}
}

func TestClockSubMinutes(t *testing.T) {
	cases := []struct {
		clock Clock
		sub   int
		want  Clock
	}{
		{Clock{8, 0}, 30, Clock{7, 30}},
		{Clock{8, 0}, 0, Clock{8, 0}},
		{Clock{0, 10}, 30, Clock{0, 0}}, // clamped at midnight
		{Clock{9, 15}, 75, Clock{8, 0}},
	}
	for _, c := range cases {
		if got := c.clock.SubMinutes(c.sub); got != c.want {
			t.Errorf("%v.SubMinutes(%d) = %v, want %v", c.clock, c.sub, got, c.want)
		}
	}
}
