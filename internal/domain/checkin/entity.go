package checkin

import "time"

type Status string

const (
	StatusPresent Status = "present"
	StatusLate    Status = "late"
	StatusMissed  Status = "missed"
)

// CheckIn is one worker's check-in record for one zone-local work day.
// Date is the civil work day ("YYYY-MM-DD" in the organization zone);
// CheckedInAt is the absolute instant, stored in UTC.
type CheckIn struct {
	ID          string
	WorkerID    string
	CompanyID   string
	Date        string
	CheckedInAt *time.Time
	Status      Status
	LateMinutes int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
