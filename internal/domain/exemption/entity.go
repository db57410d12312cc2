package exemption

import (
	"time"

	"github.com/giodelapiedra/aegira-backend-go/internal/pkg/civiltime"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

var StatusValues = []string{
	string(StatusPending),
	string(StatusApproved),
	string(StatusRejected),
}

// Interval is an exemption (leave) request over an inclusive date range.
// Only APPROVED intervals with StartDate <= EndDate suppress check-in
// obligation; the lifecycle is owned by the approvals workflow and the
// engine only ever reads a snapshot.
type Interval struct {
	ID        string
	WorkerID  string
	CompanyID string
	StartDate civiltime.Civil
	EndDate   civiltime.Civil
	Reason    string
	Status    Status

	ApprovedBy      *string
	ApprovedAt      *time.Time
	RejectionReason *string
	EndedEarlyAt    *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Covers reports whether the interval suppresses a zone-local calendar
// date. Dates compare as "YYYY-MM-DD" strings, never as instants, so
// zone boundaries cannot shift the range by a day.
func (i Interval) Covers(date civiltime.Civil) bool {
	if i.Status != StatusApproved {
		return false
	}
	start, end := i.StartDate.DateString(), i.EndDate.DateString()
	if end < start {
		return false
	}
	d := date.DateString()
	return start <= d && d <= end
}
