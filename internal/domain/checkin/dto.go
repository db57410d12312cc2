package checkin

// ========================================
// CHECK-IN DTOs
// ========================================

type CheckInResponse struct {
	ID          string  `json:"id"`
	WorkerID    string  `json:"worker_id"`
	Date        string  `json:"date"`
	CheckedInAt *string `json:"checked_in_at,omitempty"`
	Status      string  `json:"status"`
	LateMinutes int     `json:"late_minutes"`
}

type ListCheckInResponse struct {
	TotalCount int64             `json:"total_count"`
	CheckIns   []CheckInResponse `json:"check_ins"`
}
