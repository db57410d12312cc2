package eligibility

import (
	"context"
	"time"
)

type EligibilityService interface {
	// EvaluateMine computes the calling worker's eligibility as of now.
	EvaluateMine(ctx context.Context) (EligibilityResponse, error)
	// EvaluateWorkerAt computes eligibility for one worker at an
	// injected instant; cron jobs use it for catch-up evaluation.
	EvaluateWorkerAt(ctx context.Context, workerID string, companyID string, now time.Time) (Result, error)
}
