package exemption

import (
	"context"
	"testing"

	"github.com/giodelapiedra/aegira-backend-go/internal/domain/exemption"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExemptionRepo struct {
	intervals map[string]exemption.Interval
}

func newFakeExemptionRepo() *fakeExemptionRepo {
	return &fakeExemptionRepo{intervals: map[string]exemption.Interval{}}
}

func (f *fakeExemptionRepo) Create(_ context.Context, i exemption.Interval) (exemption.Interval, error) {
	f.intervals[i.ID] = i
	return i, nil
}

func (f *fakeExemptionRepo) GetByID(_ context.Context, id string, companyID string) (exemption.Interval, error) {
	i, ok := f.intervals[id]
	if !ok || i.CompanyID != companyID {
		return exemption.Interval{}, pgx.ErrNoRows
	}
	return i, nil
}

func (f *fakeExemptionRepo) ListByWorker(_ context.Context, workerID string, companyID string) ([]exemption.Interval, error) {
	var out []exemption.Interval
	for _, i := range f.intervals {
		if i.WorkerID == workerID && i.CompanyID == companyID {
			out = append(out, i)
		}
	}
	return out, nil
}

func (f *fakeExemptionRepo) ListApprovedByWorker(ctx context.Context, workerID string, companyID string) ([]exemption.Interval, error) {
	all, _ := f.ListByWorker(ctx, workerID, companyID)
	var out []exemption.Interval
	for _, i := range all {
		if i.Status == exemption.StatusApproved {
			out = append(out, i)
		}
	}
	return out, nil
}

func (f *fakeExemptionRepo) Update(_ context.Context, i exemption.Interval) error {
	if _, ok := f.intervals[i.ID]; !ok {
		return exemption.ErrExemptionNotFound
	}
	f.intervals[i.ID] = i
	return nil
}

func claimsContext(t *testing.T, userID, workerID, companyID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret-key"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id":    userID,
		"worker_id":  workerID,
		"company_id": companyID,
		"type":       "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestCreateExemptionStartsPending(t *testing.T) {
	repo := newFakeExemptionRepo()
	svc := NewExemptionService(repo)
	ctx := claimsContext(t, "admin-1", "worker-1", "company-1")

	resp, err := svc.CreateExemption(ctx, exemption.CreateExemptionRequest{
		StartDate: "2025-02-03",
		EndDate:   "2025-02-07",
		Reason:    "medical leave",
	})
	require.NoError(t, err)

	assert.Equal(t, string(exemption.StatusPending), resp.Status)
	assert.Equal(t, "worker-1", resp.WorkerID)
	assert.Equal(t, "2025-02-03", resp.StartDate)
	assert.Equal(t, "2025-02-07", resp.EndDate)
}

func TestCreateExemptionRejectsInvertedRange(t *testing.T) {
	repo := newFakeExemptionRepo()
	svc := NewExemptionService(repo)
	ctx := claimsContext(t, "admin-1", "worker-1", "company-1")

	_, err := svc.CreateExemption(ctx, exemption.CreateExemptionRequest{
		StartDate: "2025-02-07",
		EndDate:   "2025-02-03",
		Reason:    "medical leave",
	})
	require.Error(t, err)
	assert.Empty(t, repo.intervals)
}

func TestApproveThenApproveAgainFails(t *testing.T) {
	repo := newFakeExemptionRepo()
	svc := NewExemptionService(repo)
	ctx := claimsContext(t, "admin-1", "worker-1", "company-1")

	created, err := svc.CreateExemption(ctx, exemption.CreateExemptionRequest{
		StartDate: "2025-02-03",
		EndDate:   "2025-02-07",
		Reason:    "medical leave",
	})
	require.NoError(t, err)

	approved, err := svc.ApproveExemption(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(exemption.StatusApproved), approved.Status)
	require.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, "admin-1", *approved.ApprovedBy)

	_, err = svc.ApproveExemption(ctx, created.ID)
	assert.ErrorIs(t, err, exemption.ErrExemptionAlreadyProcessed)
}

func TestRejectRequiresReasonAndPendingStatus(t *testing.T) {
	repo := newFakeExemptionRepo()
	svc := NewExemptionService(repo)
	ctx := claimsContext(t, "admin-1", "worker-1", "company-1")

	created, err := svc.CreateExemption(ctx, exemption.CreateExemptionRequest{
		StartDate: "2025-02-03",
		EndDate:   "2025-02-07",
		Reason:    "medical leave",
	})
	require.NoError(t, err)

	_, err = svc.RejectExemption(ctx, exemption.RejectExemptionRequest{ID: created.ID})
	require.Error(t, err, "missing rejection reason must fail validation")

	rejected, err := svc.RejectExemption(ctx, exemption.RejectExemptionRequest{
		ID:     created.ID,
		Reason: "overlaps the release window",
	})
	require.NoError(t, err)
	assert.Equal(t, string(exemption.StatusRejected), rejected.Status)

	_, err = svc.ApproveExemption(ctx, created.ID)
	assert.ErrorIs(t, err, exemption.ErrExemptionAlreadyProcessed)
}

func TestEndEarlyOnlyShortensApprovedIntervals(t *testing.T) {
	repo := newFakeExemptionRepo()
	svc := NewExemptionService(repo)
	ctx := claimsContext(t, "admin-1", "worker-1", "company-1")

	created, err := svc.CreateExemption(ctx, exemption.CreateExemptionRequest{
		StartDate: "2025-02-03",
		EndDate:   "2025-02-14",
		Reason:    "medical leave",
	})
	require.NoError(t, err)

	// Pending intervals cannot be ended early.
	_, err = svc.EndExemptionEarly(ctx, exemption.EndEarlyRequest{ID: created.ID, EndDate: "2025-02-05"})
	assert.ErrorIs(t, err, exemption.ErrExemptionNotApproved)

	_, err = svc.ApproveExemption(ctx, created.ID)
	require.NoError(t, err)

	// The new end must not precede the start.
	_, err = svc.EndExemptionEarly(ctx, exemption.EndEarlyRequest{ID: created.ID, EndDate: "2025-02-01"})
	assert.ErrorIs(t, err, exemption.ErrEndDateBeforeStart)

	// The new end must actually shorten the interval.
	_, err = svc.EndExemptionEarly(ctx, exemption.EndEarlyRequest{ID: created.ID, EndDate: "2025-02-14"})
	require.Error(t, err)

	shortened, err := svc.EndExemptionEarly(ctx, exemption.EndEarlyRequest{ID: created.ID, EndDate: "2025-02-05"})
	require.NoError(t, err)
	assert.Equal(t, "2025-02-05", shortened.EndDate)
	assert.Equal(t, string(exemption.StatusApproved), shortened.Status)
}

func TestEndEarlyUnknownIntervalReturnsNotFound(t *testing.T) {
	repo := newFakeExemptionRepo()
	svc := NewExemptionService(repo)
	ctx := claimsContext(t, "admin-1", "worker-1", "company-1")

	_, err := svc.EndExemptionEarly(ctx, exemption.EndEarlyRequest{ID: "missing", EndDate: "2025-02-05"})
	assert.ErrorIs(t, err, exemption.ErrExemptionNotFound)
}

func TestListMyExemptionsScopedToWorker(t *testing.T) {
	repo := newFakeExemptionRepo()
	svc := NewExemptionService(repo)

	ctxA := claimsContext(t, "user-a", "worker-a", "company-1")
	ctxB := claimsContext(t, "user-b", "worker-b", "company-1")

	_, err := svc.CreateExemption(ctxA, exemption.CreateExemptionRequest{
		StartDate: "2025-02-03",
		EndDate:   "2025-02-07",
		Reason:    "medical leave",
	})
	require.NoError(t, err)

	mine, err := svc.ListMyExemptions(ctxA)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	others, err := svc.ListMyExemptions(ctxB)
	require.NoError(t, err)
	assert.Empty(t, others)
}
