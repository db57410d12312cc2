package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/giodelapiedra/aegira-backend-go/internal/domain/checkin"
	"github.com/giodelapiedra/aegira-backend-go/internal/domain/company"
	"github.com/giodelapiedra/aegira-backend-go/internal/domain/exemption"
	"github.com/giodelapiedra/aegira-backend-go/internal/domain/schedule"
	"github.com/giodelapiedra/aegira-backend-go/internal/domain/user"
	"github.com/giodelapiedra/aegira-backend-go/internal/pkg/civiltime"
	"github.com/google/uuid"
)

type CheckInJobs struct {
	checkinRepo   checkin.CheckInRepository
	companyRepo   company.CompanyRepository
	scheduleRepo  schedule.TeamScheduleRepository
	exemptionRepo exemption.ExemptionRepository
	userRepo      user.UserRepository
}

func NewCheckInJobs(
	checkinRepo checkin.CheckInRepository,
	companyRepo company.CompanyRepository,
	scheduleRepo schedule.TeamScheduleRepository,
	exemptionRepo exemption.ExemptionRepository,
	userRepo user.UserRepository,
) *CheckInJobs {
	return &CheckInJobs{
		checkinRepo:   checkinRepo,
		companyRepo:   companyRepo,
		scheduleRepo:  scheduleRepo,
		exemptionRepo: exemptionRepo,
		userRepo:      userRepo,
	}
}

func (j *CheckInJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("mark_missed_checkins", 1*time.Hour, j.MarkMissedCheckIns)
}

// MarkMissedCheckIns writes a "missed" record for every worker who had
// a scheduled work day yesterday, was not exempted, and never checked
// in. Runs hourly but only acts in the first hour after midnight UTC.
func (j *CheckInJobs) MarkMissedCheckIns(ctx context.Context) error {
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting mark missed check-ins job")

	companyIDs, err := j.companyRepo.ListIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list companies: %w", err)
	}

	totalMissed := 0

	for _, companyID := range companyIDs {
		timezone, err := j.companyRepo.GetTimezone(ctx, companyID)
		if err != nil {
			slog.Error("Cron: Failed to get company timezone", "company_id", companyID, "error", err)
			continue
		}
		resolver, err := civiltime.NewResolver(timezone)
		if err != nil {
			slog.Error("Cron: Company timezone is misconfigured", "company_id", companyID, "error", err)
			continue
		}

		workers, err := j.userRepo.ListActiveWorkers(ctx, companyID)
		if err != nil {
			slog.Error("Cron: Failed to list workers", "company_id", companyID, "error", err)
			continue
		}

		yesterday := civiltime.AddDays(resolver.DateOf(time.Now().UTC()), -1)

		for _, worker := range workers {
			teamSchedule, err := j.scheduleRepo.GetByWorker(ctx, worker.ID, companyID)
			if err != nil {
				continue
			}
			if !teamSchedule.Pattern().IsWorkDay(yesterday) {
				continue
			}

			exemptions, err := j.exemptionRepo.ListApprovedByWorker(ctx, worker.ID, companyID)
			if err != nil {
				continue
			}
			exempted := false
			for _, e := range exemptions {
				if e.Covers(yesterday) {
					exempted = true
					break
				}
			}
			if exempted {
				continue
			}

			hasCheckedIn, _ := j.checkinRepo.HasCheckedIn(ctx, worker.ID, yesterday.DateString(), companyID)
			if hasCheckedIn {
				continue
			}

			_, err = j.checkinRepo.Create(ctx, checkin.CheckIn{
				ID:        uuid.NewString(),
				WorkerID:  worker.ID,
				CompanyID: companyID,
				Date:      yesterday.DateString(),
				Status:    checkin.StatusMissed,
			})
			if err != nil {
				slog.Error("Cron: Failed to create missed record",
					"worker_id", worker.ID,
					"date", yesterday.DateString(),
					"error", err)
				continue
			}
			totalMissed++
		}
	}

	slog.Info("Cron: Marked missed check-ins", "count", totalMissed)
	return nil
}
