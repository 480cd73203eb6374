package jobs

import (
	"fmt"
	"log/slog"

	"orderflow/internal/core/application/usecases/queries"
)

// Schedules holds six-field cron expressions for each job.
type Schedules struct {
	NoticeSweep   string
	StatusSummary string
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	noticeSweepJob   *NoticeSweepJob
	statusSummaryJob *StatusSummaryJob
}

func NewJobManager(
	board NoticeSweeper,
	summaryHandler queries.GetSystemStatusQueryHandler,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		noticeSweepJob:   NewNoticeSweepJob(board, schedules.NoticeSweep, logger),
		statusSummaryJob: NewStatusSummaryJob(summaryHandler, schedules.StatusSummary, logger),
	}
}

// StartAll starts every job, stopping the ones already running if one fails.
func (jm *JobManager) StartAll() error {
	if err := jm.noticeSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start notice sweep job: %w", err)
	}

	if err := jm.statusSummaryJob.Start(); err != nil {
		jm.noticeSweepJob.Stop()
		return fmt.Errorf("failed to start status summary job: %w", err)
	}

	return nil
}

// StopAll waits for running invocations to finish.
func (jm *JobManager) StopAll() {
	jm.statusSummaryJob.Stop()
	jm.noticeSweepJob.Stop()
}
