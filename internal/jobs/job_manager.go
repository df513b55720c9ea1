package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	purgeJob *PurgeDeletedUsersJob
}

// NewJobManager wires the purge job to its command handler and schedule.
func NewJobManager(
	purgeHandler PurgeHandler,
	purgeSchedule string,
	purgeRetention time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		purgeJob: NewPurgeDeletedUsersJob(purgeHandler, purgeSchedule, purgeRetention, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.purgeJob.Start(); err != nil {
		return fmt.Errorf("failed to start purge job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs, waiting for running passes.
func (jm *JobManager) StopAll() {
	jm.purgeJob.Stop()
}
