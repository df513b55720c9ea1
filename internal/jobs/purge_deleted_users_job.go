package jobs

import (
	"context"
	"log/slog"
	"time"

	"ordering/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PurgeHandler is satisfied by commands.PurgeDeletedUsersCommandHandler.
type PurgeHandler interface {
	Handle(ctx context.Context, cmd commands.PurgeDeletedUsersCommand) (commands.PurgeResult, error)
}

// PurgeDeletedUsersJob hard-deletes users that have been soft-deleted for longer
// than the retention period, together with their orders and items.
type PurgeDeletedUsersJob struct {
	handler   PurgeHandler
	cron      *cron.Cron
	schedule  string
	retention time.Duration
	now       func() time.Time
	logger    *slog.Logger
}

func NewPurgeDeletedUsersJob(
	handler PurgeHandler,
	schedule string,
	retention time.Duration,
	logger *slog.Logger,
) *PurgeDeletedUsersJob {
	return &PurgeDeletedUsersJob{
		handler:   handler,
		cron:      cron.New(),
		schedule:  schedule,
		retention: retention,
		now:       time.Now,
		logger:    logger.With("component", "purge_deleted_users_job"),
	}
}

// Start registers the schedule (standard cron or a descriptor such as "@every 1h").
func (j *PurgeDeletedUsersJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Purge job started",
		"schedule", j.schedule, "retention", j.retention.String())
	return nil
}

// Run performs a single purge pass. Failures are logged; the next tick retries.
func (j *PurgeDeletedUsersJob) Run(ctx context.Context) {
	cmd, err := commands.NewPurgeDeletedUsersCommand(j.now().Add(-j.retention))
	if err != nil {
		j.logger.ErrorContext(ctx, "Purge job could not build its command", "error", err)
		return
	}

	result, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Purge job failed", "error", err)
		return
	}

	if result.Users > 0 {
		j.logger.InfoContext(ctx, "Purged deleted users", "users", result.Users, "orders", result.Orders)
	}
}

// Stop halts the schedule and waits for a running pass to finish.
func (j *PurgeDeletedUsersJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Purge job stopped")
}
