package jobs

import (
	"context"
	"log/slog"

	"fieldops/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// noShowSchedule fires at the top of every minute, so a no-show is recovered
// within a minute of crossing the grace period.
const noShowSchedule = "0 * * * * *"

// NoShowJob runs the no-show sweep that releases bookings whose technician
// never arrived.
type NoShowJob struct {
	handler commands.RecoverNoShowsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewNoShowJob creates the no-show recovery job.
func NewNoShowJob(handler commands.RecoverNoShowsCommandHandler, logger *slog.Logger) *NoShowJob {
	return &NoShowJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "no_show_job"),
	}
}

// Start begins the no-show job on its schedule.
func (j *NoShowJob) Start() error {
	_, err := j.cron.AddFunc(noShowSchedule, func() {
		ctx := context.Background()
		cmd := commands.NewRecoverNoShowsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "No-show sweep failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "No-show job started (running every minute)")
	return nil
}

// Stop stops the no-show job.
func (j *NoShowJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "No-show job stopped")
}
