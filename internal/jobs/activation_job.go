package jobs

import (
	"context"
	"log/slog"

	"fieldops/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// activationSchedule fires at the top of every minute. The activation horizon
// is fifteen minutes, so each booking gets several chances before its slot.
const activationSchedule = "0 * * * * *"

// ActivationJob runs the activation sweep that opens due Scheduled bookings
// for technician matching.
type ActivationJob struct {
	handler commands.ActivateDueBookingsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewActivationJob creates the activation job.
func NewActivationJob(handler commands.ActivateDueBookingsCommandHandler, logger *slog.Logger) *ActivationJob {
	return &ActivationJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "activation_job"),
	}
}

// Start begins the activation job on its schedule.
func (j *ActivationJob) Start() error {
	_, err := j.cron.AddFunc(activationSchedule, func() {
		ctx := context.Background()
		cmd := commands.NewActivateDueBookingsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Activation sweep failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Activation job started (running every minute)")
	return nil
}

// Stop stops the activation job.
func (j *ActivationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Activation job stopped")
}
