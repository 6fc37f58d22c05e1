package jobs

import (
	"context"
	"log/slog"

	"fieldops/internal/core/application/usecases/commands"
	"fieldops/internal/core/domain/model/booking"

	"github.com/robfig/cron/v3"
)

// Per-stage schedules. Each stage's selection window is wide enough that the
// coarser cadences still cannot let a booking slip through unseen.
var reminderSchedules = map[booking.ReminderKind]string{
	booking.Reminder24Hour:   "0 */15 * * * *",
	booking.Reminder1Hour:    "0 */5 * * * *",
	booking.Reminder15Minute: "0 * * * * *",
}

// ReminderJob runs the reminder sweep for a single stage. The three stages run
// as three instances of this job, each on its own cadence.
type ReminderJob struct {
	kind    booking.ReminderKind
	handler commands.SendRemindersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewReminderJob creates the reminder job for the given stage.
func NewReminderJob(
	kind booking.ReminderKind,
	handler commands.SendRemindersCommandHandler,
	logger *slog.Logger,
) *ReminderJob {
	return &ReminderJob{
		kind:    kind,
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "reminder_job", "reminder", kind.String()),
	}
}

// Start begins the reminder job on its stage's schedule.
func (j *ReminderJob) Start() error {
	schedule, ok := reminderSchedules[j.kind]
	if !ok {
		return j.kind.Validate()
	}

	_, err := j.cron.AddFunc(schedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewSendRemindersCommand(j.kind)
		if err != nil {
			j.logger.ErrorContext(ctx, "Failed to build reminder command", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Reminder sweep failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Reminder job started", "schedule", schedule)
	return nil
}

// Stop stops the reminder job.
func (j *ReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Reminder job stopped")
}
