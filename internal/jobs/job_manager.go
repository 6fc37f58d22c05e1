package jobs

import (
	"fmt"
	"log/slog"

	"fieldops/internal/core/application/usecases/commands"
	"fieldops/internal/core/domain/model/booking"
)

// startable is the lifecycle every scheduled job exposes.
type startable interface {
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background sweeps.
type JobManager struct {
	jobs []startable
}

// NewJobManager creates a job manager with the full sweep set: activation,
// the three reminder stages, and no-show recovery.
func NewJobManager(
	activateHandler commands.ActivateDueBookingsCommandHandler,
	remindHandler commands.SendRemindersCommandHandler,
	recoverHandler commands.RecoverNoShowsCommandHandler,
	logger *slog.Logger,
) *JobManager {
	jobs := []startable{
		NewActivationJob(activateHandler, logger),
	}
	for _, kind := range booking.ReminderKinds() {
		jobs = append(jobs, NewReminderJob(kind, remindHandler, logger))
	}
	jobs = append(jobs, NewNoShowJob(recoverHandler, logger))

	return &JobManager{jobs: jobs}
}

// StartAll starts all scheduled jobs.
// If any job fails to start, the already started jobs are stopped and the
// error is returned.
func (jm *JobManager) StartAll() error {
	for i, job := range jm.jobs {
		if err := job.Start(); err != nil {
			for _, started := range jm.jobs[:i] {
				started.Stop()
			}
			return fmt.Errorf("failed to start job %d: %w", i, err)
		}
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	for _, job := range jm.jobs {
		job.Stop()
	}
}
