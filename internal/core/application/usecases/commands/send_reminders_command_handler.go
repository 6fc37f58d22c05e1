package commands

import (
	"context"
	"log/slog"
	"time"

	"fieldops/internal/core/ports"
)

// SendRemindersCommandHandler runs one reminder sweep for a stage.
// Selects Accepted bookings whose start time falls inside the stage's window
// and whose flag is still unset, attempts delivery, and then sets the flag.
//
// The flag is set after the delivery attempt regardless of its outcome.
// Reminders are at-most-once per stage: a delivery failure is logged and the
// booking is never retried for that stage, because a duplicate reminder is
// worse for the customer relationship than a missing one.
type SendRemindersCommandHandler struct {
	bookingRepo ports.BookingRepository
	notifier    ports.ReminderNotifier
	logger      *slog.Logger
}

// NewSendRemindersCommandHandler creates a handler for reminder sweeps.
func NewSendRemindersCommandHandler(
	bookingRepo ports.BookingRepository,
	notifier ports.ReminderNotifier,
	logger *slog.Logger,
) SendRemindersCommandHandler {
	return SendRemindersCommandHandler{
		bookingRepo: bookingRepo,
		notifier:    notifier,
		logger:      logger.With("component", "send_reminders"),
	}
}

// Handle processes one reminder sweep for the command's stage.
// Returns an error only when the window query fails; per-booking failures are
// logged and the sweep continues. Failing to set the flag is the one case that
// can produce a duplicate on a later sweep, so it is logged at error level.
func (h SendRemindersCommandHandler) Handle(ctx context.Context, command SendRemindersCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	kind := command.Kind()
	from, to := kind.Window(time.Now())

	candidates, err := h.bookingRepo.GetAcceptedAwaitingReminder(ctx, kind, from, to)
	if err != nil {
		return err
	}

	for _, candidate := range candidates {
		if err := h.notifier.NotifyTechnician(ctx, candidate, kind); err != nil {
			h.logger.ErrorContext(ctx, "Failed to deliver reminder",
				"bookingId", candidate.ID(), "reminder", kind.String(), "error", err)
		}

		// Flag the attempt even when delivery failed.
		if err := h.bookingRepo.MarkReminderSent(ctx, candidate.ID(), kind); err != nil {
			h.logger.ErrorContext(ctx, "Failed to mark reminder as sent",
				"bookingId", candidate.ID(), "reminder", kind.String(), "error", err)
			continue
		}

		h.logger.InfoContext(ctx, "Reminder processed",
			"bookingId", candidate.ID(), "reminder", kind.String())
	}

	return nil
}
