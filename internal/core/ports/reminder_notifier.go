package ports

import (
	"context"

	"fieldops/internal/core/domain/model/booking"
)

// ReminderNotifier fans a reminder out to the assigned technician across the
// channels the reminder stage calls for (push always, SMS for the near-term
// stages, socket when a real-time channel is wired).
type ReminderNotifier interface {
	// NotifyTechnician composes and delivers the reminder for the given stage
	// to the booking's technician. Partial channel failures are absorbed; an
	// error means no channel got through.
	NotifyTechnician(ctx context.Context, aggregate *booking.Booking, kind booking.ReminderKind) error

	// NotifyCustomerRebroadcast tells the customer their booking is being
	// re-matched after a no-show recovery. Best effort, never fails the caller.
	NotifyCustomerRebroadcast(ctx context.Context, aggregate *booking.Booking)
}
