// Package notifications fans composed reminder messages out across delivery
// channels. It sits between the command handlers and the gateway adapters:
// handlers decide WHO gets notified and when, this package decides over which
// channels and absorbs partial failures.
package notifications

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"fieldops/internal/core/domain/model/booking"
	"fieldops/internal/core/domain/services"
	"fieldops/internal/core/ports"
	"fieldops/internal/pkg/errs"
)

// deliveryTimeout bounds each notification fan-out so a slow gateway cannot
// stall a sweep past its next tick.
const deliveryTimeout = 5 * time.Second

// Events published on the real-time channel.
const (
	eventReminder    = "booking.reminder"
	eventRebroadcast = "booking.rebroadcast"
)

// Notifier implements ports.ReminderNotifier.
//
// Channel policy per reminder stage: push always, the real-time socket when an
// emitter is wired, and SMS only for the near-term stages and only when the
// technician has a phone number on file. A reminder counts as delivered when
// at least one channel accepted it.
type Notifier struct {
	directory ports.TechnicianDirectory
	gateway   ports.NotificationGateway
	sockets   ports.SocketEmitter
	composer  services.ReminderComposer
	logger    *slog.Logger
}

// NewNotifier creates a notifier. The socket emitter may be nil, in which case
// the real-time channel is skipped.
func NewNotifier(
	directory ports.TechnicianDirectory,
	gateway ports.NotificationGateway,
	sockets ports.SocketEmitter,
	composer services.ReminderComposer,
	logger *slog.Logger,
) *Notifier {
	return &Notifier{
		directory: directory,
		gateway:   gateway,
		sockets:   sockets,
		composer:  composer,
		logger:    logger.With("component", "reminder_notifier"),
	}
}

// NotifyTechnician composes and delivers the reminder for the given stage to
// the booking's assigned technician. Returns an error when the contact lookup
// or composition fails, or when every attempted channel fails.
func (n *Notifier) NotifyTechnician(
	ctx context.Context,
	aggregate *booking.Booking,
	kind booking.ReminderKind,
) error {
	technicianID := aggregate.Technician()
	if technicianID == nil {
		return errs.NewValueIsRequiredError("technician")
	}

	contact, err := n.directory.GetContact(ctx, *technicianID)
	if err != nil {
		return err
	}

	message, err := n.composer.Compose(aggregate, kind, contact.Name())
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, deliveryTimeout)
	defer cancel()

	var failures []error
	delivered := false

	if err := n.gateway.SendPush(ctx, contact.ID(), message); err != nil {
		n.logger.WarnContext(ctx, "Push delivery failed",
			"bookingId", aggregate.ID(), "reminder", kind.String(), "error", err)
		failures = append(failures, err)
	} else {
		delivered = true
	}

	if n.sockets != nil {
		channel := "technician:" + contact.ID().String()
		if err := n.sockets.Emit(ctx, channel, eventReminder, message); err != nil {
			n.logger.WarnContext(ctx, "Socket delivery failed",
				"bookingId", aggregate.ID(), "reminder", kind.String(), "error", err)
			failures = append(failures, err)
		} else {
			delivered = true
		}
	}

	if kind.RequiresSMS() && contact.HasPhone() {
		if err := n.gateway.SendSMS(ctx, contact.Phone(), message.Body); err != nil {
			n.logger.WarnContext(ctx, "SMS delivery failed",
				"bookingId", aggregate.ID(), "reminder", kind.String(), "error", err)
			failures = append(failures, err)
		} else {
			delivered = true
		}
	}

	if !delivered {
		return errors.Join(failures...)
	}

	return nil
}

// NotifyCustomerRebroadcast tells the customer their booking is being
// re-matched. Best effort on every channel; failures are logged and swallowed
// because the recovery itself has already been committed.
func (n *Notifier) NotifyCustomerRebroadcast(ctx context.Context, aggregate *booking.Booking) {
	message, err := n.composer.ComposeRebroadcast(aggregate)
	if err != nil {
		n.logger.ErrorContext(ctx, "Failed to compose rebroadcast notice",
			"bookingId", aggregate.ID(), "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, deliveryTimeout)
	defer cancel()

	if err := n.gateway.SendPush(ctx, aggregate.CustomerID(), message); err != nil {
		n.logger.WarnContext(ctx, "Customer push delivery failed",
			"bookingId", aggregate.ID(), "error", err)
	}

	if n.sockets != nil {
		channel := "customer:" + aggregate.CustomerID().String()
		if err := n.sockets.Emit(ctx, channel, eventRebroadcast, message); err != nil {
			n.logger.WarnContext(ctx, "Customer socket delivery failed",
				"bookingId", aggregate.ID(), "error", err)
		}
	}
}
