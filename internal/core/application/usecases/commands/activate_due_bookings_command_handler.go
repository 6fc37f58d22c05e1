package commands

import (
	"context"
	"log/slog"
	"time"

	"fieldops/internal/core/ports"
)

// ActivationHorizon is how far ahead of the start time a booking becomes
// eligible for activation. Wider than the sweep interval so a missed tick
// never strands a booking in Scheduled.
const ActivationHorizon = 15 * time.Minute

// ActivateDueBookingsCommandHandler runs the activation sweep.
// Selects Scheduled bookings due within the horizon, flips each to Requested
// through a conditional update, and broadcasts the winners to the matching
// system. A booking that some other sweep already activated is skipped
// silently; it gets no second broadcast.
type ActivateDueBookingsCommandHandler struct {
	bookingRepo ports.BookingRepository
	matching    ports.MatchingService
	logger      *slog.Logger
}

// NewActivateDueBookingsCommandHandler creates a handler for activation sweeps.
func NewActivateDueBookingsCommandHandler(
	bookingRepo ports.BookingRepository,
	matching ports.MatchingService,
	logger *slog.Logger,
) ActivateDueBookingsCommandHandler {
	return ActivateDueBookingsCommandHandler{
		bookingRepo: bookingRepo,
		matching:    matching,
		logger:      logger.With("component", "activate_due_bookings"),
	}
}

// Handle processes one activation sweep.
// Returns an error only when the candidate query fails; per-booking failures
// are logged and the sweep continues with the next booking. A failed broadcast
// leaves the booking in Requested, where manual or technician-initiated flows
// can still pick it up.
func (h ActivateDueBookingsCommandHandler) Handle(ctx context.Context, command ActivateDueBookingsCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	deadline := time.Now().Add(ActivationHorizon)

	candidates, err := h.bookingRepo.GetScheduledDueBy(ctx, deadline)
	if err != nil {
		return err
	}

	for _, candidate := range candidates {
		activated, err := h.bookingRepo.ActivateIfScheduled(ctx, candidate.ID())
		if err != nil {
			h.logger.ErrorContext(ctx, "Failed to activate booking",
				"bookingId", candidate.ID(), "error", err)
			continue
		}
		if !activated {
			// Another sweep or instance got there first.
			continue
		}

		reached, err := h.matching.Broadcast(ctx, candidate.ID())
		if err != nil {
			h.logger.ErrorContext(ctx, "Failed to broadcast activated booking",
				"bookingId", candidate.ID(), "error", err)
			continue
		}

		h.logger.InfoContext(ctx, "Booking activated",
			"bookingId", candidate.ID(), "techniciansReached", reached)
	}

	return nil
}
