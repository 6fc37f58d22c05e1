package commands

import (
	"context"
	"log/slog"
	"time"

	"fieldops/internal/core/ports"
)

// NoShowGracePeriod is how long after the start time an assigned technician
// may still arrive before the booking is treated as a no-show.
const NoShowGracePeriod = 30 * time.Minute

// RecoverNoShowsCommandHandler runs the no-show sweep.
// Selects Accepted bookings past the grace period, releases each back to
// Requested through a conditional update that also records the no-show marker,
// then re-broadcasts to matching and notifies the customer. The marker makes
// recovery once-only: a booking already recovered is never selected again
// until a new technician accepts it.
type RecoverNoShowsCommandHandler struct {
	bookingRepo ports.BookingRepository
	matching    ports.MatchingService
	notifier    ports.ReminderNotifier
	logger      *slog.Logger
}

// NewRecoverNoShowsCommandHandler creates a handler for no-show sweeps.
func NewRecoverNoShowsCommandHandler(
	bookingRepo ports.BookingRepository,
	matching ports.MatchingService,
	notifier ports.ReminderNotifier,
	logger *slog.Logger,
) RecoverNoShowsCommandHandler {
	return RecoverNoShowsCommandHandler{
		bookingRepo: bookingRepo,
		matching:    matching,
		notifier:    notifier,
		logger:      logger.With("component", "recover_no_shows"),
	}
}

// Handle processes one no-show sweep.
// Returns an error only when the candidate query fails. Per-booking failures
// are logged and the sweep continues. Once the conditional update has won, the
// booking is already released; a failed re-broadcast or customer notification
// does not undo that, the next accepting technician simply arrives via the
// regular matching flows.
func (h RecoverNoShowsCommandHandler) Handle(ctx context.Context, command RecoverNoShowsCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	now := time.Now()
	cutoff := now.Add(-NoShowGracePeriod)

	candidates, err := h.bookingRepo.GetNoShowCandidates(ctx, cutoff)
	if err != nil {
		return err
	}

	for _, candidate := range candidates {
		recovered, err := h.bookingRepo.RecoverIfNoShow(ctx, candidate.ID(), now)
		if err != nil {
			h.logger.ErrorContext(ctx, "Failed to recover no-show booking",
				"bookingId", candidate.ID(), "error", err)
			continue
		}
		if !recovered {
			// Already recovered elsewhere, or the technician arrived.
			continue
		}

		// Bring the in-memory aggregate in line with the store so the
		// customer notification sees the released state.
		if err := candidate.RecoverNoShow(now); err != nil {
			h.logger.ErrorContext(ctx, "Recovered booking rejected in-memory recovery",
				"bookingId", candidate.ID(), "error", err)
			continue
		}

		reached, err := h.matching.Broadcast(ctx, candidate.ID())
		if err != nil {
			h.logger.ErrorContext(ctx, "Failed to re-broadcast recovered booking",
				"bookingId", candidate.ID(), "error", err)
		} else {
			h.logger.InfoContext(ctx, "No-show booking recovered",
				"bookingId", candidate.ID(), "techniciansReached", reached)
		}

		h.notifier.NotifyCustomerRebroadcast(ctx, candidate)
	}

	return nil
}
