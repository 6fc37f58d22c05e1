// Package ports defines the contracts between the lifecycle engine's core and
// its collaborators: the booking store, the matching service, the notification
// gateway, and the technician directory. These interfaces enable dependency
// inversion and testability; all adapters live under internal/adapters.
package ports

import (
	"context"
	"time"

	"fieldops/internal/core/domain/model/booking"
	"fieldops/internal/core/domain/model/kernel"
)

// BookingRepository defines the persistence contract for booking aggregates.
//
// It splits into two method families:
//
//   - Window queries used by the timed jobs to select candidate bookings.
//   - Conditional transitions, each of which re-verifies the expected prior
//     state inside the same atomic store update that applies the change. A
//     transition reports false (no match) when another scheduler instance, an
//     overlapping tick, or a collaborator already moved the booking on.
//     Callers treat that as "already handled", never as an error.
//
// There is deliberately no read-modify-write Update: every mutation the engine
// owns is expressed as a guarded single-statement update, which is what makes
// concurrent execution safe without locks.
type BookingRepository interface {
	// Add persists a new booking aggregate.
	Add(ctx context.Context, aggregate *booking.Booking) error

	// Get retrieves a booking by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error)

	// GetScheduledDueBy retrieves all Scheduled bookings whose start time is at
	// or before the deadline. There is no lower bound: a booking already past
	// due is still selected.
	GetScheduledDueBy(ctx context.Context, deadline time.Time) ([]*booking.Booking, error)

	// GetAcceptedAwaitingReminder retrieves Accepted bookings whose start time
	// falls within [from, to] (inclusive) and whose flag for the given reminder
	// stage is still unset.
	GetAcceptedAwaitingReminder(
		ctx context.Context,
		kind booking.ReminderKind,
		from, to time.Time,
	) ([]*booking.Booking, error)

	// GetNoShowCandidates retrieves Accepted bookings with a technician
	// assigned, no no-show marker, and a start time at or before the cutoff.
	GetNoShowCandidates(ctx context.Context, cutoff time.Time) ([]*booking.Booking, error)

	// ActivateIfScheduled transitions the booking to Requested only if it is
	// still Scheduled. Returns false when the guard did not match.
	ActivateIfScheduled(ctx context.Context, id kernel.UUID) (bool, error)

	// AcceptIfRequested assigns the technician and transitions the booking to
	// Accepted only if it is still Requested. The same statement records the
	// assignment time, clears any stale no-show marker, and resets all reminder
	// flags so the new assignment starts fresh. Returns false when the guard
	// did not match.
	AcceptIfRequested(
		ctx context.Context,
		id kernel.UUID,
		technicianID kernel.UUID,
		at time.Time,
	) (bool, error)

	// MarkReminderSent sets the flag for the given reminder stage. The update is
	// unconditional: the flag only gates future selection, not the delivery that
	// already happened.
	MarkReminderSent(ctx context.Context, id kernel.UUID, kind booking.ReminderKind) error

	// RecoverIfNoShow applies no-show recovery only if the booking is still
	// Accepted with no no-show marker: clears the technician and assignment
	// time, returns the status to Requested, stamps the no-show marker with at,
	// and resets all reminder flags, all in a single guarded statement. Returns
	// false when the guard did not match.
	RecoverIfNoShow(ctx context.Context, id kernel.UUID, at time.Time) (bool, error)
}
