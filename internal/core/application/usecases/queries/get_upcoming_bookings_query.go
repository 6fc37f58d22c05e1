// Package queries contains read-only operations against the booking store.
// Query handlers bypass the domain aggregates and read projection rows
// directly, keeping the read path free of aggregate construction costs.
package queries

import (
	"errors"
	"time"

	"fieldops/internal/core/domain/model/booking"
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/guard"
)

var ErrGetUpcomingBookingsQueryIsNotConstructed = errors.New(
	"GetUpcomingBookingsQuery must be created via NewGetUpcomingBookingsQuery constructor",
)

// GetUpcomingBookingsQuery retrieves active bookings due within the upcoming
// horizon, for the operations dashboard.
//
// Example:
//
//	query := NewGetUpcomingBookingsQuery()
//	handler := NewGetUpcomingBookingsQueryHandler(db)
//
//	bookings, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get upcoming bookings: %w", err)
//	}
//	fmt.Printf("%d bookings due in the next 24 hours\n", len(bookings))
type GetUpcomingBookingsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUpcomingBookingsQuery creates a query for bookings due within the
// upcoming horizon. This is a parameterless query.
func NewGetUpcomingBookingsQuery() GetUpcomingBookingsQuery {
	return GetUpcomingBookingsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUpcomingBookingsQueryIsNotConstructed if validation fails.
func (q GetUpcomingBookingsQuery) Validate() error {
	return q.guard.Validate(ErrGetUpcomingBookingsQueryIsNotConstructed)
}

// GetUpcomingBookingsQueryResponse is one row of the upcoming-bookings read
// model. TechnicianID is nil while the booking is unassigned.
type GetUpcomingBookingsQueryResponse struct {
	ID           kernel.UUID
	TechnicianID *kernel.UUID
	Location     kernel.Location
	ScheduledAt  time.Time
	Status       booking.Status
}
