package ports

import (
	"context"

	"fieldops/internal/core/domain/model/kernel"
)

// MatchingService is the outbound contract to the technician matching system.
type MatchingService interface {
	// Broadcast asks the matching system to offer the booking to nearby
	// technicians. It returns the number of technicians the request reached.
	// Zero with a nil error is a valid outcome (nobody nearby right now).
	Broadcast(ctx context.Context, bookingID kernel.UUID) (int, error)
}
