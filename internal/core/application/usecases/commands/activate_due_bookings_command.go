// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
//
// The scheduled handlers in this package are built to run concurrently: every
// state change goes through a conditional store update that re-verifies the
// expected prior state, so overlapping ticks and multiple scheduler instances
// converge on a single effective transition per booking. Handlers fail a whole
// tick only when the candidate query itself fails; per-booking errors are
// logged and the loop moves on.
package commands

import (
	"errors"

	"fieldops/internal/pkg/guard"
)

var ErrActivateDueBookingsCommandIsNotConstructed = errors.New(
	"ActivateDueBookingsCommand must be created via NewActivateDueBookingsCommand constructor",
)

// ActivateDueBookingsCommand triggers one activation sweep: every booking
// still sitting in Scheduled whose start time is within the activation horizon
// gets opened for technician matching.
//
// Example:
//
//	cmd := NewActivateDueBookingsCommand()
//	handler := NewActivateDueBookingsCommandHandler(repo, matching, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("activation sweep failed: %v", err)
//	}
type ActivateDueBookingsCommand struct {
	guard guard.ConstructorGuard
}

// NewActivateDueBookingsCommand creates a command to trigger an activation
// sweep. This is a parameterless command.
func NewActivateDueBookingsCommand() ActivateDueBookingsCommand {
	return ActivateDueBookingsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrActivateDueBookingsCommandIsNotConstructed if validation fails.
func (c *ActivateDueBookingsCommand) Validate() error {
	return c.guard.Validate(
		ErrActivateDueBookingsCommandIsNotConstructed,
	)
}
