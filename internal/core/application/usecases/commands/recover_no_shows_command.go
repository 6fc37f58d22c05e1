package commands

import (
	"errors"

	"fieldops/internal/pkg/guard"
)

var ErrRecoverNoShowsCommandIsNotConstructed = errors.New(
	"RecoverNoShowsCommand must be created via NewRecoverNoShowsCommand constructor",
)

// RecoverNoShowsCommand triggers one no-show sweep: Accepted bookings whose
// technician has not shown up within the grace period after the start time are
// released back to matching and the customer is told a new technician is being
// found.
type RecoverNoShowsCommand struct {
	guard guard.ConstructorGuard
}

// NewRecoverNoShowsCommand creates a command to trigger a no-show sweep.
// This is a parameterless command.
func NewRecoverNoShowsCommand() RecoverNoShowsCommand {
	return RecoverNoShowsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrRecoverNoShowsCommandIsNotConstructed if validation fails.
func (c *RecoverNoShowsCommand) Validate() error {
	return c.guard.Validate(
		ErrRecoverNoShowsCommandIsNotConstructed,
	)
}
