package commands

import (
	"errors"

	"fieldops/internal/core/domain/model/booking"
	"fieldops/internal/pkg/guard"
)

var ErrSendRemindersCommandIsNotConstructed = errors.New(
	"SendRemindersCommand must be created via NewSendRemindersCommand constructor",
)

// SendRemindersCommand triggers one reminder sweep for a single stage
// (24 hours, 1 hour, or 15 minutes before the visit). Each stage runs as its
// own scheduled job with its own cadence, but they all share this command and
// its handler.
type SendRemindersCommand struct { //nolint:recvcheck //using for validation
	kind booking.ReminderKind

	guard guard.ConstructorGuard
}

// NewSendRemindersCommand creates a command for a reminder sweep of the given
// stage. Returns an error if the stage is not a known reminder kind.
func NewSendRemindersCommand(kind booking.ReminderKind) (SendRemindersCommand, error) {
	if err := kind.Validate(); err != nil {
		return SendRemindersCommand{}, err
	}

	return SendRemindersCommand{
		kind:  kind,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSendRemindersCommandIsNotConstructed if validation fails.
func (c SendRemindersCommand) Validate() error {
	return c.guard.Validate(ErrSendRemindersCommandIsNotConstructed)
}

// Kind returns the reminder stage this sweep covers.
func (c SendRemindersCommand) Kind() booking.ReminderKind {
	return c.kind
}
