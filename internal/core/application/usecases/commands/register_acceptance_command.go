package commands

import (
	"errors"
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/guard"
)

var (
	ErrRegisterAcceptanceCommandIsNotConstructed = errors.New(
		"RegisterAcceptanceCommand must be created via NewRegisterAcceptanceCommand constructor",
	)
	ErrAcceptedAtIsRequired = errors.New("acceptance time is required")
)

// RegisterAcceptanceCommand records that a technician accepted an open
// booking. Arrives from the matching system's acceptance stream.
type RegisterAcceptanceCommand struct { //nolint:recvcheck //using for validation
	bookingID    kernel.UUID
	technicianID kernel.UUID
	acceptedAt   time.Time

	guard guard.ConstructorGuard
}

// NewRegisterAcceptanceCommand creates a command to register a technician's
// acceptance. Validates both identifiers and requires a non-zero acceptance
// time.
func NewRegisterAcceptanceCommand(
	bookingID kernel.UUID,
	technicianID kernel.UUID,
	acceptedAt time.Time,
) (RegisterAcceptanceCommand, error) {
	acceptanceCommand := RegisterAcceptanceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		acceptanceCommand.setBookingID(bookingID),
		acceptanceCommand.setTechnicianID(technicianID),
		acceptanceCommand.setAcceptedAt(acceptedAt),
	); err != nil {
		return RegisterAcceptanceCommand{}, err
	}

	return acceptanceCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterAcceptanceCommandIsNotConstructed if validation fails.
func (c RegisterAcceptanceCommand) Validate() error {
	return c.guard.Validate(ErrRegisterAcceptanceCommandIsNotConstructed)
}

// BookingID returns the booking the technician accepted.
func (c RegisterAcceptanceCommand) BookingID() kernel.UUID {
	return c.bookingID
}

// TechnicianID returns the accepting technician.
func (c RegisterAcceptanceCommand) TechnicianID() kernel.UUID {
	return c.technicianID
}

// AcceptedAt returns when the acceptance happened.
func (c RegisterAcceptanceCommand) AcceptedAt() time.Time {
	return c.acceptedAt
}

func (c *RegisterAcceptanceCommand) setBookingID(bookingID kernel.UUID) error {
	if err := bookingID.Validate(); err != nil {
		return err
	}

	c.bookingID = bookingID
	return nil
}

func (c *RegisterAcceptanceCommand) setTechnicianID(technicianID kernel.UUID) error {
	if err := technicianID.Validate(); err != nil {
		return err
	}

	c.technicianID = technicianID
	return nil
}

func (c *RegisterAcceptanceCommand) setAcceptedAt(acceptedAt time.Time) error {
	if acceptedAt.IsZero() {
		return ErrAcceptedAtIsRequired
	}

	c.acceptedAt = acceptedAt
	return nil
}
