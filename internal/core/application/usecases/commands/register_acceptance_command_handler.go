package commands

import (
	"context"
	"errors"

	"fieldops/internal/core/ports"
)

// ErrBookingNotAcceptable reports that the booking was no longer open when the
// acceptance arrived: someone else accepted it first, it was never activated,
// or it has moved past Requested entirely.
var ErrBookingNotAcceptable = errors.New("booking is not open for acceptance")

// RegisterAcceptanceCommandHandler applies a technician's acceptance.
// The first acceptance to reach the store wins through a conditional update;
// later ones get ErrBookingNotAcceptable and the matching system tells the
// losing technician. A winning acceptance also wipes any earlier no-show
// marker and reminder flags, so a re-matched booking gets a fresh reminder
// cycle.
type RegisterAcceptanceCommandHandler struct {
	bookingRepo ports.BookingRepository
}

// NewRegisterAcceptanceCommandHandler creates a handler for acceptance
// registration.
func NewRegisterAcceptanceCommandHandler(bookingRepo ports.BookingRepository) RegisterAcceptanceCommandHandler {
	return RegisterAcceptanceCommandHandler{
		bookingRepo: bookingRepo,
	}
}

// Handle processes the acceptance command.
// Returns ErrBookingNotAcceptable when the booking was not in Requested.
func (h RegisterAcceptanceCommandHandler) Handle(ctx context.Context, command RegisterAcceptanceCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	accepted, err := h.bookingRepo.AcceptIfRequested(
		ctx,
		command.BookingID(),
		command.TechnicianID(),
		command.AcceptedAt(),
	)
	if err != nil {
		return err
	}
	if !accepted {
		return ErrBookingNotAcceptable
	}

	return nil
}
