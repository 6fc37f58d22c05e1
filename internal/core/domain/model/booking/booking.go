package booking

import (
	"errors"
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/errs"
)

var (
	// ErrBookingIsNotConstructed is returned when a Booking instance was not
	// created through NewBooking or RestoreBooking.
	ErrBookingIsNotConstructed = errors.New("Booking must be created via NewBooking or RestoreBooking")
)

// Booking is the aggregate root of the lifecycle engine. It links a customer, an
// optional technician, and a scheduled start time, and carries the per-assignment
// bookkeeping the timed jobs rely on: the reminder flags and the no-show marker.
//
// Booking maintains these invariants:
//   - Scheduled and Requested bookings have no technician; Accepted and later do
//   - Reminder flags may only be set while a technician is assigned, and reset
//     whenever the assignment is cleared
//   - The no-show marker is set at most once per assignment and cleared when a
//     new technician accepts
//
// The in-memory transition methods encode the authoritative semantics; the
// persistence layer enforces the same guards inside conditional updates so that
// concurrently ticking jobs (or multiple scheduler instances) cannot double-apply
// a transition.
type Booking struct {
	id           kernel.UUID
	customerID   kernel.UUID
	technicianID *kernel.UUID
	location     kernel.Location
	scheduledAt  time.Time
	status       Status
	reminders    Reminders
	assignedAt   *time.Time
	noShowAt     *time.Time

	isConstructed bool
}

// NewBooking creates a booking in Scheduled status for a future service slot.
//
// Parameters:
//   - id: unique booking identifier
//   - customerID: the requesting customer
//   - location: denormalized service-address coordinates (used for navigation reminders)
//   - scheduledAt: when the service is due to start
//
// Returns a validation error if any identifier or the location is invalid, or
// scheduledAt is the zero time.
func NewBooking(
	id kernel.UUID,
	customerID kernel.UUID,
	location kernel.Location,
	scheduledAt time.Time,
) (*Booking, error) {
	b := &Booking{
		status:        Scheduled,
		reminders:     NewReminders(),
		isConstructed: true,
	}

	if err := errors.Join(
		b.setID(id),
		b.setCustomerID(customerID),
		b.setLocation(location),
		b.setScheduledAt(scheduledAt),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreBooking reconstructs a booking from persistence, re-checking the
// cross-field invariants so corrupt rows cannot enter the domain.
func RestoreBooking(
	id kernel.UUID,
	customerID kernel.UUID,
	technicianID *kernel.UUID,
	location kernel.Location,
	scheduledAt time.Time,
	status Status,
	reminders Reminders,
	assignedAt *time.Time,
	noShowAt *time.Time,
) (*Booking, error) {
	b := &Booking{
		isConstructed: true,
		reminders:     reminders,
		assignedAt:    assignedAt,
		noShowAt:      noShowAt,
	}

	if err := errors.Join(
		b.setID(id),
		b.setCustomerID(customerID),
		b.setLocation(location),
		b.setScheduledAt(scheduledAt),
		b.setStatus(status),
	); err != nil {
		return nil, err
	}

	if technicianID != nil {
		if err := technicianID.Validate(); err != nil {
			return nil, err
		}
		tech := *technicianID
		b.technicianID = &tech
	}

	if err := status.ValidateCanHaveTechnician(b.technicianID != nil); err != nil {
		return nil, err
	}

	if reminders.Any() && b.technicianID == nil {
		return nil, errs.NewValueIsInvalidError("reminders may only be set while a technician is assigned")
	}

	if noShowAt != nil && b.technicianID != nil {
		return nil, errs.NewValueIsInvalidError("noShowAt may only be set while the booking is unassigned")
	}

	return b, nil
}

// Validate ensures the Booking was created via NewBooking or RestoreBooking.
func (b *Booking) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBookingIsNotConstructed
	}

	return nil
}

// IsEqual compares two bookings by identity.
func (b *Booking) IsEqual(other *Booking) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the booking's unique identifier.
func (b *Booking) ID() kernel.UUID {
	return b.id
}

// CustomerID returns the requesting customer's identifier.
func (b *Booking) CustomerID() kernel.UUID {
	return b.customerID
}

// Technician returns the assigned technician's identifier, or nil when the
// booking is unassigned.
func (b *Booking) Technician() *kernel.UUID {
	return b.technicianID
}

// Location returns the service-address coordinates.
func (b *Booking) Location() kernel.Location {
	return b.location
}

// ScheduledAt returns when the service is due to start.
func (b *Booking) ScheduledAt() time.Time {
	return b.scheduledAt
}

// Status returns the current lifecycle status.
func (b *Booking) Status() Status {
	return b.status
}

// ReminderSent reports whether the given reminder stage has fired for the
// current assignment.
func (b *Booking) ReminderSent(kind ReminderKind) bool {
	return b.reminders.Sent(kind)
}

// Reminders returns the reminder flags for the current assignment.
func (b *Booking) Reminders() Reminders {
	return b.reminders
}

// AssignedAt returns when the current technician was assigned, or nil.
func (b *Booking) AssignedAt() *time.Time {
	return b.assignedAt
}

// NoShowAt returns when the current assignment was no-show-recovered, or nil.
func (b *Booking) NoShowAt() *time.Time {
	return b.noShowAt
}

// Activate promotes a Scheduled booking to Requested so technician discovery
// can begin. Fails if the booking is not in Scheduled status.
func (b *Booking) Activate() error {
	newStatus, err := b.status.Activate()
	if err != nil {
		return err
	}

	b.status = newStatus
	return nil
}

// AssignTechnician applies a technician's acceptance: the booking moves from
// Requested to Accepted, the assignment timestamp is recorded, and the
// per-assignment bookkeeping starts fresh: all reminder flags reset and a stale
// no-show marker from a previous assignment is cleared. Clearing the marker here
// is the contract that keeps a re-broadcast booking eligible for no-show
// detection again.
func (b *Booking) AssignTechnician(technicianID kernel.UUID, at time.Time) error {
	if err := technicianID.Validate(); err != nil {
		return err
	}
	if at.IsZero() {
		return errs.NewValueIsRequiredError("assignment time")
	}

	newStatus, err := b.status.Accept()
	if err != nil {
		return err
	}

	b.status = newStatus
	b.technicianID = &technicianID
	b.assignedAt = &at
	b.noShowAt = nil
	b.reminders = NewReminders()
	return nil
}

// MarkReminderSent records that the given reminder stage fired for the current
// assignment. Only valid while the booking is Accepted with a technician.
func (b *Booking) MarkReminderSent(kind ReminderKind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	if b.status != Accepted || b.technicianID == nil {
		return errs.NewValueIsInvalidError("reminders may only be marked on an accepted booking")
	}

	b.reminders = b.reminders.markSent(kind)
	return nil
}

// RecoverNoShow applies no-show recovery: the technician assignment is cleared,
// the booking returns to Requested for re-broadcast, all reminder flags reset,
// and the no-show marker is stamped so the same assignment is never recovered
// twice. Fails unless the booking is Accepted with a technician and no marker set.
func (b *Booking) RecoverNoShow(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("recovery time")
	}
	if b.technicianID == nil {
		return errs.NewValueIsInvalidError("no-show recovery requires an assigned technician")
	}
	if b.noShowAt != nil {
		return errs.NewValueIsInvalidError("no-show recovery was already applied for this assignment")
	}

	newStatus, err := b.status.Release()
	if err != nil {
		return err
	}

	b.status = newStatus
	b.technicianID = nil
	b.assignedAt = nil
	b.noShowAt = &at
	b.reminders = NewReminders()
	return nil
}

func (b *Booking) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Booking) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.customerID = id
	return nil
}

func (b *Booking) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	b.location = location
	return nil
}

func (b *Booking) setScheduledAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("scheduledAt")
	}
	b.scheduledAt = at
	return nil
}

func (b *Booking) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	b.status = status
	return nil
}
