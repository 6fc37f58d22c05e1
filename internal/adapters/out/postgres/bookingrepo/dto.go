// Package bookingrepo provides data transfer objects and mapping functions for
// booking persistence. This package implements the repository pattern for the
// booking aggregate, handling the conversion between domain entities and
// database rows and hosting the conditional updates the scheduled jobs rely on
// for safe concurrent execution.
package bookingrepo

import (
	"time"

	"fieldops/internal/core/domain/model/booking"
	"fieldops/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BookingDTO represents the database structure for persisting booking
// aggregates. Indexed on status and scheduled_at because every sweep query
// filters on both.
type BookingDTO struct {
	ID              uuid.UUID   `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID   `gorm:"type:uuid;index"`
	TechnicianID    *uuid.UUID  `gorm:"type:uuid;index"`
	Location        LocationDTO `gorm:"embedded;embeddedPrefix:location_"`
	ScheduledAt     time.Time   `gorm:"index:idx_bookings_status_scheduled_at,priority:2"`
	Status          int         `gorm:"index:idx_bookings_status_scheduled_at,priority:1"`
	ReminderH24Sent bool        `gorm:"column:reminder_h24_sent"`
	ReminderH1Sent  bool        `gorm:"column:reminder_h1_sent"`
	ReminderM15Sent bool        `gorm:"column:reminder_m15_sent"`
	AssignedAt      *time.Time
	NoShowAt        *time.Time
}

// TableName specifies the database table name for booking entities.
// Overrides GORM's default naming convention to use "bookings".
func (BookingDTO) TableName() string {
	return "bookings"
}

// LocationDTO represents the embedded service-address coordinates within the
// bookings table.
type LocationDTO struct {
	Latitude  float64 `gorm:"type:double precision"`
	Longitude float64 `gorm:"type:double precision"`
}

// fromDomain converts a booking domain aggregate to its database
// representation, including the optional technician assignment and the
// per-assignment bookkeeping columns.
func fromDomain(aggregate *booking.Booking) BookingDTO {
	var technicianID *uuid.UUID
	if id := aggregate.Technician(); id != nil {
		raw := id.Bytes()
		technicianID = &raw
	}

	return BookingDTO{
		ID:           aggregate.ID().Bytes(),
		CustomerID:   aggregate.CustomerID().Bytes(),
		TechnicianID: technicianID,
		Location: LocationDTO{
			Latitude:  aggregate.Location().Latitude(),
			Longitude: aggregate.Location().Longitude(),
		},
		ScheduledAt:     aggregate.ScheduledAt(),
		Status:          int(aggregate.Status()),
		ReminderH24Sent: aggregate.ReminderSent(booking.Reminder24Hour),
		ReminderH1Sent:  aggregate.ReminderSent(booking.Reminder1Hour),
		ReminderM15Sent: aggregate.ReminderSent(booking.Reminder15Minute),
		AssignedAt:      aggregate.AssignedAt(),
		NoShowAt:        aggregate.NoShowAt(),
	}
}

// toDomain converts a database DTO to a booking domain aggregate.
// Reconstructs the complete aggregate through RestoreBooking so the cross-field
// invariants are re-checked on the way out of the store.
func toDomain(dto BookingDTO) (*booking.Booking, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var technicianID *kernel.UUID
	if dto.TechnicianID != nil {
		tID, techErr := kernel.UUIDFromBytes((*dto.TechnicianID)[:])
		if techErr != nil {
			return nil, techErr
		}

		technicianID = &tID
	}

	location, err := kernel.NewLocation(dto.Location.Latitude, dto.Location.Longitude)
	if err != nil {
		return nil, err
	}

	return booking.RestoreBooking(
		id,
		customerID,
		technicianID,
		location,
		dto.ScheduledAt,
		booking.Status(dto.Status),
		booking.RestoreReminders(dto.ReminderH24Sent, dto.ReminderH1Sent, dto.ReminderM15Sent),
		dto.AssignedAt,
		dto.NoShowAt,
	)
}
