package bookingrepo

import (
	"context"
	"errors"
	"time"

	"fieldops/internal/core/domain/model/booking"
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/errs"

	"gorm.io/gorm"
)

// reminderColumns maps each reminder stage to its flag column. Used both for
// the window queries and for flag updates, so stage and column cannot drift
// apart.
var reminderColumns = map[booking.ReminderKind]string{
	booking.Reminder24Hour:   "reminder_h24_sent",
	booking.Reminder1Hour:    "reminder_h1_sent",
	booking.Reminder15Minute: "reminder_m15_sent",
}

// GormBookingRepository implements BookingRepository using GORM.
//
// Every transition method issues a single UPDATE whose WHERE clause re-checks
// the expected prior state and reports success through the affected row count.
// That makes each transition effectively compare-and-set: of any number of
// concurrent attempts exactly one matches the row, and the rest observe zero
// rows affected.
type GormBookingRepository struct {
	db *gorm.DB
}

// NewGormBookingRepository creates a new GORM booking repository.
func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// Add saves a new booking to the database.
func (r *GormBookingRepository) Add(ctx context.Context, aggregate *booking.Booking) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a booking by ID.
func (r *GormBookingRepository) Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BookingDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("booking", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetScheduledDueBy retrieves all Scheduled bookings starting at or before the
// deadline.
func (r *GormBookingRepository) GetScheduledDueBy(
	ctx context.Context,
	deadline time.Time,
) ([]*booking.Booking, error) {
	var dtos []BookingDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "status = ? AND scheduled_at <= ?", int(booking.Scheduled), deadline).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAcceptedAwaitingReminder retrieves Accepted bookings starting within
// [from, to] whose flag for the given stage is still unset.
func (r *GormBookingRepository) GetAcceptedAwaitingReminder(
	ctx context.Context,
	kind booking.ReminderKind,
	from, to time.Time,
) ([]*booking.Booking, error) {
	column, ok := reminderColumns[kind]
	if !ok {
		return nil, kind.Validate()
	}

	var dtos []BookingDTO
	err := r.db.WithContext(ctx).
		Where("status = ? AND scheduled_at >= ? AND scheduled_at <= ?", int(booking.Accepted), from, to).
		Where(column+" = ?", false).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetNoShowCandidates retrieves Accepted bookings with a technician, no
// no-show marker, and a start time at or before the cutoff.
func (r *GormBookingRepository) GetNoShowCandidates(
	ctx context.Context,
	cutoff time.Time,
) ([]*booking.Booking, error) {
	var dtos []BookingDTO
	err := r.db.WithContext(ctx).
		Where("status = ? AND technician_id IS NOT NULL AND no_show_at IS NULL AND scheduled_at <= ?",
			int(booking.Accepted), cutoff).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// ActivateIfScheduled flips the booking from Scheduled to Requested when it is
// still Scheduled. The status check rides in the WHERE clause, so of several
// concurrent sweeps only one sees a row affected.
func (r *GormBookingRepository) ActivateIfScheduled(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).
		Model(&BookingDTO{}).
		Where("id = ? AND status = ?", id.Bytes(), int(booking.Scheduled)).
		Update("status", int(booking.Requested))
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// AcceptIfRequested assigns the technician when the booking is still
// Requested. The same statement stamps the assignment time, clears a stale
// no-show marker, and resets all reminder flags.
func (r *GormBookingRepository) AcceptIfRequested(
	ctx context.Context,
	id kernel.UUID,
	technicianID kernel.UUID,
	at time.Time,
) (bool, error) {
	if err := errors.Join(id.Validate(), technicianID.Validate()); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).
		Model(&BookingDTO{}).
		Where("id = ? AND status = ?", id.Bytes(), int(booking.Requested)).
		Updates(map[string]any{
			"status":            int(booking.Accepted),
			"technician_id":     technicianID.Bytes(),
			"assigned_at":       at,
			"no_show_at":        nil,
			"reminder_h24_sent": false,
			"reminder_h1_sent":  false,
			"reminder_m15_sent": false,
		})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// MarkReminderSent sets the flag column for the given stage. Unconditional;
// setting an already-set flag is a harmless no-op.
func (r *GormBookingRepository) MarkReminderSent(
	ctx context.Context,
	id kernel.UUID,
	kind booking.ReminderKind,
) error {
	if err := id.Validate(); err != nil {
		return err
	}

	column, ok := reminderColumns[kind]
	if !ok {
		return kind.Validate()
	}

	return r.db.WithContext(ctx).
		Model(&BookingDTO{}).
		Where("id = ?", id.Bytes()).
		Update(column, true).Error
}

// RecoverIfNoShow releases the booking back to Requested when it is still
// Accepted with a technician and no no-show marker. The marker guard makes
// recovery once-only per assignment even across concurrent sweeps.
func (r *GormBookingRepository) RecoverIfNoShow(
	ctx context.Context,
	id kernel.UUID,
	at time.Time,
) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).
		Model(&BookingDTO{}).
		Where("id = ? AND status = ? AND technician_id IS NOT NULL AND no_show_at IS NULL",
			id.Bytes(), int(booking.Accepted)).
		Updates(map[string]any{
			"status":            int(booking.Requested),
			"technician_id":     nil,
			"assigned_at":       nil,
			"no_show_at":        at,
			"reminder_h24_sent": false,
			"reminder_h1_sent":  false,
			"reminder_m15_sent": false,
		})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func toDomainSlice(dtos []BookingDTO) ([]*booking.Booking, error) {
	bookings := make([]*booking.Booking, 0, len(dtos))
	for _, dto := range dtos {
		b, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}

	return bookings, nil
}
