package queries

import (
	"context"
	"time"

	"fieldops/internal/core/domain/model/booking"
	"fieldops/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UpcomingHorizon is how far ahead the upcoming-bookings read model looks.
const UpcomingHorizon = 24 * time.Hour

// GetUpcomingBookingsQueryHandler reads bookings due within the upcoming
// horizon directly from the database. Completed bookings are excluded; the
// dashboard only cares about work that is still ahead.
type GetUpcomingBookingsQueryHandler struct {
	db *gorm.DB
}

// NewGetUpcomingBookingsQueryHandler creates a handler for upcoming-booking
// queries. Requires a GORM database connection for query execution.
func NewGetUpcomingBookingsQueryHandler(db *gorm.DB) GetUpcomingBookingsQueryHandler {
	return GetUpcomingBookingsQueryHandler{db: db}
}

// Handle executes the query.
// Returns active bookings with a start time between now and now plus the
// horizon, ordered soonest first.
func (h GetUpcomingBookingsQueryHandler) Handle(
	ctx context.Context,
	query GetUpcomingBookingsQuery,
) ([]GetUpcomingBookingsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	bookings := make([]GetUpcomingBookingsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			technician_id,
			location_latitude,
			location_longitude,
			scheduled_at,
			status
		FROM bookings
		WHERE scheduled_at >= ?
		  AND scheduled_at <= ?
		  AND status != ?
		ORDER BY scheduled_at
	`, now, now.Add(UpcomingHorizon), booking.Completed).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetUpcomingBookingsQueryResponse
		var id uuid.UUID
		var technicianID uuid.NullUUID
		var latitude, longitude float64
		var scheduledAt time.Time
		var status int

		err = rows.Scan(
			&id,
			&technicianID,
			&latitude,
			&longitude,
			&scheduledAt,
			&status,
		)
		if err != nil {
			return nil, err
		}

		bookingID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = bookingID

		if technicianID.Valid {
			techID, techErr := kernel.UUIDFromBytes(technicianID.UUID[:])
			if techErr != nil {
				return nil, techErr
			}
			resp.TechnicianID = &techID
		}

		location, locErr := kernel.NewLocation(latitude, longitude)
		if locErr != nil {
			return nil, locErr
		}
		resp.Location = location

		resp.ScheduledAt = scheduledAt
		resp.Status = booking.Status(status)
		bookings = append(bookings, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}
