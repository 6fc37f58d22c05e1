package services_test

import (
	"testing"
	"time"

	"fieldops/internal/core/domain/model/booking"
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func composerTestBooking(t *testing.T, scheduledAt time.Time) *booking.Booking {
	t.Helper()

	loc, err := kernel.NewLocation(12.9716, 77.5946)
	require.NoError(t, err)

	b, err := booking.NewBooking(kernel.NewUUID(), kernel.NewUUID(), loc, scheduledAt)
	require.NoError(t, err)
	require.NoError(t, b.Activate())
	require.NoError(t, b.AssignTechnician(kernel.NewUUID(), scheduledAt.Add(-26*time.Hour)))
	return b
}

func TestReminderComposer_Compose(t *testing.T) {
	scheduledAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	composer := services.NewReminderComposer(time.UTC)

	t.Run("renders_scheduled_time_in_fixed_layout", func(t *testing.T) {
		b := composerTestBooking(t, scheduledAt)

		msg, err := composer.Compose(b, booking.Reminder24Hour, "Ravi")

		require.NoError(t, err)
		assert.Equal(t, "Service visit tomorrow", msg.Title)
		assert.Contains(t, msg.Body, "Ravi")
		assert.Contains(t, msg.Body, "Sat, 14 Mar 2026 at 9:30 AM")
	})

	t.Run("renders_in_configured_timezone", func(t *testing.T) {
		ist := time.FixedZone("IST", int((5*time.Hour + 30*time.Minute).Seconds()))
		b := composerTestBooking(t, scheduledAt)

		msg, err := services.NewReminderComposer(ist).Compose(b, booking.Reminder1Hour, "Ravi")

		require.NoError(t, err)
		assert.Contains(t, msg.Body, "3:00 PM")
	})

	t.Run("carries_booking_id_and_stage_in_data", func(t *testing.T) {
		b := composerTestBooking(t, scheduledAt)

		msg, err := composer.Compose(b, booking.Reminder1Hour, "Ravi")

		require.NoError(t, err)
		assert.Equal(t, b.ID().String(), msg.Data["bookingId"])
		assert.Equal(t, "1h", msg.Data["reminder"])
		assert.Equal(t, "2026-03-14T09:30:00Z", msg.Data["scheduledAt"])
	})

	t.Run("fifteen_minute_stage_includes_navigation_coordinates", func(t *testing.T) {
		b := composerTestBooking(t, scheduledAt)

		msg, err := composer.Compose(b, booking.Reminder15Minute, "Ravi")

		require.NoError(t, err)
		assert.Equal(t, "12.9716", msg.Data["latitude"])
		assert.Equal(t, "77.5946", msg.Data["longitude"])
	})

	t.Run("other_stages_omit_navigation_coordinates", func(t *testing.T) {
		b := composerTestBooking(t, scheduledAt)

		for _, kind := range []booking.ReminderKind{booking.Reminder24Hour, booking.Reminder1Hour} {
			msg, err := composer.Compose(b, kind, "Ravi")

			require.NoError(t, err)
			assert.NotContains(t, msg.Data, "latitude")
			assert.NotContains(t, msg.Data, "longitude")
		}
	})

	t.Run("rejects_missing_technician_name", func(t *testing.T) {
		b := composerTestBooking(t, scheduledAt)

		_, err := composer.Compose(b, booking.Reminder24Hour, "")
		require.Error(t, err)
	})

	t.Run("rejects_unknown_stage", func(t *testing.T) {
		b := composerTestBooking(t, scheduledAt)

		_, err := composer.Compose(b, booking.ReminderUnknown, "Ravi")
		require.Error(t, err)
	})

	t.Run("rejects_unconstructed_booking", func(t *testing.T) {
		var b booking.Booking

		_, err := composer.Compose(&b, booking.Reminder24Hour, "Ravi")
		require.Error(t, err)
	})
}

func TestReminderComposer_ComposeRebroadcast(t *testing.T) {
	scheduledAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	composer := services.NewReminderComposer(time.UTC)

	t.Run("composes_customer_notice", func(t *testing.T) {
		b := composerTestBooking(t, scheduledAt)

		msg, err := composer.ComposeRebroadcast(b)

		require.NoError(t, err)
		assert.Equal(t, "We are finding you a new technician", msg.Title)
		assert.Contains(t, msg.Body, "Sat, 14 Mar 2026 at 9:30 AM")
		assert.Equal(t, b.ID().String(), msg.Data["bookingId"])
	})

	t.Run("rejects_unconstructed_booking", func(t *testing.T) {
		var b booking.Booking

		_, err := composer.ComposeRebroadcast(&b)
		require.Error(t, err)
	})
}
