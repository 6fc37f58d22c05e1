package booking_test

import (
	"testing"
	"time"

	"fieldops/internal/core/domain/model/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReminderKind_Validate(t *testing.T) {
	for _, k := range booking.ReminderKinds() {
		require.NoError(t, k.Validate())
	}

	require.Error(t, booking.ReminderUnknown.Validate())
	require.Error(t, booking.ReminderKind(42).Validate())
}

func TestReminderKind_String(t *testing.T) {
	assert.Equal(t, "24h", booking.Reminder24Hour.String())
	assert.Equal(t, "1h", booking.Reminder1Hour.String())
	assert.Equal(t, "15min", booking.Reminder15Minute.String())
	assert.Equal(t, "unknown", booking.ReminderUnknown.String())
}

func TestReminderKind_Window(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		kind booking.ReminderKind
		from time.Duration
		to   time.Duration
	}{
		{booking.Reminder24Hour, 23 * time.Hour, 25 * time.Hour},
		{booking.Reminder1Hour, 55 * time.Minute, 65 * time.Minute},
		{booking.Reminder15Minute, 10 * time.Minute, 20 * time.Minute},
	}

	for _, tc := range testCases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			from, to := tc.kind.Window(now)

			assert.True(t, now.Add(tc.from).Equal(from))
			assert.True(t, now.Add(tc.to).Equal(to))
		})
	}
}

func TestReminderKind_ChannelBehavior(t *testing.T) {
	assert.False(t, booking.Reminder24Hour.RequiresSMS())
	assert.True(t, booking.Reminder1Hour.RequiresSMS())
	assert.True(t, booking.Reminder15Minute.RequiresSMS())

	assert.False(t, booking.Reminder24Hour.IncludesNavigation())
	assert.False(t, booking.Reminder1Hour.IncludesNavigation())
	assert.True(t, booking.Reminder15Minute.IncludesNavigation())
}

func TestReminderKind_Lead(t *testing.T) {
	assert.Equal(t, 24*time.Hour, booking.Reminder24Hour.Lead())
	assert.Equal(t, time.Hour, booking.Reminder1Hour.Lead())
	assert.Equal(t, 15*time.Minute, booking.Reminder15Minute.Lead())
}

func TestReminders(t *testing.T) {
	t.Run("new_reminders_has_no_stage_sent", func(t *testing.T) {
		r := booking.NewReminders()

		assert.False(t, r.Any())
		for _, k := range booking.ReminderKinds() {
			assert.False(t, r.Sent(k))
		}
	})

	t.Run("restore_round_trips_flags", func(t *testing.T) {
		r := booking.RestoreReminders(true, false, true)

		assert.True(t, r.Sent(booking.Reminder24Hour))
		assert.False(t, r.Sent(booking.Reminder1Hour))
		assert.True(t, r.Sent(booking.Reminder15Minute))
		assert.True(t, r.Any())
	})
}
