package booking_test

import (
	"testing"

	"fieldops/internal/core/domain/model/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	valid := []booking.Status{
		booking.Scheduled, booking.Requested, booking.Accepted,
		booking.OnTheWay, booking.Reached, booking.InProgress, booking.Completed,
	}
	for _, s := range valid {
		require.NoError(t, s.Validate(), "status %s should be valid", s)
	}

	require.Error(t, booking.Unknown.Validate())
	require.Error(t, booking.Status(42).Validate())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Scheduled", booking.Scheduled.String())
	assert.Equal(t, "Requested", booking.Requested.String())
	assert.Equal(t, "Accepted", booking.Accepted.String())
	assert.Equal(t, "Completed", booking.Completed.String())
	assert.Equal(t, "Unknown", booking.Unknown.String())
	assert.Equal(t, "Unknown", booking.Status(42).String())
}

func TestStatus_Activate(t *testing.T) {
	t.Run("scheduled_activates_to_requested", func(t *testing.T) {
		next, err := booking.Scheduled.Activate()

		require.NoError(t, err)
		assert.Equal(t, booking.Requested, next)
	})

	t.Run("other_statuses_cannot_activate", func(t *testing.T) {
		for _, s := range []booking.Status{
			booking.Unknown, booking.Requested, booking.Accepted,
			booking.OnTheWay, booking.InProgress, booking.Completed,
		} {
			_, err := s.Activate()
			require.Error(t, err, "status %s should not activate", s)
		}
	})
}

func TestStatus_Accept(t *testing.T) {
	t.Run("requested_accepts_to_accepted", func(t *testing.T) {
		next, err := booking.Requested.Accept()

		require.NoError(t, err)
		assert.Equal(t, booking.Accepted, next)
	})

	t.Run("other_statuses_cannot_accept", func(t *testing.T) {
		for _, s := range []booking.Status{booking.Scheduled, booking.Accepted, booking.Completed} {
			_, err := s.Accept()
			require.Error(t, err, "status %s should not accept", s)
		}
	})
}

func TestStatus_Release(t *testing.T) {
	t.Run("accepted_releases_to_requested", func(t *testing.T) {
		next, err := booking.Accepted.Release()

		require.NoError(t, err)
		assert.Equal(t, booking.Requested, next)
	})

	t.Run("other_statuses_cannot_release", func(t *testing.T) {
		for _, s := range []booking.Status{
			booking.Scheduled, booking.Requested, booking.InProgress, booking.Completed,
		} {
			_, err := s.Release()
			require.Error(t, err, "status %s should not release", s)
		}
	})
}

func TestStatus_ValidateCanHaveTechnician(t *testing.T) {
	t.Run("pre_acceptance_statuses_must_be_unassigned", func(t *testing.T) {
		require.NoError(t, booking.Scheduled.ValidateCanHaveTechnician(false))
		require.NoError(t, booking.Requested.ValidateCanHaveTechnician(false))
		require.Error(t, booking.Scheduled.ValidateCanHaveTechnician(true))
		require.Error(t, booking.Requested.ValidateCanHaveTechnician(true))
	})

	t.Run("accepted_and_later_statuses_must_be_assigned", func(t *testing.T) {
		for _, s := range []booking.Status{
			booking.Accepted, booking.OnTheWay, booking.Reached,
			booking.InProgress, booking.Completed,
		} {
			require.NoError(t, s.ValidateCanHaveTechnician(true), "status %s", s)
			require.Error(t, s.ValidateCanHaveTechnician(false), "status %s", s)
		}
	})
}
