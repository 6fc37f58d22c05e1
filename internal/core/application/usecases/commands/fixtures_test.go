package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"fieldops/internal/core/domain/model/booking"
	"fieldops/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testLocation(t *testing.T) kernel.Location {
	t.Helper()
	location, err := kernel.NewLocation(40.7128, -74.006)
	require.NoError(t, err)
	return location
}

func newScheduledBooking(t *testing.T, scheduledAt time.Time) *booking.Booking {
	t.Helper()
	b, err := booking.NewBooking(kernel.NewUUID(), kernel.NewUUID(), testLocation(t), scheduledAt)
	require.NoError(t, err)
	return b
}

func newAcceptedBooking(t *testing.T, scheduledAt time.Time) *booking.Booking {
	t.Helper()
	b := newScheduledBooking(t, scheduledAt)
	require.NoError(t, b.Activate())
	require.NoError(t, b.AssignTechnician(kernel.NewUUID(), scheduledAt.Add(-2*time.Hour)))
	return b
}

type MockBookingRepository struct{ mock.Mock }

func (m *MockBookingRepository) Add(ctx context.Context, b *booking.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetScheduledDueBy(
	ctx context.Context,
	deadline time.Time,
) ([]*booking.Booking, error) {
	args := m.Called(ctx, deadline)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*booking.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetAcceptedAwaitingReminder(
	ctx context.Context,
	kind booking.ReminderKind,
	from, to time.Time,
) ([]*booking.Booking, error) {
	args := m.Called(ctx, kind, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*booking.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetNoShowCandidates(
	ctx context.Context,
	cutoff time.Time,
) ([]*booking.Booking, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*booking.Booking), args.Error(1)
}

func (m *MockBookingRepository) ActivateIfScheduled(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) AcceptIfRequested(
	ctx context.Context,
	id kernel.UUID,
	technicianID kernel.UUID,
	at time.Time,
) (bool, error) {
	args := m.Called(ctx, id, technicianID, at)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) MarkReminderSent(
	ctx context.Context,
	id kernel.UUID,
	kind booking.ReminderKind,
) error {
	args := m.Called(ctx, id, kind)
	return args.Error(0)
}

func (m *MockBookingRepository) RecoverIfNoShow(
	ctx context.Context,
	id kernel.UUID,
	at time.Time,
) (bool, error) {
	args := m.Called(ctx, id, at)
	return args.Bool(0), args.Error(1)
}

type MockMatchingService struct{ mock.Mock }

func (m *MockMatchingService) Broadcast(ctx context.Context, bookingID kernel.UUID) (int, error) {
	args := m.Called(ctx, bookingID)
	return args.Int(0), args.Error(1)
}

type MockReminderNotifier struct{ mock.Mock }

func (m *MockReminderNotifier) NotifyTechnician(
	ctx context.Context,
	b *booking.Booking,
	kind booking.ReminderKind,
) error {
	args := m.Called(ctx, b, kind)
	return args.Error(0)
}

func (m *MockReminderNotifier) NotifyCustomerRebroadcast(ctx context.Context, b *booking.Booking) {
	m.Called(ctx, b)
}
