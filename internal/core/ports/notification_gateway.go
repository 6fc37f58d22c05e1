package ports

import (
	"context"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/services"
)

// NotificationGateway is the outbound contract for delivering notifications to
// people. Delivery is at-most-once from the engine's point of view: a returned
// error means the attempt failed, not that it is safe to retry blindly.
type NotificationGateway interface {
	// SendPush delivers a push notification to the recipient's devices.
	SendPush(ctx context.Context, recipientID kernel.UUID, message services.ReminderMessage) error

	// SendSMS delivers a plain text message to the phone number.
	SendSMS(ctx context.Context, phone string, text string) error
}

// SocketEmitter is the outbound contract for real-time in-app events. Emission
// is best effort: a connected client sees the event, a disconnected one does
// not, and the engine never blocks on it.
type SocketEmitter interface {
	Emit(ctx context.Context, channel string, event string, payload any) error
}
