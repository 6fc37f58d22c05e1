// Package kafka provides the inbound acceptance stream. The matching system
// publishes an event whenever a technician taps "accept" on a broadcast
// booking; this consumer turns each event into a RegisterAcceptance command.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"fieldops/internal/core/application/usecases/commands"
	"fieldops/internal/core/domain/model/kernel"

	"github.com/segmentio/kafka-go"
)

// messageReader abstracts *kafka.Reader for testing.
type messageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

// acceptanceEvent is the wire format of the matching system's acceptance
// stream.
type acceptanceEvent struct {
	BookingID    string    `json:"bookingId"`
	TechnicianID string    `json:"technicianId"`
	AcceptedAt   time.Time `json:"acceptedAt"`
}

// AcceptanceConsumer reads acceptance events and applies them through the
// RegisterAcceptance command.
//
// Losing acceptances are normal traffic: several technicians race for the same
// booking and only the first reaches the store. Those are logged and the
// offset moves on. Malformed events are skipped the same way; replaying a
// poison message would stall every acceptance behind it.
type AcceptanceConsumer struct {
	reader  messageReader
	handler commands.RegisterAcceptanceCommandHandler
	logger  *slog.Logger
}

// NewAcceptanceConsumer creates a consumer in the given consumer group.
func NewAcceptanceConsumer(
	brokers []string,
	groupID string,
	topic string,
	handler commands.RegisterAcceptanceCommandHandler,
	logger *slog.Logger,
) *AcceptanceConsumer {
	return &AcceptanceConsumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:           brokers,
			GroupID:           groupID,
			Topic:             topic,
			HeartbeatInterval: 3 * time.Second,
			SessionTimeout:    30 * time.Second,
		}),
		handler: handler,
		logger:  logger.With("component", "acceptance_consumer"),
	}
}

// Run consumes acceptance events until the context is canceled.
// Returns nil on cancellation and the reader's error on stream failure.
func (c *AcceptanceConsumer) Run(ctx context.Context) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return err
		}

		c.process(ctx, msg)
	}
}

// Close shuts the underlying reader down.
func (c *AcceptanceConsumer) Close() error {
	return c.reader.Close()
}

func (c *AcceptanceConsumer) process(ctx context.Context, msg kafka.Message) {
	cmd, err := decodeAcceptance(msg.Value)
	if err != nil {
		c.logger.ErrorContext(ctx, "Skipping malformed acceptance event",
			"partition", msg.Partition, "offset", msg.Offset, "error", err)
		return
	}

	err = c.handler.Handle(ctx, cmd)
	switch {
	case errors.Is(err, commands.ErrBookingNotAcceptable):
		c.logger.InfoContext(ctx, "Acceptance lost the race",
			"bookingId", cmd.BookingID(), "technicianId", cmd.TechnicianID())
	case err != nil:
		c.logger.ErrorContext(ctx, "Failed to register acceptance",
			"bookingId", cmd.BookingID(), "technicianId", cmd.TechnicianID(), "error", err)
	default:
		c.logger.InfoContext(ctx, "Technician accepted booking",
			"bookingId", cmd.BookingID(), "technicianId", cmd.TechnicianID())
	}
}

func decodeAcceptance(value []byte) (commands.RegisterAcceptanceCommand, error) {
	var event acceptanceEvent
	if err := json.Unmarshal(value, &event); err != nil {
		return commands.RegisterAcceptanceCommand{}, err
	}

	bookingID, err := kernel.UUIDFromString(event.BookingID)
	if err != nil {
		return commands.RegisterAcceptanceCommand{}, err
	}

	technicianID, err := kernel.UUIDFromString(event.TechnicianID)
	if err != nil {
		return commands.RegisterAcceptanceCommand{}, err
	}

	return commands.NewRegisterAcceptanceCommand(bookingID, technicianID, event.AcceptedAt)
}
