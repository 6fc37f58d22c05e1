// Package kafka provides the outbound notification gateway. Push and SMS
// requests are published to dedicated topics and picked up by the delivery
// workers that own the vendor integrations; the lifecycle engine never talks
// to a push or SMS vendor directly.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/services"

	"github.com/segmentio/kafka-go"
)

// messageWriter abstracts *kafka.Writer for testing.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// NotificationGateway implements ports.NotificationGateway on top of Kafka.
// Messages are keyed by recipient so deliveries to the same person stay in
// publish order.
type NotificationGateway struct {
	pushWriter messageWriter
	smsWriter  messageWriter
}

// NewNotificationGateway creates a gateway publishing push requests and SMS
// requests to their respective topics.
func NewNotificationGateway(brokers []string, pushTopic, smsTopic string) *NotificationGateway {
	return &NotificationGateway{
		pushWriter: newWriter(brokers, pushTopic),
		smsWriter:  newWriter(brokers, smsTopic),
	}
}

func newWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}
}

type pushRequest struct {
	RecipientID string            `json:"recipientId"`
	Title       string            `json:"title"`
	Body        string            `json:"body"`
	Data        map[string]string `json:"data,omitempty"`
}

type smsRequest struct {
	Phone string `json:"phone"`
	Text  string `json:"text"`
}

// SendPush publishes a push delivery request for the recipient's devices.
func (g *NotificationGateway) SendPush(
	ctx context.Context,
	recipientID kernel.UUID,
	message services.ReminderMessage,
) error {
	payload, err := json.Marshal(pushRequest{
		RecipientID: recipientID.String(),
		Title:       message.Title,
		Body:        message.Body,
		Data:        message.Data,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal push request: %w", err)
	}

	return g.pushWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(recipientID.String()),
		Value: payload,
		Time:  time.Now(),
	})
}

// SendSMS publishes an SMS delivery request for the phone number.
func (g *NotificationGateway) SendSMS(ctx context.Context, phone string, text string) error {
	payload, err := json.Marshal(smsRequest{
		Phone: phone,
		Text:  text,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal sms request: %w", err)
	}

	return g.smsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(phone),
		Value: payload,
		Time:  time.Now(),
	})
}

// Close flushes and closes both topic writers.
func (g *NotificationGateway) Close() error {
	return errors.Join(g.pushWriter.Close(), g.smsWriter.Close())
}
