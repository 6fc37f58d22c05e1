package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/services"

	segmentio "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	messages []segmentio.Message
	writeErr error
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...segmentio.Message) error {
	if w.writeErr != nil {
		return w.writeErr
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func newTestGateway() (*NotificationGateway, *fakeWriter, *fakeWriter) {
	push := &fakeWriter{}
	sms := &fakeWriter{}
	return &NotificationGateway{pushWriter: push, smsWriter: sms}, push, sms
}

func TestSendPush_PublishesKeyedPayload(t *testing.T) {
	gateway, push, sms := newTestGateway()
	recipientID := kernel.NewUUID()

	message := services.ReminderMessage{
		Title: "Service visit tomorrow",
		Body:  "Hi Alex, you have a service visit.",
		Data:  map[string]string{"bookingId": "b-1", "reminder": "24h"},
	}

	err := gateway.SendPush(t.Context(), recipientID, message)
	require.NoError(t, err)
	require.Len(t, push.messages, 1)
	assert.Empty(t, sms.messages)

	msg := push.messages[0]
	assert.Equal(t, recipientID.String(), string(msg.Key))

	var payload pushRequest
	require.NoError(t, json.Unmarshal(msg.Value, &payload))
	assert.Equal(t, recipientID.String(), payload.RecipientID)
	assert.Equal(t, "Service visit tomorrow", payload.Title)
	assert.Equal(t, "Hi Alex, you have a service visit.", payload.Body)
	assert.Equal(t, "24h", payload.Data["reminder"])
}

func TestSendSMS_PublishesKeyedPayload(t *testing.T) {
	gateway, push, sms := newTestGateway()

	err := gateway.SendSMS(t.Context(), "+15550100", "Your visit starts shortly.")
	require.NoError(t, err)
	require.Len(t, sms.messages, 1)
	assert.Empty(t, push.messages)

	msg := sms.messages[0]
	assert.Equal(t, "+15550100", string(msg.Key))

	var payload smsRequest
	require.NoError(t, json.Unmarshal(msg.Value, &payload))
	assert.Equal(t, "+15550100", payload.Phone)
	assert.Equal(t, "Your visit starts shortly.", payload.Text)
}

func TestSendPush_WriteErrorPropagates(t *testing.T) {
	gateway, push, _ := newTestGateway()
	push.writeErr = errors.New("broker unavailable")

	err := gateway.SendPush(t.Context(), kernel.NewUUID(), services.ReminderMessage{Title: "t"})
	require.Error(t, err)
	require.EqualError(t, err, "broker unavailable")
}

func TestClose_ClosesBothWriters(t *testing.T) {
	gateway, push, sms := newTestGateway()

	require.NoError(t, gateway.Close())
	assert.True(t, push.closed)
	assert.True(t, sms.closed)
}
