// Package redis provides the real-time socket bridge and the technician
// contact cache. The socket gateway processes that hold the customer and
// technician websocket connections subscribe to the channels this package
// publishes on.
package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// SocketEmitter implements ports.SocketEmitter via Redis pub/sub.
// An event published to a channel nobody subscribes to is silently dropped,
// which is the behavior real-time events want: no client, no delivery.
type SocketEmitter struct {
	client *redis.Client
}

// NewSocketEmitter creates an emitter publishing through the given client.
func NewSocketEmitter(client *redis.Client) *SocketEmitter {
	return &SocketEmitter{client: client}
}

type socketEnvelope struct {
	Event   string `json:"event"`
	Payload any    `json:"payload"`
}

// Emit publishes the event to the channel's subscribers.
func (e *SocketEmitter) Emit(ctx context.Context, channel string, event string, payload any) error {
	data, err := json.Marshal(socketEnvelope{Event: event, Payload: payload})
	if err != nil {
		return fmt.Errorf("failed to marshal socket event: %w", err)
	}

	return e.client.Publish(ctx, "socket:"+channel, data).Err()
}
