package realtime

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"hirelink/pkg/config"
	"hirelink/pkg/logger"
)

const eventsChannel = "hirelink:chat-events"

const (
	EventMessage      = "message"
	EventGroupMessage = "group_message"
)

// Event is a chat notification fanned out over Redis pub/sub so that every
// instance delivers it to its own WebSocket subscribers. Redis preserves
// publish order per channel, which keeps per-conversation delivery in
// creation order.
type Event struct {
	Type       string          `json:"type"`
	Recipients []string        `json:"recipients,omitempty"`
	Payload    json.RawMessage `json:"payload"`
}

func NewRedisClient(cfg *config.Config) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	logger.Info("Redis client created (addr: %s)", cfg.RedisAddr)
	return rdb
}

// Bridge connects the local WebSocket manager to the Redis channel.
type Bridge struct {
	rdb     *redis.Client
	manager *Manager
}

func NewBridge(rdb *redis.Client, manager *Manager) *Bridge {
	return &Bridge{
		rdb:     rdb,
		manager: manager,
	}
}

// PublishToUsers sends an event addressed to specific users.
func (b *Bridge) PublishToUsers(ctx context.Context, eventType string, recipients []string, payload interface{}) error {
	return b.publish(ctx, eventType, recipients, payload)
}

// Broadcast sends an event to every connected subscriber (the group room).
func (b *Bridge) Broadcast(ctx context.Context, eventType string, payload interface{}) error {
	return b.publish(ctx, eventType, nil, payload)
}

func (b *Bridge) publish(ctx context.Context, eventType string, recipients []string, payload interface{}) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	event, err := json.Marshal(Event{
		Type:       eventType,
		Recipients: recipients,
		Payload:    raw,
	})
	if err != nil {
		return err
	}

	return b.rdb.Publish(ctx, eventsChannel, event).Err()
}

// Start subscribes to the Redis channel and forwards events to local
// WebSocket clients until the context ends.
func (b *Bridge) Start(ctx context.Context) {
	pubsub := b.rdb.Subscribe(ctx, eventsChannel)

	go func() {
		defer pubsub.Close()

		for {
			select {
			case msg, ok := <-pubsub.Channel():
				if !ok {
					return
				}

				var event Event
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					logger.Warn("Dropping malformed chat event: %v", err)
					continue
				}

				// The frame clients receive carries only type and payload;
				// the recipient list is routing metadata.
				frame, err := json.Marshal(map[string]interface{}{
					"type":    event.Type,
					"payload": event.Payload,
				})
				if err != nil {
					continue
				}

				if len(event.Recipients) == 0 {
					b.manager.Broadcast(frame)
					continue
				}
				for _, userID := range event.Recipients {
					b.manager.SendToUser(userID, frame)
				}

			case <-ctx.Done():
				return
			}
		}
	}()
}
