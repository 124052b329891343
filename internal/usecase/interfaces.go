package usecase

import "context"

// SearchIndex is the derived listing index. Implemented by the
// infrastructure search client; faked in tests.
type SearchIndex interface {
	Upsert(ctx context.Context, objectID string, record map[string]interface{}) error
	PartialUpdate(ctx context.Context, objectID string, fields map[string]interface{}) error
	Delete(ctx context.Context, objectID string) error
	Search(ctx context.Context, query, category string) ([]map[string]interface{}, error)
}

// EventPublisher fans chat events out to WebSocket subscribers across
// instances. Implemented by the realtime bridge.
type EventPublisher interface {
	PublishToUsers(ctx context.Context, eventType string, recipients []string, payload interface{}) error
	Broadcast(ctx context.Context, eventType string, payload interface{}) error
}
