package entity

import "time"

const (
	SyncOpUpsert = "upsert"
	SyncOpUpdate = "update"
	SyncOpDelete = "delete"
)

const (
	SyncStatusPending = "pending"
	SyncStatusDone    = "done"
	SyncStatusFailed  = "failed"
)

// SyncIntent is an outbox entry: a pending write against the search index,
// recorded in the same batch as the primary-store write so the index is
// guaranteed to converge even when the immediate sync call fails.
type SyncIntent struct {
	ID       string                 `json:"id" firestore:"id"`
	ObjectID string                 `json:"object_id" firestore:"objectId"`
	Op       string                 `json:"op" firestore:"op"`
	Payload  map[string]interface{} `json:"payload,omitempty" firestore:"payload,omitempty"`

	Status    string `json:"status" firestore:"status"`
	Attempts  int    `json:"attempts" firestore:"attempts"`
	LastError string `json:"last_error,omitempty" firestore:"lastError,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
