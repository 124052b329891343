package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"hirelink/internal/domain/entity"
	"hirelink/internal/domain/repository"
	"hirelink/pkg/errors"
)

type firestoreSyncOutboxRepository struct {
	client *firestore.Client
}

func NewFirestoreSyncOutboxRepository(client *firestore.Client) repository.SyncOutboxRepository {
	return &firestoreSyncOutboxRepository{
		client: client,
	}
}

func (r *firestoreSyncOutboxRepository) Enqueue(ctx context.Context, intent *entity.SyncIntent) error {
	if intent.ID == "" {
		intent.ID = uuid.New().String()
	}

	now := time.Now()
	intent.Status = entity.SyncStatusPending
	intent.CreatedAt = now
	intent.UpdatedAt = now

	_, err := r.client.Collection(syncOutboxCollection).Doc(intent.ID).Set(ctx, intent)
	if err != nil {
		return errors.Internal("Failed to enqueue sync intent", err)
	}

	return nil
}

func (r *firestoreSyncOutboxRepository) ListPending(ctx context.Context, limit int) ([]*entity.SyncIntent, error) {
	query := r.client.Collection(syncOutboxCollection).
		Where("status", "==", entity.SyncStatusPending).
		OrderBy("createdAt", firestore.Asc).
		Limit(limit)

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to list pending sync intents", err)
	}

	var intents []*entity.SyncIntent
	for _, doc := range docs {
		var intent entity.SyncIntent
		if err := doc.DataTo(&intent); err != nil {
			return nil, errors.Internal("Failed to parse sync intent data", err)
		}
		intents = append(intents, &intent)
	}

	return intents, nil
}

func (r *firestoreSyncOutboxRepository) MarkDone(ctx context.Context, id string) error {
	_, err := r.client.Collection(syncOutboxCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: entity.SyncStatusDone},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		return errors.Internal("Failed to mark sync intent done", err)
	}

	return nil
}

func (r *firestoreSyncOutboxRepository) MarkFailed(ctx context.Context, id string, attempts int, lastError string, permanent bool) error {
	status := entity.SyncStatusPending
	if permanent {
		status = entity.SyncStatusFailed
	}

	_, err := r.client.Collection(syncOutboxCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: status},
		{Path: "attempts", Value: attempts},
		{Path: "lastError", Value: lastError},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		return errors.Internal("Failed to record sync intent failure", err)
	}

	return nil
}
