package repository

import (
	"context"

	"hirelink/internal/domain/entity"
)

type SyncOutboxRepository interface {
	Enqueue(ctx context.Context, intent *entity.SyncIntent) error
	ListPending(ctx context.Context, limit int) ([]*entity.SyncIntent, error)
	MarkDone(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string, attempts int, lastError string, permanent bool) error
}
