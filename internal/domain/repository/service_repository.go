package repository

import (
	"context"

	"hirelink/internal/domain/entity"
)

type ServiceRepository interface {
	// Create, Update and Delete commit the listing write and the given sync
	// intent in one batch, so the index outbox never misses a primary write.
	Create(ctx context.Context, service *entity.Service, intent *entity.SyncIntent) error
	Update(ctx context.Context, service *entity.Service, intent *entity.SyncIntent) error
	Delete(ctx context.Context, id string, intent *entity.SyncIntent) error

	GetByID(ctx context.Context, id string) (*entity.Service, error)
	List(ctx context.Context, category string, limit, offset int) ([]*entity.Service, int64, error)
	ListByProviderID(ctx context.Context, providerID string, limit, offset int) ([]*entity.Service, int64, error)

	// UpdateProviderFields rewrites the denormalized owner snapshot on every
	// listing the provider owns and returns the IDs it touched.
	UpdateProviderFields(ctx context.Context, providerID, name, avatarURL string) ([]string, error)
}
