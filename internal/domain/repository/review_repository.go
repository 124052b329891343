package repository

import (
	"context"

	"hirelink/internal/domain/entity"
)

type ReviewRepository interface {
	// Submit runs the whole review write transactionally: listing existence,
	// self-review rejection, duplicate detection, the running-average update
	// on the listing and the review document itself all commit atomically.
	Submit(ctx context.Context, review *entity.Review) (*entity.Service, error)

	ListByService(ctx context.Context, serviceID string, limit, offset int) ([]*entity.Review, int64, error)
}
