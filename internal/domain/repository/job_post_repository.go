package repository

import (
	"context"

	"hirelink/internal/domain/entity"
)

type JobPostRepository interface {
	Create(ctx context.Context, post *entity.JobPost) error
	GetByID(ctx context.Context, id string) (*entity.JobPost, error)
	List(ctx context.Context, category, status string, limit, offset int) ([]*entity.JobPost, int64, error)
	ListBySeekerID(ctx context.Context, seekerID string, limit, offset int) ([]*entity.JobPost, int64, error)
	Update(ctx context.Context, post *entity.JobPost) error
	Delete(ctx context.Context, id string) error
	IncrementProposalCount(ctx context.Context, id string) error
}
