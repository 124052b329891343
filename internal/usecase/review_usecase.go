package usecase

import (
	"context"

	"hirelink/internal/domain/entity"
	"hirelink/internal/domain/repository"
	"hirelink/pkg/errors"
)

type ReviewUseCase struct {
	reviewRepo repository.ReviewRepository
	userRepo   repository.UserRepository
}

func NewReviewUseCase(reviewRepo repository.ReviewRepository, userRepo repository.UserRepository) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
	}
}

type SubmitReviewInput struct {
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Text   string `json:"text" validate:"required,min=3,max=2000"`
}

// SubmitReviewResult pairs the stored review with the listing's refreshed
// rating so clients can update in place without refetching.
type SubmitReviewResult struct {
	Review        *entity.Review `json:"review"`
	ReviewCount   int            `json:"review_count"`
	AverageRating float64        `json:"average_rating"`
}

func (uc *ReviewUseCase) SubmitReview(ctx context.Context, serviceID, reviewerID string, input SubmitReviewInput) (*SubmitReviewResult, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.BadRequest("Rating must be between 1 and 5", nil)
	}

	reviewer, err := uc.userRepo.GetByID(ctx, reviewerID)
	if err != nil {
		return nil, err
	}

	review := &entity.Review{
		ServiceID:      serviceID,
		ReviewerID:     reviewerID,
		Rating:         input.Rating,
		Text:           input.Text,
		ReviewerName:   reviewer.Name,
		ReviewerAvatar: reviewer.AvatarURL,
	}

	service, err := uc.reviewRepo.Submit(ctx, review)
	if err != nil {
		return nil, err
	}

	return &SubmitReviewResult{
		Review:        review,
		ReviewCount:   service.ReviewCount,
		AverageRating: service.AverageRating,
	}, nil
}

func (uc *ReviewUseCase) ListReviews(ctx context.Context, serviceID string, limit, offset int) ([]*entity.Review, int64, error) {
	return uc.reviewRepo.ListByService(ctx, serviceID, limit, offset)
}
