package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hirelink/internal/domain/entity"
	"hirelink/pkg/errors"
)

// fakeReviewRepo mirrors the transactional submit rules: listing must exist,
// no self-reviews, one review per reviewer.
type fakeReviewRepo struct {
	services map[string]*entity.Service
	reviews  map[string]map[string]*entity.Review
}

func newFakeReviewRepo(services ...*entity.Service) *fakeReviewRepo {
	repo := &fakeReviewRepo{
		services: make(map[string]*entity.Service),
		reviews:  make(map[string]map[string]*entity.Review),
	}
	for _, s := range services {
		repo.services[s.ID] = s
	}
	return repo
}

func (r *fakeReviewRepo) Submit(ctx context.Context, review *entity.Review) (*entity.Service, error) {
	service, ok := r.services[review.ServiceID]
	if !ok {
		return nil, errors.NotFound("Service", nil)
	}
	if service.ProviderID == review.ReviewerID {
		return nil, errors.InvalidOperation("You cannot review your own service")
	}
	if _, exists := r.reviews[review.ServiceID][review.ReviewerID]; exists {
		return nil, errors.Conflict("You have already reviewed this service")
	}

	review.ID = review.ReviewerID
	review.ProviderID = service.ProviderID
	service.ApplyReview(review.Rating)

	if r.reviews[review.ServiceID] == nil {
		r.reviews[review.ServiceID] = make(map[string]*entity.Review)
	}
	r.reviews[review.ServiceID][review.ReviewerID] = review

	return service, nil
}

func (r *fakeReviewRepo) ListByService(ctx context.Context, serviceID string, limit, offset int) ([]*entity.Review, int64, error) {
	var reviews []*entity.Review
	for _, review := range r.reviews[serviceID] {
		reviews = append(reviews, review)
	}
	return reviews, int64(len(reviews)), nil
}

func newReviewFixture(services ...*entity.Service) (*ReviewUseCase, *fakeReviewRepo) {
	reviewRepo := newFakeReviewRepo(services...)
	userRepo := newFakeUserRepo(
		&entity.User{ID: "prov-1", Name: "Pat Provider", Role: entity.RoleProvider},
		&entity.User{ID: "seeker-1", Name: "Sam Seeker", Role: entity.RoleSeeker, AvatarURL: "https://cdn.example/sam.png"},
	)
	return NewReviewUseCase(reviewRepo, userRepo), reviewRepo
}

func TestSubmitReviewDenormalizesReviewer(t *testing.T) {
	uc, _ := newReviewFixture(&entity.Service{ID: "svc-1", ProviderID: "prov-1"})

	result, err := uc.SubmitReview(context.Background(), "svc-1", "seeker-1", SubmitReviewInput{
		Rating: 4,
		Text:   "Great work",
	})
	require.NoError(t, err)

	assert.Equal(t, "seeker-1", result.Review.ID)
	assert.Equal(t, "Sam Seeker", result.Review.ReviewerName)
	assert.Equal(t, "https://cdn.example/sam.png", result.Review.ReviewerAvatar)
	assert.Equal(t, 1, result.ReviewCount)
	assert.InDelta(t, 4.0, result.AverageRating, 0.0001)
}

func TestSubmitReviewRatingBounds(t *testing.T) {
	uc, _ := newReviewFixture(&entity.Service{ID: "svc-1", ProviderID: "prov-1"})

	for _, rating := range []int{0, 6, -1} {
		_, err := uc.SubmitReview(context.Background(), "svc-1", "seeker-1", SubmitReviewInput{Rating: rating, Text: "meh"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, "BAD_REQUEST"))
	}
}

func TestSubmitReviewSelfReview(t *testing.T) {
	uc, _ := newReviewFixture(&entity.Service{ID: "svc-1", ProviderID: "prov-1"})

	_, err := uc.SubmitReview(context.Background(), "svc-1", "prov-1", SubmitReviewInput{Rating: 5, Text: "I am great"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, "INVALID_OPERATION"))
}

func TestSubmitReviewDuplicate(t *testing.T) {
	uc, _ := newReviewFixture(&entity.Service{ID: "svc-1", ProviderID: "prov-1"})

	_, err := uc.SubmitReview(context.Background(), "svc-1", "seeker-1", SubmitReviewInput{Rating: 4, Text: "First"})
	require.NoError(t, err)

	_, err = uc.SubmitReview(context.Background(), "svc-1", "seeker-1", SubmitReviewInput{Rating: 5, Text: "Second"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestSubmitReviewUnknownService(t *testing.T) {
	uc, _ := newReviewFixture()

	_, err := uc.SubmitReview(context.Background(), "svc-gone", "seeker-1", SubmitReviewInput{Rating: 4, Text: "Hello"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}
