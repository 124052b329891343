package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"hirelink/internal/domain/entity"
	"hirelink/internal/domain/repository"
	"hirelink/pkg/errors"
)

type firestoreReviewRepository struct {
	client *firestore.Client
}

func NewFirestoreReviewRepository(client *firestore.Client) repository.ReviewRepository {
	return &firestoreReviewRepository{
		client: client,
	}
}

// Submit writes the review and the listing's count/average pair in one
// transaction. The review document ID is the reviewer's user ID, so the
// duplicate check and the concurrent-submission serialization both come from
// the same read inside the transaction.
func (r *firestoreReviewRepository) Submit(ctx context.Context, review *entity.Review) (*entity.Service, error) {
	serviceRef := r.client.Collection(servicesCollection).Doc(review.ServiceID)
	reviewRef := serviceRef.Collection("reviews").Doc(review.ReviewerID)

	var updated entity.Service

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		serviceDoc, err := tx.Get(serviceRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Service", err)
			}
			return errors.Internal("Failed to get service", err)
		}

		var service entity.Service
		if err := serviceDoc.DataTo(&service); err != nil {
			return errors.Internal("Failed to parse service data", err)
		}

		if service.ProviderID == review.ReviewerID {
			return errors.InvalidOperation("You cannot review your own service")
		}

		if _, err := tx.Get(reviewRef); err == nil {
			return errors.Conflict("You have already reviewed this service")
		} else if status.Code(err) != codes.NotFound {
			return errors.Internal("Failed to check existing review", err)
		}

		service.ApplyReview(review.Rating)
		service.UpdatedAt = time.Now()

		review.ID = review.ReviewerID
		review.ProviderID = service.ProviderID
		review.CreatedAt = time.Now()

		if err := tx.Set(serviceRef, &service); err != nil {
			return errors.Internal("Failed to update service rating", err)
		}
		if err := tx.Set(reviewRef, review); err != nil {
			return errors.Internal("Failed to create review", err)
		}

		updated = service
		return nil
	})

	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *firestoreReviewRepository) ListByService(ctx context.Context, serviceID string, limit, offset int) ([]*entity.Review, int64, error) {
	query := r.client.Collection(servicesCollection).Doc(serviceID).
		Collection("reviews").OrderBy("createdAt", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to list reviews", err)
	}

	total := int64(len(allDocs))

	start := offset
	if start > len(allDocs) {
		start = len(allDocs)
	}
	end := len(allDocs)
	if limit > 0 && start+limit < end {
		end = start + limit
	}

	var reviews []*entity.Review
	for _, doc := range allDocs[start:end] {
		var review entity.Review
		if err := doc.DataTo(&review); err != nil {
			return nil, 0, errors.Internal("Failed to parse review data", err)
		}
		reviews = append(reviews, &review)
	}

	return reviews, total, nil
}
