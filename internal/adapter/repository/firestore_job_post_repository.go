package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"hirelink/internal/domain/entity"
	"hirelink/internal/domain/repository"
	"hirelink/pkg/errors"
)

const jobPostsCollection = "job_posts"

type firestoreJobPostRepository struct {
	client *firestore.Client
}

func NewFirestoreJobPostRepository(client *firestore.Client) repository.JobPostRepository {
	return &firestoreJobPostRepository{
		client: client,
	}
}

func (r *firestoreJobPostRepository) Create(ctx context.Context, post *entity.JobPost) error {
	if post.ID == "" {
		post.ID = uuid.New().String()
	}

	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	_, err := r.client.Collection(jobPostsCollection).Doc(post.ID).Set(ctx, post)
	if err != nil {
		return errors.Internal("Failed to create job post", err)
	}

	return nil
}

func (r *firestoreJobPostRepository) GetByID(ctx context.Context, id string) (*entity.JobPost, error) {
	doc, err := r.client.Collection(jobPostsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Job post", err)
		}
		return nil, errors.Internal("Failed to get job post", err)
	}

	var post entity.JobPost
	if err := doc.DataTo(&post); err != nil {
		return nil, errors.Internal("Failed to parse job post data", err)
	}

	return &post, nil
}

func (r *firestoreJobPostRepository) List(ctx context.Context, category, status string, limit, offset int) ([]*entity.JobPost, int64, error) {
	query := r.client.Collection(jobPostsCollection).Query
	if category != "" && category != "All" {
		query = query.Where("category", "==", category)
	}
	if status != "" {
		query = query.Where("status", "==", status)
	}
	query = query.OrderBy("createdAt", firestore.Desc)

	return r.collect(ctx, query, limit, offset)
}

func (r *firestoreJobPostRepository) ListBySeekerID(ctx context.Context, seekerID string, limit, offset int) ([]*entity.JobPost, int64, error) {
	query := r.client.Collection(jobPostsCollection).
		Where("seekerId", "==", seekerID).
		OrderBy("createdAt", firestore.Desc)

	return r.collect(ctx, query, limit, offset)
}

func (r *firestoreJobPostRepository) collect(ctx context.Context, query firestore.Query, limit, offset int) ([]*entity.JobPost, int64, error) {
	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to list job posts", err)
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

	var posts []*entity.JobPost
	for _, doc := range allDocs[start:end] {
		var post entity.JobPost
		if err := doc.DataTo(&post); err != nil {
			return nil, 0, errors.Internal("Failed to parse job post data", err)
		}
		posts = append(posts, &post)
	}

	return posts, total, nil
}

func (r *firestoreJobPostRepository) Update(ctx context.Context, post *entity.JobPost) error {
	post.UpdatedAt = time.Now()

	_, err := r.client.Collection(jobPostsCollection).Doc(post.ID).Set(ctx, post)
	if err != nil {
		return errors.Internal("Failed to update job post", err)
	}

	return nil
}

func (r *firestoreJobPostRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(jobPostsCollection).Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete job post", err)
	}

	return nil
}

func (r *firestoreJobPostRepository) IncrementProposalCount(ctx context.Context, id string) error {
	_, err := r.client.Collection(jobPostsCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "proposalCount", Value: firestore.Increment(1)},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Job post", err)
		}
		return errors.Internal("Failed to increment proposal count", err)
	}

	return nil
}
