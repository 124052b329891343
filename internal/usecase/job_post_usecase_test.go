package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hirelink/internal/domain/entity"
	"hirelink/pkg/errors"
)

type fakeJobPostRepo struct {
	posts  map[string]*entity.JobPost
	nextID int
}

func newFakeJobPostRepo(posts ...*entity.JobPost) *fakeJobPostRepo {
	repo := &fakeJobPostRepo{posts: make(map[string]*entity.JobPost)}
	for _, p := range posts {
		repo.posts[p.ID] = p
	}
	return repo
}

func (r *fakeJobPostRepo) Create(ctx context.Context, post *entity.JobPost) error {
	r.nextID++
	post.ID = fmt.Sprintf("job-%d", r.nextID)
	r.posts[post.ID] = post
	return nil
}

func (r *fakeJobPostRepo) GetByID(ctx context.Context, id string) (*entity.JobPost, error) {
	post, ok := r.posts[id]
	if !ok {
		return nil, errors.NotFound("Job post", nil)
	}
	return post, nil
}

func (r *fakeJobPostRepo) List(ctx context.Context, category, status string, limit, offset int) ([]*entity.JobPost, int64, error) {
	var posts []*entity.JobPost
	for _, p := range r.posts {
		if category != "" && p.Category != category {
			continue
		}
		if status != "" && p.Status != status {
			continue
		}
		posts = append(posts, p)
	}
	return posts, int64(len(posts)), nil
}

func (r *fakeJobPostRepo) ListBySeekerID(ctx context.Context, seekerID string, limit, offset int) ([]*entity.JobPost, int64, error) {
	var posts []*entity.JobPost
	for _, p := range r.posts {
		if p.SeekerID == seekerID {
			posts = append(posts, p)
		}
	}
	return posts, int64(len(posts)), nil
}

func (r *fakeJobPostRepo) Update(ctx context.Context, post *entity.JobPost) error {
	r.posts[post.ID] = post
	return nil
}

func (r *fakeJobPostRepo) Delete(ctx context.Context, id string) error {
	delete(r.posts, id)
	return nil
}

func (r *fakeJobPostRepo) IncrementProposalCount(ctx context.Context, id string) error {
	post, ok := r.posts[id]
	if !ok {
		return errors.NotFound("Job post", nil)
	}
	post.ProposalCount++
	return nil
}

func newJobPostFixture(posts ...*entity.JobPost) (*JobPostUseCase, *fakeJobPostRepo) {
	jobPostRepo := newFakeJobPostRepo(posts...)
	userRepo := newFakeUserRepo(
		&entity.User{ID: "seeker-1", Name: "Sam Seeker", Role: entity.RoleSeeker, AvatarURL: "https://cdn.example/sam.png"},
		&entity.User{ID: "prov-1", Name: "Pat Provider", Role: entity.RoleProvider},
	)
	return NewJobPostUseCase(jobPostRepo, userRepo), jobPostRepo
}

func TestCreateJobPostSnapshotsSeeker(t *testing.T) {
	uc, _ := newJobPostFixture()

	post, err := uc.CreateJobPost(context.Background(), "seeker-1", CreateJobPostInput{
		Title:       "Fix leaking tap",
		Category:    "Plumbing",
		Description: "Kitchen tap has been dripping for a week",
		Budget:      80,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.JobStatusOpen, post.Status)
	assert.Equal(t, "Sam Seeker", post.SeekerName)
	assert.Equal(t, "https://cdn.example/sam.png", post.SeekerAvatar)
	assert.Zero(t, post.ProposalCount)
}

func TestUpdateJobPostOwnershipEnforced(t *testing.T) {
	uc, _ := newJobPostFixture(&entity.JobPost{ID: "job-1", SeekerID: "seeker-1", Status: entity.JobStatusOpen})

	_, err := uc.UpdateJobPost(context.Background(), "job-1", "prov-1", UpdateJobPostInput{Title: "Hijacked"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestSubmitProposal(t *testing.T) {
	uc, _ := newJobPostFixture(&entity.JobPost{ID: "job-1", SeekerID: "seeker-1", Status: entity.JobStatusOpen})

	post, err := uc.SubmitProposal(context.Background(), "job-1", "prov-1")
	require.NoError(t, err)
	assert.Equal(t, 1, post.ProposalCount)
}

func TestSubmitProposalSeekerForbidden(t *testing.T) {
	uc, _ := newJobPostFixture(&entity.JobPost{ID: "job-1", SeekerID: "seeker-1", Status: entity.JobStatusOpen})

	_, err := uc.SubmitProposal(context.Background(), "job-1", "seeker-1")

	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestSubmitProposalClosedPost(t *testing.T) {
	uc, _ := newJobPostFixture(&entity.JobPost{ID: "job-1", SeekerID: "seeker-1", Status: entity.JobStatusClosed})

	_, err := uc.SubmitProposal(context.Background(), "job-1", "prov-1")

	require.Error(t, err)
	assert.True(t, errors.Is(err, "INVALID_OPERATION"))
}
