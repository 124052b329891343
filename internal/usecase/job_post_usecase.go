package usecase

import (
	"context"

	"hirelink/internal/domain/entity"
	"hirelink/internal/domain/repository"
	"hirelink/pkg/errors"
)

type JobPostUseCase struct {
	jobPostRepo repository.JobPostRepository
	userRepo    repository.UserRepository
}

func NewJobPostUseCase(jobPostRepo repository.JobPostRepository, userRepo repository.UserRepository) *JobPostUseCase {
	return &JobPostUseCase{
		jobPostRepo: jobPostRepo,
		userRepo:    userRepo,
	}
}

type CreateJobPostInput struct {
	Title       string  `json:"title" validate:"required,min=3,max=120"`
	Category    string  `json:"category" validate:"required"`
	Description string  `json:"description" validate:"required,min=10"`
	Budget      float64 `json:"budget" validate:"required,gt=0"`
	Location    string  `json:"location"`
}

type UpdateJobPostInput struct {
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Budget      float64 `json:"budget" validate:"omitempty,gt=0"`
	Location    string  `json:"location"`
	Status      string  `json:"status" validate:"omitempty,oneof=Open Closed"`
}

func (uc *JobPostUseCase) CreateJobPost(ctx context.Context, seekerID string, input CreateJobPostInput) (*entity.JobPost, error) {
	seeker, err := uc.userRepo.GetByID(ctx, seekerID)
	if err != nil {
		return nil, err
	}

	post := &entity.JobPost{
		SeekerID:     seekerID,
		Title:        input.Title,
		Category:     input.Category,
		Description:  input.Description,
		Budget:       input.Budget,
		Location:     input.Location,
		Status:       entity.JobStatusOpen,
		SeekerName:   seeker.Name,
		SeekerAvatar: seeker.AvatarURL,
	}

	if err := uc.jobPostRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (uc *JobPostUseCase) GetJobPost(ctx context.Context, id string) (*entity.JobPost, error) {
	return uc.jobPostRepo.GetByID(ctx, id)
}

func (uc *JobPostUseCase) ListJobPosts(ctx context.Context, category, status string, limit, offset int) ([]*entity.JobPost, int64, error) {
	return uc.jobPostRepo.List(ctx, category, status, limit, offset)
}

func (uc *JobPostUseCase) ListMyJobPosts(ctx context.Context, seekerID string, limit, offset int) ([]*entity.JobPost, int64, error) {
	return uc.jobPostRepo.ListBySeekerID(ctx, seekerID, limit, offset)
}

func (uc *JobPostUseCase) UpdateJobPost(ctx context.Context, id, callerID string, input UpdateJobPostInput) (*entity.JobPost, error) {
	post, err := uc.jobPostRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.SeekerID != callerID {
		return nil, errors.Forbidden("You don't have permission to update this job post", nil)
	}

	if input.Title != "" {
		post.Title = input.Title
	}
	if input.Category != "" {
		post.Category = input.Category
	}
	if input.Description != "" {
		post.Description = input.Description
	}
	if input.Budget > 0 {
		post.Budget = input.Budget
	}
	if input.Location != "" {
		post.Location = input.Location
	}
	if input.Status != "" {
		post.Status = input.Status
	}

	if err := uc.jobPostRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (uc *JobPostUseCase) DeleteJobPost(ctx context.Context, id, callerID string) error {
	post, err := uc.jobPostRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if post.SeekerID != callerID {
		return errors.Forbidden("You don't have permission to delete this job post", nil)
	}

	return uc.jobPostRepo.Delete(ctx, id)
}

// AdminDeleteJobPost removes a post without an ownership check. Reserved for
// the moderation surface.
func (uc *JobPostUseCase) AdminDeleteJobPost(ctx context.Context, id string) error {
	if _, err := uc.jobPostRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.jobPostRepo.Delete(ctx, id)
}

// SubmitProposal counts a provider's interest in a job post. The seeker only
// sees the tally; contact happens over chat.
func (uc *JobPostUseCase) SubmitProposal(ctx context.Context, id, providerID string) (*entity.JobPost, error) {
	provider, err := uc.userRepo.GetByID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if !provider.IsProvider() {
		return nil, errors.Forbidden("Only providers can submit proposals", nil)
	}

	post, err := uc.jobPostRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.SeekerID == providerID {
		return nil, errors.InvalidOperation("You cannot submit a proposal to your own job post")
	}
	if post.Status != entity.JobStatusOpen {
		return nil, errors.InvalidOperation("This job post is no longer open")
	}

	if err := uc.jobPostRepo.IncrementProposalCount(ctx, id); err != nil {
		return nil, err
	}
	post.ProposalCount++

	return post, nil
}
