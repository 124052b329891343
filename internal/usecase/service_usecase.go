package usecase

import (
	"context"

	"hirelink/internal/domain/entity"
	"hirelink/internal/domain/repository"
	"hirelink/pkg/errors"
	"hirelink/pkg/logger"
)

type ServiceUseCase struct {
	serviceRepo repository.ServiceRepository
	userRepo    repository.UserRepository
	outboxRepo  repository.SyncOutboxRepository
	index       SearchIndex
}

func NewServiceUseCase(
	serviceRepo repository.ServiceRepository,
	userRepo repository.UserRepository,
	outboxRepo repository.SyncOutboxRepository,
	index SearchIndex,
) *ServiceUseCase {
	return &ServiceUseCase{
		serviceRepo: serviceRepo,
		userRepo:    userRepo,
		outboxRepo:  outboxRepo,
		index:       index,
	}
}

type CreateServiceInput struct {
	Title         string  `json:"title" validate:"required,min=3,max=120"`
	Category      string  `json:"category" validate:"required"`
	Description   string  `json:"description" validate:"required,min=10"`
	Location      string  `json:"location" validate:"required"`
	Price         float64 `json:"price" validate:"required,gt=0"`
	PriceUnit     string  `json:"price_unit"`
	CoverImageURL string  `json:"cover_image_url"`
}

type UpdateServiceInput struct {
	Title         string  `json:"title"`
	Category      string  `json:"category"`
	Description   string  `json:"description"`
	Location      string  `json:"location"`
	Price         float64 `json:"price" validate:"omitempty,gt=0"`
	PriceUnit     string  `json:"price_unit"`
	CoverImageURL string  `json:"cover_image_url"`
}

func (uc *ServiceUseCase) CreateService(ctx context.Context, providerID string, input CreateServiceInput) (*entity.Service, error) {
	provider, err := uc.userRepo.GetByID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if !provider.IsProvider() {
		return nil, errors.Forbidden("Only providers can create services", nil)
	}

	service := &entity.Service{
		ProviderID:     providerID,
		Title:          input.Title,
		Category:       input.Category,
		Description:    input.Description,
		Location:       input.Location,
		Price:          input.Price,
		PriceUnit:      input.PriceUnit,
		CoverImageURL:  input.CoverImageURL,
		ProviderName:   provider.Name,
		ProviderAvatar: provider.AvatarURL,
	}
	service.Keywords = entity.BuildKeywords(service.Title, service.Category, service.Description, service.Location)

	intent := &entity.SyncIntent{Op: entity.SyncOpUpsert}
	if err := uc.serviceRepo.Create(ctx, service, intent); err != nil {
		return nil, err
	}

	uc.pushToIndex(ctx, service, intent)

	return service, nil
}

func (uc *ServiceUseCase) GetService(ctx context.Context, id string) (*entity.Service, error) {
	return uc.serviceRepo.GetByID(ctx, id)
}

func (uc *ServiceUseCase) ListServices(ctx context.Context, category string, limit, offset int) ([]*entity.Service, int64, error) {
	return uc.serviceRepo.List(ctx, category, limit, offset)
}

func (uc *ServiceUseCase) ListMyServices(ctx context.Context, providerID string, limit, offset int) ([]*entity.Service, int64, error) {
	return uc.serviceRepo.ListByProviderID(ctx, providerID, limit, offset)
}

func (uc *ServiceUseCase) UpdateService(ctx context.Context, id, callerID string, input UpdateServiceInput) (*entity.Service, error) {
	service, err := uc.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if service.ProviderID != callerID {
		return nil, errors.Forbidden("You don't have permission to update this service", nil)
	}

	if input.Title != "" {
		service.Title = input.Title
	}
	if input.Category != "" {
		service.Category = input.Category
	}
	if input.Description != "" {
		service.Description = input.Description
	}
	if input.Location != "" {
		service.Location = input.Location
	}
	if input.Price > 0 {
		service.Price = input.Price
	}
	if input.PriceUnit != "" {
		service.PriceUnit = input.PriceUnit
	}
	if input.CoverImageURL != "" {
		service.CoverImageURL = input.CoverImageURL
	}
	service.Keywords = entity.BuildKeywords(service.Title, service.Category, service.Description, service.Location)

	intent := &entity.SyncIntent{Op: entity.SyncOpUpsert}
	if err := uc.serviceRepo.Update(ctx, service, intent); err != nil {
		return nil, err
	}

	uc.pushToIndex(ctx, service, intent)

	return service, nil
}

func (uc *ServiceUseCase) DeleteService(ctx context.Context, id, callerID string) error {
	service, err := uc.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if service.ProviderID != callerID {
		return errors.Forbidden("You don't have permission to delete this service", nil)
	}

	intent := &entity.SyncIntent{Op: entity.SyncOpDelete}
	if err := uc.serviceRepo.Delete(ctx, id, intent); err != nil {
		return err
	}

	if err := uc.index.Delete(ctx, id); err != nil {
		logger.Warn("Index delete failed for %s, retry worker will pick it up: %v", id, err)
		return nil
	}
	uc.settleIntent(ctx, intent)

	return nil
}

// AdminDeleteService removes a listing without an ownership check. Reserved
// for the moderation surface.
func (uc *ServiceUseCase) AdminDeleteService(ctx context.Context, id string) error {
	if _, err := uc.serviceRepo.GetByID(ctx, id); err != nil {
		return err
	}

	intent := &entity.SyncIntent{Op: entity.SyncOpDelete}
	if err := uc.serviceRepo.Delete(ctx, id, intent); err != nil {
		return err
	}

	if err := uc.index.Delete(ctx, id); err != nil {
		logger.Warn("Index delete failed for %s, retry worker will pick it up: %v", id, err)
		return nil
	}
	uc.settleIntent(ctx, intent)

	return nil
}

// pushToIndex attempts the index write inline so searches see fresh listings
// immediately. The intent committed alongside the primary write stays pending
// for the retry worker unless the inline write lands.
func (uc *ServiceUseCase) pushToIndex(ctx context.Context, service *entity.Service, intent *entity.SyncIntent) {
	if err := uc.index.Upsert(ctx, service.ID, service.SearchRecord()); err != nil {
		logger.Warn("Index upsert failed for %s, retry worker will pick it up: %v", service.ID, err)
		return
	}
	uc.settleIntent(ctx, intent)
}

func (uc *ServiceUseCase) settleIntent(ctx context.Context, intent *entity.SyncIntent) {
	if intent == nil || intent.ID == "" {
		return
	}
	if err := uc.outboxRepo.MarkDone(ctx, intent.ID); err != nil {
		// Worst case the worker replays an already-applied write; every sync
		// op is idempotent against the index.
		logger.Warn("Failed to settle sync intent %s: %v", intent.ID, err)
	}
}
