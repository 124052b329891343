package usecase

import (
	"context"
	"fmt"

	"hirelink/internal/domain/entity"
	"hirelink/internal/domain/repository"
	"hirelink/pkg/errors"
	"hirelink/pkg/logger"
)

// SyncUseCase keeps the search index converging on the primary store. Writes
// here never touch listing documents except for the provider fan-out; the
// primary write has always already happened by the time sync runs, so index
// failures are queued for retry instead of surfaced as hard errors.
type SyncUseCase struct {
	serviceRepo repository.ServiceRepository
	outboxRepo  repository.SyncOutboxRepository
	index       SearchIndex
}

func NewSyncUseCase(
	serviceRepo repository.ServiceRepository,
	outboxRepo  repository.SyncOutboxRepository,
	index SearchIndex,
) *SyncUseCase {
	return &SyncUseCase{
		serviceRepo: serviceRepo,
		outboxRepo:  outboxRepo,
		index:       index,
	}
}

// CreateOrUpdate upserts a caller-supplied listing record into the index.
// The record must carry its objectID and belong to the caller.
func (uc *SyncUseCase) CreateOrUpdate(ctx context.Context, callerID string, record map[string]interface{}) (string, error) {
	objectID, _ := record["objectID"].(string)
	if objectID == "" {
		return "", errors.BadRequest("Missing service data or objectID", nil)
	}

	providerID, _ := record["providerId"].(string)
	if providerID != callerID {
		return "", errors.Forbidden("You are not the owner of this service", nil)
	}

	if err := uc.index.Upsert(ctx, objectID, record); err != nil {
		uc.deferIntent(ctx, &entity.SyncIntent{
			ObjectID: objectID,
			Op:       entity.SyncOpUpsert,
			Payload:  record,
		}, err)
		return "Sync deferred; the index will catch up shortly", nil
	}

	return "Synced to search index", nil
}

// Delete removes a record from the index. Ownership is re-verified against
// the primary store; when the primary record is already gone the index
// delete proceeds as orphan cleanup.
func (uc *SyncUseCase) Delete(ctx context.Context, callerID, objectID string) (string, error) {
	if objectID == "" {
		return "", errors.BadRequest("Missing objectID in request body", nil)
	}

	service, err := uc.serviceRepo.GetByID(ctx, objectID)
	if err == nil {
		if service.ProviderID != callerID {
			return "", errors.Forbidden("You are not the owner of this service", nil)
		}
	} else if !errors.Is(err, "NOT_FOUND") {
		return "", err
	}

	if err := uc.index.Delete(ctx, objectID); err != nil {
		uc.deferIntent(ctx, &entity.SyncIntent{
			ObjectID: objectID,
			Op:       entity.SyncOpDelete,
		}, err)
		return "Delete deferred; the index will catch up shortly", nil
	}

	return "Removed from search index", nil
}

// UpdateProvider fans a provider's new name/avatar out to every listing they
// own: one batch against the primary store, then partial updates against the
// index, so a profile edit never needs N client-side sync calls.
func (uc *SyncUseCase) UpdateProvider(ctx context.Context, callerID, name, avatarURL string) (int, error) {
	if name == "" || avatarURL == "" {
		return 0, errors.BadRequest("Missing name or profilePicUrl", nil)
	}

	ids, err := uc.serviceRepo.UpdateProviderFields(ctx, callerID, name, avatarURL)
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}

	fields := map[string]interface{}{
		"providerName":   name,
		"providerAvatar": avatarURL,
	}
	for _, id := range ids {
		if err := uc.index.PartialUpdate(ctx, id, fields); err != nil {
			uc.deferIntent(ctx, &entity.SyncIntent{
				ObjectID: id,
				Op:       entity.SyncOpUpdate,
				Payload:  fields,
			}, err)
		}
	}

	logger.Info("Provider fan-out for %s touched %d services", callerID, len(ids))
	return len(ids), nil
}

// ProviderFanOutMessage is what the gateway reports back for a fan-out.
func ProviderFanOutMessage(count int) string {
	return fmt.Sprintf("%d services updated", count)
}

func (uc *SyncUseCase) Search(ctx context.Context, query, category string) ([]map[string]interface{}, error) {
	return uc.index.Search(ctx, query, category)
}

func (uc *SyncUseCase) deferIntent(ctx context.Context, intent *entity.SyncIntent, cause error) {
	logger.Warn("Index write failed for %s (%s), queuing retry: %v", intent.ObjectID, intent.Op, cause)
	if err := uc.outboxRepo.Enqueue(ctx, intent); err != nil {
		// Both the index and the outbox are down; the record stays stale
		// until the next successful sync of the same listing.
		logger.Error("Failed to enqueue sync intent for %s: %v", intent.ObjectID, err)
	}
}
