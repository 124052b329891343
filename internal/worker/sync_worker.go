package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"hirelink/internal/domain/entity"
	"hirelink/internal/domain/repository"
	"hirelink/internal/usecase"
	"hirelink/pkg/errors"
	"hirelink/pkg/logger"
)

const drainBatchSize = 50

// SyncWorker drains the sync outbox on a schedule, replaying pending index
// writes until each one lands or exhausts its attempts. Every replay is
// idempotent against the index, so overlap with inline sync writes is safe.
type SyncWorker struct {
	outboxRepo  repository.SyncOutboxRepository
	serviceRepo repository.ServiceRepository
	index       usecase.SearchIndex
	maxAttempts int
	cron        *cron.Cron
}

func NewSyncWorker(
	outboxRepo repository.SyncOutboxRepository,
	serviceRepo repository.ServiceRepository,
	index usecase.SearchIndex,
	maxAttempts int,
) *SyncWorker {
	return &SyncWorker{
		outboxRepo:  outboxRepo,
		serviceRepo: serviceRepo,
		index:       index,
		maxAttempts: maxAttempts,
	}
}

// Start schedules the drain loop. The schedule accepts cron specs and the
// @every shorthand.
func (w *SyncWorker) Start(schedule string) error {
	w.cron = cron.New()
	if _, err := w.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		w.Drain(ctx)
	}); err != nil {
		return fmt.Errorf("invalid sync schedule %q: %w", schedule, err)
	}
	w.cron.Start()
	logger.Info("Sync worker started with schedule %s", schedule)
	return nil
}

func (w *SyncWorker) Stop() {
	if w.cron != nil {
		w.cron.Stop()
	}
}

// Drain processes one batch of pending intents, oldest first.
func (w *SyncWorker) Drain(ctx context.Context) {
	intents, err := w.outboxRepo.ListPending(ctx, drainBatchSize)
	if err != nil {
		logger.Error("Failed to list pending sync intents: %v", err)
		return
	}

	for _, intent := range intents {
		if err := w.apply(ctx, intent); err != nil {
			attempts := intent.Attempts + 1
			permanent := attempts >= w.maxAttempts
			if permanent {
				logger.Error("Sync intent %s for %s failed permanently after %d attempts: %v",
					intent.ID, intent.ObjectID, attempts, err)
			}
			if markErr := w.outboxRepo.MarkFailed(ctx, intent.ID, attempts, err.Error(), permanent); markErr != nil {
				logger.Error("Failed to record sync failure for %s: %v", intent.ID, markErr)
			}
			continue
		}

		if err := w.outboxRepo.MarkDone(ctx, intent.ID); err != nil {
			logger.Warn("Failed to settle sync intent %s: %v", intent.ID, err)
		}
	}
}

func (w *SyncWorker) apply(ctx context.Context, intent *entity.SyncIntent) error {
	switch intent.Op {
	case entity.SyncOpUpsert:
		record := intent.Payload
		if len(record) == 0 {
			// Intents written alongside primary writes carry no payload;
			// rebuild from the store so the replay reflects the latest edit.
			service, err := w.serviceRepo.GetByID(ctx, intent.ObjectID)
			if err != nil {
				if errors.Is(err, "NOT_FOUND") {
					// Deleted since. The delete intent handles the index.
					return nil
				}
				return err
			}
			record = service.SearchRecord()
		}
		return w.index.Upsert(ctx, intent.ObjectID, record)

	case entity.SyncOpUpdate:
		return w.index.PartialUpdate(ctx, intent.ObjectID, intent.Payload)

	case entity.SyncOpDelete:
		return w.index.Delete(ctx, intent.ObjectID)

	default:
		return fmt.Errorf("unknown sync op %q", intent.Op)
	}
}
