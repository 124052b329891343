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

const (
	servicesCollection   = "services"
	syncOutboxCollection = "sync_outbox"
)

type firestoreServiceRepository struct {
	client *firestore.Client
}

func NewFirestoreServiceRepository(client *firestore.Client) repository.ServiceRepository {
	return &firestoreServiceRepository{
		client: client,
	}
}

func prepareIntent(intent *entity.SyncIntent) {
	if intent.ID == "" {
		intent.ID = uuid.New().String()
	}
	now := time.Now()
	intent.Status = entity.SyncStatusPending
	intent.CreatedAt = now
	intent.UpdatedAt = now
}

func (r *firestoreServiceRepository) Create(ctx context.Context, service *entity.Service, intent *entity.SyncIntent) error {
	if service.ID == "" {
		service.ID = uuid.New().String()
	}

	now := time.Now()
	service.CreatedAt = now
	service.UpdatedAt = now

	// The listing and its sync intent commit together, so a crash after this
	// point can only leave the index stale, never unreachable by the retry
	// worker.
	batch := r.client.Batch()
	batch.Set(r.client.Collection(servicesCollection).Doc(service.ID), service)
	if intent != nil {
		intent.ObjectID = service.ID
		prepareIntent(intent)
		batch.Set(r.client.Collection(syncOutboxCollection).Doc(intent.ID), intent)
	}

	if _, err := batch.Commit(ctx); err != nil {
		return errors.Internal("Failed to create service", err)
	}

	return nil
}

func (r *firestoreServiceRepository) Update(ctx context.Context, service *entity.Service, intent *entity.SyncIntent) error {
	service.UpdatedAt = time.Now()

	batch := r.client.Batch()
	batch.Set(r.client.Collection(servicesCollection).Doc(service.ID), service)
	if intent != nil {
		intent.ObjectID = service.ID
		prepareIntent(intent)
		batch.Set(r.client.Collection(syncOutboxCollection).Doc(intent.ID), intent)
	}

	if _, err := batch.Commit(ctx); err != nil {
		return errors.Internal("Failed to update service", err)
	}

	return nil
}

func (r *firestoreServiceRepository) Delete(ctx context.Context, id string, intent *entity.SyncIntent) error {
	batch := r.client.Batch()
	batch.Delete(r.client.Collection(servicesCollection).Doc(id))
	if intent != nil {
		intent.ObjectID = id
		prepareIntent(intent)
		batch.Set(r.client.Collection(syncOutboxCollection).Doc(intent.ID), intent)
	}

	if _, err := batch.Commit(ctx); err != nil {
		return errors.Internal("Failed to delete service", err)
	}

	return nil
}

func (r *firestoreServiceRepository) GetByID(ctx context.Context, id string) (*entity.Service, error) {
	doc, err := r.client.Collection(servicesCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Service", err)
		}
		return nil, errors.Internal("Failed to get service", err)
	}

	var service entity.Service
	if err := doc.DataTo(&service); err != nil {
		return nil, errors.Internal("Failed to parse service data", err)
	}

	return &service, nil
}

func (r *firestoreServiceRepository) List(ctx context.Context, category string, limit, offset int) ([]*entity.Service, int64, error) {
	query := r.client.Collection(servicesCollection).Query
	if category != "" && category != "All" {
		query = query.Where("category", "==", category)
	}
	query = query.OrderBy("createdAt", firestore.Desc)

	return r.collect(ctx, query, limit, offset)
}

func (r *firestoreServiceRepository) ListByProviderID(ctx context.Context, providerID string, limit, offset int) ([]*entity.Service, int64, error) {
	query := r.client.Collection(servicesCollection).
		Where("providerId", "==", providerID).
		OrderBy("createdAt", firestore.Desc)

	return r.collect(ctx, query, limit, offset)
}

func (r *firestoreServiceRepository) collect(ctx context.Context, query firestore.Query, limit, offset int) ([]*entity.Service, int64, error) {
	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to list services", err)
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

	var services []*entity.Service
	for _, doc := range allDocs[start:end] {
		var service entity.Service
		if err := doc.DataTo(&service); err != nil {
			return nil, 0, errors.Internal("Failed to parse service data", err)
		}
		services = append(services, &service)
	}

	return services, total, nil
}

func (r *firestoreServiceRepository) UpdateProviderFields(ctx context.Context, providerID, name, avatarURL string) ([]string, error) {
	docs, err := r.client.Collection(servicesCollection).
		Where("providerId", "==", providerID).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to load provider services", err)
	}

	if len(docs) == 0 {
		return nil, nil
	}

	batch := r.client.Batch()
	ids := make([]string, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, doc.Ref.ID)
		batch.Update(doc.Ref, []firestore.Update{
			{Path: "providerName", Value: name},
			{Path: "providerAvatar", Value: avatarURL},
			{Path: "updatedAt", Value: time.Now()},
		})
	}

	if _, err := batch.Commit(ctx); err != nil {
		return nil, errors.Internal("Failed to update provider fields", err)
	}

	return ids, nil
}
