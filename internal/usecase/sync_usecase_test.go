package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hirelink/internal/domain/entity"
	"hirelink/pkg/errors"
)

func newSyncFixture(services ...*entity.Service) (*SyncUseCase, *fakeServiceRepo, *fakeOutboxRepo, *fakeIndex) {
	serviceRepo := newFakeServiceRepo(services...)
	outboxRepo := &fakeOutboxRepo{}
	index := newFakeIndex()
	return NewSyncUseCase(serviceRepo, outboxRepo, index), serviceRepo, outboxRepo, index
}

func TestSyncCreateOrUpdateMissingObjectID(t *testing.T) {
	uc, _, _, _ := newSyncFixture()

	_, err := uc.CreateOrUpdate(context.Background(), "prov-1", map[string]interface{}{
		"providerId": "prov-1",
		"title":      "No ID",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestSyncCreateOrUpdateWrongOwner(t *testing.T) {
	uc, _, _, index := newSyncFixture()

	_, err := uc.CreateOrUpdate(context.Background(), "mallory", map[string]interface{}{
		"objectID":   "svc-1",
		"providerId": "prov-1",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
	assert.Empty(t, index.docs)
}

func TestSyncCreateOrUpdateIndexesRecord(t *testing.T) {
	uc, _, outbox, index := newSyncFixture()

	record := map[string]interface{}{
		"objectID":   "svc-1",
		"providerId": "prov-1",
		"title":      "Garden Design",
	}
	_, err := uc.CreateOrUpdate(context.Background(), "prov-1", record)

	require.NoError(t, err)
	assert.Equal(t, record, index.docs["svc-1"])
	assert.Empty(t, outbox.enqueued)
}

func TestSyncCreateOrUpdateDefersOnIndexFailure(t *testing.T) {
	uc, _, outbox, index := newSyncFixture()
	index.failUpserts = true

	message, err := uc.CreateOrUpdate(context.Background(), "prov-1", map[string]interface{}{
		"objectID":   "svc-1",
		"providerId": "prov-1",
	})

	// A broken index is not the caller's problem: the intent is queued and
	// the call still succeeds.
	require.NoError(t, err)
	assert.Contains(t, message, "deferred")
	require.Len(t, outbox.enqueued, 1)
	assert.Equal(t, entity.SyncOpUpsert, outbox.enqueued[0].Op)
	assert.Equal(t, "svc-1", outbox.enqueued[0].ObjectID)
}

func TestSyncDeleteReVerifiesOwnership(t *testing.T) {
	uc, _, _, index := newSyncFixture(&entity.Service{ID: "svc-1", ProviderID: "prov-1"})

	_, err := uc.Delete(context.Background(), "mallory", "svc-1")

	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
	assert.Empty(t, index.deletes)
}

func TestSyncDeleteByOwner(t *testing.T) {
	uc, _, _, index := newSyncFixture(&entity.Service{ID: "svc-1", ProviderID: "prov-1"})

	_, err := uc.Delete(context.Background(), "prov-1", "svc-1")

	require.NoError(t, err)
	assert.Equal(t, []string{"svc-1"}, index.deletes)
}

func TestSyncDeleteOrphanRecordProceeds(t *testing.T) {
	// The primary record is already gone; the index delete is cleanup and
	// must not be blocked by the ownership check.
	uc, _, _, index := newSyncFixture()

	_, err := uc.Delete(context.Background(), "prov-1", "svc-gone")

	require.NoError(t, err)
	assert.Equal(t, []string{"svc-gone"}, index.deletes)
}

func TestSyncDeleteMissingObjectID(t *testing.T) {
	uc, _, _, _ := newSyncFixture()

	_, err := uc.Delete(context.Background(), "prov-1", "")

	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestSyncUpdateProviderFansOut(t *testing.T) {
	uc, _, _, index := newSyncFixture(
		&entity.Service{ID: "svc-1", ProviderID: "prov-1"},
		&entity.Service{ID: "svc-2", ProviderID: "prov-1"},
		&entity.Service{ID: "svc-3", ProviderID: "prov-2"},
	)

	count, err := uc.UpdateProvider(context.Background(), "prov-1", "New Name", "https://cdn.example/avatar.png")

	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.ElementsMatch(t, []string{"svc-1", "svc-2"}, index.partialUpdates)
}

func TestSyncUpdateProviderQueuesFailedUpdates(t *testing.T) {
	uc, _, outbox, index := newSyncFixture(&entity.Service{ID: "svc-1", ProviderID: "prov-1"})
	index.failPartials = true

	count, err := uc.UpdateProvider(context.Background(), "prov-1", "New Name", "https://cdn.example/avatar.png")

	require.NoError(t, err)
	assert.Equal(t, 1, count)
	require.Len(t, outbox.enqueued, 1)
	assert.Equal(t, entity.SyncOpUpdate, outbox.enqueued[0].Op)
}

func TestSyncUpdateProviderRequiresBothFields(t *testing.T) {
	uc, _, _, _ := newSyncFixture()

	_, err := uc.UpdateProvider(context.Background(), "prov-1", "", "https://cdn.example/avatar.png")
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	_, err = uc.UpdateProvider(context.Background(), "prov-1", "Name", "")
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}
