package deliveryrepo_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/deliveryrepo"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// noopTracker satisfies the aggregate tracking dependency in unit tests.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&deliveryrepo.DeliveryDTO{}))
	return db
}

func newTestRepo(t *testing.T) *deliveryrepo.GormDeliveryRepository {
	return deliveryrepo.NewGormDeliveryRepository(newTestDB(t), noopTracker{})
}

type recordParties struct {
	trainerID kernel.UUID
	clientID  kernel.UUID
	trainer   delivery.Actor
	client    delivery.Actor
}

func newRecordParties(t *testing.T) recordParties {
	t.Helper()

	trainerID := kernel.NewUUID()
	clientID := kernel.NewUUID()
	trainer, err := delivery.NewActor(trainerID, delivery.RoleTrainer)
	require.NoError(t, err)
	client, err := delivery.NewActor(clientID, delivery.RoleClient)
	require.NoError(t, err)

	return recordParties{trainerID: trainerID, clientID: clientID, trainer: trainer, client: client}
}

func newRecord(t *testing.T, parties recordParties) *delivery.DeliveryRecord {
	t.Helper()

	record, err := delivery.NewDeliveryRecord(
		kernel.NewUUID(), parties.trainerID, parties.clientID,
		"Massage Gun", 1, delivery.MethodShipped,
	)
	require.NoError(t, err)
	return record
}

func TestGormDeliveryRepository_AddAndGet(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	parties := newRecordParties(t)

	record := newRecord(t, parties)
	orderID := kernel.NewUUID()
	orderItemID := kernel.NewUUID()
	require.NoError(t, record.AttachOrder(orderID, orderItemID))
	require.NoError(t, record.SetTrackingNumber("TRK-001"))
	record.SetNotes("leave with reception")

	require.NoError(t, repo.Add(ctx, record))

	loaded, err := repo.Get(ctx, record.ID())
	require.NoError(t, err)
	assert.True(t, loaded.IsEqual(record))
	assert.Equal(t, delivery.StatusPending, loaded.Status())
	assert.Equal(t, "Massage Gun", loaded.ProductName())
	assert.Equal(t, delivery.MethodShipped, loaded.DeliveryMethod())
	assert.Equal(t, "TRK-001", loaded.TrackingNumber())
	assert.Equal(t, "leave with reception", loaded.Notes())
	require.NotNil(t, loaded.OrderID())
	assert.True(t, loaded.OrderID().IsEqual(orderID))
	assert.Equal(t, int64(1), loaded.Version())
}

func TestGormDeliveryRepository_Get_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	_, err := repo.Get(ctx, kernel.NewUUID())

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestGormDeliveryRepository_Update_AdvancesVersion(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	parties := newRecordParties(t)
	record := newRecord(t, parties)
	require.NoError(t, repo.Add(ctx, record))

	require.NoError(t, record.MarkReady(parties.trainer))
	require.NoError(t, repo.Update(ctx, record))

	assert.Equal(t, int64(2), record.Version())

	loaded, err := repo.Get(ctx, record.ID())
	require.NoError(t, err)
	assert.Equal(t, delivery.StatusReady, loaded.Status())
	assert.Equal(t, int64(2), loaded.Version())
}

func TestGormDeliveryRepository_Update_StaleVersionConflicts(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	parties := newRecordParties(t)
	record := newRecord(t, parties)
	require.NoError(t, repo.Add(ctx, record))

	// Two copies of the same row, as two concurrent requests would hold.
	first, err := repo.Get(ctx, record.ID())
	require.NoError(t, err)
	second, err := repo.Get(ctx, record.ID())
	require.NoError(t, err)

	require.NoError(t, first.MarkReady(parties.trainer))
	require.NoError(t, repo.Update(ctx, first))

	require.NoError(t, second.Cancel(parties.client, "changed my mind"))
	err = repo.Update(ctx, second)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrConcurrencyConflict)

	// The losing write left no trace.
	loaded, err := repo.Get(ctx, record.ID())
	require.NoError(t, err)
	assert.Equal(t, delivery.StatusReady, loaded.Status())
	assert.Empty(t, loaded.CancelReason())
}

func TestGormDeliveryRepository_Update_PersistsAndClearsReschedule(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	parties := newRecordParties(t)
	record := newRecord(t, parties)
	require.NoError(t, record.MarkScheduled(parties.trainer, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, repo.Add(ctx, record))

	proposed := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	require.NoError(t, record.RequestReschedule(parties.client, &proposed, "vacation", time.Now()))
	require.NoError(t, repo.Update(ctx, record))

	loaded, err := repo.Get(ctx, record.ID())
	require.NoError(t, err)
	req := loaded.RescheduleRequest()
	require.NotNil(t, req)
	assert.Equal(t, proposed, req.RequestedDate().UTC())
	assert.Equal(t, "vacation", req.Reason())

	require.NoError(t, loaded.ApproveReschedule(parties.trainer, proposed))
	require.NoError(t, repo.Update(ctx, loaded))

	reloaded, err := repo.Get(ctx, record.ID())
	require.NoError(t, err)
	assert.Nil(t, reloaded.RescheduleRequest())
	require.NotNil(t, reloaded.ScheduledDate())
	assert.Equal(t, proposed, reloaded.ScheduledDate().UTC())
}

func TestGormDeliveryRepository_Get_AdoptsLegacyNotePayload(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := deliveryrepo.NewGormDeliveryRepository(db, noopTracker{})
	parties := newRecordParties(t)
	record := newRecord(t, parties)
	require.NoError(t, record.MarkScheduled(parties.trainer, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, repo.Add(ctx, record))

	t.Run("versioned payload is adopted and stripped from the note", func(t *testing.T) {
		note := delivery.RescheduleNotePrefix + `{"requestedDate":"2026-08-15","reason":"moving houses"}`
		require.NoError(t, db.Model(&deliveryrepo.DeliveryDTO{}).
			Where("id = ?", record.ID().Bytes()).
			Update("client_notes", note).Error)

		loaded, err := repo.Get(ctx, record.ID())
		require.NoError(t, err)

		req := loaded.RescheduleRequest()
		require.NotNil(t, req)
		assert.Equal(t, "moving houses", req.Reason())
		require.NotNil(t, req.RequestedDate())
		assert.Equal(t, time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), req.RequestedDate().UTC())
		assert.Empty(t, loaded.ClientNotes())

		// The next write migrates the row to the structured columns.
		require.NoError(t, repo.Update(ctx, loaded))
		reloaded, err := repo.Get(ctx, record.ID())
		require.NoError(t, err)
		require.NotNil(t, reloaded.RescheduleRequest())
		assert.Equal(t, "moving houses", reloaded.RescheduleRequest().Reason())
		assert.Empty(t, reloaded.ClientNotes())
	})

	t.Run("free-text marker is adopted and the encoded note dropped", func(t *testing.T) {
		require.NoError(t, db.Model(&deliveryrepo.DeliveryDTO{}).
			Where("id = ?", record.ID().Bytes()).
			Updates(map[string]any{
				"client_notes":            "Reschedule requested: client has a conflict",
				"reschedule_date":         nil,
				"reschedule_reason":       nil,
				"reschedule_requested_at": nil,
			}).Error)

		loaded, err := repo.Get(ctx, record.ID())
		require.NoError(t, err)

		req := loaded.RescheduleRequest()
		require.NotNil(t, req)
		assert.Equal(t, "client has a conflict", req.Reason())
		assert.Nil(t, req.RequestedDate())
		assert.Empty(t, loaded.ClientNotes())
	})
}

func TestGormDeliveryRepository_RejectedLegacyRequestStaysResolved(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := deliveryrepo.NewGormDeliveryRepository(db, noopTracker{})
	parties := newRecordParties(t)
	record := newRecord(t, parties)
	require.NoError(t, record.MarkScheduled(parties.trainer, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, repo.Add(ctx, record))

	require.NoError(t, db.Model(&deliveryrepo.DeliveryDTO{}).
		Where("id = ?", record.ID().Bytes()).
		Update("client_notes", "Reschedule requested: client has a conflict").Error)

	loaded, err := repo.Get(ctx, record.ID())
	require.NoError(t, err)
	require.NotNil(t, loaded.RescheduleRequest())

	require.NoError(t, loaded.RejectReschedule(parties.trainer))
	require.NoError(t, repo.Update(ctx, loaded))

	// The rejection is final; the marker must not revive the request.
	reloaded, err := repo.Get(ctx, record.ID())
	require.NoError(t, err)
	assert.Nil(t, reloaded.RescheduleRequest())
	assert.Empty(t, reloaded.ClientNotes())
}

func TestGormDeliveryRepository_GetAllByParty(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	parties := newRecordParties(t)
	other := newRecordParties(t)

	first := newRecord(t, parties)
	second := newRecord(t, parties)
	foreign := newRecord(t, other)
	require.NoError(t, repo.Add(ctx, first))
	require.NoError(t, repo.Add(ctx, second))
	require.NoError(t, repo.Add(ctx, foreign))

	forTrainer, err := repo.GetAllForTrainer(ctx, parties.trainerID)
	require.NoError(t, err)
	require.Len(t, forTrainer, 2)
	assert.True(t, forTrainer[0].IsEqual(first))
	assert.True(t, forTrainer[1].IsEqual(second))

	forClient, err := repo.GetAllForClient(ctx, parties.clientID)
	require.NoError(t, err)
	assert.Len(t, forClient, 2)

	forOther, err := repo.GetAllForClient(ctx, other.clientID)
	require.NoError(t, err)
	require.Len(t, forOther, 1)
	assert.True(t, forOther[0].IsEqual(foreign))
}
