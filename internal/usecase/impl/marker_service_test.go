package impl

import (
	"context"
	"testing"
	"time"

	"lightmap/internal/domain/entity"
	domainerrors "lightmap/internal/domain/errors"
	"lightmap/internal/domain/repository"
	"lightmap/internal/geo"
	"lightmap/internal/infra/lock"
	"lightmap/internal/infra/persistence/memory"
	mockRepo "lightmap/internal/mocks/repository"
	mockSvc "lightmap/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type markerServiceFixture struct {
	service   *markerService
	markers   repository.MarkerRepository
	txManager repository.TransactionManager
}

func newMarkerServiceFixture(t *testing.T) markerServiceFixture {
	t.Helper()

	store := memory.NewStore()
	txManager := memory.NewTransactionManager(store)
	markers := memory.NewMarkerRepository(store)

	svc, ok := NewMarkerService(txManager, markers, lock.NewLocalLocker(), newTestConfig(), newDiscardLogger()).(*markerService)
	require.True(t, ok)
	svc.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }

	return markerServiceFixture{service: svc, markers: markers, txManager: txManager}
}

func (f markerServiceFixture) create(t *testing.T, marker *entity.LightMarker) *entity.LightMarker {
	t.Helper()
	require.NoError(t, f.markers.CreateMarker(context.Background(), marker))

	return marker
}

func TestMarkerService_ToggleMarker(t *testing.T) {
	ctx := context.Background()
	f := newMarkerServiceFixture(t)
	marker := f.create(t, entity.NewLightMarker(entity.Coordinate{Latitude: 1, Longitude: 1}, true))

	confirmed, err := f.service.ConfirmMarker(ctx, marker.ID)
	require.NoError(t, err)
	require.NotNil(t, confirmed.ConfirmedAt)
	assert.Equal(t, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), *confirmed.ConfirmedAt)

	toggled, err := f.service.ToggleMarker(ctx, marker.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Illuminated)
	assert.Nil(t, toggled.ConfirmedAt)

	toggled, err = f.service.ToggleMarker(ctx, marker.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Illuminated)

	stored, err := f.service.GetMarker(ctx, marker.ID)
	require.NoError(t, err)
	assert.True(t, stored.Illuminated)
	assert.Greater(t, stored.Version, marker.Version)
}

func TestMarkerService_ToggleMissingMarker(t *testing.T) {
	f := newMarkerServiceFixture(t)

	_, err := f.service.ToggleMarker(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrMarkerNotFound)
}

func TestMarkerService_ModifyRetriesThenFails(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	markerRepo := mockRepo.NewMockMarkerRepository(t)

	id := uuid.New()
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
	factory.EXPECT().NewMarkerRepository().Return(markerRepo)
	markerRepo.EXPECT().FindMarkerByID(mock.Anything, id).
		RunAndReturn(func(context.Context, uuid.UUID) (*entity.LightMarker, error) {
			m := entity.NewLightMarker(entity.Coordinate{}, true)
			m.ID = id

			return m, nil
		})
	markerRepo.EXPECT().UpdateMarker(mock.Anything, mock.Anything).Return(domainerrors.ErrMergeRaceDetected)

	svc := NewMarkerService(txManager, markerRepo, mockSvc.NewMockRegionLocker(t), newTestConfig(), newDiscardLogger())

	_, err := svc.ToggleMarker(context.Background(), id)
	assert.ErrorIs(t, err, domainerrors.ErrPersistenceFailure)
	markerRepo.AssertNumberOfCalls(t, "UpdateMarker", 3)
}

func TestMarkerService_DeleteMarker(t *testing.T) {
	ownerID := uuid.New()
	strangerID := uuid.New()

	tests := []struct {
		name     string
		callerID uuid.UUID
		owner    *uuid.UUID
		wantErr  error
	}{
		{name: "owner deletes", callerID: ownerID, owner: &ownerID},
		{name: "other account is refused", callerID: strangerID, owner: &ownerID, wantErr: domainerrors.ErrMarkerOwnershipViolation},
		{name: "anonymous marker cannot be deleted", callerID: strangerID, wantErr: domainerrors.ErrMarkerOwnershipViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			f := newMarkerServiceFixture(t)

			marker := entity.NewLightMarker(entity.Coordinate{Latitude: 2, Longitude: 2}, true)
			marker.OwnerAccountID = tt.owner
			f.create(t, marker)

			err := f.service.DeleteMarker(ctx, tt.callerID, marker.ID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				_, findErr := f.markers.FindMarkerByID(ctx, marker.ID)
				assert.NoError(t, findErr)

				return
			}

			require.NoError(t, err)
			_, findErr := f.markers.FindMarkerByID(ctx, marker.ID)
			assert.ErrorIs(t, findErr, domainerrors.ErrMarkerNotFound)
		})
	}
}

func TestMarkerService_DeleteMarkerHoldsCellLocks(t *testing.T) {
	ctx := context.Background()
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	markerRepo := mockRepo.NewMockMarkerRepository(t)
	txRepo := mockRepo.NewMockMarkerRepository(t)
	locker := mockSvc.NewMockRegionLocker(t)

	ownerID := uuid.New()
	marker := entity.NewLightMarker(entity.Coordinate{Latitude: 40, Longitude: -74}, true)
	marker.ID = uuid.New()
	marker.OwnerAccountID = &ownerID

	wantKeys := geo.Keys(geo.CoveringCells(marker.Coordinate, 20, 18))
	released := false

	markerRepo.EXPECT().FindMarkerByID(mock.Anything, marker.ID).Return(marker.Clone(), nil)
	locker.EXPECT().Lock(mock.Anything, wantKeys).Return(func() { released = true }, nil)
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			assert.False(t, released, "region lock held for the whole transaction")

			return fn(factory)
		})
	factory.EXPECT().NewMarkerRepository().Return(txRepo)
	txRepo.EXPECT().LockCells(mock.Anything, wantKeys).Return(nil)
	txRepo.EXPECT().FindMarkerByID(mock.Anything, marker.ID).Return(marker.Clone(), nil)
	txRepo.EXPECT().DeleteMarker(mock.Anything, marker.ID).Return(nil)

	svc := NewMarkerService(txManager, markerRepo, locker, newTestConfig(), newDiscardLogger())

	require.NoError(t, svc.DeleteMarker(ctx, ownerID, marker.ID))
	assert.True(t, released)
}

func TestMarkerService_ListInBoundary(t *testing.T) {
	ctx := context.Background()
	f := newMarkerServiceFixture(t)

	inside := f.create(t, entity.NewLightMarker(entity.Coordinate{Latitude: 10, Longitude: 10}, true))
	f.create(t, entity.NewLightMarker(entity.Coordinate{Latitude: 30, Longitude: 30}, true))

	markers, err := f.service.ListInBoundary(ctx,
		entity.Coordinate{Latitude: 20, Longitude: 20},
		entity.Coordinate{Latitude: 0, Longitude: 0},
	)
	require.NoError(t, err)
	require.Len(t, markers, 1)
	assert.Equal(t, inside.ID, markers[0].ID)

	_, err = f.service.ListInBoundary(ctx,
		entity.Coordinate{Latitude: 0, Longitude: 20},
		entity.Coordinate{Latitude: 20, Longitude: 0},
	)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidBoundary)
}
