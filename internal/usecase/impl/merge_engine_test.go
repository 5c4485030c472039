package impl

import (
	"context"
	"sync"
	"testing"

	"lightmap/internal/domain/entity"
	domainerrors "lightmap/internal/domain/errors"
	"lightmap/internal/domain/repository"
	"lightmap/internal/domain/service"
	"lightmap/internal/infra/lock"
	"lightmap/internal/infra/metrics"
	"lightmap/internal/infra/persistence/memory"
	"lightmap/internal/infra/persistence/postgres"
	mockRepo "lightmap/internal/mocks/repository"
	mockSvc "lightmap/internal/mocks/service"
	"lightmap/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type memoryEngineFixture struct {
	engine    usecase.MergeEngine
	txManager repository.TransactionManager
	locker    service.RegionLocker
	markers   repository.MarkerRepository
}

func newMemoryEngine(t *testing.T) memoryEngineFixture {
	t.Helper()

	store := memory.NewStore()
	txManager := memory.NewTransactionManager(store)
	locker := lock.NewLocalLocker()

	return memoryEngineFixture{
		txManager: txManager,
		locker:    locker,
		engine: NewMergeEngine(
			txManager,
			locker,
			newTestConfig(),
			metrics.NewMetrics(),
			newDiscardLogger(),
		),
		markers: memory.NewMarkerRepository(store),
	}
}

func worldBoundary(t *testing.T) entity.Boundary {
	t.Helper()

	boundary, err := entity.NewBoundary(
		entity.Coordinate{Latitude: 90, Longitude: 180},
		entity.Coordinate{Latitude: -90, Longitude: -180},
	)
	require.NoError(t, err)

	return boundary
}

func TestMergeEngine_MergesNearbyObservation(t *testing.T) {
	ctx := context.Background()
	f := newMemoryEngine(t)

	first := entity.NewLightMarker(entity.Coordinate{Latitude: -12.225872, Longitude: -38.964673}, true)
	created, err := f.engine.Submit(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, first.ID, created.ID)
	assert.Nil(t, first.ParentMarkerID)

	second := entity.NewLightMarker(entity.Coordinate{Latitude: -12.225873, Longitude: -38.964674}, false)
	merged, err := f.engine.Submit(ctx, second)
	require.NoError(t, err)

	assert.Equal(t, first.ID, merged.ID)
	assert.False(t, merged.Illuminated)
	assert.Nil(t, merged.ConfirmedAt)
	assert.Equal(t, []uuid.UUID{second.ID}, merged.SubMarkerIDs)
	require.NotNil(t, second.ParentMarkerID)
	assert.Equal(t, first.ID, *second.ParentMarkerID)

	topLevel, err := f.markers.FindMarkersInBoundary(ctx, worldBoundary(t))
	require.NoError(t, err)
	require.Len(t, topLevel, 1)
	assert.False(t, topLevel[0].Illuminated)
	assert.Len(t, topLevel[0].SubMarkerIDs, 1)
}

func TestMergeEngine_FarObservationsStaySeparate(t *testing.T) {
	ctx := context.Background()
	f := newMemoryEngine(t)

	a := entity.NewLightMarker(entity.Coordinate{Latitude: 0, Longitude: 0}, true)
	b := entity.NewLightMarker(entity.Coordinate{Latitude: 1, Longitude: 0}, true)

	_, err := f.engine.Submit(ctx, a)
	require.NoError(t, err)
	_, err = f.engine.Submit(ctx, b)
	require.NoError(t, err)

	topLevel, err := f.markers.FindMarkersInBoundary(ctx, worldBoundary(t))
	require.NoError(t, err)
	require.Len(t, topLevel, 2)
	for _, m := range topLevel {
		assert.Nil(t, m.ParentMarkerID)
		assert.Empty(t, m.SubMarkerIDs)
	}
}

func TestMergeEngine_MergeClearsConfirmation(t *testing.T) {
	ctx := context.Background()
	f := newMemoryEngine(t)
	markerService := NewMarkerService(f.txManager, f.markers, f.locker, newTestConfig(), newDiscardLogger())

	first := entity.NewLightMarker(entity.Coordinate{Latitude: 10, Longitude: 10}, true)
	_, err := f.engine.Submit(ctx, first)
	require.NoError(t, err)

	confirmed, err := markerService.ConfirmMarker(ctx, first.ID)
	require.NoError(t, err)
	require.NotNil(t, confirmed.ConfirmedAt)

	second := entity.NewLightMarker(entity.Coordinate{Latitude: 10.00001, Longitude: 10}, true)
	merged, err := f.engine.Submit(ctx, second)
	require.NoError(t, err)
	assert.Nil(t, merged.ConfirmedAt)
	assert.True(t, merged.Illuminated)

	stored, err := markerService.GetMarker(ctx, first.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.ConfirmedAt)
}

func TestMergeEngine_RejectsInvalidCoordinate(t *testing.T) {
	engine := NewMergeEngine(
		mockRepo.NewMockTransactionManager(t),
		mockSvc.NewMockRegionLocker(t),
		newTestConfig(),
		nil,
		newDiscardLogger(),
	)

	_, err := engine.Submit(context.Background(), entity.NewLightMarker(entity.Coordinate{Latitude: 91, Longitude: 0}, true))
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)
}

func TestMergeEngine_ConcurrentSubmissionsMergeIntoOne(t *testing.T) {
	ctx := context.Background()
	f := newMemoryEngine(t)
	coordinate := entity.Coordinate{Latitude: 52.520008, Longitude: 13.404954}

	runConcurrentSubmissions(t, f.engine, coordinate, 20)

	topLevel, err := f.markers.FindMarkersInBoundary(ctx, worldBoundary(t))
	require.NoError(t, err)
	require.Len(t, topLevel, 1)
	assert.Len(t, topLevel[0].SubMarkerIDs, 19)
}

func TestMergeEngine_ConcurrentSubmissionsMergeIntoOne_SQLite(t *testing.T) {
	ctx := context.Background()

	db, err := postgres.OpenSQLite("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(db))

	var one float64
	if err := db.Raw("SELECT acos(1)").Scan(&one).Error; err != nil {
		t.Skipf("sqlite build lacks math functions: %v", err)
	}

	engine := NewMergeEngine(
		postgres.NewTransactionManager(db),
		lock.NewLocalLocker(),
		newTestConfig(),
		metrics.NewMetrics(),
		newDiscardLogger(),
	)
	coordinate := entity.Coordinate{Latitude: -33.868820, Longitude: 151.209290}

	runConcurrentSubmissions(t, engine, coordinate, 20)

	topLevel, err := postgres.NewMarkerRepository(db).FindMarkersInBoundary(ctx, worldBoundary(t))
	require.NoError(t, err)
	require.Len(t, topLevel, 1)
	assert.Len(t, topLevel[0].SubMarkerIDs, 19)
}

func runConcurrentSubmissions(t *testing.T, engine usecase.MergeEngine, coordinate entity.Coordinate, n int) {
	t.Helper()

	var (
		wg    sync.WaitGroup
		start = make(chan struct{})
		errs  = make([]error, n)
	)

	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start

			_, errs[i] = engine.Submit(context.Background(), entity.NewLightMarker(coordinate, i%2 == 0))
		}()
	}
	close(start)
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "submission %d", i)
	}
}

// mockedEngine wires the engine to mocks with a no-op region lock.
type mockedEngine struct {
	engine     usecase.MergeEngine
	markerRepo *mockRepo.MockMarkerRepository
}

func newMockedEngine(t *testing.T) mockedEngine {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	markerRepo := mockRepo.NewMockMarkerRepository(t)
	locker := mockSvc.NewMockRegionLocker(t)

	locker.EXPECT().Lock(mock.Anything, mock.Anything).Return(func() {}, nil)
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
	factory.EXPECT().NewMarkerRepository().Return(markerRepo)
	markerRepo.EXPECT().LockCells(mock.Anything, mock.Anything).Return(nil)

	return mockedEngine{
		engine:     NewMergeEngine(txManager, locker, newTestConfig(), metrics.NewMetrics(), newDiscardLogger()),
		markerRepo: markerRepo,
	}
}

func TestMergeEngine_RetriesAfterRace(t *testing.T) {
	ctx := context.Background()
	f := newMockedEngine(t)

	parent := entity.NewLightMarker(entity.Coordinate{Latitude: 1, Longitude: 1}, false)
	parent.ID = uuid.New()
	parent.Version = 4

	f.markerRepo.EXPECT().
		FindNearestTopLevelMarker(mock.Anything, mock.Anything, 20.0).
		RunAndReturn(func(context.Context, entity.Coordinate, float64) (*repository.NearestMarker, error) {
			return &repository.NearestMarker{Marker: parent.Clone(), DistanceMeters: 0.5}, nil
		})
	f.markerRepo.EXPECT().CreateMarker(mock.Anything, mock.AnythingOfType("*entity.LightMarker")).Return(nil)
	f.markerRepo.EXPECT().UpdateMarker(mock.Anything, mock.Anything).Return(domainerrors.ErrMergeRaceDetected).Once()
	f.markerRepo.EXPECT().UpdateMarker(mock.Anything, mock.Anything).Return(nil).Once()

	observation := entity.NewLightMarker(entity.Coordinate{Latitude: 1, Longitude: 1}, true)
	result, err := f.engine.Submit(ctx, observation)
	require.NoError(t, err)

	assert.Equal(t, parent.ID, result.ID)
	assert.Equal(t, []uuid.UUID{observation.ID}, result.SubMarkerIDs, "rolled back attempt leaves no duplicate id")
	assert.True(t, result.Illuminated)
	require.NotNil(t, observation.ParentMarkerID)
	assert.Equal(t, parent.ID, *observation.ParentMarkerID)
	f.markerRepo.AssertNumberOfCalls(t, "FindNearestTopLevelMarker", 2)
}

func TestMergeEngine_RetryExhaustionIsPersistenceFailure(t *testing.T) {
	ctx := context.Background()
	f := newMockedEngine(t)

	f.markerRepo.EXPECT().FindNearestTopLevelMarker(mock.Anything, mock.Anything, 20.0).Return(nil, nil)
	f.markerRepo.EXPECT().CreateMarker(mock.Anything, mock.Anything).Return(domainerrors.ErrMergeRaceDetected)

	_, err := f.engine.Submit(ctx, entity.NewLightMarker(entity.Coordinate{Latitude: 3, Longitude: 3}, true))
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPersistenceFailure)
	assert.ErrorIs(t, err, domainerrors.ErrMergeRaceDetected)
	f.markerRepo.AssertNumberOfCalls(t, "CreateMarker", 3)
}

func TestMergeEngine_StorageErrorIsNotRetried(t *testing.T) {
	ctx := context.Background()
	f := newMockedEngine(t)

	dbErr := domainerrors.NewDatabaseExecuteError(assert.AnError, "failed to create marker")
	f.markerRepo.EXPECT().FindNearestTopLevelMarker(mock.Anything, mock.Anything, 20.0).Return(nil, nil)
	f.markerRepo.EXPECT().CreateMarker(mock.Anything, mock.Anything).Return(dbErr)

	_, err := f.engine.Submit(ctx, entity.NewLightMarker(entity.Coordinate{Latitude: 3, Longitude: 3}, true))
	assert.ErrorIs(t, err, domainerrors.ErrPersistenceFailure)
	assert.ErrorIs(t, err, assert.AnError)
	f.markerRepo.AssertNumberOfCalls(t, "CreateMarker", 1)
}

func TestMergeEngine_ParentDeletedBeforeUpdateCreatesTopLevel(t *testing.T) {
	ctx := context.Background()
	f := newMockedEngine(t)

	parent := entity.NewLightMarker(entity.Coordinate{Latitude: 1, Longitude: 1}, false)
	parent.ID = uuid.New()

	f.markerRepo.EXPECT().FindNearestTopLevelMarker(mock.Anything, mock.Anything, 20.0).
		Return(&repository.NearestMarker{Marker: parent, DistanceMeters: 0.5}, nil).Once()
	f.markerRepo.EXPECT().FindNearestTopLevelMarker(mock.Anything, mock.Anything, 20.0).
		Return(nil, nil).Once()
	f.markerRepo.EXPECT().CreateMarker(mock.Anything, mock.Anything).Return(nil)
	f.markerRepo.EXPECT().UpdateMarker(mock.Anything, mock.Anything).
		Return(domainerrors.ErrMergeRaceDetected.WrapMessage("marker deleted since version 1")).Once()

	observation := entity.NewLightMarker(entity.Coordinate{Latitude: 1, Longitude: 1}, true)
	result, err := f.engine.Submit(ctx, observation)
	require.NoError(t, err)

	assert.Equal(t, observation.ID, result.ID)
	assert.Nil(t, result.ParentMarkerID)
	assert.Nil(t, observation.ParentMarkerID)
	f.markerRepo.AssertNumberOfCalls(t, "CreateMarker", 2)
}

// vanishingParentRepo deletes the merge target once, right after the given step.
type vanishingParentRepo struct {
	repository.MarkerRepository
	afterFind bool
	fired     *bool
}

func (r vanishingParentRepo) FindNearestTopLevelMarker(ctx context.Context, target entity.Coordinate, maxDistanceMeters float64) (*repository.NearestMarker, error) {
	nearest, err := r.MarkerRepository.FindNearestTopLevelMarker(ctx, target, maxDistanceMeters)
	if err == nil && nearest != nil && r.afterFind && !*r.fired {
		*r.fired = true
		if err := r.MarkerRepository.DeleteMarker(ctx, nearest.Marker.ID); err != nil {
			return nil, err
		}
	}

	return nearest, err
}

func (r vanishingParentRepo) CreateMarker(ctx context.Context, marker *entity.LightMarker) error {
	if err := r.MarkerRepository.CreateMarker(ctx, marker); err != nil {
		return err
	}
	if marker.ParentMarkerID != nil && !r.afterFind && !*r.fired {
		*r.fired = true

		return r.MarkerRepository.DeleteMarker(ctx, *marker.ParentMarkerID)
	}

	return nil
}

type vanishingParentFactory struct {
	repository.RepositoryFactory
	afterFind bool
	fired     *bool
}

func (f vanishingParentFactory) NewMarkerRepository() repository.MarkerRepository {
	return vanishingParentRepo{
		MarkerRepository: f.RepositoryFactory.NewMarkerRepository(),
		afterFind:        f.afterFind,
		fired:            f.fired,
	}
}

type vanishingParentTxManager struct {
	repository.TransactionManager
	afterFind bool
	fired     *bool
}

func (tm vanishingParentTxManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return tm.TransactionManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return fn(vanishingParentFactory{RepositoryFactory: factory, afterFind: tm.afterFind, fired: tm.fired})
	})
}

func TestMergeEngine_SurvivesParentDeletedMidMerge(t *testing.T) {
	tests := []struct {
		name      string
		afterFind bool
	}{
		{name: "deleted before sub-marker insert", afterFind: true},
		{name: "deleted before parent update", afterFind: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := memory.NewStore()
			markers := memory.NewMarkerRepository(store)

			parent := entity.NewLightMarker(entity.Coordinate{Latitude: 7, Longitude: 7}, false)
			require.NoError(t, markers.CreateMarker(ctx, parent))

			fired := false
			engine := NewMergeEngine(
				vanishingParentTxManager{
					TransactionManager: memory.NewTransactionManager(store),
					afterFind:          tt.afterFind,
					fired:              &fired,
				},
				lock.NewLocalLocker(),
				newTestConfig(),
				metrics.NewMetrics(),
				newDiscardLogger(),
			)

			observation := entity.NewLightMarker(entity.Coordinate{Latitude: 7.00001, Longitude: 7}, true)
			result, err := engine.Submit(ctx, observation)
			require.NoError(t, err)
			assert.True(t, fired)

			// The failed attempt rolled back, so the retry merges into the restored parent.
			assert.Equal(t, parent.ID, result.ID)
			stored, err := markers.FindMarkerByID(ctx, observation.ID)
			require.NoError(t, err)
			require.NotNil(t, stored.ParentMarkerID)
			assert.Equal(t, parent.ID, *stored.ParentMarkerID)
		})
	}
}
