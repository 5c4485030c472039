package impl

import (
	"context"
	"log/slog"
	"time"

	"lightmap/config"
	"lightmap/internal/domain/entity"
	domainerrors "lightmap/internal/domain/errors"
	"lightmap/internal/domain/repository"
	"lightmap/internal/domain/service"
	"lightmap/internal/errors"
	"lightmap/internal/geo"
	"lightmap/internal/infra/metrics"
	"lightmap/internal/infra/tracing"
	"lightmap/internal/usecase"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

type mergeEngine struct {
	txManager   repository.TransactionManager
	locker      service.RegionLocker
	metrics     *metrics.Metrics
	logger      *slog.Logger
	region      lockRegion
	maxAttempts int
}

// NewMergeEngine creates the merge engine. A nil metrics records nothing.
func NewMergeEngine(
	txManager repository.TransactionManager,
	locker service.RegionLocker,
	cfg *config.Config,
	m *metrics.Metrics,
	logger *slog.Logger,
) usecase.MergeEngine {
	engine := &mergeEngine{
		txManager:   txManager,
		locker:      locker,
		metrics:     m,
		logger:      logger,
		region:      newLockRegion(cfg),
		maxAttempts: 3,
	}

	if cfg.Marker != nil && cfg.Marker.MaxMergeAttempts > 0 {
		engine.maxAttempts = cfg.Marker.MaxMergeAttempts
	}

	return engine
}

// Submit stores newMarker, merging it into the nearest top-level marker when
// one lies within the merge radius. Concurrent writes to the same region are
// retried as a whole; once the attempts run out the last conflict is returned
// wrapped in ErrPersistenceFailure.
func (e *mergeEngine) Submit(ctx context.Context, newMarker *entity.LightMarker) (result *entity.LightMarker, err error) {
	start := time.Now()

	ctx, endSpan := tracing.StartSpan(ctx, "merge_engine.submit",
		attribute.Float64("latitude", newMarker.Coordinate.Latitude),
		attribute.Float64("longitude", newMarker.Coordinate.Longitude),
	)
	defer func() { endSpan(err) }()

	if err := newMarker.Coordinate.Validate(); err != nil {
		return nil, err
	}

	if newMarker.ID == uuid.Nil {
		newMarker.ID = uuid.New()
	}

	cells := e.region.cells(newMarker.Coordinate)
	keys := geo.Keys(cells)
	tracing.SetAttributes(ctx, attribute.Int("cells", len(cells)))

	var lastErr error
	for attempt := 1; attempt <= e.maxAttempts; attempt++ {
		// Each attempt starts from the caller's observation; a rolled back merge leaves no trace on it.
		candidate := newMarker.Clone()

		canonical, attemptErr := e.attempt(ctx, candidate, keys)
		if attemptErr == nil {
			*newMarker = *candidate

			outcome := metrics.OutcomeCreated
			if candidate.ParentMarkerID != nil {
				outcome = metrics.OutcomeMerged
			}
			e.metrics.ObserveSubmission(outcome, time.Since(start))
			tracing.SetAttributes(ctx, attribute.String("outcome", outcome), attribute.Int("attempts", attempt))

			return canonical, nil
		}

		lastErr = attemptErr
		if !errors.Is(attemptErr, domainerrors.ErrMergeRaceDetected) {
			break
		}

		if attempt < e.maxAttempts {
			e.metrics.IncSubmissionRetries()
			tracing.AddEvent(ctx, "merge_engine.retry", attribute.Int("attempt", attempt))
			e.logger.DebugContext(ctx, "Concurrent marker write, retrying submission",
				slog.Int("attempt", attempt),
				slog.Any("error", attemptErr),
			)
		}
	}

	e.metrics.ObserveSubmission(metrics.OutcomeFailed, time.Since(start))

	if errors.Is(lastErr, context.Canceled) || errors.Is(lastErr, context.DeadlineExceeded) {
		return nil, lastErr
	}

	e.logger.ErrorContext(ctx, "Failed to store observation",
		slog.String("markerID", newMarker.ID.String()),
		slog.Any("error", lastErr),
	)

	return nil, domainerrors.PersistenceFailure(lastErr, "observation was not stored")
}

// attempt runs one locked, transactional proximity query and write.
func (e *mergeEngine) attempt(ctx context.Context, marker *entity.LightMarker, keys []int64) (*entity.LightMarker, error) {
	release, err := e.locker.Lock(ctx, keys)
	if err != nil {
		return nil, errors.Wrap(err, "failed to lock marker region")
	}
	defer release()

	var canonical *entity.LightMarker

	err = e.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		markerRepo := factory.NewMarkerRepository()

		if err := markerRepo.LockCells(ctx, keys); err != nil {
			return err
		}

		nearest, err := markerRepo.FindNearestTopLevelMarker(ctx, marker.Coordinate, e.region.radius)
		if err != nil {
			return err
		}

		if nearest == nil {
			if err := markerRepo.CreateMarker(ctx, marker); err != nil {
				return err
			}
			canonical = marker

			return nil
		}

		parent := nearest.Marker
		parent.AddSubMarker(marker)

		if err := markerRepo.CreateMarker(ctx, marker); err != nil {
			return err
		}
		if err := markerRepo.UpdateMarker(ctx, parent); err != nil {
			return err
		}
		canonical = parent

		return nil
	})
	if err != nil {
		return nil, err
	}

	return canonical, nil
}
