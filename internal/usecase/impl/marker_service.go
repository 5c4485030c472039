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
	"lightmap/internal/usecase"

	"github.com/google/uuid"
)

type markerService struct {
	txManager   repository.TransactionManager
	markerRepo  repository.MarkerRepository
	locker      service.RegionLocker
	logger      *slog.Logger
	region      lockRegion
	maxAttempts int
	now         func() time.Time
}

// NewMarkerService creates a new marker service instance
func NewMarkerService(
	txManager repository.TransactionManager,
	markerRepo repository.MarkerRepository,
	locker service.RegionLocker,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.MarkerUsecase {
	maxAttempts := 3
	if cfg.Marker != nil && cfg.Marker.MaxMergeAttempts > 0 {
		maxAttempts = cfg.Marker.MaxMergeAttempts
	}

	return &markerService{
		txManager:   txManager,
		markerRepo:  markerRepo,
		locker:      locker,
		logger:      logger,
		region:      newLockRegion(cfg),
		maxAttempts: maxAttempts,
		now:         time.Now,
	}
}

// ListInBoundary returns the top-level markers inside the box.
func (s *markerService) ListInBoundary(ctx context.Context, northEast, southWest entity.Coordinate) ([]*entity.LightMarker, error) {
	boundary, err := entity.NewBoundary(northEast, southWest)
	if err != nil {
		return nil, err
	}

	markers, err := s.markerRepo.FindMarkersInBoundary(ctx, boundary)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list markers")
	}

	return markers, nil
}

// GetMarker returns a marker with its sub-marker ids.
func (s *markerService) GetMarker(ctx context.Context, id uuid.UUID) (*entity.LightMarker, error) {
	return s.markerRepo.FindMarkerByID(ctx, id)
}

// ToggleMarker flips the illumination state.
func (s *markerService) ToggleMarker(ctx context.Context, id uuid.UUID) (*entity.LightMarker, error) {
	return s.modify(ctx, id, func(marker *entity.LightMarker) {
		marker.Toggle()
	})
}

// ConfirmMarker marks the current state as verified now.
func (s *markerService) ConfirmMarker(ctx context.Context, id uuid.UUID) (*entity.LightMarker, error) {
	return s.modify(ctx, id, func(marker *entity.LightMarker) {
		marker.Confirm(s.now().UTC())
	})
}

// DeleteMarker removes a marker reported by callerID together with its sub-markers.
// It holds the same cell locks as a submission near the marker, so a merge
// never targets a parent that is being deleted.
func (s *markerService) DeleteMarker(ctx context.Context, callerID, id uuid.UUID) error {
	marker, err := s.markerRepo.FindMarkerByID(ctx, id)
	if err != nil {
		return err
	}

	if !marker.IsOwnedBy(callerID) {
		return domainerrors.ErrMarkerOwnershipViolation
	}

	keys := geo.Keys(s.region.cells(marker.Coordinate))

	release, err := s.locker.Lock(ctx, keys)
	if err != nil {
		return errors.Wrap(err, "failed to lock marker region")
	}
	defer release()

	return s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		markerRepo := factory.NewMarkerRepository()

		if err := markerRepo.LockCells(ctx, keys); err != nil {
			return err
		}

		// Re-read under the lock; the marker may have gone meanwhile.
		marker, err := markerRepo.FindMarkerByID(ctx, id)
		if err != nil {
			return err
		}

		if !marker.IsOwnedBy(callerID) {
			return domainerrors.ErrMarkerOwnershipViolation
		}

		return markerRepo.DeleteMarker(ctx, id)
	})
}

// modify applies change in a read-modify-write transaction, retrying on version conflicts.
func (s *markerService) modify(ctx context.Context, id uuid.UUID, change func(*entity.LightMarker)) (*entity.LightMarker, error) {
	var lastErr error

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		var updated *entity.LightMarker

		lastErr = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
			markerRepo := factory.NewMarkerRepository()

			marker, err := markerRepo.FindMarkerByID(ctx, id)
			if err != nil {
				return err
			}

			change(marker)

			if err := markerRepo.UpdateMarker(ctx, marker); err != nil {
				return err
			}
			updated = marker

			return nil
		})
		if lastErr == nil {
			return updated, nil
		}

		if !errors.Is(lastErr, domainerrors.ErrMergeRaceDetected) {
			return nil, lastErr
		}

		s.logger.DebugContext(ctx, "Concurrent marker update, retrying",
			slog.String("markerID", id.String()),
			slog.Int("attempt", attempt),
		)
	}

	return nil, domainerrors.PersistenceFailure(lastErr, "marker update was not stored")
}
