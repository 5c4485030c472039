package memory

import (
	"context"
	"fmt"
	"slices"
	"time"

	"lightmap/internal/domain/entity"
	domainerrors "lightmap/internal/domain/errors"
	"lightmap/internal/domain/repository"

	"github.com/google/uuid"
)

type markerRepository struct {
	store *Store
}

// NewMarkerRepository creates a marker repository over the store.
func NewMarkerRepository(store *Store) repository.MarkerRepository {
	return &markerRepository{store: store}
}

// FindNearestTopLevelMarker scans top-level markers with Coordinate.DistanceTo.
func (repo *markerRepository) FindNearestTopLevelMarker(ctx context.Context, target entity.Coordinate, maxDistanceMeters float64) (*repository.NearestMarker, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	var (
		best         *entity.LightMarker
		bestDistance float64
	)
	for _, m := range repo.store.markers {
		if !m.IsTopLevel() {
			continue
		}

		d := target.DistanceTo(m.Coordinate)
		if d >= maxDistanceMeters {
			continue
		}
		// Equal distances resolve to the older marker so results do not depend on map order.
		if best != nil && (d > bestDistance || (d == bestDistance && !m.CreatedAt.Before(best.CreatedAt))) {
			continue
		}
		best, bestDistance = m, d
	}

	if best == nil {
		return nil, nil
	}

	return &repository.NearestMarker{Marker: repo.load(best), DistanceMeters: bestDistance}, nil
}

// CreateMarker stores a copy of marker and links it under its parent.
func (repo *markerRepository) CreateMarker(ctx context.Context, marker *entity.LightMarker) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if marker.ID == uuid.Nil {
		marker.ID = uuid.New()
	}
	if _, exists := repo.store.markers[marker.ID]; exists {
		return domainerrors.ErrMergeRaceDetected.WrapMessage(fmt.Sprintf("marker %s already exists", marker.ID))
	}
	if marker.ParentMarkerID != nil {
		if _, ok := repo.store.markers[*marker.ParentMarkerID]; !ok {
			return domainerrors.ErrMergeRaceDetected.WrapMessage(
				fmt.Sprintf("parent marker %s missing", *marker.ParentMarkerID))
		}
	}

	now := time.Now()
	marker.Version = 1
	marker.CreatedAt = now
	marker.UpdatedAt = now

	stored := marker.Clone()
	stored.SubMarkerIDs = nil
	repo.store.markers[stored.ID] = stored
	if stored.ParentMarkerID != nil {
		parentID := *stored.ParentMarkerID
		repo.store.childrenOf[parentID] = append(repo.store.childrenOf[parentID], stored.ID)
	}

	return nil
}

// UpdateMarker replaces the stored marker when the versions match.
func (repo *markerRepository) UpdateMarker(ctx context.Context, marker *entity.LightMarker) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	current, ok := repo.store.markers[marker.ID]
	if !ok {
		return domainerrors.ErrMergeRaceDetected.WrapMessage(
			fmt.Sprintf("marker %s deleted since version %d", marker.ID, marker.Version))
	}
	if current.Version != marker.Version {
		return domainerrors.ErrMergeRaceDetected.WrapMessage(
			fmt.Sprintf("marker %s changed since version %d", marker.ID, marker.Version))
	}

	marker.Version++
	marker.UpdatedAt = time.Now()

	stored := marker.Clone()
	stored.SubMarkerIDs = nil
	repo.store.markers[stored.ID] = stored

	return nil
}

// FindMarkerByID returns a copy of the marker with its sub-marker ids.
func (repo *markerRepository) FindMarkerByID(ctx context.Context, id uuid.UUID) (*entity.LightMarker, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	m, ok := repo.store.markers[id]
	if !ok {
		return nil, domainerrors.ErrMarkerNotFound
	}

	return repo.load(m), nil
}

// FindMarkersInBoundary lists top-level markers inside the box, oldest first.
func (repo *markerRepository) FindMarkersInBoundary(ctx context.Context, boundary entity.Boundary) ([]*entity.LightMarker, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	markers := make([]*entity.LightMarker, 0)
	for _, m := range repo.store.markers {
		if m.IsTopLevel() && boundary.Contains(m.Coordinate) {
			markers = append(markers, repo.load(m))
		}
	}

	slices.SortFunc(markers, func(a, b *entity.LightMarker) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	return markers, nil
}

// DeleteMarker removes a marker with its sub-markers, or detaches a sub-marker.
func (repo *markerRepository) DeleteMarker(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	m, ok := repo.store.markers[id]
	if !ok {
		return domainerrors.ErrMarkerNotFound
	}

	for _, childID := range repo.store.childrenOf[id] {
		delete(repo.store.markers, childID)
	}
	delete(repo.store.childrenOf, id)
	delete(repo.store.markers, id)

	if m.ParentMarkerID == nil {
		return nil
	}

	parentID := *m.ParentMarkerID
	children := repo.store.childrenOf[parentID]
	if idx := slices.Index(children, id); idx >= 0 {
		repo.store.childrenOf[parentID] = slices.Delete(children, idx, idx+1)
	}
	if parent, ok := repo.store.markers[parentID]; ok {
		parent.Version++
		parent.UpdatedAt = time.Now()
	}

	return nil
}

// LockCells is a no-op; transactions on the memory store are already serialized.
func (repo *markerRepository) LockCells(_ context.Context, _ []int64) error {
	return nil
}

// load copies m and fills its sub-marker ids. Callers hold the store lock.
func (repo *markerRepository) load(m *entity.LightMarker) *entity.LightMarker {
	loaded := m.Clone()
	loaded.SubMarkerIDs = slices.Clone(repo.store.childrenOf[m.ID])

	return loaded
}
