// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"lightmap/internal/domain/entity"

	"github.com/google/uuid"
)

// NearestMarker is a proximity query hit.
type NearestMarker struct {
	Marker         *entity.LightMarker
	DistanceMeters float64
}

// MarkerRepository defines the interface for light marker persistence.
type MarkerRepository interface {
	// FindNearestTopLevelMarker returns the closest top-level marker strictly
	// closer than maxDistanceMeters, or nil when there is none.
	FindNearestTopLevelMarker(ctx context.Context, target entity.Coordinate, maxDistanceMeters float64) (*NearestMarker, error)

	// CreateMarker persists a new marker. A nil ID is assigned by the store.
	// A sub-marker whose parent is gone yields domainerrors.ErrMergeRaceDetected.
	CreateMarker(ctx context.Context, marker *entity.LightMarker) error

	// UpdateMarker saves marker if its Version still matches the stored row.
	// Returns domainerrors.ErrMergeRaceDetected on a version mismatch or when the row is gone.
	UpdateMarker(ctx context.Context, marker *entity.LightMarker) error

	// FindMarkerByID retrieves a marker with its sub-marker ids.
	FindMarkerByID(ctx context.Context, id uuid.UUID) (*entity.LightMarker, error)

	// FindMarkersInBoundary lists top-level markers inside the box.
	FindMarkersInBoundary(ctx context.Context, boundary entity.Boundary) ([]*entity.LightMarker, error)

	// DeleteMarker removes a marker and, for top-level markers, its sub-markers.
	DeleteMarker(ctx context.Context, id uuid.UUID) error

	// LockCells takes store-level locks on the given region keys until the
	// surrounding transaction ends. Stores without such locks return nil.
	LockCells(ctx context.Context, keys []int64) error
}
