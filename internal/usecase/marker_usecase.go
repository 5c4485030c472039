package usecase

import (
	"context"

	"lightmap/internal/domain/entity"

	"github.com/google/uuid"
)

// MergeEngine stores an observation, merging it into the nearest top-level
// marker within the merge radius.
type MergeEngine interface {
	// Submit returns the canonical marker: the parent when newMarker was merged
	// (newMarker.ParentMarkerID is then set), otherwise newMarker itself.
	Submit(ctx context.Context, newMarker *entity.LightMarker) (*entity.LightMarker, error)
}

// SubmitObservationInput represents a reported light observation
type SubmitObservationInput struct {
	Latitude    float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude   float64 `json:"longitude" validate:"min=-180,max=180"`
	Illuminated bool    `json:"illuminated"`
}

// SubmissionUsecase records observations on behalf of the current caller.
type SubmissionUsecase interface {
	// AddObservation attributes the observation to the caller when known and
	// returns the canonical marker.
	AddObservation(ctx context.Context, input *SubmitObservationInput) (*entity.LightMarker, error)
}

// MarkerUsecase defines the interface for marker management use cases
type MarkerUsecase interface {
	ListInBoundary(ctx context.Context, northEast, southWest entity.Coordinate) ([]*entity.LightMarker, error)
	GetMarker(ctx context.Context, id uuid.UUID) (*entity.LightMarker, error)
	ToggleMarker(ctx context.Context, id uuid.UUID) (*entity.LightMarker, error)
	ConfirmMarker(ctx context.Context, id uuid.UUID) (*entity.LightMarker, error)

	// DeleteMarker removes a marker reported by callerID.
	DeleteMarker(ctx context.Context, callerID, id uuid.UUID) error
}
