package handler

import (
	"time"

	"lightmap/internal/domain/entity"

	"github.com/google/uuid"
)

// CoordinateView is the JSON form of a coordinate.
type CoordinateView struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// MarkerView is the JSON form of a light marker.
type MarkerView struct {
	ID             string         `json:"id"`
	Coordinate     CoordinateView `json:"coordinate"`
	Illuminated    bool           `json:"illuminated"`
	ConfirmedAt    *time.Time     `json:"confirmedAt"`
	OwnerAccountID *string        `json:"ownerAccountId"`
	ParentMarkerID *string        `json:"parentMarkerId"`
	SubMarkerIDs   []string       `json:"subMarkerIds"`
}

func toMarkerView(marker *entity.LightMarker) MarkerView {
	subIDs := make([]string, 0, len(marker.SubMarkerIDs))
	for _, id := range marker.SubMarkerIDs {
		subIDs = append(subIDs, id.String())
	}

	return MarkerView{
		ID: marker.ID.String(),
		Coordinate: CoordinateView{
			Latitude:  marker.Coordinate.Latitude,
			Longitude: marker.Coordinate.Longitude,
		},
		Illuminated:    marker.Illuminated,
		ConfirmedAt:    marker.ConfirmedAt,
		OwnerAccountID: optionalID(marker.OwnerAccountID),
		ParentMarkerID: optionalID(marker.ParentMarkerID),
		SubMarkerIDs:   subIDs,
	}
}

func toMarkerViews(markers []*entity.LightMarker) []MarkerView {
	views := make([]MarkerView, 0, len(markers))
	for _, marker := range markers {
		views = append(views, toMarkerView(marker))
	}

	return views
}

func optionalID(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()

	return &s
}
