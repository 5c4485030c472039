// Package entity contains the core business objects of lightmap.
package entity

import (
	"math"

	domainerrors "lightmap/internal/domain/errors"
)

const (
	// EarthRadiusMeters is the WGS84 equatorial radius. Stored distances were
	// computed with this value, so it must not be swapped for a mean radius.
	EarthRadiusMeters = 6378137.0

	// DefaultMergeRadiusMeters is the distance under which two observations
	// describe the same light.
	DefaultMergeRadiusMeters = 20.0
)

// Coordinate is an immutable geographic point in decimal degrees.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// NewCoordinate builds a Coordinate and validates its range.
func NewCoordinate(latitude, longitude float64) (Coordinate, error) {
	c := Coordinate{Latitude: latitude, Longitude: longitude}
	if err := c.Validate(); err != nil {
		return Coordinate{}, err
	}

	return c, nil
}

// Validate reports domainerrors.ErrInvalidCoordinate for non-finite or out of range values.
func (c Coordinate) Validate() error {
	if math.IsNaN(c.Latitude) || math.IsInf(c.Latitude, 0) ||
		math.IsNaN(c.Longitude) || math.IsInf(c.Longitude, 0) {
		return domainerrors.ErrInvalidCoordinate
	}
	if c.Latitude < -90 || c.Latitude > 90 {
		return domainerrors.ErrInvalidCoordinate
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return domainerrors.ErrInvalidCoordinate
	}

	return nil
}

// DistanceTo returns the great-circle distance in meters using the spherical
// law of cosines.
func (c Coordinate) DistanceTo(other Coordinate) float64 {
	lat1 := toRadians(c.Latitude)
	lat2 := toRadians(other.Latitude)
	deltaLng := toRadians(other.Longitude) - toRadians(c.Longitude)

	cosine := math.Sin(lat1)*math.Sin(lat2) + math.Cos(lat1)*math.Cos(lat2)*math.Cos(deltaLng)

	// Rounding can push the cosine of identical points just past 1.
	cosine = math.Max(-1, math.Min(1, cosine))

	return EarthRadiusMeters * math.Acos(cosine)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
