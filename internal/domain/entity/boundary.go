package entity

import (
	domainerrors "lightmap/internal/domain/errors"
)

// Boundary is a lat/lng box given by its north-east and south-west corners.
type Boundary struct {
	NorthEast Coordinate
	SouthWest Coordinate
}

// NewBoundary validates both corners and the latitude ordering.
// A south-west longitude greater than the north-east one is allowed and
// means the box crosses the antimeridian.
func NewBoundary(northEast, southWest Coordinate) (Boundary, error) {
	if err := northEast.Validate(); err != nil {
		return Boundary{}, err
	}
	if err := southWest.Validate(); err != nil {
		return Boundary{}, err
	}
	if southWest.Latitude > northEast.Latitude {
		return Boundary{}, domainerrors.ErrInvalidBoundary
	}

	return Boundary{NorthEast: northEast, SouthWest: southWest}, nil
}

// CrossesAntimeridian reports whether the box wraps around longitude 180.
func (b Boundary) CrossesAntimeridian() bool {
	return b.SouthWest.Longitude > b.NorthEast.Longitude
}

// Contains reports whether c lies inside the box, edges included.
func (b Boundary) Contains(c Coordinate) bool {
	if c.Latitude < b.SouthWest.Latitude || c.Latitude > b.NorthEast.Latitude {
		return false
	}

	if b.CrossesAntimeridian() {
		return c.Longitude >= b.SouthWest.Longitude || c.Longitude <= b.NorthEast.Longitude
	}

	return c.Longitude >= b.SouthWest.Longitude && c.Longitude <= b.NorthEast.Longitude
}
