package service

import (
	"context"

	"lightmap/internal/domain/entity"
	"lightmap/internal/errors"
)

// ErrAddressNotGeocoded is returned when the geocoder has no result for a query.
var ErrAddressNotGeocoded = errors.New("address could not be geocoded")

// Geocoder turns a free-form address into a coordinate.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (entity.Coordinate, error)
}
