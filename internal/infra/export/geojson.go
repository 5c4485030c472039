package export

import (
	"io"
	"time"

	"lightmap/internal/domain/entity"
	"lightmap/internal/errors"
	"lightmap/internal/geo"

	"github.com/paulmach/orb/geojson"
)

// FeatureCollection builds a point feature per marker.
func FeatureCollection(markers []*entity.LightMarker) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _, marker := range markers {
		feature := geojson.NewFeature(geo.Point(marker.Coordinate))
		feature.ID = marker.ID.String()
		feature.Properties["id"] = marker.ID.String()
		feature.Properties["illuminated"] = marker.Illuminated
		feature.Properties["subMarkerCount"] = len(marker.SubMarkerIDs)

		if marker.ConfirmedAt != nil {
			feature.Properties["confirmedAt"] = marker.ConfirmedAt.UTC().Format(time.RFC3339)
		} else {
			feature.Properties["confirmedAt"] = nil
		}

		fc.Append(feature)
	}

	return fc
}

// WriteGeoJSON writes the markers as a GeoJSON FeatureCollection.
func WriteGeoJSON(w io.Writer, markers []*entity.LightMarker) error {
	data, err := FeatureCollection(markers).MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "failed to encode GeoJSON")
	}

	if _, err := w.Write(data); err != nil {
		return errors.Wrap(err, "failed to write GeoJSON")
	}

	return nil
}
