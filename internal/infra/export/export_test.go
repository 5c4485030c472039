package export

import (
	"bytes"
	"encoding/xml"
	"testing"
	"time"

	"lightmap/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleMarkers() []*entity.LightMarker {
	confirmedAt := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)

	on := entity.NewLightMarker(entity.Coordinate{Latitude: -12.225872, Longitude: -38.964673}, true)
	on.ID = uuid.MustParse("6f1c1c36-3c35-4c69-8d2f-3f9a6c1f2b01")
	on.ConfirmedAt = &confirmedAt
	on.SubMarkerIDs = []uuid.UUID{uuid.New(), uuid.New()}

	off := entity.NewLightMarker(entity.Coordinate{Latitude: 1.5, Longitude: 2.25}, false)
	off.ID = uuid.MustParse("6f1c1c36-3c35-4c69-8d2f-3f9a6c1f2b02")

	return []*entity.LightMarker{on, off}
}

func TestWriteKML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteKML(&buf, sampleMarkers(), DefaultKMLOptions()))

	out := buf.String()
	assert.Contains(t, out, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, out, `<kml xmlns="http://www.opengis.net/kml/2.2">`)
	assert.Contains(t, out, `<styleUrl>#on</styleUrl>`)
	assert.Contains(t, out, `<styleUrl>#off</styleUrl>`)
	assert.Contains(t, out, `<coordinates>-38.964673,-12.225872,0</coordinates>`)
	assert.Contains(t, out, `<coordinates>2.25,1.5,0</coordinates>`)

	var doc kmlDocument
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Document.Placemarks, 2)
	assert.Equal(t, "6f1c1c36-3c35-4c69-8d2f-3f9a6c1f2b01", doc.Document.Placemarks[0].ID)
	assert.Contains(t, doc.Document.Placemarks[0].Extended, kmlData{Name: "observations", Value: "3"})
	assert.Contains(t, doc.Document.Placemarks[0].Extended, kmlData{Name: "confirmedAt", Value: "2024-05-06T07:08:09Z"})
	assert.Equal(t, "Unconfirmed", doc.Document.Placemarks[1].Description)
}

func TestWriteKML_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteKML(&buf, nil, DefaultKMLOptions()))

	assert.NotContains(t, buf.String(), "<Placemark")
	assert.Contains(t, buf.String(), "<name>Street lights</name>")
}

func TestWriteGeoJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteGeoJSON(&buf, sampleMarkers()))

	fc, err := geojson.UnmarshalFeatureCollection(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, fc.Features, 2)

	first := fc.Features[0]
	assert.Equal(t, orb.Point{-38.964673, -12.225872}, first.Geometry)
	assert.Equal(t, "6f1c1c36-3c35-4c69-8d2f-3f9a6c1f2b01", first.Properties.MustString("id"))
	assert.True(t, first.Properties.MustBool("illuminated"))
	assert.InDelta(t, 2, first.Properties.MustFloat64("subMarkerCount"), 0)
	assert.Equal(t, "2024-05-06T07:08:09Z", first.Properties.MustString("confirmedAt"))

	second := fc.Features[1]
	assert.False(t, second.Properties.MustBool("illuminated"))
	assert.Nil(t, second.Properties["confirmedAt"])
}
