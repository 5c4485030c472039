// Package export renders markers as KML and GeoJSON documents.
package export

import (
	"encoding/xml"
	"io"
	"strconv"
	"time"

	"lightmap/internal/domain/entity"
	"lightmap/internal/errors"
)

const kmlNamespace = "http://www.opengis.net/kml/2.2"

// Style ids referenced by placemarks.
const (
	styleOn  = "on"
	styleOff = "off"
)

type kmlDocument struct {
	XMLName  xml.Name `xml:"kml"`
	Xmlns    string   `xml:"xmlns,attr"`
	Document kmlBody  `xml:"Document"`
}

type kmlBody struct {
	Name       string         `xml:"name"`
	Styles     []kmlStyle     `xml:"Style"`
	Placemarks []kmlPlacemark `xml:"Placemark"`
}

type kmlStyle struct {
	ID   string      `xml:"id,attr"`
	Icon kmlIconLink `xml:"IconStyle>Icon"`
}

type kmlIconLink struct {
	Href string `xml:"href"`
}

type kmlPlacemark struct {
	ID          string      `xml:"id,attr"`
	Name        string      `xml:"name"`
	Description string      `xml:"description,omitempty"`
	StyleURL    string      `xml:"styleUrl"`
	Extended    []kmlData   `xml:"ExtendedData>Data"`
	Point       kmlPointXML `xml:"Point"`
}

type kmlData struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value"`
}

type kmlPointXML struct {
	Coordinates string `xml:"coordinates"`
}

// KMLOptions customises the document header.
type KMLOptions struct {
	Name    string
	OnIcon  string
	OffIcon string
}

// DefaultKMLOptions uses the stock Google Maps paddle icons.
func DefaultKMLOptions() KMLOptions {
	return KMLOptions{
		Name:    "Street lights",
		OnIcon:  "https://maps.google.com/mapfiles/kml/paddle/grn-circle.png",
		OffIcon: "https://maps.google.com/mapfiles/kml/paddle/red-circle.png",
	}
}

// WriteKML writes one placemark per marker.
func WriteKML(w io.Writer, markers []*entity.LightMarker, opts KMLOptions) error {
	doc := kmlDocument{
		Xmlns: kmlNamespace,
		Document: kmlBody{
			Name: opts.Name,
			Styles: []kmlStyle{
				{ID: styleOn, Icon: kmlIconLink{Href: opts.OnIcon}},
				{ID: styleOff, Icon: kmlIconLink{Href: opts.OffIcon}},
			},
			Placemarks: make([]kmlPlacemark, 0, len(markers)),
		},
	}

	for _, marker := range markers {
		doc.Document.Placemarks = append(doc.Document.Placemarks, toPlacemark(marker))
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return errors.Wrap(err, "failed to write KML header")
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(err, "failed to encode KML")
	}

	return errors.Wrap(enc.Close(), "failed to flush KML")
}

func toPlacemark(marker *entity.LightMarker) kmlPlacemark {
	style, state := styleOff, "off"
	if marker.Illuminated {
		style, state = styleOn, "on"
	}

	data := []kmlData{
		{Name: "illuminated", Value: strconv.FormatBool(marker.Illuminated)},
		{Name: "observations", Value: strconv.Itoa(len(marker.SubMarkerIDs) + 1)},
	}
	if marker.ConfirmedAt != nil {
		data = append(data, kmlData{Name: "confirmedAt", Value: marker.ConfirmedAt.UTC().Format(time.RFC3339)})
	}

	return kmlPlacemark{
		ID:          marker.ID.String(),
		Name:        "Street light " + state,
		Description: describe(marker),
		StyleURL:    "#" + style,
		Extended:    data,
		Point: kmlPointXML{
			Coordinates: formatFloat(marker.Coordinate.Longitude) + "," + formatFloat(marker.Coordinate.Latitude) + ",0",
		},
	}
}

func describe(marker *entity.LightMarker) string {
	if marker.ConfirmedAt == nil {
		return "Unconfirmed"
	}

	return "Confirmed " + marker.ConfirmedAt.UTC().Format(time.DateOnly)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
