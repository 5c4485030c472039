package handler

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"

	"lightmap/internal/delivery/api/middleware"
	"lightmap/internal/delivery/api/response"
	"lightmap/internal/delivery/api/validator"
	"lightmap/internal/domain/entity"
	"lightmap/internal/infra/export"
	"lightmap/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	mimeKML     = "application/vnd.google-earth.kml+xml"
	mimeGeoJSON = "application/geo+json"
)

// MarkerHandlerParams holds dependencies for MarkerHandler, injected by Fx.
type MarkerHandlerParams struct {
	fx.In

	SubmissionUC usecase.SubmissionUsecase
	MarkerUC     usecase.MarkerUsecase
	Logger       *slog.Logger
}

// MarkerHandler serves the light marker endpoints.
type MarkerHandler struct {
	submissionUC usecase.SubmissionUsecase
	markerUC     usecase.MarkerUsecase
	logger       *slog.Logger
}

// NewMarkerHandler is the constructor for MarkerHandler
func NewMarkerHandler(params MarkerHandlerParams) *MarkerHandler {
	return &MarkerHandler{
		submissionUC: params.SubmissionUC,
		markerUC:     params.MarkerUC,
		logger:       params.Logger,
	}
}

// SubmitObservationRequest is the body of POST /api/v1/markers. Pointers
// make zero coordinates distinguishable from missing ones.
type SubmitObservationRequest struct {
	Latitude    *float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude   *float64 `json:"longitude" validate:"required,min=-180,max=180"`
	Illuminated *bool    `json:"illuminated" validate:"required"`
}

// SubmitObservation records an observation, merging it into a nearby marker when one exists.
func (h *MarkerHandler) SubmitObservation(c echo.Context) error {
	var req SubmitObservationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid observation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Input validation failed", validator.FieldErrors(err))
	}

	marker, err := h.submissionUC.AddObservation(c.Request().Context(), &usecase.SubmitObservationInput{
		Latitude:    *req.Latitude,
		Longitude:   *req.Longitude,
		Illuminated: *req.Illuminated,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toMarkerView(marker), "Observation recorded")
}

// ListMarkers returns the top-level markers inside the requested box.
func (h *MarkerHandler) ListMarkers(c echo.Context) error {
	markers, ok, err := h.markersInBoundary(c)
	if !ok {
		return err
	}

	return response.Success(c, http.StatusOK, toMarkerViews(markers), "")
}

// ExportKML renders the markers inside the requested box as KML.
func (h *MarkerHandler) ExportKML(c echo.Context) error {
	markers, ok, err := h.markersInBoundary(c)
	if !ok {
		return err
	}

	var buf bytes.Buffer
	if err := export.WriteKML(&buf, markers, export.DefaultKMLOptions()); err != nil {
		return err
	}

	return c.Blob(http.StatusOK, mimeKML, buf.Bytes())
}

// ExportGeoJSON renders the markers inside the requested box as a GeoJSON FeatureCollection.
func (h *MarkerHandler) ExportGeoJSON(c echo.Context) error {
	markers, ok, err := h.markersInBoundary(c)
	if !ok {
		return err
	}

	var buf bytes.Buffer
	if err := export.WriteGeoJSON(&buf, markers); err != nil {
		return err
	}

	return c.Blob(http.StatusOK, mimeGeoJSON, buf.Bytes())
}

// GetMarker returns one marker with its sub-marker ids.
func (h *MarkerHandler) GetMarker(c echo.Context) error {
	id, ok, err := markerID(c)
	if !ok {
		return err
	}

	marker, err := h.markerUC.GetMarker(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toMarkerView(marker), "")
}

// ToggleMarker flips the illumination state of a marker.
func (h *MarkerHandler) ToggleMarker(c echo.Context) error {
	return h.modify(c, h.markerUC.ToggleMarker, "Marker toggled")
}

// ConfirmMarker records that the current state was verified.
func (h *MarkerHandler) ConfirmMarker(c echo.Context) error {
	return h.modify(c, h.markerUC.ConfirmMarker, "Marker confirmed")
}

// DeleteMarker removes a marker reported by the caller.
func (h *MarkerHandler) DeleteMarker(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	id, ok, err := markerID(c)
	if !ok {
		return err
	}

	if err := h.markerUC.DeleteMarker(c.Request().Context(), accountID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": id.String()}, "Marker deleted")
}

func (h *MarkerHandler) modify(
	c echo.Context,
	change func(ctx context.Context, id uuid.UUID) (*entity.LightMarker, error),
	message string,
) error {
	id, ok, err := markerID(c)
	if !ok {
		return err
	}

	marker, err := change(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toMarkerView(marker), message)
}

// markersInBoundary parses the box query and lists its markers. ok is false
// when a response or error is already decided.
func (h *MarkerHandler) markersInBoundary(c echo.Context) ([]*entity.LightMarker, bool, error) {
	var northEast, southWest entity.Coordinate

	err := echo.QueryParamsBinder(c).
		MustFloat64("neLat", &northEast.Latitude).
		MustFloat64("neLng", &northEast.Longitude).
		MustFloat64("swLat", &southWest.Latitude).
		MustFloat64("swLng", &southWest.Longitude).
		BindError()
	if err != nil {
		return nil, false, response.BadRequest(c, "INVALID_BOUNDARY_QUERY", "neLat, neLng, swLat and swLng must be numbers")
	}

	markers, err := h.markerUC.ListInBoundary(c.Request().Context(), northEast, southWest)
	if err != nil {
		return nil, false, response.HandleAppError(c, err)
	}

	return markers, true, nil
}

// markerID parses the :id path parameter. ok is false when a response or
// error is already decided.
func markerID(c echo.Context) (uuid.UUID, bool, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, false, response.BadRequest(c, "INVALID_ID", "Invalid marker ID")
	}

	return id, true, nil
}
