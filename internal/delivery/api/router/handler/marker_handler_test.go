package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	apimiddleware "lightmap/internal/delivery/api/middleware"
	"lightmap/internal/delivery/api/response"
	"lightmap/internal/delivery/api/validator"
	"lightmap/internal/domain/entity"
	domainerrors "lightmap/internal/domain/errors"
	mockUsecase "lightmap/internal/mocks/usecase"
	"lightmap/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type markerHandlerFixture struct {
	echo        *echo.Echo
	submissions *mockUsecase.MockSubmissionUsecase
	markers     *mockUsecase.MockMarkerUsecase
	accountID   uuid.UUID
}

// newMarkerHandlerFixture registers the handler without auth middleware; a
// caller account is injected for the routes that need one.
func newMarkerHandlerFixture(t *testing.T) *markerHandlerFixture {
	t.Helper()

	f := &markerHandlerFixture{
		echo:        echo.New(),
		submissions: mockUsecase.NewMockSubmissionUsecase(t),
		markers:     mockUsecase.NewMockMarkerUsecase(t),
		accountID:   uuid.New(),
	}
	f.echo.Validator = validator.New()
	f.echo.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(slog.Default()).HandleHTTPError

	h := NewMarkerHandler(MarkerHandlerParams{
		SubmissionUC: f.submissions,
		MarkerUC:     f.markers,
		Logger:       slog.Default(),
	})

	withAccount := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("accountID", f.accountID)

			return next(c)
		}
	}

	g := f.echo.Group("/api/v1/markers")
	g.POST("", h.SubmitObservation)
	g.GET("", h.ListMarkers)
	g.GET("/kml", h.ExportKML)
	g.GET("/geojson", h.ExportGeoJSON)
	g.GET("/:id", h.GetMarker)
	g.POST("/:id/toggle", h.ToggleMarker)
	g.POST("/:id/confirm", h.ConfirmMarker)
	g.DELETE("/:id", h.DeleteMarker, withAccount)

	return f
}

func (f *markerHandlerFixture) do(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func decodeMarker(t *testing.T, rec *httptest.ResponseRecorder) (response.Response, MarkerView) {
	t.Helper()

	var envelope struct {
		response.Response
		Data MarkerView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	return envelope.Response, envelope.Data
}

func TestMarkerHandler_SubmitObservation(t *testing.T) {
	parentID := uuid.New()
	subID := uuid.New()

	tests := []struct {
		name       string
		body       string
		setupMocks func(*mockUsecase.MockSubmissionUsecase)
		wantStatus int
		wantCode   string
		check      func(t *testing.T, view MarkerView)
	}{
		{
			name: "merged observation returns the parent",
			body: `{"latitude":-12.225873,"longitude":-38.964674,"illuminated":false}`,
			setupMocks: func(m *mockUsecase.MockSubmissionUsecase) {
				m.EXPECT().
					AddObservation(mock.Anything, &usecase.SubmitObservationInput{Latitude: -12.225873, Longitude: -38.964674, Illuminated: false}).
					Return(&entity.LightMarker{
						ID:           parentID,
						Coordinate:   entity.Coordinate{Latitude: -12.225872, Longitude: -38.964673},
						SubMarkerIDs: []uuid.UUID{subID},
					}, nil)
			},
			wantStatus: http.StatusCreated,
			check: func(t *testing.T, view MarkerView) {
				assert.Equal(t, parentID.String(), view.ID)
				assert.False(t, view.Illuminated)
				assert.Nil(t, view.ConfirmedAt)
				assert.Equal(t, []string{subID.String()}, view.SubMarkerIDs)
				assert.Nil(t, view.ParentMarkerID)
			},
		},
		{
			name: "zero coordinates are valid",
			body: `{"latitude":0,"longitude":0,"illuminated":true}`,
			setupMocks: func(m *mockUsecase.MockSubmissionUsecase) {
				m.EXPECT().AddObservation(mock.Anything, mock.Anything).
					Return(&entity.LightMarker{ID: uuid.New(), Illuminated: true}, nil)
			},
			wantStatus: http.StatusCreated,
			check: func(t *testing.T, view MarkerView) {
				assert.True(t, view.Illuminated)
				assert.Empty(t, view.SubMarkerIDs)
				assert.NotNil(t, view.SubMarkerIDs)
			},
		},
		{
			name:       "missing illuminated",
			body:       `{"latitude":1,"longitude":1}`,
			setupMocks: func(*mockUsecase.MockSubmissionUsecase) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:       "latitude out of range",
			body:       `{"latitude":91,"longitude":1,"illuminated":true}`,
			setupMocks: func(*mockUsecase.MockSubmissionUsecase) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:       "malformed json",
			body:       `{"latitude":`,
			setupMocks: func(*mockUsecase.MockSubmissionUsecase) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
		{
			name: "persistence failure is a 500 without details",
			body: `{"latitude":1,"longitude":1,"illuminated":true}`,
			setupMocks: func(m *mockUsecase.MockSubmissionUsecase) {
				m.EXPECT().AddObservation(mock.Anything, mock.Anything).
					Return(nil, domainerrors.PersistenceFailure(domainerrors.ErrMergeRaceDetected, "observation was not stored"))
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "PERSISTENCE_FAILURE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newMarkerHandlerFixture(t)
			tt.setupMocks(f.submissions)

			rec := f.do(http.MethodPost, "/api/v1/markers", tt.body)
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())

			envelope, view := decodeMarker(t, rec)
			if tt.wantCode != "" {
				assert.False(t, envelope.Success)
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tt.wantCode, envelope.Error.Code)

				return
			}

			assert.True(t, envelope.Success)
			tt.check(t, view)
		})
	}
}

func TestMarkerHandler_ListMarkers(t *testing.T) {
	f := newMarkerHandlerFixture(t)
	marker := &entity.LightMarker{ID: uuid.New(), Coordinate: entity.Coordinate{Latitude: 1, Longitude: 1}, Illuminated: true}

	f.markers.EXPECT().
		ListInBoundary(mock.Anything, entity.Coordinate{Latitude: 2, Longitude: 2}, entity.Coordinate{Latitude: 0, Longitude: 0}).
		Return([]*entity.LightMarker{marker}, nil)

	rec := f.do(http.MethodGet, "/api/v1/markers?neLat=2&neLng=2&swLat=0&swLng=0", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data []MarkerView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, marker.ID.String(), envelope.Data[0].ID)
}

func TestMarkerHandler_ListMarkers_BadQuery(t *testing.T) {
	f := newMarkerHandlerFixture(t)

	rec := f.do(http.MethodGet, "/api/v1/markers?neLat=2&neLng=east", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_BOUNDARY_QUERY")
}

func TestMarkerHandler_ListMarkers_InvertedBoundary(t *testing.T) {
	f := newMarkerHandlerFixture(t)
	f.markers.EXPECT().ListInBoundary(mock.Anything, mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidBoundary)

	rec := f.do(http.MethodGet, "/api/v1/markers?neLat=0&neLng=2&swLat=2&swLng=0", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_BOUNDARY")
}

func TestMarkerHandler_Exports(t *testing.T) {
	marker := &entity.LightMarker{ID: uuid.New(), Coordinate: entity.Coordinate{Latitude: 1.5, Longitude: 2.5}, Illuminated: true}

	tests := []struct {
		path        string
		contentType string
		contains    string
	}{
		{path: "/api/v1/markers/kml", contentType: mimeKML, contains: "<coordinates>2.5,1.5,0</coordinates>"},
		{path: "/api/v1/markers/geojson", contentType: mimeGeoJSON, contains: `"FeatureCollection"`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			f := newMarkerHandlerFixture(t)
			f.markers.EXPECT().ListInBoundary(mock.Anything, mock.Anything, mock.Anything).Return([]*entity.LightMarker{marker}, nil)

			rec := f.do(http.MethodGet, tt.path+"?neLat=10&neLng=10&swLat=-10&swLng=-10", "")
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.contentType, rec.Header().Get(echo.HeaderContentType))
			assert.Contains(t, rec.Body.String(), tt.contains)
		})
	}
}

func TestMarkerHandler_GetMarker(t *testing.T) {
	f := newMarkerHandlerFixture(t)
	id := uuid.New()

	f.markers.EXPECT().GetMarker(mock.Anything, id).Return(nil, domainerrors.ErrMarkerNotFound)

	rec := f.do(http.MethodGet, "/api/v1/markers/"+id.String(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "MARKER_NOT_FOUND")

	rec = f.do(http.MethodGet, "/api/v1/markers/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")
}

func TestMarkerHandler_ToggleAndConfirm(t *testing.T) {
	f := newMarkerHandlerFixture(t)
	id := uuid.New()
	confirmedAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	f.markers.EXPECT().ToggleMarker(mock.Anything, id).Return(&entity.LightMarker{ID: id, Illuminated: false}, nil)
	f.markers.EXPECT().ConfirmMarker(mock.Anything, id).Return(&entity.LightMarker{ID: id, ConfirmedAt: &confirmedAt}, nil)

	rec := f.do(http.MethodPost, "/api/v1/markers/"+id.String()+"/toggle", "")
	require.Equal(t, http.StatusOK, rec.Code)
	_, view := decodeMarker(t, rec)
	assert.False(t, view.Illuminated)

	rec = f.do(http.MethodPost, "/api/v1/markers/"+id.String()+"/confirm", "")
	require.Equal(t, http.StatusOK, rec.Code)
	_, view = decodeMarker(t, rec)
	require.NotNil(t, view.ConfirmedAt)
	assert.True(t, confirmedAt.Equal(*view.ConfirmedAt))
}

func TestMarkerHandler_DeleteMarker(t *testing.T) {
	f := newMarkerHandlerFixture(t)
	owned := uuid.New()
	foreign := uuid.New()

	f.markers.EXPECT().DeleteMarker(mock.Anything, f.accountID, owned).Return(nil)
	f.markers.EXPECT().DeleteMarker(mock.Anything, f.accountID, foreign).Return(domainerrors.ErrMarkerOwnershipViolation)

	rec := f.do(http.MethodDelete, "/api/v1/markers/"+owned.String(), "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodDelete, "/api/v1/markers/"+foreign.String(), "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "MARKER_OWNERSHIP_VIOLATION")
}
