package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"lightmap/internal/delivery/api/response"
	domainerrors "lightmap/internal/domain/errors"
	"lightmap/internal/domain/service"
	"lightmap/internal/infra/auth"
	mockSvc "lightmap/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	accountID := uuid.New()

	tests := []struct {
		name       string
		header     string
		setupMocks func(*mockSvc.MockTokenService)
		wantStatus int
	}{
		{
			name:       "valid token",
			header:     "Bearer good",
			setupMocks: func(m *mockSvc.MockTokenService) { m.EXPECT().ValidateToken("good").Return(&service.Claims{AccountID: accountID}, nil) },
			wantStatus: http.StatusOK,
		},
		{name: "missing header", setupMocks: func(*mockSvc.MockTokenService) {}, wantStatus: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic abc", setupMocks: func(*mockSvc.MockTokenService) {}, wantStatus: http.StatusUnauthorized},
		{
			name:       "invalid token",
			header:     "Bearer bad",
			setupMocks: func(m *mockSvc.MockTokenService) { m.EXPECT().ValidateToken("bad").Return(nil, assert.AnError) },
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockSvc.NewMockTokenService(t)
			tt.setupMocks(tokenSvc)
			mw := NewAuthMiddleware(AuthMiddlewareParams{TokenService: tokenSvc, Logger: slog.Default()})

			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := mw.Authenticate(func(c echo.Context) error {
				id, ok := GetAccountID(c)
				assert.True(t, ok)
				assert.Equal(t, accountID, id)

				ctxID, ok := auth.AccountIDFromContext(c.Request().Context())
				assert.True(t, ok)
				assert.Equal(t, accountID, ctxID)

				return c.NoContent(http.StatusOK)
			})(c)
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				body := decode(t, rec)
				assert.False(t, body.Success)
				assert.Equal(t, domainerrors.ErrUnauthorized.ErrorCode(), body.Error.Code)
			}
		})
	}
}

func TestAuthMiddleware_OptionalAuthenticate(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken("expired").Return(nil, assert.AnError)
	mw := NewAuthMiddleware(AuthMiddlewareParams{TokenService: tokenSvc, Logger: slog.Default()})

	for _, header := range []string{"", "Bearer expired"} {
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		if header != "" {
			req.Header.Set(echo.HeaderAuthorization, header)
		}
		rec := httptest.NewRecorder()

		called := false
		err := mw.OptionalAuthenticate(func(c echo.Context) error {
			called = true
			_, ok := GetAccountID(c)
			assert.False(t, ok)

			return c.NoContent(http.StatusOK)
		})(e.NewContext(req, rec))

		require.NoError(t, err)
		assert.True(t, called, "header %q", header)
	}

	tokenSvc.AssertCalled(t, "ValidateToken", mock.Anything)
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "not found", err: domainerrors.ErrMarkerNotFound, wantStatus: http.StatusNotFound, wantCode: "MARKER_NOT_FOUND"},
		{name: "wrapped persistence failure", err: domainerrors.PersistenceFailure(domainerrors.ErrMergeRaceDetected, "x"), wantStatus: http.StatusInternalServerError, wantCode: "PERSISTENCE_FAILURE"},
		{name: "echo error", err: echo.NewHTTPError(http.StatusMethodNotAllowed, "nope"), wantStatus: http.StatusMethodNotAllowed, wantCode: "HTTP_ERROR"},
		{name: "unknown", err: assert.AnError, wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			NewErrorMiddleware(slog.Default()).HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decode(t, rec)
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
		})
	}
}
