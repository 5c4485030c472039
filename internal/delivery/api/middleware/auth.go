package middleware

import (
	"log/slog"
	"strings"

	"lightmap/internal/delivery/api/response"
	deliverycontext "lightmap/internal/delivery/context"
	domainerrors "lightmap/internal/domain/errors"
	"lightmap/internal/domain/service"
	"lightmap/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const contextKeyAccountID = "accountID"

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	Logger       *slog.Logger
}

// AuthMiddleware validates bearer tokens.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: params.TokenService, logger: params.Logger}
}

// Authenticate rejects requests without a valid access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := bearerToken(c)
		if !ok {
			return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "Authorization header must carry a Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil || claims.AccountID == uuid.Nil {
			return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "Invalid or expired token")
		}

		setAccountID(c, claims.AccountID)

		return next(c)
	}
}

// OptionalAuthenticate attaches the account of a valid token and lets every
// other request through anonymously.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := bearerToken(c)
		if !ok {
			return next(c)
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil || claims.AccountID == uuid.Nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Ignoring invalid bearer token", slog.Any("error", err))

			return next(c)
		}

		setAccountID(c, claims.AccountID)

		return next(c)
	}
}

// GetAccountID returns the account set by the auth middleware.
func GetAccountID(c echo.Context) (uuid.UUID, bool) {
	accountID, ok := c.Get(contextKeyAccountID).(uuid.UUID)

	return accountID, ok
}

func setAccountID(c echo.Context, accountID uuid.UUID) {
	c.Set(contextKeyAccountID, accountID)
	c.SetRequest(c.Request().WithContext(auth.WithAccountID(c.Request().Context(), accountID)))
}

func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || strings.TrimSpace(token) == "" {
		return "", false
	}

	return strings.TrimSpace(token), true
}
