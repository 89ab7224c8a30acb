package middleware

import (
	"log/slog"
	"strconv"
	"strings"

	"bpaml/internal/delivery/api/response"
	deliverycontext "bpaml/internal/delivery/context"
	domainerrors "bpaml/internal/domain/errors"
	"bpaml/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware authenticates session tokens and scopes athlete routes to their owner.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate validates the bearer session token and stores its Strava account id on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString, ok := strings.CutPrefix(authHeader, bearerPrefix)
		if !ok || tokenString == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected session token", slog.Any("error", err))

			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		deliverycontext.SetStravaID(c, claims.StravaID)

		return next(c)
	}
}

// RequireSelf rejects requests whose :stravaId differs from the authenticated account.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireSelf(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			stravaID, ok := GetStravaID(c)
			if !ok {
				return response.Unauthorized(c, "UNAUTHORIZED", "Session is missing")
			}

			requested, err := strconv.ParseInt(c.Param(param), 10, 64)
			if err != nil || requested != stravaID {
				return response.HandleAppError(c, domainerrors.ErrForbidden)
			}

			return next(c)
		}
	}
}

// GetStravaID returns the Strava account id set by Authenticate.
func GetStravaID(c echo.Context) (int64, bool) {
	return deliverycontext.GetStravaID(c)
}
