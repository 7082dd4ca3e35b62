package middleware

import (
	"github.com/labstack/echo/v4"

	"mywallet/internal/auth"
	apperrors "mywallet/internal/errors"
)

// userIDContextKey is the echo context key for the authenticated user ID.
const userIDContextKey = "userID"

// UserID extracts the authenticated user ID from the context. Returns
// zero if the auth gate did not run.
func UserID(c echo.Context) uint {
	userID, _ := c.Get(userIDContextKey).(uint)
	return userID
}

// AuthGate returns middleware that resolves the bearer token in the
// Authorization header through the session registry and stores the
// resulting user ID on the context. A missing header is rejected with
// 422, an unknown token with 401. Every authenticated route goes through
// this single gate.
func AuthGate(sessions auth.SessionRegistry) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				httpErr := apperrors.MapErrorToHTTP(apperrors.ErrMissingAuthHeader)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}

			token := auth.StripBearer(header)
			userID, err := sessions.Resolve(c.Request().Context(), token)
			if err != nil {
				httpErr := apperrors.MapErrorToHTTP(err)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}

			c.Set(userIDContextKey, userID)
			return next(c)
		}
	}
}
