package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mywallet/internal/auth"
	"mywallet/internal/errors"
	"mywallet/internal/service"
)

// SessionHandler handles session teardown.
type SessionHandler struct {
	authService service.AuthService
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(authService service.AuthService) *SessionHandler {
	return &SessionHandler{authService: authService}
}

// Logout godoc
// @Summary Revoke the presented session token
// @Tags sessions
// @Security BearerAuth
// @Success 200
// @Failure 422 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /sessions [delete]
func (h *SessionHandler) Logout(c echo.Context) error {
	// Logout does not go through the auth gate: an unknown token is not
	// rejected, deleting it is just a no-op.
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		httpErr := errors.MapErrorToHTTP(errors.ErrMissingAuthHeader)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	token := auth.StripBearer(header)
	if err := h.authService.Logout(c.Request().Context(), token); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.NoContent(http.StatusOK)
}
