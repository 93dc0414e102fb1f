package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bms-ph/records-system/internal/core/domain"
)

// errorResponse is the canonical error envelope for handler-returned errors.
// Code is present only for machine-actionable conditions.
type errorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"message": "...", "code": "..."}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := resolveError(err, log, c)
		_ = c.JSON(status, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Message: fmt.Sprintf("%v", he.Message)}
	}

	// Known domain errors get deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, errorResponse{Message: "invalid credentials"}
	case errors.Is(err, domain.ErrInvalidRefreshToken):
		return http.StatusUnauthorized, errorResponse{Message: err.Error(), Code: "INVALID_REFRESH_TOKEN"}
	case errors.Is(err, domain.ErrTokenExpired):
		return http.StatusUnauthorized, errorResponse{Message: err.Error(), Code: "TOKEN_EXPIRED"}
	case errors.Is(err, domain.ErrAccountInactive):
		return http.StatusUnauthorized, errorResponse{Message: err.Error(), Code: "ACCOUNT_INACTIVE"}
	case errors.Is(err, domain.ErrTenantInactive):
		return http.StatusUnauthorized, errorResponse{Message: err.Error(), Code: "TENANT_INACTIVE"}
	case errors.Is(err, domain.ErrNoTenantAssigned):
		return http.StatusForbidden, errorResponse{Message: err.Error(), Code: "NO_TENANT_ASSIGNED"}
	case errors.Is(err, domain.ErrInsufficientRole):
		return http.StatusForbidden, errorResponse{Message: err.Error(), Code: "INSUFFICIENT_ROLE"}
	case errors.Is(err, domain.ErrCrossTenantAccessDenied):
		return http.StatusForbidden, errorResponse{Message: err.Error(), Code: "CROSS_TENANT_DENIED"}
	case errors.Is(err, domain.ErrTenantIDRequired):
		return http.StatusBadRequest, errorResponse{Message: err.Error(), Code: "TENANT_ID_REQUIRED"}
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, errorResponse{Message: "user already exists"}
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusUnprocessableEntity, errorResponse{Message: err.Error()}
	case errors.Is(err, domain.ErrPrincipalNotFound):
		return http.StatusNotFound, errorResponse{Message: "user not found"}
	case errors.Is(err, domain.ErrBarangayNotFound):
		return http.StatusNotFound, errorResponse{Message: "barangay not found"}
	case errors.Is(err, domain.ErrResidentNotFound):
		return http.StatusNotFound, errorResponse{Message: "resident not found"}
	case errors.Is(err, domain.ErrAnnouncementNotFound):
		return http.StatusNotFound, errorResponse{Message: "announcement not found"}
	case errors.Is(err, domain.ErrDocumentRequestNotFound):
		return http.StatusNotFound, errorResponse{Message: "document request not found"}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Message: "internal server error"}
}
