package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bms-ph/records-system/internal/api/metrics"
	"github.com/bms-ph/records-system/internal/core/domain"
	"github.com/bms-ph/records-system/internal/core/ports"
)

// Context keys set by Auth for downstream middleware and handlers.
const (
	ContextPrincipal = "principal"
	ContextScope     = "scope"
)

// authErrorBody is the JSON envelope for guard rejections. Code is machine
// readable; TOKEN_EXPIRED in particular signals clients to refresh and retry.
type authErrorBody struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Auth authenticates the request and resolves its tenant scope: bearer token →
// verified claims → fresh principal lookup → scope. On success the principal
// and scope are injected into the echo context; on any failure the request is
// rejected — store errors and cancellations included (fail-closed).
func Auth(identity ports.IdentityService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, scope, err := authenticate(c, identity)
			if err != nil {
				status, code, msg := classifyAuthError(err)
				metrics.AuthRejectionsTotal.WithLabelValues(code).Inc()
				return c.JSON(status, authErrorBody{Message: msg, Code: code})
			}

			c.Set(ContextPrincipal, user)
			c.Set(ContextScope, scope)

			return next(c)
		}
	}
}

// OptionalAuth runs the same resolution but proceeds as anonymous on any
// failure instead of rejecting. Reserved for endpoints that personalize but
// never gate content; it must not protect tenant-scoped or role-gated data.
func OptionalAuth(identity ports.IdentityService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, scope, err := authenticate(c, identity)
			if err == nil {
				c.Set(ContextPrincipal, user)
				c.Set(ContextScope, scope)
			}
			return next(c)
		}
	}
}

func authenticate(c echo.Context, identity ports.IdentityService) (*domain.User, domain.Scope, error) {
	token, err := bearerToken(c)
	if err != nil {
		return nil, domain.Scope{}, err
	}

	claims, err := identity.VerifyAccessToken(token)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTokenExpired):
			metrics.TokenVerificationsTotal.WithLabelValues("expired").Inc()
		default:
			metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
		}
		return nil, domain.Scope{}, err
	}
	metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()

	user, err := identity.Resolve(c.Request().Context(), claims.PrincipalID)
	if err != nil {
		return nil, domain.Scope{}, err
	}

	scope, err := domain.ResolveScope(user)
	if err != nil {
		return nil, domain.Scope{}, err
	}

	return user, scope, nil
}

func bearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", domain.ErrUnauthenticated
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", domain.ErrUnauthenticated
	}
	return parts[1], nil
}

func classifyAuthError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, "UNAUTHENTICATED", err.Error()
	case errors.Is(err, domain.ErrTokenExpired):
		return http.StatusUnauthorized, "TOKEN_EXPIRED", err.Error()
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, "INVALID_TOKEN", err.Error()
	case errors.Is(err, domain.ErrPrincipalNotFound):
		return http.StatusUnauthorized, "PRINCIPAL_NOT_FOUND", err.Error()
	case errors.Is(err, domain.ErrAccountInactive):
		return http.StatusUnauthorized, "ACCOUNT_INACTIVE", err.Error()
	case errors.Is(err, domain.ErrTenantInactive):
		return http.StatusUnauthorized, "TENANT_INACTIVE", err.Error()
	case errors.Is(err, domain.ErrNoTenantAssigned):
		return http.StatusForbidden, "NO_TENANT_ASSIGNED", err.Error()
	}
	// store failure or cancellation: reject, never admit, never leak the cause
	return http.StatusUnauthorized, "UNAUTHENTICATED", "authentication failed"
}
