package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bms-ph/records-system/internal/api/metrics"
	"github.com/bms-ph/records-system/internal/core/domain"
)

// denialBody is the JSON envelope for authorization denials. Required and
// current disclose only the role mismatch, never the policy tables behind it.
type denialBody struct {
	Message  string `json:"message"`
	Required string `json:"required,omitempty"`
	Current  string `json:"current,omitempty"`
}

// RequireRoles admits principals whose role is in the allowed set.
// super_admin always passes.
func RequireRoles(allowed ...domain.Role) echo.MiddlewareFunc {
	names := make([]string, len(allowed))
	for i, r := range allowed {
		names[i] = string(r)
	}
	required := strings.Join(names, ",")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get(ContextPrincipal).(*domain.User)
			if !ok {
				return c.JSON(http.StatusUnauthorized, authErrorBody{Message: "missing authentication claims", Code: "UNAUTHENTICATED"})
			}
			if !domain.HasRole(user.Role, allowed...) {
				metrics.AuthzDenialsTotal.WithLabelValues("role").Inc()
				return c.JSON(http.StatusForbidden, denialBody{
					Message:  "insufficient role",
					Required: required,
					Current:  string(user.Role),
				})
			}
			return next(c)
		}
	}
}

// RequireMinimumRole admits principals ranking at or above threshold.
func RequireMinimumRole(threshold domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get(ContextPrincipal).(*domain.User)
			if !ok {
				return c.JSON(http.StatusUnauthorized, authErrorBody{Message: "missing authentication claims", Code: "UNAUTHENTICATED"})
			}
			if !domain.HasMinimumRole(user.Role, threshold) {
				metrics.AuthzDenialsTotal.WithLabelValues("min_role").Inc()
				return c.JSON(http.StatusForbidden, denialBody{
					Message:  "insufficient role",
					Required: string(threshold),
					Current:  string(user.Role),
				})
			}
			return next(c)
		}
	}
}

// RequireUnrestrictedScope admits only principals whose resolved scope is
// unrestricted. Tenant administration crosses barangay boundaries by
// definition, so a super_admin bound to a barangay is refused here like any
// other scoped principal.
func RequireUnrestrictedScope() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			scope, ok := c.Get(ContextScope).(domain.Scope)
			if !ok {
				return c.JSON(http.StatusUnauthorized, authErrorBody{Message: "missing tenant scope", Code: "UNAUTHENTICATED"})
			}
			if !scope.Unrestricted {
				metrics.AuthzDenialsTotal.WithLabelValues("scope").Inc()
				return c.JSON(http.StatusForbidden, denialBody{
					Message: "tenant administration requires an unrestricted account",
				})
			}
			return next(c)
		}
	}
}

// RequirePermission admits principals whose role grants the module/action pair
// in the permission table.
func RequirePermission(module domain.Module, action domain.Action) echo.MiddlewareFunc {
	required := string(module) + "." + string(action)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get(ContextPrincipal).(*domain.User)
			if !ok {
				return c.JSON(http.StatusUnauthorized, authErrorBody{Message: "missing authentication claims", Code: "UNAUTHENTICATED"})
			}
			if !domain.HasModulePermission(user.Role, module, action) {
				metrics.AuthzDenialsTotal.WithLabelValues("permission").Inc()
				return c.JSON(http.StatusForbidden, denialBody{
					Message:  "insufficient role",
					Required: required,
					Current:  string(user.Role),
				})
			}
			return next(c)
		}
	}
}
