package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bms-ph/records-system/internal/api/middleware"
	"github.com/bms-ph/records-system/internal/core/domain"
)

// ctxAuth extracts the principal and scope injected by the Auth middleware and
// performs a fast-fail check before any service call: both must be present, or
// the route was wired without the guard — reject with 401 rather than proceed
// unscoped.
func ctxAuth(c echo.Context) (*domain.User, domain.Scope, error) {
	user, ok := c.Get(middleware.ContextPrincipal).(*domain.User)
	if !ok || user == nil {
		return nil, domain.Scope{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	scope, ok := c.Get(middleware.ContextScope).(domain.Scope)
	if !ok {
		return nil, domain.Scope{}, echo.NewHTTPError(http.StatusUnauthorized, "missing tenant scope")
	}

	return user, scope, nil
}
