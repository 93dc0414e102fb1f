package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/bms-ph/records-system/internal/core/domain"
)

func newGuardContext(t *testing.T, user *domain.User) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		c.Set(ContextPrincipal, user)
	}
	return c, rec
}

func decodeDenial(t *testing.T, rec *httptest.ResponseRecorder) denialBody {
	t.Helper()
	var body denialBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode denial body: %v", err)
	}
	return body
}

func TestRequireRoles_Admits(t *testing.T) {
	c, rec := newGuardContext(t, &domain.User{ID: "u1", Role: domain.RoleSecretary})

	called := false
	handler := RequireRoles(domain.RoleSecretary, domain.RoleCaptain)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("expected admission, got %d", rec.Code)
	}
}

func TestRequireRoles_SuperAdminBypass(t *testing.T) {
	c, rec := newGuardContext(t, &domain.User{ID: "u1", Role: domain.RoleSuperAdmin})

	handler := RequireRoles(domain.RoleTreasurer)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("super_admin should bypass the allowed set, got %d", rec.Code)
	}
}

func TestRequireRoles_Denies(t *testing.T) {
	c, rec := newGuardContext(t, &domain.User{ID: "u1", Role: domain.RoleResident})

	handler := RequireRoles(domain.RoleTreasurer, domain.RoleCaptain)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	body := decodeDenial(t, rec)
	if body.Required != "treasurer,captain" {
		t.Fatalf("unexpected required: %s", body.Required)
	}
	if body.Current != "resident" {
		t.Fatalf("unexpected current: %s", body.Current)
	}
}

func TestRequireRoles_MissingPrincipal(t *testing.T) {
	c, rec := newGuardContext(t, nil)

	handler := RequireRoles(domain.RoleStaff)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("missing principal is a 401, got %d", rec.Code)
	}
}

func TestRequireMinimumRole(t *testing.T) {
	cases := []struct {
		role      domain.Role
		threshold domain.Role
		admit     bool
	}{
		{domain.RoleCaptain, domain.RoleSecretary, true},
		{domain.RoleSecretary, domain.RoleSecretary, true},
		{domain.RoleTreasurer, domain.RoleSecretary, false},
		{domain.RoleSuperAdmin, domain.RoleAdmin, true},
		{domain.RoleResident, domain.RoleStaff, false},
	}

	for _, tc := range cases {
		c, rec := newGuardContext(t, &domain.User{ID: "u1", Role: tc.role})

		handler := RequireMinimumRole(tc.threshold)(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})

		if err := handler(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if tc.admit && rec.Code != http.StatusOK {
			t.Fatalf("%s >= %s should admit, got %d", tc.role, tc.threshold, rec.Code)
		}
		if !tc.admit && rec.Code != http.StatusForbidden {
			t.Fatalf("%s >= %s should deny, got %d", tc.role, tc.threshold, rec.Code)
		}
	}
}

func TestRequireUnrestrictedScope(t *testing.T) {
	t.Run("unrestricted super_admin admitted", func(t *testing.T) {
		c, rec := newGuardContext(t, &domain.User{ID: "root", Role: domain.RoleSuperAdmin})
		c.Set(ContextScope, domain.Scope{Unrestricted: true})

		handler := RequireUnrestrictedScope()(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		if err := handler(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("expected admission, got %d", rec.Code)
		}
	})

	t.Run("scoped super_admin denied", func(t *testing.T) {
		// a regional super_admin carries a barangay binding and must not
		// reach tenant administration at all
		c, rec := newGuardContext(t, &domain.User{ID: "regional", Role: domain.RoleSuperAdmin, BarangayID: "brgy-A"})
		c.Set(ContextScope, domain.Scope{BarangayID: "brgy-A"})

		handler := RequireUnrestrictedScope()(func(c echo.Context) error {
			t.Fatalf("should not reach next")
			return nil
		})
		if err := handler(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
	})

	t.Run("missing scope rejected", func(t *testing.T) {
		c, rec := newGuardContext(t, &domain.User{ID: "u1", Role: domain.RoleSuperAdmin})

		handler := RequireUnrestrictedScope()(func(c echo.Context) error {
			t.Fatalf("should not reach next")
			return nil
		})
		if err := handler(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("missing scope is a 401, got %d", rec.Code)
		}
	})
}

func TestRequirePermission(t *testing.T) {
	cases := []struct {
		name   string
		role   domain.Role
		module domain.Module
		action domain.Action
		admit  bool
	}{
		{"staff edits residents", domain.RoleStaff, domain.ModuleResidents, domain.ActionEdit, true},
		{"staff cannot view users", domain.RoleStaff, domain.ModuleUsers, domain.ActionView, false},
		{"resident requests documents", domain.RoleResident, domain.ModuleDocumentRequests, domain.ActionCreate, true},
		{"resident cannot view residents", domain.RoleResident, domain.ModuleResidents, domain.ActionView, false},
		{"treasurer unconditional", domain.RoleTreasurer, domain.ModuleUsers, domain.ActionDelete, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newGuardContext(t, &domain.User{ID: "u1", Role: tc.role})

			handler := RequirePermission(tc.module, tc.action)(func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			})

			if err := handler(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if tc.admit && rec.Code != http.StatusOK {
				t.Fatalf("expected admission, got %d", rec.Code)
			}
			if !tc.admit && rec.Code != http.StatusForbidden {
				t.Fatalf("expected denial, got %d", rec.Code)
			}
		})
	}

	t.Run("denial names the module action pair", func(t *testing.T) {
		c, rec := newGuardContext(t, &domain.User{ID: "u1", Role: domain.RoleResident})

		handler := RequirePermission(domain.ModuleResidents, domain.ActionDelete)(func(c echo.Context) error {
			return nil
		})
		if err := handler(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if body := decodeDenial(t, rec); body.Required != "residents.delete" {
			t.Fatalf("unexpected required: %s", body.Required)
		}
	})
}
