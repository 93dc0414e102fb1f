package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/bms-ph/records-system/internal/core/domain"
	"github.com/bms-ph/records-system/internal/core/ports"
)

// stubIdentity lets each test script the verify and resolve steps.
type stubIdentity struct {
	claims     *ports.AccessClaims
	verifyErr  error
	user       *domain.User
	resolveErr error
}

func (s *stubIdentity) VerifyAccessToken(string) (*ports.AccessClaims, error) {
	if s.verifyErr != nil {
		return nil, s.verifyErr
	}
	return s.claims, nil
}

func (s *stubIdentity) Resolve(context.Context, string) (*domain.User, error) {
	if s.resolveErr != nil {
		return nil, s.resolveErr
	}
	return s.user, nil
}

func newAuthContext(t *testing.T, header string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeAuthError(t *testing.T, rec *httptest.ResponseRecorder) authErrorBody {
	t.Helper()
	var body authErrorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return body
}

func TestAuth_Admitted(t *testing.T) {
	identity := &stubIdentity{
		claims: &ports.AccessClaims{PrincipalID: "u1", Role: domain.RoleStaff, BarangayID: "brgy-5"},
		user:   &domain.User{ID: "u1", Role: domain.RoleStaff, BarangayID: "brgy-5", Status: domain.StatusActive, BarangayActive: true},
	}
	c, rec := newAuthContext(t, "Bearer token")

	called := false
	handler := Auth(identity)(func(c echo.Context) error {
		called = true
		user, ok := c.Get(ContextPrincipal).(*domain.User)
		if !ok || user.ID != "u1" {
			t.Fatalf("principal not set")
		}
		scope, ok := c.Get(ContextScope).(domain.Scope)
		if !ok || scope.BarangayID != "brgy-5" || scope.Unrestricted {
			t.Fatalf("scope not resolved: %+v", scope)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	c, rec := newAuthContext(t, "")

	handler := Auth(&stubIdentity{})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if body := decodeAuthError(t, rec); body.Code != "UNAUTHENTICATED" {
		t.Fatalf("expected UNAUTHENTICATED, got %s", body.Code)
	}
}

func TestAuth_WrongScheme(t *testing.T) {
	c, rec := newAuthContext(t, "Token abc")

	handler := Auth(&stubIdentity{})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_ExpiredVsInvalid(t *testing.T) {
	// expired is a distinct machine-readable code so clients refresh, not re-login
	c, rec := newAuthContext(t, "Bearer expired")
	handler := Auth(&stubIdentity{verifyErr: domain.ErrTokenExpired})(func(c echo.Context) error { return nil })
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if body := decodeAuthError(t, rec); body.Code != "TOKEN_EXPIRED" {
		t.Fatalf("expected TOKEN_EXPIRED, got %s", body.Code)
	}

	c, rec = newAuthContext(t, "Bearer corrupted")
	handler = Auth(&stubIdentity{verifyErr: domain.ErrInvalidToken})(func(c echo.Context) error { return nil })
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if body := decodeAuthError(t, rec); body.Code != "INVALID_TOKEN" {
		t.Fatalf("expected INVALID_TOKEN, got %s", body.Code)
	}
}

func TestAuth_ResolveFailures(t *testing.T) {
	cases := []struct {
		name       string
		resolveErr error
		wantStatus int
		wantCode   string
	}{
		{"principal missing", domain.ErrPrincipalNotFound, http.StatusUnauthorized, "PRINCIPAL_NOT_FOUND"},
		{"account inactive", domain.ErrAccountInactive, http.StatusUnauthorized, "ACCOUNT_INACTIVE"},
		{"barangay inactive", domain.ErrTenantInactive, http.StatusUnauthorized, "TENANT_INACTIVE"},
		{"store unavailable", context.DeadlineExceeded, http.StatusUnauthorized, "UNAUTHENTICATED"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			identity := &stubIdentity{
				claims:     &ports.AccessClaims{PrincipalID: "u1"},
				resolveErr: tc.resolveErr,
			}
			c, rec := newAuthContext(t, "Bearer token")

			handler := Auth(identity)(func(c echo.Context) error {
				t.Fatalf("should not reach next")
				return nil
			})

			if err := handler(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d", tc.wantStatus, rec.Code)
			}
			if body := decodeAuthError(t, rec); body.Code != tc.wantCode {
				t.Fatalf("expected %s, got %s", tc.wantCode, body.Code)
			}
		})
	}
}

func TestAuth_NoTenantAssigned(t *testing.T) {
	identity := &stubIdentity{
		claims: &ports.AccessClaims{PrincipalID: "u1"},
		user:   &domain.User{ID: "u1", Role: domain.RoleStaff, Status: domain.StatusActive},
	}
	c, rec := newAuthContext(t, "Bearer token")

	handler := Auth(identity)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if body := decodeAuthError(t, rec); body.Code != "NO_TENANT_ASSIGNED" {
		t.Fatalf("expected NO_TENANT_ASSIGNED, got %s", body.Code)
	}
}

func TestAuth_UnrestrictedSuperAdmin(t *testing.T) {
	identity := &stubIdentity{
		claims: &ports.AccessClaims{PrincipalID: "u1", Role: domain.RoleSuperAdmin},
		user:   &domain.User{ID: "u1", Role: domain.RoleSuperAdmin, Status: domain.StatusActive},
	}
	c, _ := newAuthContext(t, "Bearer token")

	handler := Auth(identity)(func(c echo.Context) error {
		scope, _ := c.Get(ContextScope).(domain.Scope)
		if !scope.Unrestricted {
			t.Fatalf("expected unrestricted scope, got %+v", scope)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestOptionalAuth_ProceedsAnonymousOnFailure(t *testing.T) {
	c, rec := newAuthContext(t, "Bearer expired")

	called := false
	handler := OptionalAuth(&stubIdentity{verifyErr: domain.ErrTokenExpired})(func(c echo.Context) error {
		called = true
		if c.Get(ContextPrincipal) != nil {
			t.Fatalf("anonymous request should carry no principal")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestOptionalAuth_SetsPrincipalWhenValid(t *testing.T) {
	identity := &stubIdentity{
		claims: &ports.AccessClaims{PrincipalID: "u1"},
		user:   &domain.User{ID: "u1", Role: domain.RoleResident, BarangayID: "brgy-5", Status: domain.StatusActive, BarangayActive: true},
	}
	c, _ := newAuthContext(t, "Bearer token")

	handler := OptionalAuth(identity)(func(c echo.Context) error {
		user, ok := c.Get(ContextPrincipal).(*domain.User)
		if !ok || user.ID != "u1" {
			t.Fatalf("principal not set for valid credential")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}
