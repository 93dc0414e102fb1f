package domain

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestResolveScope_UnrestrictedSuperAdmin(t *testing.T) {
	scope, err := ResolveScope(&User{Role: RoleSuperAdmin})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !scope.Unrestricted {
		t.Fatalf("super_admin with no barangay should be unrestricted")
	}
	if scope.BarangayID != "" {
		t.Fatalf("unrestricted scope should carry no barangay id")
	}
}

func TestResolveScope_ScopedSuperAdmin(t *testing.T) {
	// a super_admin bound to a barangay is a regional admin: scoped like anyone else
	scope, err := ResolveScope(&User{Role: RoleSuperAdmin, BarangayID: "brgy-7"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scope.Unrestricted {
		t.Fatalf("super_admin with a barangay must not be unrestricted")
	}
	if scope.BarangayID != "brgy-7" {
		t.Fatalf("expected barangay brgy-7, got %q", scope.BarangayID)
	}
}

func TestResolveScope_ScopedRoles(t *testing.T) {
	for _, r := range []Role{RoleResident, RoleStaff, RoleTreasurer, RoleSecretary, RoleCaptain, RoleAdmin} {
		scope, err := ResolveScope(&User{Role: r, BarangayID: "brgy-5"})
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", r, err)
		}
		if scope.Unrestricted || scope.BarangayID != "brgy-5" {
			t.Fatalf("%s: expected scope bound to brgy-5, got %+v", r, scope)
		}
	}
}

func TestResolveScope_NoTenantAssigned(t *testing.T) {
	_, err := ResolveScope(&User{Role: RoleStaff})
	if !errors.Is(err, ErrNoTenantAssigned) {
		t.Fatalf("expected ErrNoTenantAssigned, got %v", err)
	}
}

func TestResolveScope_Idempotent(t *testing.T) {
	u := &User{Role: RoleCaptain, BarangayID: "brgy-5"}
	first, err := ResolveScope(u)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := ResolveScope(u)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Fatalf("re-resolving the same principal should yield the same scope")
	}
}

func TestScopeFilter(t *testing.T) {
	scoped := Scope{BarangayID: "brgy-5"}
	extra := bson.M{"status": "pending"}

	filter := scoped.Filter(extra)
	if filter["barangay_id"] != "brgy-5" {
		t.Fatalf("scoped filter should pin barangay_id, got %v", filter)
	}
	if filter["status"] != "pending" {
		t.Fatalf("scoped filter should keep extra conditions, got %v", filter)
	}
	if _, mutated := extra["barangay_id"]; mutated {
		t.Fatalf("Filter must not mutate the extra map")
	}

	unrestricted := Scope{Unrestricted: true}
	filter = unrestricted.Filter(extra)
	if _, present := filter["barangay_id"]; present {
		t.Fatalf("unrestricted filter should carry no barangay restriction")
	}
	if filter["status"] != "pending" {
		t.Fatalf("unrestricted filter should keep extra conditions")
	}
}

func TestScopeCanAccess(t *testing.T) {
	scoped := Scope{BarangayID: "A"}
	if !scoped.CanAccess("A") {
		t.Fatalf("scope should access its own barangay")
	}
	if scoped.CanAccess("B") {
		t.Fatalf("scope should not access a foreign barangay")
	}
	if !(Scope{Unrestricted: true}).CanAccess("B") {
		t.Fatalf("unrestricted scope should access any barangay")
	}
}

func TestValidateOwnership(t *testing.T) {
	scoped := Scope{BarangayID: "A"}
	if err := scoped.ValidateOwnership("A"); err != nil {
		t.Fatalf("own record should pass: %v", err)
	}
	if err := scoped.ValidateOwnership("B"); !errors.Is(err, ErrCrossTenantAccessDenied) {
		t.Fatalf("expected ErrCrossTenantAccessDenied, got %v", err)
	}
	if err := (Scope{Unrestricted: true}).ValidateOwnership("B"); err != nil {
		t.Fatalf("unrestricted scope should always pass: %v", err)
	}
}

func TestStampTenant(t *testing.T) {
	scoped := Scope{BarangayID: "A"}

	// forged payload tenant is silently overwritten
	got, err := scoped.StampTenant("B")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "A" {
		t.Fatalf("scoped caller should always stamp its own barangay, got %q", got)
	}

	unrestricted := Scope{Unrestricted: true}
	if _, err := unrestricted.StampTenant(""); !errors.Is(err, ErrTenantIDRequired) {
		t.Fatalf("unrestricted caller without target should fail, got %v", err)
	}
	got, err = unrestricted.StampTenant("B")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "B" {
		t.Fatalf("unrestricted caller should keep the named target, got %q", got)
	}
}
