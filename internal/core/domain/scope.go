package domain

import "go.mongodb.org/mongo-driver/bson"

// Scope is the per-request data-visibility restriction derived from the
// authenticated principal. It is a value, computed once per request and
// threaded explicitly into handlers and services, never cached or shared.
type Scope struct {
	// BarangayID is the single barangay the request may touch.
	// Empty when Unrestricted.
	BarangayID string
	// Unrestricted marks a super_admin with no barangay binding: no tenant
	// filter is applied, and administrative writes must name an explicit
	// target barangay.
	Unrestricted bool
}

// ResolveScope derives the Scope for a principal.
//
// A super_admin with no barangay binding is unrestricted. A super_admin WITH
// a barangay binding is scoped to it like everyone else (a regional super
// admin). Any other principal without a barangay fails with
// ErrNoTenantAssigned: a non-super-admin account must always carry one.
func ResolveScope(u *User) (Scope, error) {
	if u.Role == RoleSuperAdmin && u.BarangayID == "" {
		return Scope{Unrestricted: true}, nil
	}
	if u.BarangayID == "" {
		return Scope{}, ErrNoTenantAssigned
	}
	return Scope{BarangayID: u.BarangayID}, nil
}

// Filter intersects extra with the scope's barangay restriction. Unrestricted
// scopes pass extra through unchanged. The result is a fresh map; extra is
// never mutated.
func (s Scope) Filter(extra bson.M) bson.M {
	filter := bson.M{}
	for k, v := range extra {
		filter[k] = v
	}
	if !s.Unrestricted {
		filter["barangay_id"] = s.BarangayID
	}
	return filter
}

// CanAccess reports whether the scope may touch records of targetBarangayID.
func (s Scope) CanAccess(targetBarangayID string) bool {
	if s.Unrestricted {
		return true
	}
	return targetBarangayID == s.BarangayID
}

// ValidateOwnership guards targeted reads and mutations of a single existing
// record. It is applied in addition to any query-time filter, because a record
// id supplied directly in a URL path bypasses the list filter entirely.
func (s Scope) ValidateOwnership(recordBarangayID string) error {
	if s.CanAccess(recordBarangayID) {
		return nil
	}
	return ErrCrossTenantAccessDenied
}

// StampTenant returns the barangay id to persist on a new or updated record.
// Scoped callers always get their own barangay regardless of what the payload
// claimed; client-supplied tenant fields are never trusted. Unrestricted
// callers must name a target explicitly.
func (s Scope) StampTenant(payloadBarangayID string) (string, error) {
	if !s.Unrestricted {
		return s.BarangayID, nil
	}
	if payloadBarangayID == "" {
		return "", ErrTenantIDRequired
	}
	return payloadBarangayID, nil
}
