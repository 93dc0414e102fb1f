package domain

import "errors"

// Authentication failures (HTTP 401).
var (
	ErrUnauthenticated     = errors.New("missing or malformed authorization header")
	ErrTokenExpired        = errors.New("access token expired")
	ErrInvalidToken        = errors.New("invalid access token")
	ErrPrincipalNotFound   = errors.New("principal not found")
	ErrAccountInactive     = errors.New("account is not active")
	ErrTenantInactive      = errors.New("barangay is not active")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidRefreshToken = errors.New("invalid or revoked refresh token")
)

// Authorization failures (HTTP 403).
var (
	ErrNoTenantAssigned        = errors.New("account has no barangay assigned")
	ErrInsufficientRole        = errors.New("insufficient role")
	ErrCrossTenantAccessDenied = errors.New("record belongs to another barangay")
)

// Request shape failures.
var ErrTenantIDRequired = errors.New("barangay id is required")

var ErrUserExists = errors.New("user already exists")
var ErrBarangayNotFound = errors.New("barangay not found")
var ErrResidentNotFound = errors.New("resident not found")
var ErrAnnouncementNotFound = errors.New("announcement not found")
var ErrDocumentRequestNotFound = errors.New("document request not found")
var ErrInvalidTransition = errors.New("invalid status transition")
