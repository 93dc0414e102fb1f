package domain

import "time"

// AccountStatus is the lifecycle state of a user account.
type AccountStatus string

const (
	StatusActive    AccountStatus = "active"
	StatusInactive  AccountStatus = "inactive"
	StatusSuspended AccountStatus = "suspended"
)

// User models an authenticated actor in the system. BarangayID is empty only
// for the unrestricted super_admin case; BarangayActive reflects the bound
// barangay's active flag as of the most recent lookup.
type User struct {
	ID             string        `json:"id"`
	Email          string        `json:"email"`
	FirstName      string        `json:"first_name"`
	LastName       string        `json:"last_name"`
	PasswordHash   string        `json:"-"`
	Role           Role          `json:"role"`
	BarangayID     string        `json:"barangay_id,omitempty"`
	Status         AccountStatus `json:"status"`
	BarangayActive bool          `json:"-"`
	LastSeenAt     time.Time     `json:"last_seen_at,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}
