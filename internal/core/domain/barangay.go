package domain

import "time"

// Barangay is an administrative boundary. Every tenant-scoped record carries
// exactly one barangay id; deactivating a barangay locks out its principals on
// their next request.
type Barangay struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Name         string    `json:"name" bson:"name"`
	Municipality string    `json:"municipality" bson:"municipality"`
	Province     string    `json:"province" bson:"province"`
	Active       bool      `json:"active" bson:"active"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}
