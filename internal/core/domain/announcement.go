package domain

import "time"

// Announcement is a barangay-wide notice visible to resident accounts.
type Announcement struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	BarangayID string    `json:"barangay_id" bson:"barangay_id"`
	Title      string    `json:"title" bson:"title"`
	Body       string    `json:"body" bson:"body"`
	PostedBy   string    `json:"posted_by" bson:"posted_by"`
	Pinned     bool      `json:"pinned" bson:"pinned"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" bson:"updated_at"`
}
