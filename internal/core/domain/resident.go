package domain

import "time"

// CivilStatus of a registered resident.
type CivilStatus string

const (
	CivilSingle    CivilStatus = "single"
	CivilMarried   CivilStatus = "married"
	CivilWidowed   CivilStatus = "widowed"
	CivilSeparated CivilStatus = "separated"
)

// Resident is a person registered in a barangay's civil records.
type Resident struct {
	ID          string      `json:"id" bson:"_id,omitempty"`
	BarangayID  string      `json:"barangay_id" bson:"barangay_id"`
	FirstName   string      `json:"first_name" bson:"first_name"`
	MiddleName  string      `json:"middle_name,omitempty" bson:"middle_name,omitempty"`
	LastName    string      `json:"last_name" bson:"last_name"`
	BirthDate   time.Time   `json:"birth_date" bson:"birth_date"`
	Sex         string      `json:"sex" bson:"sex"`
	CivilStatus CivilStatus `json:"civil_status" bson:"civil_status"`
	Address     string      `json:"address" bson:"address"`
	Contact     string      `json:"contact,omitempty" bson:"contact,omitempty"`
	HouseholdID string      `json:"household_id,omitempty" bson:"household_id,omitempty"`
	IsVoter     bool        `json:"is_voter" bson:"is_voter"`
	CreatedAt   time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at" bson:"updated_at"`
}
