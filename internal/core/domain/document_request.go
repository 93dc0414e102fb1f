package domain

import "time"

// RequestStatus represents the lifecycle state of a document request.
type RequestStatus string

const (
	RequestPending    RequestStatus = "pending"
	RequestProcessing RequestStatus = "processing"
	RequestReleased   RequestStatus = "released"
	RequestRejected   RequestStatus = "rejected"
)

// validRequestTransitions defines the allowed state machine transitions.
var validRequestTransitions = map[RequestStatus][]RequestStatus{
	RequestPending:    {RequestProcessing, RequestRejected},
	RequestProcessing: {RequestReleased, RequestRejected},
}

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	for _, allowed := range validRequestTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// DocumentType is the kind of certificate a resident may request.
type DocumentType string

const (
	DocBarangayClearance DocumentType = "barangay_clearance"
	DocCertResidency     DocumentType = "certificate_of_residency"
	DocCertIndigency     DocumentType = "certificate_of_indigency"
	DocBusinessClearance DocumentType = "business_clearance"
)

// DocumentRequest is a resident's application for an official barangay document.
type DocumentRequest struct {
	ID          string        `json:"id" bson:"_id,omitempty"`
	BarangayID  string        `json:"barangay_id" bson:"barangay_id"`
	RequestedBy string        `json:"requested_by" bson:"requested_by"`
	Type        DocumentType  `json:"type" bson:"type"`
	Purpose     string        `json:"purpose" bson:"purpose"`
	Status      RequestStatus `json:"status" bson:"status"`
	Remarks     string        `json:"remarks,omitempty" bson:"remarks,omitempty"`
	ProcessedBy string        `json:"processed_by,omitempty" bson:"processed_by,omitempty"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" bson:"updated_at"`
}
