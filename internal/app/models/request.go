package models

import "time"

// RequestType is the kind of request a student can raise against a center
type RequestType string

const (
	RequestTypeDemoClass RequestType = "DEMO_CLASS"
)

// RequestStatus tracks the manual approval lifecycle
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "PENDING"
	RequestStatusApproved RequestStatus = "APPROVED"
	RequestStatusRejected RequestStatus = "REJECTED"
)

// DemoRequest is a student's demo-class booking request, awaiting manual
// approval by the coaching center owner.
type DemoRequest struct {
	ID         int64         `json:"id"`
	UserID     int64         `json:"userId"`
	CoachingID int64         `json:"coachingId"`
	Type       RequestType   `json:"type"`
	Status     RequestStatus `json:"status"`
	Message    string        `json:"message,omitempty"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`
}
