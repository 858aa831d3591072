package dto

// CreateDemoRequest is a student's demo-class booking payload
type CreateDemoRequest struct {
	CoachingID int64  `json:"coachingId" binding:"required,gt=0"`
	Message    string `json:"message" binding:"max=500"`
}

// UpdateDemoRequestStatus is the owner's approve/reject payload
type UpdateDemoRequestStatus struct {
	Status string `json:"status" binding:"required,oneof=APPROVED REJECTED"`
}
