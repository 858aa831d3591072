package dto

import (
	"time"

	"github.com/edustack/coachhub/internal/app/models"
)

// BatchRequest is one batch in a registration/update payload
type BatchRequest struct {
	Name           string   `json:"name" binding:"required"`
	Subjects       []string `json:"subjects" binding:"required"`
	Timing         string   `json:"timing" binding:"required"`
	Capacity       int      `json:"capacity" binding:"required,gt=0"`
	AvailableSeats int      `json:"availableSeats" binding:"gte=0"`
	MonthlyFee     int      `json:"monthlyFee" binding:"required,gt=0"`
	Duration       string   `json:"duration" binding:"required"`
}

// FacultyRequest is one faculty member in a registration/update payload
type FacultyRequest struct {
	Name          string `json:"name" binding:"required"`
	Qualification string `json:"qualification" binding:"required"`
	Experience    string `json:"experience" binding:"required"`
	Subject       string `json:"subject" binding:"required"`
	Bio           string `json:"bio"`
	Image         string `json:"image"`
}

// CreateCoachingRequest is the registration payload. Images are uploaded
// beforehand through the upload endpoints; the payload carries file ids.
type CreateCoachingRequest struct {
	Name            string           `json:"name" binding:"required,min=2,max=100"`
	Description     string           `json:"description" binding:"required"`
	Address         string           `json:"address" binding:"required"`
	City            string           `json:"city" binding:"required"`
	Phone           string           `json:"phone" binding:"required"`
	Email           string           `json:"email" binding:"required,email"`
	Website         string           `json:"website"`
	EstablishedYear string           `json:"establishedYear" binding:"required"`
	Logo            string           `json:"logo"`
	CoverImage      string           `json:"coverImage"`
	ClassroomImages []string         `json:"classroomImages"`
	Facilities      []string         `json:"facilities" binding:"required,min=1"`
	Subjects        []string         `json:"subjects" binding:"required,min=1"`
	Batches         []BatchRequest   `json:"batches" binding:"required,min=1,dive"`
	Faculty         []FacultyRequest `json:"faculty" binding:"required,min=1,dive"`
}

// UpdateCoachingRequest mirrors the create payload; all fields optional
type UpdateCoachingRequest struct {
	Description     *string          `json:"description"`
	Address         *string          `json:"address"`
	City            *string          `json:"city"`
	Phone           *string          `json:"phone"`
	Email           *string          `json:"email"`
	Website         *string          `json:"website"`
	Logo            *string          `json:"logo"`
	CoverImage      *string          `json:"coverImage"`
	ClassroomImages []string         `json:"classroomImages"`
	Facilities      []string         `json:"facilities"`
	Subjects        []string         `json:"subjects"`
	Batches         []BatchRequest   `json:"batches"`
	Faculty         []FacultyRequest `json:"faculty"`
}

// CoachingSummary is one listing card: the decoded record reduced to its
// display fields, with image ids resolved to URLs and defaults filled in.
type CoachingSummary struct {
	ID          int64    `json:"id"`
	Slug        string   `json:"slug"`
	Name        string   `json:"name"`
	City        string   `json:"city"`
	Description string   `json:"description"`
	LogoURL     string   `json:"logoUrl,omitempty"`
	CoverURL    string   `json:"coverUrl,omitempty"`
	Subjects    []string `json:"subjects"`
	Rating      float64  `json:"rating"`
	// MinMonthlyFee is the displayed price used by the price filter
	MinMonthlyFee int `json:"minMonthlyFee"`
}

// CoachingDetail is the full decoded center for the detail view
type CoachingDetail struct {
	models.CoachingCenter
	LogoURL            string   `json:"logoUrl,omitempty"`
	CoverURL           string   `json:"coverUrl,omitempty"`
	ClassroomImageURLs []string `json:"classroomImageUrls"`
}

// ListCoachingFilter carries the client's filter selections. All filtering
// happens in memory over the fetched page, matching the original behavior.
type ListCoachingFilter struct {
	Search     string `form:"search"`
	Subject    string `form:"subject"`
	Rating     string `form:"rating"`     // "4+ Stars" form
	PriceRange string `form:"priceRange"` // "min-max" or "min+"
}

// CoachingListResponse is the filtered page plus when it was fetched
type CoachingListResponse struct {
	Items     []CoachingSummary `json:"items"`
	Total     int               `json:"total"`
	FetchedAt time.Time         `json:"fetchedAt"`
}
