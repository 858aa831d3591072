package models

import "time"

// BasicInfo holds the scalar identity fields of a coaching center
type BasicInfo struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	Address         string `json:"address"`
	City            string `json:"city"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Website         string `json:"website,omitempty"`
	EstablishedYear string `json:"establishedYear"`
}

// Batch is one offered batch of a coaching center. Subjects stay grouped
// per batch; the storage codec is responsible for keeping them that way.
type Batch struct {
	Name           string   `json:"name"`
	Subjects       []string `json:"subjects"`
	Timing         string   `json:"timing"`
	Capacity       int      `json:"capacity"`
	AvailableSeats int      `json:"availableSeats"`
	MonthlyFee     int      `json:"monthlyFee"`
	Duration       string   `json:"duration"`
}

// Faculty is one instructor listed by a coaching center
type Faculty struct {
	Name          string `json:"name"`
	Qualification string `json:"qualification"`
	Experience    string `json:"experience"`
	Subject       string `json:"subject"`
	Bio           string `json:"bio,omitempty"`
	Image         string `json:"image,omitempty"`
}

// CoachingCenter is the nested, in-memory form of a coaching center. The
// storage layer flattens Batches and Faculty into parallel array columns;
// nothing outside the codec should ever see that shape.
type CoachingCenter struct {
	ID              int64     `json:"id"`
	OwnerID         int64     `json:"ownerId"`
	Slug            string    `json:"slug"`
	BasicInfo       BasicInfo `json:"basicInfo"`
	Logo            string    `json:"logo,omitempty"`
	CoverImage      string    `json:"coverImage,omitempty"`
	ClassroomImages []string  `json:"classroomImages"`
	Facilities      []string  `json:"facilities"`
	Subjects        []string  `json:"subjects"`
	Batches         []Batch   `json:"batches"`
	Faculty         []Faculty `json:"faculty"`
	Rating          float64   `json:"rating"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// MinMonthlyFee returns the cheapest batch fee, used as the displayed price
// on listing cards. Zero when the center has no batches.
func (c *CoachingCenter) MinMonthlyFee() int {
	min := 0
	for _, b := range c.Batches {
		if min == 0 || (b.MonthlyFee > 0 && b.MonthlyFee < min) {
			min = b.MonthlyFee
		}
	}
	return min
}
