// Package codec maps the nested CoachingCenter shape used by services and
// handlers to the flat parallel-array shape stored in the coaching_centers
// table, and back. Each batch/faculty field becomes one array column; entry i
// of every batches_* column describes batch i, and likewise for faculty_*.
//
// The invariant that all batches_* columns (and all faculty_* columns) have
// equal length is enforced structurally on encode: every array is derived
// from the same slice of objects in a single pass, so a writer cannot append
// to one column without the others. On decode the lengths are checked and a
// mismatch is reported as a malformed-record error rather than being
// truncated or allowed to panic.
package codec

import (
	"fmt"
	"strings"

	"github.com/edustack/coachhub/internal/app/models"
	"github.com/edustack/coachhub/internal/pkg/apperrors"
)

// subjectGroupSep joins one batch's subjects into a single array entry, so
// per-batch subject grouping survives the flattening. The separator is
// rejected inside subject names at validation time.
const subjectGroupSep = "|"

// FlatCoachingRecord is the storage shape of a coaching center: scalars plus
// one same-length array per nested field. Field names match the table
// columns one to one.
type FlatCoachingRecord struct {
	ID              int64
	OwnerID         int64
	Slug            string
	Name            string
	Description     string
	Address         string
	City            string
	Phone           string
	Email           string
	Website         string
	EstablishedYear string
	Logo            string
	CoverImage      string
	ClassroomImages []string
	Facilities      []string
	Subjects        []string
	Rating          float64

	BatchNames          []string
	BatchSubjects       []string
	BatchTimings        []string
	BatchCapacities     []int32
	BatchAvailableSeats []int32
	BatchMonthlyFees    []int32
	BatchDurations      []string

	FacultyNames          []string
	FacultyQualifications []string
	FacultyExperiences    []string
	FacultySubjects       []string
	FacultyBios           []string
	FacultyImages         []string
}

// Encode flattens a nested coaching center into its parallel-array storage
// form. Pure transform: image references must already be resolved to stored
// file ids before this point.
func Encode(center *models.CoachingCenter) *FlatCoachingRecord {
	rec := &FlatCoachingRecord{
		ID:              center.ID,
		OwnerID:         center.OwnerID,
		Slug:            center.Slug,
		Name:            center.BasicInfo.Name,
		Description:     center.BasicInfo.Description,
		Address:         center.BasicInfo.Address,
		City:            center.BasicInfo.City,
		Phone:           center.BasicInfo.Phone,
		Email:           center.BasicInfo.Email,
		Website:         center.BasicInfo.Website,
		EstablishedYear: center.BasicInfo.EstablishedYear,
		Logo:            center.Logo,
		CoverImage:      center.CoverImage,
		ClassroomImages: center.ClassroomImages,
		Facilities:      center.Facilities,
		Subjects:        center.Subjects,
		Rating:          center.Rating,
	}

	n := len(center.Batches)
	rec.BatchNames = make([]string, n)
	rec.BatchSubjects = make([]string, n)
	rec.BatchTimings = make([]string, n)
	rec.BatchCapacities = make([]int32, n)
	rec.BatchAvailableSeats = make([]int32, n)
	rec.BatchMonthlyFees = make([]int32, n)
	rec.BatchDurations = make([]string, n)
	for i, b := range center.Batches {
		rec.BatchNames[i] = b.Name
		rec.BatchSubjects[i] = strings.Join(b.Subjects, subjectGroupSep)
		rec.BatchTimings[i] = b.Timing
		rec.BatchCapacities[i] = int32(b.Capacity)
		rec.BatchAvailableSeats[i] = int32(b.AvailableSeats)
		rec.BatchMonthlyFees[i] = int32(b.MonthlyFee)
		rec.BatchDurations[i] = b.Duration
	}

	m := len(center.Faculty)
	rec.FacultyNames = make([]string, m)
	rec.FacultyQualifications = make([]string, m)
	rec.FacultyExperiences = make([]string, m)
	rec.FacultySubjects = make([]string, m)
	rec.FacultyBios = make([]string, m)
	rec.FacultyImages = make([]string, m)
	for i, f := range center.Faculty {
		rec.FacultyNames[i] = f.Name
		rec.FacultyQualifications[i] = f.Qualification
		rec.FacultyExperiences[i] = f.Experience
		rec.FacultySubjects[i] = f.Subject
		rec.FacultyBios[i] = f.Bio
		rec.FacultyImages[i] = f.Image
	}

	return rec
}

// Decode zips a flat record back into the nested form. Returns a
// malformed-record error when the parallel arrays disagree on length.
func Decode(rec *FlatCoachingRecord) (*models.CoachingCenter, error) {
	n, err := batchCount(rec)
	if err != nil {
		return nil, err
	}
	m, err := facultyCount(rec)
	if err != nil {
		return nil, err
	}

	center := &models.CoachingCenter{
		ID:      rec.ID,
		OwnerID: rec.OwnerID,
		Slug:    rec.Slug,
		BasicInfo: models.BasicInfo{
			Name:            rec.Name,
			Description:     rec.Description,
			Address:         rec.Address,
			City:            rec.City,
			Phone:           rec.Phone,
			Email:           rec.Email,
			Website:         rec.Website,
			EstablishedYear: rec.EstablishedYear,
		},
		Logo:            rec.Logo,
		CoverImage:      rec.CoverImage,
		ClassroomImages: rec.ClassroomImages,
		Facilities:      rec.Facilities,
		Subjects:        rec.Subjects,
		Rating:          rec.Rating,
	}

	center.Batches = make([]models.Batch, n)
	for i := 0; i < n; i++ {
		center.Batches[i] = models.Batch{
			Name:           rec.BatchNames[i],
			Subjects:       splitSubjectGroup(rec.BatchSubjects[i]),
			Timing:         rec.BatchTimings[i],
			Capacity:       int(rec.BatchCapacities[i]),
			AvailableSeats: int(rec.BatchAvailableSeats[i]),
			MonthlyFee:     int(rec.BatchMonthlyFees[i]),
			Duration:       rec.BatchDurations[i],
		}
	}

	center.Faculty = make([]models.Faculty, m)
	for i := 0; i < m; i++ {
		center.Faculty[i] = models.Faculty{
			Name:          rec.FacultyNames[i],
			Qualification: rec.FacultyQualifications[i],
			Experience:    rec.FacultyExperiences[i],
			Subject:       rec.FacultySubjects[i],
			Bio:           rec.FacultyBios[i],
			Image:         rec.FacultyImages[i],
		}
	}

	return center, nil
}

// batchCount returns the shared length of all batches_* arrays, or a
// malformed-record error when they disagree.
func batchCount(rec *FlatCoachingRecord) (int, error) {
	n := len(rec.BatchNames)
	lengths := map[string]int{
		"batches_subjects":        len(rec.BatchSubjects),
		"batches_timings":         len(rec.BatchTimings),
		"batches_capacities":      len(rec.BatchCapacities),
		"batches_available_seats": len(rec.BatchAvailableSeats),
		"batches_monthly_fees":    len(rec.BatchMonthlyFees),
		"batches_durations":       len(rec.BatchDurations),
	}
	for col, l := range lengths {
		if l != n {
			return 0, apperrors.NewMalformedRecordError(fmt.Sprintf(
				"coaching record %d: %s has %d entries, batches_names has %d", rec.ID, col, l, n))
		}
	}
	return n, nil
}

// facultyCount mirrors batchCount for the faculty_* arrays.
func facultyCount(rec *FlatCoachingRecord) (int, error) {
	m := len(rec.FacultyNames)
	lengths := map[string]int{
		"faculty_qualifications": len(rec.FacultyQualifications),
		"faculty_experiences":    len(rec.FacultyExperiences),
		"faculty_subjects":       len(rec.FacultySubjects),
		"faculty_bios":           len(rec.FacultyBios),
		"faculty_images":         len(rec.FacultyImages),
	}
	for col, l := range lengths {
		if l != m {
			return 0, apperrors.NewMalformedRecordError(fmt.Sprintf(
				"coaching record %d: %s has %d entries, faculty_names has %d", rec.ID, col, l, m))
		}
	}
	return m, nil
}

func splitSubjectGroup(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, subjectGroupSep)
}
