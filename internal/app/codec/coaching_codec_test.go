package codec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edustack/coachhub/internal/app/models"
	"github.com/edustack/coachhub/internal/pkg/apperrors"
)

func sampleCenter() *models.CoachingCenter {
	return &models.CoachingCenter{
		ID:      7,
		OwnerID: 3,
		Slug:    "excellence-academy",
		BasicInfo: models.BasicInfo{
			Name:            "Excellence Academy",
			Description:     "JEE and NEET preparation",
			Address:         "12 MG Road",
			City:            "Pune",
			Phone:           "9876543210",
			Email:           "contact@excellence.in",
			EstablishedYear: "2012",
		},
		Logo:            "file-logo",
		ClassroomImages: []string{"file-c1", "file-c2"},
		Facilities:      []string{"Library", "AC Classrooms"},
		Subjects:        []string{"Physics", "Chemistry", "Mathematics"},
		Batches: []models.Batch{
			{Name: "JEE Morning", Subjects: []string{"Physics", "Mathematics"}, Timing: "7-9 AM", Capacity: 40, AvailableSeats: 12, MonthlyFee: 2500, Duration: "12 months"},
			{Name: "NEET Evening", Subjects: []string{"Physics", "Chemistry"}, Timing: "5-7 PM", Capacity: 30, AvailableSeats: 5, MonthlyFee: 3000, Duration: "10 months"},
			{Name: "Foundation", Subjects: []string{}, Timing: "4-5 PM", Capacity: 25, AvailableSeats: 25, MonthlyFee: 1200, Duration: "6 months"},
		},
		Faculty: []models.Faculty{
			{Name: "Dr. Mehta", Qualification: "PhD Physics", Experience: "15 years", Subject: "Physics", Bio: "Former IIT faculty"},
			{Name: "S. Iyer", Qualification: "MSc Chemistry", Experience: "8 years", Subject: "Chemistry"},
		},
		Rating: 4.6,
	}
}

func TestEncodeParallelArrayLengths(t *testing.T) {
	rec := Encode(sampleCenter())

	// Every batches_* array carries one entry per batch even when a batch
	// leaves optional fields empty.
	assert.Len(t, rec.BatchNames, 3)
	assert.Len(t, rec.BatchSubjects, 3)
	assert.Len(t, rec.BatchTimings, 3)
	assert.Len(t, rec.BatchCapacities, 3)
	assert.Len(t, rec.BatchAvailableSeats, 3)
	assert.Len(t, rec.BatchMonthlyFees, 3)
	assert.Len(t, rec.BatchDurations, 3)

	assert.Len(t, rec.FacultyNames, 2)
	assert.Len(t, rec.FacultyQualifications, 2)
	assert.Len(t, rec.FacultyExperiences, 2)
	assert.Len(t, rec.FacultySubjects, 2)
	assert.Len(t, rec.FacultyBios, 2)
	assert.Len(t, rec.FacultyImages, 2)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	center := sampleCenter()

	decoded, err := Decode(Encode(center))
	require.NoError(t, err)

	assert.Equal(t, center.Batches, decoded.Batches)
	assert.Equal(t, center.Faculty, decoded.Faculty)
	assert.Equal(t, center.BasicInfo, decoded.BasicInfo)
	assert.Equal(t, center.Facilities, decoded.Facilities)
	assert.Equal(t, center.Subjects, decoded.Subjects)
	assert.Equal(t, center.Slug, decoded.Slug)
}

func TestRoundTripKeepsSubjectGrouping(t *testing.T) {
	// The legacy storage scheme flatMapped all batch subjects into one
	// combined list, losing which subjects belonged to which batch. The
	// codec keeps one grouped entry per batch instead.
	center := sampleCenter()
	decoded, err := Decode(Encode(center))
	require.NoError(t, err)

	assert.Equal(t, []string{"Physics", "Mathematics"}, decoded.Batches[0].Subjects)
	assert.Equal(t, []string{"Physics", "Chemistry"}, decoded.Batches[1].Subjects)
	assert.Equal(t, []string{}, decoded.Batches[2].Subjects)
}

func TestDecodeRejectsMismatchedBatchArrays(t *testing.T) {
	rec := Encode(sampleCenter())
	// Simulate a writer that appended to one column only
	rec.BatchTimings = rec.BatchTimings[:2]

	_, err := Decode(rec)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrMalformedRecord))
	assert.Contains(t, err.Error(), "batches_timings")
}

func TestDecodeRejectsMismatchedFacultyArrays(t *testing.T) {
	rec := Encode(sampleCenter())
	rec.FacultyBios = append(rec.FacultyBios, "stray entry")

	_, err := Decode(rec)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrMalformedRecord))
	assert.Contains(t, err.Error(), "faculty_bios")
}

func TestDecodeEmptyRecord(t *testing.T) {
	rec := Encode(&models.CoachingCenter{})
	decoded, err := Decode(rec)
	require.NoError(t, err)
	assert.Empty(t, decoded.Batches)
	assert.Empty(t, decoded.Faculty)
}
