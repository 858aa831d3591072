package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edustack/coachhub/internal/app/models/dto"
)

func sampleListing() []dto.CoachingSummary {
	return []dto.CoachingSummary{
		{ID: 1, Name: "Excellence Academy", City: "Delhi", Subjects: []string{"Physics", "Chemistry"}, Rating: 4.5, MinMonthlyFee: 2000},
		{ID: 2, Name: "Bright Future Classes", City: "Mumbai", Subjects: []string{"Mathematics"}, Rating: 3.8, MinMonthlyFee: 1500},
		{ID: 3, Name: "Apex Tutorials", City: "Delhi", Subjects: []string{"Biology", "Chemistry"}, Rating: 4.9, MinMonthlyFee: 3500},
		{ID: 4, Name: "Scholars Point", City: "Pune", Subjects: []string{"Physics", "Mathematics"}, Rating: 4.0, MinMonthlyFee: 1000},
		{ID: 5, Name: "Delhi Champs", City: "Gurgaon", Subjects: []string{"English"}, Rating: 2.9, MinMonthlyFee: 800},
	}
}

func idsOf(items []dto.CoachingSummary) []int64 {
	ids := make([]int64, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}

func TestApplyListingFilterEmptyFilterKeepsAll(t *testing.T) {
	got := ApplyListingFilter(sampleListing(), dto.ListCoachingFilter{})
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, idsOf(got))
}

func TestApplyListingFilterSearchMatchesNameCityAndSubjects(t *testing.T) {
	// "delhi" matches two cities and one name
	got := ApplyListingFilter(sampleListing(), dto.ListCoachingFilter{Search: "delhi"})
	assert.Equal(t, []int64{1, 3, 5}, idsOf(got))

	// subject text participates in search
	got = ApplyListingFilter(sampleListing(), dto.ListCoachingFilter{Search: "math"})
	assert.Equal(t, []int64{2, 4}, idsOf(got))
}

func TestApplyListingFilterSubjectIsExactIgnoringCase(t *testing.T) {
	got := ApplyListingFilter(sampleListing(), dto.ListCoachingFilter{Subject: "chemistry"})
	assert.Equal(t, []int64{1, 3}, idsOf(got))

	// no partial subject matches
	got = ApplyListingFilter(sampleListing(), dto.ListCoachingFilter{Subject: "Chem"})
	assert.Empty(t, got)
}

func TestApplyListingFilterRating(t *testing.T) {
	got := ApplyListingFilter(sampleListing(), dto.ListCoachingFilter{Rating: "4+ Stars"})
	assert.Equal(t, []int64{1, 3, 4}, idsOf(got))

	// unparseable rating text filters nothing
	got = ApplyListingFilter(sampleListing(), dto.ListCoachingFilter{Rating: "best"})
	assert.Len(t, got, 5)
}

func TestApplyListingFilterPriceRange(t *testing.T) {
	got := ApplyListingFilter(sampleListing(), dto.ListCoachingFilter{PriceRange: "1000-2000"})
	assert.Equal(t, []int64{1, 2, 4}, idsOf(got))

	got = ApplyListingFilter(sampleListing(), dto.ListCoachingFilter{PriceRange: "3000+"})
	assert.Equal(t, []int64{3}, idsOf(got))
}

func TestApplyListingFilterStepsIntersect(t *testing.T) {
	got := ApplyListingFilter(sampleListing(), dto.ListCoachingFilter{
		Search:     "delhi",
		Subject:    "Chemistry",
		Rating:     "4+ Stars",
		PriceRange: "0-3000",
	})
	// only Excellence Academy survives every step
	assert.Equal(t, []int64{1}, idsOf(got))
}

func TestApplyListingFilterDoesNotMutateInput(t *testing.T) {
	items := sampleListing()
	_ = ApplyListingFilter(items, dto.ListCoachingFilter{Subject: "Physics"})
	assert.Len(t, items, 5)
}
