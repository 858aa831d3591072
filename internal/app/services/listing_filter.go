package services

import (
	"strconv"
	"strings"

	"github.com/edustack/coachhub/internal/app/models/dto"
)

// ApplyListingFilter narrows a fetched page of coaching summaries by the
// client's selections. Filtering happens in memory over the page, after the
// fetch; an empty filter returns the slice unchanged. Steps compose by
// intersection, each one only removing entries.
func ApplyListingFilter(items []dto.CoachingSummary, f dto.ListCoachingFilter) []dto.CoachingSummary {
	out := items
	if term := strings.TrimSpace(f.Search); term != "" {
		out = filterBySearch(out, term)
	}
	if f.Subject != "" {
		out = filterBySubject(out, f.Subject)
	}
	if min, ok := parseRatingFilter(f.Rating); ok {
		out = filterByRating(out, min)
	}
	if lo, hi, ok := parsePriceRange(f.PriceRange); ok {
		out = filterByPrice(out, lo, hi)
	}
	return out
}

// filterBySearch keeps entries whose name, city or any subject contains the
// term, case-insensitively.
func filterBySearch(items []dto.CoachingSummary, term string) []dto.CoachingSummary {
	needle := strings.ToLower(term)
	out := make([]dto.CoachingSummary, 0, len(items))
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Name), needle) ||
			strings.Contains(strings.ToLower(it.City), needle) ||
			anySubjectContains(it.Subjects, needle) {
			out = append(out, it)
		}
	}
	return out
}

func anySubjectContains(subjects []string, needle string) bool {
	for _, s := range subjects {
		if strings.Contains(strings.ToLower(s), needle) {
			return true
		}
	}
	return false
}

// filterBySubject keeps entries offering the subject exactly, ignoring case
func filterBySubject(items []dto.CoachingSummary, subject string) []dto.CoachingSummary {
	out := make([]dto.CoachingSummary, 0, len(items))
	for _, it := range items {
		for _, s := range it.Subjects {
			if strings.EqualFold(s, subject) {
				out = append(out, it)
				break
			}
		}
	}
	return out
}

// parseRatingFilter reads the "4+ Stars" display form. Anything it cannot
// parse means no rating filter.
func parseRatingFilter(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	s = strings.TrimSuffix(s, " Stars")
	s = strings.TrimSuffix(s, "+")
	min, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return min, true
}

func filterByRating(items []dto.CoachingSummary, min float64) []dto.CoachingSummary {
	out := make([]dto.CoachingSummary, 0, len(items))
	for _, it := range items {
		if it.Rating >= min {
			out = append(out, it)
		}
	}
	return out
}

// parsePriceRange reads "min-max" or "min+" over the displayed monthly fee.
// hi < 0 means unbounded above.
func parsePriceRange(s string) (lo, hi int, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, 0, false
	}

	if strings.HasSuffix(s, "+") {
		lo, err := strconv.Atoi(strings.TrimSuffix(s, "+"))
		if err != nil {
			return 0, 0, false
		}
		return lo, -1, true
	}

	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	lo, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, false
	}
	hi, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, false
	}
	return lo, hi, true
}

func filterByPrice(items []dto.CoachingSummary, lo, hi int) []dto.CoachingSummary {
	out := make([]dto.CoachingSummary, 0, len(items))
	for _, it := range items {
		fee := it.MinMonthlyFee
		if fee < lo {
			continue
		}
		if hi >= 0 && fee > hi {
			continue
		}
		out = append(out, it)
	}
	return out
}
