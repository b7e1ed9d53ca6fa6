package scraper

import (
	"strings"

	"github.com/jagjotsingh7935/linkedInScrapper/internal/models"
)

// MatchesQuery reports whether a record qualifies as a hit for the original
// free-text terms. Both title and location must be present. The rule is
// conjunctive across the two dimensions and disjunctive within each: any
// keyword term in the title AND any location term in the location.
func MatchesQuery(rec *models.JobRecord, keywords, location string) bool {
	if rec == nil || rec.JobTitle == nil || rec.Location == nil {
		return false
	}

	return anyTermContained(*rec.JobTitle, keywords) && anyTermContained(*rec.Location, location)
}

func anyTermContained(value, terms string) bool {
	haystack := strings.ToLower(value)
	for _, term := range strings.Fields(strings.ToLower(terms)) {
		if strings.Contains(haystack, term) {
			return true
		}
	}
	return false
}
