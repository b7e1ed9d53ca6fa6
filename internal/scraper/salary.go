package scraper

import (
	"regexp"
	"strings"
)

// Matches a dollar amount, an optional range, and an optional annual suffix,
// e.g. "$120,000 - $150,000 per year". Runs against lower-cased text.
var salaryPattern = regexp.MustCompile(`\$[\d,]+(?:\.\d+)?(?:\s*-\s*\$[\d,]+(?:\.\d+)?)?(?:\s*(?:per year|annually|yearly))?`)

// inferSalary is the fallback for postings without a dedicated salary
// element: take the first currency amount mentioned in the description.
func inferSalary(description string) *string {
	match := salaryPattern.FindString(strings.ToLower(description))
	if match == "" {
		return nil
	}
	return &match
}
