package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jagjotsingh7935/linkedInScrapper/internal/models"
)

const maxRecruiters = 5

// Section labels the hiring-team block has shipped under. Matched as
// lower-cased substrings of heading text.
var recruiterHeadings = []string{
	"people you can reach out to",
	"hiring team",
	"meet the team",
	"recruiters",
}

// Checked in order when no heading matches.
var recruiterContainers = []string{
	"div.message-the-recruiter",
	"section.hirer-card",
}

// Name lives in a different sub-element depending on the page variant;
// first non-empty text wins.
var recruiterNameSelectors = []string{
	"h3.base-main-card__title",
	"h3",
	"span.sr-only",
	"span",
}

// extractRecruiters collects up to five hiring contacts from the posting.
// A contact is kept only when a name was found and its link is a profile
// path ("/in/"), with the query string stripped. Links whose target contains
// "search" are navigation, not people.
func extractRecruiters(doc *goquery.Document) []models.Recruiter {
	section, fromHeading := findRecruiterSection(doc)
	if section == nil {
		return nil
	}

	container := section
	if fromHeading {
		if sibling := section.Next(); sibling.Length() > 0 {
			container = sibling
		}
	}

	var recruiters []models.Recruiter
	container.Find("a[href]").EachWithBreak(func(_ int, link *goquery.Selection) bool {
		if len(recruiters) >= maxRecruiters {
			return false
		}

		href := strings.TrimSpace(link.AttrOr("href", ""))
		if href == "" || strings.Contains(href, "search") {
			return true
		}
		href = stripQuery(href)

		name := recruiterName(link)
		if name == "" || !strings.Contains(href, "/in/") {
			return true
		}

		recruiters = append(recruiters, models.Recruiter{Name: name, ProfileURL: href})
		return true
	})

	return recruiters
}

func findRecruiterSection(doc *goquery.Document) (*goquery.Selection, bool) {
	var found *goquery.Selection
	doc.Find("h2, h3, h4").EachWithBreak(func(_ int, heading *goquery.Selection) bool {
		text := strings.ToLower(cleanText(heading.Text()))
		for _, label := range recruiterHeadings {
			if strings.Contains(text, label) {
				found = heading
				return false
			}
		}
		return true
	})
	if found != nil {
		return found, true
	}

	for _, selector := range recruiterContainers {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			return sel, false
		}
	}
	return nil, false
}

func recruiterName(link *goquery.Selection) string {
	for _, selector := range recruiterNameSelectors {
		if name := cleanText(link.Find(selector).First().Text()); name != "" {
			return name
		}
	}
	return ""
}

func stripQuery(raw string) string {
	if i := strings.Index(raw, "?"); i >= 0 {
		return raw[:i]
	}
	return raw
}
