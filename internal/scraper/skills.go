package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Fallback vocabulary scanned against the description when the posting has
// no skills section. Substring containment, not word-boundary matching:
// "java" also fires inside "javascript", and skills outside this list are
// never found. Best effort by design.
var skillVocabulary = []string{
	"python",
	"java",
	"javascript",
	"sql",
	"aws",
	"machine learning",
	"data analysis",
}

func extractSkills(doc *goquery.Document, description *string) []string {
	var skills []string

	section := doc.Find("section.skills-section").First()
	if section.Length() > 0 {
		section.Find("li.job-details-skill-match-status-list__skill").Each(func(_ int, item *goquery.Selection) {
			name := cleanText(item.Find("span.job-details-skill-match-status-list__skill-name").First().Text())
			if name != "" {
				skills = append(skills, name)
			}
		})
		return skills
	}

	if description == nil {
		return nil
	}
	haystack := strings.ToLower(*description)
	for _, skill := range skillVocabulary {
		if strings.Contains(haystack, skill) {
			skills = append(skills, skill)
		}
	}
	return skills
}
