package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jagjotsingh7935/linkedInScrapper/internal/models"
)

// extractCriteria maps the job criteria list onto the four classification
// fields. The labeled pass wins: items are matched on their h3 header text.
// The ordinal pass runs second and only fills fields the labeled pass left
// nil, using the fixed list positions seniority(0), employment type(1),
// industry(2), function(3) and the trailing colon-delimited segment of the
// item text.
func extractCriteria(doc *goquery.Document, rec *models.JobRecord) {
	list := doc.Find("ul.description__job-criteria-list").First()
	if list.Length() == 0 {
		return
	}
	items := list.Find("li")

	items.Each(func(_ int, item *goquery.Selection) {
		header := strings.ToLower(cleanText(item.Find("h3").First().Text()))
		value := cleanText(item.Find("span").First().Text())
		if header == "" || value == "" {
			return
		}
		switch {
		case strings.Contains(header, "seniority"):
			rec.Level = &value
		case strings.Contains(header, "employment type"):
			rec.EmploymentType = &value
		case strings.Contains(header, "industr"):
			rec.Industry = &value
		case strings.Contains(header, "function"):
			rec.JobFunction = &value
		}
	})

	targets := []**string{&rec.Level, &rec.EmploymentType, &rec.Industry, &rec.JobFunction}
	items.EachWithBreak(func(i int, item *goquery.Selection) bool {
		if i >= len(targets) {
			return false
		}
		if *targets[i] != nil {
			return true
		}
		text := cleanText(item.Text())
		if text == "" {
			return true
		}
		parts := strings.Split(text, ":")
		value := cleanText(parts[len(parts)-1])
		if value == "" {
			return true
		}
		*targets[i] = &value
		return true
	})
}
