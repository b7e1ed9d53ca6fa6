package scraper

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/jagjotsingh7935/linkedInScrapper/internal/models"
)

// The primary extraction pass is table-driven: each rule names a container
// selector, an optional nested selector, and whether the value is the
// element's text or one of its attributes. Rules are independent; a rule
// whose container, nested element, or attribute is missing resolves its
// field to nil without touching the rest of the record.

type extractMode int

const (
	modeText extractMode = iota
	modeAttr
)

type fieldRule struct {
	assign    func(*models.JobRecord, *string)
	container string
	sub       string
	mode      extractMode
	attr      string
}

var detailRules = []fieldRule{
	{
		assign:    func(r *models.JobRecord, v *string) { r.Company = v },
		container: "div.top-card-layout__card",
		sub:       "a img",
		mode:      modeAttr,
		attr:      "alt",
	},
	{
		assign:    func(r *models.JobRecord, v *string) { r.CompanyURL = v },
		container: "div.top-card-layout__card",
		sub:       "a",
		mode:      modeAttr,
		attr:      "href",
	},
	{
		assign:    func(r *models.JobRecord, v *string) { r.JobTitle = v },
		container: "div.top-card-layout__entity-info",
		sub:       "a",
		mode:      modeText,
	},
	{
		assign:    func(r *models.JobRecord, v *string) { r.JobURL = v },
		container: "div.top-card-layout__entity-info",
		sub:       "a",
		mode:      modeAttr,
		attr:      "href",
	},
	{
		assign:    func(r *models.JobRecord, v *string) { r.Location = v },
		container: "span.topcard__flavor--bullet",
		mode:      modeText,
	},
	{
		assign:    func(r *models.JobRecord, v *string) { r.PostedDate = v },
		container: "span.posted-time-ago__text",
		mode:      modeText,
	},
	{
		assign:    func(r *models.JobRecord, v *string) { r.JobDescription = v },
		container: "div.show-more-less-html__markup",
		mode:      modeText,
	},
	{
		assign:    func(r *models.JobRecord, v *string) { r.ApplicantCount = v },
		container: "span.num-applicants__caption",
		mode:      modeText,
	},
	{
		assign:    func(r *models.JobRecord, v *string) { r.Salary = v },
		container: "span.compensation__salary",
		mode:      modeText,
	},
}

func (r fieldRule) extract(doc *goquery.Document) *string {
	sel := doc.Find(r.container).First()
	if sel.Length() == 0 {
		return nil
	}
	if r.sub != "" {
		sel = sel.Find(r.sub).First()
		if sel.Length() == 0 {
			return nil
		}
	}

	var value string
	switch r.mode {
	case modeAttr:
		raw, ok := sel.Attr(r.attr)
		if !ok {
			return nil
		}
		value = raw
	default:
		value = sel.Text()
	}

	value = cleanText(value)
	if value == "" {
		return nil
	}
	return &value
}

func applyRules(doc *goquery.Document, rec *models.JobRecord) {
	for _, rule := range detailRules {
		if value := rule.extract(doc); value != nil {
			rule.assign(rec, value)
		}
	}
}
