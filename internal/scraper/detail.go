package scraper

import (
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/jagjotsingh7935/linkedInScrapper/internal/models"
)

const jobPostingURL = "https://www.linkedin.com/jobs-guest/jobs/api/jobPosting/%s"

// FetchJob fetches one detail document and extracts its record. Failures are
// per job: the caller skips the ID and moves on. A panic anywhere in
// extraction aborts only this record; partial field-level nils inside a
// returned record are normal.
func (s *Scraper) FetchJob(ctx context.Context, id string) (rec *models.JobRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error().Str("job_id", id).Any("panic", r).Msg("job extraction aborted")
			rec = nil
			err = fmt.Errorf("extract job %s: %v", id, r)
		}
	}()

	doc, err := s.fetchDocument(ctx, fmt.Sprintf(jobPostingURL, id), nil)
	if err != nil {
		return nil, fmt.Errorf("fetch job %s: %w", id, err)
	}

	return extractJob(doc), nil
}

// extractJob maps a detail document into a record: primary table-driven pass,
// then criteria, then the salary and skills fallback chains, then recruiters.
func extractJob(doc *goquery.Document) *models.JobRecord {
	rec := &models.JobRecord{}

	applyRules(doc, rec)
	extractCriteria(doc, rec)

	if rec.Salary == nil && rec.JobDescription != nil {
		rec.Salary = inferSalary(*rec.JobDescription)
	}
	rec.Skills = extractSkills(doc, rec.JobDescription)
	rec.Recruiters = extractRecruiters(doc)

	return rec
}
