package scraper

import (
	"context"

	"github.com/jagjotsingh7935/linkedInScrapper/internal/models"
)

// Search runs the full pipeline for one query: build the locator, scan the
// listing for IDs, extract each detail document, and keep the records that
// match the query terms. Everything downstream of input validation is best
// effort; an empty slice is a valid outcome, never an error.
func (s *Scraper) Search(ctx context.Context, params models.SearchParams) []models.JobRecord {
	searchURL := BuildSearchURL(params.Keywords, params.Location)
	ids := s.CollectJobIDs(ctx, searchURL, params.Limit)
	s.log.Info().Int("ids", len(ids)).Str("keywords", params.Keywords).Str("location", params.Location).Msg("listing scan finished")

	records := make([]models.JobRecord, 0, len(ids))
	for i, id := range ids {
		s.log.Debug().Int("n", i+1).Int("total", len(ids)).Str("job_id", id).Msg("processing job")

		rec, err := s.FetchJob(ctx, id)
		if err != nil {
			s.log.Warn().Err(err).Str("job_id", id).Msg("skipping job")
			continue
		}
		if !MatchesQuery(rec, params.Keywords, params.Location) {
			continue
		}
		records = append(records, *rec)
	}

	s.log.Info().Int("matched", len(records)).Msg("search finished")
	return records
}
