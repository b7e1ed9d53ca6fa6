package scraper

import (
	"context"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const listingPageSize = 25

// pageURL fills the offset placeholder. Plain replacement, not Sprintf: the
// escaped query terms may themselves contain percent sequences.
func pageURL(searchURL string, offset int) string {
	return strings.Replace(searchURL, "%d", strconv.Itoa(offset), 1)
}

// CollectJobIDs paginates the listing source and returns at most limit job
// IDs. Transport faults end the scan but keep whatever was collected: a
// partial ID set is a usable result, an aborted search is not. A page with no
// list items means the source is exhausted.
func (s *Scraper) CollectJobIDs(ctx context.Context, searchURL string, limit int) []string {
	var ids []string

	for page := 0; len(ids) < limit; page++ {
		doc, err := s.fetchDocument(ctx, pageURL(searchURL, page*listingPageSize), nil)
		if err != nil {
			s.log.Warn().Err(err).Int("page", page+1).Msg("listing page fetch failed, keeping partial results")
			break
		}

		items := doc.Find("li")
		if items.Length() == 0 {
			break
		}
		s.log.Debug().Int("jobs", items.Length()).Int("page", page+1).Msg("listing page scanned")

		ids = append(ids, parseListingIDs(doc, limit-len(ids))...)
	}

	if len(ids) > limit {
		ids = ids[:limit]
	}
	return ids
}

// parseListingIDs pulls job IDs out of one listing page. Each list item
// carries a data-entity-urn of the form urn:li:jobPosting:<id>; the ID is the
// fourth colon-delimited segment. Malformed items are skipped.
func parseListingIDs(doc *goquery.Document, remaining int) []string {
	var ids []string

	doc.Find("li").EachWithBreak(func(_ int, item *goquery.Selection) bool {
		if len(ids) >= remaining {
			return false
		}

		urn := item.Find("div.base-card").First().AttrOr("data-entity-urn", "")
		if urn == "" {
			return true
		}
		parts := strings.Split(urn, ":")
		if len(parts) < 4 || parts[3] == "" {
			return true
		}
		ids = append(ids, parts[3])
		return true
	})

	return ids
}
