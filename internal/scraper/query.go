package scraper

import (
	"fmt"
	"net/url"
)

// The %%d survives the Sprintf below, so the returned template carries a
// single %d page-offset placeholder.
const searchURLTemplate = "https://www.linkedin.com/jobs-guest/jobs/api/seeMoreJobPostings/search?keywords=%s&location=%s&start=%%d"

// BuildSearchURL percent-encodes the free-text terms into the guest search
// locator template. The result is fed to CollectJobIDs, which substitutes the
// page offset per fetch.
func BuildSearchURL(keywords, location string) string {
	return fmt.Sprintf(searchURLTemplate, url.QueryEscape(keywords), url.QueryEscape(location))
}
