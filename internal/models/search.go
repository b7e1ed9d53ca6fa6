package models

// SearchParams captures the normalized search inputs used by the scrape pipeline.
type SearchParams struct {
	Keywords string
	Location string
	Limit    int
}
