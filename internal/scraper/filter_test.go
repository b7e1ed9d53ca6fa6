package scraper

import (
	"testing"

	"github.com/jagjotsingh7935/linkedInScrapper/internal/models"
)

func strPtr(v string) *string { return &v }

func TestMatchesQuery(t *testing.T) {
	cases := []struct {
		name     string
		rec      models.JobRecord
		keywords string
		location string
		want     bool
	}{
		{
			name:     "partial term match on both dimensions",
			rec:      models.JobRecord{JobTitle: strPtr("Data Engineer II"), Location: strPtr("New York, NY")},
			keywords: "senior data engineer",
			location: "new york",
			want:     true,
		},
		{
			name:     "no keyword term in title",
			rec:      models.JobRecord{JobTitle: strPtr("Account Manager"), Location: strPtr("New York, NY")},
			keywords: "data engineer",
			location: "new york",
			want:     false,
		},
		{
			name:     "no location term in location",
			rec:      models.JobRecord{JobTitle: strPtr("Data Engineer"), Location: strPtr("Austin, TX")},
			keywords: "data engineer",
			location: "new york",
			want:     false,
		},
		{
			name:     "case insensitive",
			rec:      models.JobRecord{JobTitle: strPtr("DATA ENGINEER"), Location: strPtr("NEW YORK")},
			keywords: "data",
			location: "york",
			want:     true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MatchesQuery(&tc.rec, tc.keywords, tc.location); got != tc.want {
				t.Fatalf("MatchesQuery = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestMatchesQuery_MissingFields(t *testing.T) {
	if MatchesQuery(nil, "data", "york") {
		t.Fatal("nil record must not match")
	}
	if MatchesQuery(&models.JobRecord{Location: strPtr("New York")}, "data", "york") {
		t.Fatal("record without title must not match")
	}
	if MatchesQuery(&models.JobRecord{JobTitle: strPtr("Data Engineer")}, "data", "york") {
		t.Fatal("record without location must not match")
	}
}
