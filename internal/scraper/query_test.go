package scraper

import (
	"strings"
	"testing"
)

func TestBuildSearchURL(t *testing.T) {
	got := BuildSearchURL("data engineer", "New York, NY")

	if count := strings.Count(got, "%d"); count != 1 {
		t.Fatalf("expected exactly one offset placeholder, got %d in %q", count, got)
	}
	if strings.ContainsAny(strings.TrimPrefix(got, "https://"), " ,") {
		t.Fatalf("reserved characters left unencoded: %q", got)
	}
	if !strings.Contains(got, "keywords=data+engineer") {
		t.Fatalf("keywords not encoded as expected: %q", got)
	}
	if !strings.Contains(got, "location=New+York%2C+NY") {
		t.Fatalf("location not encoded as expected: %q", got)
	}
}

func TestBuildSearchURL_OffsetSubstitution(t *testing.T) {
	template := BuildSearchURL("golang", "New York, NY")

	page2 := pageURL(template, 25)
	if !strings.HasSuffix(page2, "start=25") {
		t.Fatalf("offset substitution failed: %q", page2)
	}

	// Percent sequences from the escaped terms must survive untouched.
	if !strings.Contains(page2, "location=New+York%2C+NY") {
		t.Fatalf("escaped location mangled: %q", page2)
	}
}
