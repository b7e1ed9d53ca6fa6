package scraper

import "testing"

func TestParseListingIDs(t *testing.T) {
	html := `
<ul>
  <li><div class="base-card" data-entity-urn="urn:li:jobPosting:3791234567"></div></li>
  <li><div class="base-card" data-entity-urn="urn:li:jobPosting:3791234568"></div></li>
  <li><div class="other-card"></div></li>
  <li><div class="base-card" data-entity-urn="urn:li"></div></li>
  <li><div class="base-card" data-entity-urn="urn:li:jobPosting:3791234569"></div></li>
</ul>`

	doc := mustDoc(t, html)
	ids := parseListingIDs(doc, 10)

	want := []string{"3791234567", "3791234568", "3791234569"}
	if len(ids) != len(want) {
		t.Fatalf("expected %d ids, got %d: %v", len(want), len(ids), ids)
	}
	for i, id := range want {
		if ids[i] != id {
			t.Fatalf("ids[%d] = %q, want %q", i, ids[i], id)
		}
	}
}

func TestParseListingIDs_RespectsRemaining(t *testing.T) {
	html := `
<ul>
  <li><div class="base-card" data-entity-urn="urn:li:jobPosting:1"></div></li>
  <li><div class="base-card" data-entity-urn="urn:li:jobPosting:2"></div></li>
  <li><div class="base-card" data-entity-urn="urn:li:jobPosting:3"></div></li>
</ul>`

	doc := mustDoc(t, html)
	ids := parseListingIDs(doc, 2)

	if len(ids) != 2 {
		t.Fatalf("expected 2 ids, got %d: %v", len(ids), ids)
	}
}

func TestParseListingIDs_EmptyPage(t *testing.T) {
	doc := mustDoc(t, "<ul></ul>")
	if ids := parseListingIDs(doc, 5); len(ids) != 0 {
		t.Fatalf("expected no ids, got %v", ids)
	}
}
