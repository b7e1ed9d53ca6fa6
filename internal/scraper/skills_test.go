package scraper

import (
	"reflect"
	"testing"
)

func TestExtractSkills_FromSection(t *testing.T) {
	html := `
<section class="skills-section">
  <ul>
    <li class="job-details-skill-match-status-list__skill">
      <span class="job-details-skill-match-status-list__skill-name">Terraform</span>
    </li>
    <li class="job-details-skill-match-status-list__skill">
      <span class="job-details-skill-match-status-list__skill-name">Kubernetes</span>
    </li>
  </ul>
</section>`

	desc := "python everywhere"
	got := extractSkills(mustDoc(t, html), &desc)

	want := []string{"Terraform", "Kubernetes"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestExtractSkills_VocabularyFallback(t *testing.T) {
	desc := "Looking for JavaScript developers with SQL experience and AWS exposure."
	got := extractSkills(mustDoc(t, "<div></div>"), &desc)

	// Substring containment: "java" fires inside "javascript" too.
	want := []string{"java", "javascript", "sql", "aws"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestExtractSkills_NoSectionNoDescription(t *testing.T) {
	if got := extractSkills(mustDoc(t, "<div></div>"), nil); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}
