package scraper

import "testing"

const detailDoc = `
<html><body>
  <div class="top-card-layout__card">
    <a href="https://www.linkedin.com/company/acme"><img alt="Acme Corp" src="logo.png"></a>
  </div>
  <div class="top-card-layout__entity-info">
    <a href="https://www.linkedin.com/jobs/view/data-engineer-at-acme-123">Data Engineer</a>
  </div>
  <span class="topcard__flavor--bullet">New York, NY</span>
  <span class="posted-time-ago__text">2 weeks ago</span>
  <span class="num-applicants__caption">Over 200 applicants</span>
  <div class="show-more-less-html__markup">
    Build pipelines with Python and SQL on AWS. Pay: $120,000 - $150,000 per year.
  </div>
  <ul class="description__job-criteria-list">
    <li><h3>Seniority level</h3><span>Mid-Senior level</span></li>
    <li><h3>Employment type</h3><span>Full-time</span></li>
    <li><h3>Industries</h3><span>Software Development</span></li>
    <li><h3>Job function</h3><span>Engineering</span></li>
  </ul>
</body></html>`

func TestExtractJob_PrimaryFields(t *testing.T) {
	rec := extractJob(mustDoc(t, detailDoc))

	assertField := func(name string, got *string, want string) {
		t.Helper()
		if got == nil {
			t.Fatalf("%s is nil, want %q", name, want)
		}
		if *got != want {
			t.Fatalf("%s = %q, want %q", name, *got, want)
		}
	}

	assertField("company", rec.Company, "Acme Corp")
	assertField("company_url", rec.CompanyURL, "https://www.linkedin.com/company/acme")
	assertField("job_title", rec.JobTitle, "Data Engineer")
	assertField("job_url", rec.JobURL, "https://www.linkedin.com/jobs/view/data-engineer-at-acme-123")
	assertField("location", rec.Location, "New York, NY")
	assertField("posted_date", rec.PostedDate, "2 weeks ago")
	assertField("applicant_count", rec.ApplicantCount, "Over 200 applicants")
	assertField("level", rec.Level, "Mid-Senior level")
	assertField("employment_type", rec.EmploymentType, "Full-time")
	assertField("industry", rec.Industry, "Software Development")
	assertField("job_function", rec.JobFunction, "Engineering")
}

func TestExtractJob_MissingContainersResolveToNil(t *testing.T) {
	rec := extractJob(mustDoc(t, "<html><body><p>nothing useful</p></body></html>"))

	if rec == nil {
		t.Fatal("expected a record, got nil")
	}
	if rec.Company != nil || rec.JobTitle != nil || rec.Location != nil ||
		rec.Salary != nil || rec.Level != nil {
		t.Fatalf("expected all fields nil, got %+v", rec)
	}
	if len(rec.Skills) != 0 || len(rec.Recruiters) != 0 {
		t.Fatalf("expected empty sequences, got %+v", rec)
	}
}

func TestExtractJob_SalaryElementWinsOverDescription(t *testing.T) {
	html := `
<span class="compensation__salary">$90,000/yr - $110,000/yr</span>
<div class="show-more-less-html__markup">We pay $1 per year.</div>`

	rec := extractJob(mustDoc(t, html))
	if rec.Salary == nil || *rec.Salary != "$90,000/yr - $110,000/yr" {
		t.Fatalf("unexpected salary: %v", rec.Salary)
	}
}

func TestExtractCriteria_OrdinalFallback(t *testing.T) {
	html := `
<ul class="description__job-criteria-list">
  <li>Seniority level: Entry level</li>
  <li>Employment type: Contract</li>
  <li>Industries: Staffing and Recruiting</li>
  <li>Job function: Information Technology</li>
</ul>`

	rec := extractJob(mustDoc(t, html))

	if rec.Level == nil || *rec.Level != "Entry level" {
		t.Fatalf("unexpected level: %v", rec.Level)
	}
	if rec.EmploymentType == nil || *rec.EmploymentType != "Contract" {
		t.Fatalf("unexpected employment_type: %v", rec.EmploymentType)
	}
	if rec.Industry == nil || *rec.Industry != "Staffing and Recruiting" {
		t.Fatalf("unexpected industry: %v", rec.Industry)
	}
	if rec.JobFunction == nil || *rec.JobFunction != "Information Technology" {
		t.Fatalf("unexpected job_function: %v", rec.JobFunction)
	}
}

func TestExtractCriteria_LabeledPassWins(t *testing.T) {
	// Labeled items out of their usual order: the labels must win over the
	// positional mapping.
	html := `
<ul class="description__job-criteria-list">
  <li><h3>Employment type</h3><span>Part-time</span></li>
  <li><h3>Seniority level</h3><span>Director</span></li>
</ul>`

	rec := extractJob(mustDoc(t, html))

	if rec.Level == nil || *rec.Level != "Director" {
		t.Fatalf("unexpected level: %v", rec.Level)
	}
	if rec.EmploymentType == nil || *rec.EmploymentType != "Part-time" {
		t.Fatalf("unexpected employment_type: %v", rec.EmploymentType)
	}
}

func TestExtractCriteria_AbsentListLeavesNil(t *testing.T) {
	rec := extractJob(mustDoc(t, "<div></div>"))
	if rec.Level != nil || rec.EmploymentType != nil || rec.Industry != nil || rec.JobFunction != nil {
		t.Fatalf("expected nil criteria fields, got %+v", rec)
	}
}
