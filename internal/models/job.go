package models

// Recruiter is one hiring contact advertised on a job posting page.
type Recruiter struct {
	Name       string `json:"name"`
	ProfileURL string `json:"profile_url"`
}

// JobRecord is the normalized posting extracted from a job detail document.
// Scalar fields are pointers: a field missing from the markup stays
// distinguishable from one that was present but blank.
type JobRecord struct {
	Company        *string     `json:"company"`
	CompanyURL     *string     `json:"company_url"`
	JobTitle       *string     `json:"job_title"`
	JobURL         *string     `json:"job_url"`
	Location       *string     `json:"location"`
	PostedDate     *string     `json:"posted_date"`
	JobDescription *string     `json:"job_description"`
	ApplicantCount *string     `json:"applicant_count"`
	Level          *string     `json:"level"`
	EmploymentType *string     `json:"employment_type"`
	Industry       *string     `json:"industry"`
	JobFunction    *string     `json:"job_function"`
	Salary         *string     `json:"salary"`
	Skills         []string    `json:"skills"`
	Recruiters     []Recruiter `json:"recruiters,omitempty"`
}
