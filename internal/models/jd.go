package models

// StructuredJD is the typed job description record. It carries both the
// cleaned section content and the facts inferred from the full text
// (branches, technologies, domain, minimum CGPA). Re-parsing the same
// source text yields the same record.
type StructuredJD struct {
	JobRole          string   `json:"job_role"`
	Responsibilities []string `json:"responsibilities"`
	RequiredSkills   []string `json:"required_skills"`
	PreferredSkills  []string `json:"preferred_skills"`
	Eligibility      string   `json:"eligibility"`
	Locations        string   `json:"locations"`
	Values           []string `json:"values,omitempty"`

	Branches      []string `json:"branches"`
	Technologies  []string `json:"technologies"`
	NonTechSkills []string `json:"non_tech_skills"`
	Domain        string   `json:"domain"`
	MinCGPA       *float64 `json:"min_cgpa,omitempty"`

	// Metadata lines ("Job Title:", "Job Type:", "Experience Level:").
	JobTitle        string `json:"job_title,omitempty"`
	JobType         string `json:"job_type,omitempty"`
	ExperienceLevel string `json:"experience_level,omitempty"`
}
