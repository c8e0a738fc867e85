package models

// EducationEntry is one row block from the education table of a resume.
// Partial records are kept with empty fields when the table is malformed.
type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Score       string `json:"score"`
	Year        string `json:"year"`
}

type Project struct {
	Title   string `json:"title"`
	Date    string `json:"date"`
	Summary string `json:"summary"`
}

// StructuredCV is the typed resume record built from a resume PDF.
// It is built fresh per document and never mutated after construction.
type StructuredCV struct {
	Name             string              `json:"name"`
	Emails           []string            `json:"emails"`
	Phones           []string            `json:"phones"`
	Branch           string              `json:"branch"`
	CGPA             string              `json:"cgpa"`
	Education        []EducationEntry    `json:"education"`
	Projects         []Project           `json:"projects"`
	Achievements     []string            `json:"achievements"`
	Skills           map[string][]string `json:"skills"`
	ExtractedSkills  []string            `json:"extracted_skills"`
	Courses          map[string][]string `json:"courses"`
	Extracurriculars []string            `json:"extracurriculars"`
	Positions        []string            `json:"positions"`
}
