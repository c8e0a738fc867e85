package models

// EligibilityResult is the outcome of the hard pre-scoring gates.
type EligibilityResult struct {
	Eligible bool   `json:"eligible"`
	Reason   string `json:"reason"`
}

// SkillScore holds the vector-space similarity between CV skills and the
// JD's required and preferred skill sets. All fields are in [0,1].
type SkillScore struct {
	Required  float64 `json:"required_score"`
	Preferred float64 `json:"preferred_score"`
	Final     float64 `json:"final_score"`
}

// MatchedUnit is one CV text unit scored against a JD query.
type MatchedUnit struct {
	Text      string  `json:"text"`
	Score     float64 `json:"score"`
	MatchType string  `json:"match_type"`
}

// SectionScore is the top-k average for one semantic section match.
type SectionScore struct {
	Score      float64       `json:"score"`
	TopMatches []MatchedUnit `json:"top_matches,omitempty"`
}

// SemanticComponents are the named sub-signals behind the semantic score.
type SemanticComponents struct {
	JobRoleFit              SectionScore `json:"job_role_fit"`
	ResponsibilityAlignment SectionScore `json:"responsibility_alignment"`
	ValuesMatch             SectionScore `json:"values_match"`
}

// ScoreBreakdown is the full quantitative evaluation of one CV against one
// JD. An ineligible candidate always has FinalScore 0 and empty breakdowns.
type ScoreBreakdown struct {
	Eligible           bool               `json:"eligible"`
	EligibilityReason  string             `json:"eligibility_reason"`
	CourseScore        float64            `json:"course_score"`
	SkillScore         SkillScore         `json:"skill_score"`
	SemanticScore      float64            `json:"semantic_score"`
	SemanticComponents SemanticComponents `json:"semantic_components"`
	FinalScore         float64            `json:"final_score"`
}

// FeedbackRecord is the parsed form of the narrative-feedback response.
type FeedbackRecord struct {
	Score          int      `json:"score"`
	Strengths      []string `json:"strengths"`
	Weaknesses     []string `json:"weaknesses"`
	Recommendation string   `json:"recommendation"`
}

// Feedback is the tagged result of parsing the narrative-feedback response.
// Record is nil when the response did not match the delimited contract; Raw
// always holds the capability's verbatim text.
type Feedback struct {
	Record *FeedbackRecord `json:"record,omitempty"`
	Raw    string          `json:"raw"`
}

// Parsed reports whether the response matched the delimited contract.
func (f Feedback) Parsed() bool { return f.Record != nil }

// CombinedEvaluation is the terminal artifact blending the quantitative
// composite score with the qualitative feedback score, on a 0-100 scale.
type CombinedEvaluation struct {
	CombinedScore float64  `json:"combined_score"`
	Feedback      string   `json:"feedback"`
	Strengths     []string `json:"strengths"`
	Weaknesses    []string `json:"weaknesses"`
}
